package storage

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const (
	umbraBucket = "umbra-open-data-catalog"
	umbraRegion = "us-west-2"

	copernicusBucket   = "eodata"
	copernicusEndpoint = "https://eodata.dataspace.copernicus.eu"
)

// ErrChecksumMismatch is returned when a downloaded file does not match the
// md5 digest the datapoint metadata promised.
var ErrChecksumMismatch = errors.New("md5 checksum mismatch")

// s3API is the subset of the S3 client the storage clients use.
type s3API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// Indirections for tests, following the same pattern as the AWS usage in the
// rest of the pack: stub the constructors, not the SDK.
var (
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) s3API {
		return s3.NewFromConfig(cfg, optFns...)
	}
	httpGet = func(ctx context.Context, url string) (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		return http.DefaultClient.Do(req)
	}
)

// Client downloads granule objects from one provider bucket.
type Client struct {
	s3     s3API
	bucket string
}

// NewUmbraClient returns a client for the Umbra open data catalog. The
// catalog is public, so no credentials are required.
func NewUmbraClient(ctx context.Context) (*Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(umbraRegion),
		config.WithCredentialsProvider(aws.AnonymousCredentials{}),
	)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}
	return &Client{s3: newS3ClientFromConfig(cfg), bucket: umbraBucket}, nil
}

// NewCopernicusClient returns a client for the Copernicus dataspace. Keys
// fall back to the AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY environment
// variables when empty.
func NewCopernicusClient(ctx context.Context, accessKey, secretAccessKey string) (*Client, error) {
	if accessKey == "" {
		accessKey = os.Getenv("AWS_ACCESS_KEY_ID")
	}
	if secretAccessKey == "" {
		secretAccessKey = os.Getenv("AWS_SECRET_ACCESS_KEY")
	}
	if accessKey == "" || secretAccessKey == "" {
		return nil, errors.New("copernicus dataspace requires S3 credentials, see https://documentation.dataspace.copernicus.eu/APIs/S3.html")
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}
	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(copernicusEndpoint)
	})
	return &Client{s3: client, bucket: copernicusBucket}, nil
}

// ListObjects lists all object keys under the given prefix, relative to it.
func (c *Client) ListObjects(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	var continuation *string
	for {
		out, err := c.s3.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(c.bucket),
			Prefix:            aws.String(prefix),
			ContinuationToken: continuation,
		})
		if err != nil {
			return nil, fmt.Errorf("listing objects under %s: %w", prefix, err)
		}
		for _, obj := range out.Contents {
			keys = append(keys, strings.TrimPrefix(aws.ToString(obj.Key), prefix))
		}
		if out.NextContinuationToken == nil {
			break
		}
		continuation = out.NextContinuationToken
	}
	return keys, nil
}

// DownloadObject downloads a single object into outputDir, preserving its
// path relative to the prefix. It returns the path of the written file.
func (c *Client) DownloadObject(ctx context.Context, prefix, key, outputDir string) (string, error) {
	target, err := objectTarget(outputDir, key)
	if err != nil {
		return "", err
	}

	out, err := c.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(prefix + key),
	})
	if err != nil {
		return "", fmt.Errorf("downloading %s: %w", key, err)
	}
	defer out.Body.Close()

	if err := writeFile(target, out.Body); err != nil {
		return "", err
	}
	return target, nil
}

// objectTarget resolves a listing key to a path inside outputDir. Keys
// that resolve outside the directory are rejected, the bucket listing is
// untrusted input.
func objectTarget(outputDir, key string) (string, error) {
	target := filepath.Join(outputDir, filepath.FromSlash(key))
	root := filepath.Clean(outputDir)
	if target != root && !strings.HasPrefix(target, root+string(filepath.Separator)) {
		return "", fmt.Errorf("object key %q escapes the output directory", key)
	}
	return target, nil
}

// Download fetches every object of the granule into outputDir and returns
// the directory holding them.
func (c *Client) Download(ctx context.Context, prefix string, outputDir string) (string, error) {
	keys, err := c.ListObjects(ctx, prefix)
	if err != nil {
		return "", err
	}
	for _, key := range keys {
		if _, err := c.DownloadObject(ctx, prefix, key, outputDir); err != nil {
			return "", err
		}
	}
	return outputDir, nil
}

// DownloadQuicklook fetches the browse image of an ASF granule into
// outputDir and returns the path of the written file.
func DownloadQuicklook(ctx context.Context, granule Granule, outputDir string) (string, error) {
	url := ASFQuicklookURL(granule)
	if url == "" {
		return "", fmt.Errorf("no quicklook available for granule %s", granule.Name)
	}

	resp, err := httpGet(ctx, url)
	if err != nil {
		return "", fmt.Errorf("downloading quicklook: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("downloading quicklook: unexpected status %s", resp.Status)
	}

	target := filepath.Join(outputDir, path.Base(url))
	if err := writeFile(target, resp.Body); err != nil {
		return "", err
	}
	return target, nil
}

// VerifyMD5 checks a downloaded file against the digest from the granule
// metadata. Granules without a known digest pass.
func VerifyMD5(granule Granule, file string) error {
	if granule.MD5Sum == "" {
		return nil
	}
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return err
	}
	if digest := hex.EncodeToString(h.Sum(nil)); digest != granule.MD5Sum {
		return fmt.Errorf("%w: got %s, want %s", ErrChecksumMismatch, digest, granule.MD5Sum)
	}
	return nil
}

func writeFile(target string, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	return nil
}
