package grpcx

import (
	"crypto/tls"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	_ "google.golang.org/grpc/encoding/gzip" // register the gzip compressor

	"github.com/lunaris-space/lunaris-go/internal/proto"
)

// maxRecvSize is the largest response the SDK accepts. Datapoint pages can be
// big when data is not skipped.
const maxRecvSize = 512 * 1024 * 1024

// serviceConfig applies a retry policy for transient failures to all
// services on the channel. Other status codes are never retried; their
// handling is the caller's responsibility.
const serviceConfig = `{
	"methodConfig": [{
		"name": [{"service": ""}],
		"retryPolicy": {
			"maxAttempts": 5,
			"initialBackoff": "0.02s",
			"maxBackoff": "5s",
			"backoffMultiplier": 3,
			"retryableStatusCodes": ["RESOURCE_EXHAUSTED", "UNAVAILABLE"]
		}
	}]
}`

// ChannelProtocol selects how a channel is established.
type ChannelProtocol int

const (
	ProtocolHTTPS ChannelProtocol = iota
	ProtocolHTTP
	ProtocolUnix
)

// ChannelInfo is a parsed channel target.
type ChannelInfo struct {
	// Address is the host for http(s) targets, or the full unix: target
	// including its prefix for unix domain sockets.
	Address string
	// Port is the port for http(s) targets, 0 for unix sockets.
	Port     int
	Protocol ChannelProtocol
}

// Target returns the address in the form the gRPC resolver expects.
func (c ChannelInfo) Target() string {
	if c.Protocol == ProtocolUnix {
		return c.Address
	}
	return fmt.Sprintf("%s:%d", c.Address, c.Port)
}

var urlScheme = regexp.MustCompile(`^(https?://)?([^: ]+)(:\d+)?/?$`)

// ParseChannelURL parses a channel URL into the target and protocol to use.
//
// Plain hosts default to TLS on port 443. An explicit http:// scheme requires
// an explicit port; a schemeless host with a non-443 port is treated as an
// insecure dev target. Unix domain sockets are passed through as
// unix:relative/path or unix:///absolute/path.
func ParseChannelURL(url string) (ChannelInfo, error) {
	if strings.HasPrefix(url, "unix:") {
		return ChannelInfo{Address: url, Protocol: ProtocolUnix}, nil
	}

	m := urlScheme.FindStringSubmatch(url)
	if m == nil {
		return ChannelInfo{}, fmt.Errorf("invalid channel URL: %q", url)
	}
	scheme, host, port := m[1], strings.TrimSuffix(m[2], "/"), m[3]

	protocol := ProtocolHTTPS
	if scheme == "http://" {
		if port == "" {
			return ChannelInfo{}, fmt.Errorf("explicit port required for insecure channel %q", url)
		}
		protocol = ProtocolHTTP
	}
	if scheme == "" && port != "" && port != ":443" {
		protocol = ProtocolHTTP
	}

	portNumber := 443
	if port != "" {
		n, err := strconv.Atoi(strings.TrimPrefix(port, ":"))
		if err != nil {
			return ChannelInfo{}, fmt.Errorf("invalid port in channel URL %q: %w", url, err)
		}
		portNumber = n
	}

	return ChannelInfo{Address: host, Port: portNumber, Protocol: protocol}, nil
}

// Dial opens a channel to the given URL. If authToken is non-empty, every
// call on the channel carries it as bearer authorization metadata.
func Dial(url string, authToken string) (*grpc.ClientConn, error) {
	info, err := ParseChannelURL(url)
	if err != nil {
		return nil, err
	}

	creds := insecure.NewCredentials()
	if info.Protocol == ProtocolHTTPS {
		creds = credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	}

	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(creds),
		grpc.WithDefaultServiceConfig(serviceConfig),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(maxRecvSize),
			grpc.ForceCodec(proto.Codec{}),
		),
	}
	if authToken != "" {
		opts = append(opts, grpc.WithUnaryInterceptor(AuthInterceptor(authToken)))
	}

	return grpc.NewClient(info.Target(), opts...)
}
