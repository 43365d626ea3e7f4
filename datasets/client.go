// Package datasets is the typed client for the Lunaris datasets service:
// dataset and collection discovery, and cursor-paginated datapoint queries.
//
// A Client is cheap and safe to share. Queries return lazy sequences; see
// Collection.Query and Collection.QueryPages.
package datasets

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"

	"github.com/lunaris-space/lunaris-go/internal/authx"
	"github.com/lunaris-space/lunaris-go/internal/grpcx"
	"github.com/lunaris-space/lunaris-go/internal/logging"
	"github.com/lunaris-space/lunaris-go/internal/proto"
)

// Client talks to the datasets service.
type Client struct {
	svc  *service
	conn *grpc.ClientConn
	log  logging.Logger
}

// NewClient opens a connection to the datasets service. The returned client
// must be closed when no longer needed.
func NewClient(opts ...Option) (*Client, error) {
	cfg := clientConfig{URL: DefaultURL, Log: logging.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.check(); err != nil {
		return nil, err
	}

	if cfg.Token != "" {
		if info, err := authx.InspectToken(cfg.Token); err == nil && info.Expired(time.Now()) {
			cfg.Log.Warn(context.Background(), "API key is expired", "expired_at", info.ExpiresAt)
		}
	}

	conn, err := grpcx.Dial(cfg.URL, cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", cfg.URL, err)
	}

	return &Client{
		svc:  &service{client: proto.NewDataServiceClient(conn)},
		conn: conn,
		log:  cfg.Log,
	}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// DatasetListing is the result of listing all datasets visible to the caller.
type DatasetListing struct {
	Datasets []*Dataset
	Groups   []Group
}

// Datasets lists all datasets and dataset groups the API key has access to.
func (c *Client) Datasets(ctx context.Context) (DatasetListing, error) {
	resp, err := c.svc.listDatasets(ctx)
	if err != nil {
		return DatasetListing{}, err
	}
	if resp.ServerMessage != "" {
		c.log.Info(ctx, resp.ServerMessage)
	}

	listing := DatasetListing{}
	for _, msg := range resp.Datasets {
		dataset, err := datasetFromMessage(c, msg)
		if err != nil {
			return DatasetListing{}, err
		}
		listing.Datasets = append(listing.Datasets, dataset)
	}
	for _, msg := range resp.Groups {
		group, err := groupFromMessage(msg)
		if err != nil {
			return DatasetListing{}, err
		}
		listing.Groups = append(listing.Groups, group)
	}
	return listing, nil
}

// Dataset fetches a single dataset by its slug, e.g. "open_data.asf.ers_sar".
func (c *Client) Dataset(ctx context.Context, slug string) (*Dataset, error) {
	msg, err := c.svc.getDataset(ctx, slug)
	if err != nil {
		return nil, err
	}
	return datasetFromMessage(c, msg)
}

// Collections lists the collections of the dataset, including availability
// and datapoint counts.
func (d *Dataset) Collections(ctx context.Context) ([]CollectionInfo, error) {
	resp, err := d.client.svc.getCollections(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	infos := make([]CollectionInfo, 0, len(resp.Data))
	for _, msg := range resp.Data {
		infos = append(infos, collectionInfoFromMessage(msg))
	}
	return infos, nil
}

// Collection looks up a collection of the dataset by name.
func (d *Dataset) Collection(ctx context.Context, name string) (*Collection, error) {
	msg, err := d.client.svc.getCollectionByName(ctx, d.ID, name)
	if err != nil {
		return nil, err
	}
	return newCollection(d.client.svc, collectionInfoFromMessage(msg))
}

// CreateCollection creates a new, empty collection in the dataset.
func (d *Dataset) CreateCollection(ctx context.Context, name string) (*Collection, error) {
	msg, err := d.client.svc.createCollection(ctx, d.ID, name)
	if err != nil {
		return nil, err
	}
	return newCollection(d.client.svc, collectionInfoFromMessage(msg))
}
