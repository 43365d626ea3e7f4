package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lunaris-space/lunaris-go/datasets"
	"github.com/lunaris-space/lunaris-go/internal/cache"
	"github.com/lunaris-space/lunaris-go/query"
)

type extentFlags struct {
	since string
	until string
}

func (f *extentFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.since, "since", "", "start of the time interval (RFC 3339)")
	cmd.Flags().StringVar(&f.until, "until", "", "end of the time interval (RFC 3339, inclusive)")
	_ = cmd.MarkFlagRequired("since")
	_ = cmd.MarkFlagRequired("until")
}

func (f *extentFlags) interval() (query.TimeInterval, error) {
	start, err := time.Parse(time.RFC3339, f.since)
	if err != nil {
		return query.TimeInterval{}, fmt.Errorf("invalid --since: %w", err)
	}
	end, err := time.Parse(time.RFC3339, f.until)
	if err != nil {
		return query.TimeInterval{}, fmt.Errorf("invalid --until: %w", err)
	}
	return query.NewTimeInterval(start, end), nil
}

// openCollection resolves a dataset slug and collection name to a Collection.
func openCollection(cmd *cobra.Command, opts *rootOptions, datasetSlug, collectionName string) (*datasets.Client, *datasets.Collection, error) {
	client, err := opts.newClient()
	if err != nil {
		return nil, nil, err
	}
	dataset, err := client.Dataset(cmd.Context(), datasetSlug)
	if err != nil {
		client.Close()
		return nil, nil, err
	}
	collection, err := dataset.Collection(cmd.Context(), collectionName)
	if err != nil {
		client.Close()
		return nil, nil, err
	}
	return client, collection, nil
}

func newQueryCommand(opts *rootOptions) *cobra.Command {
	var (
		datasetSlug    string
		collectionName string
		extent         extentFlags
		pageSize       uint64
		skipData       bool
		cacheFile      string
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query datapoints of a collection and print their metadata",
		RunE: func(cmd *cobra.Command, args []string) error {
			interval, err := extent.interval()
			if err != nil {
				return err
			}

			client, collection, err := openCollection(cmd, opts, datasetSlug, collectionName)
			if err != nil {
				return err
			}
			defer client.Close()

			queryOpts := []datasets.QueryOption{datasets.WithTimeInterval(interval)}
			if pageSize > 0 {
				queryOpts = append(queryOpts, datasets.WithPageSize(pageSize))
			}
			if skipData {
				queryOpts = append(queryOpts, datasets.WithSkipData())
			}
			if cacheFile != "" {
				token, err := opts.resolveToken()
				if err != nil {
					return err
				}
				pages, err := cache.Open(cmd.Context(), cacheFile, []byte(token))
				if err != nil {
					return err
				}
				defer pages.Close()
				queryOpts = append(queryOpts, datasets.WithPageCache(pageCache{c: pages}))
			}

			var n int
			for point, err := range collection.Query(cmd.Context(), queryOpts...) {
				if err != nil {
					return err
				}
				n++
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n",
					point.Meta.ID, point.Meta.EventTime.Format(time.RFC3339))
			}
			opts.log.Info(cmd.Context(), "query finished", "datapoints", n)
			return nil
		},
	}

	cmd.Flags().StringVarP(&datasetSlug, "dataset", "d", "", "dataset slug")
	cmd.Flags().StringVarP(&collectionName, "collection", "c", "", "collection name")
	cmd.Flags().Uint64Var(&pageSize, "page-size", 0, "datapoints per request (0 lets the server decide)")
	cmd.Flags().BoolVar(&skipData, "skip-data", false, "fetch only datapoint metadata")
	cmd.Flags().StringVar(&cacheFile, "cache", "", "path of an encrypted page cache, enables offline replays")
	extent.register(cmd)
	_ = cmd.MarkFlagRequired("dataset")
	_ = cmd.MarkFlagRequired("collection")
	return cmd
}
