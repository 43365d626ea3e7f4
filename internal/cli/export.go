package cli

import (
	"github.com/spf13/cobra"

	"github.com/lunaris-space/lunaris-go/datasets"
	"github.com/lunaris-space/lunaris-go/internal/export"
)

func newExportCommand(opts *rootOptions) *cobra.Command {
	var (
		datasetSlug    string
		collectionName string
		extent         extentFlags
		postgresDSN    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export datapoints of a collection into a PostgreSQL table",
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

			exporter, err := export.Open(cmd.Context(), postgresDSN)
			if err != nil {
				return err
			}
			defer exporter.Close()

			points := collection.Query(cmd.Context(), datasets.WithTimeInterval(interval))
			written, err := exporter.Export(cmd.Context(), collection.ID(), points)
			if err != nil {
				opts.log.Error(cmd.Context(), "export aborted", "written", written, "error", err)
				return err
			}
			opts.log.Info(cmd.Context(), "export finished", "written", written)
			return nil
		},
	}

	cmd.Flags().StringVarP(&datasetSlug, "dataset", "d", "", "dataset slug")
	cmd.Flags().StringVarP(&collectionName, "collection", "c", "", "collection name")
	cmd.Flags().StringVar(&postgresDSN, "postgres", "", "PostgreSQL connection string")
	extent.register(cmd)
	_ = cmd.MarkFlagRequired("dataset")
	_ = cmd.MarkFlagRequired("collection")
	_ = cmd.MarkFlagRequired("postgres")
	return cmd
}
