package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDatasetsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "datasets",
		Short: "List the datasets available to your account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			listing, err := client.Datasets(cmd.Context())
			if err != nil {
				return err
			}

			for _, dataset := range listing.Datasets {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", dataset.Slug, dataset.Name)
			}
			return nil
		},
	}
}

func newCollectionsCommand(opts *rootOptions) *cobra.Command {
	var datasetSlug string

	cmd := &cobra.Command{
		Use:   "collections",
		Short: "List the collections of a dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient()
			if err != nil {
				return err
			}
			defer client.Close()

			dataset, err := client.Dataset(cmd.Context(), datasetSlug)
			if err != nil {
				return err
			}
			collections, err := dataset.Collections(cmd.Context())
			if err != nil {
				return err
			}

			for _, collection := range collections {
				fmt.Fprintln(cmd.OutOrStdout(), collection.String())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&datasetSlug, "dataset", "d", "", "dataset slug, e.g. open_data.asf.ers_sar")
	_ = cmd.MarkFlagRequired("dataset")
	return cmd
}
