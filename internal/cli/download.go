package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lunaris-space/lunaris-go/internal/filex"
	"github.com/lunaris-space/lunaris-go/storage"
)

func newDownloadCommand(opts *rootOptions) *cobra.Command {
	var (
		provider  string
		name      string
		location  string
		outputDir string
		quicklook bool
	)

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download granule data from a storage provider",
		Long: `Download granule data from a storage provider.

Supported providers:
  umbra       Umbra open data catalog (public)
  copernicus  Copernicus dataspace (requires S3 credentials)
  asf         ASF datapool (quicklook images only)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			granule := storage.Granule{Name: name, Location: location, QuicklookAvailable: quicklook}

			outputDir, err := filex.EnsureDir(outputDir)
			if err != nil {
				return err
			}

			switch provider {
			case "umbra":
				client, err := storage.NewUmbraClient(ctx)
				if err != nil {
					return err
				}
				dir, err := client.Download(ctx, storage.UmbraPrefix(granule), outputDir)
				if err != nil {
					return err
				}
				opts.log.Info(ctx, "download finished", "dir", dir)
				return nil
			case "copernicus":
				client, err := storage.NewCopernicusClient(ctx, "", "")
				if err != nil {
					return err
				}
				dir, err := client.Download(ctx, storage.CopernicusPrefix(granule), outputDir)
				if err != nil {
					return err
				}
				opts.log.Info(ctx, "download finished", "dir", dir)
				return nil
			case "asf":
				file, err := storage.DownloadQuicklook(ctx, granule, outputDir)
				if err != nil {
					return err
				}
				opts.log.Info(ctx, "download finished", "file", file)
				return nil
			default:
				return fmt.Errorf("unknown provider %q", provider)
			}
		},
	}

	cmd.Flags().StringVarP(&provider, "provider", "p", "", "storage provider (umbra, copernicus, asf)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "granule name")
	cmd.Flags().StringVarP(&location, "location", "l", "", "granule storage location")
	cmd.Flags().StringVarP(&outputDir, "out", "o", ".", "output directory")
	cmd.Flags().BoolVar(&quicklook, "quicklook", false, "download the browse image instead of the data (asf)")
	_ = cmd.MarkFlagRequired("provider")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
