// Package cli implements the lunaris command line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lunaris-space/lunaris-go/datasets"
	"github.com/lunaris-space/lunaris-go/internal/logging"
)

// tokenEnvVar is consulted when --token is not given.
const tokenEnvVar = "LUNARIS_API_KEY"

type rootOptions struct {
	url     string
	token   string
	verbose bool

	log logging.Logger
}

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "lunaris",
		Short:         "Query, export and download satellite datasets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.log = logging.Init(os.Stderr, level)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.url, "url", datasets.DefaultURL, "API endpoint")
	rootCmd.PersistentFlags().StringVar(&opts.token, "token", "", "API key (defaults to $"+tokenEnvVar+", prompts if unset)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newDatasetsCommand(opts),
		newCollectionsCommand(opts),
		newQueryCommand(opts),
		newExportCommand(opts),
		newDownloadCommand(opts),
	)

	return rootCmd
}

// resolveToken returns the API key from the flag, the environment, or an
// interactive hidden prompt, in that order.
func (o *rootOptions) resolveToken() (string, error) {
	if o.token != "" {
		return o.token, nil
	}
	if token := os.Getenv(tokenEnvVar); token != "" {
		o.token = token
		return token, nil
	}

	fmt.Fprint(os.Stderr, "API key: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading API key: %w", err)
	}
	o.token = string(raw)
	return o.token, nil
}

// newClient dials the API with the resolved credentials.
func (o *rootOptions) newClient() (*datasets.Client, error) {
	token, err := o.resolveToken()
	if err != nil {
		return nil, err
	}
	return datasets.NewClient(
		datasets.WithURL(o.url),
		datasets.WithToken(token),
		datasets.WithLogger(o.log),
	)
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
