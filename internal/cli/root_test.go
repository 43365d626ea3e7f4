package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewRootCmdSubcommands(t *testing.T) {
	root := NewRootCmd()

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	require.Subset(t, names, []string{"datasets", "collections", "query", "export", "download"})
}

func TestExtentFlagsInterval(t *testing.T) {
	extent := extentFlags{since: "2024-01-01T00:00:00Z", until: "2024-02-01T00:00:00Z"}
	interval, err := extent.interval()
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), interval.Start)
	require.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), interval.End)

	extent.since = "not a time"
	_, err = extent.interval()
	require.Error(t, err)
	require.Contains(t, err.Error(), "--since")
}

func TestResolveTokenPrefersFlag(t *testing.T) {
	t.Setenv(tokenEnvVar, "from-env")

	opts := &rootOptions{token: "from-flag"}
	token, err := opts.resolveToken()
	require.NoError(t, err)
	require.Equal(t, "from-flag", token)

	opts.token = ""
	token, err = opts.resolveToken()
	require.NoError(t, err)
	require.Equal(t, "from-env", token)
}
