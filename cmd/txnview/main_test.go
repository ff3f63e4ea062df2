package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	cmd := versionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(nil)

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "txnview dev\n", out.String())
}

func TestRootCmdFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	tests := []struct {
		name string
		want string
	}{
		{"log-level", "info"},
		{"log-format", "console"},
		{"log-file", ""},
		{"delay", "500ms"},
		{"fixture", ""},
		{"simulate-failure", "false"},
		{"start", ""},
		{"end", ""},
		{"page-size", "5"},
		{"clamp-on-filter", "true"},
		{"theme", "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := flags.Lookup(tt.name)
			require.NotNil(t, flag)
			assert.Equal(t, tt.want, flag.DefValue)
		})
	}
}

func TestRootCmdSubcommands(t *testing.T) {
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"view", "summary", "version"})
}
