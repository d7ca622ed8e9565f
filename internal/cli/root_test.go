package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireCSVFile(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no args", nil, "missing required argument"},
		{"one arg", []string{"popest.csv"}, ""},
		{"two args", []string{"a.csv", "b.csv"}, "accepts 1 arg(s), received 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := requireCSVFile(rootCmd, tt.args)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRootCommand_Surface(t *testing.T) {
	assert.True(t, rootCmd.SilenceUsage)
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))

	// -v belongs to --version per the CLI contract, not to verbose
	verbose := rootCmd.PersistentFlags().Lookup("verbose")
	assert.Empty(t, verbose.Shorthand)

	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "version")
}
