package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const sampleDatasetMS = `{"dataSet" : [
{"name": "parse", "color": "#00ff00", "data":[120, 118.5, 131]}
], "timeUnits": "ms"}
`

const sampleDatasetMS2 = `{"dataSet" : [
{"name": "render", "color": "#0000ff", "data":[5, 7]}
], "timeUnits": "ms"}
`

const sampleDatasetSecs = `{"dataSet" : [
{"name": "upload", "color": "#ff0000", "data":[2]}
], "timeUnits": "secs"}
`

// writeDataset writes dataset content to a temp file and returns its path.
func writeDataset(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// execute runs a freshly constructed command with args and returns its
// combined output.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}
