package cli

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortRanksNaNGreatest(t *testing.T) {
	out, err := executeCommand(t, "sort", "testdata/dataset.yaml")
	require.NoError(t, err, "sorting never fails on sentinels, that is the point")

	g := goldie.New(t)
	g.Assert(t, "sort_text", []byte(out))
}

func TestSortJSONOutput(t *testing.T) {
	out, err := executeCommand(t, "--format", "json", "sort", "testdata/dataset.yaml")
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"status": "ok",
		"data": {
			"manifest": "testdata/dataset.yaml",
			"series": [
				{"name": "sensor-a", "values": ["-7", "1.5", "2.25", "NaN"]},
				{"name": "sensor-b", "values": ["0", "+Inf"]}
			]
		}
	}`, out)
}

func TestSortMissingManifestExitTwo(t *testing.T) {
	_, err := executeCommand(t, "sort", "no-such-manifest.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
