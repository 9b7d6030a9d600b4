package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/finite/internal/audit"
)

// executeCommand runs the root command with args and captures stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheckRejectsReportedAndExitOne(t *testing.T) {
	out, err := executeCommand(t, "check", "testdata/dataset.yaml")
	require.Error(t, err, "rejects must map to a failing exit code")
	assert.Equal(t, ExitFailure, GetExitCode(err))

	g := goldie.New(t)
	g.Assert(t, "check_text", []byte(out))
}

func TestCheckCleanManifestExitZero(t *testing.T) {
	out, err := executeCommand(t, "check", "testdata/clean.yaml")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "check_clean_text", []byte(out))
}

func TestCheckJSONOutput(t *testing.T) {
	out, err := executeCommand(t, "--format", "json", "check", "testdata/dataset.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	assert.JSONEq(t, `{
		"status": "ok",
		"data": {
			"manifest": "testdata/dataset.yaml",
			"series": [
				{
					"name": "sensor-a",
					"samples": 4,
					"clean": 3,
					"rejects": [{"index": 2, "value": "NaN", "code": "NAN"}]
				},
				{
					"name": "sensor-b",
					"samples": 2,
					"clean": 1,
					"rejects": [{"index": 0, "value": "+Inf", "code": "POS_INF"}]
				}
			],
			"samples": 6,
			"rejected": 2
		}
	}`, out)
}

func TestCheckMissingManifestExitTwo(t *testing.T) {
	out, err := executeCommand(t, "check", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "E101")
}

func TestCheckRecordsRejectsToAuditDB(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "audit.db")

	out, err := executeCommand(t, "check", "--db", dbPath, "testdata/dataset.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "rejected 2 of 6 samples")

	store, err := audit.Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	rejects, err := store.ListRejects(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, rejects, 2)

	assert.Equal(t, "sensor-a", rejects[0].Series)
	assert.Equal(t, "NaN", rejects[0].Value)
	assert.Equal(t, "NAN", rejects[0].Code)
	assert.Equal(t, "testdata/dataset.yaml", rejects[0].Manifest)

	// Both rejects share one run token.
	assert.Equal(t, rejects[0].RunToken, rejects[1].RunToken)
}

func TestCheckCleanManifestSkipsAuditWrite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "audit.db")

	_, err := executeCommand(t, "check", "--db", dbPath, "testdata/clean.yaml")
	require.NoError(t, err)

	// No rejects: the database is never even created.
	assert.NoFileExists(t, dbPath)
}
