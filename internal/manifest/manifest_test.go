package manifest

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBasicManifest(t *testing.T) {
	path := writeManifest(t, `
series:
  - name: sensor-a
    description: hourly readings
    values: [1.5, 2.25, 3]
  - name: sensor-b
    values: [-0.5]
`)

	m, err := Load(path)
	require.NoError(t, err)
	require.Len(t, m.Series, 2)

	assert.Equal(t, "sensor-a", m.Series[0].Name)
	assert.Equal(t, "hourly readings", m.Series[0].Description)
	require.Len(t, m.Series[0].Values, 3)
	assert.Equal(t, "2.25", m.Series[0].Values[1].Text)

	v, err := m.Series[0].Values[1].Parse()
	require.NoError(t, err)
	assert.Equal(t, 2.25, v)
}

func TestLoadSentinelSpellings(t *testing.T) {
	path := writeManifest(t, `
series:
  - name: noisy
    values: [NaN, +Inf, -Inf, 2e400]
`)

	m, err := Load(path)
	require.NoError(t, err)
	require.Len(t, m.Series[0].Values, 4)

	parsed := make([]float64, 0, 4)
	for _, s := range m.Series[0].Values {
		v, err := s.Parse()
		require.NoError(t, err, "sample %q must parse", s.Text)
		parsed = append(parsed, v)
	}

	assert.True(t, math.IsNaN(parsed[0]))
	assert.True(t, math.IsInf(parsed[1], 1))
	assert.True(t, math.IsInf(parsed[2], -1))
	assert.True(t, math.IsInf(parsed[3], 1), "out-of-range magnitude parses to +Inf")
}

func TestParseYAMLFloatIdioms(t *testing.T) {
	// Samples arriving as YAML's own float idioms still parse.
	for text, check := range map[string]func(float64) bool{
		".nan":  math.IsNaN,
		".inf":  func(v float64) bool { return math.IsInf(v, 1) },
		"-.inf": func(v float64) bool { return math.IsInf(v, -1) },
	} {
		v, err := Sample{Text: text}.Parse()
		require.NoError(t, err)
		assert.True(t, check(v), "sample %q", text)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	s := Sample{Text: "not-a-number", Line: 7}
	_, err := s.Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 7")
}

func TestLoadRejectsMissingName(t *testing.T) {
	path := writeManifest(t, `
series:
  - values: [1]
`)

	_, err := Load(path)
	require.Error(t, err)

	var le *LoadError
	require.ErrorAs(t, err, &le)
	// Either the schema or the name check may catch this first; both are
	// manifest-shape failures.
	assert.Contains(t, []string{ErrCodeSchema, ErrCodeBadManifest}, le.Code)
}

func TestLoadRejectsNonScalarValues(t *testing.T) {
	path := writeManifest(t, `
series:
  - name: bad
    values: [[1, 2]]
`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsEmptyManifest(t *testing.T) {
	path := writeManifest(t, "series: []\n")

	_, err := Load(path)
	require.Error(t, err)

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, ErrCodeBadManifest, le.Code)
}

func TestLoadRejectsDuplicateNamesAfterNFC(t *testing.T) {
	// "é" spelled precomposed and as e + combining acute: same name after
	// NFC normalization, so the manifest is rejected.
	path := writeManifest(t, "series:\n  - name: \"s\u00e9rie\"\n    values: [1]\n  - name: \"se\u0301rie\"\n    values: [2]\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate series name")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, ErrCodeNotFound, le.Code)
	assert.True(t, errors.As(err, &le))
}
