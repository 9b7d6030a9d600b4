package manifest

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Manifest is a decoded dataset manifest.
type Manifest struct {
	// Series holds the sample series in document order.
	Series []Series `yaml:"series"`
}

// Series is one named sequence of samples.
type Series struct {
	// Name identifies the series. NFC-normalized on load and unique
	// within a manifest.
	Name string `yaml:"name"`

	// Description is free text for reports.
	Description string `yaml:"description,omitempty"`

	// Values holds the samples as raw scalars.
	Values []Sample `yaml:"values"`
}

// Sample preserves the scalar exactly as written in the manifest, with its
// source line for diagnostics. Parsing into a float is deferred to Parse so
// the loader never has to decide whether a NaN is an error.
type Sample struct {
	Text string
	Line int
}

// UnmarshalYAML implements yaml.Unmarshaler, capturing the scalar text and
// position instead of letting yaml pick a Go type.
func (s *Sample) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: sample must be a scalar", n.Line)
	}
	s.Text = n.Value
	s.Line = n.Line
	return nil
}

// Parse converts the sample to a float64. Sentinels are legal: NaN, ±Inf
// and the YAML idioms .nan/.inf/-.inf all parse. Out-of-range magnitudes
// parse to ±Inf rather than failing, matching float literal semantics.
func (s Sample) Parse() (float64, error) {
	text := s.Text
	switch strings.ToLower(text) {
	case ".nan":
		return math.NaN(), nil
	case ".inf", "+.inf":
		return math.Inf(1), nil
	case "-.inf":
		return math.Inf(-1), nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("line %d: invalid sample %q: %w", s.Line, s.Text, err)
	}
	return f, nil
}

// Load reads, schema-validates and decodes a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("manifest not found: %v", err)}
	}
	return Parse(path, data)
}

// Parse schema-validates and decodes manifest bytes. The path is used only
// for error messages.
func Parse(path string, data []byte) (*Manifest, error) {
	if err := validateSchema(path, data); err != nil {
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &LoadError{Code: ErrCodeBadManifest, Message: fmt.Sprintf("decoding %s: %v", path, err)}
	}

	if len(m.Series) == 0 {
		return nil, &LoadError{Code: ErrCodeBadManifest, Message: fmt.Sprintf("%s: manifest has no series", path)}
	}

	seen := make(map[string]bool, len(m.Series))
	for i := range m.Series {
		name := norm.NFC.String(m.Series[i].Name)
		m.Series[i].Name = name
		if name == "" {
			return nil, &LoadError{Code: ErrCodeBadManifest, Message: fmt.Sprintf("%s: series %d has an empty name", path, i)}
		}
		if seen[name] {
			return nil, &LoadError{Code: ErrCodeBadManifest, Message: fmt.Sprintf("%s: duplicate series name %q", path, name)}
		}
		seen[name] = true
	}

	return &m, nil
}

// LoadError reports a manifest that could not be loaded or failed schema
// validation.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Load error codes.
const (
	ErrCodeNotFound    = "E101"
	ErrCodeBadManifest = "E102"
	ErrCodeSchema      = "E103"
)
