package manifest

import (
	_ "embed"
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/encoding/yaml"
)

//go:embed schema.cue
var schemaSource string

var (
	schemaOnce  sync.Once
	schemaValue cue.Value
	schemaErr   error
)

// schema compiles the embedded CUE schema once per process.
func schema() (cue.Value, error) {
	schemaOnce.Do(func() {
		ctx := cuecontext.New()
		schemaValue = ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
		if err := schemaValue.Err(); err != nil {
			schemaErr = fmt.Errorf("compiling manifest schema: %w", err)
		}
	})
	return schemaValue, schemaErr
}

// validateSchema checks raw manifest bytes against the embedded schema.
// Violations carry CUE's position information in the message.
func validateSchema(path string, data []byte) error {
	sv, err := schema()
	if err != nil {
		return &LoadError{Code: ErrCodeSchema, Message: err.Error()}
	}
	if err := yaml.Validate(data, sv); err != nil {
		return &LoadError{Code: ErrCodeSchema, Message: fmt.Sprintf("%s: %v", path, err)}
	}
	return nil
}
