package pipeline

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Parse loads a YAML-syntax pipeline document from path and applies its
// field defaults. It fails with *IOErr if the file cannot be read, or
// *ParseErr if it is not valid YAML / does not match the Pipeline shape.
func Parse(path string) (*Pipeline, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOErr{Path: path, Err: err}
	}
	return Unmarshal(path, raw)
}

// Unmarshal decodes raw YAML bytes into a Pipeline and applies defaults.
// path is used only to annotate errors.
func Unmarshal(path string, raw []byte) (*Pipeline, error) {
	var p Pipeline
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, &ParseErr{Path: path, Err: err}
	}
	p.ApplyDefaults()
	return &p, nil
}
