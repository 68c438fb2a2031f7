package signatures

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a signature table override from a YAML file. Product can
// tune keywords without a rebuild; an empty path means the built-in table.
func LoadFile(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read signatures file: %w", err)
	}

	var doc struct {
		Signatures []Signature `yaml:"signatures"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse signatures yaml: %w", err)
	}
	if len(doc.Signatures) == 0 {
		return nil, fmt.Errorf("signatures file %s defines no signatures", path)
	}
	for i, sig := range doc.Signatures {
		if sig.Key == "" {
			return nil, fmt.Errorf("signature %d has an empty key", i)
		}
	}
	return NewTable(doc.Signatures), nil
}
