package vocab

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML vocabulary file. Sections missing from the file keep their built-in values.
func Load(path string) (*Tables, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: read %s: %w", LogPrefixLoad, path, err)
	}
	return Parse(raw)
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(raw []byte) (*Tables, error) {
	t := Default()
	if len(bytes.TrimSpace(raw)) == 0 {
		return t, nil
	}

	if err := yaml.Unmarshal(raw, t); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", LogPrefixLoad, err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the tables every classifier step depends on.
func (t *Tables) Validate() error {
	if t == nil {
		return ErrNilTables
	}
	if len(t.Intent.Exit.Words()) == 0 {
		return fmt.Errorf("%w: intent.exit is empty", ErrInvalidTables)
	}
	if len(t.Intent.Action.Words()) == 0 {
		return fmt.Errorf("%w: intent.action is empty", ErrInvalidTables)
	}
	for i, lang := range t.Resolver.Languages {
		if lang.Name == "" || lang.Code == "" {
			return fmt.Errorf("%w: resolver.languages[%d] needs name and code", ErrInvalidTables, i)
		}
	}
	return nil
}
