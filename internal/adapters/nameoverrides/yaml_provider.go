package nameoverrides

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fpsh/fpsh/internal/core/ports"
)

// override is one pinned alias name in the YAML file.
type override struct {
	App   string `yaml:"app"`
	Alias string `yaml:"alias"`
}

// YAMLProvider implements the NameOverrideProvider interface by reading
// user-pinned alias names from a YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the YAML file containing name overrides.
func NewYAMLProvider(filePath string) (ports.NameOverrideProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("YAML file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// Overrides reads and parses the configured YAML file into an app-ID to
// alias-name map. If the file does not exist or is empty, it returns an
// empty map and no error.
func (p *YAMLProvider) Overrides() (map[string]string, error) {
	overrides := map[string]string{}

	yamlFile, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// File not existing is not an error for this provider.
			return overrides, nil
		}
		return nil, fmt.Errorf("failed to read name overrides file %s: %w", p.filePath, err)
	}

	if len(yamlFile) == 0 {
		return overrides, nil
	}

	var entries []override
	decoder := yaml.NewDecoder(bytes.NewReader(yamlFile))
	decoder.KnownFields(true)

	if err := decoder.Decode(&entries); err != nil {
		// A file with only comments or a bare document marker decodes to EOF;
		// treat it like an empty file.
		if errors.Is(err, io.EOF) {
			return overrides, nil
		}
		return nil, fmt.Errorf("failed to unmarshal name overrides from %s: %w", p.filePath, err)
	}

	for _, o := range entries {
		if o.App == "" || o.Alias == "" {
			continue
		}
		overrides[o.App] = o.Alias
	}
	return overrides, nil
}
