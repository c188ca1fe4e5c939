package config

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/npmhandler/internal/core"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/sjson"
)

// descriptorHeader opens every generated .npmhandler.yaml and .npmhandler.toml.
const descriptorHeader = "# npmhandler configuration file\n# Options: exclude-packages (root-relative directories), npm-path (installer)\n"

// yamlMarshaler is the production implementation of core.Marshaler using YAML.
type yamlMarshaler struct{}

// Marshal marshals with 2-space indentation for both maps and sequences.
func (m *yamlMarshaler) Marshal(v any) ([]byte, error) {
	return yaml.MarshalWithOptions(v, yaml.Indent(2), yaml.IndentSequence(true))
}

// Saver writes the npm-handler options back into the project descriptor.
type Saver struct {
	fs        core.FileSystem
	marshaler core.Marshaler
}

// NewSaver creates a Saver. A nil marshaler selects the YAML default.
func NewSaver(fsys core.FileSystem, marshaler core.Marshaler) *Saver {
	if marshaler == nil {
		marshaler = &yamlMarshaler{}
	}
	return &Saver{fs: fsys, marshaler: marshaler}
}

// Target returns the descriptor LoadExtra would read under root, so that a
// save is always visible to the next load. Without any descriptor it is
// .npmhandler.yaml.
func (s *Saver) Target(ctx context.Context, root string) string {
	for _, name := range descriptorFiles {
		path := filepath.Join(root, name)
		if _, err := s.fs.Stat(ctx, path); err == nil {
			return path
		}
	}
	return filepath.Join(root, YAMLFile)
}

// Save stores opts in the descriptor chosen by Target and returns its path.
func (s *Saver) Save(ctx context.Context, root string, opts Options) (string, error) {
	path := s.Target(ctx, root)
	return path, s.SaveTo(ctx, path, opts)
}

// SaveTo stores opts in the descriptor at path, picking the format from its
// extension. JSON documents keep everything outside extra.npm-handler.
func (s *Saver) SaveTo(ctx context.Context, path string, opts Options) error {
	var (
		data []byte
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = s.marshaler.Marshal(opts)
		data = append([]byte(descriptorHeader), data...)
	case ".toml":
		data, err = toml.Marshal(opts)
		data = append([]byte(descriptorHeader), data...)
	case ".json":
		data, err = s.composerBytes(ctx, path, opts)
	default:
		err = fmt.Errorf("unsupported config format %q (want .yaml, .yml, .toml or .json)", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config to %q: %w", path, err)
	}

	if err := s.fs.WriteFile(ctx, path, data, core.PermFileRW); err != nil {
		return fmt.Errorf("failed to write config to %q: %w", path, err)
	}
	return nil
}

func (s *Saver) composerBytes(ctx context.Context, path string, opts Options) ([]byte, error) {
	data, err := s.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}

	updated, err := sjson.SetBytes(data, "extra."+ExtraKey, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to set %s: %w", ExtraKey, err)
	}

	if len(updated) > 0 && updated[len(updated)-1] != '\n' {
		updated = append(updated, '\n')
	}
	return updated, nil
}

// SaveExtra stores opts for the project at root with the default YAML marshaler.
func SaveExtra(ctx context.Context, fsys core.FileSystem, root string, opts Options) (string, error) {
	return NewSaver(fsys, nil).Save(ctx, root, opts)
}
