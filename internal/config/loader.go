package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/npmhandler/internal/core"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
)

// Descriptor file names looked up in the project root, in priority order.
const (
	YAMLFile     = ".npmhandler.yaml"
	YMLFile      = ".npmhandler.yml"
	TOMLFile     = ".npmhandler.toml"
	ComposerFile = "composer.json"
)

// descriptorFiles is the lookup order shared by LoadExtra and Saver.Target.
var descriptorFiles = []string{YAMLFile, YMLFile, TOMLFile, ComposerFile}

// Descriptor is the project configuration the host hands to the handler.
type Descriptor struct {
	// Path is the file the extra configuration came from; empty when none was found.
	Path string

	// Extra is the host's extra configuration mapping.
	Extra map[string]any
}

// Found reports whether a descriptor file was read.
func (d *Descriptor) Found() bool {
	return d.Path != ""
}

// DescriptorParseError indicates a descriptor file exists but cannot be decoded.
type DescriptorParseError struct {
	Path string
	Err  error
}

func (e *DescriptorParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *DescriptorParseError) Unwrap() error {
	return e.Err
}

// LoadExtraFn is swapped in tests.
var LoadExtraFn = LoadExtra

// LoadExtra locates and reads the project descriptor under root.
// An explicit path (or $NPMHANDLER_CONFIG) wins over the well-known files.
// A missing descriptor yields an empty mapping and no error.
func LoadExtra(ctx context.Context, fsys core.FileSystem, root, explicit string) (*Descriptor, error) {
	if explicit == "" {
		explicit = os.Getenv(EnvConfigPath)
	}

	if explicit != "" {
		path := explicit
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}
		return loadFile(ctx, fsys, path)
	}

	for _, name := range descriptorFiles {
		path := filepath.Join(root, name)
		if _, err := fsys.Stat(ctx, path); err != nil {
			continue
		}
		return loadFile(ctx, fsys, path)
	}

	return &Descriptor{Extra: map[string]any{}}, nil
}

func loadFile(ctx context.Context, fsys core.FileSystem, path string) (*Descriptor, error) {
	data, err := fsys.ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file %q not found: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var extra map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		extra, err = decodeYAML(data)
	case ".toml":
		extra, err = decodeTOML(data)
	case ".json":
		extra, err = decodeComposer(data)
	default:
		err = fmt.Errorf("unsupported config format %q (want .yaml, .yml, .toml or .json)", filepath.Ext(path))
	}
	if err != nil {
		return nil, &DescriptorParseError{Path: path, Err: err}
	}

	return &Descriptor{Path: path, Extra: extra}, nil
}

// decodeYAML reads a .npmhandler.yaml document. Unknown keys are rejected.
func decodeYAML(data []byte) (map[string]any, error) {
	var opts Options
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return opts.Extra(), nil
}

// decodeTOML reads a .npmhandler.toml document. Unknown keys are rejected.
func decodeTOML(data []byte) (map[string]any, error) {
	var opts Options
	decoder := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := decoder.Decode(&opts); err != nil {
		return nil, err
	}
	return opts.Extra(), nil
}

// decodeComposer returns the "extra" object of a composer.json document.
func decodeComposer(data []byte) (map[string]any, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}

	extra := gjson.GetBytes(data, "extra")
	if !extra.Exists() || !extra.IsObject() {
		return map[string]any{}, nil
	}

	m, ok := extra.Value().(map[string]any)
	if !ok {
		return map[string]any{}, nil
	}
	return m, nil
}
