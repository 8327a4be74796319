// Package schema loads the authoritative setting schema from a
// configdata.yml-style manifest shipped with the host application.
package schema

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/open-dynaMIX/qutebrowser-compare-config/pkg/models"
	"go.uber.org/zap"
	yamlLib "gopkg.in/yaml.v3"
)

// ConfigData reads the host's settings manifest and exposes it as a
// models.Schema. The manifest is a YAML mapping from setting name to an entry
// carrying at least a "default" key; entries marked "renamed" or "deleted"
// are tombstones and not part of the current schema.
type ConfigData struct {
	logger     *zap.Logger
	path       string
	docURLBase string
}

// candidate locations checked when neither --schema nor QUTE_CONFIGDATA is
// set. Glob patterns cover the usual python install layouts.
var defaultManifestGlobs = []string{
	"/usr/lib/python3*/site-packages/qutebrowser/config/configdata.yml",
	"/usr/lib/python3/dist-packages/qutebrowser/config/configdata.yml",
	"/usr/local/lib/python3*/dist-packages/qutebrowser/config/configdata.yml",
	"/usr/local/lib/python3*/site-packages/qutebrowser/config/configdata.yml",
	"/usr/share/qutebrowser/config/configdata.yml",
}

func New(logger *zap.Logger, path string, docURLBase string) *ConfigData {
	return &ConfigData{
		logger:     logger,
		path:       path,
		docURLBase: docURLBase,
	}
}

// GetSchema locates, reads and parses the manifest. Any failure is wrapped in
// models.ErrSchemaUnavailable since the run cannot proceed without it.
func (c *ConfigData) GetSchema(_ context.Context) (*models.Schema, error) {
	path, err := c.locate()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read manifest %q: %v", models.ErrSchemaUnavailable, path, err)
	}

	schema, err := Parse(data, c.docURLBase)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse manifest %q: %v", models.ErrSchemaUnavailable, path, err)
	}

	c.logger.Debug("loaded settings manifest",
		zap.String("path", path),
		zap.Int("settings", schema.Len()))
	return schema, nil
}

func (c *ConfigData) locate() (string, error) {
	if c.path != "" {
		if _, err := os.Stat(c.path); err != nil {
			return "", fmt.Errorf("%w: manifest %q: %v", models.ErrSchemaUnavailable, c.path, err)
		}
		return c.path, nil
	}

	if env := os.Getenv("QUTE_CONFIGDATA"); env != "" {
		if _, err := os.Stat(env); err != nil {
			return "", fmt.Errorf("%w: QUTE_CONFIGDATA %q: %v", models.ErrSchemaUnavailable, env, err)
		}
		return env, nil
	}

	for _, pattern := range defaultManifestGlobs {
		matches, err := filepath.Glob(pattern)
		if err != nil || len(matches) == 0 {
			continue
		}
		return matches[0], nil
	}

	return "", fmt.Errorf("%w: no settings manifest found, pass one with --schemaPath or QUTE_CONFIGDATA", models.ErrSchemaUnavailable)
}

// Parse decodes a manifest document, preserving the declaration order of the
// settings.
func Parse(data []byte, docURLBase string) (*models.Schema, error) {
	var doc yamlLib.Node
	if err := yamlLib.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yamlLib.MappingNode {
		return nil, fmt.Errorf("manifest is not a mapping of settings")
	}

	root := doc.Content[0]
	var entries []models.SettingEntry
	for i := 0; i+1 < len(root.Content); i += 2 {
		nameNode, valNode := root.Content[i], root.Content[i+1]
		if valNode.Kind != yamlLib.MappingNode {
			continue
		}

		var def interface{}
		hasDefault := false
		tombstone := false
		for j := 0; j+1 < len(valNode.Content); j += 2 {
			switch valNode.Content[j].Value {
			case "default":
				if err := valNode.Content[j+1].Decode(&def); err != nil {
					return nil, fmt.Errorf("setting %q: %v", nameNode.Value, err)
				}
				hasDefault = true
			case "renamed", "deleted":
				tombstone = true
			}
		}
		if tombstone || !hasDefault {
			continue
		}

		entries = append(entries, models.SettingEntry{
			Name:    nameNode.Value,
			Default: def,
			DocURL:  docURL(docURLBase, nameNode.Value),
		})
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("manifest contains no settings")
	}
	return models.NewSchema(entries), nil
}

func docURL(base, name string) string {
	if base == "" {
		return ""
	}
	return base + "#" + name
}
