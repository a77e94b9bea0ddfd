// Command schema writes the JSON schemas of the config file and of the level
// files, so that editors can check and complete them while they are written.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
	"github.com/marisvali/counters/gamedata"
)

func main() {
	var configOut, levelOut string
	flag.StringVar(&configOut, "out", "data/config.schema.json",
		"path to write the JSON schema of the config")
	flag.StringVar(&levelOut, "level-out", "data/levels/level.schema.json",
		"path to write the JSON schema of the levels")
	flag.Parse()

	schemas := map[string]*jsonschema.Schema{
		configOut: buildSchema(new(gamedata.Config), "Counters config",
			"Settings read from "+gamedata.ConfigFile+" at start up"),
		levelOut: buildSchema(new(gamedata.Level), "Counters level",
			"Groups of counters that match each other"),
	}
	for path, schema := range schemas {
		if path == "" {
			continue
		}
		if err := writeSchema(path, schema); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write schema: %v\n", err)
			os.Exit(1)
		}
	}
}

func buildSchema(v any, title, description string) *jsonschema.Schema {
	// Every field is optional: configs are read over the defaults. Unknown
	// fields are rejected by the loader, so they are rejected here too.
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
	}
	schema := reflector.Reflect(v)
	schema.Title = title
	schema.Description = description
	return schema
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}

	return nil
}
