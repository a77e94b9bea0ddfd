package gamedata

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// LoadYAML decodes the YAML file at path into v. Fields of v that are not in
// the file keep their value, keys in the file that v does not have are an
// error.
func LoadYAML(fsys FS, path string, v any) error {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return err
	}
	if err = yaml.UnmarshalWithOptions(data, v,
		yaml.DisallowUnknownField()); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
