package sql

import (
	yaml "gopkg.in/yaml.v2"

	"github.com/clojurians-org/arrow-datafusion/sql/types"
)

type fieldSpec struct {
	Name      string `yaml:"name"`
	Type      string `yaml:"type"`
	Nullable  bool   `yaml:"nullable"`
	Qualifier string `yaml:"qualifier"`
}

// ParseSchema reads a schema from its YAML form, a list of fields:
//
//	- {name: id, type: bigint, qualifier: users}
//	- {name: email, type: text, nullable: true, qualifier: users}
//
// Type names are resolved with types.ParseType.
func ParseSchema(data []byte) (Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return s, nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (s *Schema) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var specs []fieldSpec
	if err := unmarshal(&specs); err != nil {
		return err
	}

	fields := make([]*Field, len(specs))
	for i, spec := range specs {
		t, err := types.ParseType(spec.Type)
		if err != nil {
			return err
		}
		fields[i] = NewQualifiedField(spec.Qualifier, spec.Name, t, spec.Nullable)
	}

	schema, err := NewSchema(fields...)
	if err != nil {
		return err
	}
	*s = schema
	return nil
}
