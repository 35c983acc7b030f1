package sql

import (
	"strings"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/clojurians-org/arrow-datafusion/internal/similartext"
)

// Schema is an ordered set of fields describing the columns visible to an
// expression. It is never mutated by resolution.
type Schema []*Field

// NewSchema creates a schema from the given fields. It returns an error if
// two fields share the same qualified name.
func NewSchema(fields ...*Field) (Schema, error) {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		name := strings.ToLower(f.QualifiedName())
		if _, ok := seen[name]; ok {
			return nil, ErrDuplicateField.New(f.QualifiedName())
		}
		seen[name] = struct{}{}
	}
	return Schema(fields), nil
}

// TypeOf implements the ExprSchema interface.
func (s Schema) TypeOf(c Column) (arrow.DataType, error) {
	f, err := s.FieldFor(c)
	if err != nil {
		return nil, err
	}
	return f.Type, nil
}

// IsNullable implements the ExprSchema interface.
func (s Schema) IsNullable(c Column) (bool, error) {
	f, err := s.FieldFor(c)
	if err != nil {
		return false, err
	}
	return f.Nullable, nil
}

// FieldFor returns the field the given reference resolves to. A qualified
// reference must match both qualifier and name; an unqualified reference
// matches by name alone but fails if the name is present in more than one
// relation.
func (s Schema) FieldFor(c Column) (*Field, error) {
	if c.Qualified() {
		for _, f := range s {
			if strings.EqualFold(f.Qualifier, c.Relation) && strings.EqualFold(f.Name, c.Name) {
				return f, nil
			}
		}
		return nil, ErrTableColumnNotFound.New(c.Relation, c.Name, similartext.Find(s.FieldNames(), c.Name))
	}

	var found *Field
	var relations []string
	for _, f := range s {
		if strings.EqualFold(f.Name, c.Name) {
			found = f
			relations = append(relations, f.Qualifier)
		}
	}
	switch len(relations) {
	case 0:
		return nil, ErrColumnNotFound.New(c.Name, similartext.Find(s.FieldNames(), c.Name))
	case 1:
		return found, nil
	default:
		return nil, ErrAmbiguousColumnName.New(c.Name, strings.Join(relations, ", "))
	}
}

// IndexOf returns the index of the field the reference resolves to, or -1.
func (s Schema) IndexOf(c Column) int {
	f, err := s.FieldFor(c)
	if err != nil {
		return -1
	}
	for i, f2 := range s {
		if f == f2 {
			return i
		}
	}
	return -1
}

// Contains returns whether the reference resolves against the schema.
func (s Schema) Contains(c Column) bool {
	_, err := s.FieldFor(c)
	return err == nil
}

// FieldNames returns the unqualified names of all fields, in order.
func (s Schema) FieldNames() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// Equals checks whether the given schema is equal to this one.
func (s Schema) Equals(s2 Schema) bool {
	if len(s) != len(s2) {
		return false
	}
	for i := range s {
		if !s[i].Equals(s2[i]) {
			return false
		}
	}
	return true
}

// JoinSchemas builds the schema of a join: the left fields followed by the
// right fields. Qualified name collisions between the two sides are
// rejected.
func JoinSchemas(left, right Schema) (Schema, error) {
	fields := make([]*Field, 0, len(left)+len(right))
	fields = append(fields, left...)
	fields = append(fields, right...)
	return NewSchema(fields...)
}
