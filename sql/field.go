package sql

import "github.com/apache/arrow-go/v18/arrow"

// Field is the named, typed, nullable descriptor an expression projects
// into an output row. Schemas are ordered sequences of fields.
type Field struct {
	// Qualifier is the name of the relation the field belongs to, or empty.
	Qualifier string
	// Name is the name of the field.
	Name string
	// Type is the arrow data type of the field.
	Type arrow.DataType
	// Nullable is true if the field can contain null values.
	Nullable bool
}

// NewField creates a field without a relation qualifier.
func NewField(name string, t arrow.DataType, nullable bool) *Field {
	return &Field{Name: name, Type: t, Nullable: nullable}
}

// NewQualifiedField creates a field belonging to a named relation.
func NewQualifiedField(qualifier, name string, t arrow.DataType, nullable bool) *Field {
	return &Field{Qualifier: qualifier, Name: name, Type: t, Nullable: nullable}
}

// QualifiedName returns the field name prefixed with its qualifier, if any.
func (f *Field) QualifiedName() string {
	if f.Qualifier != "" {
		return f.Qualifier + "." + f.Name
	}
	return f.Name
}

// ToColumn returns a column reference pointing at this field.
func (f *Field) ToColumn() Column {
	return Column{Relation: f.Qualifier, Name: f.Name}
}

// Equals checks whether two fields are equal.
func (f *Field) Equals(f2 *Field) bool {
	return f.Name == f2.Name &&
		f.Qualifier == f2.Qualifier &&
		f.Nullable == f2.Nullable &&
		arrow.TypeEqual(f.Type, f2.Type)
}
