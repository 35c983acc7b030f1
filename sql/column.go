package sql

import "strings"

// Column is a reference to a column of a relation in scope. The relation
// qualifier is optional: an unqualified reference matches a column of that
// name in any relation of the schema, as long as only one exists.
type Column struct {
	// Relation is the name of the relation the column belongs to, or empty
	// for an unqualified reference.
	Relation string
	// Name is the name of the column within its relation.
	Name string
}

// NewColumn creates an unqualified column reference.
func NewColumn(name string) Column {
	return Column{Name: name}
}

// NewQualifiedColumn creates a column reference qualified with a relation
// name.
func NewQualifiedColumn(relation, name string) Column {
	return Column{Relation: relation, Name: name}
}

// ParseColumn parses a column reference in "relation.name" or "name" form.
// Only the first dot is significant, so nested names keep their dots.
func ParseColumn(s string) Column {
	if idx := strings.Index(s, "."); idx >= 0 {
		return Column{Relation: s[:idx], Name: s[idx+1:]}
	}
	return Column{Name: s}
}

// Qualified returns whether the reference carries a relation qualifier.
func (c Column) Qualified() bool {
	return c.Relation != ""
}

func (c Column) String() string {
	if c.Relation != "" {
		return c.Relation + "." + c.Name
	}
	return c.Name
}
