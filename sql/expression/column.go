package expression

import "github.com/clojurians-org/arrow-datafusion/sql"

// Column is a leaf expression referencing a column of the schema in scope.
type Column struct {
	Ref sql.Column
}

// NewColumn creates an unqualified column reference expression.
func NewColumn(name string) *Column {
	return &Column{Ref: sql.NewColumn(name)}
}

// NewQualifiedColumn creates a column reference expression qualified with a
// relation name.
func NewQualifiedColumn(relation, name string) *Column {
	return &Column{Ref: sql.NewQualifiedColumn(relation, name)}
}

// Children implements the Expression interface.
func (*Column) Children() []Expression {
	return nil
}

func (c *Column) String() string {
	return c.Ref.String()
}
