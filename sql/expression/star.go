package expression

// Wildcard represents the selection of all available fields. It is a
// placeholder that must be expanded to column references before a plan is
// resolved; resolving it is always an error.
type Wildcard struct{}

// NewWildcard returns a new Wildcard expression.
func NewWildcard() *Wildcard {
	return new(Wildcard)
}

// Children implements the Expression interface.
func (*Wildcard) Children() []Expression {
	return nil
}

func (*Wildcard) String() string {
	return "*"
}

// QualifiedWildcard represents the selection of all fields of one relation.
// Like Wildcard, it never survives into a resolved plan.
type QualifiedWildcard struct {
	Relation string
}

// NewQualifiedWildcard returns a wildcard restricted to a relation.
func NewQualifiedWildcard(relation string) *QualifiedWildcard {
	return &QualifiedWildcard{Relation: relation}
}

// Children implements the Expression interface.
func (*QualifiedWildcard) Children() []Expression {
	return nil
}

func (w *QualifiedWildcard) String() string {
	return w.Relation + ".*"
}
