package expression

// Visitor visits expressions of an expression tree.
type Visitor interface {
	// Visit is called for every expression of the tree. If the resulting
	// visitor is nil children are skipped.
	Visit(e Expression) Visitor
}

// Walk traverses the expression tree in depth-first order: it starts by
// calling v.Visit(e); e must not be nil. If the visitor returned by
// v.Visit(e) is not nil, Walk is invoked recursively with the returned
// visitor for each child of e, followed by a call of v.Visit(nil).
func Walk(v Visitor, e Expression) {
	if v = v.Visit(e); v == nil {
		return
	}
	for _, child := range e.Children() {
		Walk(v, child)
	}
	v.Visit(nil)
}

type inspector func(Expression) bool

func (f inspector) Visit(e Expression) Visitor {
	if f(e) {
		return f
	}
	return nil
}

// Inspect traverses the tree in depth-first order: it starts by calling
// f(e); e must not be nil. If f returns true, Inspect invokes f recursively
// for each child of e, followed by a call of f(nil).
func Inspect(e Expression, f func(Expression) bool) {
	Walk(inspector(f), e)
}

// Depth returns the depth of the expression tree: 1 for a leaf, one more
// than the deepest child otherwise. It walks with an explicit stack
// instead of recursing, so callers can measure a pathological tree in
// order to reject it.
func Depth(e Expression) int {
	type frame struct {
		e     Expression
		depth int
	}
	var max int
	stack := []frame{{e, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > max {
			max = f.depth
		}
		for _, child := range f.e.Children() {
			stack = append(stack, frame{child, f.depth + 1})
		}
	}
	return max
}
