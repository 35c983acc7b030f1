package expression

import (
	"github.com/apache/arrow-go/v18/arrow"
	"gopkg.in/src-d/go-errors.v1"

	"github.com/clojurians-org/arrow-datafusion/sql"
	"github.com/clojurians-org/arrow-datafusion/sql/types"
)

// ErrEmptyCase is returned when a case expression has no when/then branch
// to take its type from.
var ErrEmptyCase = errors.NewKind("case expression must have at least one when/then branch")

// Type resolves the type an expression produces against a schema. It fails
// when a referenced column is absent from the schema, when an operator or
// function rejects its operand types, or when the expression form is not
// valid in a resolved plan.
//
// Resolution is a pure bottom-up recursion: the type of a node is a
// function of its children's types, the schema and the function
// descriptors, and the first failure is propagated immediately.
func Type(e Expression, schema sql.ExprSchema) (arrow.DataType, error) {
	switch e := e.(type) {
	case *Alias:
		return Type(e.Child, schema)
	case *Sort:
		return Type(e.Child, schema)
	case *Negative:
		return Type(e.Child, schema)
	case *Column:
		return schema.TypeOf(e.Ref)
	case *ScalarVariable:
		return e.Type, nil
	case *Literal:
		return e.Type, nil
	case *Case:
		if len(e.Branches) == 0 {
			return nil, ErrEmptyCase.New()
		}
		return Type(e.Branches[0].Then, schema)
	case *Cast:
		return e.CastType, nil
	case *TryCast:
		return e.CastType, nil
	case *ScalarFunction:
		return functionType(e.Fn, e.Args, schema)
	case *AggregateFunction:
		return functionType(e.Fn, e.Args, schema)
	case *WindowFunction:
		return functionType(e.Fn, e.Args, schema)
	case *Not, *IsNull, *IsNotNull, *Between, *InList:
		return types.Boolean, nil
	case *BinaryExpr:
		lt, err := Type(e.Left, schema)
		if err != nil {
			return nil, err
		}
		rt, err := Type(e.Right, schema)
		if err != nil {
			return nil, err
		}
		return BinaryOperatorType(lt, e.Op, rt)
	case *GetIndexedField:
		t, err := Type(e.Child, schema)
		if err != nil {
			return nil, err
		}
		f, err := types.FieldByKey(t, e.Key)
		if err != nil {
			return nil, err
		}
		return f.Type, nil
	case *Wildcard:
		return nil, sql.ErrWildcardNotResolvable.New("wildcard")
	case *QualifiedWildcard:
		return nil, sql.ErrWildcardNotResolvable.New("qualified wildcard")
	default:
		return nil, sql.ErrUnknownExpression.New(e)
	}
}

// Nullable resolves whether an expression can yield a null value against a
// schema. It shares the failure modes of Type: the only lookups it needs
// are column nullability and, for keyed accesses, the type of the parent.
func Nullable(e Expression, schema sql.ExprSchema) (bool, error) {
	switch e := e.(type) {
	case *Alias:
		return Nullable(e.Child, schema)
	case *Sort:
		return Nullable(e.Child, schema)
	case *Negative:
		return Nullable(e.Child, schema)
	case *Not:
		return Nullable(e.Child, schema)
	case *Between:
		return Nullable(e.Val, schema)
	case *InList:
		return Nullable(e.Val, schema)
	case *Column:
		return schema.IsNullable(e.Ref)
	case *Literal:
		return e.IsNull(), nil
	case *Case:
		// Every then branch is checked: any nullable branch makes the whole
		// expression nullable, no short-circuit on the first failure-free
		// answer.
		nullable := false
		for _, b := range e.Branches {
			n, err := Nullable(b.Then, schema)
			if err != nil {
				return false, err
			}
			nullable = nullable || n
		}
		if nullable {
			return true, nil
		}
		if e.Else == nil {
			// No else branch: the no-match case yields null.
			return true, nil
		}
		return Nullable(e.Else, schema)
	case *Cast:
		return Nullable(e.Child, schema)
	case *ScalarVariable, *TryCast, *ScalarFunction, *AggregateFunction, *WindowFunction:
		return true, nil
	case *IsNull, *IsNotNull:
		return false, nil
	case *BinaryExpr:
		ln, err := Nullable(e.Left, schema)
		if err != nil {
			return false, err
		}
		rn, err := Nullable(e.Right, schema)
		if err != nil {
			return false, err
		}
		return ln || rn, nil
	case *GetIndexedField:
		t, err := Type(e.Child, schema)
		if err != nil {
			return false, err
		}
		f, err := types.FieldByKey(t, e.Key)
		if err != nil {
			return false, err
		}
		return f.Nullable, nil
	case *Wildcard:
		return false, sql.ErrWildcardNotResolvable.New("wildcard")
	case *QualifiedWildcard:
		return false, sql.ErrWildcardNotResolvable.New("qualified wildcard")
	default:
		return false, sql.ErrUnknownExpression.New(e)
	}
}

// ToField resolves the field an expression projects into an output schema.
// Column references keep their name and qualifier; every other expression
// projects an unqualified field named after its canonical rendering.
func ToField(e Expression, schema sql.ExprSchema) (*sql.Field, error) {
	t, err := Type(e, schema)
	if err != nil {
		return nil, err
	}
	nullable, err := Nullable(e, schema)
	if err != nil {
		return nil, err
	}
	if c, ok := e.(*Column); ok {
		return sql.NewQualifiedField(c.Ref.Relation, c.Ref.Name, t, nullable), nil
	}
	return sql.NewField(fieldName(e), t, nullable), nil
}

// CastTo wraps an expression in a cast to the target type. An expression
// already of the target type is returned unchanged, keeping trees minimal;
// a conversion rejected by the cast compatibility predicate is an error
// naming both types. The input expression is never modified.
func CastTo(e Expression, to arrow.DataType, schema sql.ExprSchema) (Expression, error) {
	t, err := Type(e, schema)
	if err != nil {
		return nil, err
	}
	if arrow.TypeEqual(t, to) {
		return e, nil
	}
	if types.CanCast(t, to) {
		return NewCast(e, to), nil
	}
	return nil, sql.ErrCannotCast.New(t, to)
}

// fieldName is the canonical output name of an expression: the alias name
// for aliased expressions, the display form for everything else.
func fieldName(e Expression) string {
	if a, ok := e.(*Alias); ok {
		return a.Name
	}
	return e.String()
}

func functionType(fn *sql.Function, args []Expression, schema sql.ExprSchema) (arrow.DataType, error) {
	argTypes := make([]arrow.DataType, len(args))
	for i, arg := range args {
		t, err := Type(arg, schema)
		if err != nil {
			return nil, err
		}
		argTypes[i] = t
	}
	return fn.ReturnType(argTypes)
}
