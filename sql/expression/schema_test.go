package expression

import (
	"fmt"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/stretchr/testify/require"

	"github.com/clojurians-org/arrow-datafusion/sql"
	"github.com/clojurians-org/arrow-datafusion/sql/types"
)

// testSchema is the scope all resolution tests run against:
// t1.a bigint, t1.b text nullable, t1.c boolean, t2.d double nullable,
// t1.s struct<name: text, age: int64 nullable>, t1.l list<int64>.
func testSchema(t *testing.T) sql.Schema {
	t.Helper()
	s, err := sql.NewSchema(
		sql.NewQualifiedField("t1", "a", types.Int64, false),
		sql.NewQualifiedField("t1", "b", types.Utf8, true),
		sql.NewQualifiedField("t1", "c", types.Boolean, false),
		sql.NewQualifiedField("t2", "d", types.Float64, true),
		sql.NewQualifiedField("t1", "s", types.StructOf(
			arrow.Field{Name: "name", Type: types.Utf8},
			arrow.Field{Name: "age", Type: types.Int64, Nullable: true},
		), false),
		sql.NewQualifiedField("t1", "l", types.ListOf(types.Int64), false),
	)
	require.NoError(t, err)
	return s
}

func lit(t *testing.T, v interface{}, typ arrow.DataType) *Literal {
	t.Helper()
	l, err := NewLiteral(v, typ)
	require.NoError(t, err)
	return l
}

func upperFn() *sql.Function {
	return sql.NewFunction("upper", func(args []arrow.DataType) (arrow.DataType, error) {
		if len(args) != 1 || !types.IsText(args[0]) {
			return nil, sql.ErrFunctionSignature.New("upper", args)
		}
		return types.Utf8, nil
	})
}

func sumFn() *sql.Function {
	return sql.NewFunction("sum", func(args []arrow.DataType) (arrow.DataType, error) {
		if len(args) != 1 || !types.IsNumeric(args[0]) {
			return nil, sql.ErrFunctionSignature.New("sum", args)
		}
		return types.Int64, nil
	})
}

func TestTypeLeaves(t *testing.T) {
	require := require.New(t)
	schema := testSchema(t)

	typ, err := Type(NewColumn("a"), schema)
	require.NoError(err)
	require.True(arrow.TypeEqual(types.Int64, typ))

	typ, err = Type(NewQualifiedColumn("t2", "d"), schema)
	require.NoError(err)
	require.True(arrow.TypeEqual(types.Float64, typ))

	typ, err = Type(lit(t, int64(1), types.Int64), schema)
	require.NoError(err)
	require.True(arrow.TypeEqual(types.Int64, typ))

	typ, err = Type(NewNullLiteral(types.Utf8), schema)
	require.NoError(err)
	require.True(arrow.TypeEqual(types.Utf8, typ))

	typ, err = Type(NewScalarVariable("max_batch_size", types.Int64), schema)
	require.NoError(err)
	require.True(arrow.TypeEqual(types.Int64, typ))

	_, err = Type(NewColumn("nope"), schema)
	require.Error(err)
	require.True(sql.ErrColumnNotFound.Is(err))
}

func TestTypePassthroughUnary(t *testing.T) {
	require := require.New(t)
	schema := testSchema(t)

	for _, e := range []Expression{
		NewAlias(NewColumn("a"), "x"),
		NewSort(NewColumn("a"), true, false),
		NewNegative(NewColumn("a")),
	} {
		typ, err := Type(e, schema)
		require.NoError(err, "%s", e)
		require.True(arrow.TypeEqual(types.Int64, typ), "%s", e)
	}
}

func TestTypeBooleanProducing(t *testing.T) {
	require := require.New(t)
	schema := testSchema(t)

	for _, e := range []Expression{
		NewNot(NewColumn("c")),
		NewIsNull(NewColumn("b")),
		NewIsNotNull(NewColumn("b")),
		NewBetween(NewColumn("a"), lit(t, int64(0), types.Int64), lit(t, int64(10), types.Int64)),
		NewInList(NewColumn("a"), []Expression{lit(t, int64(1), types.Int64)}),
	} {
		typ, err := Type(e, schema)
		require.NoError(err, "%s", e)
		require.True(arrow.TypeEqual(types.Boolean, typ), "%s", e)
	}
}

func TestTypeBinaryExpr(t *testing.T) {
	require := require.New(t)
	schema := testSchema(t)

	typ, err := Type(NewBinaryExpr(NewColumn("a"), OpPlus, lit(t, int64(1), types.Int64)), schema)
	require.NoError(err)
	require.True(arrow.TypeEqual(types.Int64, typ))

	typ, err = Type(NewBinaryExpr(NewColumn("a"), OpPlus, NewColumn("d")), schema)
	require.NoError(err)
	require.True(arrow.TypeEqual(types.Float64, typ))

	typ, err = Type(NewBinaryExpr(NewColumn("a"), OpLt, NewColumn("d")), schema)
	require.NoError(err)
	require.True(arrow.TypeEqual(types.Boolean, typ))

	typ, err = Type(NewBinaryExpr(NewColumn("c"), OpAnd, NewColumn("c")), schema)
	require.NoError(err)
	require.True(arrow.TypeEqual(types.Boolean, typ))

	// incompatible operand types are rejected by the operator rule
	_, err = Type(NewBinaryExpr(NewColumn("b"), OpPlus, NewColumn("a")), schema)
	require.Error(err)
	require.True(sql.ErrIncompatibleOperands.Is(err))

	_, err = Type(NewBinaryExpr(NewColumn("a"), OpAnd, NewColumn("c")), schema)
	require.Error(err)
	require.True(sql.ErrIncompatibleOperands.Is(err))

	// failures below either operand propagate first
	_, err = Type(NewBinaryExpr(NewColumn("nope"), OpPlus, NewColumn("a")), schema)
	require.Error(err)
	require.True(sql.ErrColumnNotFound.Is(err))
}

func TestTypeCase(t *testing.T) {
	require := require.New(t)
	schema := testSchema(t)

	c := NewCase(nil, []CaseBranch{
		{When: NewColumn("c"), Then: NewColumn("a")},
		{When: NewNot(NewColumn("c")), Then: lit(t, int64(0), types.Int64)},
	}, NewNullLiteral(types.Int64))

	typ, err := Type(c, schema)
	require.NoError(err)
	require.True(arrow.TypeEqual(types.Int64, typ))

	_, err = Type(NewCase(nil, nil, nil), schema)
	require.Error(err)
	require.True(ErrEmptyCase.Is(err))
}

func TestTypeCasts(t *testing.T) {
	require := require.New(t)
	schema := testSchema(t)

	typ, err := Type(NewCast(NewColumn("a"), types.Utf8), schema)
	require.NoError(err)
	require.True(arrow.TypeEqual(types.Utf8, typ))

	typ, err = Type(NewTryCast(NewColumn("b"), types.Int64), schema)
	require.NoError(err)
	require.True(arrow.TypeEqual(types.Int64, typ))
}

func TestTypeFunctions(t *testing.T) {
	require := require.New(t)
	schema := testSchema(t)

	typ, err := Type(NewScalarFunction(upperFn(), NewColumn("b")), schema)
	require.NoError(err)
	require.True(arrow.TypeEqual(types.Utf8, typ))

	typ, err = Type(NewAggregateFunction(sumFn(), NewColumn("a")), schema)
	require.NoError(err)
	require.True(arrow.TypeEqual(types.Int64, typ))

	rowNumber := sql.NewFunction("row_number", sql.FixedReturnType(types.Int64))
	typ, err = Type(NewWindowFunction(rowNumber, nil,
		[]Expression{NewColumn("c")},
		[]Expression{NewSort(NewColumn("a"), true, false)},
	), schema)
	require.NoError(err)
	require.True(arrow.TypeEqual(types.Int64, typ))

	// the signature resolver rejects bad argument types
	_, err = Type(NewScalarFunction(upperFn(), NewColumn("a")), schema)
	require.Error(err)
	require.True(sql.ErrFunctionSignature.Is(err))

	// argument resolution failures propagate before the resolver runs
	_, err = Type(NewScalarFunction(upperFn(), NewColumn("nope")), schema)
	require.Error(err)
	require.True(sql.ErrColumnNotFound.Is(err))
}

func TestTypeGetIndexedField(t *testing.T) {
	require := require.New(t)
	schema := testSchema(t)

	typ, err := Type(NewGetIndexedField(NewColumn("s"), "name"), schema)
	require.NoError(err)
	require.True(arrow.TypeEqual(types.Utf8, typ))

	typ, err = Type(NewGetIndexedField(NewColumn("l"), 0), schema)
	require.NoError(err)
	require.True(arrow.TypeEqual(types.Int64, typ))

	_, err = Type(NewGetIndexedField(NewColumn("s"), "email"), schema)
	require.Error(err)
	require.True(types.ErrFieldNotFound.Is(err))

	_, err = Type(NewGetIndexedField(NewColumn("a"), "name"), schema)
	require.Error(err)
	require.True(types.ErrFieldNotFound.Is(err))
}

func TestTypeWildcards(t *testing.T) {
	require := require.New(t)
	schema := testSchema(t)

	_, err := Type(NewWildcard(), schema)
	require.Error(err)
	require.True(sql.ErrWildcardNotResolvable.Is(err))

	_, err = Type(NewQualifiedWildcard("t1"), schema)
	require.Error(err)
	require.True(sql.ErrWildcardNotResolvable.Is(err))

	// same against an empty schema
	_, err = Type(NewWildcard(), sql.Schema{})
	require.Error(err)
	require.True(sql.ErrWildcardNotResolvable.Is(err))
}

func TestNullableLeaves(t *testing.T) {
	require := require.New(t)
	schema := testSchema(t)

	n, err := Nullable(NewColumn("a"), schema)
	require.NoError(err)
	require.False(n)

	n, err = Nullable(NewColumn("b"), schema)
	require.NoError(err)
	require.True(n)

	n, err = Nullable(lit(t, int64(1), types.Int64), schema)
	require.NoError(err)
	require.False(n)

	// a null literal of type string is a nullable string
	n, err = Nullable(NewNullLiteral(types.Utf8), schema)
	require.NoError(err)
	require.True(n)

	_, err = Nullable(NewColumn("nope"), schema)
	require.Error(err)
	require.True(sql.ErrColumnNotFound.Is(err))
}

func TestNullablePassthrough(t *testing.T) {
	require := require.New(t)
	schema := testSchema(t)

	for _, tt := range []struct {
		e        Expression
		expected bool
	}{
		{NewAlias(NewColumn("a"), "x"), false},
		{NewAlias(NewColumn("b"), "x"), true},
		{NewSort(NewColumn("b"), false, true), true},
		{NewNegative(NewColumn("a")), false},
		{NewNot(NewColumn("b")), true},
		{NewNot(NewColumn("c")), false},
		{NewCast(NewColumn("a"), types.Utf8), false},
		{NewCast(NewColumn("b"), types.Int64), true},
		// between/in-list forward the probed expression, not the list
		{NewBetween(NewColumn("a"), NewColumn("b"), NewColumn("b")), false},
		{NewBetween(NewColumn("b"), lit(t, "a", types.Utf8), lit(t, "z", types.Utf8)), true},
		{NewInList(NewColumn("a"), []Expression{NewColumn("d")}), false},
	} {
		n, err := Nullable(tt.e, schema)
		require.NoError(err, "%s", tt.e)
		require.Equal(tt.expected, n, "%s", tt.e)
	}
}

func TestNullableAlwaysNonNull(t *testing.T) {
	require := require.New(t)
	schema := testSchema(t)

	// null checks never yield null themselves
	for _, e := range []Expression{
		NewIsNull(NewColumn("b")),
		NewIsNotNull(NewColumn("b")),
	} {
		n, err := Nullable(e, schema)
		require.NoError(err, "%s", e)
		require.False(n, "%s", e)
	}
}

func TestNullableAlwaysNullable(t *testing.T) {
	require := require.New(t)
	schema := testSchema(t)

	for _, e := range []Expression{
		NewScalarVariable("v", types.Int64),
		NewTryCast(NewColumn("a"), types.Utf8),
		NewScalarFunction(upperFn(), NewColumn("b")),
		NewAggregateFunction(sumFn(), NewColumn("a")),
		NewWindowFunction(sql.NewFunction("row_number", sql.FixedReturnType(types.Int64)), nil, nil, nil),
	} {
		n, err := Nullable(e, schema)
		require.NoError(err, "%s", e)
		require.True(n, "%s", e)
	}
}

func TestNullableBinaryExpr(t *testing.T) {
	require := require.New(t)
	schema := testSchema(t)

	testCases := []struct {
		left, right Expression
		expected    bool
	}{
		{NewColumn("a"), lit(t, int64(1), types.Int64), false},
		{NewColumn("a"), NewColumn("d"), true},
		{NewColumn("d"), NewColumn("a"), true},
		{NewColumn("d"), NewColumn("d"), true},
	}

	for _, tt := range testCases {
		e := NewBinaryExpr(tt.left, OpPlus, tt.right)
		n, err := Nullable(e, schema)
		require.NoError(err, "%s", e)
		require.Equal(tt.expected, n, "%s", e)

		// nullable iff at least one operand is nullable
		ln, err := Nullable(tt.left, schema)
		require.NoError(err)
		rn, err := Nullable(tt.right, schema)
		require.NoError(err)
		require.Equal(ln || rn, n, "%s", e)
	}
}

func TestNullableCase(t *testing.T) {
	require := require.New(t)
	schema := testSchema(t)

	branch := func(then Expression) []CaseBranch {
		return []CaseBranch{{When: NewColumn("c"), Then: then}}
	}

	// no else branch: always nullable
	n, err := Nullable(NewCase(nil, branch(NewColumn("a")), nil), schema)
	require.NoError(err)
	require.True(n)

	// non-nullable branches and else
	n, err = Nullable(NewCase(nil, branch(NewColumn("a")), lit(t, int64(0), types.Int64)), schema)
	require.NoError(err)
	require.False(n)

	// a nullable then branch taints the whole expression
	n, err = Nullable(NewCase(nil, []CaseBranch{
		{When: NewColumn("c"), Then: NewColumn("a")},
		{When: NewColumn("c"), Then: NewTryCast(NewColumn("a"), types.Utf8)},
	}, lit(t, int64(0), types.Int64)), schema)
	require.NoError(err)
	require.True(n)

	// a nullable else taints it too
	n, err = Nullable(NewCase(nil, branch(NewColumn("a")), NewColumn("d")), schema)
	require.NoError(err)
	require.True(n)
}

func TestNullableGetIndexedField(t *testing.T) {
	require := require.New(t)
	schema := testSchema(t)

	n, err := Nullable(NewGetIndexedField(NewColumn("s"), "name"), schema)
	require.NoError(err)
	require.False(n)

	n, err = Nullable(NewGetIndexedField(NewColumn("s"), "age"), schema)
	require.NoError(err)
	require.True(n)

	n, err = Nullable(NewGetIndexedField(NewColumn("l"), 3), schema)
	require.NoError(err)
	require.True(n)
}

func TestNullableWildcards(t *testing.T) {
	require := require.New(t)
	schema := testSchema(t)

	_, err := Nullable(NewWildcard(), schema)
	require.Error(err)
	require.True(sql.ErrWildcardNotResolvable.Is(err))

	_, err = Nullable(NewQualifiedWildcard("t1"), schema)
	require.Error(err)
	require.True(sql.ErrWildcardNotResolvable.Is(err))
}

func TestToField(t *testing.T) {
	require := require.New(t)
	schema := testSchema(t)

	// column references keep name and qualifier verbatim
	f, err := ToField(NewQualifiedColumn("t1", "b"), schema)
	require.NoError(err)
	require.Equal("t1", f.Qualifier)
	require.Equal("b", f.Name)
	require.True(arrow.TypeEqual(types.Utf8, f.Type))
	require.True(f.Nullable)

	// aliases project the alias name, unqualified
	f, err = ToField(NewAlias(NewColumn("a"), "total"), schema)
	require.NoError(err)
	require.Equal("", f.Qualifier)
	require.Equal("total", f.Name)
	require.True(arrow.TypeEqual(types.Int64, f.Type))

	// everything else projects its display form
	e := NewBinaryExpr(NewColumn("a"), OpPlus, lit(t, int64(1), types.Int64))
	f, err = ToField(e, schema)
	require.NoError(err)
	require.Equal("", f.Qualifier)
	require.Equal("a + 1", f.Name)
	require.True(arrow.TypeEqual(types.Int64, f.Type))
	require.False(f.Nullable)

	_, err = ToField(NewColumn("nope"), schema)
	require.Error(err)
	require.True(sql.ErrColumnNotFound.Is(err))
}

func TestCastTo(t *testing.T) {
	require := require.New(t)
	schema := testSchema(t)

	// already the target type: same expression back, no wrapper
	e := NewColumn("a")
	out, err := CastTo(e, types.Int64, schema)
	require.NoError(err)
	require.Same(Expression(e), out)

	// legal cast: wrapped in a cast node of the target type
	out, err = CastTo(e, types.Utf8, schema)
	require.NoError(err)
	c, ok := out.(*Cast)
	require.True(ok)
	require.Same(Expression(e), c.Child)
	typ, err := Type(out, schema)
	require.NoError(err)
	require.True(arrow.TypeEqual(types.Utf8, typ))

	// round trip: casting the wrapper back resolves to the original type
	back, err := CastTo(out, types.Int64, schema)
	require.NoError(err)
	typ, err = Type(back, schema)
	require.NoError(err)
	require.True(arrow.TypeEqual(types.Int64, typ))

	// illegal cast names both types
	_, err = CastTo(NewColumn("c"), types.Date32, schema)
	require.Error(err)
	require.True(sql.ErrCannotCast.Is(err))
	require.Contains(err.Error(), types.Boolean.String())
	require.Contains(err.Error(), types.Date32.String())

	// resolution failures surface before cast checking
	_, err = CastTo(NewColumn("nope"), types.Int64, schema)
	require.Error(err)
	require.True(sql.ErrColumnNotFound.Is(err))
}

func TestResolutionIsPure(t *testing.T) {
	require := require.New(t)
	schema := testSchema(t)

	e := NewCase(nil, []CaseBranch{
		{When: NewIsNull(NewColumn("b")), Then: NewBinaryExpr(NewColumn("a"), OpMultiply, NewColumn("d"))},
	}, NewScalarFunction(upperFn(), NewColumn("b")))
	rendered := e.String()
	snapshot := testSchema(t)

	t1, err1 := Type(e, schema)
	n1, errN1 := Nullable(e, schema)
	t2, err2 := Type(e, schema)
	n2, errN2 := Nullable(e, schema)

	require.NoError(err1)
	require.NoError(err2)
	require.NoError(errN1)
	require.NoError(errN2)
	require.True(arrow.TypeEqual(t1, t2))
	require.Equal(n1, n2)

	// neither the expression nor the schema changed
	require.Equal(rendered, e.String())
	require.True(schema.Equals(snapshot))
}

func TestUnknownExpression(t *testing.T) {
	require := require.New(t)
	schema := testSchema(t)

	_, err := Type(unknownExpr{}, schema)
	require.Error(err)
	require.True(sql.ErrUnknownExpression.Is(err))

	_, err = Nullable(unknownExpr{}, schema)
	require.Error(err)
	require.True(sql.ErrUnknownExpression.Is(err))
}

type unknownExpr struct{}

func (unknownExpr) Children() []Expression { return nil }
func (unknownExpr) String() string         { return "unknown" }

// ensure error messages stay diagnosable, naming the offending pieces
func TestErrorDetail(t *testing.T) {
	require := require.New(t)
	schema := testSchema(t)

	_, err := Type(NewColumn("emial"), schema)
	require.Error(err)
	require.Contains(err.Error(), `"emial"`)

	_, err = Type(NewBinaryExpr(NewColumn("b"), OpMinus, NewColumn("c")), schema)
	require.Error(err)
	require.Contains(err.Error(), fmt.Sprintf("%s", types.Utf8))
	require.Contains(err.Error(), fmt.Sprintf("%s", types.Boolean))
}
