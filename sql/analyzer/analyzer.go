// Package analyzer validates projection expression lists against a schema
// and derives the output schemas they produce. It is the plan-facing shell
// around the pure resolution core in sql/expression.
package analyzer

import (
	"os"
	"sync"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/mitchellh/hashstructure"

	"github.com/clojurians-org/arrow-datafusion/sql"
	"github.com/clojurians-org/arrow-datafusion/sql/expression"
)

const debugAnalyzerKey = "DEBUG_ANALYZER"

// MaxExpressionDepth is the default depth bound enforced before resolution.
// Resolution recurses once per tree level, so unbounded trees coming from a
// hostile or buggy producer could exhaust the stack; validation rejects
// them up front instead. The depth measurement itself is iterative, so
// the tree being measured never deepens the call stack.
const MaxExpressionDepth = 1000

type resolution struct {
	typ      arrow.DataType
	nullable bool
}

// Analyzer validates expressions and builds output schemas. It memoizes
// resolution results per (expression, schema) pair, which is sound because
// resolution is pure.
type Analyzer struct {
	// Debug prints a log line per analyzed expression.
	Debug bool

	maxDepth int

	mu    sync.Mutex
	cache map[cacheKey]resolution
}

type cacheKey struct {
	expr   uint64
	schema uint64
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithDebug activates debug logging on the analyzer.
func WithDebug() Option {
	return func(a *Analyzer) {
		a.Debug = true
	}
}

// WithMaxDepth overrides the maximum expression tree depth accepted.
func WithMaxDepth(depth int) Option {
	return func(a *Analyzer) {
		a.maxDepth = depth
	}
}

// New creates an Analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		Debug:    os.Getenv(debugAnalyzerKey) != "",
		maxDepth: MaxExpressionDepth,
		cache:    make(map[cacheKey]resolution),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Log prints a DEBUG message through the context logger when the analyzer
// is in debug mode.
func (a *Analyzer) Log(ctx *sql.Context, msg string, args ...interface{}) {
	if a != nil && a.Debug {
		ctx.Logger().Debugf(msg, args...)
	}
}

// Validate checks every expression of a projection list against the schema:
// depth bound first, then wildcard placeholders, then full type and
// nullability resolution. The first failure is returned.
func (a *Analyzer) Validate(ctx *sql.Context, exprs []expression.Expression, schema sql.ExprSchema) error {
	span, ctx := ctx.Span("analyzer.Validate")
	defer span.Finish()

	for _, e := range exprs {
		if err := a.validateExpr(ctx, e, schema); err != nil {
			return err
		}
	}
	return nil
}

// FieldsForExprs derives the output schema a projection list produces: one
// field per expression, in order.
func (a *Analyzer) FieldsForExprs(ctx *sql.Context, exprs []expression.Expression, schema sql.ExprSchema) (sql.Schema, error) {
	span, ctx := ctx.Span("analyzer.FieldsForExprs")
	defer span.Finish()

	fields := make([]*sql.Field, len(exprs))
	for i, e := range exprs {
		if err := a.validateExpr(ctx, e, schema); err != nil {
			return nil, err
		}
		f, err := expression.ToField(e, schema)
		if err != nil {
			return nil, err
		}
		fields[i] = f
	}
	return sql.NewSchema(fields...)
}

func (a *Analyzer) validateExpr(ctx *sql.Context, e expression.Expression, schema sql.ExprSchema) error {
	if depth := expression.Depth(e); depth > a.maxDepth {
		return sql.ErrExpressionTooDeep.New(a.maxDepth)
	}

	var wildcard expression.Expression
	expression.Inspect(e, func(e expression.Expression) bool {
		switch e.(type) {
		case *expression.Wildcard, *expression.QualifiedWildcard:
			wildcard = e
			return false
		}
		return true
	})
	if wildcard != nil {
		return sql.ErrWildcardNotResolvable.New(wildcard)
	}

	typ, nullable, err := a.resolve(e, schema)
	if err != nil {
		a.Log(ctx, "analysis of %s failed: %s", e, err)
		return err
	}
	a.Log(ctx, "resolved %s to type %s, nullable %v", e, typ, nullable)
	return nil
}

// resolve computes (type, nullable) for an expression, consulting the memo
// cache first. Keys are hashed over canonical renderings of the expression
// and the schema, never over the raw structs: arrow's composite types keep
// their shape in unexported fields, so two distinct struct or list types
// would otherwise hash identically. A hashing failure, or a schema that is
// not an enumerable Schema, just bypasses the cache.
func (a *Analyzer) resolve(e expression.Expression, schema sql.ExprSchema) (arrow.DataType, bool, error) {
	key, ok := a.key(e, schema)
	if ok {
		a.mu.Lock()
		r, hit := a.cache[key]
		a.mu.Unlock()
		if hit {
			return r.typ, r.nullable, nil
		}
	}

	typ, err := expression.Type(e, schema)
	if err != nil {
		return nil, false, err
	}
	nullable, err := expression.Nullable(e, schema)
	if err != nil {
		return nil, false, err
	}

	if ok {
		a.mu.Lock()
		a.cache[key] = resolution{typ: typ, nullable: nullable}
		a.mu.Unlock()
	}
	return typ, nullable, nil
}

func (a *Analyzer) key(e expression.Expression, schema sql.ExprSchema) (cacheKey, bool) {
	s, ok := schema.(sql.Schema)
	if !ok {
		return cacheKey{}, false
	}
	eh, err := hashstructure.Hash(exprSignature(e), nil)
	if err != nil {
		return cacheKey{}, false
	}
	sh, err := hashstructure.Hash(schemaSignature(s), nil)
	if err != nil {
		return cacheKey{}, false
	}
	return cacheKey{expr: eh, schema: sh}, true
}

// exprSignature is the canonical form of an expression for cache keying:
// its display string plus the rendering of every type the tree carries.
// The display string alone is not injective, literals and scalar
// variables do not render their type.
func exprSignature(e expression.Expression) []string {
	sig := []string{e.String()}
	expression.Inspect(e, func(e expression.Expression) bool {
		switch e := e.(type) {
		case *expression.Literal:
			sig = append(sig, e.Type.String())
		case *expression.ScalarVariable:
			sig = append(sig, e.Type.String())
		case *expression.Cast:
			sig = append(sig, e.CastType.String())
		case *expression.TryCast:
			sig = append(sig, e.CastType.String())
		}
		return true
	})
	return sig
}

type fieldSignature struct {
	Qualifier string
	Name      string
	Type      string
	Nullable  bool
}

func schemaSignature(s sql.Schema) []fieldSignature {
	sig := make([]fieldSignature, len(s))
	for i, f := range s {
		sig[i] = fieldSignature{
			Qualifier: f.Qualifier,
			Name:      f.Name,
			Type:      f.Type.String(),
			Nullable:  f.Nullable,
		}
	}
	return sig
}
