package sql

import (
	"context"

	opentracing "github.com/opentracing/opentracing-go"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

// Context carries the request-scoped facilities of an analysis: a standard
// context, a tracer and a logger. The resolution core itself never touches
// it; only the analyzer layer does.
type Context struct {
	context.Context
	id     uuid.UUID
	tracer opentracing.Tracer
	logger *logrus.Entry
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithTracer sets the tracer spans are started from.
func WithTracer(t opentracing.Tracer) ContextOption {
	return func(ctx *Context) {
		ctx.tracer = t
	}
}

// WithLogger sets the logger returned by Logger.
func WithLogger(l *logrus.Entry) ContextOption {
	return func(ctx *Context) {
		ctx.logger = l
	}
}

// NewContext creates a Context from a parent context.Context.
func NewContext(ctx context.Context, opts ...ContextOption) *Context {
	c := &Context{
		Context: ctx,
		id:      uuid.NewV4(),
		tracer:  opentracing.NoopTracer{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return c
}

// NewEmptyContext returns a default Context, handy for tests.
func NewEmptyContext() *Context {
	return NewContext(context.TODO())
}

// ID returns the unique identifier of this context.
func (c *Context) ID() uuid.UUID {
	return c.id
}

// Logger returns the logger of this context, tagged with its id.
func (c *Context) Logger() *logrus.Entry {
	return c.logger.WithField("id", c.id)
}

// Span creates a new tracing span, child of this context's current span if
// one exists, and returns it along with a Context holding it.
func (c *Context) Span(opName string, opts ...opentracing.StartSpanOption) (opentracing.Span, *Context) {
	if parent := opentracing.SpanFromContext(c.Context); parent != nil {
		opts = append(opts, opentracing.ChildOf(parent.Context()))
	}
	span := c.tracer.StartSpan(opName, opts...)

	nc := *c
	nc.Context = opentracing.ContextWithSpan(c.Context, span)
	return span, &nc
}
