package record

import (
	"log/slog"
)

// Namespace receives the types produced by named factory invocations.
type Namespace interface {
	Bind(name string, t *Type)
}

// Block is applied to a freshly built type after its built-in operations are
// attached. Definitions made through the Definer win over built-ins.
type Block func(d *Definer)

// Definer is the handle a Block uses to extend the type under construction.
type Definer struct {
	t *Type
}

// Define binds name to m, replacing any built-in or earlier definition.
func (d *Definer) Define(name string, m Method) {
	d.t.methods[name] = m
	d.t.defined[name] = struct{}{}
}

// Super returns the method currently bound to name, or nil. Capture it before
// calling Define to wrap a built-in.
func (d *Definer) Super(name string) Method {
	return d.t.methods[name]
}

// Name returns the normalized display name of the type being defined.
func (d *Definer) Name() string {
	return d.t.name
}

// Fields returns the shape of the type being defined.
func (d *Definer) Fields() []Symbol {
	return d.t.Fields()
}

// Factory manufactures record types.
type Factory struct {
	logger *slog.Logger
	ns     Namespace
}

// NewFactory creates a factory. A nil logger falls back to slog.Default; a nil
// namespace means named types are returned but never bound.
func NewFactory(logger *slog.Logger, ns Namespace) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger, ns: ns}
}

// New is Create without a method block.
func (f *Factory) New(args ...any) *Type {
	return f.Create(args, nil)
}

// Create builds a new record type. If args[0] is a string it is consumed as
// the display name, normalized, and the type is bound under it in the
// factory's namespace. The remaining arguments form the shape in order. The
// block, if any, runs last.
func (f *Factory) Create(args []any, block Block) *Type {
	var name string
	labels := args
	if len(args) > 0 {
		if s, ok := args[0].(string); ok {
			name = NormalizeName(s)
			labels = args[1:]
		}
	}

	t := newType(name, labels)
	if block != nil {
		block(&Definer{t: t})
	}
	f.logger.Debug("Record type created.", "name", name, "fields", t.fields, "methods", len(t.methods))

	if name == "" {
		return t
	}
	if f.ns == nil {
		f.logger.Debug("No namespace configured, named type left unbound.", "name", name)
		return t
	}
	f.ns.Bind(name, t)
	return t
}
