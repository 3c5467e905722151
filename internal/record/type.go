package record

import (
	"fmt"
	"sort"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Type is a record type produced by one Factory call.
type Type struct {
	name    string
	fields  []Symbol
	methods map[string]Method
	defined map[string]struct{}
}

func newType(name string, labels []any) *Type {
	fields := make([]Symbol, 0, len(labels))
	for _, l := range labels {
		fields = append(fields, labelOf(l))
	}
	methods := make(map[string]Method, len(builtins)+2*len(fields))
	// Builtins go in after the accessors so a field named like one cannot
	// shadow it.
	for _, f := range fields {
		methods[string(f)] = reader(f)
		methods[string(f)+"="] = writer(f)
	}
	for k, m := range builtins {
		methods[k] = m
	}
	return &Type{name: name, fields: fields, methods: methods, defined: make(map[string]struct{})}
}

// Name returns the normalized display name, or "" for anonymous types.
func (t *Type) Name() string {
	return t.name
}

// Fields returns a copy of the declared shape.
func (t *Type) Fields() []Symbol {
	out := make([]Symbol, len(t.fields))
	copy(out, t.fields)
	return out
}

// Methods returns the sorted names in the type's method table.
func (t *Type) Methods() []string {
	names := make([]string, 0, len(t.methods))
	for k := range t.methods {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// DefinedMethods returns the sorted names added or overridden by the type's
// method block.
func (t *Type) DefinedMethods() []string {
	names := make([]string, 0, len(t.defined))
	for k := range t.defined {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// HasMethod reports whether name is in the method table.
func (t *Type) HasMethod(name string) bool {
	_, ok := t.methods[name]
	return ok
}

// New constructs an instance from positional values. Fields without a value
// are stored as nil. Supplying more values than fields is an *ArityError.
func (t *Type) New(values ...any) (*Instance, error) {
	if len(values) > len(t.fields) {
		return nil, &ArityError{Type: t.name, Given: len(values), Max: len(t.fields)}
	}
	slots := orderedmap.New[Symbol, any]()
	for i, f := range t.fields {
		var v any
		if i < len(values) {
			v = values[i]
		}
		slots.Set(f, v)
	}
	return &Instance{typ: t, slots: slots}, nil
}

// MustNew is like New but panics on error.
func (t *Type) MustNew(values ...any) *Instance {
	r, err := t.New(values...)
	if err != nil {
		panic(err)
	}
	return r
}

// String renders the type as Name(field, field).
func (t *Type) String() string {
	labels := make([]string, len(t.fields))
	for i, f := range t.fields {
		labels[i] = string(f)
	}
	name := t.name
	if name == "" {
		name = "#<record>"
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(labels, ", "))
}
