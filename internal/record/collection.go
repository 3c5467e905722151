package record

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// Digger is implemented by values that Dig can descend into.
type Digger interface {
	Dig(key any, rest ...any) any
}

// Each calls visit once per value in storage order and collects the results.
func (r *Instance) Each(visit func(v any) any) []any {
	out := make([]any, 0, r.slots.Len())
	for p := r.slots.Oldest(); p != nil; p = p.Next() {
		out = append(out, visit(p.Value))
	}
	return out
}

// EachPair calls visit once per (name, value) pair in storage order and
// collects the results.
func (r *Instance) EachPair(visit func(name Symbol, v any) any) []any {
	out := make([]any, 0, r.slots.Len())
	for p := r.slots.Oldest(); p != nil; p = p.Next() {
		out = append(out, visit(p.Key, p.Value))
	}
	return out
}

// Dig fetches name and then descends through rest. A nil at the first level is
// returned as is; an intermediate value that cannot be dug into yields nil.
func (r *Instance) Dig(name any, rest ...any) any {
	v := r.Get(name)
	if v == nil || len(rest) == 0 {
		return v
	}
	return dig(v, rest)
}

func dig(v any, path []any) any {
	switch c := v.(type) {
	case *Instance:
		if c == nil {
			return nil
		}
		return c.Dig(path[0], path[1:]...)
	case Digger:
		return c.Dig(path[0], path[1:]...)
	case map[string]any:
		next, ok := c[string(labelOf(path[0]))]
		return digNext(next, ok, path)
	case map[Symbol]any:
		next, ok := c[labelOf(path[0])]
		return digNext(next, ok, path)
	case []any:
		i, ok := asIndex(path[0])
		if !ok {
			return nil
		}
		if i < 0 {
			i += len(c)
		}
		if i < 0 || i >= len(c) {
			return nil
		}
		return digNext(c[i], true, path)
	}
	return nil
}

func digNext(next any, found bool, path []any) any {
	if !found || next == nil || len(path) == 1 {
		return next
	}
	return dig(next, path[1:])
}

// Size returns the number of slots currently in storage.
func (r *Instance) Size() int {
	return r.slots.Len()
}

// Len is an alias for Size.
func (r *Instance) Len() int {
	return r.Size()
}

// Members returns the slot names in storage order.
func (r *Instance) Members() []Symbol {
	out := make([]Symbol, 0, r.slots.Len())
	for p := r.slots.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}
	return out
}

// Select calls keep on every value and returns, in order, those for which it
// holds. Nil values are never returned.
func (r *Instance) Select(keep func(v any) bool) []any {
	var out []any
	for p := r.slots.Oldest(); p != nil; p = p.Next() {
		if keep(p.Value) && p.Value != nil {
			out = append(out, p.Value)
		}
	}
	return out
}

// ToSlice returns every value in storage order.
func (r *Instance) ToSlice() []any {
	return r.Each(func(v any) any { return v })
}

// ValuesAt returns the value at each requested position of ToSlice, with nil
// for positions out of range.
func (r *Instance) ValuesAt(indices ...int) []any {
	all := r.ToSlice()
	out := make([]any, len(indices))
	for i, idx := range indices {
		if idx < 0 {
			idx += len(all)
		}
		if idx >= 0 && idx < len(all) {
			out[i] = all[idx]
		}
	}
	return out
}

// Equal reports structural equality: other must come from the same Type and
// hold the same names and equal values in the same storage order.
func (r *Instance) Equal(other *Instance) bool {
	if r == other {
		return true
	}
	if r == nil || other == nil || r.typ != other.typ {
		return false
	}
	if r.slots.Len() != other.slots.Len() {
		return false
	}
	a, b := r.slots.Oldest(), other.slots.Oldest()
	for ; a != nil; a, b = a.Next(), b.Next() {
		if a.Key != b.Key || !ValuesEqual(a.Value, b.Value) {
			return false
		}
	}
	return true
}

var compareAll = cmp.Exporter(func(reflect.Type) bool { return true })

// ValuesEqual is the value comparison Equal applies to each slot. Nested
// instances compare with Instance.Equal; other values compare deeply,
// unexported struct fields included.
func ValuesEqual(a, b any) bool {
	return cmp.Equal(a, b, compareAll)
}
