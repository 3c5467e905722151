package record

import (
	"fmt"
	"math"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Instance is a value of a record Type.
type Instance struct {
	typ   *Type
	slots *orderedmap.OrderedMap[Symbol, any]
}

// Type returns the type the instance was constructed from.
func (r *Instance) Type() *Type {
	return r.typ
}

// Get returns the value addressed by key, or nil on a miss. Integer keys are
// positions in storage order (negative counts from the end); anything else is
// a field name.
func (r *Instance) Get(key any) any {
	if i, ok := asIndex(key); ok {
		p := r.pairAt(i)
		if p == nil {
			return nil
		}
		return p.Value
	}
	v, _ := r.slots.Get(labelOf(key))
	return v
}

// Set writes value to the slot addressed by key and reports whether a slot
// was written. An out-of-range position writes nothing. An unknown name adds a
// new slot to this instance only.
func (r *Instance) Set(key any, value any) bool {
	if i, ok := asIndex(key); ok {
		p := r.pairAt(i)
		if p == nil {
			return false
		}
		p.Value = value
		return true
	}
	r.slots.Set(labelOf(key), value)
	return true
}

// pairAt walks storage to position i.
func (r *Instance) pairAt(i int) *orderedmap.Pair[Symbol, any] {
	n := r.slots.Len()
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return nil
	}
	p := r.slots.Oldest()
	for ; i > 0; i-- {
		p = p.Next()
	}
	return p
}

// String renders the instance as #<struct Name field=value, ...>.
func (r *Instance) String() string {
	var b strings.Builder
	b.WriteString("#<struct ")
	if r.typ.name != "" {
		b.WriteString(r.typ.name)
		b.WriteByte(' ')
	}
	first := true
	for p := r.slots.Oldest(); p != nil; p = p.Next() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%s=%s", p.Key, inspect(p.Value))
	}
	b.WriteByte('>')
	return b.String()
}

func inspect(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return fmt.Sprintf("%q", x)
	case Symbol:
		return ":" + string(x)
	default:
		return fmt.Sprint(x)
	}
}

// asIndex converts integer keys to positions. Values that do not fit in an
// int clamp to a position no storage can reach, so they miss.
func asIndex(key any) (int, bool) {
	switch k := key.(type) {
	case int:
		return k, true
	case int8:
		return int(k), true
	case int16:
		return int(k), true
	case int32:
		return int(k), true
	case int64:
		switch {
		case k > math.MaxInt:
			return math.MaxInt, true
		case k < math.MinInt:
			return math.MinInt, true
		}
		return int(k), true
	case uint:
		return clampUint(uint64(k)), true
	case uint8:
		return int(k), true
	case uint16:
		return int(k), true
	case uint32:
		return clampUint(uint64(k)), true
	case uint64:
		return clampUint(k), true
	}
	return 0, false
}

func clampUint(k uint64) int {
	if k > math.MaxInt {
		return math.MaxInt
	}
	return int(k)
}
