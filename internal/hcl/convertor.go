package hcl

import (
	"fmt"
	"math/big"

	"github.com/vk/recordkit/internal/record"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Converter moves values between record instances and the cty type system.
type Converter struct{}

// NewConverter creates a new HCL converter.
func NewConverter() *Converter {
	return &Converter{}
}

// ToCtyValue converts a native Go value into its cty.Value. A record instance
// becomes an object keyed by member name; nil becomes a dynamic null.
func (c *Converter) ToCtyValue(v any) (cty.Value, error) {
	switch x := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case cty.Value:
		return x, nil
	case record.Symbol:
		return cty.StringVal(string(x)), nil
	case *record.Instance:
		if x == nil {
			return cty.NullVal(cty.DynamicPseudoType), nil
		}
		attrs := make(map[string]cty.Value, x.Size())
		var convErr error
		x.EachPair(func(name record.Symbol, val any) any {
			if convErr != nil {
				return nil
			}
			cv, err := c.ToCtyValue(val)
			if err != nil {
				convErr = fmt.Errorf("field %q: %w", name, err)
				return nil
			}
			attrs[string(name)] = cv
			return nil
		})
		if convErr != nil {
			return cty.NilVal, convErr
		}
		return cty.ObjectVal(attrs), nil
	case []any:
		elems := make([]cty.Value, len(x))
		for i, e := range x {
			cv, err := c.ToCtyValue(e)
			if err != nil {
				return cty.NilVal, fmt.Errorf("element %d: %w", i, err)
			}
			elems[i] = cv
		}
		return cty.TupleVal(elems), nil
	case map[string]any:
		attrs := make(map[string]cty.Value, len(x))
		for k, e := range x {
			cv, err := c.ToCtyValue(e)
			if err != nil {
				return cty.NilVal, fmt.Errorf("key %q: %w", k, err)
			}
			attrs[k] = cv
		}
		return cty.ObjectVal(attrs), nil
	}

	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return cty.NilVal, fmt.Errorf("unable to infer cty.Type for %T: %w", v, err)
	}
	return gocty.ToCtyValue(v, ty)
}

// FromCtyValue converts a cty.Value into a native Go value. Whole numbers that
// fit an int come back as int, other numbers as float64. Null and unknown
// values become nil.
func (c *Converter) FromCtyValue(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact && int64(int(i)) == i {
				return int(i), nil
			}
		}
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("could not convert cty.Number to float64: %w", err)
		}
		return f, nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		slice := make([]any, 0, v.LengthInt())
		it := v.ElementIterator()
		for it.Next() {
			_, elem := it.Element()
			native, err := c.FromCtyValue(elem)
			if err != nil {
				return nil, err
			}
			slice = append(slice, native)
		}
		return slice, nil

	case ty.IsObjectType() || ty.IsMapType():
		out := make(map[string]any)
		it := v.ElementIterator()
		for it.Next() {
			key, elem := it.Element()
			native, err := c.FromCtyValue(elem)
			if err != nil {
				return nil, err
			}
			out[key.AsString()] = native
		}
		return out, nil
	}

	return nil, fmt.Errorf("unsupported cty type %s", ty.FriendlyName())
}
