package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/recordkit/internal/record"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// Functions is the function table available to method expressions.
func Functions() map[string]function.Function {
	return map[string]function.Function{
		"upper":    stdlib.UpperFunc,
		"lower":    stdlib.LowerFunc,
		"format":   stdlib.FormatFunc,
		"join":     stdlib.JoinFunc,
		"length":   stdlib.LengthFunc,
		"coalesce": stdlib.CoalesceFunc,
		"max":      stdlib.MaxFunc,
		"min":      stdlib.MinFunc,
	}
}

// ExprMethod returns a record.Method that evaluates expr with `self` bound to
// the receiving instance and `args` to the call arguments as a tuple.
func (c *Converter) ExprMethod(expr hcl.Expression) record.Method {
	funcs := Functions()
	return func(self *record.Instance, args ...any) (any, error) {
		selfVal, err := c.ToCtyValue(self)
		if err != nil {
			return nil, fmt.Errorf("converting receiver: %w", err)
		}
		argVals := make([]cty.Value, len(args))
		for i, a := range args {
			if argVals[i], err = c.ToCtyValue(a); err != nil {
				return nil, fmt.Errorf("converting argument %d: %w", i, err)
			}
		}

		evalCtx := &hcl.EvalContext{
			Variables: map[string]cty.Value{
				"self": selfVal,
				"args": cty.TupleVal(argVals),
			},
			Functions: funcs,
		}
		val, diags := expr.Value(evalCtx)
		if diags.HasErrors() {
			return nil, diags
		}
		return c.FromCtyValue(val)
	}
}
