package hcl

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/recordkit/internal/config"
	"github.com/vk/recordkit/internal/exprscan"
	"github.com/vk/recordkit/internal/schema"
)

// translateRecord converts the HCL-specific record schema into the agnostic model.
func translateRecord(source string, s *schema.Record) (*config.RecordDefinition, error) {
	def := &config.RecordDefinition{
		Name:   s.Name,
		Fields: s.Fields,
		Source: source,
	}
	for _, m := range s.Methods {
		meth, err := translateMethod(m)
		if err != nil {
			return nil, fmt.Errorf("record %q in %s: %w", s.Name, source, err)
		}
		def.Methods = append(def.Methods, meth)
	}
	return def, nil
}

// translateMethod pulls the optional `expr` attribute out of the method body.
// Any other attribute is rejected.
func translateMethod(s *schema.Method) (*config.MethodDefinition, error) {
	meth := &config.MethodDefinition{
		Name:    s.Name,
		Handler: s.Handler,
	}
	if s.Body == nil {
		return meth, nil
	}

	attrs, diags := s.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("method %q: %w", s.Name, diags)
	}
	for name, attr := range attrs {
		if name != "expr" {
			return nil, fmt.Errorf("method %q: unsupported argument %q", s.Name, name)
		}
		if err := checkExpr(attr.Expr); err != nil {
			return nil, fmt.Errorf("method %q: %w", s.Name, err)
		}
		meth.Expr = attr.Expr
	}
	return meth, nil
}

// exprVariables are the only root names a method expression may refer to.
var exprVariables = map[string]struct{}{"self": {}, "args": {}}

// checkExpr rejects expressions that could never evaluate: references to
// variables other than self and args, and calls to functions missing from
// Functions. Missing fields on self are only detectable at call time.
func checkExpr(expr hcl.Expression) error {
	scan := exprscan.NewContainer(expr)
	for _, root := range scan.RootNames() {
		if _, ok := exprVariables[root]; !ok {
			return fmt.Errorf("unknown variable %q, expressions may only use self and args", root)
		}
	}
	funcs := Functions()
	for _, name := range scan.CalledFunctions() {
		if _, ok := funcs[name]; !ok {
			known := make([]string, 0, len(funcs))
			for k := range funcs {
				known = append(known, k)
			}
			sort.Strings(known)
			return fmt.Errorf("unknown function %q, available: %v", name, known)
		}
	}
	return nil
}
