package registry

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/recordkit/internal/config"
	"github.com/vk/recordkit/internal/ctxlog"
	"github.com/vk/recordkit/internal/record"
)

// ExprCompiler turns a method expression into a callable method.
type ExprCompiler func(expr hcl.Expression) record.Method

// DefineRecords creates one record type per definition in the model. Named
// types are bound into the factory's namespace as a side effect; every
// created type, named or not, is returned in declaration order.
func (r *Registry) DefineRecords(ctx context.Context, f *record.Factory, model *config.Model, compile ExprCompiler) ([]*record.Type, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Defining record types from model...", "count", len(model.Records))

	types := make([]*record.Type, 0, len(model.Records))
	for _, def := range model.Records {
		args := make([]any, 0, len(def.Fields)+1)
		if def.Name != "" {
			args = append(args, def.Name)
		}
		for _, field := range def.Fields {
			args = append(args, record.Symbol(field))
		}

		methods := make(map[string]record.Method, len(def.Methods))
		order := make([]string, 0, len(def.Methods))
		for _, meth := range def.Methods {
			switch {
			case meth.Handler != "":
				m, ok := r.MethodRegistry[meth.Handler]
				if !ok {
					return nil, fmt.Errorf("record %q: handler %q is not registered", def.Name, meth.Handler)
				}
				methods[meth.Name] = m
			case meth.Expr != nil && compile != nil:
				methods[meth.Name] = compile(meth.Expr)
			default:
				return nil, fmt.Errorf("record %q: method %q has no implementation", def.Name, meth.Name)
			}
			order = append(order, meth.Name)
		}

		var block record.Block
		if len(order) > 0 {
			block = func(d *record.Definer) {
				for _, name := range order {
					d.Define(name, methods[name])
				}
			}
		}

		t := f.Create(args, block)
		logger.Debug("Record type defined.", "name", t.Name(), "source", def.Source, "methods", order)
		types = append(types, t)
	}

	logger.Info("Record types defined.", "defined", len(types), "bound", r.Len())
	return types, nil
}
