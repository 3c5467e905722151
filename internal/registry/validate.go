package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/recordkit/internal/config"
	"github.com/vk/recordkit/internal/ctxlog"
)

// ValidateDefinitions performs a strict parity check between the declared
// methods and the registered Go handlers. Field names are not checked.
func (r *Registry) ValidateDefinitions(ctx context.Context, model *config.Model) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	unregistered := make(map[string]struct{})
	referenced := model.Handlers()
	for _, name := range referenced {
		if _, ok := r.MethodRegistry[name]; !ok {
			unregistered[name] = struct{}{}
		}
	}
	logger.Debug("Checked handler references.", "referenced", len(referenced), "unregistered", len(unregistered))

	for _, def := range model.Records {
		label := def.Name
		if label == "" {
			label = "(anonymous)"
		}

		seen := make(map[string]struct{}, len(def.Methods))
		for _, meth := range def.Methods {
			if _, dup := seen[meth.Name]; dup {
				errs = append(errs, fmt.Sprintf("record '%s' (%s): method '%s' declared more than once", label, def.Source, meth.Name))
			}
			seen[meth.Name] = struct{}{}

			hasHandler := meth.Handler != ""
			hasExpr := meth.Expr != nil
			switch {
			case hasHandler && hasExpr:
				errs = append(errs, fmt.Sprintf("record '%s' (%s): method '%s' sets both 'handler' and 'expr'", label, def.Source, meth.Name))
			case !hasHandler && !hasExpr:
				errs = append(errs, fmt.Sprintf("record '%s' (%s): method '%s' needs either 'handler' or 'expr'", label, def.Source, meth.Name))
			case hasHandler:
				if _, missing := unregistered[meth.Handler]; missing {
					errs = append(errs, fmt.Sprintf("record '%s' (%s): method '%s' refers to handler '%s' which is not registered", label, def.Source, meth.Name, meth.Handler))
				}
			}
		}

		if len(def.Fields) == 0 {
			logger.Warn("Record declares no fields.", "record", label, "source", def.Source)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("definition validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
