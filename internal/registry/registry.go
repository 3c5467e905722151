package registry

import (
	"log/slog"
	"sort"

	"github.com/vk/recordkit/internal/record"
)

// Module is the interface Go packages implement to contribute method handlers.
type Module interface {
	Register(r *Registry)
}

// Registry holds the record types bound by name and the registered method
// handlers for a single application instance. It is not safe for concurrent
// registration.
type Registry struct {
	logger         *slog.Logger
	types          map[string]*record.Type
	MethodRegistry map[string]record.Method
}

// New creates and initializes a new Registry instance.
func New(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		logger:         logger,
		types:          make(map[string]*record.Type),
		MethodRegistry: make(map[string]record.Method),
	}
}

// Bind implements record.Namespace. Binding a name twice replaces the earlier
// type and logs a warning.
func (r *Registry) Bind(name string, t *record.Type) {
	if _, exists := r.types[name]; exists {
		r.logger.Warn("Record type name already bound, replacing it.", "name", name)
	}
	r.logger.Debug("Binding record type.", "name", name, "fields", t.Fields())
	r.types[name] = t
}

// Lookup returns the type bound under name. The name is normalized first, so
// "point" finds a type bound as "Point".
func (r *Registry) Lookup(name string) (*record.Type, bool) {
	t, ok := r.types[record.NormalizeName(name)]
	return t, ok
}

// Names returns every bound name, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of bound types.
func (r *Registry) Len() int {
	return len(r.types)
}
