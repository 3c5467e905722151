package registry

import (
	"fmt"

	"github.com/vk/recordkit/internal/record"
)

// RegisterMethod registers a Go function that definitions can attach to a
// record type with `handler = "<name>"`.
func (r *Registry) RegisterMethod(name string, m record.Method) {
	if _, exists := r.MethodRegistry[name]; exists {
		panic(fmt.Sprintf("method handler with name '%s' already registered", name))
	}
	if m == nil {
		panic(fmt.Sprintf("method handler '%s' is nil", name))
	}
	r.logger.Debug("Registering method handler.", "name", name)
	r.MethodRegistry[name] = m
}

// Method returns the handler registered under name.
func (r *Registry) Method(name string) (record.Method, bool) {
	m, ok := r.MethodRegistry[name]
	return m, ok
}
