// Package inspect contributes method handlers that render record instances.
package inspect

import (
	"github.com/vk/recordkit/internal/record"
	"github.com/vk/recordkit/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Inspect returns the instance's diagnostic string.
func Inspect(self *record.Instance, args ...any) (any, error) {
	return self.String(), nil
}

// ToMap returns the instance's current storage as a map keyed by member name.
func ToMap(self *record.Instance, args ...any) (any, error) {
	out := make(map[string]any, self.Size())
	self.EachPair(func(name record.Symbol, v any) any {
		out[string(name)] = v
		return nil
	})
	return out, nil
}

// Register registers the handlers with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterMethod("Inspect", Inspect)
	r.RegisterMethod("ToMap", ToMap)
}
