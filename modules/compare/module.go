// Package compare contributes method handlers that compare record instances
// by value regardless of their type.
package compare

import (
	"fmt"

	"github.com/vk/recordkit/internal/record"
	"github.com/vk/recordkit/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Diff returns the member names whose values differ from those of the other
// instance passed as the single argument. Members missing on either side are
// reported too.
func Diff(self *record.Instance, args ...any) (any, error) {
	other, err := otherArg("Diff", args)
	if err != nil {
		return nil, err
	}

	var diff []record.Symbol
	seen := make(map[record.Symbol]struct{})
	for _, name := range self.Members() {
		seen[name] = struct{}{}
		if !record.ValuesEqual(self.Get(name), other.Get(name)) {
			diff = append(diff, name)
		}
	}
	for _, name := range other.Members() {
		if _, ok := seen[name]; !ok {
			diff = append(diff, name)
		}
	}
	return diff, nil
}

// SameValues reports whether both instances hold equal values in the same
// order, ignoring their types and member names.
func SameValues(self *record.Instance, args ...any) (any, error) {
	other, err := otherArg("SameValues", args)
	if err != nil {
		return nil, err
	}
	return record.ValuesEqual(self.ToSlice(), other.ToSlice()), nil
}

func otherArg(name string, args []any) (*record.Instance, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: %s: given %d arguments, expected 1", record.ErrBadArgument, name, len(args))
	}
	other, ok := args[0].(*record.Instance)
	if !ok {
		return nil, fmt.Errorf("%w: %s: expected a record, got %T", record.ErrBadArgument, name, args[0])
	}
	return other, nil
}

// Register registers the handlers with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterMethod("Diff", Diff)
	r.RegisterMethod("SameValues", SameValues)
}
