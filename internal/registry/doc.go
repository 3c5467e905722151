// Package registry provides the namespace that named record types are bound
// into, together with the Go method handlers that declarative definitions may
// refer to by name.
//
// The Registry satisfies record.Namespace, so a record.Factory built over it
// binds every named type it produces. Handler parity between definitions and
// registered Go code is checked up front by ValidateDefinitions, so a missing
// handler is reported at startup rather than on first call.
package registry
