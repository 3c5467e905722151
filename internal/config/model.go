package config

import (
	"github.com/hashicorp/hcl/v2"
)

// Model is the unified representation of every record type declared across
// all loaded definition files, in declaration order.
type Model struct {
	Records []*RecordDefinition
}

// RecordDefinition is the format-agnostic representation of a `record` block.
type RecordDefinition struct {
	// Name is the display name as written; empty for anonymous records.
	Name    string
	Fields  []string
	Methods []*MethodDefinition
	// Source is the file the definition came from, for diagnostics.
	Source string
}

// MethodDefinition describes one caller-supplied method. Exactly one of
// Handler or Expr is set.
type MethodDefinition struct {
	Name    string
	Handler string
	Expr    hcl.Expression
}

// Handlers returns the names of every Go handler the model refers to.
func (m *Model) Handlers() []string {
	var names []string
	for _, rec := range m.Records {
		for _, meth := range rec.Methods {
			if meth.Handler != "" {
				names = append(names, meth.Handler)
			}
		}
	}
	return names
}
