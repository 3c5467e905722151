// Package exprscan collects HCL expressions and reports the variables they
// reference and the functions they call.
package exprscan

import (
	"github.com/hashicorp/hcl/v2"
)

// Container holds the result of scanning a set of HCL expressions.
type Container struct {
	references      []hcl.Traversal
	calledFunctions []string
}

// NewContainer scans exprs, ignoring nil ones.
func NewContainer(exprs ...hcl.Expression) *Container {
	var nonNil []hcl.Expression
	for _, expr := range exprs {
		if expr != nil {
			nonNil = append(nonNil, expr)
		}
	}
	refs, funcs := extractReferencesAndFunctions(nonNil...)
	return &Container{references: refs, calledFunctions: funcs}
}

// References returns every unique variable traversal, sorted by TraversalKey.
func (c *Container) References() []hcl.Traversal {
	return c.references
}

// RootNames returns the sorted, unique root variable names referenced.
func (c *Container) RootNames() []string {
	var names []string
	seen := make(map[string]struct{})
	for _, t := range c.references {
		root := t.RootName()
		if _, ok := seen[root]; ok {
			continue
		}
		seen[root] = struct{}{}
		names = append(names, root)
	}
	return names
}

// CalledFunctions returns every unique function name called, sorted.
func (c *Container) CalledFunctions() []string {
	return c.calledFunctions
}
