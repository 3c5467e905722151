// Package schema holds the HCL decoding targets for definition files.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// File represents the top-level structure of a definition file.
type File struct {
	Records []*Record `hcl:"record,block"`
	Body    hcl.Body  `hcl:",remain"`
}

// Record represents a `record "name" { ... }` block.
type Record struct {
	Name    string    `hcl:"name,label"`
	Fields  []string  `hcl:"fields"`
	Methods []*Method `hcl:"method,block"`
}

// Method represents a `method "name" { ... }` block. `expr` is read from Body
// as a raw expression so that it can refer to `self` and `args` when called.
type Method struct {
	Name    string   `hcl:"name,label"`
	Handler string   `hcl:"handler,optional"`
	Body    hcl.Body `hcl:",remain"`
}
