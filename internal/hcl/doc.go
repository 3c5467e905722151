// Package hcl provides the concrete HCL implementation of config.Loader, the
// conversion of record instances to and from cty values, and methods whose
// bodies are HCL expressions evaluated against a record instance.
package hcl
