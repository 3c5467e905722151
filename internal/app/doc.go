// Package app contains the core application logic. It wires the definition
// loader, the registry and the record factory together, decoupled from any
// specific entrypoint like a CLI.
package app
