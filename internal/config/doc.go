// Package config defines the format-agnostic model of declared record types,
// along with the Loader interface that format-specific packages implement.
//
// The `config.Model` is what the app hands to the record factory. Concrete
// loaders, such as the HCL one, live in separate packages.
package config
