// Package file provides the TOML-backed configuration store.
//
// Settings live in ~/.agmsite/config.toml unless a config directory is
// given. Nested tables are flattened to dot-notation keys on load and
// written back as tables on save.
package file
