// Package file provides the TOML-backed ConfigStore.
//
// Keys are flat dot-notation strings ("dataset.columns.count"). On disk
// they are written as nested TOML tables and flattened again on load.
package file
