// Package file provides the TOML-backed configuration store.
//
// Keys use dot notation ("api.base_url") and are persisted as TOML tables.
// The store can watch its file and reload values edited outside the process.
package file
