// Package uniuri generates random URL-safe identifiers used as primary keys for
// every stored entity and as file names for uploaded blobs.
package uniuri
