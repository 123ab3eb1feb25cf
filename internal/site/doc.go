// Package site holds the application state behind the public site: the
// editable documents with their defaults, the settings loader with its
// last-known-good cache, the booking form and the admin gate.
package site
