// Package models contains database model definitions.
//
// Identifiers are opaque strings and timestamps are ISO-8601 strings. References
// between tables are soft: no foreign key constraints are created and a dangling
// reference resolves to empty values.
package models

import "time"

// TimestampLayout is the layout of every stored timestamp.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Setting is an opaque key/value document.
type Setting struct {
	Key   string `gorm:"primaryKey;size:191" json:"key"`
	Value string `gorm:"type:text;not null"  json:"value"`
}

// Now returns the current UTC time formatted with TimestampLayout.
func Now() string {
	return time.Now().UTC().Format(TimestampLayout)
}

// All returns every model handled by the schema migration.
func All() []interface{} {
	return []interface{}{
		&Category{},
		&Workshop{},
		&Session{},
		&Brand{},
		&Reservation{},
		&Setting{},
	}
}
