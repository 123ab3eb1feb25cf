// Package main runs the studio web service. It serves the public page of a
// craft studio with its workshop catalog and booking form, and a JSON API used
// by the admin panel to manage workshops, sessions, categories, brands,
// reservations and the page content. Data is kept with gorm in sqlite, MySQL
// or PostgreSQL.
package main
