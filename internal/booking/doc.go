// Package booking implements the reservation workflow: intake from the public
// site and the admin panel, status overwrites, and the confirmation sent when a
// reservation becomes paid.
//
// Seat counts are informational. Nothing here reconciles reservations against
// session capacity, so overbooking is possible.
package booking
