// Package populate bulk-imports the historical data set from the qlrace.com
// API: the map list, every record in all four physics/weapons combinations,
// and the players found on those records. It is a one-shot seeding step; the
// periodic sync jobs keep the data fresh afterwards.
package populate
