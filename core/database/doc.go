// Package database manages the GORM connection to the relational store.
//
// PostgreSQL is the production store; SQLite backs tests and local runs. The
// driver is selected through Config.Driver. Connect verifies the connection
// with a ping before handing it out, and Migrate brings the schema up to
// date for all persisted entities.
package database
