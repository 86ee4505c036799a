// Package database holds the SQL migrations for the specialties store.
package database

import "embed"

// Migrations contains the versioned up/down scripts applied by cmd/migrate.
//
//go:embed migrations/*.sql
var Migrations embed.FS
