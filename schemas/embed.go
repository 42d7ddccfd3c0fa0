// Package schemas provides embedded SQL migration files.
package schemas

import "embed"

// Migrations contains the definitions table schema, applied in file name order.
//
//go:embed migrations/*.sql
var Migrations embed.FS
