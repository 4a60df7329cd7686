// Package assets bundles the read-only data shipped with the application:
// the default users seed and the product catalog.
package assets

import "embed"

// Paths of the bundled files inside FS.
const (
	UsersSeed = "database/Usuarios.json"
	Products  = "database/Productos.json"
)

// FS holds the bundled data files.
//
//go:embed database/*.json
var FS embed.FS
