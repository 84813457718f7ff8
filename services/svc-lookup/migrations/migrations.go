// Package migrations embeds the schema files applied by golang-migrate in
// deployments and by the integration tests.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
