package migrations

import "embed"

// FS embeds the SQL migrations for the campaigns schema. The golang-migrate
// library reads these files via the iofs driver when applying migrations.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version main migrates up to.
const Version = 1
