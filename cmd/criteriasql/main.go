// Package main provides a CLI that compiles criteria documents into MySQL
// SELECT statements.
//
// The select list, table, joins and field mappings come from criteriasql.yaml,
// CRITERIASQL_* environment variables or flags:
//
//	select: [id, name]
//	table: players
//	joins:
//	  - LEFT JOIN guilds ON guilds.id = players.guild_id
//	fields:
//	  - field: guild
//	    column: guilds.name
//
// Usage:
//
//	criteriasql compile criteria.json
//	echo '{"limit": 10}' | criteriasql compile
package main

import (
	"os"

	"github.com/poki/criteria-to-mysql/cmd/criteriasql/internal/cli"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(cli.ReportError(cmd.ErrOrStderr(), err))
	}
}
