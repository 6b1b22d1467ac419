package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/poki/criteria-to-mysql/cmd/criteriasql/internal/cli"
	"github.com/poki/criteria-to-mysql/criteria"
)

type compileOptions struct {
	fields []string
	table  string
	joins  []string
	maps   map[string]string
}

func newCompileCmd(a *app) *cobra.Command {
	opts := &compileOptions{}

	cmd := &cobra.Command{
		Use:   "compile [criteria.json]",
		Short: "Compile a criteria document",
		Long:  `Compile a criteria document into a SELECT statement. The document is read from stdin when no file or "-" is given.`,
		Example: `  # Compile a file using criteriasql.yaml
  criteriasql compile criteria.json

  # Compile from stdin with an explicit table
  echo '{"orders": [{"field": "id"}], "limit": 10}' | criteriasql compile --table players --select id,name

  # Map a criteria field to a joined column
  criteriasql compile criteria.json --join "LEFT JOIN guilds ON guilds.id = players.guild_id" --map guild=guilds.name`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *a.cfg
			if len(opts.fields) > 0 {
				cfg.Select = opts.fields
			}
			cfg.Table = resolveString(opts.table, cfg.Table)
			cfg.Joins = append(append([]string(nil), cfg.Joins...), opts.joins...)
			cfg.Fields = append([]cli.FieldMapping(nil), cfg.Fields...)
			for field, column := range opts.maps {
				cfg.Fields = append(cfg.Fields, cli.FieldMapping{Field: field, Column: column})
			}

			converter, err := cfg.Converter()
			if err != nil {
				return cli.ConfigError("creating converter", err)
			}

			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			data, err := readInput(cmd, path)
			if err != nil {
				return cli.CriteriaError(fmt.Sprintf("reading %s", path), err)
			}
			a.debugf(cmd, "read %d bytes from %s", len(data), path)

			c, err := criteria.Parse(data)
			if err != nil {
				return cli.CriteriaError("parsing criteria", err)
			}

			sql, err := converter.Convert(c)
			if err != nil {
				return cli.CompileError("compiling criteria", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), sql)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&opts.fields, "select", nil, "fields to select (overrides config)")
	cmd.Flags().StringVar(&opts.table, "table", "", "table to select from (overrides config)")
	cmd.Flags().StringArrayVar(&opts.joins, "join", nil, "join clause appended to the configured joins (repeatable)")
	cmd.Flags().StringToStringVar(&opts.maps, "map", nil, "field=column mapping added to the configured fields (repeatable)")

	return cmd
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}
