package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poki/criteria-to-mysql/cmd/criteriasql/internal/cli"
	"github.com/poki/criteria-to-mysql/query"
)

const testConfig = `select: [field, otherField]
table: parent_table
fields:
  - field: childField
    column: first_child_table.field
`

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCompile_File(t *testing.T) {
	config := writeFile(t, "criteriasql.yaml", testConfig)
	input := writeFile(t, "criteria.json", `{
		"filters": [
			{"field": "childField", "operator": "IN", "value": ["1", "2"]},
			{"field": "value", "operator": "=", "value": null}
		],
		"orders": [{"field": "value", "direction": "DESC"}],
		"limit": 10,
		"offset": 0
	}`)

	out, _, err := run(t, "", "compile", "--config", config, input)
	require.NoError(t, err)
	assert.Equal(t, `SELECT field, otherField FROM parent_table WHERE ( first_child_table.field IN ( "1", "2" ) AND value IS NULL ) ORDER BY value DESC LIMIT 10 OFFSET 0`+"\n", out)
}

func TestCompile_StdinAndFlags(t *testing.T) {
	config := writeFile(t, "criteriasql.yaml", testConfig)

	out, stderr, err := run(t, `{"filters": [{"field": "guild", "operator": "STARTS_WITH", "value": "re"}], "limit": 5}`,
		"compile", "--config", config, "-v",
		"--select", "players.id,players.name",
		"--table", "players",
		"--join", "LEFT JOIN guilds ON guilds.id = players.guild_id",
		"--map", "guild=guilds.name",
	)
	require.NoError(t, err)
	assert.Equal(t, `SELECT players.id, players.name FROM players LEFT JOIN guilds ON guilds.id = players.guild_id WHERE guilds.name LIKE "re%" LIMIT 5`+"\n", out)
	assert.Contains(t, stderr, "config file: "+config)
}

func TestCompile_Errors(t *testing.T) {
	config := writeFile(t, "criteriasql.yaml", testConfig)

	tests := []struct {
		name  string
		stdin string
		args  []string
		code  int
		err   error
	}{
		{
			"invalid json",
			`{`,
			nil,
			cli.ExitCriteria,
			nil,
		},
		{
			"unknown operator",
			`{"filters": [{"field": "a", "operator": "$gt", "value": 1}]}`,
			nil,
			cli.ExitCriteria,
			nil,
		},
		{
			"invalid value",
			`{"filters": [{"field": "a", "operator": "IN", "value": 1}]}`,
			nil,
			cli.ExitCompile,
			query.InvalidValueError{},
		},
		{
			"missing table",
			`{}`,
			[]string{"--table", " ", "--config", writeFile(t, "empty.yaml", "select: [id]\n")},
			cli.ExitConfig,
			query.ConfigurationError{},
		},
		{
			"missing file",
			``,
			[]string{"/nonexistent/criteria.json"},
			cli.ExitCriteria,
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"compile", "--config", config}, tt.args...)
			_, _, err := run(t, tt.stdin, args...)
			require.Error(t, err)

			var exitErr *cli.ExitError
			require.True(t, errors.As(err, &exitErr), "unexpected error type %T", err)
			assert.Equal(t, tt.code, exitErr.Code)

			switch tt.err.(type) {
			case query.InvalidValueError:
				var target query.InvalidValueError
				assert.True(t, errors.As(err, &target))
			case query.ConfigurationError:
				var target query.ConfigurationError
				assert.True(t, errors.As(err, &target))
			}
		})
	}
}

func TestConfigShow(t *testing.T) {
	config := writeFile(t, "criteriasql.yaml", testConfig)

	out, _, err := run(t, "", "config", "show", "--source", "--config", config)
	require.NoError(t, err)
	assert.Contains(t, out, "Config file: "+config)
	assert.Contains(t, out, "table: parent_table")
	assert.Contains(t, out, "field: childField")
	assert.Contains(t, out, "column: first_child_table.field")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version", "--config", "/nonexistent.yaml")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "criteriasql "))
}
