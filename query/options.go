package query

type Option struct {
	f func(*Converter)
}

// WithJoins is the option to add join clauses after the table name. The
// clauses are written as given, separated by a space. Blank entries are
// ignored.
//
// Example:
//
//	c, err := query.NewConverter(
//		[]string{"users.id", "guilds.name"},
//		"users",
//		query.WithJoins("INNER JOIN guilds ON guilds.id = users.guild_id"),
//	)
func WithJoins(joins ...string) Option {
	return Option{
		f: func(c *Converter) {
			c.joins = append(c.joins, joins...)
		},
	}
}

// WithFieldMapping is an option to translate criteria field names into column
// expressions. Lookups are exact and case sensitive, fields without a mapping
// are used as they are.
func WithFieldMapping(mapping map[string]string) Option {
	return Option{
		f: func(c *Converter) {
			for field, column := range mapping {
				c.fieldMap[field] = column
			}
		},
	}
}

// WithFieldMap is like WithFieldMapping for a single field.
func WithFieldMap(field, column string) Option {
	return Option{
		f: func(c *Converter) {
			c.fieldMap[field] = column
		},
	}
}
