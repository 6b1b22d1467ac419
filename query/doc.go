// This package converts query criteria into MySQL SELECT statements.
// It's designed to be small, deterministic, and free of dependencies.
//
// Values are written inline as literals: strings are double-quoted, booleans
// are TRUE/FALSE and numbers are bare. No escaping is performed, so the
// criteria must come from a trusted source.
package query
