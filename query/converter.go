package query

import (
	"strconv"
	"strings"

	"github.com/poki/criteria-to-mysql/criteria"
)

// Converter turns criteria into SELECT statements for a fixed table and
// column list. A Converter is immutable after NewConverter returns and may be
// used from multiple goroutines.
type Converter struct {
	head     string
	joins    []string
	fieldMap map[string]string
}

// NewConverter creates a Converter selecting fieldsToSelect from tableName.
//
// Blank entries in fieldsToSelect and in the joins are ignored. A
// ConfigurationError is returned when no field is left or tableName is blank.
func NewConverter(fieldsToSelect []string, tableName string, options ...Option) (*Converter, error) {
	converter := &Converter{
		fieldMap: map[string]string{},
	}
	for _, option := range options {
		if option.f != nil {
			option.f(converter)
		}
	}

	fields := cleanEmptyElements(fieldsToSelect)
	if len(fields) == 0 {
		return nil, ConfigurationError{Parameter: "fieldsToSelect"}
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, ConfigurationError{Parameter: "tableName"}
	}

	converter.head = "SELECT " + strings.Join(fields, ", ") + " FROM " + tableName
	if joins := cleanEmptyElements(converter.joins); len(joins) > 0 {
		converter.head += " " + strings.Join(joins, " ")
	}
	converter.joins = nil

	return converter, nil
}

// Convert renders c as a SELECT statement. The top level filters are combined
// with AND, followed by ORDER BY, LIMIT and OFFSET when present.
//
// The statement is single spaced, but callers comparing statements should not
// depend on the exact whitespace.
func (c *Converter) Convert(cr criteria.Criteria) (string, error) {
	if c.head == "" {
		return "", ConfigurationError{Parameter: "fieldsToSelect"}
	}

	var b strings.Builder
	b.WriteString(c.head)

	if filter := combineFilters(cr.Filters); filter != nil {
		b.WriteString(" WHERE")
		if err := c.writeFilter(&b, filter); err != nil {
			return "", err
		}
	}

	if len(cr.Orders) > 0 {
		if err := c.writeOrders(&b, cr.Orders); err != nil {
			return "", err
		}
	}

	if cr.Limit != nil {
		b.WriteString(" LIMIT ")
		b.WriteString(strconv.Itoa(*cr.Limit))
	}

	if cr.Offset != nil {
		b.WriteString(" OFFSET ")
		b.WriteString(strconv.Itoa(*cr.Offset))
	}

	return b.String(), nil
}

// combineFilters folds the top level filters into a single filter, or nil when
// there are none.
func combineFilters(filters []criteria.Filter) criteria.Filter {
	switch len(filters) {
	case 0:
		return nil
	case 1:
		return filters[0]
	default:
		return criteria.NewAnd(filters...)
	}
}

func (c *Converter) writeFilter(b *strings.Builder, filter criteria.Filter) error {
	switch f := filter.(type) {
	case *criteria.And:
		if f == nil {
			return UnsupportedFilterError{Filter: filter}
		}
		return c.writeComposite(b, "AND", f.Filters)
	case *criteria.Or:
		if f == nil {
			return UnsupportedFilterError{Filter: filter}
		}
		return c.writeComposite(b, "OR", f.Filters)
	case *criteria.Condition:
		if f == nil {
			return UnsupportedFilterError{Filter: filter}
		}
		return c.writeCondition(b, f)
	default:
		return UnsupportedFilterError{Filter: filter}
	}
}

func (c *Converter) writeComposite(b *strings.Builder, operator string, filters []criteria.Filter) error {
	if len(filters) == 0 {
		return EmptyCompositeError{Operator: operator}
	}
	b.WriteString(" (")
	for i, filter := range filters {
		if i > 0 {
			b.WriteString(" " + operator)
		}
		if err := c.writeFilter(b, filter); err != nil {
			return err
		}
	}
	b.WriteString(" )")
	return nil
}

func (c *Converter) writeCondition(b *strings.Builder, cond *criteria.Condition) error {
	check := nullCheckOf(cond)

	op, err := mapOperator(cond, check)
	if err != nil {
		return err
	}
	value, err := mapValue(cond, check)
	if err != nil {
		return err
	}

	b.WriteString(" ")
	b.WriteString(c.columnName(cond.Field))
	b.WriteString(" ")
	b.WriteString(op)
	if value != "" {
		b.WriteString(" ")
		b.WriteString(value)
	}
	return nil
}

func (c *Converter) writeOrders(b *strings.Builder, orders []criteria.Order) error {
	if len(orders) == 0 {
		return ErrEmptyOrders
	}
	b.WriteString(" ORDER BY ")
	for i, order := range orders {
		var direction string
		switch order.Direction {
		case criteria.Ascending:
			direction = "ASC"
		case criteria.Descending:
			direction = "DESC"
		default:
			return InvalidOrderTypeError{Field: order.Field, Direction: order.Direction}
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.columnName(order.Field))
		b.WriteString(" ")
		b.WriteString(direction)
	}
	return nil
}

// columnName maps a criteria field to its column expression.
func (c *Converter) columnName(field string) string {
	if column, ok := c.fieldMap[field]; ok {
		return column
	}
	return field
}
