package criteria

// Direction is the sort direction of an Order.
type Direction string

const (
	Ascending  Direction = "ASC"
	Descending Direction = "DESC"
)

// Order sorts the result by a field.
type Order struct {
	Field     string
	Direction Direction
}

func Asc(field string) Order  { return Order{Field: field, Direction: Ascending} }
func Desc(field string) Order { return Order{Field: field, Direction: Descending} }

// Criteria describes which rows to select: the top level filters are combined
// with AND, followed by ordering and optional pagination.
type Criteria struct {
	Filters []Filter
	Orders  []Order
	Limit   *int
	Offset  *int
}

// New returns criteria with the given top level filters.
func New(filters ...Filter) Criteria {
	return Criteria{Filters: filters}
}

// WithFilter returns a copy of c with f appended to the top level filters.
func (c Criteria) WithFilter(f Filter) Criteria {
	c.Filters = append(append([]Filter(nil), c.Filters...), f)
	return c
}

// WithOrder returns a copy of c with o appended to the orders.
func (c Criteria) WithOrder(o Order) Criteria {
	c.Orders = append(append([]Order(nil), c.Orders...), o)
	return c
}

func (c Criteria) WithLimit(n int) Criteria {
	c.Limit = &n
	return c
}

func (c Criteria) WithOffset(n int) Criteria {
	c.Offset = &n
	return c
}
