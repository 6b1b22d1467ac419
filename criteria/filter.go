package criteria

// Operator is the comparison of a Condition.
type Operator string

const (
	OpEqual              Operator = "="
	OpNotEqual           Operator = "!="
	OpGreaterThan        Operator = ">"
	OpGreaterThanOrEqual Operator = ">="
	OpLessThan           Operator = "<"
	OpLessThanOrEqual    Operator = "<="
	OpContains           Operator = "CONTAINS"
	OpStartsWith         Operator = "STARTS_WITH"
	OpEndsWith           Operator = "ENDS_WITH"
	OpIn                 Operator = "IN"
	OpNotIn              Operator = "NOT_IN"
)

// Operators lists every supported operator.
var Operators = []Operator{
	OpEqual, OpNotEqual,
	OpGreaterThan, OpGreaterThanOrEqual, OpLessThan, OpLessThanOrEqual,
	OpContains, OpStartsWith, OpEndsWith,
	OpIn, OpNotIn,
}

// Valid reports whether o is one of Operators.
func (o Operator) Valid() bool {
	for _, op := range Operators {
		if op == o {
			return true
		}
	}
	return false
}

// Filter is a node of a filter tree: *And, *Or or *Condition.
//
// The interface is sealed so a type switch over the three variants is
// exhaustive.
type Filter interface {
	filter()
}

// And matches when all of its filters match.
type And struct {
	Filters []Filter
}

// Or matches when any of its filters matches.
type Or struct {
	Filters []Filter
}

// Condition compares a single field with a value.
type Condition struct {
	Field    string
	Operator Operator
	Value    Value
}

func (*And) filter()       {}
func (*Or) filter()        {}
func (*Condition) filter() {}

func NewAnd(filters ...Filter) *And { return &And{Filters: filters} }
func NewOr(filters ...Filter) *Or { return &Or{Filters: filters} }

// NewCondition creates a condition on field.
func NewCondition(field string, op Operator, value Value) *Condition {
	return &Condition{Field: field, Operator: op, Value: value}
}

func Equal(field string, value Value) *Condition { return NewCondition(field, OpEqual, value) }
func NotEqual(field string, value Value) *Condition { return NewCondition(field, OpNotEqual, value) }
func GreaterThan(field string, value Value) *Condition {
	return NewCondition(field, OpGreaterThan, value)
}
func GreaterThanOrEqual(field string, value Value) *Condition {
	return NewCondition(field, OpGreaterThanOrEqual, value)
}
func LessThan(field string, value Value) *Condition { return NewCondition(field, OpLessThan, value) }
func LessThanOrEqual(field string, value Value) *Condition {
	return NewCondition(field, OpLessThanOrEqual, value)
}
func Contains(field, value string) *Condition {
	return NewCondition(field, OpContains, String(value))
}
func StartsWith(field, value string) *Condition {
	return NewCondition(field, OpStartsWith, String(value))
}
func EndsWith(field, value string) *Condition {
	return NewCondition(field, OpEndsWith, String(value))
}
func In(field string, value Value) *Condition { return NewCondition(field, OpIn, value) }
func NotIn(field string, value Value) *Condition { return NewCondition(field, OpNotIn, value) }
