package query

import (
	"fmt"

	"github.com/poki/criteria-to-mysql/criteria"
)

// ErrEmptyOrders is returned when an ORDER BY clause is rendered without orders.
var ErrEmptyOrders = fmt.Errorf("unexpected empty orders")

// ConfigurationError is returned by NewConverter when a required parameter is
// empty.
type ConfigurationError struct {
	Parameter string
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("NewConverter: %s parameter cannot be empty", e.Parameter)
}

type UnsupportedFilterError struct {
	Filter criteria.Filter
}

func (e UnsupportedFilterError) Error() string {
	return fmt.Sprintf("unsupported filter type: %T", e.Filter)
}

type EmptyCompositeError struct {
	Operator string
}

func (e EmptyCompositeError) Error() string {
	return fmt.Sprintf("empty %s filter", e.Operator)
}

type UnsupportedOperatorError struct {
	Field    string
	Operator criteria.Operator
}

func (e UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("unsupported operator for field %s: %q", e.Field, string(e.Operator))
}

// InvalidValueError is returned when a condition value cannot be used with
// its operator.
type InvalidValueError struct {
	Field    string
	Operator criteria.Operator
	Value    criteria.Value
	Reason   string
}

func (e InvalidValueError) Error() string {
	return fmt.Sprintf("%s for field %s (operator %s): %v", e.Reason, e.Field, e.Operator, e.Value)
}

type InvalidOrderTypeError struct {
	Field     string
	Direction criteria.Direction
}

func (e InvalidOrderTypeError) Error() string {
	return fmt.Sprintf("unexpected criteria order type for field %s: %q", e.Field, string(e.Direction))
}
