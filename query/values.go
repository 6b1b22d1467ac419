package query

import (
	"strings"

	"github.com/poki/criteria-to-mysql/criteria"
)

// nullCheck tells whether a condition compares against NULL. It is computed
// once per condition and used for both the operator and the value.
type nullCheck int

const (
	noNullCheck nullCheck = iota
	isNullCheck
	isNotNullCheck
)

func nullCheckOf(cond *criteria.Condition) nullCheck {
	if !cond.Value.IsNull() {
		return noNullCheck
	}
	switch cond.Operator {
	case criteria.OpEqual:
		return isNullCheck
	case criteria.OpNotEqual:
		return isNotNullCheck
	default:
		return noNullCheck
	}
}

func mapOperator(cond *criteria.Condition, check nullCheck) (string, error) {
	switch check {
	case isNullCheck:
		return "IS NULL", nil
	case isNotNullCheck:
		return "IS NOT NULL", nil
	}

	switch cond.Operator {
	case criteria.OpContains, criteria.OpStartsWith, criteria.OpEndsWith:
		return "LIKE", nil
	case criteria.OpIn:
		return "IN", nil
	case criteria.OpNotIn:
		return "NOT IN", nil
	case criteria.OpEqual, criteria.OpNotEqual,
		criteria.OpGreaterThan, criteria.OpGreaterThanOrEqual,
		criteria.OpLessThan, criteria.OpLessThanOrEqual:
		return string(cond.Operator), nil
	default:
		return "", UnsupportedOperatorError{Field: cond.Field, Operator: cond.Operator}
	}
}

// mapValue renders the right hand side of a condition. It returns an empty
// string for IS NULL and IS NOT NULL.
func mapValue(cond *criteria.Condition, check nullCheck) (string, error) {
	value := cond.Value

	if b, ok := value.AsBool(); ok {
		if b {
			return "TRUE", nil
		}
		return "FALSE", nil
	}

	if check != noNullCheck {
		return "", nil
	}

	invalid := func(reason string) error {
		return InvalidValueError{Field: cond.Field, Operator: cond.Operator, Value: value, Reason: reason}
	}

	switch value.Kind() {
	case criteria.KindNull:
		return "", invalid("unexpected null value")
	case criteria.KindList:
		if cond.Operator != criteria.OpIn && cond.Operator != criteria.OpNotIn {
			return "", invalid("unexpected array value")
		}
		return formatList(value.Items()), nil
	}

	switch cond.Operator {
	case criteria.OpIn, criteria.OpNotIn:
		return "", invalid("IN operator should receive an array value")
	case criteria.OpContains:
		return quote("%" + value.Text() + "%"), nil
	case criteria.OpStartsWith:
		return quote(value.Text() + "%"), nil
	case criteria.OpEndsWith:
		return quote("%" + value.Text()), nil
	}

	if value.Kind() == criteria.KindString {
		return quote(value.Text()), nil
	}
	return value.Text(), nil
}

func formatList(items []criteria.Item) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if item.IsString() {
			parts = append(parts, quote(item.Text()))
		} else {
			parts = append(parts, item.Text())
		}
	}
	return "( " + strings.Join(parts, ", ") + " )"
}
