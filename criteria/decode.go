package criteria

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Parse decodes a criteria document:
//
//	{
//		"filters": [
//			{"or": [
//				{"field": "name", "operator": "=", "value": "John"},
//				{"field": "deleted_at", "operator": "=", "value": null}
//			]},
//			{"field": "level", "operator": "IN", "value": [1, 2]}
//		],
//		"orders": [{"field": "name", "direction": "ASC"}],
//		"limit": 10,
//		"offset": 0
//	}
//
// Every key is optional. Numbers keep their textual form.
func Parse(data []byte) (Criteria, error) {
	var c Criteria
	if len(bytes.TrimSpace(data)) == 0 {
		return c, nil
	}

	var doc map[string]any
	d := json.NewDecoder(bytes.NewReader(data))
	d.UseNumber()
	if err := d.Decode(&doc); err != nil {
		return c, err
	}

	for _, key := range sortedKeys(doc) {
		value := doc[key]
		var err error
		switch key {
		case "filters":
			c.Filters, err = parseFilters(key, value)
		case "orders":
			c.Orders, err = parseOrders(value)
		case "limit":
			c.Limit, err = parseInt(key, value)
		case "offset":
			c.Offset, err = parseInt(key, value)
		default:
			err = fmt.Errorf("unknown criteria key: %s", key)
		}
		if err != nil {
			return Criteria{}, err
		}
	}
	return c, nil
}

func parseFilters(key string, v any) ([]Filter, error) {
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("invalid value for %s (must be an array): %v", key, v)
	}
	filters := make([]Filter, 0, len(raw))
	for _, e := range raw {
		obj, ok := e.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("invalid filter (must be an object): %v", e)
		}
		f, err := parseFilter(obj)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	return filters, nil
}

func parseFilter(obj map[string]any) (Filter, error) {
	if len(obj) == 0 {
		return nil, fmt.Errorf("empty objects not allowed")
	}

	if len(obj) == 1 {
		for key, value := range obj {
			if key != "and" && key != "or" {
				break
			}
			children, err := parseFilters(key, value)
			if err != nil {
				return nil, err
			}
			if len(children) == 0 {
				return nil, fmt.Errorf("empty arrays not allowed")
			}
			if key == "and" {
				return NewAnd(children...), nil
			}
			return NewOr(children...), nil
		}
	}

	return parseCondition(obj)
}

func parseCondition(obj map[string]any) (*Condition, error) {
	c := &Condition{}
	for _, key := range sortedKeys(obj) {
		value := obj[key]
		switch key {
		case "field":
			s, ok := value.(string)
			if !ok || s == "" {
				return nil, fmt.Errorf("invalid field name: %v", value)
			}
			c.Field = s
		case "operator":
			s, _ := value.(string)
			if op := Operator(s); !op.Valid() {
				return nil, fmt.Errorf("unknown operator: %v", value)
			}
			c.Operator = Operator(s)
		case "value":
			v, err := parseValue(value)
			if err != nil {
				return nil, err
			}
			c.Value = v
		default:
			return nil, fmt.Errorf("unknown condition key: %s", key)
		}
	}
	if c.Field == "" {
		return nil, fmt.Errorf("condition without field")
	}
	if c.Operator == "" {
		return nil, fmt.Errorf("condition on %s without operator", c.Field)
	}
	return c, nil
}

func parseValue(v any) (Value, error) {
	switch v := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(v), nil
	case string:
		return String(v), nil
	case json.Number:
		return Number(v.String()), nil
	case []any:
		items := make([]Item, 0, len(v))
		for _, e := range v {
			switch e := e.(type) {
			case string:
				items = append(items, StringItem(e))
			case json.Number:
				items = append(items, NumberItem(e.String()))
			default:
				return Value{}, fmt.Errorf("invalid list value (must be strings or numbers): %v", v)
			}
		}
		return List(items...), nil
	default:
		return Value{}, fmt.Errorf("invalid comparison value (must be a primitive or a list): %v", v)
	}
}

func parseOrders(v any) ([]Order, error) {
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("invalid value for orders (must be an array): %v", v)
	}
	orders := make([]Order, 0, len(raw))
	for _, e := range raw {
		obj, ok := e.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("invalid order (must be an object): %v", e)
		}
		field, _ := obj["field"].(string)
		if field == "" {
			return nil, fmt.Errorf("invalid order field: %v", obj["field"])
		}
		o := Asc(field)
		if d, ok := obj["direction"]; ok {
			s, _ := d.(string)
			switch Direction(s) {
			case Ascending, Descending:
				o.Direction = Direction(s)
			default:
				return nil, fmt.Errorf("invalid order direction for field %s: %v (must be ASC or DESC)", field, d)
			}
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func parseInt(key string, v any) (*int, error) {
	n, ok := v.(json.Number)
	if !ok {
		return nil, fmt.Errorf("invalid value for %s (must be an integer): %v", key, v)
	}
	i, err := n.Int64()
	if err != nil {
		return nil, fmt.Errorf("invalid value for %s (must be an integer): %v", key, v)
	}
	r := int(i)
	return &r, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
