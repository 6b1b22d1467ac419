package criteria

import (
	"strconv"
	"strings"
)

// Kind identifies which member of the Value union is set.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindString
	KindNumber
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindList:
		return "list"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is the right hand side of a condition. The zero Value is null.
//
// Numbers keep their textual representation so integers outside the float64
// range are rendered exactly as given.
type Value struct {
	kind  Kind
	b     bool
	text  string
	items []Item
}

// Item is one element of a list value: a string or a number.
type Item struct {
	isString bool
	text     string
}

func Null() Value { return Value{} }
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }
func String(s string) Value { return Value{kind: KindString, text: s} }
func Int(n int64) Value { return Value{kind: KindNumber, text: strconv.FormatInt(n, 10)} }
func Float(f float64) Value { return Value{kind: KindNumber, text: formatFloat(f)} }
func List(items ...Item) Value { return Value{kind: KindList, items: append([]Item(nil), items...)} }

// Number creates a numeric value from its textual form, as produced by
// encoding/json with UseNumber. The text is not validated.
func Number(text string) Value { return Value{kind: KindNumber, text: text} }

// Strings creates a list value of string items.
func Strings(values ...string) Value {
	items := make([]Item, 0, len(values))
	for _, v := range values {
		items = append(items, StringItem(v))
	}
	return Value{kind: KindList, items: items}
}

// Ints creates a list value of integer items.
func Ints(values ...int64) Value {
	items := make([]Item, 0, len(values))
	for _, v := range values {
		items = append(items, IntItem(v))
	}
	return Value{kind: KindList, items: items}
}

func StringItem(s string) Item { return Item{isString: true, text: s} }
func IntItem(n int64) Item { return Item{text: strconv.FormatInt(n, 10)} }
func FloatItem(f float64) Item { return Item{text: formatFloat(f)} }
func NumberItem(text string) Item { return Item{text: text} }
func (i Item) IsString() bool { return i.isString }
func (i Item) Text() string { return i.text }

func (v Value) Kind() Kind { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean and whether the value is a boolean.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// Text returns the string or the textual form of the number. It is empty for
// other kinds.
func (v Value) Text() string {
	if v.kind == KindString || v.kind == KindNumber {
		return v.text
	}
	return ""
}

// Items returns a copy of the list items, or nil when v is not a list.
func (v Value) Items() []Item {
	if v.kind != KindList {
		return nil
	}
	return append([]Item(nil), v.items...)
}

func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindString:
		return strconv.Quote(v.text)
	case KindList:
		parts := make([]string, 0, len(v.items))
		for _, item := range v.items {
			if item.isString {
				parts = append(parts, strconv.Quote(item.text))
			} else {
				parts = append(parts, item.text)
			}
		}
		return "[" + strings.Join(parts, " ") + "]"
	default:
		return v.text
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
