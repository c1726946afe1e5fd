package combobox

import (
	"fmt"
	"strconv"
)

// Option is one selectable entry. Value is a string or a number and is not
// required to be unique within a list: two options may carry the same Value
// and still be different options. Selection is tracked by pointer, so keep
// options as *Option and pass the same pointer back as the bound value.
type Option struct {
	Label string
	Value any
}

// NewOption returns a pointer to a new option.
func NewOption(label string, value any) *Option {
	return &Option{Label: label, Value: value}
}

// ValueString formats Value for display.
func (o *Option) ValueString() string {
	if o == nil {
		return ""
	}
	switch v := o.Value.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Options builds an option list from label/value pairs.
func Options(pairs ...any) []*Option {
	out := make([]*Option, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		label, _ := pairs[i].(string)
		out = append(out, NewOption(label, pairs[i+1]))
	}
	return out
}

// IndexOf returns the position of opt in options by pointer identity, or -1.
func IndexOf(options []*Option, opt *Option) int {
	if opt == nil {
		return -1
	}
	for i, o := range options {
		if o == opt {
			return i
		}
	}
	return -1
}
