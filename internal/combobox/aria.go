package combobox

import (
	"sort"
	"strconv"
	"strings"

	"github.com/five82/combo/internal/state"
)

// Attribute names exposed to assistive tooling.
const (
	AttrID               = "id"
	AttrRole             = "role"
	AttrHasPopup         = "aria-haspopup"
	AttrExpanded         = "aria-expanded"
	AttrControls         = "aria-controls"
	AttrActiveDescendant = "aria-activedescendant"
	AttrSelected         = "aria-selected"
	AttrHighlighted      = "data-highlighted"
)

// Attributes is one element's attribute set.
type Attributes map[string]string

// String renders the attributes as sorted key="value" pairs.
func (a Attributes) String() string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+strconv.Quote(a[k]))
	}
	return strings.Join(parts, " ")
}

// Accessibility is the attribute tree for a control, its panel and its rows.
// Panel and Rows are nil while the panel is closed.
type Accessibility struct {
	Control Attributes
	Panel   Attributes
	Rows    []Attributes
}

// PanelID returns the listbox id for a control id.
func PanelID(controlID string) string {
	return controlID + "-options"
}

// OptionID returns the row id for a control id and row index.
func OptionID(controlID string, index int) string {
	return controlID + "-option-" + strconv.Itoa(index)
}

// Bind derives the attribute tree from state, options and the bound value.
// Selection compares pointers: an option with the same Value as the bound
// option but a different identity is not selected.
func Bind(id string, snap state.Snapshot, options []*Option, value *Option) Accessibility {
	control := Attributes{
		AttrID:       id,
		AttrRole:     "combobox",
		AttrHasPopup: "listbox",
		AttrExpanded: strconv.FormatBool(snap.Open),
		AttrControls: PanelID(id),
	}
	if snap.Open && len(options) > 0 {
		control[AttrActiveDescendant] = OptionID(id, snap.Highlighted)
	}

	a := Accessibility{Control: control}
	if !snap.Open {
		return a
	}

	a.Panel = Attributes{
		AttrRole: "listbox",
		AttrID:   PanelID(id),
	}
	a.Rows = make([]Attributes, len(options))
	for i, opt := range options {
		a.Rows[i] = Attributes{
			AttrRole:        "option",
			AttrID:          OptionID(id, i),
			AttrSelected:    strconv.FormatBool(opt == value),
			AttrHighlighted: strconv.FormatBool(i == snap.Highlighted),
		}
	}
	return a
}

// Accessibility returns the current attribute tree.
func (m *Model) Accessibility() Accessibility {
	return Bind(m.id, m.store.Snapshot(), m.options, m.value)
}
