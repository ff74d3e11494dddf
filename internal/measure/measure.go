// Package measure holds computed quantities that may legitimately be
// absent. A quantity is either computed, carrying its value, or not
// applicable, carrying the reason it could not be computed.
package measure

import (
	"encoding/json"
	"fmt"
)

// Value is a computed number or the reason why there is none.
type Value struct {
	v      float64
	ok     bool
	reason string
}

// Computed returns a defined value.
func Computed(v float64) Value {
	return Value{v: v, ok: true}
}

// NotApplicable returns an undefined value with a diagnostic reason.
func NotApplicable(reason string) Value {
	return Value{reason: reason}
}

// NotApplicablef is NotApplicable with a formatted reason.
func NotApplicablef(format string, args ...any) Value {
	return NotApplicable(fmt.Sprintf(format, args...))
}

// Defined reports whether the value was computed.
func (m Value) Defined() bool { return m.ok }

// Get returns the value and whether it is defined.
func (m Value) Get() (float64, bool) { return m.v, m.ok }

// Or returns the value if defined, otherwise def.
func (m Value) Or(def float64) float64 {
	if m.ok {
		return m.v
	}
	return def
}

// Reason is empty for computed values.
func (m Value) Reason() string { return m.reason }

// Format renders the value with the given verb, or "-" when undefined.
func (m Value) Format(verb string) string {
	if !m.ok {
		return "-"
	}
	return fmt.Sprintf(verb, m.v)
}

func (m Value) String() string {
	if !m.ok {
		return "n/a (" + m.reason + ")"
	}
	return fmt.Sprintf("%g", m.v)
}

type jsonValue struct {
	Value  *float64 `json:"value"`
	Reason string   `json:"reason,omitempty"`
}

// MarshalJSON encodes as {"value": v} or {"value": null, "reason": "..."}.
func (m Value) MarshalJSON() ([]byte, error) {
	j := jsonValue{Reason: m.reason}
	if m.ok {
		v := m.v
		j.Value = &v
	}
	return json.Marshal(j)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (m *Value) UnmarshalJSON(data []byte) error {
	var j jsonValue
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	if j.Value != nil {
		*m = Computed(*j.Value)
		return nil
	}
	*m = NotApplicable(j.Reason)
	return nil
}
