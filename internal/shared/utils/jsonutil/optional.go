// Package jsonutil provides JSON conversion utilities.
package jsonutil

import "encoding/json"

// OptionalString distinguishes between a JSON field that is absent, explicitly
// null, and present with a value. Plain *string cannot represent all three
// states, which matters for PATCH-style partial updates where null means
// "clear this field".
type OptionalString struct {
	Present bool
	Value   *string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

func (o OptionalString) MarshalJSON() ([]byte, error) {
	if !o.Present || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// String returns the value or the empty string when absent or null.
func (o OptionalString) String() string {
	if o.Value == nil {
		return ""
	}
	return *o.Value
}
