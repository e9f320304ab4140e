package maybe

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// MarshalJSON encodes Absent as null and Present as its value.
func (m Maybe[A]) MarshalJSON() ([]byte, error) {
	if !m.ok {
		return jsonNull, nil
	}
	return json.Marshal(m.value)
}

// UnmarshalJSON decodes null as Absent and anything else as Present.
// A Present value that itself encodes as null does not survive a round trip.
func (m *Maybe[A]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*m = Absent[A]()
		return nil
	}
	var v A
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = Present(v)
	return nil
}
