package matching

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is an opaque identifier. It decodes from a JSON string or number so
// callers may send database integers, uuids or plain names.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or number, got %s", b)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }
