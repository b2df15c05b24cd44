// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package codes

import (
	"bytes"
	"encoding/json"
)

// wire is the canonical three-field form.
type wire struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Inner   string `json:"inner"`
}

// Encode returns the wire form of c.
func (c Code) Encode() string {
	b, err := c.MarshalJSON()
	if err != nil {
		return ""
	}
	return string(b)
}

func (c Code) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(wire{
		Code:    c.Code(),
		Message: c.Message(),
		Inner:   c.Inner(),
	}); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON never fails: it stores Decode(data) in c.
func (c *Code) UnmarshalJSON(data []byte) error {
	*c = Decode(string(data))
	return nil
}

// Decode turns wire text back into a Code. It never fails: input that is
// not an object with an integer code and an inner field, or whose code is
// not decodable, becomes ServerInternalError carrying the raw input.
func Decode(s string) Code {
	fallback := ServerInternalError(s)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &fields); err != nil {
		return fallback
	}
	rawCode, ok := fields["code"]
	if !ok {
		return fallback
	}
	rawInner, ok := fields["inner"]
	if !ok {
		return fallback
	}

	id, ok := integer(rawCode)
	if !ok {
		return fallback
	}
	d, ok := byCode[id]
	if !ok || !d.Decodable {
		return fallback
	}

	return newCode(d.Kind, innerText(rawInner))
}

// innerText returns a string inner unquoted. Any other JSON value,
// null included, keeps its JSON text.
func innerText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return string(raw)
	}
	var inner string
	if err := json.Unmarshal(raw, &inner); err != nil {
		return string(raw)
	}
	return inner
}

func integer(raw json.RawMessage) (int, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, false
	}
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	i, err := n.Int64()
	if err != nil || int64(int(i)) != i {
		return 0, false
	}
	return int(i), true
}
