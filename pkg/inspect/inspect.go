// Package inspect renders decoded packets for people and for tooling. It
// names attributes through a dictionary but never interprets their values
// beyond showing printable text.
package inspect

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/vitalvas/radwire/pkg/dictionary"
	"github.com/vitalvas/radwire/pkg/packet"
)

// Attribute is the rendered form of one attribute record
type Attribute struct {
	Name   string `json:"name"`
	Type   uint8  `json:"type"`
	Length uint8  `json:"length"`
	Offset int    `json:"offset"`
	Hex    string `json:"hex"`
	Text   string `json:"text,omitempty"`
}

// Summary is the rendered form of a packet
type Summary struct {
	Code          string      `json:"code"`
	CodeValue     uint8       `json:"code_value"`
	Identifier    uint8       `json:"identifier"`
	Length        uint16      `json:"length"`
	Authenticator string      `json:"authenticator"`
	HasAttributes bool        `json:"has_attributes"`
	Attributes    []Attribute `json:"attributes,omitempty"`
}

// Summarize copies the fields of view into a Summary. A nil dictionary
// yields generic "Attr-N" names.
func Summarize(view *packet.PacketView, dict *dictionary.Dictionary) Summary {
	s := Summary{
		Code:          view.Code.String(),
		CodeValue:     uint8(view.Code),
		Identifier:    view.Identifier,
		Length:        view.Length,
		Authenticator: hex.EncodeToString(view.Authenticator),
		HasAttributes: view.Attributes.Present(),
	}

	for _, attr := range view.Attributes.Records() {
		rendered := Attribute{
			Name:   dict.Name(attr.Type),
			Type:   attr.Type,
			Length: attr.Length,
			Offset: attr.Offset,
			Hex:    hex.EncodeToString(attr.Value),
		}
		if isTextual(dict, attr) {
			rendered.Text = string(attr.Value)
		}
		s.Attributes = append(s.Attributes, rendered)
	}

	return s
}

// isTextual reports whether the attribute is declared as a string and its
// value is printable UTF-8.
func isTextual(dict *dictionary.Dictionary, attr packet.AttributeView) bool {
	if dict == nil || len(attr.Value) == 0 {
		return false
	}
	def, ok := dict.LookupByType(attr.Type)
	if !ok || def.DataType != dictionary.DataTypeString {
		return false
	}
	if !utf8.Valid(attr.Value) {
		return false
	}
	for _, r := range string(attr.Value) {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// WriteText writes an indented, line-oriented dump of s
func WriteText(w io.Writer, s Summary) error {
	if _, err := fmt.Fprintf(w, "%s (%d) id=%d length=%d\n", s.Code, s.CodeValue, s.Identifier, s.Length); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  Authenticator = 0x%s\n", s.Authenticator); err != nil {
		return err
	}

	if !s.HasAttributes {
		_, err := fmt.Fprintln(w, "  (no attribute region)")
		return err
	}

	for _, attr := range s.Attributes {
		value := "0x" + attr.Hex
		if attr.Text != "" {
			value = strconv.Quote(attr.Text)
		}
		if _, err := fmt.Fprintf(w, "  %s (%d) len=%d = %s\n", attr.Name, attr.Type, attr.Length, value); err != nil {
			return err
		}
	}

	return nil
}

// WriteJSON writes s as a single line of JSON
func WriteJSON(w io.Writer, s Summary) error {
	return json.NewEncoder(w).Encode(s)
}
