package packet

import (
	"bytes"
	"fmt"
)

// PacketView is a decoded RADIUS packet. It borrows from the buffer passed
// to Decode: the buffer must not be modified while the view is in use.
// Use Clone to detach a view from a buffer that is about to be reused.
type PacketView struct {
	Header
	Attributes Attributes
}

// WireLength returns the number of bytes the packet occupies on the wire.
func (p *PacketView) WireLength() int {
	return int(p.Length)
}

// Clone returns a deep copy of the view that shares no memory with the
// original buffer.
func (p *PacketView) Clone() *PacketView {
	if p == nil {
		return nil
	}

	c := &PacketView{Header: p.Header}
	c.Authenticator = bytes.Clone(p.Authenticator)
	c.RawAttributes = bytes.Clone(p.RawAttributes)

	if p.Attributes.present {
		records := make([]AttributeView, len(p.Attributes.records))
		for i, attr := range p.Attributes.records {
			records[i] = attr
			records[i].Value = bytes.Clone(attr.Value)
		}
		c.Attributes = Attributes{records: records, present: true}
	}

	return c
}

// String returns a string representation of the packet
func (p *PacketView) String() string {
	return fmt.Sprintf("Code=%s(%d), ID=%d, Length=%d, Attributes=%d",
		p.Code.String(), uint8(p.Code), p.Identifier, p.Length, p.Attributes.Len())
}
