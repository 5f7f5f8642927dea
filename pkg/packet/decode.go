package packet

import "fmt"

// Decode parses one RADIUS packet from the start of data. On success it
// returns the packet and the bytes of data that follow the declared packet
// length. On failure it returns a *DecodeError and no partial result.
//
// Decode never copies packet bytes and never reads outside data, whatever
// the header and attribute lengths claim.
func Decode(data []byte) (*PacketView, []byte, error) {
	hdr, rest, err := DecodeHeader(data)
	if err != nil {
		return nil, nil, err
	}

	view := &PacketView{Header: hdr}

	if hdr.RawAttributes != nil {
		records, err := decodeAttributes(hdr.RawAttributes, PacketHeaderLength)
		if err != nil {
			return nil, nil, err
		}
		view.Attributes = Attributes{records: records, present: true}
	}

	return view, rest, nil
}

// DecodeAll decodes consecutive packets from data until it is exhausted.
// On error it returns the packets decoded before the failing one, and an
// error that wraps the *DecodeError with the failing packet's index and
// starting offset.
func DecodeAll(data []byte) ([]*PacketView, error) {
	var views []*PacketView
	offset := 0

	for len(data) > 0 {
		view, rest, err := Decode(data)
		if err != nil {
			return views, fmt.Errorf("packet %d at offset %d: %w", len(views), offset, err)
		}
		views = append(views, view)
		offset += view.WireLength()
		data = rest
	}

	return views, nil
}
