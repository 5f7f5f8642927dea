package packet

// Header is the fixed 20-byte RADIUS packet prefix (RFC 2865 Section 3).
//
// Authenticator and RawAttributes are sub-slices of the decoded buffer.
// RawAttributes is nil when the declared length leaves no room for
// attributes, and non-empty otherwise.
type Header struct {
	Code          Code
	Identifier    uint8
	Length        uint16
	Authenticator []byte
	RawAttributes []byte
}

// HasAttributes reports whether the header declares an attribute region.
func (h Header) HasAttributes() bool {
	return h.Length > PacketHeaderLength
}

// DecodeHeader parses the packet header from data and carves out the
// attribute region declared by the Length field. It returns the header and
// the bytes that follow the declared packet.
//
// The declared length is trusted only as far as data reaches: a region that
// would extend past the end of data fails with ErrInsufficientData.
func DecodeHeader(data []byte) (Header, []byte, error) {
	r := reader{buf: data}

	code, err := r.u8()
	if err != nil {
		return Header{}, nil, err
	}
	identifier, err := r.u8()
	if err != nil {
		return Header{}, nil, err
	}
	length, err := r.u16()
	if err != nil {
		return Header{}, nil, err
	}
	authenticator, err := r.take(AuthenticatorLength)
	if err != nil {
		return Header{}, nil, err
	}

	if length < MinPacketLength {
		return Header{}, nil, &DecodeError{
			Kind:   KindInvalidPacketLength,
			Offset: 2,
			Need:   MinPacketLength,
			Have:   int(length),
		}
	}

	hdr := Header{
		Code:          Code(code),
		Identifier:    identifier,
		Length:        length,
		Authenticator: authenticator,
	}

	if hdr.HasAttributes() {
		hdr.RawAttributes, err = r.take(int(length) - PacketHeaderLength)
		if err != nil {
			return Header{}, nil, err
		}
	}

	return hdr, r.rest(), nil
}
