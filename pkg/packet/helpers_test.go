package packet

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testAttr struct {
	Type  uint8
	Value []byte
}

// encodePacket builds wire bytes with a length field that matches the
// attributes. The package itself is decode-only.
func encodePacket(code Code, identifier uint8, auth [AuthenticatorLength]byte, attrs ...testAttr) []byte {
	data := make([]byte, PacketHeaderLength)
	data[0] = byte(code)
	data[1] = identifier
	copy(data[4:20], auth[:])

	for _, attr := range attrs {
		data = append(data, attr.Type, uint8(len(attr.Value)+AttributeHeaderLength))
		data = append(data, attr.Value...)
	}

	binary.BigEndian.PutUint16(data[2:4], uint16(len(data)))
	return data
}

func testAuthenticator() [AuthenticatorLength]byte {
	return [AuthenticatorLength]byte{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10,
	}
}

// accessRequest is an 87-byte Access-Request carrying User-Name,
// User-Password, NAS-IP-Address, NAS-Port, Message-Authenticator and
// EAP-Message.
var accessRequest = []byte{
	0x01, 0x67, 0x00, 0x57,
	0x40, 0xe7, 0xc1, 0x2a, 0x8b, 0x5f, 0x39, 0x17,
	0x06, 0xf2, 0xd6, 0x0c, 0x44, 0x7e, 0x91, 0xa3,
	// User-Name = "steve"
	0x01, 0x07, 0x73, 0x74, 0x65, 0x76, 0x65,
	// User-Password
	0x02, 0x12,
	0xdb, 0xc6, 0xc4, 0xb7, 0x58, 0xbe, 0x14, 0xf0,
	0x05, 0xb3, 0x87, 0x7c, 0x9e, 0x2f, 0xb6, 0x01,
	// NAS-IP-Address = 192.168.0.28
	0x04, 0x06, 0xc0, 0xa8, 0x00, 0x1c,
	// NAS-Port = 123
	0x05, 0x06, 0x00, 0x00, 0x00, 0x7b,
	// Message-Authenticator
	0x50, 0x12,
	0x6f, 0x93, 0x0e, 0x19, 0x5b, 0x0f, 0x27, 0x2e,
	0x84, 0x90, 0xa9, 0x08, 0x7e, 0x7b, 0x9a, 0x4c,
	// EAP-Message
	0x4f, 0x0c, 0x02, 0x00, 0x00, 0x0a, 0x01, 0x73, 0x74, 0x65, 0x76, 0x65,
}

// requireViewInvariants checks every structural guarantee of a successful
// decode of data.
func requireViewInvariants(t testing.TB, data []byte, view *PacketView, rest []byte) {
	t.Helper()

	require.NotNil(t, view)
	require.GreaterOrEqual(t, int(view.Length), PacketHeaderLength)
	require.LessOrEqual(t, int(view.Length), len(data))

	assert.Equal(t, Code(data[0]), view.Code)
	assert.Equal(t, data[1], view.Identifier)
	require.Len(t, view.Authenticator, AuthenticatorLength)
	assert.Equal(t, data[4:20], view.Authenticator)

	assert.Equal(t, view.Length > PacketHeaderLength, view.Attributes.Present())
	assert.Equal(t, view.Attributes.Present(), view.RawAttributes != nil)
	assert.Equal(t, data[view.Length:], rest)

	if !view.Attributes.Present() {
		assert.Zero(t, view.Attributes.Len())
		return
	}

	require.NotZero(t, view.Attributes.Len())
	assert.Equal(t, int(view.Length)-PacketHeaderLength, view.Attributes.WireLength())

	next := PacketHeaderLength
	for _, attr := range view.Attributes.Records() {
		require.Equal(t, next, attr.Offset, "records must tile the region")
		require.GreaterOrEqual(t, int(attr.Length), AttributeHeaderLength)
		require.Len(t, attr.Value, int(attr.Length)-AttributeHeaderLength)
		assert.Equal(t, data[attr.Offset], attr.Type)
		assert.Equal(t, data[attr.Offset+1], attr.Length)
		assert.Equal(t, data[attr.Offset+2:attr.Offset+int(attr.Length)], attr.Value)
		assert.Equal(t, len(attr.Value), cap(attr.Value))
		next += int(attr.Length)
	}
	assert.Equal(t, int(view.Length), next)
}

// reencode rebuilds wire bytes from a view.
func reencode(view *PacketView) []byte {
	out := []byte{byte(view.Code), view.Identifier, 0, 0}
	binary.BigEndian.PutUint16(out[2:4], view.Length)
	out = append(out, view.Authenticator...)
	for _, attr := range view.Attributes.Records() {
		out = append(out, attr.Type, attr.Length)
		out = append(out, attr.Value...)
	}
	return out
}
