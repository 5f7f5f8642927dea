package inspect

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalvas/radwire/pkg/dictionary"
	"github.com/vitalvas/radwire/pkg/packet"
)

var request = []byte{
	0x01, 0x2a, 0x00, 0x2b,
	0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
	0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
	0x01, 0x07, 's', 't', 'e', 'v', 'e', // User-Name
	0x04, 0x06, 0xc0, 0xa8, 0x00, 0x1c, // NAS-IP-Address
	0x01, 0x04, 0xff, 0xfe, // User-Name, not printable
	0x11, 0x06, 'l', 'o', 'c', 'l', // unknown type 17
}

func decode(t *testing.T, data []byte) *packet.PacketView {
	t.Helper()
	view, _, err := packet.Decode(data)
	require.NoError(t, err)
	return view
}

func TestSummarize(t *testing.T) {
	s := Summarize(decode(t, request), dictionary.NewStandard())

	assert.Equal(t, "Access-Request", s.Code)
	assert.Equal(t, uint8(1), s.CodeValue)
	assert.Equal(t, uint8(42), s.Identifier)
	assert.Equal(t, uint16(43), s.Length)
	assert.Equal(t, "000102030405060708090a0b0c0d0e0f", s.Authenticator)
	assert.True(t, s.HasAttributes)

	require.Len(t, s.Attributes, 4)
	assert.Equal(t, Attribute{Name: "User-Name", Type: 1, Length: 7, Offset: 20, Hex: "7374657665", Text: "steve"}, s.Attributes[0])
	assert.Equal(t, Attribute{Name: "NAS-IP-Address", Type: 4, Length: 6, Offset: 27, Hex: "c0a8001c"}, s.Attributes[1])
	assert.Equal(t, "", s.Attributes[2].Text)
	assert.Equal(t, "fffe", s.Attributes[2].Hex)
	assert.Equal(t, "Attr-17", s.Attributes[3].Name)
	assert.Equal(t, "", s.Attributes[3].Text)
}

func TestSummarizeWithoutDictionary(t *testing.T) {
	s := Summarize(decode(t, request), nil)

	require.Len(t, s.Attributes, 4)
	assert.Equal(t, "Attr-1", s.Attributes[0].Name)
	assert.Equal(t, "", s.Attributes[0].Text)
}

func TestWriteText(t *testing.T) {
	headerOnly := append([]byte{0x0c, 0x07, 0x00, 0x14}, make([]byte, 16)...)
	tests := []struct {
		name     string
		data     []byte
		expected string
	}{
		{
			name: "with attributes",
			data: request,
			expected: "Access-Request (1) id=42 length=43\n" +
				"  Authenticator = 0x000102030405060708090a0b0c0d0e0f\n" +
				"  User-Name (1) len=7 = \"steve\"\n" +
				"  NAS-IP-Address (4) len=6 = 0xc0a8001c\n" +
				"  User-Name (1) len=4 = 0xfffe\n" +
				"  Attr-17 (17) len=6 = 0x6c6f636c\n",
		},
		{
			name: "header only",
			data: headerOnly,
			expected: "Status-Server (12) id=7 length=20\n" +
				"  Authenticator = 0x00000000000000000000000000000000\n" +
				"  (no attribute region)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteText(&buf, Summarize(decode(t, tt.data), dictionary.NewStandard())))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, Summarize(decode(t, request), dictionary.NewStandard())))

	var decoded Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Access-Request", decoded.Code)
	require.Len(t, decoded.Attributes, 4)
	assert.Equal(t, "steve", decoded.Attributes[0].Text)
	assert.Equal(t, byte('\n'), buf.Bytes()[buf.Len()-1])
}
