package packet

import (
	"encoding/binary"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeChecked decodes data and verifies that the result is either a
// well-formed view or a classified error.
func decodeChecked(t testing.TB, data []byte) {
	t.Helper()

	view, rest, err := Decode(data)
	if err != nil {
		require.Nil(t, view)
		require.Nil(t, rest)
		require.NotEqual(t, KindUnknown, KindOf(err), "unclassified error: %v", err)
		return
	}
	requireViewInvariants(t, data, view, rest)
}

func TestDecodeExhaustiveShortInputs(t *testing.T) {
	decodeChecked(t, nil)
	decodeChecked(t, []byte{})

	data := make([]byte, 2)
	for i := 0; i < 1<<16; i++ {
		data[0] = byte(i >> 8)
		data[1] = byte(i)
		decodeChecked(t, data[:1])
		decodeChecked(t, data)
	}
}

func TestDecodeExhaustiveSmallRegions(t *testing.T) {
	auth := testAuthenticator()

	// every attribute region of up to two bytes, with the header length
	// matching the region
	for size := 1; size <= 2; size++ {
		total := 1 << (8 * size)
		for v := 0; v < total; v++ {
			data := append([]byte{1, 1, 0, byte(PacketHeaderLength + size)}, auth[:]...)
			for i := size - 1; i >= 0; i-- {
				data = append(data, byte(v>>(8*i)))
			}
			decodeChecked(t, data)
		}
	}
}

func TestDecodeEveryDeclaredLength(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	data := make([]byte, 300)
	for i := range data {
		data[i] = byte(rng.IntN(256))
	}

	for length := 0; length <= 0xffff; length++ {
		binary.BigEndian.PutUint16(data[2:4], uint16(length))
		decodeChecked(t, data)
	}
}

func TestDecodeEveryAttributeLengthByte(t *testing.T) {
	auth := testAuthenticator()

	for declared := 0; declared <= MaxAttributeLength; declared++ {
		region := make([]byte, 64)
		region[0] = 1
		region[1] = byte(declared)

		data := append([]byte{1, 1, 0, byte(PacketHeaderLength + len(region))}, auth[:]...)
		data = append(data, region...)

		_, _, err := Decode(data)
		switch {
		case declared < AttributeHeaderLength:
			assert.ErrorIs(t, err, ErrInvalidAttributeLength, "declared %d", declared)
		case declared > len(region):
			assert.ErrorIs(t, err, ErrInsufficientData, "declared %d", declared)
		default:
			// leftover bytes are zeros, which form length-0 records
			if declared < len(region) {
				assert.Error(t, err, "declared %d", declared)
			} else {
				assert.NoError(t, err, "declared %d", declared)
			}
		}
	}
}

func TestDecodeRandomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 2865))

	for i := 0; i < 2000; i++ {
		var auth [AuthenticatorLength]byte
		for j := range auth {
			auth[j] = byte(rng.IntN(256))
		}

		var attrs []testAttr
		total := PacketHeaderLength
		for n := rng.IntN(20); n > 0; n-- {
			value := make([]byte, rng.IntN(MaxAttributeLength-AttributeHeaderLength+1))
			for j := range value {
				value[j] = byte(rng.IntN(256))
			}
			if total+len(value)+AttributeHeaderLength > MaxPacketLength {
				break
			}
			total += len(value) + AttributeHeaderLength
			attrs = append(attrs, testAttr{Type: uint8(rng.IntN(256)), Value: value})
		}

		code := Code(rng.IntN(256))
		id := uint8(rng.IntN(256))
		data := encodePacket(code, id, auth, attrs...)

		view, rest, err := Decode(data)
		require.NoError(t, err)
		requireViewInvariants(t, data, view, rest)

		assert.Equal(t, code, view.Code)
		assert.Equal(t, id, view.Identifier)
		assert.Equal(t, auth[:], view.Authenticator)
		require.Equal(t, len(attrs), view.Attributes.Len())
		for j, attr := range attrs {
			assert.Equal(t, attr.Type, view.Attributes.Records()[j].Type)
			assert.Equal(t, attr.Value, view.Attributes.Records()[j].Value)
		}

		// any truncation of a packet with attributes must fail cleanly
		if len(data) > PacketHeaderLength {
			cut := rng.IntN(len(data))
			decodeChecked(t, data[:cut])
			_, _, err := Decode(data[:cut])
			assert.Error(t, err)
		}
	}
}
