package packet

const (
	// PacketHeaderLength is the length of the RADIUS packet header in bytes
	PacketHeaderLength = 20
	// MinPacketLength is the minimum allowed declared packet length
	MinPacketLength = PacketHeaderLength
	// MaxPacketLength is the largest length RFC 2865 permits. The decoder does
	// not enforce it; callers that want the RFC limit check WireLength.
	MaxPacketLength = 4096
	// AuthenticatorLength is the length of the authenticator field
	AuthenticatorLength = 16
	// AttributeHeaderLength is the length of attribute header (Type + Length)
	AttributeHeaderLength = 2
	// MaxAttributeLength is the largest value the one-byte Length field can hold
	MaxAttributeLength = 255
)
