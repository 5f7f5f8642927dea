package packet

import "fmt"

// AttributeView is one type-length-value record. Value is a sub-slice of the
// decoded buffer and Offset is the position of the Type byte in that buffer.
type AttributeView struct {
	Type   uint8
	Length uint8
	Value  []byte
	Offset int
}

// String returns a string representation of the attribute
func (a AttributeView) String() string {
	return fmt.Sprintf("Type=%d, Length=%d, Value=%x", a.Type, a.Length, a.Value)
}

// decodeAttribute reads one record at the cursor. The declared length is
// validated before it is used to size the value.
func decodeAttribute(r *reader) (AttributeView, error) {
	start := r.pos()

	typ, err := r.u8()
	if err != nil {
		return AttributeView{}, err
	}
	length, err := r.u8()
	if err != nil {
		return AttributeView{}, err
	}

	if length < AttributeHeaderLength {
		return AttributeView{}, &DecodeError{
			Kind:   KindInvalidAttributeLength,
			Offset: start,
			Need:   AttributeHeaderLength,
			Have:   int(length),
		}
	}

	value, err := r.take(int(length) - AttributeHeaderLength)
	if err != nil {
		return AttributeView{}, err
	}

	return AttributeView{
		Type:   typ,
		Length: length,
		Value:  value,
		Offset: start,
	}, nil
}
