package packet

import (
	"errors"
	"fmt"
)

// Kind classifies why a decode failed.
type Kind uint8

const (
	KindUnknown Kind = iota
	// KindInsufficientData: fewer bytes are available than a field or record requires.
	KindInsufficientData
	// KindInvalidAttributeLength: an attribute declares a length below 2.
	KindInvalidAttributeLength
	// KindTrailingBytes: the attribute region ended with bytes that cannot form a record.
	KindTrailingBytes
	// KindEmptyAttributeRegion: the attribute region is non-empty but its first record is malformed.
	KindEmptyAttributeRegion
	// KindInvalidPacketLength: the header declares a total length below the header size.
	KindInvalidPacketLength
)

var (
	ErrInsufficientData       = errors.New("radius: insufficient data")
	ErrInvalidAttributeLength = errors.New("radius: invalid attribute length")
	ErrTrailingBytes          = errors.New("radius: trailing bytes in attribute region")
	ErrEmptyAttributeRegion   = errors.New("radius: no valid attribute in attribute region")
	ErrInvalidPacketLength    = errors.New("radius: invalid packet length")

	// ErrMalformedAttributes matches every error caused by the attribute
	// region content rather than by a short buffer.
	ErrMalformedAttributes = errors.New("radius: malformed attributes")
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindInsufficientData:
		return "InsufficientData"
	case KindInvalidAttributeLength:
		return "InvalidAttributeLength"
	case KindTrailingBytes:
		return "TrailingBytes"
	case KindEmptyAttributeRegion:
		return "EmptyAttributeRegion"
	case KindInvalidPacketLength:
		return "InvalidPacketLength"
	default:
		return "Unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindInsufficientData:
		return ErrInsufficientData
	case KindInvalidAttributeLength:
		return ErrInvalidAttributeLength
	case KindTrailingBytes:
		return ErrTrailingBytes
	case KindEmptyAttributeRegion:
		return ErrEmptyAttributeRegion
	case KindInvalidPacketLength:
		return ErrInvalidPacketLength
	default:
		return nil
	}
}

// DecodeError describes a decode failure. Offset is measured from the start
// of the buffer handed to the decode function.
//
// Need and Have depend on Kind:
//   - InsufficientData: bytes required and bytes available
//   - InvalidAttributeLength, InvalidPacketLength: minimum length and declared length
//   - TrailingBytes: zero and the number of leftover bytes
//   - EmptyAttributeRegion: zero and the region size; Err holds the first record's failure
type DecodeError struct {
	Kind   Kind
	Offset int
	Need   int
	Have   int
	Err    error
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case KindInsufficientData:
		return fmt.Sprintf("%v at offset %d: need %d bytes, have %d", ErrInsufficientData, e.Offset, e.Need, e.Have)
	case KindInvalidAttributeLength:
		return fmt.Sprintf("%v %d at offset %d: minimum is %d", ErrInvalidAttributeLength, e.Have, e.Offset, e.Need)
	case KindInvalidPacketLength:
		return fmt.Sprintf("%v %d: minimum is %d", ErrInvalidPacketLength, e.Have, e.Need)
	case KindTrailingBytes:
		return fmt.Sprintf("%v: %d bytes at offset %d", ErrTrailingBytes, e.Have, e.Offset)
	case KindEmptyAttributeRegion:
		return fmt.Sprintf("%v (%d bytes at offset %d): %v", ErrEmptyAttributeRegion, e.Have, e.Offset, e.Err)
	default:
		return fmt.Sprintf("radius: decode error at offset %d", e.Offset)
	}
}

// Unwrap returns the underlying cause, if any.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's own kind, plus ErrMalformedAttributes
// for attribute-content failures.
func (e *DecodeError) Is(target error) bool {
	if target == nil {
		return false
	}
	if target == ErrMalformedAttributes {
		switch e.Kind {
		case KindInvalidAttributeLength, KindTrailingBytes, KindEmptyAttributeRegion:
			return true
		}
		return false
	}
	return target == e.Kind.sentinel()
}

// KindOf returns the kind of the outermost DecodeError in err's chain, or
// KindUnknown if there is none.
func KindOf(err error) Kind {
	var de *DecodeError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}
