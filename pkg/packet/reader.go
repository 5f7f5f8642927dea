package packet

import "encoding/binary"

// reader is a forward-only cursor over buf. Every read checks the remaining
// length first, so the offset never passes len(buf).
type reader struct {
	buf  []byte
	off  int
	base int // offset of buf[0] within the caller's buffer
}

func (r *reader) remaining() int {
	return len(r.buf) - r.off
}

func (r *reader) pos() int {
	return r.base + r.off
}

func (r *reader) short(need int) *DecodeError {
	return &DecodeError{
		Kind:   KindInsufficientData,
		Offset: r.pos(),
		Need:   need,
		Have:   r.remaining(),
	}
}

func (r *reader) u8() (uint8, error) {
	if r.remaining() < 1 {
		return 0, r.short(1)
	}
	v := r.buf[r.off]
	r.off++
	return v, nil
}

func (r *reader) u16() (uint16, error) {
	if r.remaining() < 2 {
		return 0, r.short(2)
	}
	v := binary.BigEndian.Uint16(r.buf[r.off:])
	r.off += 2
	return v, nil
}

// take returns the next n bytes without copying. The result's capacity is
// clamped to its length so appends cannot write into the following bytes.
func (r *reader) take(n int) ([]byte, error) {
	if n < 0 || n > r.remaining() {
		return nil, r.short(n)
	}
	start, end := r.off, r.off+n
	r.off = end
	return r.buf[start:end:end], nil
}

// rest returns everything not yet consumed.
func (r *reader) rest() []byte {
	return r.buf[r.off:len(r.buf):len(r.buf)]
}
