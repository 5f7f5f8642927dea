package packet

// Attributes is the decoded attribute region of a packet. A packet whose
// declared length is exactly the header size has no region at all, which
// Present reports as false; that is distinct from a region with no records.
type Attributes struct {
	records []AttributeView
	present bool
}

// Present reports whether the packet carried an attribute region.
func (a Attributes) Present() bool {
	return a.present
}

// Records returns the attributes in wire order. The slice is shared with the
// view and must not be modified.
func (a Attributes) Records() []AttributeView {
	return a.records
}

// Len returns the number of attributes
func (a Attributes) Len() int {
	return len(a.records)
}

// Get returns the first attribute with the specified type
func (a Attributes) Get(attrType uint8) (AttributeView, bool) {
	for _, attr := range a.records {
		if attr.Type == attrType {
			return attr, true
		}
	}
	return AttributeView{}, false
}

// GetAll returns all attributes with the specified type
func (a Attributes) GetAll(attrType uint8) []AttributeView {
	var attrs []AttributeView
	for _, attr := range a.records {
		if attr.Type == attrType {
			attrs = append(attrs, attr)
		}
	}
	return attrs
}

// WireLength returns the sum of the declared lengths of all attributes.
func (a Attributes) WireLength() int {
	n := 0
	for _, attr := range a.records {
		n += int(attr.Length)
	}
	return n
}

// DecodeAttributes decodes region as a sequence of attribute records that
// must cover it exactly. Offsets in the result and in errors are relative to
// region.
func DecodeAttributes(region []byte) ([]AttributeView, error) {
	return decodeAttributes(region, 0)
}

func decodeAttributes(region []byte, base int) ([]AttributeView, error) {
	r := reader{buf: region, base: base}

	// every record takes at least two bytes, which bounds the loop
	records := make([]AttributeView, 0, min(len(region)/AttributeHeaderLength, 16))

	for r.remaining() > 0 {
		if len(records) > 0 && r.remaining() < AttributeHeaderLength {
			return nil, &DecodeError{
				Kind:   KindTrailingBytes,
				Offset: r.pos(),
				Have:   r.remaining(),
			}
		}

		attr, err := decodeAttribute(&r)
		if err != nil {
			if len(records) == 0 {
				return nil, &DecodeError{
					Kind:   KindEmptyAttributeRegion,
					Offset: base,
					Have:   len(region),
					Err:    err,
				}
			}
			return nil, err
		}

		records = append(records, attr)
	}

	return records, nil
}
