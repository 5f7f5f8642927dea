package dictionary

import (
	"fmt"
	"sort"
)

// Dictionary maps attribute type codes to names. It is read-only once
// built and safe for concurrent lookups.
type Dictionary struct {
	byID   map[uint8]*AttributeDefinition
	byName map[string]*AttributeDefinition
}

// New creates a new empty dictionary
func New() *Dictionary {
	return &Dictionary{
		byID:   make(map[uint8]*AttributeDefinition),
		byName: make(map[string]*AttributeDefinition),
	}
}

// AddAttributes adds attribute definitions. Nothing is added if any
// definition is invalid or conflicts with an existing one; redefining an
// attribute with the same name and data type is allowed.
func (d *Dictionary) AddAttributes(attrs []*AttributeDefinition) error {
	pending := make(map[uint8]*AttributeDefinition, len(attrs))
	names := make(map[string]uint8, len(attrs))

	for _, attr := range attrs {
		if attr == nil {
			return fmt.Errorf("nil attribute definition")
		}
		if attr.Name == "" {
			return fmt.Errorf("attribute %d has no name", attr.ID)
		}
		if attr.ID == 0 || attr.ID > 255 {
			return fmt.Errorf("attribute %q: id %d out of range 1-255", attr.Name, attr.ID)
		}
		if !attr.DataType.IsValid() {
			return fmt.Errorf("attribute %q: unknown data type %q", attr.Name, attr.DataType)
		}

		id := uint8(attr.ID)
		if existing, ok := d.byID[id]; ok && !sameDefinition(existing, attr) {
			return fmt.Errorf("attribute conflict: id %d defined as both %q and %q", id, existing.Name, attr.Name)
		}
		if existing, ok := pending[id]; ok && !sameDefinition(existing, attr) {
			return fmt.Errorf("attribute conflict: id %d defined as both %q and %q", id, existing.Name, attr.Name)
		}
		if existing, ok := d.byName[attr.Name]; ok && uint8(existing.ID) != id {
			return fmt.Errorf("duplicate attribute name %q: already used by id %d", attr.Name, existing.ID)
		}
		if other, ok := names[attr.Name]; ok && other != id {
			return fmt.Errorf("duplicate attribute name %q: already used by id %d", attr.Name, other)
		}

		pending[id] = attr
		names[attr.Name] = id
	}

	for id, attr := range pending {
		d.byID[id] = attr
		d.byName[attr.Name] = attr
	}

	return nil
}

func sameDefinition(a, b *AttributeDefinition) bool {
	return a.Name == b.Name && a.DataType == b.DataType
}

// Merge adds every attribute of other to d with the same conflict rules as
// AddAttributes.
func (d *Dictionary) Merge(other *Dictionary) error {
	return d.AddAttributes(other.Attributes())
}

// LookupByType finds an attribute by type code
func (d *Dictionary) LookupByType(attrType uint8) (*AttributeDefinition, bool) {
	attr, exists := d.byID[attrType]
	return attr, exists
}

// LookupByName finds an attribute by name
func (d *Dictionary) LookupByName(name string) (*AttributeDefinition, bool) {
	attr, exists := d.byName[name]
	return attr, exists
}

// Name returns the attribute name for a type code, or "Attr-N" when the
// code is unknown.
func (d *Dictionary) Name(attrType uint8) string {
	if d != nil {
		if attr, ok := d.byID[attrType]; ok {
			return attr.Name
		}
	}
	return fmt.Sprintf("Attr-%d", attrType)
}

// Len returns the number of attributes in the dictionary
func (d *Dictionary) Len() int {
	return len(d.byID)
}

// Attributes returns all definitions ordered by type code
func (d *Dictionary) Attributes() []*AttributeDefinition {
	attrs := make([]*AttributeDefinition, 0, len(d.byID))
	for _, attr := range d.byID {
		attrs = append(attrs, attr)
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].ID < attrs[j].ID
	})
	return attrs
}
