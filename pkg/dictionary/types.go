package dictionary

// DataType represents the data type of an attribute
type DataType string

const (
	DataTypeString     DataType = "string"
	DataTypeOctets     DataType = "octets"
	DataTypeInteger    DataType = "integer"
	DataTypeIPAddr     DataType = "ipaddr"
	DataTypeDate       DataType = "date"
	DataTypeIPv6Addr   DataType = "ipv6addr"
	DataTypeIPv6Prefix DataType = "ipv6prefix"
	DataTypeIfID       DataType = "ifid"
	DataTypeTLV        DataType = "tlv"
	DataTypeABinary    DataType = "abinary"
)

// IsValid reports whether the data type is one the dictionary knows
func (t DataType) IsValid() bool {
	switch t {
	case DataTypeString, DataTypeOctets, DataTypeInteger, DataTypeIPAddr,
		DataTypeDate, DataTypeIPv6Addr, DataTypeIPv6Prefix, DataTypeIfID,
		DataTypeTLV, DataTypeABinary:
		return true
	default:
		return false
	}
}

// AttributeDefinition names a RADIUS attribute type code
type AttributeDefinition struct {
	ID          uint32   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	DataType    DataType `yaml:"data_type" json:"data_type"`
	HasTag      bool     `yaml:"has_tag,omitempty" json:"has_tag,omitempty"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
}

// File is the on-disk layout of a dictionary file
type File struct {
	Attributes []*AttributeDefinition `yaml:"attributes" json:"attributes"`
}
