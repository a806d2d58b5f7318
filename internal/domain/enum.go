package domain

// EnumValue is one symbol of an enumeration
type EnumValue struct {
	Name  string `json:"name" yaml:"name"`
	Value int32  `json:"value" yaml:"value"`
}

// EnumMapping is an enumeration in declaration order.
// Names are unique; values may repeat.
type EnumMapping []EnumValue
