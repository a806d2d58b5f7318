package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/pogoutil/internal/domain"
)

// TestEnumKeyByValue verifies reverse lookup and label formatting
func TestEnumKeyByValue(t *testing.T) {
	moves := domain.EnumMapping{
		{Name: "FAST_MOVE", Value: 1},
		{Name: "CHARGE_MOVE", Value: 2},
	}

	tests := []struct {
		name      string
		mapping   domain.EnumMapping
		value     int32
		expected  string
		wantFound bool
	}{
		{name: "multi word name", mapping: moves, value: 2, expected: "Charge Move", wantFound: true},
		{name: "first symbol", mapping: moves, value: 1, expected: "Fast Move", wantFound: true},
		{name: "missing value", mapping: domain.EnumMapping{{Name: "A", Value: 1}}, value: 99, expected: "", wantFound: false},
		{name: "single word", mapping: domain.EnumMapping{{Name: "NEUTRAL", Value: 0}}, value: 0, expected: "Neutral", wantFound: true},
		{name: "nil mapping", mapping: nil, value: 0, expected: "", wantFound: false},
		{
			name: "duplicate values pick first declared",
			mapping: domain.EnumMapping{
				{Name: "ITEM_UNKNOWN", Value: 0},
				{Name: "ITEM_NONE", Value: 0},
			},
			value:     0,
			expected:  "Item Unknown",
			wantFound: true,
		},
		{name: "negative value", mapping: domain.EnumMapping{{Name: "BELOW_ZERO", Value: -1}}, value: -1, expected: "Below Zero", wantFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, found := EnumKeyByValue(tt.mapping, tt.value)

			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.expected, label)
		})
	}
}

// TestHumanizeEnumName verifies the word casing rules
func TestHumanizeEnumName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"CHARGE_MOVE", "Charge Move"},
		{"ITEM_POKE_BALL", "Item Poke Ball"},
		{"already_lower", "Already Lower"},
		{"MiXeD_CaSe", "Mixed Case"},
		{"ITEM_10", "Item 10"},
		{"DOUBLE__UNDERSCORE", "Double  Underscore"},
		{"10X_BOOST", "10x Boost"},
		{"POKE-BALL", "Poke-ball"},
		{"ITEM_X_ATTACK.V2", "Item X Attack.v2"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, HumanizeEnumName(tt.input))
		})
	}
}
