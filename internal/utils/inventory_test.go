package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/pogoutil/internal/domain"
)

func entry(data *domain.InventoryItemData) domain.InventoryItem {
	return domain.InventoryItem{InventoryItemData: data}
}

// TestSplitInventory_DegenerateInput verifies missing containers yield an empty partition
func TestSplitInventory_DegenerateInput(t *testing.T) {
	tests := []struct {
		name string
		resp *domain.InventoryResponse
	}{
		{name: "nil response", resp: nil},
		{name: "missing delta", resp: &domain.InventoryResponse{}},
		{name: "missing item list", resp: &domain.InventoryResponse{InventoryDelta: &domain.InventoryDelta{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SplitInventory(tt.resp)

			assert.Equal(t, domain.PartitionedInventory{}, result)
			assert.True(t, result.IsEmpty())
		})
	}
}

// TestSplitInventory_EmptyItemList verifies an empty list gives initialised, empty slots
func TestSplitInventory_EmptyItemList(t *testing.T) {
	resp := &domain.InventoryResponse{
		InventoryDelta: &domain.InventoryDelta{InventoryItems: []domain.InventoryItem{}},
	}

	result := SplitInventory(resp)

	assert.True(t, result.IsEmpty())
	assert.NotNil(t, result.Pokemon)
	assert.NotNil(t, result.Candies)
	assert.Nil(t, result.Player)
	assert.Nil(t, result.Camera)
}

// TestSplitInventory_Classification verifies each payload kind lands in its slot
func TestSplitInventory_Classification(t *testing.T) {
	pikachu := &domain.PokemonData{ID: "1", PokemonID: 25}
	eevee := &domain.PokemonData{ID: "2", PokemonID: 133}
	pokeball := &domain.Item{ItemID: 1, Count: 50}
	pokedex := &domain.PokedexEntry{PokemonID: 25, TimesCaptured: 3}
	stats := &domain.PlayerStats{Level: 12}
	stardust := &domain.PlayerCurrency{Gems: 1000}
	camera := &domain.PlayerCamera{IsDefaultCamera: true}
	upgrades := &domain.InventoryUpgrades{InventoryUpgrades: []domain.InventoryUpgrade{{ItemID: 1002, AdditionalStorage: 50}}}
	applied := &domain.AppliedItems{Item: []domain.AppliedItem{{ItemID: 401}}}
	incubators := &domain.EggIncubators{EggIncubator: []domain.EggIncubator{{ID: "EggIncubatorProto-1"}}}
	candy := &domain.Candy{FamilyID: 25, Candy: 40}

	resp := &domain.InventoryResponse{
		InventoryDelta: &domain.InventoryDelta{
			InventoryItems: []domain.InventoryItem{
				entry(&domain.InventoryItemData{PokemonData: pikachu}),
				entry(&domain.InventoryItemData{Item: pokeball}),
				entry(&domain.InventoryItemData{PokedexEntry: pokedex}),
				entry(&domain.InventoryItemData{PlayerStats: stats}),
				entry(&domain.InventoryItemData{PlayerCurrency: stardust}),
				entry(&domain.InventoryItemData{PlayerCamera: camera}),
				entry(&domain.InventoryItemData{InventoryUpgrades: upgrades}),
				entry(&domain.InventoryItemData{AppliedItems: applied}),
				entry(&domain.InventoryItemData{EggIncubators: incubators}),
				entry(&domain.InventoryItemData{Candy: candy}),
				entry(&domain.InventoryItemData{PokemonData: eevee}),
			},
		},
	}

	result := SplitInventory(resp)

	assert.Equal(t, []*domain.PokemonData{pikachu, eevee}, result.Pokemon, "Pokemon should keep source order")
	assert.Equal(t, []*domain.Item{pokeball}, result.Items)
	assert.Equal(t, []*domain.PokedexEntry{pokedex}, result.Pokedex)
	assert.Same(t, stats, result.Player)
	assert.Equal(t, []*domain.PlayerCurrency{stardust}, result.Currency)
	assert.Same(t, camera, result.Camera)
	assert.Equal(t, []*domain.InventoryUpgrades{upgrades}, result.InventoryUpgrades)
	assert.Equal(t, []*domain.AppliedItems{applied}, result.AppliedItems)
	assert.Equal(t, []*domain.EggIncubators{incubators}, result.EggIncubators)
	assert.Equal(t, []*domain.Candy{candy}, result.Candies)
}

// TestSplitInventory_MultiFieldEntry verifies one entry can feed several slots
func TestSplitInventory_MultiFieldEntry(t *testing.T) {
	pokemon := &domain.PokemonData{ID: "7"}
	candy := &domain.Candy{FamilyID: 7, Candy: 3}
	stats := &domain.PlayerStats{Level: 5}

	resp := &domain.InventoryResponse{
		InventoryDelta: &domain.InventoryDelta{
			InventoryItems: []domain.InventoryItem{
				entry(&domain.InventoryItemData{PokemonData: pokemon, Candy: candy, PlayerStats: stats}),
			},
		},
	}

	result := SplitInventory(resp)

	require.Len(t, result.Pokemon, 1)
	require.Len(t, result.Candies, 1)
	assert.Same(t, pokemon, result.Pokemon[0])
	assert.Same(t, candy, result.Candies[0])
	assert.Same(t, stats, result.Player)
	assert.Empty(t, result.Items)
}

// TestSplitInventory_SingletonsLastWriteWins verifies the last player stats and camera survive
func TestSplitInventory_SingletonsLastWriteWins(t *testing.T) {
	first := &domain.PlayerStats{Level: 1}
	second := &domain.PlayerStats{Level: 2}
	camA := &domain.PlayerCamera{IsDefaultCamera: false}
	camB := &domain.PlayerCamera{IsDefaultCamera: true}

	resp := &domain.InventoryResponse{
		InventoryDelta: &domain.InventoryDelta{
			InventoryItems: []domain.InventoryItem{
				entry(&domain.InventoryItemData{PlayerStats: first, PlayerCamera: camA}),
				entry(&domain.InventoryItemData{PlayerStats: second}),
				entry(&domain.InventoryItemData{PlayerCamera: camB}),
			},
		},
	}

	result := SplitInventory(resp)

	assert.Same(t, second, result.Player)
	assert.Same(t, camB, result.Camera)
}

// TestSplitInventory_SkipsEntriesWithoutData verifies entries with no payload are ignored
func TestSplitInventory_SkipsEntriesWithoutData(t *testing.T) {
	item := &domain.Item{ItemID: 101, Count: 4}
	resp := &domain.InventoryResponse{
		InventoryDelta: &domain.InventoryDelta{
			InventoryItems: []domain.InventoryItem{
				{ModifiedTimestampMs: 1},
				entry(&domain.InventoryItemData{}),
				entry(&domain.InventoryItemData{Item: item}),
			},
		},
	}

	result := SplitInventory(resp)

	assert.Equal(t, []*domain.Item{item}, result.Items)
	assert.Empty(t, result.Pokemon)
}

// TestSplitInventory_Idempotent verifies the input is untouched and repeated calls agree
func TestSplitInventory_Idempotent(t *testing.T) {
	resp := &domain.InventoryResponse{
		InventoryDelta: &domain.InventoryDelta{
			InventoryItems: []domain.InventoryItem{
				entry(&domain.InventoryItemData{PokemonData: &domain.PokemonData{ID: "1"}}),
				entry(&domain.InventoryItemData{Item: &domain.Item{ItemID: 1}}),
			},
		},
	}

	first := SplitInventory(resp)
	second := SplitInventory(resp)

	assert.Equal(t, first, second)
	assert.Len(t, resp.InventoryDelta.InventoryItems, 2, "Input should not be mutated")
}
