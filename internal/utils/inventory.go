package utils

import "github.com/osse101/pogoutil/internal/domain"

// SplitInventory separates a getInventory response into pokemon, items, pokedex
// entries, player data, currencies, upgrades, applied items, incubators and candies.
//
// A nil response, delta or item list yields the zero PartitionedInventory.
// Otherwise every slice is non-nil and keeps the order of the source entries.
// An entry carrying several payloads is counted in each matching slot.
// Player and Camera keep the last entry seen.
func SplitInventory(resp *domain.InventoryResponse) domain.PartitionedInventory {
	if resp == nil || resp.InventoryDelta == nil || resp.InventoryDelta.InventoryItems == nil {
		return domain.PartitionedInventory{}
	}

	out := domain.PartitionedInventory{
		Pokemon:           []*domain.PokemonData{},
		Items:             []*domain.Item{},
		Pokedex:           []*domain.PokedexEntry{},
		Currency:          []*domain.PlayerCurrency{},
		InventoryUpgrades: []*domain.InventoryUpgrades{},
		AppliedItems:      []*domain.AppliedItems{},
		EggIncubators:     []*domain.EggIncubators{},
		Candies:           []*domain.Candy{},
	}

	for _, entry := range resp.InventoryDelta.InventoryItems {
		data := entry.InventoryItemData
		if data == nil {
			continue
		}
		if data.PokemonData != nil {
			out.Pokemon = append(out.Pokemon, data.PokemonData)
		}
		if data.Item != nil {
			out.Items = append(out.Items, data.Item)
		}
		if data.PokedexEntry != nil {
			out.Pokedex = append(out.Pokedex, data.PokedexEntry)
		}
		if data.PlayerStats != nil {
			out.Player = data.PlayerStats
		}
		if data.PlayerCurrency != nil {
			out.Currency = append(out.Currency, data.PlayerCurrency)
		}
		if data.PlayerCamera != nil {
			out.Camera = data.PlayerCamera
		}
		if data.InventoryUpgrades != nil {
			out.InventoryUpgrades = append(out.InventoryUpgrades, data.InventoryUpgrades)
		}
		if data.AppliedItems != nil {
			out.AppliedItems = append(out.AppliedItems, data.AppliedItems)
		}
		if data.EggIncubators != nil {
			out.EggIncubators = append(out.EggIncubators, data.EggIncubators)
		}
		if data.Candy != nil {
			out.Candies = append(out.Candies, data.Candy)
		}
	}

	return out
}
