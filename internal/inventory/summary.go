package inventory

import (
	"errors"

	"github.com/osse101/pogoutil/internal/domain"
	"github.com/osse101/pogoutil/internal/enum"
	"github.com/osse101/pogoutil/internal/logger"
	"github.com/osse101/pogoutil/internal/utils"
)

// Counts is the number of records in each partition slot
type Counts struct {
	Pokemon           int `json:"pokemon"`
	Eggs              int `json:"eggs"`
	Items             int `json:"items"`
	Pokedex           int `json:"pokedex"`
	Currency          int `json:"currency"`
	InventoryUpgrades int `json:"inventory_upgrades"`
	AppliedItems      int `json:"applied_items"`
	EggIncubators     int `json:"egg_incubators"`
	Candies           int `json:"candies"`
}

// PokemonRow is one caught pokemon with its IVs and resolved move names
type PokemonRow struct {
	ID       string     `json:"id"`
	Nickname string     `json:"nickname,omitempty"`
	CP       int        `json:"cp"`
	Move1    string     `json:"move_1,omitempty"`
	Move2    string     `json:"move_2,omitempty"`
	IVs      domain.IVs `json:"ivs"`
}

// ItemRow is a bag stack with its resolved item name
type ItemRow struct {
	ItemID int32  `json:"item_id"`
	Name   string `json:"name,omitempty"`
	Count  int    `json:"count"`
}

// Summary is a readable digest of a partitioned inventory
type Summary struct {
	Level      int          `json:"level,omitempty"`
	Experience int64        `json:"experience,omitempty"`
	Counts     Counts       `json:"counts"`
	Pokemon    []PokemonRow `json:"pokemon"`
	Items      []ItemRow    `json:"items"`
}

// Summarize digests a partition. Eggs are counted but not listed.
// Labels missing from reg are left empty; reg may be nil.
// Nil pokemon and item entries are skipped and not counted.
func Summarize(p domain.PartitionedInventory, reg *enum.Registry) Summary {
	s := Summary{
		Counts: Counts{
			Pokedex:           len(p.Pokedex),
			Currency:          len(p.Currency),
			InventoryUpgrades: len(p.InventoryUpgrades),
			AppliedItems:      len(p.AppliedItems),
			EggIncubators:     len(p.EggIncubators),
			Candies:           len(p.Candies),
		},
		Pokemon: make([]PokemonRow, 0, len(p.Pokemon)),
		Items:   make([]ItemRow, 0, len(p.Items)),
	}

	if p.Player != nil {
		s.Level = p.Player.Level
		s.Experience = p.Player.Experience
	}

	for _, pokemon := range p.Pokemon {
		if pokemon == nil {
			continue
		}
		if pokemon.IsEgg {
			s.Counts.Eggs++
			continue
		}

		ivs, err := utils.IVsFromPokemon(pokemon)
		if err != nil {
			logger.Warn("Skipping pokemon without individual values", "id", pokemon.ID, "error", err)
			continue
		}
		s.Counts.Pokemon++
		s.Pokemon = append(s.Pokemon, PokemonRow{
			ID:       pokemon.ID,
			Nickname: pokemon.Nickname,
			CP:       pokemon.CP,
			Move1:    label(reg, domain.EnumPokemonMove, pokemon.Move1),
			Move2:    label(reg, domain.EnumPokemonMove, pokemon.Move2),
			IVs:      ivs,
		})
	}

	for _, item := range p.Items {
		if item == nil {
			continue
		}
		s.Counts.Items++
		s.Items = append(s.Items, ItemRow{
			ItemID: item.ItemID,
			Name:   label(reg, domain.EnumItemID, item.ItemID),
			Count:  item.Count,
		})
	}

	return s
}

func label(reg *enum.Registry, enumName string, value int32) string {
	if reg == nil {
		return ""
	}
	l, err := reg.Label(enumName, value)
	if err != nil {
		if !errors.Is(err, domain.ErrEnumNotFound) {
			logger.Warn("Enum label lookup failed", "enum", enumName, "value", value, "error", err)
		}
		return ""
	}
	return l
}
