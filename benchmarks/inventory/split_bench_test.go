package inventory_bench

import (
	"strconv"
	"testing"

	"github.com/osse101/pogoutil/internal/domain"
	"github.com/osse101/pogoutil/internal/enum"
	"github.com/osse101/pogoutil/internal/utils"
)

// buildResponse returns a response with n entries cycling through every payload kind
func buildResponse(n int) *domain.InventoryResponse {
	items := make([]domain.InventoryItem, n)
	for i := range items {
		data := &domain.InventoryItemData{}
		switch i % 10 {
		case 0:
			data.PokemonData = &domain.PokemonData{ID: strconv.Itoa(i), IndividualAttack: i % 16}
		case 1:
			data.Item = &domain.Item{ItemID: int32(i), Count: 1}
		case 2:
			data.PokedexEntry = &domain.PokedexEntry{PokemonID: int32(i)}
		case 3:
			data.PlayerStats = &domain.PlayerStats{Level: i}
		case 4:
			data.PlayerCurrency = &domain.PlayerCurrency{Gems: i}
		case 5:
			data.PlayerCamera = &domain.PlayerCamera{}
		case 6:
			data.InventoryUpgrades = &domain.InventoryUpgrades{}
		case 7:
			data.AppliedItems = &domain.AppliedItems{}
		case 8:
			data.EggIncubators = &domain.EggIncubators{}
		case 9:
			data.Candy = &domain.Candy{FamilyID: int32(i)}
		}
		items[i] = domain.InventoryItem{InventoryItemData: data}
	}
	return &domain.InventoryResponse{InventoryDelta: &domain.InventoryDelta{InventoryItems: items}}
}

func BenchmarkSplitInventory(b *testing.B) {
	for _, n := range []int{10, 250, 1000} {
		resp := buildResponse(n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = utils.SplitInventory(resp)
			}
		})
	}
}

func BenchmarkHumanizeEnumName(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = utils.HumanizeEnumName("ITEM_INCUBATOR_BASIC_UNLIMITED")
	}
}

func BenchmarkRegistryLabel(b *testing.B) {
	reg, err := enum.Default(0)
	if err != nil {
		b.Fatal(err)
	}

	b.Run("cached", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = reg.Label(domain.EnumPokemonMove, 235)
		}
	})

	b.Run("uncached", func(b *testing.B) {
		mapping, _ := reg.Mapping(domain.EnumPokemonMove)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = utils.EnumKeyByValue(mapping, 235)
		}
	})
}
