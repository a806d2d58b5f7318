package domain

// InventoryResponse is the envelope returned by the getInventory call
type InventoryResponse struct {
	Success        bool            `json:"success,omitempty"`
	InventoryDelta *InventoryDelta `json:"inventory_delta,omitempty"`
}

// InventoryDelta is a snapshot or diff of the player's inventory
type InventoryDelta struct {
	OriginalTimestampMs int64           `json:"original_timestamp_ms,omitempty"`
	NewTimestampMs      int64           `json:"new_timestamp_ms,omitempty"`
	InventoryItems      []InventoryItem `json:"inventory_items"`
}

// InventoryItem is a single entry of an inventory delta
type InventoryItem struct {
	ModifiedTimestampMs int64              `json:"modified_timestamp_ms,omitempty"`
	InventoryItemData   *InventoryItemData `json:"inventory_item_data,omitempty"`
}

// InventoryItemData carries the payload of an entry.
// A nil field is absent. Several fields may be set on the same entry.
type InventoryItemData struct {
	PokemonData       *PokemonData       `json:"pokemon_data,omitempty"`
	Item              *Item              `json:"item,omitempty"`
	PokedexEntry      *PokedexEntry      `json:"pokedex_entry,omitempty"`
	PlayerStats       *PlayerStats       `json:"player_stats,omitempty"`
	PlayerCurrency    *PlayerCurrency    `json:"player_currency,omitempty"`
	PlayerCamera      *PlayerCamera      `json:"player_camera,omitempty"`
	InventoryUpgrades *InventoryUpgrades `json:"inventory_upgrades,omitempty"`
	AppliedItems      *AppliedItems      `json:"applied_items,omitempty"`
	EggIncubators     *EggIncubators     `json:"egg_incubators,omitempty"`
	Candy             *Candy             `json:"candy,omitempty"`
}

// PartitionedInventory groups the entries of an inventory delta by payload kind.
// Player and Camera hold the last matching entry.
type PartitionedInventory struct {
	Pokemon           []*PokemonData       `json:"pokemon"`
	Items             []*Item              `json:"items"`
	Pokedex           []*PokedexEntry      `json:"pokedex"`
	Player            *PlayerStats         `json:"player"`
	Currency          []*PlayerCurrency    `json:"currency"`
	Camera            *PlayerCamera        `json:"camera"`
	InventoryUpgrades []*InventoryUpgrades `json:"inventory_upgrades"`
	AppliedItems      []*AppliedItems      `json:"applied_items"`
	EggIncubators     []*EggIncubators     `json:"egg_incubators"`
	Candies           []*Candy             `json:"candies"`
}

// IsEmpty reports whether no slot holds anything
func (p PartitionedInventory) IsEmpty() bool {
	return len(p.Pokemon) == 0 &&
		len(p.Items) == 0 &&
		len(p.Pokedex) == 0 &&
		p.Player == nil &&
		len(p.Currency) == 0 &&
		p.Camera == nil &&
		len(p.InventoryUpgrades) == 0 &&
		len(p.AppliedItems) == 0 &&
		len(p.EggIncubators) == 0 &&
		len(p.Candies) == 0
}
