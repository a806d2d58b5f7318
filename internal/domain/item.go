package domain

// Item is a stack of a consumable item in the bag
type Item struct {
	ItemID int32 `json:"item_id"`
	Count  int   `json:"count,omitempty"`
	Unseen bool  `json:"unseen,omitempty"`
}

// PokedexEntry tracks encounters and captures of one species
type PokedexEntry struct {
	PokemonID        int32 `json:"pokemon_id"`
	TimesEncountered int   `json:"times_encountered,omitempty"`
	TimesCaptured    int   `json:"times_captured,omitempty"`
}

// PlayerCurrency is a non-coin currency balance (e.g. stardust)
type PlayerCurrency struct {
	Gems int `json:"gems,omitempty"`
}

// PlayerCamera holds the player's camera preference
type PlayerCamera struct {
	IsDefaultCamera bool `json:"is_default_camera,omitempty"`
}

// InventoryUpgrade is a single purchased bag or storage upgrade
type InventoryUpgrade struct {
	ItemID            int32 `json:"item_id"`
	UpgradeType       int32 `json:"upgrade_type,omitempty"`
	AdditionalStorage int   `json:"additional_storage,omitempty"`
}

// InventoryUpgrades wraps the list of upgrades
type InventoryUpgrades struct {
	InventoryUpgrades []InventoryUpgrade `json:"inventory_upgrades"`
}

// AppliedItem is a timed item currently active (incense, lucky egg)
type AppliedItem struct {
	ItemID    int32 `json:"item_id"`
	ItemType  int32 `json:"item_type,omitempty"`
	ExpireMs  int64 `json:"expire_ms,omitempty"`
	AppliedMs int64 `json:"applied_ms,omitempty"`
}

// AppliedItems wraps the list of applied items
type AppliedItems struct {
	Item []AppliedItem `json:"item"`
}

// EggIncubator is an incubator and the egg it holds, if any
type EggIncubator struct {
	ID             string  `json:"id"`
	ItemID         int32   `json:"item_id,omitempty"`
	IncubatorType  int32   `json:"incubator_type,omitempty"`
	UsesRemaining  int     `json:"uses_remaining,omitempty"`
	PokemonID      string  `json:"pokemon_id,omitempty"`
	StartKmWalked  float64 `json:"start_km_walked,omitempty"`
	TargetKmWalked float64 `json:"target_km_walked,omitempty"`
}

// EggIncubators wraps the list of incubators
type EggIncubators struct {
	EggIncubator []EggIncubator `json:"egg_incubator"`
}

// Candy is the candy balance of one pokemon family
type Candy struct {
	FamilyID int32 `json:"family_id"`
	Candy    int   `json:"candy,omitempty"`
}
