package domain

// Individual value bounds. Not enforced anywhere; used to scale the IV percentage.
const (
	MaxIndividualValue = 15
	MaxIVSum           = 3 * MaxIndividualValue
)

// Enum names of the tables shipped with the registry
const (
	EnumTeamColor            = "TeamColor"
	EnumItemID               = "ItemId"
	EnumItemType             = "ItemType"
	EnumEggIncubatorType     = "EggIncubatorType"
	EnumInventoryUpgradeType = "InventoryUpgradeType"
	EnumPokemonMove          = "PokemonMove"
)
