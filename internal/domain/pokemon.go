package domain

// PokemonData is a caught pokemon or an egg
type PokemonData struct {
	ID                string  `json:"id"`
	PokemonID         int32   `json:"pokemon_id,omitempty"`
	CP                int     `json:"cp,omitempty"`
	Stamina           int     `json:"stamina,omitempty"`
	StaminaMax        int     `json:"stamina_max,omitempty"`
	Move1             int32   `json:"move_1,omitempty"`
	Move2             int32   `json:"move_2,omitempty"`
	IsEgg             bool    `json:"is_egg,omitempty"`
	EggKmWalkedTarget float64 `json:"egg_km_walked_target,omitempty"`
	IndividualAttack  int     `json:"individual_attack"`
	IndividualDefense int     `json:"individual_defense"`
	IndividualStamina int     `json:"individual_stamina"`
	CPMultiplier      float64 `json:"cp_multiplier,omitempty"`
	Nickname          string  `json:"nickname,omitempty"`
	Favorite          int     `json:"favorite,omitempty"`
	CreationTimeMs    int64   `json:"creation_time_ms,omitempty"`
}

// IVs are the individual values of a pokemon and their share of the maximum
type IVs struct {
	Attack  int     `json:"att"`
	Defense int     `json:"def"`
	Stamina int     `json:"stam"`
	Percent float64 `json:"percent"`
}
