package domain

// PlayerStats is the singleton progress record of the player
type PlayerStats struct {
	Level                int     `json:"level"`
	Experience           int64   `json:"experience,omitempty"`
	PrevLevelXP          int64   `json:"prev_level_xp,omitempty"`
	NextLevelXP          int64   `json:"next_level_xp,omitempty"`
	KmWalked             float64 `json:"km_walked,omitempty"`
	PokemonsEncountered  int     `json:"pokemons_encountered,omitempty"`
	UniquePokedexEntries int     `json:"unique_pokedex_entries,omitempty"`
	PokemonsCaptured     int     `json:"pokemons_captured,omitempty"`
	Evolutions           int     `json:"evolutions,omitempty"`
	PokeStopVisits       int     `json:"poke_stop_visits,omitempty"`
	PokeballsThrown      int     `json:"pokeballs_thrown,omitempty"`
	EggsHatched          int     `json:"eggs_hatched,omitempty"`
}
