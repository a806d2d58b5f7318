package utils

import (
	"fmt"

	"github.com/osse101/pogoutil/internal/domain"
)

// IVsFromPokemon extracts the individual values of a pokemon and computes their
// share of the maximum (45) as a percentage.
// The result is neither rounded nor clamped: stats outside 0-15 give a
// percentage outside 0-100.
func IVsFromPokemon(p *domain.PokemonData) (domain.IVs, error) {
	if p == nil {
		return domain.IVs{}, fmt.Errorf("%w: cannot read individual values", domain.ErrPokemonNil)
	}

	att := p.IndividualAttack
	def := p.IndividualDefense
	stam := p.IndividualStamina

	return domain.IVs{
		Attack:  att,
		Defense: def,
		Stamina: stam,
		Percent: float64(att+def+stam) / domain.MaxIVSum * 100,
	}, nil
}
