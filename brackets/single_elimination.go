package brackets

import (
	"context"
	"fmt"
	"math/bits"
)

// KnockoutGenerator строит первый раунд плей-офф по посеву: 1 против N, 2 против N-1.
// Если число команд не степень двойки, лучшие посевы проходят дальше без игры.
// Следующие раунды создаются отдельно, когда известны победители.
type KnockoutGenerator struct {
	// Size ограничивает число команд в сетке (0 - все).
	Size int
}

func NewKnockoutGenerator(size int) PairingGenerator {
	return &KnockoutGenerator{Size: size}
}

func (g *KnockoutGenerator) GetName() string {
	return "Knockout"
}

func (g *KnockoutGenerator) Generate(ctx context.Context, params GenerateParams) ([]Pairing, error) {
	entrants := params.Entrants
	if g.Size > 0 && len(entrants) > g.Size {
		entrants = entrants[:g.Size]
	}
	n := len(entrants)
	if n < 2 {
		return nil, fmt.Errorf("KnockoutGenerator: %w (found %d)", ErrNotEnoughEntrants, n)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bracket := nextPowerOfTwo(n)
	byes := bracket - n
	round := RoundName(bracket)

	// Посевы 1..byes отдыхают; остальные играют 1-й из оставшихся против последнего.
	playing := entrants[byes:]
	pairings := make([]Pairing, 0, len(playing)/2)
	for i := 0; i < len(playing)/2; i++ {
		pairings = append(pairings, Pairing{
			UID:          fmt.Sprintf("%s_KO_%dM%d", params.Division, bracket, i+1),
			Round:        round,
			RoundNumber:  1,
			OrderInRound: i + 1,
			Division:     params.Division,
			A:            playing[i],
			B:            playing[len(playing)-1-i],
		})
	}
	return pairings, nil
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// RoundName - название раунда по размеру сетки.
func RoundName(bracketSize int) string {
	switch bracketSize {
	case 2:
		return "Final"
	case 4:
		return "Semifinal"
	case 8:
		return "Cuartos de final"
	case 16:
		return "Octavos de final"
	default:
		return fmt.Sprintf("Ronda de %d", bracketSize)
	}
}
