package brackets

import (
	"context"
	"fmt"
)

type RoundRobinGenerator struct{}

func NewRoundRobinGenerator() PairingGenerator {
	return &RoundRobinGenerator{}
}

func (g *RoundRobinGenerator) GetName() string {
	return "RoundRobin"
}

// Generate строит круговой турнир методом вращения: каждая команда играет с каждой
// один раз (Legs=2 - дважды, со сменой сторон), в каждом туре команда играет не более
// одного матча. При нечётном числе команд одна команда в туре отдыхает.
func (g *RoundRobinGenerator) Generate(ctx context.Context, params GenerateParams) ([]Pairing, error) {
	n := len(params.Entrants)
	if n < 2 {
		return nil, fmt.Errorf("RoundRobinGenerator: %w (found %d)", ErrNotEnoughEntrants, n)
	}
	legs := params.Legs
	if legs != 2 {
		legs = 1
	}

	// -1 = отдых.
	slots := make([]int, 0, n+1)
	for i := 0; i < n; i++ {
		slots = append(slots, i)
	}
	if n%2 == 1 {
		slots = append(slots, -1)
	}
	size := len(slots)
	roundsPerLeg := size - 1

	pairings := make([]Pairing, 0, legs*n*(n-1)/2)
	for leg := 1; leg <= legs; leg++ {
		rot := append([]int(nil), slots...)
		for r := 0; r < roundsPerLeg; r++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			roundNumber := (leg-1)*roundsPerLeg + r + 1
			order := 0
			for i := 0; i < size/2; i++ {
				home, away := rot[i], rot[size-1-i]
				if home < 0 || away < 0 {
					continue
				}
				// Чередуем стороны, чтобы первый посев не был всегда "A".
				if r%2 == 1 && i == 0 {
					home, away = away, home
				}
				if leg == 2 {
					home, away = away, home
				}
				order++
				pairings = append(pairings, Pairing{
					UID:          fmt.Sprintf("%s_RR_L%d_R%dM%d", params.Division, leg, roundNumber, order),
					Round:        fmt.Sprintf("Jornada %d", roundNumber),
					RoundNumber:  roundNumber,
					OrderInRound: order,
					Division:     params.Division,
					A:            params.Entrants[home],
					B:            params.Entrants[away],
				})
			}
			// Первый элемент фиксирован, остальные сдвигаются по кругу.
			last := rot[size-1]
			copy(rot[2:], rot[1:size-1])
			rot[1] = last
		}
	}

	return pairings, nil
}
