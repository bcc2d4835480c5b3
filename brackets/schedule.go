package brackets

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const clockLayout = "15:04"

var (
	ErrInvalidSlotConfig = errors.New("invalid schedule slot configuration")
	ErrNotEnoughSlots    = errors.New("not enough time slots for all matches")
)

// Обеденный перерыв, когда включён.
var (
	lunchStart = mustClock("13:00")
	lunchEnd   = mustClock("15:00")
)

type SlotConfig struct {
	StartTime    string
	EndTime      string
	IntervalMins int
	Courts       []string
	LunchBreak   bool
}

// ScheduledPairing - пара с назначенным временем и площадкой.
type ScheduledPairing struct {
	Pairing
	Time  string
	Court string
}

// Slots перечисляет времена начала матчей. Матч должен закончиться до EndTime
// и не пересекаться с обедом.
func (c SlotConfig) Slots() ([]string, error) {
	start, err := time.Parse(clockLayout, c.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: start time %q", ErrInvalidSlotConfig, c.StartTime)
	}
	end, err := time.Parse(clockLayout, c.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: end time %q", ErrInvalidSlotConfig, c.EndTime)
	}
	if !end.After(start) {
		return nil, fmt.Errorf("%w: end time must be after start time", ErrInvalidSlotConfig)
	}
	if c.IntervalMins <= 0 {
		return nil, fmt.Errorf("%w: interval must be positive", ErrInvalidSlotConfig)
	}
	if len(c.Courts) == 0 {
		return nil, fmt.Errorf("%w: at least one court is required", ErrInvalidSlotConfig)
	}

	step := time.Duration(c.IntervalMins) * time.Minute
	var out []string
	for t := start; !t.Add(step).After(end); t = t.Add(step) {
		if c.LunchBreak && t.Before(lunchEnd) && t.Add(step).After(lunchStart) {
			continue
		}
		out = append(out, t.Format(clockLayout))
	}
	return out, nil
}

// Assign раскладывает пары по слотам жадно, в исходном порядке: в одном слоте
// команда играет не больше одного матча. Это не оптимизатор.
func Assign(pairings []Pairing, cfg SlotConfig) ([]ScheduledPairing, error) {
	slots, err := cfg.Slots()
	if err != nil {
		return nil, err
	}
	courts := make([]string, 0, len(cfg.Courts))
	for _, c := range cfg.Courts {
		if c = strings.TrimSpace(c); c != "" {
			courts = append(courts, c)
		}
	}
	if len(courts) == 0 {
		return nil, fmt.Errorf("%w: at least one court is required", ErrInvalidSlotConfig)
	}

	pending := append([]Pairing(nil), pairings...)
	out := make([]ScheduledPairing, 0, len(pairings))
	for _, slot := range slots {
		if len(pending) == 0 {
			break
		}
		busy := make(map[string]struct{})
		court := 0
		rest := pending[:0:0]
		for _, p := range pending {
			_, aBusy := busy[entrantKey(p.A)]
			_, bBusy := busy[entrantKey(p.B)]
			if court >= len(courts) || aBusy || bBusy {
				rest = append(rest, p)
				continue
			}
			busy[entrantKey(p.A)] = struct{}{}
			busy[entrantKey(p.B)] = struct{}{}
			out = append(out, ScheduledPairing{Pairing: p, Time: slot, Court: courts[court]})
			court++
		}
		pending = rest
	}

	if len(pending) > 0 {
		return nil, fmt.Errorf("%w: %d of %d matches left unscheduled", ErrNotEnoughSlots, len(pending), len(pairings))
	}
	return out, nil
}

func entrantKey(e Entrant) string {
	if e.TeamID != "" {
		return "id:" + e.TeamID
	}
	return "name:" + e.Name
}

func mustClock(v string) time.Time {
	t, err := time.Parse(clockLayout, v)
	if err != nil {
		panic(err)
	}
	return t
}
