package repositories

import (
	"errors"
	"strings"
)

var (
	ErrTeamNotFound     = errors.New("team not found")
	ErrTeamNameConflict = errors.New("team name conflict")
	ErrMatchNotFound    = errors.New("match not found")
	ErrDuplicateID      = errors.New("record with this id already exists")
)

// nameKey - ключ уникальности имени команды (без учёта регистра и пробелов по краям).
func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// removeID убирает id из упорядоченного списка ключей.
func removeID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i:i], order[i+1:]...)
		}
	}
	return order
}
