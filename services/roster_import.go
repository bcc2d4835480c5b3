package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/muskiz/beach-handball/models"
)

// Заголовок шаблона состава, который скачивают команды.
var rosterHeader = []string{"Nombre", "Apellidos", "DNI", "FechaNacimiento", "Numero", "Posicion"}

const rosterTemplateExample = "Juan,Perez Garcia,12345678Z,1995-05-20,10,Portero"

const defaultPosition = "Universal"

type RosterImportResult struct {
	Added   []models.Player   `json:"added"`
	Skipped []RosterSkipEntry `json:"skipped"`
}

type RosterSkipEntry struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

func (s *teamService) RosterTemplate() []byte {
	return []byte(strings.Join(rosterHeader, ",") + "\n" + rosterTemplateExample + "\n")
}

// parseRoster читает CSV состава. Первая строка - заголовок. Пустые строки
// пропускаются, строки без имени или номера попадают в skipped, нечисловой номер
// превращается в 0, некорректная дата рождения отбрасывается.
func parseRoster(r io.Reader) ([]PlayerInput, []RosterSkipEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("%w: file is empty", ErrInvalidRosterCSV)
		}
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidRosterCSV, err)
	}

	var (
		players []PlayerInput
		skipped []RosterSkipEntry
	)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrInvalidRosterCSV, err)
		}
		line, _ := reader.FieldPos(0)
		if isBlankRecord(record) {
			continue
		}

		col := func(i int) string {
			if i < len(record) {
				return strings.TrimSpace(record[i])
			}
			return ""
		}
		if col(0) == "" || col(4) == "" {
			skipped = append(skipped, RosterSkipEntry{Line: line, Reason: "name and number are required"})
			continue
		}
		input := PlayerInput{
			Name:      col(0),
			Surnames:  col(1),
			DNINumber: col(2),
			BirthDate: col(3),
			Position:  col(5),
		}
		if n, err := strconv.Atoi(col(4)); err == nil && n >= 0 && n <= 99 {
			input.Number = n
		}
		if input.Position == "" {
			input.Position = defaultPosition
		}
		if _, err := time.Parse("2006-01-02", input.BirthDate); err != nil {
			input.BirthDate = ""
		}
		if err := validateInput(input); err != nil {
			skipped = append(skipped, RosterSkipEntry{Line: line, Reason: err.Error()})
			continue
		}
		players = append(players, input)
	}
	return players, skipped, nil
}

func isBlankRecord(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func (s *teamService) ImportRoster(ctx context.Context, teamID string, r io.Reader) (*RosterImportResult, error) {
	inputs, skipped, err := parseRoster(r)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, mapTeamRepoError(err, teamID)
	}
	result := &RosterImportResult{Added: make([]models.Player, 0, len(inputs)), Skipped: skipped}
	for _, in := range inputs {
		p := newPlayer(in)
		team.Players = append(team.Players, p)
		result.Added = append(result.Added, p)
	}
	if result.Skipped == nil {
		result.Skipped = []RosterSkipEntry{}
	}
	if len(result.Added) == 0 {
		return result, nil
	}
	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, mapTeamRepoError(err, teamID)
	}
	return result, nil
}
