package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Ошибки валидации и бизнес-правил
	ErrValidationFailed     = errors.New("validation failed")
	ErrInvalidDivision      = errors.New("unknown division")
	ErrDivisionFull         = errors.New("division has reached its team limit")
	ErrInvalidScore         = errors.New("score must be a non-negative integer")
	ErrInvalidMatchStatus   = errors.New("invalid match status")
	ErrInvalidStatField     = errors.New("invalid player stat field")
	ErrInvalidDocumentType  = errors.New("invalid document type")
	ErrDocumentNotSubmitted = errors.New("document has not been submitted")
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrInvalidRosterCSV     = errors.New("invalid roster csv")
	ErrInvalidSchedule      = errors.New("invalid schedule parameters")
	ErrNotEnoughTeams       = errors.New("not enough teams to generate matches")
	ErrNotEnoughSlots       = errors.New("not enough time slots for all matches")
	ErrPlayerNotInMatch     = errors.New("player is not on either roster of this match")

	// Ошибки конфликтов
	ErrTeamNameConflict = errors.New("team name is already in use")

	// Ошибки аутентификации и авторизации
	ErrAuthInvalidCredentials = errors.New("invalid admin password")

	// Ошибки, специфичные для сущностей
	ErrTeamNotFound        = errors.New("team not found")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrMatchNotFound       = errors.New("match not found")
	ErrSponsorNotFound     = errors.New("sponsor not found")
	ErrGalleryItemNotFound = errors.New("gallery item not found")
)
