package models

type DocumentStatus string

const (
	DocumentEmpty    DocumentStatus = "EMPTY"
	DocumentPending  DocumentStatus = "PENDING"
	DocumentApproved DocumentStatus = "APPROVED"
	DocumentRejected DocumentStatus = "REJECTED"
)

// DocumentType - тип документа игрока, который проверяет организатор.
type DocumentType string

const (
	DocumentDNI       DocumentType = "dni"
	DocumentInsurance DocumentType = "insurance"
)

func (d DocumentType) Valid() bool {
	return d == DocumentDNI || d == DocumentInsurance
}

type Player struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Surnames        string         `json:"surnames,omitempty"`
	DNINumber       string         `json:"dni_number,omitempty"`
	BirthDate       string         `json:"birth_date,omitempty"`
	Number          int            `json:"number"`
	Position        string         `json:"position,omitempty"`
	Verified        bool           `json:"verified"`
	AvatarURL       *string        `json:"avatar_url,omitempty"`
	DNIStatus       DocumentStatus `json:"dni_status"`
	InsuranceStatus DocumentStatus `json:"insurance_status"`

	DNIKey       *string `json:"-"`
	InsuranceKey *string `json:"-"`
}

// FullName joins name and surnames for display.
func (p Player) FullName() string {
	if p.Surnames == "" {
		return p.Name
	}
	return p.Name + " " + p.Surnames
}

// HasPendingDocuments is what the admin verification queue counts.
func (p Player) HasPendingDocuments() bool {
	return p.DNIStatus == DocumentPending || p.InsuranceStatus == DocumentPending
}
