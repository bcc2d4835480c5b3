package models

import "time"

// Division - категория, в которой выступает команда.
type Division string

const (
	DivisionElite    Division = "Elite"
	DivisionAmateur  Division = "Amateur"
	DivisionJuvenile Division = "Juvenil"
)

// Divisions returns every division in display order.
func Divisions() []Division {
	return []Division{DivisionElite, DivisionAmateur, DivisionJuvenile}
}

func (d Division) Valid() bool {
	switch d {
	case DivisionElite, DivisionAmateur, DivisionJuvenile:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "PAID"
	PaymentPending PaymentStatus = "PENDING"
)

type PaymentMethod string

const (
	PaymentMethodCard     PaymentMethod = "CARD"
	PaymentMethodPayPal   PaymentMethod = "PAYPAL"
	PaymentMethodTransfer PaymentMethod = "TRANSFER"
	PaymentMethodCash     PaymentMethod = "CASH"
	PaymentMethodManual   PaymentMethod = "MANUAL"
)

type Team struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	City          string         `json:"city"`
	Division      Division       `json:"division"`
	PaymentStatus PaymentStatus  `json:"payment_status"`
	PaymentMethod *PaymentMethod `json:"payment_method,omitempty"`
	Fee           int            `json:"fee"`
	Players       []Player       `json:"players"`
	CreatedAt     time.Time      `json:"created_at"`

	LogoKey *string `json:"-"`
	LogoURL *string `json:"logo_url,omitempty"`
}

// HasPlayer reports whether playerID belongs to the roster.
func (t *Team) HasPlayer(playerID string) bool {
	if t == nil {
		return false
	}
	for _, p := range t.Players {
		if p.ID == playerID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy; repositories hand these out so callers never share roster slices.
func (t Team) Clone() Team {
	c := t
	if t.Players != nil {
		c.Players = make([]Player, len(t.Players))
		copy(c.Players, t.Players)
	}
	c.PaymentMethod = clonePtr(t.PaymentMethod)
	c.LogoKey = clonePtr(t.LogoKey)
	c.LogoURL = clonePtr(t.LogoURL)
	return c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
