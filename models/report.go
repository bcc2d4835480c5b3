package models

// ReportType - вид акта матча: цифровой протокол или фото бумажного.
type ReportType string

const (
	ReportDigital ReportType = "DIGITAL"
	ReportImage   ReportType = "IMAGE"
)

type PlayerStat struct {
	PlayerID    string `json:"player_id"`
	Goals       int    `json:"goals"`
	YellowCards int    `json:"yellow_cards"`
	RedCards    int    `json:"red_cards"`
}

type MatchReport struct {
	Type         ReportType   `json:"type"`
	ImageURL     *string      `json:"image_url,omitempty"`
	PlayerStats  []PlayerStat `json:"player_stats,omitempty"`
	Observations string       `json:"observations,omitempty"`

	ImageKey *string `json:"-"`
}

func (r MatchReport) Clone() MatchReport {
	c := r
	if r.PlayerStats != nil {
		c.PlayerStats = make([]PlayerStat, len(r.PlayerStats))
		copy(c.PlayerStats, r.PlayerStats)
	}
	c.ImageURL = clonePtr(r.ImageURL)
	c.ImageKey = clonePtr(r.ImageKey)
	return c
}
