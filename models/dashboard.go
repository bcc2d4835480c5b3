package models

type DivisionOccupancy struct {
	Division   Division `json:"division"`
	Registered int      `json:"registered"`
	Limit      int      `json:"limit"`
	Full       bool     `json:"full"`
}

type DashboardStats struct {
	TeamsTotal           int                 `json:"teams_total"`
	PaidTeams            int                 `json:"paid_teams"`
	PendingPaymentTeams  int                 `json:"pending_payment_teams"`
	TotalRevenue         int                 `json:"total_revenue"`
	PlayersTotal         int                 `json:"players_total"`
	PendingVerifications int                 `json:"pending_verifications"`
	MatchesTotal         int                 `json:"matches_total"`
	MatchesFinished      int                 `json:"matches_finished"`
	Divisions            []DivisionOccupancy `json:"divisions"`
}
