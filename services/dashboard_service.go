package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/muskiz/beach-handball/models"
	"github.com/muskiz/beach-handball/repositories"
)

type DashboardService interface {
	GetStats(ctx context.Context) (models.DashboardStats, error)
}

type dashboardService struct {
	teamRepo    repositories.TeamRepository
	matchRepo   repositories.MatchRepository
	contentRepo repositories.ContentRepository
}

func NewDashboardService(
	teamRepo repositories.TeamRepository,
	matchRepo repositories.MatchRepository,
	contentRepo repositories.ContentRepository,
) DashboardService {
	return &dashboardService{
		teamRepo:    teamRepo,
		matchRepo:   matchRepo,
		contentRepo: contentRepo,
	}
}

func (s *dashboardService) GetStats(ctx context.Context) (models.DashboardStats, error) {
	var (
		teams   []models.Team
		matches []models.Match
		limits  models.CategoryLimits
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		teams, err = s.teamRepo.List(gctx, "")
		return err
	})
	g.Go(func() (err error) {
		matches, err = s.matchRepo.List(gctx, repositories.MatchFilter{})
		return err
	})
	g.Go(func() (err error) {
		limits, err = s.contentRepo.GetLimits(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.DashboardStats{}, fmt.Errorf("failed to load dashboard data: %w", err)
	}

	stats := models.DashboardStats{
		TeamsTotal:   len(teams),
		MatchesTotal: len(matches),
	}
	registered := make(map[models.Division]int)
	for _, t := range teams {
		registered[t.Division]++
		// Выручка - только по оплаченным взносам.
		if t.PaymentStatus == models.PaymentPaid {
			stats.PaidTeams++
			stats.TotalRevenue += t.Fee
		} else {
			stats.PendingPaymentTeams++
		}
		stats.PlayersTotal += len(t.Players)
		for _, p := range t.Players {
			if p.HasPendingDocuments() {
				stats.PendingVerifications++
			}
		}
	}
	for _, m := range matches {
		if m.Status == models.MatchFinished {
			stats.MatchesFinished++
		}
	}
	for _, d := range models.Divisions() {
		limit, capped := limits[d]
		stats.Divisions = append(stats.Divisions, models.DivisionOccupancy{
			Division:   d,
			Registered: registered[d],
			Limit:      limit,
			Full:       capped && registered[d] >= limit,
		})
	}
	return stats, nil
}
