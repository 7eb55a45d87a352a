package reports

import (
	"context"
	"fmt"

	"github.com/ougirez/roadtrack/internal/domain"
	"github.com/ougirez/roadtrack/internal/pkg/store"
	"golang.org/x/sync/errgroup"
)

const topVendors = 5

type Service struct {
	store store.Store
}

func NewReportsService(store store.Store) *Service {
	return &Service{store: store}
}

// DashboardStats counts roads, active projects and the vendors behind them, and sums every project budget.
func (s *Service) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var (
		roads    []*domain.Road
		projects []*domain.Project
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		roads, err = s.store.ListRoads(egCtx)
		return err
	})
	eg.Go(func() (err error) {
		projects, err = s.store.ListProjects(egCtx, store.ListProjectsOpts{})
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("load dashboard data: %w", err)
	}

	stats := &domain.DashboardStats{
		TotalRoads:  len(roads),
		TotalBudget: sumBudget(projects).InexactFloat64(),
	}
	activeVendors := make(map[int64]struct{})
	for _, p := range projects {
		if p.IsActive() {
			stats.ActiveProjects++
			activeVendors[p.VendorID] = struct{}{}
		}
	}
	stats.ActiveVendors = len(activeVendors)
	return stats, nil
}

func (s *Service) Report(ctx context.Context, filter Filter) (*domain.Report, error) {
	var (
		projects []*domain.Project
		vendors  []*domain.Vendor
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		projects, err = s.store.ListProjects(egCtx, store.ListProjectsOpts{})
		return err
	})
	eg.Go(func() (err error) {
		vendors, err = s.store.ListVendors(egCtx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("load report data: %w", err)
	}

	filtered := FilterProjects(projects, filter)
	return &domain.Report{
		Summary:            Summarize(filtered),
		StatusDistribution: StatusDistribution(filtered),
		TypeDistribution:   TypeDistribution(filtered),
		BudgetByWard:       BudgetByWard(filtered),
		Quarterly:          Quarterly(filtered),
		VendorPerformance:  VendorPerformance(filtered, vendors, topVendors),
	}, nil
}
