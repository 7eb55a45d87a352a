package reports

import (
	"context"
	"testing"
	"time"

	"github.com/ougirez/roadtrack/internal/domain"
	"github.com/ougirez/roadtrack/internal/pkg/store/memory"
	"github.com/ougirez/roadtrack/internal/service/activity"
	"github.com/ougirez/roadtrack/internal/service/registry"
	"github.com/ougirez/roadtrack/internal/service/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededService(t *testing.T) *Service {
	t.Helper()
	st := memory.New()
	act := activity.NewActivityService(st, nil)
	reg := registry.NewRegistryService(st, act, domain.Actor{ID: "admin", Name: "Admin Khan"})
	require.NoError(t, seed.Run(context.Background(), reg, act))
	return NewReportsService(st)
}

func ptr[T any](v T) *T {
	return &v
}

func TestService_DashboardStatsSeeded(t *testing.T) {
	stats, err := seededService(t).DashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, stats.TotalRoads)
	assert.Equal(t, 3, stats.ActiveProjects)
	assert.Equal(t, 16.2, stats.TotalBudget)
	// Highway Developers and Urban Infrastructure are in progress, Roadways Solutions is scheduled.
	assert.Equal(t, 3, stats.ActiveVendors)
}

func TestService_DashboardStatsEmpty(t *testing.T) {
	stats, err := NewReportsService(memory.New()).DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DashboardStats{}, *stats)
}

func TestService_Report(t *testing.T) {
	svc := seededService(t)

	report, err := svc.Report(context.Background(), Filter{Year: ptr(2023)})
	require.NoError(t, err)

	assert.Equal(t, 5, report.Summary.TotalProjects)
	assert.Equal(t, 16.2, report.Summary.TotalBudget)
	assert.Equal(t, 48.0, report.Summary.AvgProgress)
	assert.Equal(t, 20.0, report.Summary.CompletionRate)

	assert.Equal(t, []domain.NamedCount{
		{Name: "Completed", Value: 1},
		{Name: "In Progress", Value: 2},
		{Name: "Scheduled", Value: 1},
		{Name: "Delayed", Value: 1},
	}, report.StatusDistribution)

	assert.Equal(t, []domain.NamedCount{
		{Name: "New Construction", Value: 2},
		{Name: "Widening", Value: 1},
		{Name: "Repair", Value: 1},
		{Name: "Bridge", Value: 1},
	}, report.TypeDistribution)

	assert.Equal(t, []domain.QuarterCount{
		{Name: "Q1", Completed: 1, Ongoing: 2},
		{Name: "Q2", Completed: 0, Ongoing: 2},
		{Name: "Q3"},
		{Name: "Q4"},
	}, report.Quarterly)

	require.Len(t, report.BudgetByWard, 5)
	assert.Equal(t, domain.WardBudget{Name: "Ward 2 - Central", Budget: 2.4}, report.BudgetByWard[0])

	require.Len(t, report.VendorPerformance, 5)
	assert.Equal(t, "Bharat Construction Ltd.", report.VendorPerformance[0].Name)
	assert.Equal(t, 100.0, report.VendorPerformance[0].CompletionRate)
	assert.Equal(t, 1, report.VendorPerformance[3].Delayed)
}

func TestService_ReportFiltered(t *testing.T) {
	svc := seededService(t)

	empty, err := svc.Report(context.Background(), Filter{Year: ptr(2024)})
	require.NoError(t, err)
	assert.Zero(t, empty.Summary.TotalProjects)
	assert.Len(t, empty.StatusDistribution, 4)
	assert.Empty(t, empty.VendorPerformance)
	assert.Empty(t, empty.BudgetByWard)

	ward, err := svc.Report(context.Background(), Filter{WardID: ptr(int64(5))})
	require.NoError(t, err)
	assert.Equal(t, 1, ward.Summary.TotalProjects)
	assert.Equal(t, 5.6, ward.Summary.TotalBudget)
}

func project(id, vendorID int64, status string, budget float64, start time.Time) *domain.Project {
	return &domain.Project{ID: id, VendorID: vendorID, Status: status, Budget: budget, StartDate: start, Type: "Repair", WardName: "W"}
}

func TestVendorPerformance(t *testing.T) {
	jan := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	vendors := []*domain.Vendor{
		{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}, {ID: 4, Name: "D"},
		{ID: 5, Name: "E"}, {ID: 6, Name: "F"}, {ID: 7, Name: "Idle"},
	}
	projects := []*domain.Project{
		project(1, 2, domain.ProjectStatusCompleted, 1.1, jan),
		project(2, 2, domain.ProjectStatusDelayed, 2.2, jan),
		project(3, 1, domain.ProjectStatusCompleted, 1, jan),
		project(4, 3, domain.ProjectStatusScheduled, 1, jan),
		project(5, 4, domain.ProjectStatusScheduled, 1, jan),
		project(6, 5, domain.ProjectStatusScheduled, 1, jan),
		project(7, 6, domain.ProjectStatusScheduled, 1, jan),
	}

	perf := VendorPerformance(projects, vendors, 5)
	require.Len(t, perf, 5)
	assert.Equal(t, "B", perf[0].Name)
	assert.Equal(t, 2, perf[0].Projects)
	assert.Equal(t, 50.0, perf[0].CompletionRate)
	assert.InDelta(t, 3.3, perf[0].Budget, 1e-9)
	assert.Equal(t, 1, perf[0].Delayed)
	// Ties keep vendor list order, F falls off the top 5.
	assert.Equal(t, []string{"B", "A", "C", "D", "E"}, []string{perf[0].Name, perf[1].Name, perf[2].Name, perf[3].Name, perf[4].Name})

	all := VendorPerformance(projects, vendors, 0)
	assert.Len(t, all, 6)
}

func TestQuarterly(t *testing.T) {
	projects := []*domain.Project{
		project(1, 1, domain.ProjectStatusCompleted, 1, time.Date(2023, time.March, 31, 0, 0, 0, 0, time.UTC)),
		project(2, 1, domain.ProjectStatusDelayed, 1, time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC)),
		project(3, 1, domain.ProjectStatusCompleted, 1, time.Date(2023, time.September, 30, 0, 0, 0, 0, time.UTC)),
		project(4, 1, domain.ProjectStatusScheduled, 1, time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)),
	}

	assert.Equal(t, []domain.QuarterCount{
		{Name: "Q1", Completed: 1},
		{Name: "Q2", Ongoing: 1},
		{Name: "Q3", Completed: 1},
		{Name: "Q4", Ongoing: 1},
	}, Quarterly(projects))
}

func TestFilterProjects(t *testing.T) {
	p1 := &domain.Project{ID: 1, WardID: 1, StartDate: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)}
	p2 := &domain.Project{ID: 2, WardID: 2, StartDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)}
	all := []*domain.Project{p1, p2}

	assert.Len(t, FilterProjects(all, Filter{}), 2)
	assert.Equal(t, []*domain.Project{p2}, FilterProjects(all, Filter{Year: ptr(2024)}))
	assert.Equal(t, []*domain.Project{p1}, FilterProjects(all, Filter{WardID: ptr(int64(1))}))
	assert.Empty(t, FilterProjects(all, Filter{WardID: ptr(int64(1)), Year: ptr(2024)}))
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, domain.ReportSummary{}, Summarize(nil))
}
