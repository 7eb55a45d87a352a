package reports

import (
	"sort"
	"time"

	"github.com/ougirez/roadtrack/internal/domain"
	"github.com/shopspring/decimal"
)

// Filter narrows the project set a report is computed over. Nil fields match everything.
type Filter struct {
	WardID *int64
	Year   *int
}

// FilterProjects keeps projects in the ward and whose start date falls in the year (UTC).
func FilterProjects(projects []*domain.Project, f Filter) []*domain.Project {
	out := make([]*domain.Project, 0, len(projects))
	for _, p := range projects {
		if f.WardID != nil && p.WardID != *f.WardID {
			continue
		}
		if f.Year != nil && p.StartDate.UTC().Year() != *f.Year {
			continue
		}
		out = append(out, p)
	}
	return out
}

func sumBudget(projects []*domain.Project) decimal.Decimal {
	total := decimal.Zero
	for _, p := range projects {
		total = total.Add(decimal.NewFromFloat(p.Budget))
	}
	return total
}

var statusOrder = []struct {
	status string
	label  string
}{
	{domain.ProjectStatusCompleted, "Completed"},
	{domain.ProjectStatusInProgress, "In Progress"},
	{domain.ProjectStatusScheduled, "Scheduled"},
	{domain.ProjectStatusDelayed, "Delayed"},
}

// StatusDistribution always returns the four known statuses, in display order.
func StatusDistribution(projects []*domain.Project) []domain.NamedCount {
	counts := make(map[string]int, len(statusOrder))
	for _, p := range projects {
		counts[p.Status]++
	}

	out := make([]domain.NamedCount, 0, len(statusOrder))
	for _, s := range statusOrder {
		out = append(out, domain.NamedCount{Name: s.label, Value: counts[s.status]})
	}
	return out
}

// TypeDistribution counts projects per type in first-seen order.
func TypeDistribution(projects []*domain.Project) []domain.NamedCount {
	out := make([]domain.NamedCount, 0)
	index := make(map[string]int)
	for _, p := range projects {
		i, ok := index[p.Type]
		if !ok {
			i = len(out)
			index[p.Type] = i
			out = append(out, domain.NamedCount{Name: p.Type})
		}
		out[i].Value++
	}
	return out
}

// BudgetByWard sums budgets per ward name in first-seen order.
func BudgetByWard(projects []*domain.Project) []domain.WardBudget {
	sums := make([]decimal.Decimal, 0)
	names := make([]string, 0)
	index := make(map[string]int)
	for _, p := range projects {
		i, ok := index[p.WardName]
		if !ok {
			i = len(names)
			index[p.WardName] = i
			names = append(names, p.WardName)
			sums = append(sums, decimal.Zero)
		}
		sums[i] = sums[i].Add(decimal.NewFromFloat(p.Budget))
	}

	out := make([]domain.WardBudget, 0, len(names))
	for i, name := range names {
		out = append(out, domain.WardBudget{Name: name, Budget: sums[i].InexactFloat64()})
	}
	return out
}

func quarterOf(t time.Time) int {
	return (int(t.UTC().Month()) - 1) / 3
}

// Quarterly buckets projects by start-date quarter. Anything not completed counts as ongoing.
func Quarterly(projects []*domain.Project) []domain.QuarterCount {
	out := []domain.QuarterCount{{Name: "Q1"}, {Name: "Q2"}, {Name: "Q3"}, {Name: "Q4"}}
	for _, p := range projects {
		q := &out[quarterOf(p.StartDate)]
		if p.Status == domain.ProjectStatusCompleted {
			q.Completed++
		} else {
			q.Ongoing++
		}
	}
	return out
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// VendorPerformance summarizes vendors that have at least one project, busiest first.
// Ties keep vendor list order. limit <= 0 returns all of them.
func VendorPerformance(projects []*domain.Project, vendors []*domain.Vendor, limit int) []domain.VendorPerformance {
	byVendor := make(map[int64][]*domain.Project)
	for _, p := range projects {
		byVendor[p.VendorID] = append(byVendor[p.VendorID], p)
	}

	out := make([]domain.VendorPerformance, 0)
	for _, v := range vendors {
		vp := byVendor[v.ID]
		if len(vp) == 0 {
			continue
		}

		perf := domain.VendorPerformance{
			VendorID: v.ID,
			Name:     v.Name,
			Projects: len(vp),
			Budget:   sumBudget(vp).InexactFloat64(),
		}
		for _, p := range vp {
			switch p.Status {
			case domain.ProjectStatusCompleted:
				perf.Completed++
			case domain.ProjectStatusDelayed:
				perf.Delayed++
			}
		}
		perf.CompletionRate = percent(perf.Completed, perf.Projects)
		out = append(out, perf)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Projects > out[j].Projects })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func Summarize(projects []*domain.Project) domain.ReportSummary {
	summary := domain.ReportSummary{
		TotalProjects: len(projects),
		TotalBudget:   sumBudget(projects).InexactFloat64(),
	}
	if len(projects) == 0 {
		return summary
	}

	progress, completed := 0, 0
	for _, p := range projects {
		progress += p.Progress
		if p.Status == domain.ProjectStatusCompleted {
			completed++
		}
	}
	summary.AvgProgress = float64(progress) / float64(len(projects))
	summary.CompletionRate = percent(completed, len(projects))
	return summary
}
