package domain

// DashboardStats is the headline block of the dashboard. TotalBudget is in crore.
type DashboardStats struct {
	TotalRoads     int     `json:"totalRoads"`
	ActiveProjects int     `json:"activeProjects"`
	TotalBudget    float64 `json:"totalBudget"`
	ActiveVendors  int     `json:"activeVendors"`
}

type NamedCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type WardBudget struct {
	Name   string  `json:"name"`
	Budget float64 `json:"budget"`
}

type QuarterCount struct {
	Name      string `json:"name"`
	Completed int    `json:"completed"`
	Ongoing   int    `json:"ongoing"`
}

type VendorPerformance struct {
	VendorID       int64   `json:"vendorId"`
	Name           string  `json:"name"`
	Projects       int     `json:"projects"`
	Completed      int     `json:"completed"`
	Delayed        int     `json:"delayed"`
	Budget         float64 `json:"budget"`
	CompletionRate float64 `json:"completionRate"`
}

type ReportSummary struct {
	TotalProjects  int     `json:"totalProjects"`
	TotalBudget    float64 `json:"totalBudget"`
	AvgProgress    float64 `json:"avgProgress"`
	CompletionRate float64 `json:"completionRate"`
}

// Report bundles every breakdown shown on the reports page for one filtered project set.
type Report struct {
	Summary            ReportSummary       `json:"summary"`
	StatusDistribution []NamedCount        `json:"statusDistribution"`
	TypeDistribution   []NamedCount        `json:"typeDistribution"`
	BudgetByWard       []WardBudget        `json:"budgetByWard"`
	Quarterly          []QuarterCount      `json:"quarterly"`
	VendorPerformance  []VendorPerformance `json:"vendorPerformance"`
}
