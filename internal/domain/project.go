package domain

import "time"

// Project statuses.
const (
	ProjectStatusScheduled  = "scheduled"
	ProjectStatusInProgress = "in_progress"
	ProjectStatusCompleted  = "completed"
	ProjectStatusDelayed    = "delayed"
)

// Project types offered by the UI. Type is free-form, these are only the common values.
const (
	ProjectTypeNewConstruction = "New Construction"
	ProjectTypeRepair          = "Repair"
	ProjectTypeWidening        = "Widening"
	ProjectTypeBridge          = "Bridge"
)

// Project is a funded piece of infrastructure work on one road, carried out by one vendor.
// Budget is in crore.
type Project struct {
	ID          int64     `json:"id" db:"id"`
	Code        string    `json:"projectId" db:"project_id"`
	Name        string    `json:"name" db:"name"`
	RoadID      int64     `json:"roadId" db:"road_id"`
	VendorID    int64     `json:"vendorId" db:"vendor_id"`
	Type        string    `json:"type" db:"type"`
	WardID      int64     `json:"wardId" db:"ward_id"`
	WardName    string    `json:"wardName" db:"ward_name"`
	Budget      float64   `json:"budget" db:"budget"`
	StartDate   time.Time `json:"startDate" db:"start_date"`
	EndDate     time.Time `json:"endDate" db:"end_date"`
	Status      string    `json:"status" db:"status"`
	Progress    int       `json:"progress" db:"progress"`
	Description *string   `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	CreatedBy   *string   `json:"createdBy" db:"created_by"`
}

// IsActive reports whether the project counts towards active work on the dashboard.
func (p Project) IsActive() bool {
	return p.Status == ProjectStatusInProgress || p.Status == ProjectStatusScheduled
}
