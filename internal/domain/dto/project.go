package dto

import (
	"time"

	"github.com/ougirez/roadtrack/internal/domain"
)

type CreateProjectRequest struct {
	Code        string    `json:"projectId" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	RoadID      int64     `json:"roadId" validate:"required,gt=0"`
	VendorID    int64     `json:"vendorId" validate:"required,gt=0"`
	Type        string    `json:"type" validate:"required"`
	WardID      int64     `json:"wardId" validate:"required,gt=0"`
	WardName    string    `json:"wardName" validate:"required"`
	Budget      float64   `json:"budget" validate:"gte=0"`
	StartDate   time.Time `json:"startDate" validate:"required"`
	EndDate     time.Time `json:"endDate" validate:"required,gtefield=StartDate"`
	Status      string    `json:"status" validate:"omitempty,oneof=scheduled in_progress completed delayed"`
	Progress    int       `json:"progress" validate:"min=0,max=100"`
	Description *string   `json:"description"`
	CreatedBy   *string   `json:"createdBy"`
}

func (r CreateProjectRequest) ToDomain() domain.Project {
	status := r.Status
	if status == "" {
		status = domain.ProjectStatusScheduled
	}
	return domain.Project{
		Code:        r.Code,
		Name:        r.Name,
		RoadID:      r.RoadID,
		VendorID:    r.VendorID,
		Type:        r.Type,
		WardID:      r.WardID,
		WardName:    r.WardName,
		Budget:      r.Budget,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Status:      status,
		Progress:    r.Progress,
		Description: r.Description,
		CreatedBy:   r.CreatedBy,
	}
}

type ProjectPatch struct {
	Code        *string    `json:"projectId" validate:"omitempty,min=1"`
	Name        *string    `json:"name" validate:"omitempty,min=1"`
	RoadID      *int64     `json:"roadId" validate:"omitempty,gt=0"`
	VendorID    *int64     `json:"vendorId" validate:"omitempty,gt=0"`
	Type        *string    `json:"type" validate:"omitempty,min=1"`
	WardID      *int64     `json:"wardId" validate:"omitempty,gt=0"`
	WardName    *string    `json:"wardName" validate:"omitempty,min=1"`
	Budget      *float64   `json:"budget" validate:"omitempty,gte=0"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Status      *string    `json:"status" validate:"omitempty,oneof=scheduled in_progress completed delayed"`
	Progress    *int       `json:"progress" validate:"omitempty,min=0,max=100"`
	Description *string    `json:"description"`
	CreatedBy   *string    `json:"createdBy"`
}

func (p ProjectPatch) Apply(project *domain.Project) Changes {
	var c Changes
	set(&c, "projectId", &project.Code, p.Code)
	set(&c, "name", &project.Name, p.Name)
	set(&c, "roadId", &project.RoadID, p.RoadID)
	set(&c, "vendorId", &project.VendorID, p.VendorID)
	set(&c, "type", &project.Type, p.Type)
	set(&c, "wardId", &project.WardID, p.WardID)
	set(&c, "wardName", &project.WardName, p.WardName)
	set(&c, "budget", &project.Budget, p.Budget)
	setTime(&c, "startDate", &project.StartDate, p.StartDate)
	setTime(&c, "endDate", &project.EndDate, p.EndDate)
	set(&c, "status", &project.Status, p.Status)
	set(&c, "progress", &project.Progress, p.Progress)
	setOptional(&c, "description", &project.Description, p.Description)
	setOptional(&c, "createdBy", &project.CreatedBy, p.CreatedBy)
	return c
}
