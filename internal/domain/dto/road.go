package dto

import (
	"time"

	"github.com/ougirez/roadtrack/internal/domain"
)

type CreateRoadRequest struct {
	Code             string     `json:"roadId" validate:"required"`
	Name             string     `json:"name" validate:"required"`
	Description      *string    `json:"description"`
	WardID           int64      `json:"wardId" validate:"required,gt=0"`
	WardName         string     `json:"wardName" validate:"required"`
	Length           *float64   `json:"length" validate:"omitempty,gte=0"`
	Width            *float64   `json:"width" validate:"omitempty,gte=0"`
	StartPoint       *string    `json:"startPoint"`
	EndPoint         *string    `json:"endPoint"`
	ConstructionYear *int       `json:"constructionYear" validate:"omitempty,gt=0"`
	LastMaintenance  *time.Time `json:"lastMaintenance"`
	Status           string     `json:"status"`
	Coordinates      *string    `json:"coordinates"`
}

func (r CreateRoadRequest) ToDomain() domain.Road {
	status := r.Status
	if status == "" {
		status = domain.RoadStatusActive
	}
	return domain.Road{
		Code:             r.Code,
		Name:             r.Name,
		Description:      r.Description,
		WardID:           r.WardID,
		WardName:         r.WardName,
		Length:           r.Length,
		Width:            r.Width,
		StartPoint:       r.StartPoint,
		EndPoint:         r.EndPoint,
		ConstructionYear: r.ConstructionYear,
		LastMaintenance:  r.LastMaintenance,
		Status:           status,
		Coordinates:      r.Coordinates,
	}
}

// RoadPatch is a partial update. Nil fields keep their stored value.
type RoadPatch struct {
	Code             *string    `json:"roadId" validate:"omitempty,min=1"`
	Name             *string    `json:"name" validate:"omitempty,min=1"`
	Description      *string    `json:"description"`
	WardID           *int64     `json:"wardId" validate:"omitempty,gt=0"`
	WardName         *string    `json:"wardName" validate:"omitempty,min=1"`
	Length           *float64   `json:"length" validate:"omitempty,gte=0"`
	Width            *float64   `json:"width" validate:"omitempty,gte=0"`
	StartPoint       *string    `json:"startPoint"`
	EndPoint         *string    `json:"endPoint"`
	ConstructionYear *int       `json:"constructionYear" validate:"omitempty,gt=0"`
	LastMaintenance  *time.Time `json:"lastMaintenance"`
	Status           *string    `json:"status" validate:"omitempty,min=1"`
	Coordinates      *string    `json:"coordinates"`
}

// Apply merges the patch into road and reports which fields actually changed.
func (p RoadPatch) Apply(road *domain.Road) Changes {
	var c Changes
	set(&c, "roadId", &road.Code, p.Code)
	set(&c, "name", &road.Name, p.Name)
	setOptional(&c, "description", &road.Description, p.Description)
	set(&c, "wardId", &road.WardID, p.WardID)
	set(&c, "wardName", &road.WardName, p.WardName)
	setOptional(&c, "length", &road.Length, p.Length)
	setOptional(&c, "width", &road.Width, p.Width)
	setOptional(&c, "startPoint", &road.StartPoint, p.StartPoint)
	setOptional(&c, "endPoint", &road.EndPoint, p.EndPoint)
	setOptional(&c, "constructionYear", &road.ConstructionYear, p.ConstructionYear)
	setOptionalTime(&c, "lastMaintenance", &road.LastMaintenance, p.LastMaintenance)
	set(&c, "status", &road.Status, p.Status)
	setOptional(&c, "coordinates", &road.Coordinates, p.Coordinates)
	return c
}
