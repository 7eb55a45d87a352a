package domain

import "time"

const RoadStatusActive = "active"

// Road is a registered physical road. Code is the human readable identifier, e.g. MG-R-001.
type Road struct {
	ID               int64      `json:"id" db:"id"`
	Code             string     `json:"roadId" db:"road_id"`
	Name             string     `json:"name" db:"name"`
	Description      *string    `json:"description" db:"description"`
	WardID           int64      `json:"wardId" db:"ward_id"`
	WardName         string     `json:"wardName" db:"ward_name"`
	Length           *float64   `json:"length" db:"length"` // km
	Width            *float64   `json:"width" db:"width"`   // m
	StartPoint       *string    `json:"startPoint" db:"start_point"`
	EndPoint         *string    `json:"endPoint" db:"end_point"`
	ConstructionYear *int       `json:"constructionYear" db:"construction_year"`
	LastMaintenance  *time.Time `json:"lastMaintenance" db:"last_maintenance"`
	Status           string     `json:"status" db:"status"`
	Coordinates      *string    `json:"coordinates" db:"coordinates"`
	CreatedAt        time.Time  `json:"createdAt" db:"created_at"`
}
