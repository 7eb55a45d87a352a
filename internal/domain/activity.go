package domain

import "time"

// Activity types emitted as side effects of registry mutations.
const (
	ActivityRoadAdded              = "road_added"
	ActivityRoadUpdated            = "road_updated"
	ActivityRoadDeleted            = "road_deleted"
	ActivityVendorAdded            = "vendor_added"
	ActivityVendorUpdated          = "vendor_updated"
	ActivityVendorDeleted          = "vendor_deleted"
	ActivityProjectAdded           = "project_added"
	ActivityProjectStatusChanged   = "project_status_changed"
	ActivityProjectProgressUpdated = "project_progress_updated"
	ActivityProjectDeleted         = "project_deleted"
)

// Entity types an activity can point at.
const (
	EntityRoad    = "road"
	EntityVendor  = "vendor"
	EntityProject = "project"
)

// Activity is an append-only audit entry. EntityID/EntityType are a weak reference, the entity may be gone.
type Activity struct {
	ID          int64     `json:"id" db:"id"`
	Type        string    `json:"type" db:"type"`
	Description string    `json:"description" db:"description"`
	EntityID    *int64    `json:"entityId" db:"entity_id"`
	EntityType  *string   `json:"entityType" db:"entity_type"`
	UserID      *string   `json:"userId" db:"user_id"`
	UserName    *string   `json:"userName" db:"user_name"`
	Timestamp   time.Time `json:"timestamp" db:"recorded_at"`
}
