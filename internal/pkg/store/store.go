package store

import (
	"context"

	"github.com/ougirez/roadtrack/internal/domain"
	"github.com/ougirez/roadtrack/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

// Store is the entity store. Lists come back in id ascending order, activities newest first.
// Unknown ids yield constants.ErrDBNotFound.
type Store interface {
	RoadStore
	VendorStore
	ProjectStore
	WardStore
	ActivityStore
}

type RoadStore interface {
	ListRoads(ctx context.Context) ([]*domain.Road, error)
	GetRoad(ctx context.Context, id int64) (*domain.Road, error)
	InsertRoad(ctx context.Context, road *domain.Road) (*domain.Road, error)
	UpdateRoad(ctx context.Context, road *domain.Road) (*domain.Road, error)
	// DeleteRoad fails with constants.ErrReferenced while any project points at the road.
	DeleteRoad(ctx context.Context, id int64) error
}

type VendorStore interface {
	ListVendors(ctx context.Context) ([]*domain.Vendor, error)
	GetVendor(ctx context.Context, id int64) (*domain.Vendor, error)
	InsertVendor(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error)
	UpdateVendor(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error)
	// DeleteVendor fails with constants.ErrReferenced while any project points at the vendor.
	DeleteVendor(ctx context.Context, id int64) error
}

type ListProjectsOpts struct {
	RoadID   *int64
	VendorID *int64
	WardID   *int64
}

type ProjectStore interface {
	ListProjects(ctx context.Context, opts ListProjectsOpts) ([]*domain.Project, error)
	GetProject(ctx context.Context, id int64) (*domain.Project, error)
	InsertProject(ctx context.Context, project *domain.Project) (*domain.Project, error)
	UpdateProject(ctx context.Context, project *domain.Project) (*domain.Project, error)
	DeleteProject(ctx context.Context, id int64) error
}

type WardStore interface {
	ListWards(ctx context.Context) ([]*domain.Ward, error)
	GetWard(ctx context.Context, id int64) (*domain.Ward, error)
	InsertWard(ctx context.Context, ward *domain.Ward) (*domain.Ward, error)
}

type ActivityStore interface {
	InsertActivity(ctx context.Context, activity *domain.Activity) (*domain.Activity, error)
	// ListActivities returns the newest entries first. limit <= 0 returns everything.
	ListActivities(ctx context.Context, limit int) ([]*domain.Activity, error)
}

type store struct {
	pool Pool
}

// NewStore returns the postgres backed Store.
func NewStore(pool Pool) Store {
	return &store{pool}
}
