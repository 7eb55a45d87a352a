package registry

import (
	"context"
	"testing"
	"time"

	"github.com/ougirez/roadtrack/internal/domain"
	"github.com/ougirez/roadtrack/internal/domain/dto"
	"github.com/ougirez/roadtrack/internal/pkg/constants"
	"github.com/ougirez/roadtrack/internal/pkg/store"
	"github.com/ougirez/roadtrack/internal/pkg/store/memory"
	"github.com/ougirez/roadtrack/internal/service/activity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultActor = domain.Actor{ID: "admin", Name: "Admin Khan"}

type fixture struct {
	svc      *Service
	activity *activity.Service
	store    *memory.Store
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	now := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		now = now.Add(time.Second)
		return now
	}

	st := memory.New()
	act := activity.NewActivityService(st, nil, activity.WithClock(clock))
	return fixture{
		svc:      NewRegistryService(st, act, defaultActor, WithClock(clock)),
		activity: act,
		store:    st,
	}
}

func ptr[T any](v T) *T {
	return &v
}

func (f fixture) activities(t *testing.T) []*domain.Activity {
	t.Helper()
	all, err := f.activity.List(context.Background(), 0)
	require.NoError(t, err)
	return all
}

func (f fixture) createRoadAndVendor(t *testing.T) (*domain.Road, *domain.Vendor) {
	t.Helper()
	ctx := context.Background()
	road, err := f.svc.CreateRoad(ctx, dto.CreateRoadRequest{Code: "MG-R-001", Name: "Mahatma Gandhi Road", WardID: 1, WardName: "Ward 1 - Central"})
	require.NoError(t, err)
	vendor, err := f.svc.CreateVendor(ctx, dto.CreateVendorRequest{Name: "ABC Construction Ltd."})
	require.NoError(t, err)
	return road, vendor
}

func (f fixture) createProject(t *testing.T, road *domain.Road, vendor *domain.Vendor) *domain.Project {
	t.Helper()
	start := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	project, err := f.svc.CreateProject(context.Background(), dto.CreateProjectRequest{
		Code:      "PRJ-2024-001",
		Name:      "MG Road Resurfacing",
		RoadID:    road.ID,
		VendorID:  vendor.ID,
		Type:      domain.ProjectTypeRepair,
		WardID:    1,
		WardName:  "Ward 1 - Central",
		Budget:    2.4,
		StartDate: start,
		EndDate:   start.AddDate(0, 3, 0),
		Status:    domain.ProjectStatusInProgress,
		Progress:  65,
	})
	require.NoError(t, err)
	return project
}

func TestService_CreateRoad(t *testing.T) {
	f := newFixture(t)
	road, _ := f.createRoadAndVendor(t)

	assert.Equal(t, int64(1), road.ID)
	assert.Equal(t, domain.RoadStatusActive, road.Status)
	assert.False(t, road.CreatedAt.IsZero())

	acts := f.activities(t)
	require.Len(t, acts, 2)
	added := acts[1]
	assert.Equal(t, domain.ActivityRoadAdded, added.Type)
	assert.Equal(t, "Road MG-R-001 (Mahatma Gandhi Road) added to registry", added.Description)
	assert.Equal(t, road.ID, *added.EntityID)
	assert.Equal(t, domain.EntityRoad, *added.EntityType)
	assert.Equal(t, "admin", *added.UserID)
	assert.Equal(t, "Admin Khan", *added.UserName)

	assert.Equal(t, "New vendor ABC Construction Ltd. onboarded", acts[0].Description)
}

func TestService_ActorFromContext(t *testing.T) {
	f := newFixture(t)
	ctx := domain.WithActor(context.Background(), domain.Actor{ID: "u42"})

	_, err := f.svc.CreateVendor(ctx, dto.CreateVendorRequest{Name: "XYZ Builders"})
	require.NoError(t, err)

	acts := f.activities(t)
	require.Len(t, acts, 1)
	assert.Equal(t, "u42", *acts[0].UserID)
	assert.Equal(t, "u42", *acts[0].UserName)
}

func TestService_UpdateRoadIsUnconditional(t *testing.T) {
	f := newFixture(t)
	road, _ := f.createRoadAndVendor(t)
	ctx := context.Background()

	updated, err := f.svc.UpdateRoad(ctx, road.ID, dto.RoadPatch{Name: ptr("MG Road")})
	require.NoError(t, err)
	assert.Equal(t, "MG Road", updated.Name)
	assert.Equal(t, "MG-R-001", updated.Code)

	_, err = f.svc.UpdateRoad(ctx, road.ID, dto.RoadPatch{})
	require.NoError(t, err)

	acts := f.activities(t)
	require.Len(t, acts, 4)
	assert.Equal(t, domain.ActivityRoadUpdated, acts[0].Type)
	assert.Equal(t, "Road MG-R-001 (MG Road) updated", acts[0].Description)
	assert.Equal(t, "Road MG-R-001 (Mahatma Gandhi Road) updated", acts[1].Description, "text uses the record before the update")

	_, err = f.svc.UpdateRoad(ctx, 99, dto.RoadPatch{})
	assert.ErrorIs(t, err, constants.ErrDBNotFound)
	assert.Len(t, f.activities(t), 4)
}

func TestService_UpdateVendor(t *testing.T) {
	f := newFixture(t)
	_, vendor := f.createRoadAndVendor(t)

	updated, err := f.svc.UpdateVendor(context.Background(), vendor.ID, dto.VendorPatch{Performance: ptr(domain.PerformancePoor)})
	require.NoError(t, err)
	assert.Equal(t, domain.PerformancePoor, updated.Performance)

	acts := f.activities(t)
	assert.Equal(t, "Vendor ABC Construction Ltd. updated", acts[0].Description)
}

func TestService_DeleteGuard(t *testing.T) {
	f := newFixture(t)
	road, vendor := f.createRoadAndVendor(t)
	project := f.createProject(t, road, vendor)
	ctx := context.Background()
	before := len(f.activities(t))

	assert.ErrorIs(t, f.svc.DeleteRoad(ctx, road.ID), constants.ErrReferenced)
	assert.ErrorIs(t, f.svc.DeleteVendor(ctx, vendor.ID), constants.ErrReferenced)
	assert.Len(t, f.activities(t), before, "refused deletes write no activity")

	require.NoError(t, f.svc.DeleteProject(ctx, project.ID))
	require.NoError(t, f.svc.DeleteRoad(ctx, road.ID))
	require.NoError(t, f.svc.DeleteVendor(ctx, vendor.ID))

	acts := f.activities(t)
	require.Len(t, acts, before+3)
	assert.Equal(t, "Vendor ABC Construction Ltd. removed", acts[0].Description)
	assert.Equal(t, "Road MG-R-001 (Mahatma Gandhi Road) deleted from registry", acts[1].Description)
	assert.Equal(t, "Project PRJ-2024-001 (MG Road Resurfacing) deleted", acts[2].Description)

	assert.ErrorIs(t, f.svc.DeleteRoad(ctx, road.ID), constants.ErrDBNotFound)
}

func TestService_CreateProject(t *testing.T) {
	f := newFixture(t)
	road, vendor := f.createRoadAndVendor(t)
	project := f.createProject(t, road, vendor)

	assert.Equal(t, int64(1), project.ID)
	acts := f.activities(t)
	assert.Equal(t, domain.ActivityProjectAdded, acts[0].Type)
	assert.Equal(t, "New project PRJ-2024-001 (MG Road Resurfacing) added for Mahatma Gandhi Road", acts[0].Description)
	assert.Equal(t, "admin", *acts[0].UserID)
}

func TestService_CreateProjectCreatedBy(t *testing.T) {
	f := newFixture(t)
	road, vendor := f.createRoadAndVendor(t)
	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	_, err := f.svc.CreateProject(context.Background(), dto.CreateProjectRequest{
		Code: "PRJ-X", Name: "X", RoadID: road.ID, VendorID: vendor.ID, Type: "Repair",
		WardID: 1, WardName: "Ward 1", StartDate: start, EndDate: start, CreatedBy: ptr("engineer.rao"),
	})
	require.NoError(t, err)

	acts := f.activities(t)
	assert.Equal(t, "engineer.rao", *acts[0].UserID)
	assert.Equal(t, "engineer.rao", *acts[0].UserName)
}

func TestService_CreateProjectInvalidReference(t *testing.T) {
	f := newFixture(t)
	road, vendor := f.createRoadAndVendor(t)
	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	before := len(f.activities(t))

	req := dto.CreateProjectRequest{Code: "PRJ-X", Name: "X", RoadID: 99, VendorID: vendor.ID, Type: "Repair", WardID: 1, WardName: "Ward 1", StartDate: start, EndDate: start}
	_, err := f.svc.CreateProject(context.Background(), req)
	assert.ErrorIs(t, err, constants.ErrInvalidReference)

	req.RoadID, req.VendorID = road.ID, 99
	_, err = f.svc.CreateProject(context.Background(), req)
	assert.ErrorIs(t, err, constants.ErrInvalidReference)

	assert.Len(t, f.activities(t), before)
}

func TestService_UpdateProjectActivities(t *testing.T) {
	tests := []struct {
		name  string
		patch dto.ProjectPatch
		want  []string
	}{
		{
			name:  "status only",
			patch: dto.ProjectPatch{Status: ptr(domain.ProjectStatusCompleted)},
			want:  []string{"Project PRJ-2024-001 (MG Road Resurfacing) status changed from in_progress to completed"},
		},
		{
			name:  "progress only",
			patch: dto.ProjectPatch{Progress: ptr(80)},
			want:  []string{"Project PRJ-2024-001 (MG Road Resurfacing) progress updated to 80%"},
		},
		{
			name:  "both",
			patch: dto.ProjectPatch{Status: ptr(domain.ProjectStatusDelayed), Progress: ptr(70)},
			want: []string{
				"Project PRJ-2024-001 (MG Road Resurfacing) progress updated to 70%",
				"Project PRJ-2024-001 (MG Road Resurfacing) status changed from in_progress to delayed",
			},
		},
		{
			name:  "same values",
			patch: dto.ProjectPatch{Status: ptr(domain.ProjectStatusInProgress), Progress: ptr(65)},
		},
		{
			name:  "other field",
			patch: dto.ProjectPatch{Budget: ptr(3.0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			road, vendor := f.createRoadAndVendor(t)
			project := f.createProject(t, road, vendor)
			before := len(f.activities(t))

			_, err := f.svc.UpdateProject(context.Background(), project.ID, tt.patch)
			require.NoError(t, err)

			acts := f.activities(t)
			require.Len(t, acts, before+len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want, acts[i].Description)
			}
		})
	}
}

func TestService_UpdateProjectKeepsProgress(t *testing.T) {
	f := newFixture(t)
	road, vendor := f.createRoadAndVendor(t)
	project := f.createProject(t, road, vendor)

	updated, err := f.svc.UpdateProject(context.Background(), project.ID, dto.ProjectPatch{Status: ptr(domain.ProjectStatusCompleted)})
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectStatusCompleted, updated.Status)
	assert.Equal(t, 65, updated.Progress)
}

func TestService_UpdateProjectInvalidReference(t *testing.T) {
	f := newFixture(t)
	road, vendor := f.createRoadAndVendor(t)
	project := f.createProject(t, road, vendor)

	_, err := f.svc.UpdateProject(context.Background(), project.ID, dto.ProjectPatch{RoadID: ptr(int64(77))})
	assert.ErrorIs(t, err, constants.ErrInvalidReference)

	stored, err := f.svc.GetProject(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Equal(t, road.ID, stored.RoadID)
}

func TestService_ListProjectsFilter(t *testing.T) {
	f := newFixture(t)
	road, vendor := f.createRoadAndVendor(t)
	f.createProject(t, road, vendor)

	projects, err := f.svc.ListProjects(context.Background(), store.ListProjectsOpts{VendorID: ptr(vendor.ID)})
	require.NoError(t, err)
	assert.Len(t, projects, 1)

	projects, err = f.svc.ListProjects(context.Background(), store.ListProjectsOpts{VendorID: ptr(int64(5))})
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestService_Wards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ward, err := f.svc.CreateWard(ctx, dto.CreateWardRequest{Name: "Ward 1 - Central", Number: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), ward.ID)

	_, err = f.svc.CreateWard(ctx, dto.CreateWardRequest{Name: "Ward 1 - Central", Number: 2})
	assert.ErrorIs(t, err, constants.ErrAlreadyExists)

	wards, err := f.svc.ListWards(ctx)
	require.NoError(t, err)
	assert.Len(t, wards, 1)
	assert.Empty(t, f.activities(t), "ward changes are not logged")
}
