package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/ougirez/roadtrack/internal/domain"
	"github.com/ougirez/roadtrack/internal/pkg/constants"
	"github.com/ougirez/roadtrack/internal/pkg/store"
)

// Store keeps every entity in process memory. One RWMutex covers all maps and id counters,
// so the referential guard and the delete it protects happen atomically. Records go in and
// come out as deep copies.
type Store struct {
	mu sync.RWMutex

	wards      map[int64]domain.Ward
	roads      map[int64]domain.Road
	vendors    map[int64]domain.Vendor
	projects   map[int64]domain.Project
	activities map[int64]domain.Activity

	nextWardID     int64
	nextRoadID     int64
	nextVendorID   int64
	nextProjectID  int64
	nextActivityID int64
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		wards:          make(map[int64]domain.Ward),
		roads:          make(map[int64]domain.Road),
		vendors:        make(map[int64]domain.Vendor),
		projects:       make(map[int64]domain.Project),
		activities:     make(map[int64]domain.Activity),
		nextWardID:     1,
		nextRoadID:     1,
		nextVendorID:   1,
		nextProjectID:  1,
		nextActivityID: 1,
	}
}

func sortedValues[T any](m map[int64]T, clone func(T) T) []*T {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		v := clone(m[id])
		out = append(out, &v)
	}
	return out
}

func notFound(kind string, id int64) error {
	return fmt.Errorf("%s %d: %w", kind, id, constants.ErrDBNotFound)
}

func duplicate(kind, value string) error {
	return fmt.Errorf("%s %q: %w", kind, value, constants.ErrAlreadyExists)
}

// Wards

func (s *Store) ListWards(_ context.Context) ([]*domain.Ward, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.wards, cloneWard), nil
}

func (s *Store) GetWard(_ context.Context, id int64) (*domain.Ward, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ward, ok := s.wards[id]
	if !ok {
		return nil, notFound("ward", id)
	}
	ward = cloneWard(ward)
	return &ward, nil
}

func (s *Store) InsertWard(_ context.Context, ward *domain.Ward) (*domain.Ward, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range s.wards {
		if w.Name == ward.Name {
			return nil, duplicate("ward", ward.Name)
		}
		if w.Number == ward.Number {
			return nil, duplicate("ward number", fmt.Sprint(ward.Number))
		}
	}

	stored := cloneWard(*ward)
	stored.ID = s.nextWardID
	s.nextWardID++
	s.wards[stored.ID] = stored
	out := cloneWard(stored)
	return &out, nil
}

// Roads

func (s *Store) ListRoads(_ context.Context) ([]*domain.Road, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.roads, cloneRoad), nil
}

func (s *Store) GetRoad(_ context.Context, id int64) (*domain.Road, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	road, ok := s.roads[id]
	if !ok {
		return nil, notFound("road", id)
	}
	road = cloneRoad(road)
	return &road, nil
}

func (s *Store) roadCodeTaken(code string, exceptID int64) bool {
	for id, r := range s.roads {
		if id != exceptID && r.Code == code {
			return true
		}
	}
	return false
}

func (s *Store) InsertRoad(_ context.Context, road *domain.Road) (*domain.Road, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.roadCodeTaken(road.Code, 0) {
		return nil, duplicate("road", road.Code)
	}

	stored := cloneRoad(*road)
	stored.ID = s.nextRoadID
	s.nextRoadID++
	s.roads[stored.ID] = stored
	out := cloneRoad(stored)
	return &out, nil
}

func (s *Store) UpdateRoad(_ context.Context, road *domain.Road) (*domain.Road, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.roads[road.ID]
	if !ok {
		return nil, notFound("road", road.ID)
	}
	if s.roadCodeTaken(road.Code, road.ID) {
		return nil, duplicate("road", road.Code)
	}

	stored := cloneRoad(*road)
	stored.CreatedAt = current.CreatedAt
	s.roads[stored.ID] = stored
	out := cloneRoad(stored)
	return &out, nil
}

func (s *Store) DeleteRoad(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.roads[id]; !ok {
		return notFound("road", id)
	}
	if err := s.guardRoad(id); err != nil {
		return err
	}
	delete(s.roads, id)
	return nil
}

// Vendors

func (s *Store) ListVendors(_ context.Context) ([]*domain.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.vendors, cloneVendor), nil
}

func (s *Store) GetVendor(_ context.Context, id int64) (*domain.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vendor, ok := s.vendors[id]
	if !ok {
		return nil, notFound("vendor", id)
	}
	vendor = cloneVendor(vendor)
	return &vendor, nil
}

func (s *Store) vendorNameTaken(name string, exceptID int64) bool {
	for id, v := range s.vendors {
		if id != exceptID && v.Name == name {
			return true
		}
	}
	return false
}

func (s *Store) InsertVendor(_ context.Context, vendor *domain.Vendor) (*domain.Vendor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.vendorNameTaken(vendor.Name, 0) {
		return nil, duplicate("vendor", vendor.Name)
	}

	stored := cloneVendor(*vendor)
	stored.ID = s.nextVendorID
	s.nextVendorID++
	s.vendors[stored.ID] = stored
	out := cloneVendor(stored)
	return &out, nil
}

func (s *Store) UpdateVendor(_ context.Context, vendor *domain.Vendor) (*domain.Vendor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.vendors[vendor.ID]
	if !ok {
		return nil, notFound("vendor", vendor.ID)
	}
	if s.vendorNameTaken(vendor.Name, vendor.ID) {
		return nil, duplicate("vendor", vendor.Name)
	}

	stored := cloneVendor(*vendor)
	stored.CreatedAt = current.CreatedAt
	s.vendors[stored.ID] = stored
	out := cloneVendor(stored)
	return &out, nil
}

func (s *Store) DeleteVendor(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vendors[id]; !ok {
		return notFound("vendor", id)
	}
	if err := s.guardVendor(id); err != nil {
		return err
	}
	delete(s.vendors, id)
	return nil
}

// Projects

func (s *Store) ListProjects(_ context.Context, opts store.ListProjectsOpts) ([]*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := sortedValues(s.projects, cloneProject)
	out := all[:0]
	for _, p := range all {
		if opts.RoadID != nil && p.RoadID != *opts.RoadID {
			continue
		}
		if opts.VendorID != nil && p.VendorID != *opts.VendorID {
			continue
		}
		if opts.WardID != nil && p.WardID != *opts.WardID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *Store) GetProject(_ context.Context, id int64) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	project, ok := s.projects[id]
	if !ok {
		return nil, notFound("project", id)
	}
	project = cloneProject(project)
	return &project, nil
}

func (s *Store) projectCodeTaken(code string, exceptID int64) bool {
	for id, p := range s.projects {
		if id != exceptID && p.Code == code {
			return true
		}
	}
	return false
}

func (s *Store) InsertProject(_ context.Context, project *domain.Project) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.projectCodeTaken(project.Code, 0) {
		return nil, duplicate("project", project.Code)
	}
	if err := s.checkProjectRefs(project); err != nil {
		return nil, err
	}

	stored := cloneProject(*project)
	stored.ID = s.nextProjectID
	s.nextProjectID++
	s.projects[stored.ID] = stored
	out := cloneProject(stored)
	return &out, nil
}

func (s *Store) UpdateProject(_ context.Context, project *domain.Project) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.projects[project.ID]
	if !ok {
		return nil, notFound("project", project.ID)
	}
	if s.projectCodeTaken(project.Code, project.ID) {
		return nil, duplicate("project", project.Code)
	}
	if err := s.checkProjectRefs(project); err != nil {
		return nil, err
	}

	stored := cloneProject(*project)
	stored.CreatedAt = current.CreatedAt
	s.projects[stored.ID] = stored
	out := cloneProject(stored)
	return &out, nil
}

func (s *Store) DeleteProject(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return notFound("project", id)
	}
	delete(s.projects, id)
	return nil
}

// Activities

func (s *Store) InsertActivity(_ context.Context, activity *domain.Activity) (*domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := cloneActivity(*activity)
	stored.ID = s.nextActivityID
	s.nextActivityID++
	s.activities[stored.ID] = stored
	out := cloneActivity(stored)
	return &out, nil
}

func (s *Store) ListActivities(_ context.Context, limit int) ([]*domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := sortedValues(s.activities, cloneActivity)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
