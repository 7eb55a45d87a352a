package memory

import (
	"fmt"

	"github.com/ougirez/roadtrack/internal/domain"
	"github.com/ougirez/roadtrack/internal/pkg/constants"
)

// guardRoad and guardVendor must be called with s.mu held for writing.

func (s *Store) guardRoad(id int64) error {
	if n := s.countProjects(func(p domain.Project) bool { return p.RoadID == id }); n > 0 {
		return fmt.Errorf("road %d has %d project(s): %w", id, n, constants.ErrReferenced)
	}
	return nil
}

func (s *Store) guardVendor(id int64) error {
	if n := s.countProjects(func(p domain.Project) bool { return p.VendorID == id }); n > 0 {
		return fmt.Errorf("vendor %d has %d project(s): %w", id, n, constants.ErrReferenced)
	}
	return nil
}

func (s *Store) countProjects(match func(domain.Project) bool) int {
	n := 0
	for _, p := range s.projects {
		if match(p) {
			n++
		}
	}
	return n
}

// checkProjectRefs mirrors the foreign keys of the postgres schema.
func (s *Store) checkProjectRefs(p *domain.Project) error {
	if _, ok := s.roads[p.RoadID]; !ok {
		return fmt.Errorf("road %d: %w", p.RoadID, constants.ErrInvalidReference)
	}
	if _, ok := s.vendors[p.VendorID]; !ok {
		return fmt.Errorf("vendor %d: %w", p.VendorID, constants.ErrInvalidReference)
	}
	return nil
}
