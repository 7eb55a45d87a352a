package seed

import (
	"context"
	"fmt"

	"github.com/ougirez/roadtrack/internal/domain"
	"github.com/ougirez/roadtrack/internal/domain/dto"
	"github.com/ougirez/roadtrack/internal/pkg/logger"
	"github.com/ougirez/roadtrack/internal/service/activity"
	"github.com/ougirez/roadtrack/internal/service/registry"
)

// Run loads the demo data set through the registry, so every record gets its activity entry.
// It does nothing when wards already exist.
func Run(ctx context.Context, reg *registry.Service, act *activity.Service) error {
	existing, err := reg.ListWards(ctx)
	if err != nil {
		return fmt.Errorf("list wards: %w", err)
	}
	if len(existing) > 0 {
		logger.Infof(ctx, "seed skipped: %d wards already present", len(existing))
		return nil
	}

	wardByNumber := make(map[int]*domain.Ward, len(wards))
	for _, w := range wards {
		ward, err := reg.CreateWard(ctx, dto.CreateWardRequest{
			Name:        w.name,
			Number:      w.number,
			Area:        ptr(w.area),
			Population:  ptr(w.population),
			Description: ptr(w.description),
		})
		if err != nil {
			return fmt.Errorf("seed ward %q: %w", w.name, err)
		}
		wardByNumber[ward.Number] = ward
	}

	roadByCode := make(map[string]*domain.Road, len(roads))
	for _, r := range roads {
		ward := wardByNumber[r.wardNumber]
		road, err := reg.CreateRoad(ctx, dto.CreateRoadRequest{
			Code:             r.code,
			Name:             r.name,
			Description:      ptr(r.description),
			WardID:           ward.ID,
			WardName:         ward.Name,
			Length:           ptr(r.length),
			Width:            ptr(r.width),
			StartPoint:       ptr(r.startPoint),
			EndPoint:         ptr(r.endPoint),
			ConstructionYear: ptr(r.constructionYear),
			LastMaintenance:  ptr(r.lastMaintenance),
			Status:           domain.RoadStatusActive,
			Coordinates:      ptr(r.coordinates),
		})
		if err != nil {
			return fmt.Errorf("seed road %s: %w", r.code, err)
		}
		roadByCode[road.Code] = road
	}

	vendorByName := make(map[string]*domain.Vendor, len(vendors))
	for _, v := range vendors {
		vendor, err := reg.CreateVendor(ctx, dto.CreateVendorRequest{
			Name:               v.name,
			ContactPerson:      ptr(v.contactPerson),
			Phone:              ptr(v.phone),
			Email:              ptr(v.email),
			Address:            ptr(v.address),
			RegistrationNumber: ptr(v.registrationNumber),
			RegistrationDate:   ptr(v.registrationDate),
			Category:           ptr(v.category),
			Status:             domain.VendorStatusActive,
			Performance:        v.performance,
		})
		if err != nil {
			return fmt.Errorf("seed vendor %q: %w", v.name, err)
		}
		vendorByName[vendor.Name] = vendor
	}

	for _, p := range projects {
		ward := wardByNumber[p.wardNumber]
		_, err := reg.CreateProject(ctx, dto.CreateProjectRequest{
			Code:        p.code,
			Name:        p.name,
			RoadID:      roadByCode[p.roadCode].ID,
			VendorID:    vendorByName[p.vendorName].ID,
			Type:        p.projectType,
			WardID:      ward.ID,
			WardName:    ward.Name,
			Budget:      p.budget,
			StartDate:   p.start,
			EndDate:     p.end,
			Status:      p.status,
			Progress:    p.progress,
			Description: ptr(p.description),
			CreatedBy:   ptr(p.createdBy),
		})
		if err != nil {
			return fmt.Errorf("seed project %s: %w", p.code, err)
		}
	}

	for _, a := range activities {
		_, err := act.Record(ctx, dto.CreateActivityRequest{
			Type:        a.activityType,
			Description: a.description,
			UserID:      ptr(a.userID),
			UserName:    ptr(a.userName),
		})
		if err != nil {
			return fmt.Errorf("seed activity %q: %w", a.activityType, err)
		}
	}

	logger.Infof(ctx, "seeded %d wards, %d roads, %d vendors, %d projects", len(wards), len(roads), len(vendors), len(projects))
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
