package registry

import (
	"context"
	"fmt"

	"github.com/ougirez/roadtrack/internal/domain"
	"github.com/ougirez/roadtrack/internal/domain/dto"
)

func (s *Service) ListVendors(ctx context.Context) ([]*domain.Vendor, error) {
	return s.store.ListVendors(ctx)
}

func (s *Service) GetVendor(ctx context.Context, id int64) (*domain.Vendor, error) {
	return s.store.GetVendor(ctx, id)
}

func (s *Service) CreateVendor(ctx context.Context, req dto.CreateVendorRequest) (*domain.Vendor, error) {
	vendor := req.ToDomain()
	vendor.CreatedAt = s.timestamp()

	created, err := s.store.InsertVendor(ctx, &vendor)
	if err != nil {
		return nil, fmt.Errorf("insert vendor: %w", err)
	}

	s.record(ctx, s.actor(ctx), domain.ActivityVendorAdded,
		fmt.Sprintf("New vendor %s onboarded", created.Name),
		domain.EntityVendor, created.ID)
	return created, nil
}

func (s *Service) UpdateVendor(ctx context.Context, id int64, patch dto.VendorPatch) (*domain.Vendor, error) {
	current, err := s.store.GetVendor(ctx, id)
	if err != nil {
		return nil, err
	}
	name := current.Name

	updated := current
	if changes := patch.Apply(current); !changes.Empty() {
		updated, err = s.store.UpdateVendor(ctx, current)
		if err != nil {
			return nil, fmt.Errorf("update vendor: %w", err)
		}
	}

	s.record(ctx, s.actor(ctx), domain.ActivityVendorUpdated,
		fmt.Sprintf("Vendor %s updated", name),
		domain.EntityVendor, id)
	return updated, nil
}

func (s *Service) DeleteVendor(ctx context.Context, id int64) error {
	vendor, err := s.store.GetVendor(ctx, id)
	if err != nil {
		return err
	}
	if err = s.store.DeleteVendor(ctx, id); err != nil {
		return err
	}

	s.record(ctx, s.actor(ctx), domain.ActivityVendorDeleted,
		fmt.Sprintf("Vendor %s removed", vendor.Name),
		domain.EntityVendor, id)
	return nil
}
