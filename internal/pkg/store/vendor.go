package store

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/ougirez/roadtrack/internal/domain"
	"github.com/ougirez/roadtrack/internal/pkg/logger"
)

var vendorColumns = []string{
	"id", "name", "contact_person", "phone", "email", "address", "registration_number",
	"registration_date", "category", "status", "performance", "created_at",
}

func vendorValues(vendor *domain.Vendor) map[string]interface{} {
	return map[string]interface{}{
		"name":                vendor.Name,
		"contact_person":      vendor.ContactPerson,
		"phone":               vendor.Phone,
		"email":               vendor.Email,
		"address":             vendor.Address,
		"registration_number": vendor.RegistrationNumber,
		"registration_date":   vendor.RegistrationDate,
		"category":            vendor.Category,
		"status":              vendor.Status,
		"performance":         vendor.Performance,
	}
}

func (s *store) ListVendors(ctx context.Context) ([]*domain.Vendor, error) {
	query := builder().Select(vendorColumns...).
		From(tableVendors).
		OrderBy("id")

	vendors := make([]*domain.Vendor, 0)
	if err := s.pool.Selectx(ctx, &vendors, query); err != nil {
		logger.Errorf(ctx, "ListVendors: %s", err.Error())
		return nil, wrapErr(err)
	}
	return vendors, nil
}

func (s *store) GetVendor(ctx context.Context, id int64) (*domain.Vendor, error) {
	query := builder().Select(vendorColumns...).
		From(tableVendors).
		Where(squirrel.Eq{"id": id})

	var vendor domain.Vendor
	if err := s.pool.Getx(ctx, &vendor, query); err != nil {
		return nil, fmt.Errorf("vendor %d: %w", id, wrapErr(err))
	}
	return &vendor, nil
}

func (s *store) InsertVendor(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error) {
	values := vendorValues(vendor)
	values["created_at"] = vendor.CreatedAt

	query := builder().Insert(tableVendors).
		SetMap(values).
		Suffix(returning(vendorColumns))

	var inserted domain.Vendor
	if err := s.pool.Getx(ctx, &inserted, query); err != nil {
		logger.Errorf(ctx, "InsertVendor: %s", err.Error())
		return nil, wrapErr(err)
	}
	return &inserted, nil
}

func (s *store) UpdateVendor(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error) {
	query := builder().Update(tableVendors).
		SetMap(vendorValues(vendor)).
		Where(squirrel.Eq{"id": vendor.ID}).
		Suffix(returning(vendorColumns))

	var updated domain.Vendor
	if err := s.pool.Getx(ctx, &updated, query); err != nil {
		return nil, fmt.Errorf("vendor %d: %w", vendor.ID, wrapErr(err))
	}
	return &updated, nil
}

func (s *store) DeleteVendor(ctx context.Context, id int64) error {
	if err := s.deleteUnreferenced(ctx, tableVendors, "vendor_id", id); err != nil {
		return fmt.Errorf("vendor %d: %w", id, err)
	}
	return nil
}
