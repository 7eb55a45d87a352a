package dto

import (
	"time"

	"github.com/ougirez/roadtrack/internal/domain"
)

type CreateVendorRequest struct {
	Name               string     `json:"name" validate:"required"`
	ContactPerson      *string    `json:"contactPerson"`
	Phone              *string    `json:"phone"`
	Email              *string    `json:"email" validate:"omitempty,email"`
	Address            *string    `json:"address"`
	RegistrationNumber *string    `json:"registrationNumber"`
	RegistrationDate   *time.Time `json:"registrationDate"`
	Category           *string    `json:"category"`
	Status             string     `json:"status"`
	Performance        string     `json:"performance" validate:"omitempty,oneof=good average poor"`
}

func (r CreateVendorRequest) ToDomain() domain.Vendor {
	status := r.Status
	if status == "" {
		status = domain.VendorStatusActive
	}
	performance := r.Performance
	if performance == "" {
		performance = domain.PerformanceGood
	}
	return domain.Vendor{
		Name:               r.Name,
		ContactPerson:      r.ContactPerson,
		Phone:              r.Phone,
		Email:              r.Email,
		Address:            r.Address,
		RegistrationNumber: r.RegistrationNumber,
		RegistrationDate:   r.RegistrationDate,
		Category:           r.Category,
		Status:             status,
		Performance:        performance,
	}
}

type VendorPatch struct {
	Name               *string    `json:"name" validate:"omitempty,min=1"`
	ContactPerson      *string    `json:"contactPerson"`
	Phone              *string    `json:"phone"`
	Email              *string    `json:"email" validate:"omitempty,email"`
	Address            *string    `json:"address"`
	RegistrationNumber *string    `json:"registrationNumber"`
	RegistrationDate   *time.Time `json:"registrationDate"`
	Category           *string    `json:"category"`
	Status             *string    `json:"status" validate:"omitempty,min=1"`
	Performance        *string    `json:"performance" validate:"omitempty,oneof=good average poor"`
}

func (p VendorPatch) Apply(vendor *domain.Vendor) Changes {
	var c Changes
	set(&c, "name", &vendor.Name, p.Name)
	setOptional(&c, "contactPerson", &vendor.ContactPerson, p.ContactPerson)
	setOptional(&c, "phone", &vendor.Phone, p.Phone)
	setOptional(&c, "email", &vendor.Email, p.Email)
	setOptional(&c, "address", &vendor.Address, p.Address)
	setOptional(&c, "registrationNumber", &vendor.RegistrationNumber, p.RegistrationNumber)
	setOptionalTime(&c, "registrationDate", &vendor.RegistrationDate, p.RegistrationDate)
	setOptional(&c, "category", &vendor.Category, p.Category)
	set(&c, "status", &vendor.Status, p.Status)
	set(&c, "performance", &vendor.Performance, p.Performance)
	return c
}
