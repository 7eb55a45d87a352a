package domain

import "time"

const VendorStatusActive = "active"

// Vendor performance grades.
const (
	PerformanceGood    = "good"
	PerformanceAverage = "average"
	PerformancePoor    = "poor"
)

// Vendor is a contracted construction or maintenance firm.
type Vendor struct {
	ID                 int64      `json:"id" db:"id"`
	Name               string     `json:"name" db:"name"`
	ContactPerson      *string    `json:"contactPerson" db:"contact_person"`
	Phone              *string    `json:"phone" db:"phone"`
	Email              *string    `json:"email" db:"email"`
	Address            *string    `json:"address" db:"address"`
	RegistrationNumber *string    `json:"registrationNumber" db:"registration_number"`
	RegistrationDate   *time.Time `json:"registrationDate" db:"registration_date"`
	Category           *string    `json:"category" db:"category"`
	Status             string     `json:"status" db:"status"`
	Performance        string     `json:"performance" db:"performance"`
	CreatedAt          time.Time  `json:"createdAt" db:"created_at"`
}
