package dto

import "github.com/ougirez/roadtrack/internal/domain"

type CreateWardRequest struct {
	Name        string   `json:"name" validate:"required"`
	Number      int      `json:"number" validate:"required,gt=0"`
	Area        *float64 `json:"area" validate:"omitempty,gte=0"`
	Population  *int     `json:"population" validate:"omitempty,gte=0"`
	Description *string  `json:"description"`
}

func (r CreateWardRequest) ToDomain() domain.Ward {
	return domain.Ward{
		Name:        r.Name,
		Number:      r.Number,
		Area:        r.Area,
		Population:  r.Population,
		Description: r.Description,
	}
}
