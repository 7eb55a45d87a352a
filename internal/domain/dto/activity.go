package dto

import "github.com/ougirez/roadtrack/internal/domain"

type CreateActivityRequest struct {
	Type        string  `json:"type" validate:"required"`
	Description string  `json:"description" validate:"required"`
	EntityID    *int64  `json:"entityId"`
	EntityType  *string `json:"entityType"`
	UserID      *string `json:"userId"`
	UserName    *string `json:"userName"`
}

func (r CreateActivityRequest) ToDomain() domain.Activity {
	return domain.Activity{
		Type:        r.Type,
		Description: r.Description,
		EntityID:    r.EntityID,
		EntityType:  r.EntityType,
		UserID:      r.UserID,
		UserName:    r.UserName,
	}
}
