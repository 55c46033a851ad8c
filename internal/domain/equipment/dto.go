package equipment

import (
	"database/sql"
	"strings"
	"time"
)

// EquipmentRequest is the body of create and full-replace update calls.
type EquipmentRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Type        string  `json:"type" validate:"required,equipment_type"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

func (r *EquipmentRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		r.Description = &d
	}
}

func (r *EquipmentRequest) description() sql.NullString {
	if r.Description == nil || *r.Description == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *r.Description, Valid: true}
}

// EquipmentResponse for API responses
type EquipmentResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToResponse converts entity to response
func ToResponse(e *Equipment) *EquipmentResponse {
	resp := &EquipmentResponse{
		ID:        e.ID,
		Name:      e.Name,
		Type:      e.Type,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	if e.Description.Valid {
		resp.Description = &e.Description.String
	}
	return resp
}

func toResponses(items []*Equipment) []*EquipmentResponse {
	out := make([]*EquipmentResponse, len(items))
	for i, e := range items {
		out[i] = ToResponse(e)
	}
	return out
}
