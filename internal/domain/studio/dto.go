package studio

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Price accepts a JSON number or a numeric string such as "150.00".
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return ErrInvalidPrice
		}
		data = []byte(strings.TrimSpace(s))
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrInvalidPrice
	}
	*p = Price(v)
	return nil
}

// StudioRequest is the body of create and full-replace update calls.
type StudioRequest struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Area        int      `json:"area" validate:"required,gt=0,lte=2147483647"`
	Category    string   `json:"category" validate:"required,studio_category"`
	Description string   `json:"description" validate:"required"`
	Images      []string `json:"images" validate:"omitempty,dive,required,max=2048"`
	Equipment   []int64  `json:"equipment" validate:"omitempty,dive,gt=0"`
	Price       *Price   `json:"price" validate:"required,gte=0,lte=99999999.99"`
}

func (r *StudioRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
}

func (r *StudioRequest) equipmentRefs() []string {
	refs := make([]string, 0, len(r.Equipment))
	seen := make(map[int64]bool, len(r.Equipment))
	for _, id := range r.Equipment {
		if seen[id] {
			continue
		}
		seen[id] = true
		refs = append(refs, strconv.FormatInt(id, 10))
	}
	return refs
}

func (r *StudioRequest) images() []string {
	if r.Images == nil {
		return []string{}
	}
	return r.Images
}

// StudioResponse for API responses. Equipment holds display names in the
// same order as EquipmentIDs.
type StudioResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Area         int       `json:"area"`
	Category     string    `json:"category"`
	Description  string    `json:"description"`
	Images       []string  `json:"images"`
	Equipment    []string  `json:"equipment"`
	EquipmentIDs []string  `json:"equipment_ids"`
	Price        float64   `json:"price"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToResponse converts entity to response using already resolved names.
func ToResponse(s *Studio, names map[int64]string) *StudioResponse {
	images := []string(s.Images)
	if images == nil {
		images = []string{}
	}
	ids := []string(s.Equipment)
	if ids == nil {
		ids = []string{}
	}
	return &StudioResponse{
		ID:           s.ID,
		Name:         s.Name,
		Area:         s.Area,
		Category:     s.Category,
		Description:  s.Description,
		Images:       images,
		Equipment:    ResolveEquipmentNames(ids, names),
		EquipmentIDs: ids,
		Price:        s.Price,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
