package dto

import (
	"time"

	"github.com/GlebRadaev/crewmart/internal/domain"
)

type GroupRequestDTO struct {
	Name string `json:"name" example:"alpha"`
}

type GroupDTO struct {
	ID          int64   `json:"id" example:"3"`
	Name        string  `json:"name" example:"alpha"`
	RatingAvg   float64 `json:"rating_avg" example:"4.5"`
	RatingCount int     `json:"rating_count" example:"8"`
}

// BanRequestDTO bans permanently when Until is omitted.
type BanRequestDTO struct {
	Until *time.Time `json:"until,omitempty" example:"2020-12-10T16:09:57+03:00"`
}

type RestrictRequestDTO struct {
	Until time.Time `json:"until" example:"2020-12-10T16:09:57+03:00"`
}

type StaleOrderDTO struct {
	Reference string `json:"reference" example:"79927398713"`
	GroupID   *int64 `json:"group_id,omitempty" example:"3"`
	CreatedAt string `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
	Age       string `json:"age" example:"13h0m0s"`
}

func NewGroupDTO(g *domain.Group) GroupDTO {
	return GroupDTO{
		ID:          g.ID,
		Name:        g.Name,
		RatingAvg:   g.RatingAvg,
		RatingCount: g.RatingCount,
	}
}

func NewGroupDTOs(groups []domain.Group) []GroupDTO {
	resp := make([]GroupDTO, 0, len(groups))
	for i := range groups {
		resp = append(resp, NewGroupDTO(&groups[i]))
	}
	return resp
}

func NewStaleOrderDTOs(orders []domain.Order, now time.Time) []StaleOrderDTO {
	resp := make([]StaleOrderDTO, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, StaleOrderDTO{
			Reference: o.Reference,
			GroupID:   o.GroupID,
			CreatedAt: o.CreatedAt.Format(time.RFC3339),
			Age:       now.Sub(o.CreatedAt).Truncate(time.Minute).String(),
		})
	}
	return resp
}
