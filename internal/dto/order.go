package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/crewmart/internal/domain"
)

type CreateOrderRequestDTO struct {
	Reference   string          `json:"reference" example:"79927398713"`
	Description string          `json:"description" example:"Raid carry, 4 players"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"1000.00"`
}

type ApplyRequestDTO struct {
	JobID string `json:"job_id,omitempty" example:"Ann#2231"`
}

type RatingRequestDTO struct {
	Rating int `json:"rating" example:"5"`
}

type OrderDTO struct {
	Reference   string          `json:"reference" example:"79927398713"`
	Description string          `json:"description" example:"Raid carry, 4 players"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"1000.00"`
	Commission  decimal.Decimal `json:"commission" swaggertype:"string" example:"200.00"`
	Payout      decimal.Decimal `json:"payout" swaggertype:"string" example:"800.00"`
	Status      string          `json:"status" example:"PENDING"`
	GroupID     *int64          `json:"group_id,omitempty" example:"3"`
	Rating      int             `json:"rating,omitempty" example:"5"`
	CreatedAt   string          `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
	CompletedAt string          `json:"completed_at,omitempty" example:"2020-12-09T20:09:57+03:00"`
}

type ApplicationDTO struct {
	Identity  int64  `json:"identity" example:"100500"`
	GroupID   int64  `json:"group_id" example:"3"`
	JobID     string `json:"job_id" example:"Ann#2231"`
	CreatedAt string `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}

type RosterEntryDTO struct {
	Identity int64  `json:"identity" example:"100500"`
	JobID    string `json:"job_id" example:"Ann#2231"`
}

type OrderDetailsDTO struct {
	Order  OrderDTO         `json:"order"`
	Roster []RosterEntryDTO `json:"roster"`
	Pool   []ApplicationDTO `json:"pool"`
}

type AwardDTO struct {
	Order     OrderDTO         `json:"order"`
	GroupID   int64            `json:"group_id" example:"3"`
	Roster    []RosterEntryDTO `json:"roster"`
	Discarded []ApplicationDTO `json:"discarded"`
}

type PayoutDTO struct {
	Receipt   string          `json:"receipt" example:"4f1c2a9e-8c51-4c8e-9f0e-2b8d3a6f1e77"`
	Reference string          `json:"reference" example:"79927398713"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"800.00"`
	PaidAt    string          `json:"paid_at" example:"2020-12-09T20:09:57+03:00"`
}

func NewOrderDTO(o *domain.Order) OrderDTO {
	resp := OrderDTO{
		Reference:   o.Reference,
		Description: o.Description,
		Amount:      o.Amount,
		Commission:  o.Commission,
		Payout:      domain.PayoutAmount(o.Amount),
		Status:      string(o.Status),
		GroupID:     o.GroupID,
		Rating:      o.Rating,
		CreatedAt:   o.CreatedAt.Format(time.RFC3339),
	}
	if o.CompletedAt != nil {
		resp.CompletedAt = o.CompletedAt.Format(time.RFC3339)
	}
	return resp
}

func NewOrderDTOs(orders []domain.Order) []OrderDTO {
	resp := make([]OrderDTO, 0, len(orders))
	for i := range orders {
		resp = append(resp, NewOrderDTO(&orders[i]))
	}
	return resp
}

func NewApplicationDTOs(apps []domain.Application) []ApplicationDTO {
	resp := make([]ApplicationDTO, 0, len(apps))
	for _, app := range apps {
		resp = append(resp, ApplicationDTO{
			Identity:  app.Identity,
			GroupID:   app.GroupID,
			JobID:     app.JobID,
			CreatedAt: app.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp
}

func NewRosterDTOs(entries []domain.RosterEntry) []RosterEntryDTO {
	resp := make([]RosterEntryDTO, 0, len(entries))
	for _, entry := range entries {
		resp = append(resp, RosterEntryDTO{Identity: entry.Identity, JobID: entry.JobID})
	}
	return resp
}

func NewOrderDetailsDTO(d *domain.OrderDetails) OrderDetailsDTO {
	return OrderDetailsDTO{
		Order:  NewOrderDTO(d.Order),
		Roster: NewRosterDTOs(d.Roster),
		Pool:   NewApplicationDTOs(d.Pool),
	}
}

func NewAwardDTO(a *domain.Award) AwardDTO {
	return AwardDTO{
		Order:     NewOrderDTO(a.Order),
		GroupID:   a.GroupID,
		Roster:    NewRosterDTOs(a.Roster),
		Discarded: NewApplicationDTOs(a.Discarded),
	}
}

func NewPayoutDTO(p *domain.Payout) PayoutDTO {
	return PayoutDTO{
		Receipt:   p.Receipt.String(),
		Reference: p.Reference,
		Amount:    p.Amount,
		PaidAt:    p.PaidAt.Format(time.RFC3339),
	}
}

func NewPayoutDTOs(payouts []domain.Payout) []PayoutDTO {
	resp := make([]PayoutDTO, 0, len(payouts))
	for i := range payouts {
		resp = append(resp, NewPayoutDTO(&payouts[i]))
	}
	return resp
}
