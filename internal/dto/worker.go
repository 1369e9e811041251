package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/crewmart/internal/domain"
)

type ContactRequestDTO struct {
	DisplayName string `json:"display_name" example:"Ann"`
	JobID       string `json:"job_id,omitempty" example:"Ann#2231"`
}

type JobIDRequestDTO struct {
	JobID string `json:"job_id" example:"Ann#2231"`
}

type WorkerDTO struct {
	Identity        int64           `json:"identity" example:"100500"`
	DisplayName     string          `json:"display_name" example:"Ann"`
	JobID           string          `json:"job_id" example:"Ann#2231"`
	GroupID         *int64          `json:"group_id,omitempty" example:"3"`
	Balance         decimal.Decimal `json:"balance" swaggertype:"string" example:"1600.00"`
	Reputation      int64           `json:"reputation" example:"14"`
	RatingAvg       float64         `json:"rating_avg" example:"4.67"`
	RatingCount     int             `json:"rating_count" example:"3"`
	CompletedOrders int             `json:"completed_orders" example:"3"`
	Banned          bool            `json:"banned"`
	BannedUntil     string          `json:"banned_until,omitempty"`
	RestrictedUntil string          `json:"restricted_until,omitempty"`
	TermsAccepted   bool            `json:"terms_accepted"`
}

func NewWorkerDTO(w *domain.Worker) WorkerDTO {
	resp := WorkerDTO{
		Identity:        w.Identity,
		DisplayName:     w.DisplayName,
		JobID:           w.JobID,
		GroupID:         w.GroupID,
		Balance:         w.Balance,
		Reputation:      w.Reputation,
		RatingAvg:       w.RatingAvg,
		RatingCount:     w.RatingCount,
		CompletedOrders: w.CompletedOrders,
		Banned:          w.Banned,
		TermsAccepted:   w.TermsAccepted,
	}
	if w.BannedUntil != nil {
		resp.BannedUntil = w.BannedUntil.Format(time.RFC3339)
	}
	if w.RestrictedUntil != nil {
		resp.RestrictedUntil = w.RestrictedUntil.Format(time.RFC3339)
	}
	return resp
}
