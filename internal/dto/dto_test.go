package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/crewmart/internal/domain"
)

var created = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestNewOrderDTO(t *testing.T) {
	completed := created.Add(3 * time.Hour)
	group := int64(3)
	order := &domain.Order{
		Reference:   "79927398713",
		Description: "carry",
		Amount:      decimal.NewFromInt(1000),
		Commission:  decimal.NewFromInt(200),
		Status:      domain.OrderCompleted,
		GroupID:     &group,
		CreatedAt:   created,
		CompletedAt: &completed,
	}

	resp := NewOrderDTO(order)

	assert.Equal(t, "COMPLETED", resp.Status)
	assert.Equal(t, "800", resp.Payout.String())
	assert.Equal(t, "2024-05-01T12:00:00Z", resp.CreatedAt)
	assert.Equal(t, "2024-05-01T15:00:00Z", resp.CompletedAt)
}

func TestNewPayoutDTOs(t *testing.T) {
	receipt := uuid.New()
	resp := NewPayoutDTOs([]domain.Payout{{Receipt: receipt, Reference: "79927398713", Amount: decimal.NewFromInt(800), PaidAt: created}})

	assert.Len(t, resp, 1)
	assert.Equal(t, receipt.String(), resp[0].Receipt)
}

func TestNewWorkerDTO(t *testing.T) {
	until := created.Add(time.Hour)
	resp := NewWorkerDTO(&domain.Worker{Identity: 100, Banned: true, BannedUntil: &until})

	assert.Equal(t, "2024-05-01T13:00:00Z", resp.BannedUntil)
	assert.Empty(t, resp.RestrictedUntil)
}

func TestNewStaleOrderDTOs(t *testing.T) {
	resp := NewStaleOrderDTOs([]domain.Order{{Reference: "79927398713", CreatedAt: created}}, created.Add(13*time.Hour+30*time.Second))

	assert.Equal(t, "13h0m0s", resp[0].Age)
}

func TestEmptyCollectionsEncodeAsArrays(t *testing.T) {
	details := NewOrderDetailsDTO(&domain.OrderDetails{Order: &domain.Order{}})

	assert.NotNil(t, details.Roster)
	assert.NotNil(t, details.Pool)
}
