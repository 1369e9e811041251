package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	// OrderPending заказ опубликован, идёт набор заявок;
	OrderPending OrderStatus = "PENDING"
	// OrderCommitted заказ передан группе и выполняется;
	OrderCommitted OrderStatus = "COMMITTED"
	// OrderCompleted заказ выполнен, доступны выплата и оценка.
	OrderCompleted OrderStatus = "COMPLETED"
)

// MaxPoolSize bounds both the bidding pool and the committed roster.
const (
	MinRosterSize = 2
	MaxPoolSize   = 4

	MinRating = 1
	MaxRating = 5
)

// CommissionRate is the service fee withheld from every order amount.
var CommissionRate = decimal.NewFromFloat(0.20)

type Worker struct {
	ID              int64           `db:"id"`
	Identity        int64           `db:"identity"`
	DisplayName     string          `db:"display_name"`
	JobID           string          `db:"job_id"`
	GroupID         *int64          `db:"group_id"`
	Balance         decimal.Decimal `db:"balance"`
	Reputation      int64           `db:"reputation"`
	RatingAvg       float64         `db:"rating_avg"`
	RatingCount     int             `db:"rating_count"`
	CompletedOrders int             `db:"completed_orders"`
	Banned          bool            `db:"banned"`
	BannedUntil     *time.Time      `db:"banned_until"`
	RestrictedUntil *time.Time      `db:"restricted_until"`
	TermsAccepted   bool            `db:"terms_accepted"`
	CreatedAt       time.Time       `db:"created_at"`
}

type Group struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	RatingAvg   float64   `db:"rating_avg"`
	RatingCount int       `db:"rating_count"`
	CreatedAt   time.Time `db:"created_at"`
}

type Order struct {
	ID          int64           `db:"id"`
	Reference   string          `db:"reference"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	Commission  decimal.Decimal `db:"commission"`
	Status      OrderStatus     `db:"status"`
	GroupID     *int64          `db:"group_id"`
	Rating      int             `db:"rating"`
	CreatedAt   time.Time       `db:"created_at"`
	CompletedAt *time.Time      `db:"completed_at"`
}

// Rated reports whether the single rating event has already happened.
func (o *Order) Rated() bool {
	return o.Rating != 0
}

type Application struct {
	ID        int64     `db:"id"`
	OrderID   int64     `db:"order_id"`
	WorkerID  int64     `db:"worker_id"`
	Identity  int64     `db:"identity"`
	GroupID   int64     `db:"group_id"`
	JobID     string    `db:"job_id"`
	CreatedAt time.Time `db:"created_at"`
}

type RosterEntry struct {
	OrderID  int64  `db:"order_id"`
	WorkerID int64  `db:"worker_id"`
	Identity int64  `db:"identity"`
	JobID    string `db:"job_id"`
}

type Payout struct {
	ID        int64           `db:"id"`
	Receipt   uuid.UUID       `db:"receipt"`
	OrderID   int64           `db:"order_id"`
	WorkerID  int64           `db:"worker_id"`
	Reference string          `db:"reference"`
	Amount    decimal.Decimal `db:"amount"`
	PaidAt    time.Time       `db:"paid_at"`
}

// Rating is the aggregate kept for workers and groups. Points is the raw
// cumulative sum and is only meaningful for workers.
type Rating struct {
	Average float64
	Count   int
	Points  int64
}

// Award is the outcome of a successful resolution.
type Award struct {
	Order     *Order
	GroupID   int64
	Roster    []RosterEntry
	Discarded []Application
}

// OrderDetails is an order together with its crew and open bids.
type OrderDetails struct {
	Order  *Order
	Roster []RosterEntry
	Pool   []Application
}
