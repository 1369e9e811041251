package admin

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/crewmart/internal/domain"
	"github.com/GlebRadaev/crewmart/internal/dto"
)

const ref = "79927398713"

var now = time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)

type mocks struct {
	orders  *MockOrderService
	pool    *MockPoolService
	scanner *MockScanService
	groups  *MockGroupService
	workers *MockWorkerService
	access  *MockAccessService
}

func NewMock(t *testing.T) (*AdminHandler, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		orders:  NewMockOrderService(ctrl),
		pool:    NewMockPoolService(ctrl),
		scanner: NewMockScanService(ctrl),
		groups:  NewMockGroupService(ctrl),
		workers: NewMockWorkerService(ctrl),
		access:  NewMockAccessService(ctrl),
	}
	h := New(m.orders, m.pool, m.scanner, m.groups, m.workers, m.access)
	h.now = func() time.Time { return now }
	return h, m
}

func serve(method, pattern, target, body string, h http.HandlerFunc) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, h)

	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateOrderHandler(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(m *mocks)
		expectedCode int
	}{
		{
			name: "Created",
			body: `{"reference":"79927398713","description":"raid","amount":"1000"}`,
			prepareMock: func(m *mocks) {
				m.orders.EXPECT().Create(gomock.Any(), ref, "raid", gomock.Any()).
					DoAndReturn(func(_ interface{}, _ string, _ string, amount decimal.Decimal) (*domain.Order, error) {
						assert.True(t, amount.Equal(decimal.NewFromInt(1000)))
						return &domain.Order{Reference: ref, Amount: amount, Status: domain.OrderPending}, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid body",
			body:         `{"amount":`,
			prepareMock:  func(m *mocks) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Bad checksum",
			body: `{"reference":"79927398710","amount":"10"}`,
			prepareMock: func(m *mocks) {
				m.orders.EXPECT().Create(gomock.Any(), "79927398710", "", gomock.Any()).Return(nil, domain.ErrInvalidReference)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Duplicate reference",
			body: `{"reference":"79927398713","amount":"10"}`,
			prepareMock: func(m *mocks) {
				m.orders.EXPECT().Create(gomock.Any(), ref, "", gomock.Any()).Return(nil, domain.ErrOrderExists)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := NewMock(t)
			tt.prepareMock(m)

			rec := serve(http.MethodPost, "/orders", "/orders", tt.body, h.CreateOrder)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestListOrdersHandler(t *testing.T) {
	t.Run("Filtered by status", func(t *testing.T) {
		h, m := NewMock(t)
		m.orders.EXPECT().List(gomock.Any(), domain.OrderCommitted).Return([]domain.Order{{Reference: ref, Status: domain.OrderCommitted}}, nil)

		rec := serve(http.MethodGet, "/orders", "/orders?status=COMMITTED", "", h.ListOrders)

		require.Equal(t, http.StatusOK, rec.Code)
		var body []dto.OrderDTO
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Len(t, body, 1)
	})

	t.Run("All", func(t *testing.T) {
		h, m := NewMock(t)
		m.orders.EXPECT().List(gomock.Any(), domain.OrderStatus("")).Return(nil, nil)

		rec := serve(http.MethodGet, "/orders", "/orders", "", h.ListOrders)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("Unknown status", func(t *testing.T) {
		h, _ := NewMock(t)

		rec := serve(http.MethodGet, "/orders", "/orders?status=LOST", "", h.ListOrders)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestStaleOrdersHandler(t *testing.T) {
	group := int64(3)
	tests := []struct {
		name         string
		target       string
		prepareMock  func(m *mocks)
		expectedCode int
		expectedAge  string
	}{
		{
			name:   "Configured threshold",
			target: "/orders/stale",
			prepareMock: func(m *mocks) {
				m.scanner.EXPECT().Scan(gomock.Any(), now, time.Duration(0)).Return([]domain.Order{
					{Reference: ref, GroupID: &group, Status: domain.OrderCommitted, CreatedAt: now.Add(-13 * time.Hour)},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedAge:  "13h0m0s",
		},
		{
			name:   "Explicit threshold",
			target: "/orders/stale?threshold=1h",
			prepareMock: func(m *mocks) {
				m.scanner.EXPECT().Scan(gomock.Any(), now, time.Hour).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid threshold",
			target:       "/orders/stale?threshold=soon",
			prepareMock:  func(m *mocks) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Negative threshold",
			target:       "/orders/stale?threshold=-1h",
			prepareMock:  func(m *mocks) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Store failure",
			target: "/orders/stale",
			prepareMock: func(m *mocks) {
				m.scanner.EXPECT().Scan(gomock.Any(), now, time.Duration(0)).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := NewMock(t)
			tt.prepareMock(m)

			rec := serve(http.MethodGet, "/orders/stale", tt.target, "", h.StaleOrders)

			require.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedAge != "" {
				var body []dto.StaleOrderDTO
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				require.Len(t, body, 1)
				assert.Equal(t, tt.expectedAge, body[0].Age)
			}
		})
	}
}

func TestCancelApplicationsHandler(t *testing.T) {
	t.Run("Cleared", func(t *testing.T) {
		h, m := NewMock(t)
		m.pool.EXPECT().Cancel(gomock.Any(), ref).Return(nil)

		rec := serve(http.MethodDelete, "/orders/{ref}/applications", "/orders/"+ref+"/applications", "", h.CancelApplications)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Already committed", func(t *testing.T) {
		h, m := NewMock(t)
		m.pool.EXPECT().Cancel(gomock.Any(), ref).Return(domain.ErrOrderNotPending)

		rec := serve(http.MethodDelete, "/orders/{ref}/applications", "/orders/"+ref+"/applications", "", h.CancelApplications)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestGroupHandlers(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		h, m := NewMock(t)
		m.groups.EXPECT().Create(gomock.Any(), "alpha").Return(&domain.Group{ID: 1, Name: "alpha"}, nil)

		rec := serve(http.MethodPost, "/groups", "/groups", `{"name":"alpha"}`, h.CreateGroup)

		require.Equal(t, http.StatusCreated, rec.Code)
		var body dto.GroupDTO
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "alpha", body.Name)
	})

	t.Run("Create duplicate", func(t *testing.T) {
		h, m := NewMock(t)
		m.groups.EXPECT().Create(gomock.Any(), "alpha").Return(nil, domain.ErrGroupExists)

		rec := serve(http.MethodPost, "/groups", "/groups", `{"name":"alpha"}`, h.CreateGroup)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("List", func(t *testing.T) {
		h, m := NewMock(t)
		m.groups.EXPECT().List(gomock.Any()).Return([]domain.Group{{ID: 1, Name: "alpha", RatingAvg: 4.5, RatingCount: 2}}, nil)

		rec := serve(http.MethodGet, "/groups", "/groups", "", h.ListGroups)

		require.Equal(t, http.StatusOK, rec.Code)
		var body []dto.GroupDTO
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		require.Len(t, body, 1)
		assert.Equal(t, 4.5, body[0].RatingAvg)
	})

	t.Run("Delete missing", func(t *testing.T) {
		h, m := NewMock(t)
		m.groups.EXPECT().Delete(gomock.Any(), "ghost").Return(domain.ErrGroupNotFound)

		rec := serve(http.MethodDelete, "/groups/{name}", "/groups/ghost", "", h.DeleteGroup)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestWorkerHandlers(t *testing.T) {
	t.Run("Assign group", func(t *testing.T) {
		h, m := NewMock(t)
		m.workers.EXPECT().AssignGroup(gomock.Any(), int64(100), "alpha").Return(&domain.Group{ID: 1, Name: "alpha"}, nil)

		rec := serve(http.MethodPut, "/workers/{identity}/group", "/workers/100/group", `{"name":"alpha"}`, h.AssignGroup)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Invalid identity", func(t *testing.T) {
		h, _ := NewMock(t)

		rec := serve(http.MethodPut, "/workers/{identity}/group", "/workers/abc/group", `{"name":"alpha"}`, h.AssignGroup)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Clear group", func(t *testing.T) {
		h, m := NewMock(t)
		m.workers.EXPECT().ClearGroup(gomock.Any(), int64(100)).Return(nil)

		rec := serve(http.MethodDelete, "/workers/{identity}/group", "/workers/100/group", "", h.ClearGroup)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Remove unknown", func(t *testing.T) {
		h, m := NewMock(t)
		m.workers.EXPECT().Remove(gomock.Any(), int64(7)).Return(domain.ErrWorkerNotFound)

		rec := serve(http.MethodDelete, "/workers/{identity}", "/workers/7", "", h.RemoveWorker)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestBanHandlers(t *testing.T) {
	until := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Permanent ban without body", func(t *testing.T) {
		h, m := NewMock(t)
		m.access.EXPECT().Ban(gomock.Any(), int64(100), (*time.Time)(nil)).Return(nil)

		rec := serve(http.MethodPost, "/workers/{identity}/ban", "/workers/100/ban", "", h.Ban)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Timed ban", func(t *testing.T) {
		h, m := NewMock(t)
		m.access.EXPECT().Ban(gomock.Any(), int64(100), gomock.Any()).
			DoAndReturn(func(_ interface{}, _ int64, got *time.Time) error {
				require.NotNil(t, got)
				assert.True(t, got.Equal(until))
				return nil
			})

		rec := serve(http.MethodPost, "/workers/{identity}/ban", "/workers/100/ban", `{"until":"2030-01-01T00:00:00Z"}`, h.Ban)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Lift ban", func(t *testing.T) {
		h, m := NewMock(t)
		m.access.EXPECT().LiftBan(gomock.Any(), int64(100)).Return(nil)

		rec := serve(http.MethodDelete, "/workers/{identity}/ban", "/workers/100/ban", "", h.LiftBan)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Restrict in the past", func(t *testing.T) {
		h, m := NewMock(t)
		m.access.EXPECT().Restrict(gomock.Any(), int64(100), gomock.Any()).Return(domain.ErrInvalidRestriction)

		rec := serve(http.MethodPost, "/workers/{identity}/restriction", "/workers/100/restriction", `{"until":"2000-01-01T00:00:00Z"}`, h.Restrict)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Lift restriction", func(t *testing.T) {
		h, m := NewMock(t)
		m.access.EXPECT().LiftRestriction(gomock.Any(), int64(100)).Return(nil)

		rec := serve(http.MethodDelete, "/workers/{identity}/restriction", "/workers/100/restriction", "", h.LiftRestriction)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
