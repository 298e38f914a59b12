package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "quickbite/order-svc/internal/api/http"
	"quickbite/order-svc/internal/domain"
	"quickbite/order-svc/internal/mocks"
	"quickbite/order-svc/internal/service"
)

type handlerFixture struct {
	repo   *mocks.OrderRepository
	cache  *mocks.StatusCache
	router http.Handler
}

func newHandlerFixture(t *testing.T, withCache bool) *handlerFixture {
	repo := mocks.NewOrderRepository(t)
	var cache *mocks.StatusCache
	var svcCache service.StatusCache
	if withCache {
		cache = mocks.NewStatusCache(t)
		svcCache = cache
	}
	svc := service.NewOrderService(repo, nil, nil, nil)
	return &handlerFixture{
		repo:   repo,
		cache:  cache,
		router: httpapi.NewRouter(httpapi.NewHandler(svc, svcCache)),
	}
}

func (f *handlerFixture) do(method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)
	return recorder
}

func restaurantHeaders(restaurantID string) map[string]string {
	return map[string]string{"X-Actor-Role": "restaurant", "X-Restaurant-ID": restaurantID}
}

func TestHandler_CreateOrder_ReturnsPricedOrder(t *testing.T) {
	fixture := newHandlerFixture(t, false)
	fixture.repo.On("CreateOrder", mock.AnythingOfType("*domain.Order")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*domain.Order).ID = 42
		}).Return(nil).Once()

	payload := map[string]interface{}{
		"restaurant_id": 2,
		"address_id":    "addr-1",
		"items": []map[string]interface{}{
			{"menu_item_id": 7, "quantity": 2, "unit_price": 350},
		},
	}
	resp := fixture.do("POST", "/api/orders", payload, map[string]string{"X-Customer-ID": "11"})
	assert.Equal(t, http.StatusCreated, resp.Code)

	var created domain.Order
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.Equal(t, 42, created.ID)
	assert.Equal(t, 11, created.CustomerID)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, 700.0, created.Subtotal)
	assert.Equal(t, "/api/orders/42/qrcode", created.TrackingQRLink)
}

func TestHandler_CreateOrder_RejectsEmptyOrder(t *testing.T) {
	fixture := newHandlerFixture(t, false)

	resp := fixture.do("POST", "/api/orders", map[string]interface{}{"restaurant_id": 2}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandler_GetOrder_NotFound(t *testing.T) {
	fixture := newHandlerFixture(t, false)
	fixture.repo.On("GetOrder", 99).Return(nil, errors.New("sql: no rows in result set")).Once()

	resp := fixture.do("GET", "/api/orders/99", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandler_GetOrderStatus_PrefersCache(t *testing.T) {
	fixture := newHandlerFixture(t, true)
	fixture.cache.On("GetStatus", mock.Anything, 42).Return(domain.StatusPreparing, nil).Once()

	resp := fixture.do("GET", "/api/orders/42/status", nil, nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"preparing"}`, resp.Body.String())
	fixture.repo.AssertNotCalled(t, "GetOrder", mock.Anything)
}

func TestHandler_GetOrderStatus_FallsBackToDatabase(t *testing.T) {
	fixture := newHandlerFixture(t, true)
	fixture.cache.On("GetStatus", mock.Anything, 42).Return(domain.Status(""), errors.New("redis: nil")).Once()
	fixture.repo.On("GetOrder", 42).Return(&domain.Order{ID: 42, Status: domain.StatusConfirmed}, nil).Once()

	resp := fixture.do("GET", "/api/orders/42/status", nil, nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"confirmed"}`, resp.Body.String())
}

func TestHandler_UpdateStatus_CustomerGetsForbidden(t *testing.T) {
	fixture := newHandlerFixture(t, false)
	fixture.repo.On("GetOrder", 42).Return(&domain.Order{ID: 42, RestaurantID: 2, Status: domain.StatusPending}, nil).Once()

	resp := fixture.do("PUT", "/api/orders/42/status",
		map[string]string{"status": "confirmed"},
		map[string]string{"X-Actor-Role": "customer", "X-Customer-ID": "11"})
	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestHandler_UpdateStatus_ForeignRestaurantGetsForbidden(t *testing.T) {
	fixture := newHandlerFixture(t, false)
	fixture.repo.On("GetOrder", 42).Return(&domain.Order{ID: 42, RestaurantID: 2, Status: domain.StatusPending}, nil).Once()

	resp := fixture.do("PUT", "/api/orders/42/status",
		map[string]string{"status": "confirmed"}, restaurantHeaders("3"))
	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestHandler_UpdateStatus_IllegalTransitionGetsConflict(t *testing.T) {
	fixture := newHandlerFixture(t, false)
	fixture.repo.On("GetOrder", 42).Return(&domain.Order{ID: 42, RestaurantID: 2, Status: domain.StatusDelivered}, nil).Once()

	resp := fixture.do("PUT", "/api/orders/42/status",
		map[string]string{"status": "pending"}, restaurantHeaders("2"))
	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Contains(t, resp.Body.String(), "already delivered")
}

func TestHandler_UpdateStatus_MissingOrderGets404(t *testing.T) {
	fixture := newHandlerFixture(t, false)
	fixture.repo.On("GetOrder", 99).Return(nil, errors.New("sql: no rows in result set")).Once()

	resp := fixture.do("PUT", "/api/orders/99/status",
		map[string]string{"status": "confirmed"}, restaurantHeaders("2"))
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandler_UpdateStatus_AcceptedTransitionEchoesOrder(t *testing.T) {
	fixture := newHandlerFixture(t, false)
	fixture.repo.On("GetOrder", 42).Return(&domain.Order{ID: 42, RestaurantID: 2, Status: domain.StatusPending}, nil).Once()
	fixture.repo.On("UpdateStatus", 42, domain.StatusPending, domain.StatusConfirmed,
		mock.AnythingOfType("*time.Time"), (*time.Time)(nil)).Return(int64(1), nil).Once()

	resp := fixture.do("PUT", "/api/orders/42/status",
		map[string]string{"status": "confirmed"}, restaurantHeaders("2"))
	assert.Equal(t, http.StatusOK, resp.Code)

	var updated domain.Order
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &updated))
	assert.Equal(t, domain.StatusConfirmed, updated.Status)
	assert.NotNil(t, updated.ConfirmedAt)
	assert.WithinDuration(t, time.Now(), *updated.ConfirmedAt, 5*time.Second)
}

func TestHandler_ListOrders_BranchesOnRestaurantFilter(t *testing.T) {
	fixture := newHandlerFixture(t, false)
	fixture.repo.On("ListByRestaurant", 2, domain.StatusPending).Return([]domain.Order{{ID: 1}, {ID: 2}}, nil).Once()

	resp := fixture.do("GET", "/api/orders?restaurant_id=2&status=pending", nil, nil)
	assert.Equal(t, http.StatusOK, resp.Code)

	var orders []domain.Order
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &orders))
	assert.Len(t, orders, 2)
}

func TestHandler_ListOrders_DefaultsToAuthenticatedCustomer(t *testing.T) {
	fixture := newHandlerFixture(t, false)
	fixture.repo.On("ListByCustomer", 11).Return([]domain.Order{{ID: 7}}, nil).Once()

	resp := fixture.do("GET", "/api/orders", nil, map[string]string{"X-Customer-ID": "11"})
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestHandler_GetQRCode_ServesPNG(t *testing.T) {
	fixture := newHandlerFixture(t, false)
	fixture.repo.On("GetQRCode", 42).Return([]byte("png-bytes"), nil).Once()

	resp := fixture.do("GET", "/api/orders/42/qrcode", nil, nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "image/png", resp.Header().Get("Content-Type"))
	assert.Equal(t, "png-bytes", resp.Body.String())
}
