package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	httpapi "quickbite/activity-svc/internal/api/http"
	"quickbite/activity-svc/internal/mocks"
)

func get(t *testing.T, store *mocks.StoreInterface, path string) *httptest.ResponseRecorder {
	t.Helper()
	router := httpapi.NewRouter(httpapi.NewHandler(store))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", path, nil))
	return recorder
}

func TestHandler_SessionBadge(t *testing.T) {
	store := mocks.NewStoreInterface(t)
	store.On("SessionActivity", "sess-1").Return(map[string]string{
		"cartUpdated":      "3",
		"favoritesUpdated": "1",
		"last_updated":     "1756555200",
	}, nil).Once()

	resp := get(t, store, "/api/sessions/sess-1/badge")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{
		"session_id": "sess-1",
		"cart_updates": 3,
		"favorite_updates": 1,
		"last_updated": "1756555200"
	}`, resp.Body.String())
}

func TestHandler_SessionBadge_UnknownSessionCountsZero(t *testing.T) {
	store := mocks.NewStoreInterface(t)
	store.On("SessionActivity", "ghost").Return(map[string]string{}, nil).Once()

	resp := get(t, store, "/api/sessions/ghost/badge")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"session_id":"ghost","cart_updates":0,"favorite_updates":0}`, resp.Body.String())
}

func TestHandler_OrderStats_ForDate(t *testing.T) {
	store := mocks.NewStoreInterface(t)
	store.On("OrderStats", 2, "2026-08-29").Return(map[string]string{
		"confirmed": "5",
		"delivered": "4",
		"cancelled": "1",
	}, nil).Once()

	resp := get(t, store, "/api/restaurants/2/order-stats?date=2026-08-29")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{
		"restaurant_id": 2,
		"date": "2026-08-29",
		"counts": {"confirmed": 5, "delivered": 4, "cancelled": 1}
	}`, resp.Body.String())
}

func TestHandler_OrderStats_RejectsMalformedDate(t *testing.T) {
	store := mocks.NewStoreInterface(t)

	resp := get(t, store, "/api/restaurants/2/order-stats?date=yesterday")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
