package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "quickbite/cart-svc/internal/api/http"
	"quickbite/cart-svc/internal/domain"
	"quickbite/cart-svc/internal/mocks"
	"quickbite/cart-svc/internal/service"
	"quickbite/cart-svc/internal/store"
)

type handlerFixture struct {
	remote    *mocks.RemoteCart
	favRemote *mocks.RemoteFavorites
	orders    *mocks.OrderPlacer
	addresses *mocks.AddressBook
	cart      *service.CartService
	router    *mux.Router
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	remote := mocks.NewRemoteCart(t)
	favRemote := mocks.NewRemoteFavorites(t)
	orders := mocks.NewOrderPlacer(t)
	addresses := mocks.NewAddressBook(t)

	st := store.NewMemoryStore(store.NewBus())
	cart := service.NewCartService(st, remote)
	favorites := service.NewFavoritesService(st, favRemote)
	composer := service.NewComposer(cart, orders, addresses)

	handler := httpapi.NewHandler(cart, favorites, composer)
	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	return &handlerFixture{
		remote:    remote,
		favRemote: favRemote,
		orders:    orders,
		addresses: addresses,
		cart:      cart,
		router:    router,
	}
}

func (f *handlerFixture) request(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func marshal(t *testing.T, v interface{}) string {
	data, err := json.Marshal(v)
	assert.NoError(t, err)
	return string(data)
}

func TestAddToCartHandler_GuestStaysLocal(t *testing.T) {
	f := newHandlerFixture(t)

	w := f.request(t, "POST", "/api/cart", marshal(t, margherita()), "")
	assert.Equal(t, http.StatusOK, w.Code)

	var lines []domain.CartLine
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &lines))
	assert.Len(t, lines, 1)
	assert.Equal(t, 500.0, lines[0].TotalPrice)
	f.remote.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAddToCartHandler_AuthedMirrorsRemote(t *testing.T) {
	f := newHandlerFixture(t)
	f.remote.On("Add", mock.Anything, 7, 1, mock.Anything).Return(nil).Once()

	w := f.request(t, "POST", "/api/cart", marshal(t, margherita()), "session-token")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAddToCartHandler_RemoteFailureStillSucceeds(t *testing.T) {
	f := newHandlerFixture(t)
	f.remote.On("Add", mock.Anything, 7, 1, mock.Anything).Return(errors.New("down")).Once()

	w := f.request(t, "POST", "/api/cart", marshal(t, margherita()), "session-token")
	assert.Equal(t, http.StatusOK, w.Code)

	var lines []domain.CartLine
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &lines))
	assert.Len(t, lines, 1)
}

func TestAddToCartHandler_InvalidJSON(t *testing.T) {
	f := newHandlerFixture(t)
	w := f.request(t, "POST", "/api/cart", "{invalid}", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCartItemHandler(t *testing.T) {
	f := newHandlerFixture(t)

	w := f.request(t, "POST", "/api/cart", marshal(t, margherita()), "")
	assert.Equal(t, http.StatusOK, w.Code)
	var lines []domain.CartLine
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &lines))

	w = f.request(t, "PUT", "/api/cart/"+lines[0].ID, `{"quantity":3}`, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &lines))
	assert.Equal(t, 3, lines[0].Quantity)
}

func TestRemoveFromCartHandler(t *testing.T) {
	f := newHandlerFixture(t)

	w := f.request(t, "POST", "/api/cart", marshal(t, margherita()), "")
	var lines []domain.CartLine
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &lines))

	w = f.request(t, "DELETE", "/api/cart/"+lines[0].ID, "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &lines))
	assert.Empty(t, lines)
}

func TestFavoritesHandlers(t *testing.T) {
	f := newHandlerFixture(t)

	w := f.request(t, "POST", "/api/favorites", marshal(t, favoriteMargherita()), "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.request(t, "GET", "/api/favorites", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var entries []domain.FavoriteEntry
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	assert.Len(t, entries, 1)

	w = f.request(t, "DELETE", "/api/favorites/7", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	assert.Empty(t, entries)
}

func TestCheckoutHandler_AddressRequired(t *testing.T) {
	f := newHandlerFixture(t)
	f.addresses.On("Addresses", mock.Anything).Return([]domain.Address{}, nil).Once()

	w := f.request(t, "POST", "/api/checkout", `{"payment_method":"cod"}`, "session-token")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSyncHandler_RehydratesCartAndFavorites(t *testing.T) {
	f := newHandlerFixture(t)

	f.remote.On("Fetch", mock.Anything).Return([]domain.RemoteCartEntry{remoteMargherita()}, nil).Once()
	f.favRemote.On("Fetch", mock.Anything).Return([]domain.RemoteFavoriteEntry{}, nil).Once()

	w := f.request(t, "POST", "/api/cart/sync", "", "session-token")
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["cart"])
	assert.Equal(t, "ok", body["favorites"])
	assert.Len(t, f.cart.Cart(), 1)
}

func TestCheckoutHandler_PartialFailure(t *testing.T) {
	f := newHandlerFixture(t)

	f.request(t, "POST", "/api/cart", marshal(t, margherita()), "")
	f.request(t, "POST", "/api/cart", marshal(t, pastaLine()), "")

	f.remote.On("Fetch", mock.Anything).Return(nil, errors.New("offline")).Once()
	f.addresses.On("Addresses", mock.Anything).Return(defaultAddress(), nil).Once()
	f.orders.On("Place", mock.Anything, requestForRestaurant(1)).
		Return(&domain.OrderReceipt{ID: 1, RestaurantID: 1}, nil).Once()
	f.orders.On("Place", mock.Anything, requestForRestaurant(2)).
		Return(nil, errors.New("kitchen closed")).Once()

	w := f.request(t, "POST", "/api/checkout", `{"payment_method":"cod"}`, "session-token")
	assert.Equal(t, http.StatusBadGateway, w.Code)

	var body struct {
		Error  string                `json:"error"`
		Placed []domain.OrderReceipt `json:"placed"`
		Failed []domain.GroupFailure `json:"failed"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Placed, 1)
	assert.Len(t, body.Failed, 1)

	assert.Len(t, f.cart.Cart(), 2, "cart retained for retry")
}

func TestCheckoutHandler_Success(t *testing.T) {
	f := newHandlerFixture(t)

	f.request(t, "POST", "/api/cart", marshal(t, margherita()), "")

	f.remote.On("Fetch", mock.Anything).Return(nil, errors.New("offline")).Once()
	f.addresses.On("Addresses", mock.Anything).Return(defaultAddress(), nil).Once()
	f.orders.On("Place", mock.Anything, mock.AnythingOfType("domain.OrderRequest")).
		Return(&domain.OrderReceipt{ID: 9, OrderNumber: "QB-9"}, nil).Once()
	f.remote.On("Clear", mock.Anything).Return(nil).Once()

	w := f.request(t, "POST", "/api/checkout", `{"payment_method":"card"}`, "session-token")
	assert.Equal(t, http.StatusCreated, w.Code)

	var result domain.CheckoutResult
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Len(t, result.Placed, 1)
	assert.Empty(t, f.cart.Cart())
}
