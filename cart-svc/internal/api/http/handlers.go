package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"quickbite/cart-svc/internal/domain"
	"quickbite/cart-svc/internal/service"
)

type Handler struct {
	Cart      service.CartServiceInterface
	Favorites service.FavoritesServiceInterface
	Composer  service.ComposerInterface
}

func NewHandler(cart service.CartServiceInterface, favorites service.FavoritesServiceInterface, composer service.ComposerInterface) *Handler {
	return &Handler{
		Cart:      cart,
		Favorites: favorites,
		Composer:  composer,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.addToCart).Methods("POST")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/{id}", h.updateCartItem).Methods("PUT")
	r.HandleFunc("/api/cart/{id}", h.removeFromCart).Methods("DELETE")

	r.HandleFunc("/api/favorites", h.getFavorites).Methods("GET")
	r.HandleFunc("/api/favorites", h.addToFavorites).Methods("POST")
	r.HandleFunc("/api/favorites", h.clearFavorites).Methods("DELETE")
	r.HandleFunc("/api/favorites/{itemId}", h.removeFromFavorites).Methods("DELETE")

	r.HandleFunc("/api/cart/sync", h.rehydrate).Methods("POST")
	r.HandleFunc("/api/checkout", h.checkout).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "cart-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// syncRemote reports whether mutations should be mirrored to the remote
// service: only authenticated sessions have a remote cart to mirror to.
func syncRemote(r *http.Request) bool {
	return r.Header.Get("Authorization") != ""
}

// advisoryOnly strips an advisory sync failure out of err: the local
// mutation committed, so the request still succeeds.
func advisoryOnly(err error) error {
	var syncErr *service.SyncError
	if errors.As(err, &syncErr) {
		return nil
	}
	return err
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Cart.Cart())
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var line domain.CartLine
	if err := json.NewDecoder(r.Body).Decode(&line); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	lines, err := h.Cart.AddToCart(r.Context(), line, syncRemote(r))
	if err := advisoryOnly(err); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lines)
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var patch service.CartPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	lines, err := h.Cart.UpdateCartItem(id, patch)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lines)
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	lines, err := h.Cart.RemoveFromCart(r.Context(), id, syncRemote(r))
	if err := advisoryOnly(err); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lines)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := advisoryOnly(h.Cart.ClearCart(r.Context(), syncRemote(r))); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getFavorites(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Favorites.Favorites())
}

func (h *Handler) addToFavorites(w http.ResponseWriter, r *http.Request) {
	var entry domain.FavoriteEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	entries, err := h.Favorites.AddToFavorites(r.Context(), entry, syncRemote(r))
	if err := advisoryOnly(err); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

func (h *Handler) removeFromFavorites(w http.ResponseWriter, r *http.Request) {
	itemID, _ := strconv.Atoi(mux.Vars(r)["itemId"])
	entries, err := h.Favorites.RemoveFromFavorites(r.Context(), itemID, syncRemote(r))
	if err := advisoryOnly(err); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

func (h *Handler) clearFavorites(w http.ResponseWriter, r *http.Request) {
	if err := advisoryOnly(h.Favorites.ClearFavorites(r.Context(), syncRemote(r))); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// rehydrate overwrites the local collections with the remote authoritative
// data. Called once at session start; a failed fetch keeps the local data.
func (h *Handler) rehydrate(w http.ResponseWriter, r *http.Request) {
	result := map[string]string{"cart": "ok", "favorites": "ok"}
	status := http.StatusOK
	if err := h.Cart.Rehydrate(r.Context()); err != nil {
		result["cart"] = err.Error()
		status = http.StatusBadGateway
	}
	if err := h.Favorites.Rehydrate(r.Context()); err != nil {
		result["favorites"] = err.Error()
		status = http.StatusBadGateway
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(result)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var opts service.CheckoutOptions
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.Composer.Checkout(r.Context(), opts)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAddressRequired), errors.Is(err, service.ErrEmptyCart):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrPlacementFailure):
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"error":  err.Error(),
				"placed": result.Placed,
				"failed": result.Failed,
			})
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}
