package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"quickbite/activity-svc/internal/service"
)

type Handler struct {
	Store service.StoreInterface
}

func NewHandler(store service.StoreInterface) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/sessions/{sessionId}/badge", h.getSessionBadge).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/order-stats", h.getOrderStats).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "activity-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// getSessionBadge returns how often the session's collections changed, which
// the UI uses to refresh its cart badge across devices.
func (h *Handler) getSessionBadge(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	activity, err := h.Store.SessionActivity(sessionID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"session_id":       sessionID,
		"cart_updates":     counter(activity, "cartUpdated"),
		"favorite_updates": counter(activity, "favoritesUpdated"),
	}
	if last, ok := activity["last_updated"]; ok {
		response["last_updated"] = last
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) getOrderStats(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["id"])

	day := r.URL.Query().Get("date")
	if day == "" {
		day = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", day); err != nil {
		http.Error(w, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	stats, err := h.Store.OrderStats(restaurantID, day)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	counts := map[string]int{}
	for status, raw := range stats {
		if n, err := strconv.Atoi(raw); err == nil {
			counts[status] = n
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"restaurant_id": restaurantID,
		"date":          day,
		"counts":        counts,
	})
}

func counter(activity map[string]string, field string) int {
	n, _ := strconv.Atoi(activity[field])
	return n
}
