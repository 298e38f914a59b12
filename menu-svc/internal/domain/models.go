package domain

import "time"

type Restaurant struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	CuisineType string    `json:"cuisine_type"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
}

// Option is one selectable choice inside a customization group. Price is the
// delta added on top of the item's base price when the option is chosen.
type Option struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

const (
	GroupSingle = "single"
	GroupMulti  = "multi"
)

// CustomizationGroup declares what a customer may pick for an item: exactly
// one option for a single group, any subset for a multi group.
type CustomizationGroup struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Options []Option `json:"options"`
}

type MenuItem struct {
	ID                  int                  `json:"id"`
	RestaurantID        int                  `json:"restaurant_id"`
	Category            string               `json:"category"`
	Name                string               `json:"name"`
	Description         string               `json:"description"`
	Price               float64              `json:"price"`
	DietaryType         string               `json:"dietary_type"`
	CustomizationGroups []CustomizationGroup `json:"customization_groups"`
	IsAvailable         bool                 `json:"is_available"`
	CreatedAt           time.Time            `json:"created_at"`
}
