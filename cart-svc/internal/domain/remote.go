package domain

import "time"

// Shapes returned by the authoritative cart/favorites service. Menu item data
// arrives nested under its category and restaurant; the sync engine flattens
// it into CartLine / FavoriteEntry before storing locally.

type RemoteRestaurant struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type RemoteCategory struct {
	ID         int              `json:"id"`
	Name       string           `json:"name"`
	Restaurant RemoteRestaurant `json:"restaurant"`
}

type RemoteMenuItem struct {
	ID                  int                  `json:"id"`
	Name                string               `json:"name"`
	Description         string               `json:"description"`
	Price               float64              `json:"price"`
	DietaryType         string               `json:"dietary_type"`
	Category            RemoteCategory       `json:"category"`
	CustomizationGroups []CustomizationGroup `json:"customization_groups"`
}

type RemoteCartEntry struct {
	ID             string         `json:"id"`
	Quantity       int            `json:"quantity"`
	Customizations Customizations `json:"customizations"`
	Item           RemoteMenuItem `json:"item"`
	AddedAt        time.Time      `json:"added_at"`
}

type RemoteFavoriteEntry struct {
	ID      string         `json:"id"`
	Item    RemoteMenuItem `json:"item"`
	AddedAt time.Time      `json:"added_at"`
}

// FlattenCartEntry translates the nested remote shape into a local CartLine.
func FlattenCartEntry(e RemoteCartEntry) CartLine {
	line := CartLine{
		ID:             e.ID,
		ItemID:         e.Item.ID,
		RestaurantID:   e.Item.Category.Restaurant.ID,
		RestaurantName: e.Item.Category.Restaurant.Name,
		Name:           e.Item.Name,
		UnitPrice:      e.Item.Price,
		Customizations: e.Customizations,
		Quantity:       e.Quantity,
		AddedAt:        e.AddedAt,
	}
	if line.Customizations == nil {
		line.Customizations = Customizations{}
	}
	line.RecalcPrices()
	return line
}

// FlattenFavorite translates the nested remote shape into a local FavoriteEntry.
func FlattenFavorite(e RemoteFavoriteEntry) FavoriteEntry {
	return FavoriteEntry{
		ID:             e.ID,
		ItemID:         e.Item.ID,
		RestaurantID:   e.Item.Category.Restaurant.ID,
		RestaurantName: e.Item.Category.Restaurant.Name,
		Name:           e.Item.Name,
		Price:          e.Item.Price,
		Description:    e.Item.Description,
		Category:       e.Item.Category.Name,
		DietaryType:    e.Item.DietaryType,
		Customizations: e.Item.CustomizationGroups,
		AddedAt:        e.AddedAt,
	}
}
