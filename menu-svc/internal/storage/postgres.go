package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"quickbite/menu-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) CreateRestaurant(rest *domain.Restaurant) error {
	return r.DB.QueryRow(
		"INSERT INTO restaurants (name, address, description, cuisine_type) VALUES ($1, $2, $3, $4) RETURNING id, created_at",
		rest.Name, rest.Address, rest.Description, rest.CuisineType,
	).Scan(&rest.ID, &rest.CreatedAt)
}

func (r *PostgresRepository) ListRestaurants() ([]domain.Restaurant, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, COALESCE(address, ''), COALESCE(description, ''), COALESCE(cuisine_type, ''), COALESCE(rating, 0), created_at
		FROM restaurants
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Address, &rest.Description, &rest.CuisineType, &rest.Rating, &rest.CreatedAt); err != nil {
			continue
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, nil
}

func (r *PostgresRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRow(`
		SELECT id, name, COALESCE(address, ''), COALESCE(description, ''), COALESCE(cuisine_type, ''), COALESCE(rating, 0), created_at
		FROM restaurants
		WHERE id = $1`, id).
		Scan(&rest.ID, &rest.Name, &rest.Address, &rest.Description, &rest.CuisineType, &rest.Rating, &rest.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) UpdateRestaurant(rest *domain.Restaurant) error {
	return r.DB.QueryRow(
		"UPDATE restaurants SET name=$1, address=$2, description=$3, cuisine_type=$4 WHERE id=$5 RETURNING id, name, address, description, COALESCE(cuisine_type, ''), COALESCE(rating, 0), created_at",
		rest.Name, rest.Address, rest.Description, rest.CuisineType, rest.ID).
		Scan(&rest.ID, &rest.Name, &rest.Address, &rest.Description, &rest.CuisineType, &rest.Rating, &rest.CreatedAt)
}

func (r *PostgresRepository) DeleteRestaurant(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM restaurants WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateMenuItem(item *domain.MenuItem) error {
	groups, err := json.Marshal(item.CustomizationGroups)
	if err != nil {
		return err
	}
	return r.DB.QueryRow(`
		INSERT INTO menu_items (restaurant_id, category, name, description, price, dietary_type, customization_groups, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		item.RestaurantID, item.Category, item.Name, item.Description, item.Price,
		item.DietaryType, groups, item.IsAvailable).
		Scan(&item.ID, &item.CreatedAt)
}

const menuItemColumns = `
	id, restaurant_id, COALESCE(category, ''), name, COALESCE(description, ''),
	price, COALESCE(dietary_type, ''), COALESCE(customization_groups, '[]'), is_available, created_at`

func scanMenuItem(row interface{ Scan(...interface{}) error }) (*domain.MenuItem, error) {
	var item domain.MenuItem
	var groups []byte
	if err := row.Scan(&item.ID, &item.RestaurantID, &item.Category, &item.Name, &item.Description,
		&item.Price, &item.DietaryType, &groups, &item.IsAvailable, &item.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(groups, &item.CustomizationGroups); err != nil {
		item.CustomizationGroups = []domain.CustomizationGroup{}
	}
	return &item, nil
}

func (r *PostgresRepository) ListMenuItems(restaurantID int) ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT `+menuItemColumns+`
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY category, name`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			continue
		}
		items = append(items, *item)
	}
	return items, nil
}

func (r *PostgresRepository) GetMenuItem(restaurantID, itemID int) (*domain.MenuItem, error) {
	return scanMenuItem(r.DB.QueryRow(
		`SELECT `+menuItemColumns+` FROM menu_items WHERE id = $1 AND restaurant_id = $2`,
		itemID, restaurantID))
}

func (r *PostgresRepository) UpdateMenuItem(item *domain.MenuItem) error {
	groups, err := json.Marshal(item.CustomizationGroups)
	if err != nil {
		return err
	}
	_, err = r.DB.Exec(`
		UPDATE menu_items
		SET category=$1, name=$2, description=$3, price=$4, dietary_type=$5, customization_groups=$6
		WHERE id=$7 AND restaurant_id=$8`,
		item.Category, item.Name, item.Description, item.Price, item.DietaryType, groups,
		item.ID, item.RestaurantID)
	return err
}

func (r *PostgresRepository) DeleteMenuItem(restaurantID, itemID int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM menu_items WHERE id=$1 AND restaurant_id=$2", itemID, restaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) SetAvailability(restaurantID, itemID int, available bool) error {
	_, err := r.DB.Exec("UPDATE menu_items SET is_available = $1 WHERE id = $2 AND restaurant_id = $3",
		available, itemID, restaurantID)
	return err
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		"ALTER TABLE IF EXISTS restaurants ADD COLUMN IF NOT EXISTS cuisine_type TEXT",
		"ALTER TABLE IF EXISTS menu_items ADD COLUMN IF NOT EXISTS customization_groups JSONB",
		"ALTER TABLE IF EXISTS menu_items ADD COLUMN IF NOT EXISTS dietary_type TEXT",
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
