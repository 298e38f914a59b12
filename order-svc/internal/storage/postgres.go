package storage

import (
	"database/sql"
	"encoding/json"
	"time"

	"quickbite/order-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO orders (order_number, customer_id, restaurant_id, address_id,
			subtotal, delivery_fee, tax, discount, total, status,
			payment_method, payment_status, instructions, placed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`, order.OrderNumber, order.CustomerID, order.RestaurantID, order.AddressID,
		order.Subtotal, order.DeliveryFee, order.Tax, order.Discount, order.Total,
		order.Status, order.PaymentMethod, order.PaymentStatus, order.Instructions,
		order.PlacedAt).Scan(&order.ID); err != nil {
		return err
	}

	for _, item := range order.Items {
		customizations, err := json.Marshal(item.Customizations)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(`
			INSERT INTO order_items (order_id, menu_item_id, quantity, customizations, unit_price)
			VALUES ($1, $2, $3, $4, $5)
		`, order.ID, item.MenuItemID, item.Quantity, customizations, item.UnitPrice); err != nil {
			return err
		}
	}

	return tx.Commit()
}

const orderColumns = `
	id, order_number, customer_id, restaurant_id, COALESCE(address_id, ''),
	subtotal, delivery_fee, tax, discount, total, status,
	COALESCE(payment_method, ''), COALESCE(payment_status, ''),
	COALESCE(instructions, ''), placed_at, confirmed_at, delivered_at`

func scanOrder(row interface{ Scan(...interface{}) error }) (*domain.Order, error) {
	var order domain.Order
	if err := row.Scan(
		&order.ID, &order.OrderNumber, &order.CustomerID, &order.RestaurantID, &order.AddressID,
		&order.Subtotal, &order.DeliveryFee, &order.Tax, &order.Discount, &order.Total, &order.Status,
		&order.PaymentMethod, &order.PaymentStatus, &order.Instructions,
		&order.PlacedAt, &order.ConfirmedAt, &order.DeliveredAt,
	); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *PostgresRepository) GetOrder(orderID int) (*domain.Order, error) {
	order, err := scanOrder(r.DB.QueryRow(
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, orderID))
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(`
		SELECT oi.menu_item_id, COALESCE(mi.name, ''), oi.quantity, oi.customizations, oi.unit_price
		FROM order_items oi
		LEFT JOIN menu_items mi ON oi.menu_item_id = mi.id
		WHERE oi.order_id = $1
	`, orderID)
	if err != nil {
		return order, err
	}
	defer rows.Close()

	order.Items = []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		var raw []byte
		if err := rows.Scan(&item.MenuItemID, &item.Name, &item.Quantity, &raw, &item.UnitPrice); err != nil {
			continue
		}
		if err := json.Unmarshal(raw, &item.Customizations); err != nil {
			item.Customizations = domain.Customizations{}
		}
		order.Items = append(order.Items, item)
	}

	return order, nil
}

func (r *PostgresRepository) list(query string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			continue
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

func (r *PostgresRepository) ListByCustomer(customerID int) ([]domain.Order, error) {
	return r.list(`SELECT `+orderColumns+` FROM orders WHERE customer_id = $1 ORDER BY placed_at DESC`, customerID)
}

func (r *PostgresRepository) ListByRestaurant(restaurantID int, status domain.Status) ([]domain.Order, error) {
	if status == "" {
		return r.list(`SELECT `+orderColumns+` FROM orders WHERE restaurant_id = $1 ORDER BY placed_at DESC`, restaurantID)
	}
	return r.list(`SELECT `+orderColumns+` FROM orders WHERE restaurant_id = $1 AND status = $2 ORDER BY placed_at DESC`,
		restaurantID, status)
}

// UpdateStatus is guarded by the expected current status so a concurrent
// transition cannot be half-applied. COALESCE keeps already-set timestamps
// immutable.
func (r *PostgresRepository) UpdateStatus(orderID int, from, to domain.Status, confirmedAt, deliveredAt *time.Time) (int64, error) {
	result, err := r.DB.Exec(`
		UPDATE orders
		SET status = $1,
			confirmed_at = COALESCE(confirmed_at, $2),
			delivered_at = COALESCE(delivered_at, $3)
		WHERE id = $4 AND status = $5
	`, to, confirmedAt, deliveredAt, orderID, from)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec(`UPDATE orders SET qr_code = $1 WHERE id = $2`, qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID int) ([]byte, error) {
	var qr []byte
	if err := r.DB.QueryRow(`SELECT qr_code FROM orders WHERE id = $1`, orderID).Scan(&qr); err != nil {
		return nil, err
	}
	return qr, nil
}
