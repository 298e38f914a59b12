package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"quickbite/cart-svc/internal/domain"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the authoritative account service (cart, favorites,
// addresses) and the order service. The session token rides on every call.
type Client struct {
	AccountURL string
	OrdersURL  string
	Token      string
	HTTP       HTTPClient
}

func NewClient(accountURL, ordersURL, token string, httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{AccountURL: accountURL, OrdersURL: ordersURL, Token: token, HTTP: httpClient}
}

func (c *Client) do(ctx context.Context, method, url string, body, into interface{}) error {
	var payload *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewBuffer(data)
	} else {
		payload = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s returned %d", method, url, resp.StatusCode)
	}
	if into != nil {
		return json.NewDecoder(resp.Body).Decode(into)
	}
	return nil
}

func (c *Client) Fetch(ctx context.Context) ([]domain.RemoteCartEntry, error) {
	var entries []domain.RemoteCartEntry
	if err := c.do(ctx, http.MethodGet, c.AccountURL+"/api/cart", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) Add(ctx context.Context, itemID, quantity int, customizations domain.Customizations) error {
	if customizations == nil {
		customizations = domain.Customizations{}
	}
	body := map[string]interface{}{
		"menu_item_id":   itemID,
		"quantity":       quantity,
		"customizations": customizations,
	}
	return c.do(ctx, http.MethodPost, c.AccountURL+"/api/cart", body, nil)
}

func (c *Client) Remove(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, c.AccountURL+"/api/cart/"+id, nil, nil)
}

func (c *Client) Clear(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, c.AccountURL+"/api/cart", nil, nil)
}

// FavoritesClient narrows the client to the favorites endpoints so the cart
// and favorites engines are wired with distinct collaborators.
type FavoritesClient struct {
	*Client
}

func (c *Client) ForFavorites() *FavoritesClient {
	return &FavoritesClient{c}
}

func (c *FavoritesClient) Fetch(ctx context.Context) ([]domain.RemoteFavoriteEntry, error) {
	var entries []domain.RemoteFavoriteEntry
	if err := c.do(ctx, http.MethodGet, c.AccountURL+"/api/favorites", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *FavoritesClient) Add(ctx context.Context, itemID int) error {
	body := map[string]int{"menu_item_id": itemID}
	return c.do(ctx, http.MethodPost, c.AccountURL+"/api/favorites", body, nil)
}

func (c *FavoritesClient) Remove(ctx context.Context, itemID int) error {
	return c.do(ctx, http.MethodDelete, c.AccountURL+"/api/favorites/"+strconv.Itoa(itemID), nil, nil)
}

func (c *Client) Place(ctx context.Context, req domain.OrderRequest) (*domain.OrderReceipt, error) {
	var receipt domain.OrderReceipt
	if err := c.do(ctx, http.MethodPost, c.OrdersURL+"/api/orders", req, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (c *Client) Addresses(ctx context.Context) ([]domain.Address, error) {
	var addresses []domain.Address
	if err := c.do(ctx, http.MethodGet, c.AccountURL+"/api/addresses", nil, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}
