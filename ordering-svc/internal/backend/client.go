package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"smartqr-ordering/ordering-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	BaseURL    string
	AdminToken string
}

// Client talks to the restaurant backend. Every method decodes its response
// exactly once through the matching normalizer in decode.go.
type Client struct {
	config Config
	client HTTPClient
}

func NewClient(config Config, client HTTPClient) *Client {
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	return &Client{
		config: config,
		client: client,
	}
}

func (c *Client) FetchMenu(ctx context.Context, slug string) ([]domain.MenuItem, error) {
	body, err := c.getJSON(ctx, http.MethodGet, customerPath(slug, "menu"), nil, accessPublic)
	if err != nil {
		return nil, err
	}
	return decodeMenu(body)
}

func (c *Client) ResolveTableToken(ctx context.Context, slug, token string) (string, error) {
	path := customerPath(slug, "table") + "?t=" + url.QueryEscape(token)
	body, err := c.getJSON(ctx, http.MethodGet, path, nil, accessPublic)
	if err != nil {
		return "", err
	}
	return decodeTableNumber(body)
}

func (c *Client) CurrentTotal(ctx context.Context, slug, tableNumber string) (decimal.Decimal, error) {
	path := adminPath(slug, "tables/current-total") + "?table_number=" + url.QueryEscape(tableNumber)
	body, err := c.getJSON(ctx, http.MethodGet, path, nil, accessTotal)
	if err != nil {
		return decimal.Zero, err
	}
	return decodeTotal(body)
}

func (c *Client) SubmitOrder(ctx context.Context, slug string, payload domain.OrderPayload) (*domain.OrderConfirmation, error) {
	body, err := c.getJSON(ctx, http.MethodPost, customerPath(slug, "orders"), payload, accessPublic)
	if err != nil {
		return nil, err
	}
	return decodeOrderConfirmation(body)
}

func (c *Client) ListTables(ctx context.Context, slug string) ([]domain.TableRow, error) {
	body, err := c.getJSON(ctx, http.MethodGet, adminPath(slug, "tables"), nil, accessStaff)
	if err != nil {
		return nil, err
	}
	return decodeTables(body)
}

// ListOrders returns the restaurant's orders, narrowed to one table when
// tableNumber is set.
func (c *Client) ListOrders(ctx context.Context, slug, tableNumber string) ([]domain.Order, error) {
	path := adminPath(slug, "orders")
	if tableNumber != "" {
		path += "?table_number=" + url.QueryEscape(tableNumber)
	}
	body, err := c.getJSON(ctx, http.MethodGet, path, nil, accessStaff)
	if err != nil {
		return nil, err
	}
	orders, err := decodeOrders(body)
	if err != nil {
		return nil, err
	}
	if tableNumber == "" {
		return orders, nil
	}

	// Older backends ignore the filter.
	filtered := orders[:0]
	for _, order := range orders {
		if order.TableNumber == "" || order.TableNumber == tableNumber {
			filtered = append(filtered, order)
		}
	}
	return filtered, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, slug string, orderID int, status string) error {
	payload := map[string]interface{}{
		"order_id": orderID,
		"status":   status,
	}
	_, err := c.getJSON(ctx, http.MethodPost, adminPath(slug, "orders/status"), payload, accessStaff)
	return err
}

func (c *Client) UpdatePaymentStatus(ctx context.Context, slug string, orderID int, status, method string) error {
	payload := map[string]interface{}{
		"order_id":       orderID,
		"payment_status": status,
	}
	if method != "" {
		payload["payment_method"] = method
	}
	_, err := c.getJSON(ctx, http.MethodPost, adminPath(slug, "orders/payment"), payload, accessStaff)
	return err
}

func (c *Client) FreeTable(ctx context.Context, slug, tableNumber string) error {
	payload := map[string]string{"table_number": tableNumber}
	_, err := c.getJSON(ctx, http.MethodPost, adminPath(slug, "tables/free"), payload, accessStaff)
	return err
}

func customerPath(slug, resource string) string {
	return "/c/" + url.PathEscape(slug) + "/api/" + resource
}

func adminPath(slug, resource string) string {
	return "/a/" + url.PathEscape(slug) + "/api/" + resource
}

// getJSON performs the request and returns the raw JSON body of a successful
// response. Non-2xx statuses and {"ok": false} bodies become *APIError.
func (c *Client) getJSON(ctx context.Context, method, path string, payload interface{}, level access) ([]byte, error) {
	target := c.config.BaseURL + path

	token, err := c.adminToken(ctx, level)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request for %s: %w", target, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("create request for %s: %w", target, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("X-Admin-Token", token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, target, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", target, err)
	}

	isJSON := strings.Contains(resp.Header.Get("Content-Type"), "application/json")
	success := resp.StatusCode >= 200 && resp.StatusCode < 300

	if !isJSON {
		if !success {
			return nil, &APIError{Status: resp.StatusCode, Message: snippet(body), URL: target}
		}
		return nil, fmt.Errorf("%w: expected JSON from %s, got %d %s: %s",
			ErrUnexpectedResponse, target, resp.StatusCode, resp.Header.Get("Content-Type"), snippet(body))
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: invalid JSON from %s", ErrUnexpectedResponse, target)
	}

	if !success || rejected(body) {
		return nil, &APIError{Status: resp.StatusCode, Message: errorMessage(body), URL: target}
	}

	return body, nil
}

func snippet(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) > 200 {
		text = text[:200]
	}
	return text
}
