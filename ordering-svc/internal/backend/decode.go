package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"smartqr-ordering/ordering-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// UnknownOrderNumber is reported when the backend accepted an order without
// echoing its number.
const UnknownOrderNumber = "unknown"

type object map[string]json.RawMessage

func parseObject(raw []byte) (object, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}
	var obj object
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, false
	}
	return obj, true
}

func parseArray(raw []byte) ([]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}
	var arr []json.RawMessage
	if err := json.Unmarshal(trimmed, &arr); err != nil {
		return nil, false
	}
	return arr, true
}

// layers returns the "data" object of an envelope followed by the envelope
// itself, the lookup order every endpoint uses.
func layers(body []byte) []object {
	top, ok := parseObject(body)
	if !ok {
		return nil
	}
	var out []object
	if data, ok := parseObject(top["data"]); ok {
		out = append(out, data)
	}
	return append(out, top)
}

// firstValue tries each key against every layer before moving to the next key.
func firstValue(objs []object, keys ...string) json.RawMessage {
	for _, key := range keys {
		for _, obj := range objs {
			raw, ok := obj[key]
			if !ok || isNull(raw) {
				continue
			}
			return raw
		}
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || string(trimmed) == "null"
}

// scalarString accepts a JSON string or number.
func scalarString(raw json.RawMessage) (string, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "", false
	}
	switch c := trimmed[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", false
		}
		return strings.TrimSpace(s), true
	case c == '-' || (c >= '0' && c <= '9'):
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return "", false
		}
		return n.String(), true
	}
	return "", false
}

func decimalValue(raw json.RawMessage) (decimal.Decimal, bool) {
	s, ok := scalarString(raw)
	if !ok || s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func intValue(raw json.RawMessage) (int, bool) {
	d, ok := decimalValue(raw)
	if !ok || !d.Equal(d.Truncate(0)) {
		return 0, false
	}
	return int(d.IntPart()), true
}

func rejected(body []byte) bool {
	top, ok := parseObject(body)
	if !ok {
		return false
	}
	raw, ok := top["ok"]
	if !ok {
		return false
	}
	var flag bool
	if err := json.Unmarshal(raw, &flag); err != nil {
		return false
	}
	return !flag
}

func errorMessage(body []byte) string {
	top, ok := parseObject(body)
	if !ok {
		return ""
	}
	for _, key := range []string{"error", "message"} {
		raw := top[key]
		if s, ok := scalarString(raw); ok && s != "" {
			return s
		}
		if nested, ok := parseObject(raw); ok {
			if s, ok := scalarString(nested["message"]); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

func unexpected(endpoint, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s: %s", ErrUnexpectedResponse, endpoint, fmt.Sprintf(format, args...))
}

type menuItemDTO struct {
	ID          json.RawMessage `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       json.RawMessage `json:"price"`
	ImageURL    *string         `json:"image_url"`
	IsAvailable json.RawMessage `json:"is_available"`
}

// decodeMenu accepts {data:{items:[...]}}, {items:[...]} and {data:[...]}.
// A single malformed item rejects the whole menu.
func decodeMenu(body []byte) ([]domain.MenuItem, error) {
	top, ok := parseObject(body)
	if !ok {
		return nil, unexpected("menu", "body is not an object")
	}

	var rawItems []json.RawMessage
	if data, ok := parseObject(top["data"]); ok {
		rawItems, _ = parseArray(data["items"])
	}
	if rawItems == nil {
		if arr, ok := parseArray(top["items"]); ok {
			rawItems = arr
		} else if arr, ok := parseArray(top["data"]); ok {
			rawItems = arr
		}
	}
	if rawItems == nil {
		return nil, unexpected("menu", "no items array")
	}

	items := make([]domain.MenuItem, 0, len(rawItems))
	for i, raw := range rawItems {
		var dto menuItemDTO
		if err := json.Unmarshal(raw, &dto); err != nil {
			return nil, unexpected("menu", "item %d: %v", i, err)
		}
		id, ok := intValue(dto.ID)
		if !ok {
			return nil, unexpected("menu", "item %d has no valid id", i)
		}
		price, ok := decimalValue(dto.Price)
		if !ok || price.IsNegative() {
			return nil, unexpected("menu", "item %d has no valid price", id)
		}

		item := domain.MenuItem{
			ID:        id,
			Name:      dto.Name,
			Price:     price.Round(2),
			Available: availability(dto.IsAvailable),
		}
		if dto.Description != nil {
			item.Description = *dto.Description
		}
		if dto.ImageURL != nil {
			item.ImageURL = *dto.ImageURL
		}
		items = append(items, item)
	}
	return items, nil
}

// availability treats a missing flag as available; otherwise only true, 1
// and "1" count.
func availability(raw json.RawMessage) bool {
	if raw == nil {
		return true
	}
	trimmed := strings.TrimSpace(string(raw))
	switch trimmed {
	case "true":
		return true
	case "false", "null", "":
		return false
	}
	d, ok := decimalValue(raw)
	return ok && d.Equal(decimal.NewFromInt(1))
}

func decodeTableNumber(body []byte) (string, error) {
	objs := layers(body)
	if objs == nil {
		return "", unexpected("table token", "body is not an object")
	}
	raw := firstValue(objs, "table_number", "table", "number")
	number, ok := scalarString(raw)
	if !ok || number == "" {
		return "", unexpected("table token", "no table number")
	}
	return number, nil
}

func decodeTotal(body []byte) (decimal.Decimal, error) {
	objs := layers(body)
	if objs == nil {
		return decimal.Zero, unexpected("current total", "body is not an object")
	}
	total, ok := decimalValue(firstValue(objs, "total"))
	if !ok {
		return decimal.Zero, unexpected("current total", "no numeric total")
	}
	return total.Round(2), nil
}

func decodeOrderConfirmation(body []byte) (*domain.OrderConfirmation, error) {
	objs := layers(body)
	if objs == nil {
		return nil, unexpected("submit order", "body is not an object")
	}

	confirmation := &domain.OrderConfirmation{OrderNumber: UnknownOrderNumber}
	if number, ok := scalarString(firstValue(objs, "order_number")); ok && number != "" {
		confirmation.OrderNumber = number
	}
	if total, ok := decimalValue(firstValue(objs, "total", "total_amount")); ok {
		total = total.Round(2)
		confirmation.Total = &total
	}
	return confirmation, nil
}

// listRows finds the first array among the given paths. A path is a list of
// object keys; an empty path is the body itself.
func listRows(body []byte, paths ...[]string) ([]json.RawMessage, bool) {
	for _, path := range paths {
		current := json.RawMessage(body)
		found := true
		for _, key := range path {
			obj, ok := parseObject(current)
			if !ok {
				found = false
				break
			}
			current = obj[key]
		}
		if !found {
			continue
		}
		if arr, ok := parseArray(current); ok {
			return arr, true
		}
	}
	return nil, false
}

// decodeTables drops rows without an id or a table number.
func decodeTables(body []byte) ([]domain.TableRow, error) {
	rows, ok := listRows(body, []string{"data"}, []string{"data", "data"}, []string{"items"}, nil)
	if !ok {
		return nil, unexpected("tables", "no tables array")
	}

	tables := make([]domain.TableRow, 0, len(rows))
	for _, raw := range rows {
		obj, ok := parseObject(raw)
		if !ok {
			continue
		}
		objs := []object{obj}
		id, ok := intValue(firstValue(objs, "id", "table_id", "tid"))
		if !ok {
			continue
		}
		number, ok := scalarString(firstValue(objs, "table_number", "number", "tableNo", "table", "nr", "name"))
		if !ok || number == "" {
			continue
		}
		token, _ := scalarString(firstValue(objs, "table_token", "token", "qr_token", "qr"))
		tables = append(tables, domain.TableRow{ID: id, Number: number, Token: token})
	}
	return tables, nil
}

func decodeOrders(body []byte) ([]domain.Order, error) {
	rows, ok := listRows(body, []string{"data"}, []string{"data", "items"}, []string{"items"}, nil)
	if !ok {
		return nil, unexpected("orders", "no orders array")
	}

	orders := make([]domain.Order, 0, len(rows))
	for _, raw := range rows {
		obj, ok := parseObject(raw)
		if !ok {
			continue
		}
		objs := []object{obj}
		id, ok := intValue(obj["id"])
		if !ok {
			continue
		}

		order := domain.Order{ID: id}
		order.OrderNumber, _ = scalarString(obj["order_number"])
		order.TableID, _ = intValue(obj["table_id"])
		order.TableNumber, _ = scalarString(obj["table_number"])
		order.TotalAmount, _ = decimalValue(obj["total_amount"])
		order.OrderStatus, _ = scalarString(obj["order_status"])
		order.PaymentStatus, _ = scalarString(obj["payment_status"])
		order.CreatedAt, _ = scalarString(firstValue(objs, "created_at", "order_time"))

		if items, ok := parseArray(obj["items"]); ok {
			for _, rawItem := range items {
				itemObj, ok := parseObject(rawItem)
				if !ok {
					continue
				}
				var item domain.OrderItem
				item.MenuItemID, _ = intValue(itemObj["menu_item_id"])
				item.Name, _ = scalarString(itemObj["name"])
				item.Quantity, _ = intValue(itemObj["quantity"])
				item.Price, _ = decimalValue(itemObj["price"])
				order.Items = append(order.Items, item)
			}
		}
		orders = append(orders, order)
	}
	return orders, nil
}
