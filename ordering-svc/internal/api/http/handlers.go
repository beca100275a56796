package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"smartqr-ordering/ordering-svc/internal/backend"
	"smartqr-ordering/ordering-svc/internal/domain"
	"smartqr-ordering/ordering-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Sessions service.SessionServiceInterface
	Desk     service.DeskServiceInterface
}

func NewHandler(sessions service.SessionServiceInterface, desk service.DeskServiceInterface) *Handler {
	return &Handler{Sessions: sessions, Desk: desk}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.health).Methods("GET")

	r.HandleFunc("/api/sessions", h.openSession).Methods("POST")
	r.HandleFunc("/api/sessions/{id}", h.getSession).Methods("GET")
	r.HandleFunc("/api/sessions/{id}", h.closeSession).Methods("DELETE")
	r.HandleFunc("/api/sessions/{id}/menu/reload", h.reloadMenu).Methods("POST")
	r.HandleFunc("/api/sessions/{id}/cart/items/{itemId}", h.addItem).Methods("POST")
	r.HandleFunc("/api/sessions/{id}/cart/items/{itemId}", h.removeItem).Methods("DELETE")
	r.HandleFunc("/api/sessions/{id}/cart/items/{itemId}/decrement", h.decrementItem).Methods("POST")
	r.HandleFunc("/api/sessions/{id}/customer", h.setCustomer).Methods("PUT")
	r.HandleFunc("/api/sessions/{id}/submit", h.submit).Methods("POST")
	r.HandleFunc("/api/sessions/{id}/acknowledge", h.acknowledge).Methods("POST")

	desk := r.PathPrefix("/api/desk/{slug}").Subrouter()
	desk.Use(requireStaffToken)
	desk.HandleFunc("/tables", h.listTables).Methods("GET")
	desk.HandleFunc("/tables/{table}", h.tableView).Methods("GET")
	desk.HandleFunc("/tables/{table}/free", h.freeTable).Methods("POST")
	desk.HandleFunc("/orders/{orderId}/status", h.setOrderStatus).Methods("POST")
	desk.HandleFunc("/orders/{orderId}/payment", h.setPaymentStatus).Methods("POST")
}

// requireStaffToken forwards the caller's admin token to the backend. Desk
// calls never fall back to the service token.
func requireStaffToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("X-Admin-Token")
		if token == "" {
			writeError(w, http.StatusUnauthorized, "Admin token required")
			return
		}
		next.ServeHTTP(w, r.WithContext(backend.WithStaffToken(r.Context(), token)))
	})
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "ordering-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) openSession(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Slug  string `json:"slug"`
		Token string `json:"token"`
		Table string `json:"table"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	identity := domain.NewTableIdentity(payload.Token, payload.Table)
	view, err := h.Sessions.Open(r.Context(), payload.Slug, identity)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	view, err := h.Sessions.View(mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) closeSession(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Close(mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) reloadMenu(w http.ResponseWriter, r *http.Request) {
	view, err := h.Sessions.ReloadMenu(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	h.cartEdit(w, r, h.Sessions.AddItem)
}

func (h *Handler) decrementItem(w http.ResponseWriter, r *http.Request) {
	h.cartEdit(w, r, h.Sessions.DecrementItem)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	h.cartEdit(w, r, h.Sessions.RemoveItem)
}

type cartOperation func(ctx context.Context, id string, itemID int) (*service.SessionView, error)

func (h *Handler) cartEdit(w http.ResponseWriter, r *http.Request, op cartOperation) {
	vars := mux.Vars(r)
	itemID, err := strconv.Atoi(vars["itemId"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	view, err := op(r.Context(), vars["id"], itemID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) setCustomer(w http.ResponseWriter, r *http.Request) {
	var info domain.CustomerInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	view, err := h.Sessions.SetCustomer(mux.Vars(r)["id"], info)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	view, err := h.Sessions.Submit(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (h *Handler) acknowledge(w http.ResponseWriter, r *http.Request) {
	view, err := h.Sessions.Acknowledge(mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) listTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Desk.Tables(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tables)
}

func (h *Handler) tableView(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	view, err := h.Desk.TableView(r.Context(), vars["slug"], vars["table"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) freeTable(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.Desk.FreeTable(r.Context(), vars["slug"], vars["table"]); err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) setOrderStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orderID, err := strconv.Atoi(vars["orderId"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	if err := h.Desk.SetStatus(r.Context(), vars["slug"], orderID, payload.Status); err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) setPaymentStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orderID, err := strconv.Atoi(vars["orderId"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	var payload struct {
		PaymentStatus string `json:"payment_status"`
		PaymentMethod string `json:"payment_method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	if err := h.Desk.SetPayment(r.Context(), vars["slug"], orderID, payload.PaymentStatus, payload.PaymentMethod); err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func respondServiceError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Printf("[ordering-svc] ERROR: %v", err)
	}

	message := backend.Message(err)
	if message == "" {
		message = err.Error()
	}
	writeError(w, status, message)
}

func statusFor(err error) int {
	var apiErr *backend.APIError
	switch {
	case errors.Is(err, backend.ErrMissingStaffToken):
		return http.StatusUnauthorized
	case errors.As(err, &apiErr) && (apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden):
		return apiErr.Status
	case errors.Is(err, service.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrSubmitInProgress):
		return http.StatusConflict
	case errors.Is(err, service.ErrMissingRestaurant),
		errors.Is(err, service.ErrNoTableSelected):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrMissingTableIdentity),
		errors.Is(err, service.ErrItemUnavailable),
		errors.Is(err, service.ErrInvalidStatus):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrSubmissionFailed),
		errors.Is(err, backend.ErrUnexpectedResponse),
		errors.As(err, &apiErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"ok":    false,
		"error": message,
	})
}
