package merchant

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const StatusPath = "/payeer/status"

// Addresses Payeer sends status notifications from.
var DefaultAllowedIPs = []string{"185.71.65.92", "185.71.65.189", "149.202.17.210"}

type PaidFunc func(ctx context.Context, n *Notification) error

type HandlerOptions struct {
	// Source addresses accepted; every address is accepted when empty
	AllowedIPs []string
	// Take the client address from X-Forwarded-For / X-Real-IP
	BehindProxy bool
}

type Handler struct {
	merchant *Merchant
	onPaid   PaidFunc
	options  *HandlerOptions
	allowed  map[string]struct{}
}

func NewHandler(merchant *Merchant, onPaid PaidFunc, options *HandlerOptions) *Handler {
	if options == nil {
		options = &HandlerOptions{}
	}
	allowed := make(map[string]struct{}, len(options.AllowedIPs))
	for _, ip := range options.AllowedIPs {
		allowed[ip] = struct{}{}
	}
	return &Handler{
		merchant: merchant,
		onPaid:   onPaid,
		options:  options,
		allowed:  allowed,
	}
}

func (h *Handler) Route() *chi.Mux {
	r := chi.NewRouter()
	if h.options.BehindProxy {
		r.Use(middleware.RealIP)
	}
	r.Post(StatusPath, h.status)
	return r
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	if !h.isAllowed(r.RemoteAddr) {
		slog.Warn("[PayeerMerchant] Notification from unknown address", "addr", r.RemoteAddr)
		w.WriteHeader(http.StatusForbidden)
		return
	}
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Malformed form"))
		return
	}
	n := ParseNotification(r.PostForm)
	if n.OrderId == "" || n.Sign == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Missing m_orderid or m_sign"))
		return
	}
	if err := h.merchant.Verify(n); err != nil {
		slog.Warn("[PayeerMerchant] Notification rejected", "order", n.OrderId, "operation", n.OperationId, "error", err)
		reply(w, n.OrderId, false)
		return
	}
	if err := h.onPaid(r.Context(), n); err != nil {
		slog.Error("[PayeerMerchant] Paid callback failed", "order", n.OrderId, "operation", n.OperationId, "error", err)
		reply(w, n.OrderId, false)
		return
	}
	slog.Info("[PayeerMerchant] Payment accepted", "order", n.OrderId, "operation", n.OperationId, "amount", n.Amount, "currency", n.Currency)
	reply(w, n.OrderId, true)
}

func (h *Handler) isAllowed(remoteAddr string) bool {
	if len(h.allowed) == 0 {
		return true
	}
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}
	_, ok := h.allowed[host]
	return ok
}

func reply(w http.ResponseWriter, orderId string, ok bool) {
	status := "error"
	if ok {
		status = "success"
	}
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(orderId + "|" + status))
}
