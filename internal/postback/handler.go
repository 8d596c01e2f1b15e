package postback

import (
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"

	"lightning-sats-bot/internal/ledger"
	"lightning-sats-bot/internal/utils"

	"github.com/shopspring/decimal"
)

// Handler receives server-to-server callbacks: the ad network reports
// completed ad views, the settlement process promotes held rewards to the
// withdrawable balance. Callers authenticate with a shared secret header
// and, when configured, a source-IP allowlist.
type Handler struct {
	Engine     *ledger.Engine
	Secret     string
	AllowedIPs []string
}

func NewHandler(engine *ledger.Engine, secret string, allowedIPs []string) *Handler {
	return &Handler{
		Engine:     engine,
		Secret:     secret,
		AllowedIPs: allowedIPs,
	}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/postback/adview", h.HandleAdView)
	mux.HandleFunc("/postback/settle", h.HandleSettlement)
}

type adViewNotification struct {
	TelegramID int64  `json:"telegram_id"`
	AdType     string `json:"ad_type"`
}

func (h *Handler) HandleAdView(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	var notification adViewNotification
	if err := json.NewDecoder(r.Body).Decode(&notification); err != nil {
		log.Printf("Failed to decode ad view postback: %v", err)
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	user, err := h.Engine.UserByTelegramID(r.Context(), notification.TelegramID)
	if err != nil {
		if errors.Is(err, ledger.ErrUserNotFound) {
			http.Error(w, "Unknown user", http.StatusNotFound)
			return
		}
		log.Printf("Failed to look up user %d: %v", notification.TelegramID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	reward := h.Engine.Policy().PerAdReward
	if err := h.Engine.RecordAdView(r.Context(), user.ID, notification.AdType, reward); err != nil {
		log.Printf("Failed to record ad view for user %d: %v", notification.TelegramID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

type settlementNotification struct {
	TelegramID int64  `json:"telegram_id"`
	Amount     string `json:"amount"`
}

func (h *Handler) HandleSettlement(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	var notification settlementNotification
	if err := json.NewDecoder(r.Body).Decode(&notification); err != nil {
		log.Printf("Failed to decode settlement postback: %v", err)
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	amount, err := decimal.NewFromString(notification.Amount)
	if err != nil || !amount.IsPositive() {
		http.Error(w, "Invalid amount", http.StatusBadRequest)
		return
	}

	user, err := h.Engine.UserByTelegramID(r.Context(), notification.TelegramID)
	if err != nil {
		if errors.Is(err, ledger.ErrUserNotFound) {
			http.Error(w, "Unknown user", http.StatusNotFound)
			return
		}
		log.Printf("Failed to look up user %d: %v", notification.TelegramID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.Engine.ReleaseHold(r.Context(), user.ID, amount); err != nil {
		if errors.Is(err, ledger.ErrInsufficientBalance) {
			http.Error(w, "Hold balance too low", http.StatusConflict)
			return
		}
		log.Printf("Failed to release hold for user %d: %v", notification.TelegramID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) authorize(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}

	if h.Secret != "" && r.Header.Get("X-Postback-Secret") != h.Secret {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return false
	}

	if len(h.AllowedIPs) > 0 {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if !utils.IsAllowedIP(host, h.AllowedIPs) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return false
		}
	}

	return true
}
