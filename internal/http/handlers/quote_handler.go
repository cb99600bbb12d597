// README: Quote handlers: raw fare estimates and per-chat quote history.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"viagem/internal/modules/history"
	"viagem/internal/modules/pricing"
	"viagem/internal/types"
)

type QuoteHandler struct {
	pricing *pricing.Service
	history *history.Store
}

// NewQuoteHandler builds the handler. A nil history store disables the
// history endpoint.
func NewQuoteHandler(pricingSvc *pricing.Service, historyStore *history.Store) *QuoteHandler {
	return &QuoteHandler{pricing: pricingSvc, history: historyStore}
}

type estimateReq struct {
	DistanceKm  float64 `json:"distance_km"`
	DurationMin float64 `json:"duration_min"`
	Category    string  `json:"category"`
	Condition   string  `json:"condition"`
}

type estimateResp struct {
	DistanceKm     float64 `json:"distance_km"`
	DurationMin    float64 `json:"duration_min"`
	Category       string  `json:"category"`
	Condition      string  `json:"condition"`
	BaseFare       float64 `json:"base_fare"`
	DistanceAmount float64 `json:"distance_amount"`
	TimeAmount     float64 `json:"time_amount"`
	Multiplier     float64 `json:"multiplier"`
	Total          float64 `json:"total"`
}

func (h *QuoteHandler) Estimate(c *gin.Context) {
	var req estimateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.DistanceKm < 0 || req.DurationMin < 0 {
		writeError(c, http.StatusBadRequest, "distance and duration must be non-negative")
		return
	}
	if req.Category == "" {
		req.Category = string(pricing.CategoryStandard)
	}
	if req.Condition == "" {
		req.Condition = string(pricing.ConditionNormal)
	}

	q, err := h.pricing.Quote(c.Request.Context(),
		req.DistanceKm, req.DurationMin,
		pricing.Category(req.Category), pricing.Condition(req.Condition))
	if err != nil {
		writePricingError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, estimateResp{
		DistanceKm:     q.DistanceKm,
		DurationMin:    q.DurationMin,
		Category:       string(q.Category),
		Condition:      string(q.Condition),
		BaseFare:       q.BaseFare,
		DistanceAmount: q.DistanceAmount,
		TimeAmount:     q.TimeAmount,
		Multiplier:     q.Multiplier,
		Total:          q.Total,
	})
}

func (h *QuoteHandler) History(c *gin.Context) {
	if h.history == nil {
		writeError(c, http.StatusServiceUnavailable, "history disabled")
		return
	}
	chatID, err := strconv.ParseInt(c.Param("chat_id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid chat id")
		return
	}

	recs, err := h.history.ListRecent(c.Request.Context(), types.ChatID(chatID), 10)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"chat_id": chatID, "quotes": recs})
}
