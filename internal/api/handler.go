// Package api exposes the admission engine over HTTP, grounded on the
// teacher's pkg/api/handler (echo.Context handlers returning ctx.JSON),
// generalized from ARC's transaction-submission surface to this service's
// three read/decision operations (SPEC_FULL.md §1, §4.7).
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/socialchain/antibot/internal/antibot"
	"github.com/socialchain/antibot/internal/antibot/metrics"
	"github.com/socialchain/antibot/internal/antibot/userstate"
	"github.com/socialchain/antibot/internal/social"
)

// Handler wires the HTTP surface to the Admission Orchestrator, the User
// State Reporter and the decision counters. Grounded on the teacher's
// ArcDefaultHandler (one struct holding every collaborator a route needs).
type Handler struct {
	Engine   *antibot.Engine
	Reporter *userstate.Reporter
	Metrics  *metrics.Verdicts
	Logger   *slog.Logger
}

// New builds a Handler.
func New(engine *antibot.Engine, reporter *userstate.Reporter, verdicts *metrics.Verdicts, logger *slog.Logger) *Handler {
	return &Handler{Engine: engine, Reporter: reporter, Metrics: verdicts, Logger: logger}
}

// CheckItem handles POST /v1/social/check-item: validates one candidate
// item against the chain plus mempool (spec.md §4.6, mask {Chain,
// Mempool}).
func (h *Handler) CheckItem(c echo.Context) error {
	var item social.Item
	if err := c.Bind(&item); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	v, err := h.Engine.CheckItem(c.Request().Context(), item)
	if err != nil {
		h.Logger.ErrorContext(c.Request().Context(), "check item failed", slog.String("err", err.Error()))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}

	if h.Metrics != nil {
		h.Metrics.Observe(item.Kind, v)
	}

	return c.JSON(http.StatusOK, toVerdictResponse(v))
}

// CheckBlockRequest is the request body for POST /v1/social/check-block.
type CheckBlockRequest struct {
	Items []social.Item `json:"items"`
}

// CheckBlock handles POST /v1/social/check-block: validates a candidate
// block's items in the deterministic order spec.md §4.6 requires, mask
// {Chain, Block}.
func (h *Handler) CheckBlock(c echo.Context) error {
	var req CheckBlockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	verdicts, err := h.Engine.CheckBlock(c.Request().Context(), req.Items)
	if err != nil {
		h.Logger.ErrorContext(c.Request().Context(), "check block failed", slog.String("err", err.Error()))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}

	resp := CheckBlockResponse{Accepted: true, Verdicts: make([]VerdictResponse, len(verdicts))}
	for i, v := range verdicts {
		resp.Verdicts[i] = toVerdictResponse(v)
		if v != antibot.Success {
			resp.Accepted = false
		}
		if h.Metrics != nil && i < len(req.Items) {
			h.Metrics.Observe(req.Items[i].Kind, v)
		}
	}

	return c.JSON(http.StatusOK, resp)
}

// ErrMissingAddress is returned when the :address path parameter is empty.
var ErrMissingAddress = errors.New("api: missing address path parameter")

// UserState handles GET /v1/social/user/:address/state: the User State
// Reporter's read-only snapshot (spec.md §6, §4.7), mask {Chain, Mempool}.
func (h *Handler) UserState(c echo.Context) error {
	address := c.Param("address")
	if address == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: ErrMissingAddress.Error()})
	}

	ctx := c.Request().Context()
	height, err := h.Engine.Ledger.ChainHeight(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
	now, err := h.Engine.Ledger.AdjustedTime(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}

	state, found, err := h.Reporter.Get(ctx, address, height, now)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
	if !found {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "address not registered"})
	}

	return c.JSON(http.StatusOK, state)
}
