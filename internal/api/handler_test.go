package api

import (
	stdctx "context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialchain/antibot/internal/antibot"
	"github.com/socialchain/antibot/internal/antibot/classifier"
	"github.com/socialchain/antibot/internal/antibot/limits"
	"github.com/socialchain/antibot/internal/antibot/mocks"
	"github.com/socialchain/antibot/internal/antibot/ports"
	"github.com/socialchain/antibot/internal/antibot/reputation"
	"github.com/socialchain/antibot/internal/antibot/userstate"
	"github.com/socialchain/antibot/internal/cache"
	"github.com/socialchain/antibot/internal/social"
)

func newTestHandler(t *testing.T) (*Handler, *mocks.SourceMock) {
	t.Helper()

	ledger := &mocks.LedgerMock{
		ChainHeightFunc:  func(ctx stdctx.Context) (int32, error) { return 100, nil },
		AdjustedTimeFunc: func(ctx stdctx.Context) (int64, error) { return 1_700_000_000, nil },
		BalanceOfFunc:    func(ctx stdctx.Context, address string, height int32) (int64, error) { return 1_000_000, nil },
		UTXOsOfFunc: func(ctx stdctx.Context, address string) ([]ports.Outpoint, error) {
			return nil, nil
		},
		GetTxFunc: func(ctx stdctx.Context, txID string) (*ports.TxRef, bool, error) { return nil, false, nil },
	}

	source := &mocks.SourceMock{
		EarliestProfileChangeFunc: func(ctx stdctx.Context, address string) (*social.ProfileChange, bool, error) {
			return &social.ProfileChange{Address: address, RegistrationTime: 1_600_000_000}, true, nil
		},
		CountPostsFunc:         func(ctx stdctx.Context, s string, i1, i2 int64) (int, error) { return 0, nil },
		CountPostEditsFunc:     func(ctx stdctx.Context, s string, i1, i2 int64) (int, error) { return 0, nil },
		CountScoresFunc:        func(ctx stdctx.Context, s string, i1, i2 int64) (int, error) { return 0, nil },
		CountComplaintsFunc:    func(ctx stdctx.Context, s string, i1, i2 int64) (int, error) { return 0, nil },
		CountCommentsFunc:      func(ctx stdctx.Context, s string, i1, i2 int64) (int, error) { return 0, nil },
		CountCommentEditsFunc:  func(ctx stdctx.Context, s string, i1, i2 int64) (int, error) { return 0, nil },
		CountCommentScoresFunc: func(ctx stdctx.Context, s string, i1, i2 int64) (int, error) { return 0, nil },
		ScoresReceivedByFunc: func(ctx stdctx.Context, address string, height int32) ([]social.Score, error) {
			return nil, nil
		},
		CommentScoresReceivedByFunc: func(ctx stdctx.Context, address string, height int32) ([]social.CommentScore, error) {
			return nil, nil
		},
		CountBlockingReceivedByFunc: func(ctx stdctx.Context, address string) (int, error) { return 0, nil },
	}

	thresholds := limits.DefaultThresholds()
	store := cache.NewMemoryStore(0, 0)
	repLedger := reputation.New(source, thresholds, store, 0)
	cls := classifier.New(ledger, source, repLedger, thresholds)
	table := limits.DefaultTable()

	engine := antibot.New(ledger, source, source, repLedger, cls, table, thresholds)
	reporter := userstate.New(source, ledger, cls, table, thresholds)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return New(engine, reporter, nil, logger), source
}

func TestHandler_CheckItem(t *testing.T) {
	h, _ := newTestHandler(t)
	e := echo.New()

	body := `{"kind":"post","post":{"txId":"tx1","originalTxId":"tx1","author":"addr1","time":1700000000,"message":"hello"}}`
	req := httptest.NewRequest(http.MethodPost, "/v1/social/check-item", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	require.NoError(t, h.CheckItem(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp VerdictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Success", resp.Verdict)
}

func TestHandler_UserState_NotFound(t *testing.T) {
	h, source := newTestHandler(t)
	source.EarliestProfileChangeFunc = func(ctx stdctx.Context, address string) (*social.ProfileChange, bool, error) {
		return nil, false, nil
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/social/user/unknown/state", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("address")
	ctx.SetParamValues("unknown")

	require.NoError(t, h.UserState(ctx))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_UserState_Found(t *testing.T) {
	h, _ := newTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/social/user/addr1/state", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("address")
	ctx.SetParamValues("addr1")

	require.NoError(t, h.UserState(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	var state userstate.State
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, "addr1", state.Address)
}
