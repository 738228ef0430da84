package api

import (
	"github.com/socialchain/antibot/internal/antibot/verdict"
)

// VerdictResponse is the wire shape for a single admission decision,
// carrying both the closed enum's wire code and its name so RPC clients can
// switch on whichever is more convenient (spec.md §6).
type VerdictResponse struct {
	Code      int    `json:"code"`
	Verdict   string `json:"verdict"`
	Transient bool   `json:"transient"`
}

func toVerdictResponse(v verdict.Verdict) VerdictResponse {
	return VerdictResponse{Code: int(v), Verdict: v.String(), Transient: v.Transient()}
}

// CheckBlockResponse index-aligns with the submitted item list; Accepted is
// the block-level rule from spec.md §4.6 ("if any item fails, the whole
// block is rejected") pre-computed for convenience.
type CheckBlockResponse struct {
	Accepted bool              `json:"accepted"`
	Verdicts []VerdictResponse `json:"verdicts"`
}

// ErrorResponse is returned for any 4xx/5xx the handler produces itself,
// grounded on the teacher's pkg/api.ErrorFields (status/title/detail shape)
// but trimmed to this service's needs.
type ErrorResponse struct {
	Error string `json:"error"`
}
