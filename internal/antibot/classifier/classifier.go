// Package classifier implements the Actor Classifier component (spec.md
// §4.2): a pure function of three injected collaborators (Ledger balance
// lookup, the Context View's earliest-ProfileChange record, and the
// Reputation Ledger) that buckets an address into Trial or Full, grounded on
// the teacher's internal/validator.CommonValidateTransaction preamble-check
// pattern (a small chain of independent, short-circuiting checks run before
// the real decision).
package classifier

import (
	stdctx "context"
	"errors"

	"github.com/socialchain/antibot/internal/antibot/context"
	"github.com/socialchain/antibot/internal/antibot/limits"
	"github.com/socialchain/antibot/internal/antibot/ports"
)

// ErrNotRegistered is returned when address has no recorded ProfileChange;
// the caller (antibot.Engine) maps this onto the NotRegistered verdict.
var ErrNotRegistered = errors.New("classifier: address not registered")

// Result is the classifier's output: class, reputation and balance as of
// height, per spec.md §4.2.
type Result struct {
	Class      limits.Class
	Reputation int64
	Balance    int64
}

// ReputationSource is satisfied by reputation.Ledger.
type ReputationSource interface {
	At(ctx stdctx.Context, address string, height int32) (int64, error)
}

// Classifier holds the collaborators and thresholds needed to classify an
// address. Stateless beyond its injected dependencies.
type Classifier struct {
	Ledger     ports.Ledger
	View       context.Source
	Reputation ReputationSource
	Thresholds limits.Thresholds
}

// New builds a Classifier.
func New(ledger ports.Ledger, view context.Source, rep ReputationSource, thresholds limits.Thresholds) *Classifier {
	return &Classifier{Ledger: ledger, View: view, Reputation: rep, Thresholds: thresholds}
}

// Classify returns (class, reputation, balance) for address at height, or
// ErrNotRegistered if address has never posted a ProfileChange (spec.md
// §4.2).
func (c *Classifier) Classify(ctx stdctx.Context, address string, height int32, now int64) (Result, error) {
	profile, found, err := c.View.EarliestProfileChange(ctx, address)
	if err != nil {
		return Result{}, err
	}
	if !found {
		return Result{}, ErrNotRegistered
	}

	balance, err := c.Ledger.BalanceOf(ctx, address, height)
	if err != nil {
		return Result{}, err
	}

	rep, err := c.Reputation.At(ctx, address, height)
	if err != nil {
		return Result{}, err
	}

	age := now - profile.RegistrationTime
	class := limits.Trial
	if age >= c.Thresholds.FullRegistrationAge &&
		balance >= c.Thresholds.FullBalanceMin &&
		rep >= c.Thresholds.FullReputationMin {
		class = limits.Full
	}

	return Result{Class: class, Reputation: rep, Balance: balance}, nil
}
