// Package ports declares the external collaborators the admission engine
// consumes, kept in their own leaf package (rather than internal/antibot
// itself) so that internal/antibot/classifier and internal/antibot/reputation
// can depend on them without an import cycle back to the orchestrator.
// Grounded on the teacher's internal/validator.TxFinderI /
// internal/blocktx/store.BlocktxStore convention of small, consumer-defined
// interfaces with a matching //go:generate moq directive.
package ports

import "context"

//go:generate moq -pkg mocks -out ../mocks/ledger_mock.go . Ledger

// Ledger is the read-only view onto the underlying coin chain the engine
// needs: balances for the Actor Classifier (spec.md §4.2) and UTXO lookups
// for CheckInputs (SPEC_FULL.md §1). It is never used to mutate chain state.
type Ledger interface {
	// BalanceOf returns the sum of address's unspent outputs at height.
	BalanceOf(ctx context.Context, address string, height int32) (int64, error)
	// UTXOsOf returns the outpoints address currently controls, used by
	// CheckInputs to confirm a transaction's inputs are actually spendable
	// by its claimed author.
	UTXOsOf(ctx context.Context, address string) ([]Outpoint, error)
	// GetTx reports whether txID is known to the chain. CheckInputs does
	// not call it.
	GetTx(ctx context.Context, txID string) (*TxRef, bool, error)
	// ChainHeight returns the current chain tip height.
	ChainHeight(ctx context.Context) (int32, error)
	// AdjustedTime returns the network-adjusted time used for the time-skew
	// check in the per-kind validator preamble.
	AdjustedTime(ctx context.Context) (int64, error)
}

// Outpoint identifies a spendable output.
type Outpoint struct {
	TxID  string
	Index uint32
	Value int64
}

// TxRef is the minimal fact GetTx reports about a referenced transaction:
// that it exists and who controls it.
type TxRef struct {
	TxID   string
	Author string
}
