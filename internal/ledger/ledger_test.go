package ledger_test

import (
	"context"
	"testing"

	"github.com/ordishs/go-bitcoin"
	"github.com/stretchr/testify/require"

	"github.com/socialchain/antibot/internal/ledger"
)

type fakeRPC struct {
	unspent []*bitcoin.UnspentTransaction
	rawTx   *bitcoin.RawTransaction
	info    bitcoin.GetInfo
}

func (f *fakeRPC) ListUnspent([]string) ([]*bitcoin.UnspentTransaction, error) {
	return f.unspent, nil
}
func (f *fakeRPC) GetRawTransaction(string) (*bitcoin.RawTransaction, error) { return f.rawTx, nil }
func (f *fakeRPC) GetInfo() (bitcoin.GetInfo, error)                        { return f.info, nil }

func TestLedger_BalanceOf_SumsUnspent(t *testing.T) {
	rpc := &fakeRPC{unspent: []*bitcoin.UnspentTransaction{
		{TXID: "tx1", Vout: 0, Amount: 0.5},
		{TXID: "tx2", Vout: 1, Amount: 1.0},
	}}
	l := ledger.New(rpc)

	balance, err := l.BalanceOf(context.Background(), "addrA", 100)
	require.NoError(t, err)
	require.Equal(t, int64(150_000_000), balance)
}

func TestLedger_UTXOsOf(t *testing.T) {
	rpc := &fakeRPC{unspent: []*bitcoin.UnspentTransaction{{TXID: "tx1", Vout: 0, Amount: 0.5}}}
	l := ledger.New(rpc)

	outs, err := l.UTXOsOf(context.Background(), "addrA")
	require.NoError(t, err)
	require.Len(t, outs, 1)
	require.Equal(t, "tx1", outs[0].TxID)
	require.Equal(t, int64(50_000_000), outs[0].Value)
}

func TestLedger_ChainHeight(t *testing.T) {
	rpc := &fakeRPC{info: bitcoin.GetInfo{Blocks: 42}}
	l := ledger.New(rpc)

	height, err := l.ChainHeight(context.Background())
	require.NoError(t, err)
	require.Equal(t, int32(42), height)
}

func TestLedger_GetTx_NotFound(t *testing.T) {
	rpc := &fakeRPC{rawTx: nil}
	l := ledger.New(rpc)

	_, found, err := l.GetTx(context.Background(), "missing")
	require.NoError(t, err)
	require.False(t, found)
}
