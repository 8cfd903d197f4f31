package client

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/uhyunpark/hyperwire/pkg/actions"
	"github.com/uhyunpark/hyperwire/pkg/decimal"
	"github.com/uhyunpark/hyperwire/pkg/hltypes"
	"github.com/uhyunpark/hyperwire/pkg/noncestore"
	"github.com/uhyunpark/hyperwire/pkg/signer"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	key, err := signer.Generate()
	if err != nil {
		t.Fatal(err)
	}
	store, err := noncestore.Open(filepath.Join(t.TempDir(), "nonces"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	c, err := New(key, hltypes.Mainnet, store)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestClientSignActionIssuesIncreasingNonces(t *testing.T) {
	c := newTestClient(t)
	price := decimal.MustParse("50000")
	size := decimal.MustParse("0.1")
	order := actions.BatchOrder{
		Orders: []actions.OrderRequest{{
			Asset:      0,
			IsBuy:      true,
			LimitPrice: price,
			Size:       size,
			OrderType:  actions.LimitOrder(actions.Gtc),
		}},
		Grouping: actions.Na,
	}
	buf := make([]byte, 1024)

	body1, err := c.SignAction(order, nil, nil, buf)
	if err != nil {
		t.Fatal(err)
	}
	body2, err := c.SignAction(order, nil, nil, buf)
	if err != nil {
		t.Fatal(err)
	}
	if string(body1) == string(body2) {
		t.Fatal("two calls reused the same nonce")
	}
}

func TestClientAddressMatchesSigner(t *testing.T) {
	c := newTestClient(t)
	if !strings.HasPrefix(c.Address().Hex(), "0x") {
		t.Fatalf("unexpected address format: %s", c.Address().Hex())
	}
}

func TestWithLogFileWritesEntries(t *testing.T) {
	key, err := signer.Generate()
	if err != nil {
		t.Fatal(err)
	}
	store, err := noncestore.Open(filepath.Join(t.TempDir(), "nonces"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	logPath := filepath.Join(t.TempDir(), "logs", "hyperwire.log")
	c, err := New(key, hltypes.Mainnet, store, WithLogFile(logPath))
	if err != nil {
		t.Fatal(err)
	}

	action := actions.ScheduleCancel{HasTime: false}
	buf := make([]byte, 256)
	if _, err := c.SignAction(action, nil, nil, buf); err != nil {
		t.Fatal(err)
	}
	_ = c.log.Sync()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected log entries written to the log file")
	}
}
