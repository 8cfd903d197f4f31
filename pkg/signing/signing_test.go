package signing

import (
	"strings"
	"testing"

	"github.com/uhyunpark/hyperwire/pkg/actions"
	"github.com/uhyunpark/hyperwire/pkg/decimal"
	"github.com/uhyunpark/hyperwire/pkg/eip712"
	"github.com/uhyunpark/hyperwire/pkg/hltypes"
	"github.com/uhyunpark/hyperwire/pkg/signer"
)

func testOrder(t *testing.T) actions.BatchOrder {
	t.Helper()
	price, err := decimal.Parse("50000")
	if err != nil {
		t.Fatal(err)
	}
	size, err := decimal.Parse("0.1")
	if err != nil {
		t.Fatal(err)
	}
	return actions.BatchOrder{
		Orders: []actions.OrderRequest{{
			Asset:      0,
			IsBuy:      true,
			LimitPrice: price,
			Size:       size,
			ReduceOnly: false,
			OrderType:  actions.LimitOrder(actions.Gtc),
		}},
		Grouping: actions.Na,
	}
}

func TestSignActionIsDeterministic(t *testing.T) {
	key, err := signer.Generate()
	if err != nil {
		t.Fatal(err)
	}
	order := testOrder(t)
	buf := make([]byte, 1024)

	sig1, body1, err := SignAction(key, hltypes.Mainnet, order, 1700000000123, nil, nil, buf)
	if err != nil {
		t.Fatal(err)
	}
	sig2, body2, err := SignAction(key, hltypes.Mainnet, order, 1700000000123, nil, nil, buf)
	if err != nil {
		t.Fatal(err)
	}
	if sig1.Bytes() != sig2.Bytes() {
		t.Fatal("signing the same action twice produced different signatures")
	}
	if string(body1) != string(body2) {
		t.Fatal("request body differs between identical calls")
	}
}

func TestSignActionEnvelopeShape(t *testing.T) {
	key, err := signer.Generate()
	if err != nil {
		t.Fatal(err)
	}
	order := testOrder(t)
	buf := make([]byte, 1024)
	_, body, err := SignAction(key, hltypes.Mainnet, order, 42, nil, nil, buf)
	if err != nil {
		t.Fatal(err)
	}
	s := string(body)
	for _, want := range []string{`"action":`, `"nonce":42`, `"signature":`, `"vaultAddress":null`, `"expiresAfter":null`} {
		if !strings.Contains(s, want) {
			t.Fatalf("body missing %q: %s", want, s)
		}
	}
}

func TestSignActionDiffersByChain(t *testing.T) {
	key, err := signer.Generate()
	if err != nil {
		t.Fatal(err)
	}
	order := testOrder(t)
	buf := make([]byte, 1024)
	sigMain, _, err := SignAction(key, hltypes.Mainnet, order, 1, nil, nil, buf)
	if err != nil {
		t.Fatal(err)
	}
	sigTest, _, err := SignAction(key, hltypes.Testnet, order, 1, nil, nil, buf)
	if err != nil {
		t.Fatal(err)
	}
	if sigMain.Bytes() == sigTest.Bytes() {
		t.Fatal("mainnet and testnet agent source must produce different signatures")
	}
}

func TestSignActionRejectsTooSmallBuffer(t *testing.T) {
	key, err := signer.Generate()
	if err != nil {
		t.Fatal(err)
	}
	order := testOrder(t)
	buf := make([]byte, 4)
	if _, _, err := SignAction(key, hltypes.Mainnet, order, 1, nil, nil, buf); err == nil {
		t.Fatal("expected buffer overflow error")
	}
}

func TestSignTypedUsdSend(t *testing.T) {
	key, err := signer.Generate()
	if err != nil {
		t.Fatal(err)
	}
	action := eip712.NewUsdSend(hltypes.Mainnet, "0x0D1d9635D0640821d15e323ac8AdADfA9c111414", "1", 1690393044548)
	sig, body, err := SignTyped(key, hltypes.Mainnet, action, action.Time)
	if err != nil {
		t.Fatal(err)
	}
	if sig.V > 1 {
		t.Fatalf("recovery id out of range: %d", sig.V)
	}
	if !strings.Contains(string(body), `"destination":"0x0D1d9635D0640821d15e323ac8AdADfA9c111414"`) {
		t.Fatalf("body missing destination field: %s", body)
	}
	if !strings.Contains(string(body), `"signatureChainId":"0xa4b1"`) {
		t.Fatalf("body missing signatureChainId field: %s", body)
	}
}

func TestScheduleCancelNullTimeRoundTrip(t *testing.T) {
	key, err := signer.Generate()
	if err != nil {
		t.Fatal(err)
	}
	action := actions.ScheduleCancel{HasTime: false}
	buf := make([]byte, 256)
	_, body, err := SignAction(key, hltypes.Mainnet, action, 1, nil, nil, buf)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), `"time":null`) {
		t.Fatalf("expected null time in action body: %s", body)
	}
}
