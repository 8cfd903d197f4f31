// Command sign-order is a minimal end-to-end demo of the signing
// core: generate a signer, build a limit order, sign it over the
// RMP path, and print the canonical request body the exchange
// expects.
package main

import (
	"fmt"
	"os"

	"github.com/uhyunpark/hyperwire/params"
	"github.com/uhyunpark/hyperwire/pkg/actions"
	"github.com/uhyunpark/hyperwire/pkg/client"
	"github.com/uhyunpark/hyperwire/pkg/decimal"
	"github.com/uhyunpark/hyperwire/pkg/hltypes"
	"github.com/uhyunpark/hyperwire/pkg/noncestore"
	"github.com/uhyunpark/hyperwire/pkg/signer"
)

func main() {
	cfg := params.LoadFromEnv("")

	key, err := signer.Generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate key: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Address: %s\n", hltypes.Address(key.Address()).Hex())

	nonces, err := noncestore.Open(cfg.NoncestorePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open nonce store: %v\n", err)
		os.Exit(1)
	}
	defer nonces.Close()

	c, err := client.New(key, cfg.Chain, nonces)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build client: %v\n", err)
		os.Exit(1)
	}

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

	buf := make([]byte, 4096)
	body, err := c.SignAction(order, nil, nil, buf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sign order: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(body))
}
