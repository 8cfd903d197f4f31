// Package client is a thin orchestration wrapper over the signing
// core: it owns a signer, a chain selection, and a nonce store, and
// exposes the two entry points external callers actually need —
// sign an RMP-path action, or a typed-data action, and return the
// request body (it does no network I/O) — with
// structured logging of nonce issuance and request construction. It
// holds no trading logic of its own.
package client

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/uhyunpark/hyperwire/pkg/hltypes"
	"github.com/uhyunpark/hyperwire/pkg/noncestore"
	"github.com/uhyunpark/hyperwire/pkg/signer"
	"github.com/uhyunpark/hyperwire/pkg/signing"
	"github.com/uhyunpark/hyperwire/pkg/util"
)

// Client binds a signer, a chain, and a nonce store together.
type Client struct {
	key    *signer.PrivateKey
	chain  hltypes.Chain
	nonces *noncestore.Store
	log    *zap.Logger
}

// Option configures a Client at construction.
type Option func(*Client)

// WithLogger overrides the default production zap.Logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithLogFile tees the client's logs to logPath alongside stdout, for
// callers that want a durable record of nonce issuance and sign calls.
func WithLogFile(logPath string) Option {
	return func(c *Client) {
		l, err := util.NewLoggerWithFile(logPath)
		if err != nil {
			return
		}
		c.log = l
	}
}

// New builds a Client from an existing signer, chain, and nonce
// store. Callers that don't need cross-process nonce persistence can
// pass a noncestore.Store opened against a temporary path.
func New(key *signer.PrivateKey, chain hltypes.Chain, nonces *noncestore.Store, opts ...Option) (*Client, error) {
	log, err := util.NewLogger()
	if err != nil {
		return nil, fmt.Errorf("client: build logger: %w", err)
	}
	c := &Client{key: key, chain: chain, nonces: nonces, log: log}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Address returns the signer's on-chain address.
func (c *Client) Address() hltypes.Address {
	return hltypes.Address(c.key.Address())
}

// SignAction issues the next nonce for (signer, vault) from the nonce
// store, then runs the RMP signing path over action. buf is the
// caller-provided scratch buffer the binary encoder writes into.
func (c *Client) SignAction(action signing.RMPAction, vault *hltypes.Address, expiresAfter *uint64, buf []byte) ([]byte, error) {
	addr := c.Address()
	nonce, err := c.nonces.NextNonce(addr, vault, noncestore.NowMillis())
	if err != nil {
		return nil, fmt.Errorf("client: issue nonce: %w", err)
	}
	c.log.Info("issuing RMP-path nonce",
		zap.Uint64("nonce", nonce),
		zap.String("address", addr.Hex()),
	)

	_, body, err := signing.SignAction(c.key, c.chain, action, nonce, vault, expiresAfter, buf)
	if err != nil {
		c.log.Error("sign action failed", zap.Error(err))
		return nil, fmt.Errorf("client: sign action: %w", err)
	}
	c.log.Info("signed RMP-path request", zap.Int("body_bytes", len(body)))
	return body, nil
}

// SignTyped runs the typed-data signing path over action, using the
// caller-supplied nonceOrTime as the request nonce. It does not consult
// the nonce store: typed-data schemas carry their own time or nonce
// field, and the caller passes that same value here.
func (c *Client) SignTyped(action signing.TypedAction, nonceOrTime uint64) ([]byte, error) {
	c.log.Info("signing typed-data request", zap.Uint64("nonce_or_time", nonceOrTime))
	_, body, err := signing.SignTyped(c.key, c.chain, action, nonceOrTime)
	if err != nil {
		c.log.Error("sign typed failed", zap.Error(err))
		return nil, fmt.Errorf("client: sign typed: %w", err)
	}
	c.log.Info("signed typed-data request", zap.Int("body_bytes", len(body)))
	return body, nil
}
