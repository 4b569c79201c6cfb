// Package submit serializes final form values and hands them to a transport
// capability: the host messaging bridge when one is available, or a fallback
// display path that the product treats as success for manual testing.
package submit

import (
	"context"
	"errors"
)

// Transport delivers a serialized submission payload. Delivery is
// fire-and-forget from the caller's perspective; no response is awaited
// beyond completion or failure of the call itself.
type Transport interface {
	Name() string
	Send(ctx context.Context, data []byte) error
}

// BridgeFunc is the host-client capability that accepts a serialized payload
// (Telegram's sendData in the real deployment).
type BridgeFunc func(ctx context.Context, data []byte) error

type bridgeTransport struct {
	send BridgeFunc
}

// NewBridgeTransport wraps an injected host bridge capability.
func NewBridgeTransport(send BridgeFunc) (Transport, error) {
	if send == nil {
		return nil, errors.New("submit: bridge function is required")
	}
	return &bridgeTransport{send: send}, nil
}

func (t *bridgeTransport) Name() string { return "bridge" }

func (t *bridgeTransport) Send(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return t.send(ctx, data)
}
