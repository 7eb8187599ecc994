package main

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

// startBlockSignal subscribes to new-head events over websocket and returns a
// channel that pulses whenever a head arrives. Returns a nil channel when no
// websocket URL is configured; polling alone drives the watcher then.
func startBlockSignal(ctx context.Context, wsURL string, logger *zap.Logger) (<-chan struct{}, error) {
	if wsURL == "" {
		return nil, nil
	}

	client, err := ethclient.DialContext(ctx, wsURL)
	if err != nil {
		return nil, fmt.Errorf("connect websocket: %w", err)
	}

	heads := make(chan *types.Header, 8)
	sub, err := client.SubscribeNewHead(ctx, heads)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("subscribe new heads: %w", err)
	}

	notify := make(chan struct{}, 1)

	go func() {
		defer client.Close()
		defer sub.Unsubscribe()
		for {
			select {
			case <-ctx.Done():
				return
			case err := <-sub.Err():
				logger.Warn("new head subscription closed", zap.Error(err))
				return
			case head := <-heads:
				logger.Debug("new head signal", zap.Uint64("height", head.Number.Uint64()))
				select {
				case notify <- struct{}{}:
				default:
				}
			}
		}
	}()

	return notify, nil
}
