package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/getAlby/nftmarket.go/db/models"
	"github.com/uptrace/bun"
)

type actionFrameKey struct{}

// actionFrame is the state of the running top level action
type actionFrame struct {
	tx         bun.Tx
	events     []models.MarketEvent
	savepoints int
}

func actionFrameFrom(ctx context.Context) *actionFrame {
	frame, _ := ctx.Value(actionFrameKey{}).(*actionFrame)
	return frame
}

// runAction applies fn as one atomic unit of work.
// Top level actions are serialized and run in their own transaction; queued events
// are published after commit. An action started from within another one (e.g. from
// a receiver hook) joins the running transaction under a savepoint, so its failure
// only undoes its own effects.
// Waiting for the running action is bounded by ctx and Config.ActionLockTimeout,
// a receiver hook that calls back without the ctx it was given fails with
// ErrActionBusy.
func (svc *MarketService) runAction(ctx context.Context, name string, fn func(ctx context.Context, tx bun.Tx) error) error {
	if frame := actionFrameFrom(ctx); frame != nil {
		return svc.runNestedAction(ctx, frame, name, fn)
	}

	if err := svc.acquireAction(ctx, name); err != nil {
		return err
	}
	held := true
	release := func() {
		if held {
			held = false
			svc.actions().Release(1)
		}
	}
	defer release()

	frame := &actionFrame{}
	err := svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		frame.tx = tx
		return fn(context.WithValue(ctx, actionFrameKey{}, frame), tx)
	})
	if err != nil {
		svc.Logger.Debugf("%s failed: %v", name, err)
		return err
	}

	// the next action may start while these events go out, but its own
	// events wait for publishMu
	svc.publishMu.Lock()
	defer svc.publishMu.Unlock()
	release()
	for _, event := range frame.events {
		if missed := svc.EventPubSub.Publish(event.Type, event); missed > 0 {
			svc.Logger.Errorf("%d subscribers missed %s event %s", missed, event.Type, event.EventID)
		}
	}
	return nil
}

func (svc *MarketService) acquireAction(ctx context.Context, name string) error {
	if timeout := svc.Config.ActionLockTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := svc.actions().Acquire(ctx, 1); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrActionBusy, name, err)
	}
	return nil
}

func (svc *MarketService) runNestedAction(ctx context.Context, frame *actionFrame, name string, fn func(ctx context.Context, tx bun.Tx) error) error {
	frame.savepoints++
	savepoint := fmt.Sprintf("market_action_%d", frame.savepoints)
	if _, err := frame.tx.ExecContext(ctx, "SAVEPOINT "+savepoint); err != nil {
		return err
	}
	queued := len(frame.events)
	if err := fn(ctx, frame.tx); err != nil {
		frame.events = frame.events[:queued]
		if _, rbErr := frame.tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+savepoint); rbErr != nil {
			return fmt.Errorf("%w (rollback of %s failed: %v)", err, name, rbErr)
		}
		if _, relErr := frame.tx.ExecContext(ctx, "RELEASE SAVEPOINT "+savepoint); relErr != nil {
			svc.Logger.Errorf("Failed to release savepoint %s: %v", savepoint, relErr)
		}
		svc.Logger.Debugf("nested %s failed: %v", name, err)
		return err
	}
	_, err := frame.tx.ExecContext(ctx, "RELEASE SAVEPOINT "+savepoint)
	return err
}
