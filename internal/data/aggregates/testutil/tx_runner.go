package testutil

import (
	"context"
	"sync"

	"github.com/yungbote/creatorhub-backend/internal/data/aggregates"
	"github.com/yungbote/creatorhub-backend/internal/platform/dbctx"
)

// InjectedTxRunner fails planner writes at a chosen point of the transaction.
// With Inner set the body runs inside Inner's transaction, so FailAfterBody rolls back
// whatever the body wrote. Without Inner the body runs on the context alone.
type InjectedTxRunner struct {
	Inner aggregates.TxRunner

	FailBeforeBody error
	FailAfterBody  error

	mu            sync.Mutex
	BeginCalls    int
	BodyCalls     int
	RollbackCalls int
}

var _ aggregates.TxRunner = (*InjectedTxRunner)(nil)

func (r *InjectedTxRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	r.mu.Lock()
	r.BeginCalls++
	before, after := r.FailBeforeBody, r.FailAfterBody
	r.mu.Unlock()

	if before != nil {
		r.rolledBack()
		return before
	}

	body := func(dbc dbctx.Context) error {
		r.mu.Lock()
		r.BodyCalls++
		r.mu.Unlock()
		if fn != nil {
			if err := fn(dbc); err != nil {
				return err
			}
		}
		return after
	}

	var err error
	if r.Inner != nil {
		err = r.Inner.InTx(ctx, body)
	} else {
		err = body(dbctx.Context{Ctx: ctx})
	}
	if err != nil {
		r.rolledBack()
	}
	return err
}

func (r *InjectedTxRunner) rolledBack() {
	r.mu.Lock()
	r.RollbackCalls++
	r.mu.Unlock()
}
