package usage

import (
	"context"
	"testing"
	"time"

	"github.com/yungbote/creatorhub-backend/internal/data/repos/testutil"
	domainusage "github.com/yungbote/creatorhub-backend/internal/domain/usage"
	"github.com/yungbote/creatorhub-backend/internal/platform/dbctx"
)

func TestUsageCounterRepoIncrementCapped(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewUsageCounterRepo(db, testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, tx, "usagerepo@example.com")
	now := time.Now().UTC()

	for i := 1; i <= 2; i++ {
		count, ok, err := repo.IncrementCapped(dbc, u.ID, domainusage.FeatureHook, 2, now)
		if err != nil {
			t.Fatalf("IncrementCapped #%d: %v", i, err)
		}
		if !ok || count != i {
			t.Fatalf("IncrementCapped #%d: ok=%v count=%d", i, ok, count)
		}
	}

	count, ok, err := repo.IncrementCapped(dbc, u.ID, domainusage.FeatureHook, 2, now)
	if err != nil {
		t.Fatalf("IncrementCapped (at cap): %v", err)
	}
	if ok || count != 2 {
		t.Fatalf("IncrementCapped (at cap): ok=%v count=%d", ok, count)
	}

	if _, ok, err := repo.IncrementCapped(dbc, u.ID, domainusage.FeatureScript, 2, now); err != nil || !ok {
		t.Fatalf("IncrementCapped (other feature): ok=%v err=%v", ok, err)
	}

	rows, err := repo.ListByUser(dbc, u.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	counts := map[domainusage.Feature]int{}
	for _, r := range rows {
		counts[r.Feature] = r.Count
	}
	if counts[domainusage.FeatureHook] != 2 || counts[domainusage.FeatureScript] != 1 || len(counts) != 2 {
		t.Fatalf("ListByUser: unexpected counts %+v", counts)
	}
}
