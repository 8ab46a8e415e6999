package repos

import (
	"context"
	"testing"
	"time"

	"github.com/ovenly/bakeshop-backend/internal/data/repos/testutil"
	"github.com/ovenly/bakeshop-backend/internal/domain"
)

func TestPaymentRepoListDateRange(t *testing.T) {
	gdb := testutil.DB(t)
	ctx := context.Background()
	repo := NewPaymentRepo(gdb, testutil.Logger(t))

	customer := testutil.SeedCustomer(t, ctx, gdb, "cj")
	order := testutil.SeedOrder(t, ctx, gdb, customer.ID)

	dates := []domain.Date{
		domain.NewDate(2022, time.January, 1),
		domain.NewDate(2022, time.January, 15),
		domain.NewDate(2022, time.February, 1),
	}
	for _, d := range dates {
		p := &domain.Payment{OrderID: order.ID, Amount: 10, Method: domain.PaymentCash, Date: d}
		if err := repo.Create(ctx, nil, p); err != nil {
			t.Fatalf("Create %s: %v", d, err)
		}
	}

	rows, total, err := repo.List(ctx, nil, PaymentFilter{})
	if err != nil || total != 3 || len(rows) != 3 {
		t.Fatalf("List all: total=%d len=%d err=%v", total, len(rows), err)
	}

	start := domain.NewDate(2022, time.January, 15)
	rows, total, err = repo.List(ctx, nil, PaymentFilter{InclusiveStartDate: &start})
	if err != nil || total != 2 {
		t.Fatalf("List from start: total=%d err=%v", total, err)
	}

	// End date is exclusive.
	end := domain.NewDate(2022, time.February, 1)
	rows, total, err = repo.List(ctx, nil, PaymentFilter{ExclusiveEndDate: &end})
	if err != nil || total != 2 {
		t.Fatalf("List until end: total=%d err=%v", total, err)
	}
	for _, p := range rows {
		if !p.Date.Before(end.Time) {
			t.Fatalf("payment on %s should be excluded by end %s", p.Date, end)
		}
	}

	rows, total, err = repo.List(ctx, nil, PaymentFilter{InclusiveStartDate: &start, ExclusiveEndDate: &end})
	if err != nil || total != 1 || rows[0].Date.String() != "2022-01-15" {
		t.Fatalf("List window: total=%d err=%v", total, err)
	}
}
