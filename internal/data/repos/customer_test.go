package repos

import (
	"context"
	"testing"

	"github.com/ovenly/bakeshop-backend/internal/data/repos/testutil"
	"github.com/ovenly/bakeshop-backend/internal/domain"
)

func TestCustomerRepoCreateAndGet(t *testing.T) {
	gdb := testutil.DB(t)
	ctx := context.Background()
	repo := NewCustomerRepo(gdb, testutil.Logger(t))

	c := &domain.Customer{
		Name:  "cj",
		Email: testutil.Ptr("cj@x.com"),
		Phone: testutil.Ptr("(330) 867-5309"),
	}
	if err := repo.Create(ctx, nil, c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.ID == 0 {
		t.Fatal("expected generated id")
	}
	if c.DateCreated.IsZero() || c.DateModified.IsZero() {
		t.Fatal("expected timestamps to be populated")
	}

	got, err := repo.GetByID(ctx, nil, c.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.Name != "cj" || got.Email == nil || *got.Email != "cj@x.com" {
		t.Fatalf("GetByID: got %+v", got)
	}

	missing, err := repo.GetByID(ctx, nil, 9999)
	if err != nil || missing != nil {
		t.Fatalf("GetByID missing: got=%v err=%v", missing, err)
	}
}

func TestCustomerRepoUniqueEmail(t *testing.T) {
	gdb := testutil.DB(t)
	ctx := context.Background()
	repo := NewCustomerRepo(gdb, testutil.Logger(t))

	first := &domain.Customer{Name: "cj", Email: testutil.Ptr("cj@x.com")}
	if err := repo.Create(ctx, nil, first); err != nil {
		t.Fatalf("Create first: %v", err)
	}

	dup := &domain.Customer{Name: "other", Email: testutil.Ptr("cj@x.com")}
	err := repo.Create(ctx, nil, dup)
	if err == nil {
		t.Fatal("expected conflict on duplicate email")
	}
	if !domain.IsCode(err, domain.CodeConflict) {
		t.Fatalf("expected conflict code, got %v", err)
	}
	if got := domain.MessageOf(err); got != "A customer already exists with that email" {
		t.Fatalf("message = %q", got)
	}
}

func TestCustomerRepoListFiltersAndOrder(t *testing.T) {
	gdb := testutil.DB(t)
	ctx := context.Background()
	repo := NewCustomerRepo(gdb, testutil.Logger(t))

	seed := []*domain.Customer{
		{Name: "alice", Email: testutil.Ptr("alice@x.com")},
		{Name: "bob", Email: testutil.Ptr("bob@x.com")},
		{Name: "carol", Phone: testutil.Ptr("(111) 222-3333")},
	}
	for _, c := range seed {
		if err := repo.Create(ctx, nil, c); err != nil {
			t.Fatalf("seed %s: %v", c.Name, err)
		}
	}

	rows, total, err := repo.List(ctx, nil, CustomerFilter{})
	if err != nil || total != 3 || len(rows) != 3 {
		t.Fatalf("List all: total=%d len=%d err=%v", total, len(rows), err)
	}
	if rows[0].Name != "alice" || rows[2].Name != "carol" {
		t.Fatalf("default ascending name order broken: %s..%s", rows[0].Name, rows[2].Name)
	}

	rows, total, err = repo.List(ctx, nil, CustomerFilter{Name: testutil.Ptr("bob")})
	if err != nil || total != 1 || len(rows) != 1 || rows[0].Name != "bob" {
		t.Fatalf("List by name: total=%d err=%v", total, err)
	}

	// Exact match only, no prefix expansion.
	rows, total, err = repo.List(ctx, nil, CustomerFilter{Name: testutil.Ptr("bo")})
	if err != nil || total != 0 || len(rows) != 0 {
		t.Fatalf("List by name prefix should not match: total=%d err=%v", total, err)
	}

	rows, _, err = repo.List(ctx, nil, CustomerFilter{OrderBy: "name", Descending: true})
	if err != nil || rows[0].Name != "carol" {
		t.Fatalf("descending order broken: err=%v", err)
	}

	rows, total, err = repo.List(ctx, nil, CustomerFilter{Offset: 1, Limit: 1})
	if err != nil || total != 3 || len(rows) != 1 || rows[0].Name != "bob" {
		t.Fatalf("pagination: total=%d len=%d err=%v", total, len(rows), err)
	}
}

func TestCustomerRepoUpdate(t *testing.T) {
	gdb := testutil.DB(t)
	ctx := context.Background()
	repo := NewCustomerRepo(gdb, testutil.Logger(t))

	c := &domain.Customer{Name: "cj"}
	if err := repo.Create(ctx, nil, c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	c.Notes = testutil.Ptr("gluten free")
	if err := repo.Update(ctx, nil, c); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := repo.GetByID(ctx, nil, c.ID)
	if err != nil || got == nil || got.Notes == nil || *got.Notes != "gluten free" {
		t.Fatalf("after update: got=%+v err=%v", got, err)
	}
}
