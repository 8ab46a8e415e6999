package services

import (
	"context"
	"testing"

	"github.com/ovenly/bakeshop-backend/internal/data/repos"
	"github.com/ovenly/bakeshop-backend/internal/data/repos/testutil"
	"github.com/ovenly/bakeshop-backend/internal/domain"
)

func newCustomerService(t *testing.T) CustomerService {
	t.Helper()
	gdb := testutil.DB(t)
	log := testutil.Logger(t)
	return NewCustomerService(log, repos.NewCustomerRepo(gdb, log))
}

func TestCustomerCreateLowercasesName(t *testing.T) {
	svc := newCustomerService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CustomerCreate{
		Name:  "CJ",
		Email: testutil.Ptr("cj@x.com"),
		Phone: testutil.Ptr("(330) 867-5309"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Name != "cj" {
		t.Fatalf("name = %q, want lowercased", created.Name)
	}

	// Filters on name are lowercased too, so mixed-case input still hits.
	found, total, err := svc.List(ctx, CustomerListParams{Name: testutil.Ptr("CJ")})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(found) != 1 || found[0].ID != created.ID {
		t.Fatalf("list by mixed-case name: total=%d found=%+v", total, found)
	}
}

func TestCustomerListRejectsUnknownOrderBy(t *testing.T) {
	svc := newCustomerService(t)
	_, _, err := svc.List(context.Background(), CustomerListParams{OrderBy: "notes"})
	if !domain.IsCode(err, domain.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if got := domain.MessageOf(err); got != "orderby must be one of name, email, phone" {
		t.Fatalf("message = %q", got)
	}
}

func TestCustomerGetAndUpdateNotFound(t *testing.T) {
	svc := newCustomerService(t)
	ctx := context.Background()

	if _, err := svc.Get(ctx, 42); !domain.IsCode(err, domain.CodeNotFound) {
		t.Fatalf("Get missing: %v", err)
	}
	if _, err := svc.Update(ctx, 42, domain.CustomerPatch{}); !domain.IsCode(err, domain.CodeNotFound) {
		t.Fatalf("Update missing: %v", err)
	}
}

func TestCustomerUpdateSparse(t *testing.T) {
	svc := newCustomerService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CustomerCreate{
		Name:  "cj",
		Email: testutil.Ptr("cj@x.com"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, domain.CustomerPatch{
		Notes: testutil.Ptr("Prefers pickup"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Notes == nil || *updated.Notes != "Prefers pickup" {
		t.Fatalf("notes = %v", updated.Notes)
	}
	if updated.Email == nil || *updated.Email != "cj@x.com" || updated.Name != "cj" {
		t.Fatalf("omitted fields changed: %+v", updated)
	}

	// Name edits get the same normalization as creates.
	updated, err = svc.Update(ctx, created.ID, domain.CustomerPatch{Name: testutil.Ptr("CJ Jones")})
	if err != nil {
		t.Fatalf("Update name: %v", err)
	}
	if updated.Name != "cj jones" {
		t.Fatalf("name = %q", updated.Name)
	}
}
