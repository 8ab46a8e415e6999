package repos

import (
	"errors"
	"testing"

	"github.com/ovenly/bakeshop-backend/internal/domain"
)

func TestUniqueViolationMessage(t *testing.T) {
	cases := []struct {
		table, column, want string
	}{
		{"customers", "email", "A customer already exists with that email"},
		{"customers", "phone", "A customer already exists with that phone"},
		{"menu_categories", "name", "A menu category already exists with that name"},
		{"campaigns", "name", "A campaign already exists with that name"},
		{"users", "name", "A user already exists with that name"},
	}
	for _, tc := range cases {
		if got := UniqueViolationMessage(tc.table, tc.column); got != tc.want {
			t.Errorf("UniqueViolationMessage(%q, %q) = %q, want %q", tc.table, tc.column, got, tc.want)
		}
	}
}

func TestTranslateSQLiteUnique(t *testing.T) {
	raw := errors.New("UNIQUE constraint failed: customers.email")
	err := Translate("customer.create", raw)

	var dErr *domain.Error
	if !errors.As(err, &dErr) {
		t.Fatalf("expected *domain.Error, got %T", err)
	}
	if dErr.Code != domain.CodeConflict {
		t.Fatalf("code = %q, want %q", dErr.Code, domain.CodeConflict)
	}
	if dErr.Message != "A customer already exists with that email" {
		t.Fatalf("message = %q", dErr.Message)
	}
	if !errors.Is(err, raw) {
		t.Fatal("translated error should wrap the cause")
	}
}

func TestTranslateUnknown(t *testing.T) {
	err := Translate("customer.create", errors.New("disk on fire"))
	if !domain.IsCode(err, domain.CodeInternal) {
		t.Fatalf("expected internal code, got %v", err)
	}
}

func TestTranslateNil(t *testing.T) {
	if err := Translate("noop", nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
