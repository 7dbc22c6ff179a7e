package core

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestDateValidate(t *testing.T) {
	cases := []struct {
		d  Date
		ok bool
	}{
		{NewDate(2025, time.January, 1), true},
		{Date("2024-12-31"), true},
		{Date(""), false},
		{Date("2024-13-01"), false},
		{Date("2024-01-32"), false},
		{Date("01/02/2024"), false},
		{Date("2024-1-2"), false},
	}
	for i, tc := range cases {
		err := tc.d.Validate()
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestDateMonth(t *testing.T) {
	if got := Date("2024-01-15").Month(); got != "2024-01" {
		t.Fatalf("unexpected month prefix: %q", got)
	}
}

func TestTransactionSigned(t *testing.T) {
	amount := decimal.NewFromInt(100)
	in := Transaction{Type: Income, Amount: amount}
	if !in.Signed().Equal(amount) {
		t.Fatalf("income should contribute +amount, got %s", in.Signed())
	}
	out := Transaction{Type: Expense, Amount: amount}
	if !out.Signed().Equal(amount.Neg()) {
		t.Fatalf("expense should contribute -amount, got %s", out.Signed())
	}
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		ID:       "t1",
		Type:     Income,
		Amount:   decimal.NewFromInt(100),
		Category: "Salary",
		Date:     Date("2024-01-01"),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Transaction{
		{ID: "", Type: Income, Amount: decimal.NewFromInt(1), Category: "c", Date: "2024-01-01"},
		{ID: "t", Type: "transfer", Amount: decimal.NewFromInt(1), Category: "c", Date: "2024-01-01"},
		{ID: "t", Type: Expense, Amount: decimal.NewFromInt(-1), Category: "c", Date: "2024-01-01"},
		{ID: "t", Type: Income, Amount: decimal.NewFromInt(1), Category: "", Date: "2024-01-01"},
		{ID: "t", Type: Income, Amount: decimal.NewFromInt(1), Category: "c", Date: "yesterday"},
	}
	for i, txn := range bads {
		if err := txn.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestAccountValidate(t *testing.T) {
	good := Account{ID: "cash", Name: "Cash"}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Account{ID: "", Name: "Cash"}).Validate(); err == nil {
		t.Fatalf("expected error for empty id")
	}
	if err := (Account{ID: "cash", Name: "  "}).Validate(); err == nil {
		t.Fatalf("expected error for blank name")
	}
}

func TestCategoryValidate(t *testing.T) {
	if err := (Category{ID: "food", Name: "Food"}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Category{ID: "food"}).Validate(); err == nil {
		t.Fatalf("expected error for empty name")
	}
}
