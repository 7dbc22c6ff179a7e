package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// DefaultEmoji is assigned to accounts stored before the emoji field existed.
const DefaultEmoji = "💳"

type (
	TransactionType string

	// Date is a calendar day in YYYY-MM-DD form, no time component.
	// Values come straight from date pickers and are stored verbatim.
	Date string

	// Transaction is one recorded money movement. Transactions are
	// immutable once created; the only lifecycle operations are create
	// and delete by id.
	Transaction struct {
		ID        string          `json:"id"`
		Type      TransactionType `json:"type"`
		Amount    decimal.Decimal `json:"amount"`
		Category  string          `json:"category"`
		AccountID string          `json:"accountId,omitempty"`
		Date      Date            `json:"date"`
	}

	// Account is a named money container. Balance is stored
	// independently and is not derived from transactions that
	// reference the account.
	Account struct {
		ID      string          `json:"id"`
		Name    string          `json:"name"`
		Balance decimal.Decimal `json:"balance"`
		Emoji   string          `json:"emoji,omitempty"`
	}

	Category struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
)

var (
	ErrEmptyID       = errors.New("empty id")
	ErrEmptyName     = errors.New("empty name")
	ErrEmptyCategory = errors.New("empty category")
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidDate   = errors.New("invalid date")
)

const dateLayout = "2006-01-02"

// NewDate builds a Date from calendar parts.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(dateLayout))
}

// Today returns the current calendar day.
func Today() Date {
	return Date(time.Now().Format(dateLayout))
}

func (d Date) Validate() error {
	if _, err := time.Parse(dateLayout, string(d)); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// Month returns the YYYY-MM prefix of the date.
func (d Date) Month() string {
	if len(d) < 7 {
		return string(d)
	}
	return string(d[:7])
}

func (d Date) String() string { return string(d) }

func (t TransactionType) Validate() error {
	switch t {
	case Income, Expense:
		return nil
	}
	return ErrInvalidType
}

// Signed returns the transaction's contribution to a total: +amount
// for income, -amount for expense.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

func (t Transaction) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrEmptyID
	}
	if err := t.Type.Validate(); err != nil {
		return err
	}
	if t.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	return t.Date.Validate()
}

func (a Account) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	return nil
}
