// Package ids supplies unique string identifiers for new entities.
package ids

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Generator produces globally unique ids for new records.
type Generator interface {
	NewID() string
}

// UUID generates random UUIDv4 ids, the format used for transactions
// and categories.
type UUID struct{}

func (UUID) NewID() string { return uuid.NewString() }

// Timestamp derives ids from the current time in milliseconds.
// Accounts have always used this scheme and stored data depends on it
// staying stable.
type Timestamp struct{}

func (Timestamp) NewID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}
