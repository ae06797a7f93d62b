package category

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/texttx/internal/transaction"
)

var ErrNotFound = errors.New("category not found")

// Category is a user-owned label for transactions of one type.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Icon      string
	Color     string
	Type      transaction.Type
	CreatedAt time.Time
}
