package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/texttx/internal/category"
	"github.com/MrJamesThe3rd/texttx/internal/transaction"
)

var categoryColumns = []string{"id", "user_id", "name", "icon", "color", "type", "created_at"}

func TestStore_ListByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	userID := uuid.New()
	now := time.Now()
	expense := transaction.TypeExpense

	mock.ExpectQuery(regexp.QuoteMeta(listCategoriesQuery)).
		WithArgs(userID, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(categoryColumns).
			AddRow(uuid.New(), userID, "Mercado", "cart", "#00ff00", "expense", now).
			AddRow(uuid.New(), userID, "Transporte", "car", "#0000ff", "expense", now))

	cats, err := New(mock).ListByUser(context.Background(), userID, &expense)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "Mercado", cats[0].Name)
	assert.Equal(t, transaction.TypeExpense, cats[1].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Get_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id, userID := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(getCategoryQuery)).
		WithArgs(id, userID).
		WillReturnRows(pgxmock.NewRows(categoryColumns))

	_, err = New(mock).Get(context.Background(), userID, id)
	assert.ErrorIs(t, err, category.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id, userID := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(insertCategoryQuery)).
		WithArgs(userID, "Salário", "", "", "income").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(id, time.Now()))

	c := &category.Category{UserID: userID, Name: "Salário", Type: transaction.TypeIncome}
	require.NoError(t, New(mock).Create(context.Background(), c))
	assert.Equal(t, id, c.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
