package category_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/texttx/internal/category"
	"github.com/MrJamesThe3rd/texttx/internal/transaction"
)

func TestService_Create(t *testing.T) {
	userID := uuid.New()

	type testCase struct {
		name      string
		params    category.CreateParams
		setupMock func(m *category.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name:   "Success",
			params: category.CreateParams{Name: " Mercado ", Type: transaction.TypeExpense},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *category.Category) error {
						c.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name:    "MissingName",
			params:  category.CreateParams{Name: "  ", Type: transaction.TypeExpense},
			wantErr: true,
		},
		{
			name:    "InvalidType",
			params:  category.CreateParams{Name: "Mercado", Type: "transfer"},
			wantErr: true,
		},
		{
			name:   "RepoError",
			params: category.CreateParams{Name: "Salário", Type: transaction.TypeIncome},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := category.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := category.NewService(repo).Create(context.Background(), userID, tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Mercado", got.Name)
			assert.Equal(t, userID, got.UserID)
			assert.NotEqual(t, uuid.Nil, got.ID)
		})
	}
}

func TestService_ListByType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	expense := transaction.TypeExpense

	repo := category.NewMockRepository(ctrl)
	repo.EXPECT().
		ListByUser(gomock.Any(), userID, &expense).
		Return([]category.Category{{Name: "Mercado", Type: expense}}, nil)

	got, err := category.NewService(repo).ListByType(context.Background(), userID, expense)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
}
