package transaction_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/texttx/internal/http/auth"
	txhttp "github.com/MrJamesThe3rd/texttx/internal/http/transaction"
	"github.com/MrJamesThe3rd/texttx/internal/transaction"
)

func newRouter(t *testing.T) (chi.Router, *transaction.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := transaction.NewMockRepository(ctrl)

	r := chi.NewRouter()
	txhttp.NewHandler(transaction.NewService(repo)).Routes(r)

	return r, repo
}

func TestHandler(t *testing.T) {
	userID := uuid.New()
	txID := uuid.New()
	groupID := uuid.New()

	stored := &transaction.Transaction{
		ID:                txID,
		UserID:            userID,
		Amount:            decimal.RequireFromString("150.00"),
		Type:              transaction.TypeExpense,
		Status:            transaction.StatusPending,
		Description:       "Tv (1/10)",
		Date:              time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC),
		GroupID:           &groupID,
		Installment:       1,
		TotalInstallments: 10,
	}

	type testCase struct {
		name       string
		method     string
		path       string
		anonymous  bool
		setupMock  func(repo *transaction.MockRepository)
		wantStatus int
		check      func(t *testing.T, body []byte)
	}

	tests := []testCase{
		{
			name:   "ListWithRange",
			method: http.MethodGet,
			path:   "/?start_date=2024-11-01&end_date=2024-11-30",
			setupMock: func(repo *transaction.MockRepository) {
				repo.EXPECT().ListTransactions(gomock.Any(), userID, gomock.Any()).
					DoAndReturn(func(_ any, _ uuid.UUID, f transaction.ListFilter) ([]*transaction.Transaction, error) {
						require.NotNil(t, f.StartDate)
						require.NotNil(t, f.EndDate)
						assert.Equal(t, 1, f.StartDate.Day())
						assert.Equal(t, 30, f.EndDate.Day())

						return []*transaction.Transaction{stored}, nil
					})
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var got []map[string]any
				require.NoError(t, json.Unmarshal(body, &got))
				require.Len(t, got, 1)
				assert.Equal(t, "150", got[0]["amount"])
				assert.Equal(t, "2024-11-20", got[0]["date"])

				inst, ok := got[0]["installment"].(map[string]any)
				require.True(t, ok)
				assert.EqualValues(t, 10, inst["total"])
			},
		},
		{
			name:       "ListBadDate",
			method:     http.MethodGet,
			path:       "/?start_date=20/11/2024",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Anonymous",
			method:     http.MethodGet,
			path:       "/",
			anonymous:  true,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "Get",
			method: http.MethodGet,
			path:   "/" + txID.String(),
			setupMock: func(repo *transaction.MockRepository) {
				repo.EXPECT().GetTransaction(gomock.Any(), userID, txID).Return(stored, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "GetNotFound",
			method: http.MethodGet,
			path:   "/" + txID.String(),
			setupMock: func(repo *transaction.MockRepository) {
				repo.EXPECT().GetTransaction(gomock.Any(), userID, txID).Return(nil, transaction.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "GetInvalidID",
			method:     http.MethodGet,
			path:       "/not-a-uuid",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "Delete",
			method: http.MethodDelete,
			path:   "/" + txID.String(),
			setupMock: func(repo *transaction.MockRepository) {
				repo.EXPECT().DeleteTransaction(gomock.Any(), userID, txID).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "DeleteFailure",
			method: http.MethodDelete,
			path:   "/" + txID.String(),
			setupMock: func(repo *transaction.MockRepository) {
				repo.EXPECT().DeleteTransaction(gomock.Any(), userID, txID).Return(assert.AnError)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo := newRouter(t)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if !tt.anonymous {
				req = req.WithContext(auth.WithUserID(req.Context(), userID))
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			if tt.check != nil {
				tt.check(t, rec.Body.Bytes())
			}
		})
	}
}
