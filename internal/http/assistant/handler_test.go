package assistant_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/texttx/internal/assistant"
	"github.com/MrJamesThe3rd/texttx/internal/category"
	asshttp "github.com/MrJamesThe3rd/texttx/internal/http/assistant"
	"github.com/MrJamesThe3rd/texttx/internal/http/auth"
	"github.com/MrJamesThe3rd/texttx/internal/transaction"
)

var fixedNow = time.Date(2024, 11, 14, 10, 0, 0, 0, time.UTC)

type mocks struct {
	cats    *assistant.MockCategoryProvider
	creator *assistant.MockTransactionCreator
}

func TestHandler(t *testing.T) {
	userID := uuid.New()
	food := category.Category{ID: uuid.New(), UserID: userID, Name: "Alimentação", Type: transaction.TypeExpense}
	salary := category.Category{ID: uuid.New(), UserID: userID, Name: "Salário", Type: transaction.TypeIncome}

	type testCase struct {
		name        string
		path        string
		contentType string
		body        []byte
		setupMock   func(m mocks)
		wantStatus  int
		check       func(t *testing.T, got map[string]any)
	}

	tests := []testCase{
		{
			name: "ExtractNeedsConfirmation",
			path: "/extract",
			body: []byte(`{"text":"recebi 200 hoje"}`),
			setupMock: func(m mocks) {
				m.cats.EXPECT().List(gomock.Any(), userID).Return([]category.Category{food}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, got map[string]any) {
				assert.Equal(t, "needs_confirmation", got["kind"])

				draft := got["draft"].(map[string]any)
				assert.Equal(t, "200", draft["amount"])
				assert.Equal(t, "2024-11-14", draft["date"])
				assert.Equal(t, "income", draft["type"])
				assert.Equal(t, true, draft["is_paid"])
			},
		},
		{
			name: "ExtractNeedsInfo",
			path: "/extract",
			body: []byte(`{"text":"gastei com mercado"}`),
			setupMock: func(m mocks) {
				m.cats.EXPECT().List(gomock.Any(), userID).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, got map[string]any) {
				assert.Equal(t, "needs_info", got["kind"])
				assert.Equal(t, "gastei com mercado", got["text"])
				assert.Len(t, got["missing"], 2)
			},
		},
		{
			name: "ContinueWithPreviousText",
			path: "/extract",
			body: []byte(`{"text":"50 reais hoje","previous_text":"gastei com mercado"}`),
			setupMock: func(m mocks) {
				m.cats.EXPECT().List(gomock.Any(), userID).Return([]category.Category{food}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, got map[string]any) {
				assert.Equal(t, "needs_confirmation", got["kind"])

				draft := got["draft"].(map[string]any)
				assert.Equal(t, "Alimentação", draft["category_name"])
			},
		},
		{
			// "Salário 3000 hoje" in Windows-1252.
			name:        "ExtractPlainTextLatin1",
			path:        "/extract",
			contentType: "text/plain; charset=windows-1252",
			body:        []byte{'S', 'a', 'l', 0xE1, 'r', 'i', 'o', ' ', '3', '0', '0', '0', ' ', 'h', 'o', 'j', 'e'},
			setupMock: func(m mocks) {
				m.cats.EXPECT().List(gomock.Any(), userID).Return([]category.Category{salary}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, got map[string]any) {
				assert.Equal(t, "needs_confirmation", got["kind"])

				draft := got["draft"].(map[string]any)
				assert.Equal(t, "3000", draft["amount"])
				assert.Equal(t, "Salário", draft["category_name"])
			},
		},
		{
			name:       "ExtractEmptyText",
			path:       "/extract",
			body:       []byte(`{"text":"  "}`),
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "SelectCategory",
			path: "/category",
			body: []byte(`{"category_id":"` + food.ID.String() + `","draft":{"description":"Livro","amount":"80","type":"expense","date":"2024-11-14","total_installments":1}}`),
			setupMock: func(m mocks) {
				m.cats.EXPECT().Get(gomock.Any(), userID, food.ID).Return(&food, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, got map[string]any) {
				assert.Equal(t, "needs_confirmation", got["kind"])
				assert.Contains(t, got["prompt"], "• Categoria: Alimentação")
			},
		},
		{
			name: "SelectCategoryWrongType",
			path: "/category",
			body: []byte(`{"category_id":"` + salary.ID.String() + `","draft":{"amount":"80","type":"expense","date":"2024-11-14"}}`),
			setupMock: func(m mocks) {
				m.cats.EXPECT().Get(gomock.Any(), userID, salary.ID).Return(&salary, nil)
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "Confirm",
			path: "/confirm",
			body: []byte(`{"draft":{"description":"Tv","amount":"150","type":"expense","date":"2024-11-14","category_id":"` + food.ID.String() + `","total_installments":10}}`),
			setupMock: func(m mocks) {
				m.cats.EXPECT().Get(gomock.Any(), userID, food.ID).Return(&food, nil)
				m.creator.EXPECT().CreateFromDraft(gomock.Any(), gomock.Any()).Return([]*transaction.Transaction{{ID: uuid.New()}, {ID: uuid.New()}}, nil)
			},
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, got map[string]any) {
				assert.Equal(t, "success", got["kind"])
				assert.Equal(t, "Transação criada com sucesso! Criada compra parcelada de 10 parcelas de R$ 150,00 cada (total: R$ 1500,00).", got["message"])
				assert.Len(t, got["transaction_ids"], 2)
			},
		},
		{
			name: "ExtractUnevenSplitKeepsStatedTotal",
			path: "/extract",
			body: []byte(`{"text":"gastei no mercado 1500 em 9x hoje"}`),
			setupMock: func(m mocks) {
				m.cats.EXPECT().List(gomock.Any(), userID).Return([]category.Category{food}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, got map[string]any) {
				assert.Equal(t, "needs_confirmation", got["kind"])
				assert.Contains(t, got["prompt"], "(Total: R$ 1500,00)")

				draft := got["draft"].(map[string]any)
				assert.Equal(t, "166.67", draft["amount"])
				assert.Equal(t, "1500", draft["total_amount"])
			},
		},
		{
			name: "ConfirmUnevenSplitKeepsStatedTotal",
			path: "/confirm",
			body: []byte(`{"draft":{"description":"Mercado","amount":"166.67","total_amount":"1500","type":"expense","date":"2024-11-14","total_installments":9}}`),
			setupMock: func(m mocks) {
				m.creator.EXPECT().CreateFromDraft(gomock.Any(), gomock.Any()).Return([]*transaction.Transaction{{ID: uuid.New()}}, nil)
			},
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, got map[string]any) {
				assert.Equal(t, "Transação criada com sucesso! Criada compra parcelada de 9 parcelas de R$ 166,67 cada (total: R$ 1500,00).", got["message"])
			},
		},
		{
			name: "ConfirmInconsistentTotalIsDerived",
			path: "/confirm",
			body: []byte(`{"draft":{"description":"Mercado","amount":"166.67","total_amount":"99999","type":"expense","date":"2024-11-14","total_installments":9}}`),
			setupMock: func(m mocks) {
				m.creator.EXPECT().CreateFromDraft(gomock.Any(), gomock.Any()).Return([]*transaction.Transaction{{ID: uuid.New()}}, nil)
			},
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, got map[string]any) {
				assert.Contains(t, got["message"], "(total: R$ 1500,03)")
			},
		},
		{
			name:       "ConfirmTooManyInstallments",
			path:       "/confirm",
			body:       []byte(`{"draft":{"amount":"10","type":"expense","date":"2024-11-14","total_installments":9223372036854775807}}`),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "ConfirmBadDate",
			path:       "/confirm",
			body:       []byte(`{"draft":{"amount":"10","type":"expense","date":"14/11/2024"}}`),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "ConfirmMissingDraft",
			path:       "/confirm",
			body:       []byte(`{}`),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "TrainWithoutProvider",
			path:       "/train",
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := mocks{
				cats:    assistant.NewMockCategoryProvider(ctrl),
				creator: assistant.NewMockTransactionCreator(ctrl),
			}

			if tt.setupMock != nil {
				tt.setupMock(m)
			}

			svc := assistant.NewService(m.cats, assistant.NewMockPatternFinder(ctrl), nil, m.creator, assistant.Options{}).
				WithClock(func() time.Time { return fixedNow })

			router := chi.NewRouter()
			asshttp.NewHandler(svc).Routes(router)

			req := httptest.NewRequest(http.MethodPost, tt.path, bytes.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			req = req.WithContext(auth.WithUserID(req.Context(), userID))

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			if tt.check != nil {
				var got map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				tt.check(t, got)
			}
		})
	}
}

func TestHandler_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := assistant.NewService(assistant.NewMockCategoryProvider(ctrl), assistant.NewMockPatternFinder(ctrl), nil,
		assistant.NewMockTransactionCreator(ctrl), assistant.Options{})

	router := chi.NewRouter()
	asshttp.NewHandler(svc).Routes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/extract", bytes.NewReader([]byte(`{"text":"uber 20"}`))))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
