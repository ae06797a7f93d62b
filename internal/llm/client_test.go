package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/texttx/internal/transaction"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Timeout: time.Second})
	require.NoError(t, err)

	return c
}

func completion(content string) []byte {
	resp := chatResponse{}
	resp.Choices = append(resp.Choices, struct {
		Message chatMessage `json:"message"`
	}{Message: chatMessage{Role: "assistant", Content: content}})

	b, _ := json.Marshal(resp)

	return b
}

func TestNewClient_RequiresKey(t *testing.T) {
	_, err := NewClient(Config{})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestClient_Extract(t *testing.T) {
	catID := uuid.New()

	type testCase struct {
		name    string
		status  int
		content string
		wantErr bool
		check   func(t *testing.T, ext *Extraction)
	}

	tests := []testCase{
		{
			name:   "PlainJSON",
			status: http.StatusOK,
			content: `{"type":"EXPENSE","amount":1500,"amountPerInstallment":150,"installments":10,` +
				`"description":"Geladeira","date":"2024-11-14","categoryId":"` + catID.String() + `",` +
				`"categoryName":"Casa","confidence":0.92,"patterns":["em 10x"],"notes":""}`,
			check: func(t *testing.T, ext *Extraction) {
				assert.Equal(t, transaction.TypeExpense, ext.TransactionType())
				assert.True(t, ext.Amount.Decimal.Equal(decimal.NewFromInt(1500)))
				assert.True(t, ext.AmountPerInstallment.Decimal.Equal(decimal.NewFromInt(150)))
				require.NotNil(t, ext.Installments)
				assert.Equal(t, 10, *ext.Installments)
				assert.Equal(t, &catID, ext.ParsedCategoryID())

				d := ext.ParsedDate(time.UTC)
				require.NotNil(t, d)
				assert.Equal(t, time.Date(2024, 11, 14, 0, 0, 0, 0, time.UTC), *d)
			},
		},
		{
			name:    "MarkdownWrapped",
			status:  http.StatusOK,
			content: "```json\n{\"type\":\"INCOME\",\"amount\":5000,\"description\":\"Salario\",\"confidence\":0.8}\n```",
			check: func(t *testing.T, ext *Extraction) {
				assert.Equal(t, transaction.TypeIncome, ext.TransactionType())
				assert.False(t, ext.AmountPerInstallment.Valid)
				assert.Nil(t, ext.ParsedDate(time.UTC))
				assert.Nil(t, ext.ParsedCategoryID())
			},
		},
		{
			name:    "ZeroInstallmentsAccepted",
			status:  http.StatusOK,
			content: `{"type":"EXPENSE","amount":18,"installments":0,"description":"Padaria","confidence":0.7}`,
			check: func(t *testing.T, ext *Extraction) {
				require.NotNil(t, ext.Installments)
				assert.Equal(t, 0, *ext.Installments)
				assert.True(t, ext.Amount.Decimal.Equal(decimal.NewFromInt(18)))
			},
		},
		{
			name:    "SchemaViolation",
			status:  http.StatusOK,
			content: `{"type":"TRANSFER","amount":10}`,
			wantErr: true,
		},
		{
			name:    "NotJSON",
			status:  http.StatusOK,
			content: "Desculpe, não entendi.",
			wantErr: true,
		},
		{
			name:    "ProviderError",
			status:  http.StatusTooManyRequests,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got chatRequest

			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/chat/completions", r.URL.Path)
				assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
				require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

				w.WriteHeader(tt.status)
				_, _ = w.Write(completion(tt.content))
			})

			ext, err := c.Extract(context.Background(), ExtractionRequest{
				OriginalText:   "Comprei geladeira de 1500 em 10x",
				NormalizedText: "comprei geladeira de 1500 em 10x",
				Categories:     []CategoryOption{{ID: catID, Name: "Casa", Type: transaction.TypeExpense}},
			})

			assert.Equal(t, defaultModel, got.Model)
			assert.Equal(t, extractionMaxToken, got.MaxTokens)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			tt.check(t, ext)
		})
	}
}

func TestClient_CorrectSpelling(t *testing.T) {
	type testCase struct {
		name    string
		content string
		want    string
		wantErr bool
	}

	tests := []testCase{
		{name: "Corrected", content: "\"televisao\"\n", want: "Televisao"},
		{name: "NullAnswer", content: "null", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				var req chatRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, spellingMaxTokens, req.MaxTokens)

				_, _ = w.Write(completion(tt.content))
			})

			got, err := c.CorrectSpelling(context.Background(), "televisao")
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrEmptyResponse)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildExtractionPrompt(t *testing.T) {
	catID := uuid.New()

	prompt := buildExtractionPrompt(ExtractionRequest{
		OriginalText:   "Uber 25",
		NormalizedText: "uber 25",
		Today:          time.Date(2024, 11, 14, 0, 0, 0, 0, time.UTC),
		History: []HistoryItem{{
			Text:        "Uber 30",
			Type:        transaction.TypeExpense,
			Amount:      decimal.NewNullDecimal(decimal.NewFromInt(30)),
			Description: "Uber",
		}},
		Categories: []CategoryOption{{ID: catID, Name: "Transporte", Type: transaction.TypeExpense}},
	})

	assert.Contains(t, prompt, "DATA DE HOJE: 2024-11-14")
	assert.Contains(t, prompt, "TEXTO NORMALIZADO: uber 25")
	assert.Contains(t, prompt, `- Texto: "Uber 30" → Tipo: EXPENSE, Valor: 30.00, Descrição: Uber`)
	assert.Contains(t, prompt, "- ID: "+catID.String()+", Nome: Transporte, Tipo: EXPENSE")
}

func TestCleanMarkdownWrapper(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanMarkdownWrapper("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanMarkdownWrapper("```\n{\"a\":1}```"))
	assert.Equal(t, `{"a":1}`, cleanMarkdownWrapper(`  {"a":1} `))
}
