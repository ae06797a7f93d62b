package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/texttx/internal/http/auth"
)

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.RegisteredClaims) string {
	t.Helper()

	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return s
}

func TestVerifier_Middleware(t *testing.T) {
	const secret = "test-secret"

	userID := uuid.New()
	verifier := auth.NewVerifier(secret)

	valid, err := verifier.Issue(userID, time.Hour)
	require.NoError(t, err)

	future := jwt.NewNumericDate(time.Now().Add(time.Hour))

	type testCase struct {
		name       string
		header     string
		wantStatus int
	}

	tests := []testCase{
		{name: "Valid", header: "Bearer " + valid, wantStatus: http.StatusOK},
		{name: "MissingHeader", wantStatus: http.StatusUnauthorized},
		{name: "NotBearer", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{
			name: "WrongSecret",
			header: "Bearer " + sign(t, jwt.SigningMethodHS256, []byte("other"),
				jwt.RegisteredClaims{Subject: userID.String(), ExpiresAt: future}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "Expired",
			header: "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret),
				jwt.RegisteredClaims{Subject: userID.String(), ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "NoExpiry",
			header: "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret),
				jwt.RegisteredClaims{Subject: userID.String()}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "SubjectNotUUID",
			header: "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(secret),
				jwt.RegisteredClaims{Subject: "alice", ExpiresAt: future}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "WrongAlgorithm",
			header: "Bearer " + sign(t, jwt.SigningMethodHS512, []byte(secret),
				jwt.RegisteredClaims{Subject: userID.String(), ExpiresAt: future}),
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got uuid.UUID

			h := verifier.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = auth.UserID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, userID, got)
			}
		})
	}
}

func TestVerifier_EmptySecretRejects(t *testing.T) {
	issued, err := auth.NewVerifier("x").Issue(uuid.New(), time.Hour)
	require.NoError(t, err)

	_, err = auth.NewVerifier("").Verify(issued)
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)
}
