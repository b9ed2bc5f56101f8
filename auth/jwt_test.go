package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// signToken builds a token directly, bypassing GenerateToken, so tests can
// control expiry, subject, and signing key.
func signToken(t *testing.T, secret, sub string, expiresAt time.Time) string {
	t.Helper()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	token, err := GenerateToken("u1")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.Subject != "u1" {
		t.Errorf("subject = %q, want %q", claims.Subject, "u1")
	}
	if claims.ExpiresAt == nil {
		t.Fatal("token has no expiry")
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 29*time.Minute || ttl > 30*time.Minute {
		t.Errorf("default TTL = %v, want about 30m", ttl)
	}
}

func TestGenerateTokenTTLFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	t.Setenv("TOKEN_TTL_MINUTES", "5")

	token, err := GenerateToken("u1")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 4*time.Minute || ttl > 5*time.Minute {
		t.Errorf("TTL = %v, want about 5m", ttl)
	}
}

func TestValidateTokenRejections(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "expired token",
			token: signToken(t, "unit-test-secret", "u1", time.Now().Add(-time.Minute)),
		},
		{
			name:  "wrong signing key",
			token: signToken(t, "some-other-secret", "u1", time.Now().Add(time.Hour)),
		},
		{
			name:  "missing subject",
			token: signToken(t, "unit-test-secret", "", time.Now().Add(time.Hour)),
		},
		{
			name:  "garbage",
			token: "not.a.jwt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateToken(tt.token); err == nil {
				t.Error("ValidateToken accepted the token")
			}
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	router := gin.New()
	router.GET("/whoami", Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})

	valid, err := GenerateToken("u42")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "no header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not a bearer header", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "empty bearer", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer not.a.jwt", wantStatus: http.StatusUnauthorized},
		{
			name:       "expired token",
			header:     "Bearer " + signToken(t, "unit-test-secret", "u42", time.Now().Add(-time.Minute)),
			wantStatus: http.StatusUnauthorized,
		},
		{name: "valid token", header: "Bearer " + valid, wantStatus: http.StatusOK, wantBody: `"user_id":"u42"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantBody != "" && !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("body %s does not contain %s", w.Body.String(), tt.wantBody)
			}
		})
	}
}
