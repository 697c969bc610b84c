package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestResolver_MintAndParse(t *testing.T) {
	r := NewResolver([]byte("test-secret"))

	token, err := r.Mint(7, time.Hour)
	if err != nil {
		t.Fatalf("Mint() error: %v", err)
	}

	id, ok := r.Parse(token)
	if !ok {
		t.Fatal("Parse() should resolve a freshly minted token")
	}
	if id != 7 {
		t.Errorf("Parse() = %d, want 7", id)
	}
}

func TestResolver_FromRequest(t *testing.T) {
	r := NewResolver([]byte("test-secret"))
	token, err := r.Mint(42, time.Hour)
	if err != nil {
		t.Fatalf("Mint() error: %v", err)
	}

	tests := []struct {
		name   string
		header string
		wantID int64
		wantOK bool
	}{
		{"valid bearer", "Bearer " + token, 42, true},
		{"missing header", "", 0, false},
		{"wrong scheme", "Basic " + token, 0, false},
		{"garbage token", "Bearer not.a.jwt", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/expenses", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			id, ok := r.FromRequest(req)
			if ok != tt.wantOK {
				t.Fatalf("FromRequest() ok = %v, want %v", ok, tt.wantOK)
			}
			if id != tt.wantID {
				t.Errorf("FromRequest() id = %d, want %d", id, tt.wantID)
			}
		})
	}
}

func TestResolver_FailsClosed(t *testing.T) {
	r := NewResolver([]byte("test-secret"))

	mint := func(secret []byte, claims jwt.MapClaims) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		s, err := token.SignedString(secret)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		return s
	}

	exp := time.Now().Add(time.Hour).Unix()
	tests := []struct {
		name  string
		token string
	}{
		{"wrong secret", mint([]byte("other-secret"), jwt.MapClaims{"userId": "7", "exp": exp})},
		{"expired", mint([]byte("test-secret"), jwt.MapClaims{"userId": "7", "exp": time.Now().Add(-time.Hour).Unix()})},
		{"missing claim", mint([]byte("test-secret"), jwt.MapClaims{"exp": exp})},
		{"non-integer string claim", mint([]byte("test-secret"), jwt.MapClaims{"userId": "abc", "exp": exp})},
		{"fractional number claim", mint([]byte("test-secret"), jwt.MapClaims{"userId": 7.5, "exp": exp})},
		{"boolean claim", mint([]byte("test-secret"), jwt.MapClaims{"userId": true, "exp": exp})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if id, ok := r.Parse(tt.token); ok {
				t.Errorf("Parse() resolved id %d, want absent", id)
			}
		})
	}
}

func TestResolver_NumericClaim(t *testing.T) {
	r := NewResolver([]byte("test-secret"))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": 9,
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	id, ok := r.Parse(s)
	if !ok || id != 9 {
		t.Errorf("Parse() = (%d, %v), want (9, true)", id, ok)
	}
}
