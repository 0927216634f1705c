package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/enrolldesk/enrolldesk/internal/app/models"
)

func testJWTService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret-key",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "enrolldesk.test",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:       42,
		Email:    "staff@consultancy.in",
		UserType: models.UserTypeConsultant,
	}
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := testJWTService(15 * time.Minute)

	access, refresh, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(testUser())
	if err != nil {
		t.Fatalf("GenerateTokenPair failed: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("expected both tokens to be set")
	}
	if access == refresh {
		t.Error("refresh token must be opaque, not the access token")
	}
	if expiresIn != int((15 * time.Minute).Seconds()) {
		t.Errorf("unexpected expiresIn: %d", expiresIn)
	}
	if refreshExpiresIn != int((24 * time.Hour).Seconds()) {
		t.Errorf("unexpected refreshExpiresIn: %d", refreshExpiresIn)
	}

	claims, err := svc.ValidateAndExtractClaims(access)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims failed: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "staff@consultancy.in" {
		t.Errorf("claims do not round-trip: %+v", claims)
	}
	if claims.UserType != string(models.UserTypeConsultant) {
		t.Errorf("expected user type in claims, got %q", claims.UserType)
	}
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	issuer := testJWTService(15 * time.Minute)
	access, _, _, _, err := issuer.GenerateTokenPair(testUser())
	if err != nil {
		t.Fatalf("GenerateTokenPair failed: %v", err)
	}

	other := NewJWTService(JWTConfig{
		SecretKey:       "a-different-key",
		AccessTokenExp:  15 * time.Minute,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "enrolldesk.test",
	})
	if _, err := other.ValidateToken(access); err == nil {
		t.Error("token signed with another key must not validate")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := testJWTService(-time.Minute)
	access, _, _, _, err := svc.GenerateTokenPair(testUser())
	if err != nil {
		t.Fatalf("GenerateTokenPair failed: %v", err)
	}

	if _, err := svc.ValidateToken(access); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestValidateAndExtractClaimsEmpty(t *testing.T) {
	svc := testJWTService(15 * time.Minute)
	if _, err := svc.ValidateAndExtractClaims(""); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for empty string, got %v", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"bearer prefix", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"raw token", "abc.def.ghi", "abc.def.ghi", false},
		{"empty header", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Error("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
