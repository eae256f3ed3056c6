package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := uuid.New()
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, userID, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.UserID != userID {
		t.Errorf("expected userID %s, got %s", userID, token.UserID)
	}

	// Verify claims
	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != userID.String() {
		t.Errorf("expected subject %s, got %s", userID, claims.Subject)
	}
	if claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time) != duration {
		t.Errorf("expected exp = iat + %s, got iat=%v exp=%v", duration, claims.IssuedAt, claims.ExpiresAt)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   uuid.UUID
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", uuid.New(), time.Hour, "key"},
		{"nil user id", "iss", uuid.Nil, time.Hour, "key"},
		{"zero duration", "iss", uuid.New(), 0, "key"},
		{"empty key", "iss", uuid.New(), time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := uuid.New()
	key := "secret-key"
	duration := time.Minute * 5

	genToken, err := GenerateJWTToken(issuer, userID, duration, key)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.UserID != userID {
		t.Errorf("expected userID %s, got %s", userID, parsedToken.UserID)
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	issuer := "test-issuer"
	userID := uuid.New()

	genToken, err := GenerateJWTToken(issuer, userID, time.Hour, "right-key")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	_, err = ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", issuer)
	if err == nil {
		t.Fatal("expected error for token signed with a different key, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	userID := uuid.New()
	key := "secret-key"

	genToken, err := GenerateJWTToken("issuer-a", userID, time.Hour, key)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	_, err = ValidateAndParseJWTToken(genToken.SignedString, key, "issuer-b")
	if err == nil {
		t.Fatal("expected error for mismatched issuer, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issuer := "test-issuer"
	userID := uuid.New()
	key := "secret-key"

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
		IssuedAt:  jwt.NewNumericDate(now.Add(-time.Hour)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	_, err = ValidateAndParseJWTToken(expired, key, issuer)
	if err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongSigningMethod(t *testing.T) {
	issuer := "test-issuer"
	key := "secret-key"

	// "none" algorithm tokens must never pass validation
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to build token: %v", err)
	}

	_, err = ValidateAndParseJWTToken(unsigned, key, issuer)
	if err == nil {
		t.Fatal("expected error for unsigned token, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not-a-jwt", "key", "issuer")
	if err == nil {
		t.Fatal("expected error for malformed token, got nil")
	}
}

func TestValidateAndParseJWTToken_NonUUIDSubject(t *testing.T) {
	issuer := "test-issuer"
	key := "secret-key"

	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	_, err = ValidateAndParseJWTToken(token, key, issuer)
	if err == nil {
		t.Fatal("expected error for non-UUID subject, got nil")
	}
}
