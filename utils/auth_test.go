package utils

import "testing"

func TestJWTRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret", 60)

	token, err := GenerateJWTToken("user-123", "alice@example.com")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	claims, err := ParseJWTToken(token)
	if err != nil {
		t.Fatalf("Failed to parse token: %v", err)
	}
	if claims.UserID != "user-123" || claims.Email != "alice@example.com" {
		t.Errorf("Claims did not round trip: %+v", claims)
	}

	valid, email, err := ValidateTokenAndFetchEmail(token)
	if err != nil || !valid {
		t.Fatalf("Expected the token to validate, got valid=%v err=%v", valid, err)
	}
	if email != "alice@example.com" {
		t.Errorf("Expected email from claims, got %q", email)
	}
}

func TestParseRejectsGarbageToken(t *testing.T) {
	SetJWTSecret("test-secret", 60)

	if _, err := ParseJWTToken("not-a-token"); err == nil {
		t.Error("Expected an error for a malformed token")
	}
	if valid, _, err := ValidateTokenAndFetchEmail("not-a-token"); valid || err == nil {
		t.Error("Expected validation to fail for a malformed token")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("changeme123")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	if !CheckPasswordHash("changeme123", hash) {
		t.Error("Correct password should verify")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Error("Wrong password should not verify")
	}
}

func TestExtractNameFromEmail(t *testing.T) {
	if got := ExtractNameFromEmail("alice@example.com"); got != "alice" {
		t.Errorf("Expected alice, got %q", got)
	}
	if got := ExtractNameFromEmail("noatsign"); got != "noatsign" {
		t.Errorf("Expected the input back, got %q", got)
	}
}

func TestGenerateSecretHashIsDeterministic(t *testing.T) {
	a := GenerateSecretHash("alice@example.com", "client-id", "client-secret")
	b := GenerateSecretHash("alice@example.com", "client-id", "client-secret")
	if a != b || a == "" {
		t.Errorf("Expected a stable non-empty hash, got %q and %q", a, b)
	}
	if c := GenerateSecretHash("bob@example.com", "client-id", "client-secret"); c == a {
		t.Error("Different usernames must hash differently")
	}
}
