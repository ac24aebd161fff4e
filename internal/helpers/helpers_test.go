package helpers

import "testing"

func TestHashPasswordRoundtrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash must not equal the plaintext password")
	}
	if !CheckPasswordHash("s3cret-pass", hash) {
		t.Error("correct password did not verify")
	}
	if CheckPasswordHash("wrong-pass", hash) {
		t.Error("wrong password verified")
	}
}

func TestRoundRating(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{4.0, 4.0},
		{4.25, 4.3},
		{4.333333, 4.3},
		{4.666666, 4.7},
		{3.05, 3.1},
		{5.0, 5.0},
	}
	for _, tt := range tests {
		if got := RoundRating(tt.in); got != tt.want {
			t.Errorf("RoundRating(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStringTrim(t *testing.T) {
	if got := StringTrim("  Mumbai  "); got != "Mumbai" {
		t.Errorf("StringTrim = %q, want %q", got, "Mumbai")
	}
	if got := StringTrim("   "); got != "" {
		t.Errorf("StringTrim of whitespace = %q, want empty", got)
	}
}
