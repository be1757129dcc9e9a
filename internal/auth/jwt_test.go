package auth

import (
	"testing"
	"time"
)

const testWallet = "0x93ab45cdef0123456789abcdef0123456789abcd"

func TestGenerateAndValidateToken(t *testing.T) {
	secret := "test-secret-key"
	donorID := DonorID(testWallet)

	token, err := GenerateToken(secret, donorID, testWallet)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := ValidateToken(secret, token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if claims.DonorID != donorID {
		t.Errorf("expected donor id %q, got %q", donorID, claims.DonorID)
	}
	if claims.Wallet != testWallet {
		t.Errorf("expected wallet %q, got %q", testWallet, claims.Wallet)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _ := GenerateToken("secret1", "donor_1", testWallet)

	_, err := ValidateToken("secret2", token)
	if err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestValidateTokenInvalid(t *testing.T) {
	_, err := ValidateToken("secret", "not-a-token")
	if err == nil {
		t.Error("expected error for invalid token")
	}
}

func TestTokenExpiry(t *testing.T) {
	// Just verify the expiry is set correctly.
	secret := "test"
	token, _ := GenerateToken(secret, "donor_1", testWallet)
	claims, _ := ValidateToken(secret, token)

	expiresAt := claims.ExpiresAt.Time
	expectedExpiry := time.Now().Add(TokenExpiry)

	diff := expectedExpiry.Sub(expiresAt)
	if diff < -time.Minute || diff > time.Minute {
		t.Errorf("expiry off by %v", diff)
	}
}

func TestValidWalletAddress(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		{testWallet, true},
		{"0x" + "00000000000000000000000000000000000000ab", true},
		{"", false},
		{"0x123", false}, // too short
		{"93ab45cdef0123456789abcdef0123456789abcdab", false}, // no prefix
		{"0xZZab45cdef0123456789abcdef0123456789abcd", false}, // not hex
	}
	for _, tt := range tests {
		if got := ValidWalletAddress(tt.addr); got != tt.want {
			t.Errorf("ValidWalletAddress(%q) = %v, want %v", tt.addr, got, tt.want)
		}
	}
}

func TestDonorIDStable(t *testing.T) {
	a := DonorID(testWallet)
	b := DonorID(testWallet)
	if a != b {
		t.Errorf("donor id not stable: %q vs %q", a, b)
	}
	// Case-insensitive: the same wallet written differently is the same donor.
	upper := DonorID("0x93AB45CDEF0123456789ABCDEF0123456789ABCD")
	if a != upper {
		t.Errorf("expected case-insensitive donor id, got %q vs %q", a, upper)
	}
	other := DonorID("0x0000000000000000000000000000000000000001")
	if a == other {
		t.Error("different wallets must map to different donor ids")
	}
}
