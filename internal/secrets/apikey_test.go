package secrets

import (
	"testing"

	"github.com/zalando/go-keyring"
)

func TestGetDiceAPIKey(t *testing.T) {
	keyring.MockInit()

	if _, err := GetDiceAPIKey(""); err == nil {
		t.Fatal("expected error with no key anywhere")
	}

	if got, err := GetDiceAPIKey("from-config"); err != nil || got != "from-config" {
		t.Fatalf("fallback: got %q, %v", got, err)
	}

	if err := SetDiceAPIKey("from-keyring"); err != nil {
		t.Fatal(err)
	}
	if got, err := GetDiceAPIKey("from-config"); err != nil || got != "from-keyring" {
		t.Fatalf("keychain must win over fallback: got %q, %v", got, err)
	}

	if err := DeleteDiceAPIKey(); err != nil {
		t.Fatal(err)
	}
	if got, err := GetDiceAPIKey("from-config"); err != nil || got != "from-config" {
		t.Fatalf("after delete: got %q, %v", got, err)
	}
}

func TestSetDiceAPIKeyEmpty(t *testing.T) {
	keyring.MockInit()
	if err := SetDiceAPIKey("  "); err == nil {
		t.Fatal("expected error for blank key")
	}
}
