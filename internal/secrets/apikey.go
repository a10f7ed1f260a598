package secrets

import (
	"errors"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// Service groups this app's secrets in the OS keychain.
	KeyringService = "jobscout"

	diceAccount = "jobscout:dice:api-key"
)

// GetDiceAPIKey resolves the Dice search API key: OS keychain first, then the
// config fallback for setups without a keyring daemon.
func GetDiceAPIKey(fallback string) (string, error) {
	key, err := keyring.Get(KeyringService, diceAccount)
	if err == nil && strings.TrimSpace(key) != "" {
		return key, nil
	}

	if strings.TrimSpace(fallback) != "" {
		return fallback, nil
	}
	return "", errors.New("dice API key not found (set it in the keychain or in config)")
}

func SetDiceAPIKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("api key is empty")
	}
	return keyring.Set(KeyringService, diceAccount, key)
}

func DeleteDiceAPIKey() error {
	return keyring.Delete(KeyringService, diceAccount)
}
