package model

import "fmt"

// Default settings values.
const (
	DefaultBackground = "plain"
	DefaultAPIURL     = "https://api.logmeal.com/v2"
)

// Settings holds user preferences and recognition service credentials.
// It replaces ambient key-value state with an explicit object; every key
// is documented here and managed through 'daybook config'.
type Settings struct {
	// Nickname is shown on the dashboard greeting. Default: "".
	Nickname string `json:"nickname"`
	// Background selects the dashboard backdrop theme. Default: "plain".
	Background string `json:"background"`
	// APIURL is the base URL of the dish recognition service.
	APIURL string `json:"api_url"`
	// APIToken is the bearer token for the recognition service. Default: "".
	APIToken string `json:"api_token"`
	// UserKey is the per-user key sent with recognition uploads. Default: "".
	UserKey string `json:"user_key"`
}

// DefaultSettings returns settings with all documented defaults.
func DefaultSettings() Settings {
	return Settings{
		Background: DefaultBackground,
		APIURL:     DefaultAPIURL,
	}
}

// SettingsKeys lists the valid configuration keys.
func SettingsKeys() []string {
	return []string{"nickname", "background", "api_url", "api_token", "user_key"}
}

// Get returns the value of a settings key.
func (s Settings) Get(key string) (string, error) {
	switch key {
	case "nickname":
		return s.Nickname, nil
	case "background":
		return s.Background, nil
	case "api_url":
		return s.APIURL, nil
	case "api_token":
		return s.APIToken, nil
	case "user_key":
		return s.UserKey, nil
	}
	return "", fmt.Errorf("unknown settings key %q", key)
}

// Set updates the value of a settings key.
func (s *Settings) Set(key, value string) error {
	switch key {
	case "nickname":
		s.Nickname = value
	case "background":
		s.Background = value
	case "api_url":
		s.APIURL = value
	case "api_token":
		s.APIToken = value
	case "user_key":
		s.UserKey = value
	default:
		return fmt.Errorf("unknown settings key %q", key)
	}
	return nil
}
