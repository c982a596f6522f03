// Package parser turns CLI input into typed values: natural-language
// timestamps and money amounts.
package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// ParseWhen parses a natural language timestamp expression like
// "yesterday", "2 hours ago", or "monday at 9am". Empty input and "now"
// mean the current time.
func ParseWhen(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "now") {
		return time.Now(), nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: time.Now(),
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return time.Time{}, err
	}
	return result.Time, nil
}
