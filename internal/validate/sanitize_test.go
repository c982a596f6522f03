package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "hello", SanitizeText("  hello \n"))
	assert.Equal(t, "a\nb", SanitizeText("a\r\nb"))
	assert.Equal(t, "a\nb", SanitizeText("a\rb"))
	assert.Equal(t, "ab", SanitizeText("a\x00b"))
	assert.Equal(t, "", SanitizeText("   "))
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "margherita pizza", SanitizeName(" margherita\npizza "))
	assert.Equal(t, "a b c", SanitizeName("a   b \r\n c"))
	assert.Equal(t, "", SanitizeName("\n\n"))
}
