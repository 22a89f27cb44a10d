package utils_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Plain Text", input: "Jane Doe", expected: "Jane Doe"},
		{name: "Formatting Tags", input: "<b>1 Main St</b>", expected: "1 Main St"},
		{name: "Script Removed", input: `<script>alert("x")</script>`, expected: ""},
		{name: "Event Handler Removed", input: `<img src=x onerror=alert(1)>Reykjavik`, expected: "Reykjavik"},
		{name: "Ampersand And Apostrophe Kept Verbatim", input: "O'Brien & Sons", expected: "O'Brien & Sons"},
		{name: "Quotes Kept Verbatim", input: `The "Old" Mill`, expected: `The "Old" Mill`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, utils.Sanitize(tc.input))
		})
	}

	t.Run("Length Preserved For Special Characters", func(t *testing.T) {
		input := strings.Repeat("a", 61) + " & " + strings.Repeat("b", 64)

		got := utils.Sanitize(input)

		assert.Equal(t, 128, utf8.RuneCountInString(input))
		assert.Equal(t, input, got)
	})
}
