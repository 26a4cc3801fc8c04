package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	t.Run("removes duplicates preserving order", func(t *testing.T) {
		got := DedupeAndTrim([]string{"12345678901", "10987654321", "12345678901"})
		assert.Equal(t, []string{"12345678901", "10987654321"}, got)
	})

	t.Run("trims whitespace and drops empties", func(t *testing.T) {
		got := DedupeAndTrim([]string{" 12345678901 ", "", "  ", "12345678901"})
		assert.Equal(t, []string{"12345678901"}, got)
	})

	t.Run("empty input passes through", func(t *testing.T) {
		assert.Empty(t, DedupeAndTrim(nil))
	})
}
