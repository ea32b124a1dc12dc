package usecase

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderNumber(t *testing.T) {
	t.Run("matches the documented format", func(t *testing.T) {
		now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

		number := GenerateOrderNumber(now)

		assert.Regexp(t, regexp.MustCompile(`^ORD-20260314150926-\d{4}$`), number,
			"order number format does not match")
	})

	t.Run("suffix varies between calls", func(t *testing.T) {
		now := time.Now()

		seen := map[string]struct{}{}
		for i := 0; i < 20; i++ {
			seen[GenerateOrderNumber(now)] = struct{}{}
		}

		// 20 draws from 10000 suffixes should not all collide
		assert.Greater(t, len(seen), 1, "suffix should be random")
	})
}
