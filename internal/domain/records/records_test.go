package records

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestID(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "42_1709287200", ID("42", at))
	assert.Equal(t, "42_1709287200", ID(" 42 ", at.Add(900*time.Millisecond)))
}

func TestParseID(t *testing.T) {
	user, at, ok := ParseID("user_with_underscores_1709287200")
	assert.True(t, ok)
	assert.Equal(t, "user_with_underscores", user)
	assert.Equal(t, int64(1709287200), at.Unix())

	for _, bad := range []string{"", "_123", "42_", "42_abc", "noseparator"} {
		_, _, ok := ParseID(bad)
		assert.False(t, ok, "id %q", bad)
	}
}
