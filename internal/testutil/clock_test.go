package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClock(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewFixedClock(at)

	assert.Equal(t, at, c.Now())
	assert.Equal(t, at, c.Now(), "repeated reads return the same instant")

	c.Advance(90 * time.Second)
	assert.Equal(t, at.Add(90*time.Second), c.Now())
}
