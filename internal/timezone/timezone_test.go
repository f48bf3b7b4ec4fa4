package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocation(t *testing.T) {
	assert.Equal(t, "Europe/Paris", Location("Europe/Paris").String())
	assert.Equal(t, "America/New_York", Location("America/New_York").String())

	// unknown names fall back to the service default
	assert.Equal(t, DefaultTimezone, Location("Mars/Olympus").String())
	assert.Equal(t, DefaultTimezone, Location("").String())
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("Europe/Paris"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("not-a-zone"))
}

func TestFixedClock(t *testing.T) {
	instant := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	var c Clock = FixedClock{Instant: instant}
	assert.Equal(t, instant, c.Now())
}

func TestNewClock(t *testing.T) {
	c := NewClock("Europe/Paris")
	assert.Equal(t, "Europe/Paris", c.Now().Location().String())
}
