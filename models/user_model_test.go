package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserAge(t *testing.T) {
	u := User{DOB: time.Date(2000, time.June, 15, 0, 0, 0, 0, time.UTC)}

	afterBirthday := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 26, u.Age(afterBirthday))

	beforeBirthday := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 25, u.Age(beforeBirthday))
}
