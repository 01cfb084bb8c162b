package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStatusForwardOnly(t *testing.T) {
	status := StatusProcessing

	status = NextStatus(status)
	assert.Equal(t, StatusShipped, status)

	status = NextStatus(status)
	assert.Equal(t, StatusDelivered, status)

	// Delivered is terminal.
	status = NextStatus(status)
	assert.Equal(t, StatusDelivered, status)
}
