package auth_controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameFromEmail(t *testing.T) {
	assert.Equal(t, "ada", nameFromEmail("ada@example.com"))
	assert.Equal(t, "ada.lovelace", nameFromEmail("ada.lovelace@example.com"))
	assert.Equal(t, "ada", nameFromEmail("ada@foo@bar"))

	// No @ at all must not panic, whatever upstream validation did.
	assert.Equal(t, "ada", nameFromEmail("ada"))
	assert.Equal(t, "", nameFromEmail(""))
	assert.Equal(t, "", nameFromEmail("@example.com"))
}
