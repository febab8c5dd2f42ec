package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidAddress(t *testing.T) {
	assert.True(t, IsValidAddress("0xce4468e7ce84aceb74363f4ea64e5a038176f369"))
	assert.True(t, IsValidAddress("0xCE4468E7CE84ACEB74363F4EA64E5A038176F369"))
	assert.False(t, IsValidAddress("0x123"))
	assert.False(t, IsValidAddress("not-an-address"))
	assert.False(t, IsValidAddress(""))
}
