package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	// Known digests from the legacy schema
	assert.Equal(t, "f865b53623b121fd34ee5426c792e5c33af8c227", HashPassword("admin123"))
	assert.Equal(t, "5baa61e4c9b93f3f0682250b6cf8331b7ee68fd8", HashPassword("password"))
}

func TestHashPasswordIsDeterministic(t *testing.T) {
	assert.Equal(t, HashPassword("x"), HashPassword("x"))
	assert.NotEqual(t, HashPassword("x"), HashPassword("y"))
	assert.Len(t, HashPassword(""), 40)
}
