package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beartshare/admin-api/internal/app/models"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"numeric one", `1`, models.PostStatusPublished},
		{"string one", `"1"`, models.PostStatusPublished},
		{"english published", `"published"`, models.PostStatusPublished},
		{"turkish published", `"Yayında"`, models.PostStatusPublished},
		{"numeric zero", `0`, models.PostStatusDraft},
		{"string zero", `"0"`, models.PostStatusDraft},
		{"english draft", `"draft"`, models.PostStatusDraft},
		{"turkish draft", `"Taslak"`, models.PostStatusDraft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := NormalizeStatus(json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestNormalizeStatusAbsent(t *testing.T) {
	status, err := NormalizeStatus(nil)
	require.NoError(t, err)
	assert.Equal(t, "", status)

	status, err = NormalizeStatus(json.RawMessage(`null`))
	require.NoError(t, err)
	assert.Equal(t, "", status)
}

func TestNormalizeStatusRejectsUnknownValues(t *testing.T) {
	for _, raw := range []string{`"archived"`, `2`, `"yayinda"`} {
		_, err := NormalizeStatus(json.RawMessage(raw))
		assert.Error(t, err, raw)
	}
}
