package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplace(t *testing.T) {
	values := Values{
		FirstName:  "Berk",
		LastName:   "Can",
		Email:      "berk@beartshare.com",
		CustomText: "Kampanya",
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "all tags",
			input:    "Merhaba [isim] [soyisim], adresin [email], detay: [metin]",
			expected: "Merhaba Berk Can, adresin berk@beartshare.com, detay: Kampanya",
		},
		{
			name:     "repeated tag replaced globally",
			input:    "[isim] [isim] [isim]",
			expected: "Berk Berk Berk",
		},
		{
			name:     "no tags passes through",
			input:    "plain text",
			expected: "plain text",
		},
		{
			name:     "unknown bracket token left literal",
			input:    "[isim] [bilinmeyen]",
			expected: "Berk [bilinmeyen]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Replace(tt.input, values))
		})
	}
}

func TestReplaceMissingValuesBecomeEmpty(t *testing.T) {
	out := Replace("Merhaba [isim][soyisim], [metin]", Values{Email: "x@y.com"})
	assert.Equal(t, "Merhaba , ", out)
}

func TestReplaceIdempotentForTagFreeValues(t *testing.T) {
	values := Values{
		FirstName:  "Berk",
		LastName:   "Can",
		Email:      "berk@beartshare.com",
		CustomText: "kampanya",
	}

	once := Replace("Merhaba [isim] [soyisim], adresin [email], detay: [metin]", values)
	assert.Equal(t, once, Replace(once, values))
}

func TestReplaceChainOrderForTagBearingValues(t *testing.T) {
	// A value containing a token for a later tag in the chain is itself
	// substituted within the same call.
	out := Replace("[isim]", Values{FirstName: "[soyisim]", LastName: "Can"})
	assert.Equal(t, "Can", out)

	// A token for an earlier tag in the chain stays literal.
	out = Replace("[soyisim]", Values{FirstName: "Berk", LastName: "[isim]"})
	assert.Equal(t, "[isim]", out)
}
