package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"turkish characters", "Çağrı Şöförü Gündüz", "cagri-soforu-gunduz"},
		{"dotted capital I", "İstanbul Öyküleri", "istanbul-oykuleri"},
		{"punctuation dropped", "Yeni! Özellikler... (2024)", "yeni-ozellikler-2024"},
		{"whitespace runs collapse", "çok   boşluklu    başlık", "cok-bosluklu-baslik"},
		{"existing hyphens collapse", "zaten--tireli---başlık", "zaten-tireli-baslik"},
		{"leading and trailing trimmed", "  -kenar boşluğu-  ", "kenar-boslugu"},
		{"empty input", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateSlug(tt.title))
		})
	}
}
