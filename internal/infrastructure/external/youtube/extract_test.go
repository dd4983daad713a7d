package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		wantID string
		wantOK bool
	}{
		{"short link", "https://youtu.be/ABC123", "ABC123", true},
		{"watch link", "https://www.youtube.com/watch?v=XYZ789", "XYZ789", true},
		{"watch link with extra params", "https://www.youtube.com/watch?v=XYZ789&t=10", "XYZ789", true},
		{"watch link missing v", "https://www.youtube.com/watch?t=10", "", false},
		{"unrelated domain", "https://example.com", "", false},
		{"empty", "", "", false},
		{"short link trailing slash", "https://youtu.be/", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractVideoID(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
