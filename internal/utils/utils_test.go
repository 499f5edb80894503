package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My cool movie.mov", "My_cool_movie.mov"},
		{"../../../etc/passwd", "passwd"},
		{"..\\..\\windows\\guide.pdf", "guide.pdf"},
		{"/var/www/uploads/kit.pdf", "kit.pdf"},
		{"résumé.docx", "resume.docx"},
		{"flood map (v2).png", "flood_map_v2.png"},
		{"...", ""},
		{"CON.txt", "_CON.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}

func TestFileTypeChecks(t *testing.T) {
	assert.True(t, IsImageFile("poster.JPG"))
	assert.True(t, IsImageFile("poster.jpeg"))
	assert.False(t, IsImageFile("poster.gif"))
	assert.True(t, IsDocumentFile("brief.docx"))
	assert.False(t, IsDocumentFile("brief.txt"))
	assert.Equal(t, "application/pdf", GetContentType("a.PDF"))
	assert.Equal(t, "application/octet-stream", GetContentType("a.bin"))
}

func TestSessionToken_RoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("admin@example.com", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateSessionToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)

	_, err = ValidateSessionToken(token, "other-secret")
	assert.Error(t, err)
}

func TestSessionToken_Expired(t *testing.T) {
	token, err := GenerateSessionToken("admin@example.com", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateSessionToken(token, "secret")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2026-10-15 ", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "2026-10-15", FormatDate(d))

	_, err = ParseDate("15/10/2026", time.UTC)
	assert.Error(t, err)
	assert.Equal(t, "", FormatDate(time.Time{}))
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2026, 3, 4, 17, 30, 12, 5, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), StartOfDay(in))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "admin@example.com", NormalizeEmail("  Admin@Example.com "))
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "a***n@example.com", MaskEmail("admin@example.com"))
	assert.Equal(t, "ab@example.com", MaskEmail("ab@example.com"))
	assert.Equal(t, "not-an-email", MaskEmail("not-an-email"))
}
