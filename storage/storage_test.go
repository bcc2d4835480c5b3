package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryUploaderRoundTrip(t *testing.T) {
	u := NewMemoryUploader("http://localhost:8080/media/")
	ctx := context.Background()

	res, err := u.Upload(ctx, "teams/t1/logo.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/media/teams/t1/logo.png", res.Location)
	assert.NotEmpty(t, res.ETag)

	data, ct, ok := u.Object("teams/t1/logo.png")
	require.True(t, ok)
	assert.Equal(t, "png-bytes", string(data))
	assert.Equal(t, "image/png", ct)

	require.NoError(t, u.Delete(ctx, "teams/t1/logo.png"))
	_, _, ok = u.Object("teams/t1/logo.png")
	assert.False(t, ok)
	assert.Zero(t, u.Len())
}

func TestMemoryUploaderHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMemoryUploader("").Upload(ctx, "k", "image/png", strings.NewReader("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtensions(t *testing.T) {
	ext, err := ImageExtension("image/jpeg; charset=binary")
	require.NoError(t, err)
	assert.Equal(t, ".jpg", ext)

	_, err = ImageExtension("application/pdf")
	assert.ErrorIs(t, err, ErrUnsupportedContentType)

	ext, err = DocumentExtension("application/pdf")
	require.NoError(t, err)
	assert.Equal(t, ".pdf", ext)
}

func TestKeys(t *testing.T) {
	assert.True(t, strings.HasPrefix(TeamLogoKey("t1", ".png"), "teams/t1/logo-"))
	assert.True(t, strings.HasSuffix(PlayerDocumentKey("t1", "p1", "dni", ".pdf"), ".pdf"))
	assert.True(t, strings.HasPrefix(MatchReportKey("m1", ".jpg"), "matches/m1/acta-"))
	assert.NotEqual(t, TeamLogoKey("t1", ".png"), TeamLogoKey("t1", ".png"))
}

func TestJoinPublicURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example/a/b.png", joinPublicURL("https://cdn.example", "/a/b.png"))
	assert.Empty(t, joinPublicURL("", "a"))
	assert.Empty(t, joinPublicURL("https://cdn.example", ""))
}

func TestNewCloudflareR2UploaderRequiresConfig(t *testing.T) {
	_, err := NewCloudflareR2Uploader(context.Background(), CloudflareR2UploaderConfig{AccountID: "acc"})
	assert.Error(t, err)
}
