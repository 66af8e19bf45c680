package fontloader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiskAssetsWritesFacesByKey(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("font:" + r.URL.Path))
	}))
	t.Cleanup(srv.Close)

	dir := filepath.Join(t.TempDir(), "fonts")
	assets := DiskAssets{Dir: dir, Client: srv.Client()}
	sources := map[string]string{
		"Inter_400_normal": srv.URL + "/inter.woff2",
		"Lora_400_italic":  srv.URL + "/lora",
	}

	require.NoError(t, assets.LoadFonts(context.Background(), sources))

	files := assets.Files(sources)
	require.Equal(t, filepath.Join(dir, "Inter_400_normal.woff2"), files["Inter_400_normal"])
	require.Equal(t, filepath.Join(dir, "Lora_400_italic.ttf"), files["Lora_400_italic"])

	data, err := os.ReadFile(files["Inter_400_normal"])
	require.NoError(t, err)
	require.Equal(t, "font:/inter.woff2", string(data))
}

func TestDiskAssetsReportsFailures(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	err := DiskAssets{Dir: dir}.LoadFonts(context.Background(), map[string]string{
		"Inter_400_normal": srv.URL + "/missing.ttf",
	})
	require.ErrorContains(t, err, "Inter_400_normal")
	require.ErrorContains(t, err, "status 404")

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	require.Empty(t, entries)
}

func TestAssetLoaderFunc(t *testing.T) {
	t.Parallel()

	var got map[string]string
	var loader AssetLoader = AssetLoaderFunc(func(_ context.Context, sources map[string]string) error {
		got = sources
		return nil
	})
	require.NoError(t, loader.LoadFonts(context.Background(), map[string]string{"a": "b"}))
	require.Equal(t, map[string]string{"a": "b"}, got)
}
