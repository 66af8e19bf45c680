package fontloader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/alexisbeaulieu97/brandkit/internal/logger"
)

const defaultFontExt = ".ttf"

// DiskAssets is an AssetLoader that downloads every face into Dir, named by
// its face key plus the source's extension.
type DiskAssets struct {
	Dir    string
	Client *http.Client
	Logger *logger.Logger
}

// LoadFonts downloads sources in key order and stops at the first failure.
func (d DiskAssets) LoadFonts(ctx context.Context, sources map[string]string) error {
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return fmt.Errorf("create font directory: %w", err)
	}

	client := d.Client
	if client == nil {
		client = http.DefaultClient
	}

	keys := make([]string, 0, len(sources))
	for key := range sources {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		dest := filepath.Join(d.Dir, key+extension(sources[key]))
		if err := download(ctx, client, sources[key], dest); err != nil {
			return fmt.Errorf("download %s: %w", key, err)
		}
		d.Logger.WithFields(map[string]any{"face": key, "path": dest}).Debug("font face saved")
	}
	return nil
}

// Files returns the paths LoadFonts writes for sources, keyed by face key.
func (d DiskAssets) Files(sources map[string]string) map[string]string {
	out := make(map[string]string, len(sources))
	for key, src := range sources {
		out[key] = filepath.Join(d.Dir, key+extension(src))
	}
	return out
}

func extension(source string) string {
	parsed, err := url.Parse(source)
	if err != nil {
		return defaultFontExt
	}
	if ext := path.Ext(parsed.Path); ext != "" {
		return ext
	}
	return defaultFontExt
}

func download(ctx context.Context, client *http.Client, source, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".font-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dest)
}
