package fontloader

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/brandkit/internal/fonts"
	"github.com/alexisbeaulieu97/brandkit/internal/logger"
	apperrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

const interCSS = `
/* latin */
@font-face {
  font-family: 'Inter';
  font-style: normal;
  font-weight: 700;
  src: url(https://fonts.example/inter-700.ttf) format('truetype');
}
@font-face {
  font-family: 'Inter';
  src: url(https://fonts.example/inter-400.ttf) format('truetype');
}
@font-face {
  font-family: 'Lora';
  font-style: italic;
  font-weight: 400;
  src: url(https://fonts.example/lora-400i.ttf);
}
`

func loadableConfig() *fonts.Config {
	return &fonts.Config{
		Heading: fonts.HeadingFont{Family: "Inter"},
		Body:    fonts.FontFace{Family: "Inter"},
		Mono:    fonts.FontFace{Family: "Menlo"},
		Quote:   fonts.QuoteFont{Family: "Lora"},
	}
}

func systemConfig() *fonts.Config {
	return &fonts.Config{
		Heading: fonts.HeadingFont{Family: "system-ui"},
		Body:    fonts.FontFace{Family: "Helvetica"},
		Mono:    fonts.FontFace{Family: "Menlo"},
		Quote:   fonts.QuoteFont{Family: "Georgia"},
	}
}

type recordingAssets struct {
	mu      sync.Mutex
	sources map[string]string
	err     error
	block   chan struct{}
}

func (r *recordingAssets) LoadFonts(ctx context.Context, sources map[string]string) error {
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources = sources
	return r.err
}

func (r *recordingAssets) received() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sources
}

func stylesheetServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func waitTerminal(t *testing.T, n *Native) State {
	t.Helper()
	select {
	case <-n.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("loader did not reach a terminal state")
	}
	st := n.State()
	require.True(t, st.Loaded)
	return st
}

func TestNativeLoadsFacesThroughAssets(t *testing.T) {
	t.Parallel()

	requests := make(chan *http.Request, 1)
	srv := stylesheetServer(t, func(w http.ResponseWriter, r *http.Request) {
		requests <- r.Clone(context.Background())
		fmt.Fprint(w, interCSS)
	})

	assets := &recordingAssets{}
	var changes atomic.Int32
	n := NewNative(NativeOptions{
		Assets:     assets,
		ServiceURL: srv.URL + "/css2",
		OnChange:   func(State) { changes.Add(1) },
	})

	initial := n.Load(loadableConfig())
	require.False(t, initial.Loaded)

	st := waitTerminal(t, n)
	require.NoError(t, st.Err)
	require.Equal(t, map[string]string{
		"Inter_700_normal": "https://fonts.example/inter-700.ttf",
		"Inter_400_normal": "https://fonts.example/inter-400.ttf",
		"Lora_400_italic":  "https://fonts.example/lora-400i.ttf",
	}, assets.received())

	req := <-requests
	require.Equal(t, DefaultUserAgent, req.Header.Get("User-Agent"))
	require.Contains(t, req.Header.Get("User-Agent"), "iPhone")
	require.Equal(t, "gzip, br", req.Header.Get("Accept-Encoding"))
	require.Contains(t, req.URL.RawQuery, "family=Inter:wght@400;700")
	require.Equal(t, int32(1), changes.Load())
}

func TestNativeRejectionResolvesWithError(t *testing.T) {
	t.Parallel()

	srv := stylesheetServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	n := NewNative(NativeOptions{Assets: &recordingAssets{}, ServiceURL: srv.URL})
	n.Load(loadableConfig())

	st := waitTerminal(t, n)
	var loadErr *apperrors.FontLoadError
	require.ErrorAs(t, st.Err, &loadErr)
	require.False(t, loadErr.Timeout)
	require.Contains(t, loadErr.Error(), "status 500")
}

func TestNativeNetworkFailureResolvesWithError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	n := NewNative(NativeOptions{Assets: &recordingAssets{}, ServiceURL: url})
	n.Load(loadableConfig())

	st := waitTerminal(t, n)
	require.Error(t, st.Err)
	require.NotErrorIs(t, st.Err, apperrors.ErrTimeout)
}

func TestNativeHangingFetchTimesOut(t *testing.T) {
	t.Parallel()

	srv := stylesheetServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	var logs bytes.Buffer
	log, err := logger.New(logger.Options{Level: "warn", Writer: &logs})
	require.NoError(t, err)

	n := NewNative(NativeOptions{
		Assets:     &recordingAssets{},
		ServiceURL: srv.URL,
		Timeout:    50 * time.Millisecond,
		Logger:     log,
	})
	n.Load(loadableConfig())

	st := waitTerminal(t, n)
	require.ErrorIs(t, st.Err, apperrors.ErrTimeout)
	var loadErr *apperrors.FontLoadError
	require.ErrorAs(t, st.Err, &loadErr)
	require.True(t, loadErr.Timeout)
	require.Contains(t, logs.String(), "timed out")
}

func TestNativeTimeoutDuringBatchLoadStillResolves(t *testing.T) {
	t.Parallel()

	srv := stylesheetServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, interCSS)
	})

	assets := &recordingAssets{block: make(chan struct{})}
	t.Cleanup(func() { close(assets.block) })

	n := NewNative(NativeOptions{Assets: assets, ServiceURL: srv.URL, Timeout: 50 * time.Millisecond})
	n.Load(loadableConfig())

	st := waitTerminal(t, n)
	require.ErrorIs(t, st.Err, apperrors.ErrTimeout)
}

func TestNativeZeroFacesResolvesWithoutError(t *testing.T) {
	t.Parallel()

	srv := stylesheetServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "body { color: red; }\n@font-face { font-family: 'Broken'; }")
	})

	assets := &recordingAssets{}
	n := NewNative(NativeOptions{Assets: assets, ServiceURL: srv.URL})
	n.Load(loadableConfig())

	st := waitTerminal(t, n)
	require.NoError(t, st.Err)
	require.Nil(t, assets.received())
}

func TestNativeAssetRejectionResolvesWithError(t *testing.T) {
	t.Parallel()

	srv := stylesheetServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, interCSS)
	})

	rejected := errors.New("font registry unavailable")
	n := NewNative(NativeOptions{Assets: &recordingAssets{err: rejected}, ServiceURL: srv.URL})
	n.Load(loadableConfig())

	st := waitTerminal(t, n)
	require.ErrorIs(t, st.Err, rejected)
}

func TestNativeSystemFontsStartLoadedWithoutRequest(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := stylesheetServer(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	})

	n := NewNative(NativeOptions{Assets: &recordingAssets{}, ServiceURL: srv.URL})
	require.Equal(t, State{Loaded: true}, n.Load(systemConfig()))
	require.Equal(t, State{Loaded: true}, n.Load(nil))
	require.Equal(t, State{Loaded: true}, n.State())
	require.Equal(t, int32(0), hits.Load())
}

func TestNativeWithoutAssetsFallsBack(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	log, err := logger.New(logger.Options{Writer: &logs})
	require.NoError(t, err)

	n := NewNative(NativeOptions{ServiceURL: "http://127.0.0.1:1", Logger: log})
	require.Equal(t, State{Loaded: true}, n.Load(loadableConfig()))
	require.Contains(t, logs.String(), "no font asset loader")
}

func TestNativeNewActivationCancelsStale(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := stylesheetServer(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.RawQuery, "Lora") {
			select {
			case <-release:
			case <-r.Context().Done():
				return
			}
		}
		fmt.Fprint(w, interCSS)
	})
	t.Cleanup(func() { close(release) })

	assets := &recordingAssets{}
	n := NewNative(NativeOptions{Assets: assets, ServiceURL: srv.URL})

	first := n.Load(loadableConfig())
	require.False(t, first.Loaded)
	firstDone := n.Done()

	second := loadableConfig()
	second.Quote.Family = "Georgia"
	n.Load(second)

	select {
	case <-firstDone:
	case <-time.After(5 * time.Second):
		t.Fatal("waiter on the superseded activation was never woken")
	}
	st := n.State()
	require.True(t, st.Loaded, "a woken waiter must observe a terminal state")
	require.NoError(t, st.Err)
	require.Len(t, assets.received(), 3)
}

func TestNativeSupersededWaiterSeesReplacementOutcome(t *testing.T) {
	t.Parallel()

	srv := stylesheetServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	n := NewNative(NativeOptions{Assets: &recordingAssets{}, ServiceURL: srv.URL, Timeout: 50 * time.Millisecond})
	n.Load(loadableConfig())
	firstDone := n.Done()

	second := loadableConfig()
	second.Quote.Family = "Merriweather"
	require.False(t, n.Load(second).Loaded)

	select {
	case <-firstDone:
	case <-time.After(5 * time.Second):
		t.Fatal("waiter on the superseded activation was never woken")
	}
	st := n.State()
	require.True(t, st.Loaded)
	require.ErrorIs(t, st.Err, apperrors.ErrTimeout)
}

func TestNativeSupersededBySystemFontsWakesWaiter(t *testing.T) {
	t.Parallel()

	srv := stylesheetServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	n := NewNative(NativeOptions{Assets: &recordingAssets{}, ServiceURL: srv.URL})
	n.Load(loadableConfig())
	firstDone := n.Done()

	require.Equal(t, State{Loaded: true}, n.Load(systemConfig()))

	select {
	case <-firstDone:
	default:
		t.Fatal("waiter stayed blocked after a terminal replacement")
	}
	require.Equal(t, State{Loaded: true}, n.State())
}

func TestNativeCloseAbortsInFlightFetch(t *testing.T) {
	t.Parallel()

	arrived := make(chan struct{})
	aborted := make(chan struct{})
	srv := stylesheetServer(t, func(w http.ResponseWriter, r *http.Request) {
		close(arrived)
		<-r.Context().Done()
		close(aborted)
	})

	n := NewNative(NativeOptions{Assets: &recordingAssets{}, ServiceURL: srv.URL})
	n.Load(loadableConfig())
	<-arrived
	n.Close()

	select {
	case <-aborted:
	case <-time.After(5 * time.Second):
		t.Fatal("fetch was not aborted")
	}

	st := n.State()
	require.True(t, st.Loaded)
	var loadErr *apperrors.FontLoadError
	require.ErrorAs(t, st.Err, &loadErr)
	require.False(t, loadErr.Timeout)
	require.ErrorIs(t, st.Err, context.Canceled)
	require.Contains(t, loadErr.URL, srv.URL)
}

func TestNativeCloseWakesWaiterWithTerminalState(t *testing.T) {
	t.Parallel()

	srv := stylesheetServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	n := NewNative(NativeOptions{Assets: &recordingAssets{}, ServiceURL: srv.URL})
	n.Load(loadableConfig())

	observed := make(chan State, 1)
	done := n.Done()
	go func() {
		<-done
		observed <- n.State()
	}()

	time.Sleep(50 * time.Millisecond)
	n.Close()

	select {
	case st := <-observed:
		require.True(t, st.Loaded)
		require.Error(t, st.Err)
	case <-time.After(5 * time.Second):
		t.Fatal("waiter was not woken by Close")
	}

	n.Close()
	require.True(t, n.State().Loaded, "closing an idle loader keeps the terminal state")
}

func TestNativePreload(t *testing.T) {
	t.Parallel()

	srv := stylesheetServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, interCSS)
	})

	assets := &recordingAssets{}
	n := NewNative(NativeOptions{Assets: assets, ServiceURL: srv.URL})

	st := n.Preload(context.Background(), loadableConfig())
	require.Equal(t, State{Loaded: true}, st)
	require.Len(t, assets.received(), 3)
}

func TestNativePreloadContextCancelled(t *testing.T) {
	t.Parallel()

	srv := stylesheetServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	n := NewNative(NativeOptions{Assets: &recordingAssets{}, ServiceURL: srv.URL})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	st := n.Preload(ctx, loadableConfig())
	require.True(t, st.Loaded)
	require.ErrorIs(t, st.Err, context.DeadlineExceeded)

	var loadErr *apperrors.FontLoadError
	require.ErrorAs(t, st.Err, &loadErr)
	require.Equal(t, fonts.BuildStylesheetURLWithBase(srv.URL, loadableConfig()), loadErr.URL)
	require.Equal(t, st, n.State())
}

func TestNativeDecodesCompressedStylesheets(t *testing.T) {
	t.Parallel()

	encoders := map[string]func(io.Writer) io.WriteCloser{
		"gzip": func(w io.Writer) io.WriteCloser { return gzip.NewWriter(w) },
		"br":   func(w io.Writer) io.WriteCloser { return brotli.NewWriter(w) },
	}

	for name, newWriter := range encoders {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var body bytes.Buffer
			w := newWriter(&body)
			_, err := w.Write([]byte(interCSS))
			require.NoError(t, err)
			require.NoError(t, w.Close())

			srv := stylesheetServer(t, func(rw http.ResponseWriter, r *http.Request) {
				rw.Header().Set("Content-Encoding", name)
				_, _ = rw.Write(body.Bytes())
			})

			assets := &recordingAssets{}
			n := NewNative(NativeOptions{Assets: assets, ServiceURL: srv.URL})
			st := n.Preload(context.Background(), loadableConfig())
			require.NoError(t, st.Err)
			require.Len(t, assets.received(), 3)
		})
	}
}
