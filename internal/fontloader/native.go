package fontloader

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/brandkit/internal/fonts"
	"github.com/alexisbeaulieu97/brandkit/internal/logger"
	apperrors "github.com/alexisbeaulieu97/brandkit/pkg/errors"
)

// DefaultTimeout bounds one native activation from fetch start to terminal state.
const DefaultTimeout = 5 * time.Second

// NativeOptions configures a Native loader. Zero values select defaults.
type NativeOptions struct {
	Client     *http.Client
	Assets     AssetLoader
	Logger     *logger.Logger
	Timeout    time.Duration
	UserAgent  string
	ServiceURL string
	// OnChange is called, outside the loader's lock, when an asynchronous
	// activation reaches its terminal state.
	OnChange func(State)
}

// Native fetches the stylesheet for a font configuration and registers every
// face it declares through the asset loader. Only the most recent activation
// may publish state.
type Native struct {
	opts NativeOptions

	mu      sync.Mutex
	state   State
	current *activation
}

type activation struct {
	url    string
	cancel context.CancelCauseFunc
	timer  *time.Timer
	done   *signal
}

// signal is closed once the activations sharing it are terminal. A pending
// activation hands its signal to the one that replaces it, so a waiter only
// wakes once State reports Loaded.
type signal struct {
	ch   chan struct{}
	once sync.Once
}

func newSignal() *signal {
	return &signal{ch: make(chan struct{})}
}

func (s *signal) close() {
	s.once.Do(func() { close(s.ch) })
}

func (s *signal) closed() bool {
	select {
	case <-s.ch:
		return true
	default:
		return false
	}
}

func (a *activation) pending() bool {
	return !a.done.closed()
}

// stop halts the timer and aborts the fetch. It does not settle the signal.
func (a *activation) stop() {
	if a.timer != nil {
		a.timer.Stop()
	}
	if a.cancel != nil {
		a.cancel(context.Canceled)
	}
}

// NewNative constructs a Native loader. Before the first Load it reports
// {Loaded: true}.
func NewNative(opts NativeOptions) *Native {
	if opts.Client == nil {
		opts.Client = &http.Client{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.ServiceURL == "" {
		opts.ServiceURL = fonts.DefaultServiceURL
	}

	return &Native{
		opts:    opts,
		state:   State{Loaded: true},
		current: settled(),
	}
}

// settled returns an activation that is already terminal.
func settled() *activation {
	act := &activation{done: newSignal()}
	act.done.close()
	return act
}

// Load starts an activation for cfg, tearing down any previous one, and
// returns the initial state. A config without loadable families, or a loader
// without an asset capability, is terminal immediately. Waiters on a
// superseded activation are woken when the new one is terminal.
func (n *Native) Load(cfg *fonts.Config) State {
	url := fonts.BuildStylesheetURLWithBase(n.opts.ServiceURL, cfg)

	n.mu.Lock()
	prev := n.current
	prev.stop()

	done := newSignal()
	if prev.pending() {
		done = prev.done
	}
	act := &activation{url: url, done: done}
	n.current = act

	if url == "" {
		n.state = State{Loaded: true}
		act.done.close()
		n.mu.Unlock()
		return State{Loaded: true}
	}

	if n.opts.Assets == nil {
		n.state = State{Loaded: true}
		act.done.close()
		n.mu.Unlock()
		n.opts.Logger.WithFields(map[string]any{"url": url}).
			Warn(nil, "no font asset loader available, using system fonts")
		return State{Loaded: true}
	}

	ctx, cancel := context.WithCancelCause(context.Background())
	act.cancel = cancel
	act.timer = time.AfterFunc(n.opts.Timeout, func() { cancel(apperrors.ErrTimeout) })
	n.state = State{}
	n.mu.Unlock()

	go n.run(ctx, act)
	return State{}
}

// State returns the latest published state.
func (n *Native) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// Done is closed when the current activation reaches its terminal state or is
// torn down. Once closed, State reports Loaded.
func (n *Native) Done() <-chan struct{} {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current.done.ch
}

// Close stops the timer and aborts any in-flight fetch. A pending activation
// resolves to {Loaded: true} carrying a cancellation error; its fetch result
// is discarded. A later Load starts over.
func (n *Native) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.teardownLocked(context.Canceled)
}

// teardownLocked stops the current activation and, if it was pending,
// publishes a terminal state wrapping cause. n.mu must be held.
func (n *Native) teardownLocked(cause error) {
	act := n.current
	act.stop()
	if act.pending() {
		n.state = State{Loaded: true, Err: apperrors.NewFontLoadError(act.url, false, cause)}
		act.done.close()
	}
	n.current = settled()
}

// Preload runs one activation to completion and returns its terminal state.
// If ctx ends first the activation is torn down and the state reports Loaded
// with the context error.
func (n *Native) Preload(ctx context.Context, cfg *fonts.Config) State {
	st := n.Load(cfg)
	if st.Loaded {
		return st
	}

	select {
	case <-n.Done():
		return n.State()
	case <-ctx.Done():
		n.mu.Lock()
		defer n.mu.Unlock()
		n.teardownLocked(ctx.Err())
		return n.state
	}
}

func (n *Native) run(ctx context.Context, act *activation) {
	err := n.activate(ctx, act.url)
	act.cancel(context.Canceled)
	n.publish(act, State{Loaded: true, Err: err})
}

// activate runs fetch, parse and batch load in order. The batch load gets a
// context detached from the timer so a dispatched registration may finish in
// the background; the activation itself still resolves when the timer fires.
func (n *Native) activate(ctx context.Context, url string) error {
	log := n.opts.Logger.WithFields(map[string]any{"url": url})

	css, err := fetchStylesheet(ctx, n.opts.Client, url, n.opts.UserAgent)
	if err != nil {
		return n.failure(ctx, log, url, err)
	}

	faces := fonts.ParseFontFaces(css)
	if len(faces) == 0 {
		log.Debug("stylesheet declares no usable font faces")
		return nil
	}

	sources := make(map[string]string, len(faces))
	for _, face := range faces {
		sources[face.Key()] = face.URL
	}

	result := make(chan error, 1)
	go func() {
		result <- n.opts.Assets.LoadFonts(context.WithoutCancel(ctx), sources)
	}()

	select {
	case err := <-result:
		if err != nil {
			return n.failure(ctx, log, url, err)
		}
		log.WithFields(map[string]any{"faces": len(sources)}).Debug("fonts loaded")
		return nil
	case <-ctx.Done():
		return n.failure(ctx, log, url, context.Cause(ctx))
	}
}

func (n *Native) failure(ctx context.Context, log *logger.Logger, url string, err error) error {
	cause := context.Cause(ctx)
	if errors.Is(cause, context.Canceled) {
		log.Debug("font activation torn down")
		return apperrors.NewFontLoadError(url, false, cause)
	}
	if errors.Is(cause, apperrors.ErrTimeout) {
		log.Warn(apperrors.ErrTimeout, "font loading timed out, using system fonts")
		return apperrors.NewFontLoadError(url, true, apperrors.ErrTimeout)
	}
	log.Warn(err, "font loading failed, using system fonts")
	return apperrors.NewFontLoadError(url, false, err)
}

func (n *Native) publish(act *activation, st State) {
	n.mu.Lock()
	if n.current != act {
		n.mu.Unlock()
		return
	}
	if act.timer != nil {
		act.timer.Stop()
	}
	n.state = st
	act.done.close()
	onChange := n.opts.OnChange
	n.mu.Unlock()

	if onChange != nil {
		onChange(st)
	}
}
