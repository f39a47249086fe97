package markup

import (
	"fmt"
	"log/slog"
	"sync/atomic"
)

type selection struct {
	mode  Mode
	codec Codec
}

//nolint:gochecknoglobals // immutable fallback for a zero Selector.
var plainSelection = selection{mode: Plain, codec: PlainCodec{}}

// Selector holds the active mode and its codec. Reads are lock-free; Select swaps the codec
// atomically, so a mode change is never observed half-applied. Use NewSelector; a zero Selector
// behaves as Plain and has no components to switch to Legacy or Modern.
type Selector struct {
	components *Components
	logger     *slog.Logger
	active     atomic.Pointer[selection]
}

// SelectorOption configures a Selector.
type SelectorOption func(*Selector)

// WithLogger sets the logger used to report mode changes.
func WithLogger(logger *slog.Logger) SelectorOption {
	return func(s *Selector) {
		s.logger = logger
	}
}

// NewSelector returns a Selector with mode active. It fails like New when mode needs components
// that are not available.
func NewSelector(mode Mode, components *Components, opts ...SelectorOption) (*Selector, error) {
	selector := &Selector{
		components: components,
		logger:     slog.Default(),
	}

	for _, apply := range opts {
		apply(selector)
	}

	codec, err := New(mode, components)
	if err != nil {
		return nil, fmt.Errorf("selecting %s mode: %w", mode, err)
	}

	selector.active.Store(&selection{mode: mode, codec: codec})

	return selector, nil
}

// Select switches to mode. The previous mode stays active when mode cannot be selected.
func (s *Selector) Select(mode Mode) error {
	codec, err := New(mode, s.components)
	if err != nil {
		return fmt.Errorf("selecting %s mode: %w", mode, err)
	}

	previous := s.active.Swap(&selection{mode: mode, codec: codec})
	if previous == nil {
		previous = &plainSelection
	}

	if previous.mode != mode && s.logger != nil {
		s.logger.Info("serializer mode changed",
			slog.String("from", previous.mode.String()),
			slog.String("to", mode.String()),
		)
	}

	return nil
}

// Mode returns the active mode.
func (s *Selector) Mode() Mode {
	return s.current().mode
}

// Transform applies the active codec.
func (s *Selector) Transform(input string) string {
	return s.current().codec.Transform(input)
}

func (s *Selector) current() *selection {
	if active := s.active.Load(); active != nil {
		return active
	}

	return &plainSelection
}
