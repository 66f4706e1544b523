// Package haptics provides fire-and-forget user feedback. Nothing a
// Feedback does is observable to callers: failures are swallowed and
// logged, and calls never block.
package haptics

import (
	"io"
	"sync"

	"go.uber.org/zap"
)

// ImpactStyle is the strength of a tap-like feedback.
type ImpactStyle int

const (
	ImpactLight ImpactStyle = iota
	ImpactMedium
	ImpactHeavy
)

func (s ImpactStyle) String() string {
	switch s {
	case ImpactLight:
		return "light"
	case ImpactMedium:
		return "medium"
	case ImpactHeavy:
		return "heavy"
	}
	return "unknown"
}

// NotificationKind is the outcome signalled by a notification feedback.
type NotificationKind int

const (
	NotifySuccess NotificationKind = iota
	NotifyWarning
	NotifyError
)

func (k NotificationKind) String() string {
	switch k {
	case NotifySuccess:
		return "success"
	case NotifyWarning:
		return "warning"
	case NotifyError:
		return "error"
	}
	return "unknown"
}

// Feedback emits haptic-style signals.
type Feedback interface {
	Impact(style ImpactStyle)
	Notify(kind NotificationKind)
}

// Nop discards every signal.
type Nop struct{}

func (Nop) Impact(ImpactStyle)      {}
func (Nop) Notify(NotificationKind) {}

// Bell rings the terminal bell. Heavy impacts and notifications ring twice.
type Bell struct {
	w      io.Writer
	logger *zap.Logger
	mu     sync.Mutex
}

// NewBell returns a Bell writing BEL characters to w.
func NewBell(w io.Writer, logger *zap.Logger) *Bell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bell{w: w, logger: logger}
}

func (b *Bell) Impact(style ImpactStyle) {
	rings := 1
	if style == ImpactHeavy {
		rings = 2
	}
	b.ring("impact", style.String(), rings)
}

func (b *Bell) Notify(kind NotificationKind) {
	b.ring("notify", kind.String(), 2)
}

func (b *Bell) ring(signal, variant string, rings int) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				b.logger.Debug("haptic feedback panicked", zap.String("signal", signal), zap.Any("recovered", r))
			}
		}()
		b.mu.Lock()
		defer b.mu.Unlock()
		for i := 0; i < rings; i++ {
			if _, err := io.WriteString(b.w, "\a"); err != nil {
				b.logger.Debug("haptic feedback failed",
					zap.String("signal", signal),
					zap.String("variant", variant),
					zap.Error(err))
				return
			}
		}
	}()
}

// Recorder keeps every signal it receives, in order. Useful in tests.
type Recorder struct {
	mu      sync.Mutex
	Impacts []ImpactStyle
	Notices []NotificationKind
}

func (r *Recorder) Impact(style ImpactStyle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Impacts = append(r.Impacts, style)
}

func (r *Recorder) Notify(kind NotificationKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Notices = append(r.Notices, kind)
}

// Snapshot returns copies of the recorded signals.
func (r *Recorder) Snapshot() ([]ImpactStyle, []NotificationKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ImpactStyle(nil), r.Impacts...), append([]NotificationKind(nil), r.Notices...)
}
