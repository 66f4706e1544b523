package haptics

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestBellRings(t *testing.T) {
	out := &syncBuffer{}
	bell := NewBell(out, nil)

	bell.Impact(ImpactMedium)
	bell.Impact(ImpactHeavy)
	bell.Notify(NotifySuccess)

	assert.Eventually(t, func() bool {
		return out.String() == "\a\a\a\a\a"
	}, time.Second, 5*time.Millisecond)
}

func TestBellSwallowsWriteErrors(t *testing.T) {
	bell := NewBell(failingWriter{}, nil)
	assert.NotPanics(t, func() {
		bell.Impact(ImpactLight)
		bell.Notify(NotifyError)
	})
}

func TestRecorder(t *testing.T) {
	rec := &Recorder{}
	rec.Impact(ImpactLight)
	rec.Notify(NotifySuccess)

	impacts, notices := rec.Snapshot()
	assert.Equal(t, []ImpactStyle{ImpactLight}, impacts)
	assert.Equal(t, []NotificationKind{NotifySuccess}, notices)
}
