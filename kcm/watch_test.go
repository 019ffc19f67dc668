package kcm

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type watchRecorder struct {
	mutex  sync.Mutex
	counts []int
}

func (w *watchRecorder) notify(result *BatchResult, err error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if err == nil {
		w.counts = append(w.counts, len(result.Files))
	}
}

func (w *watchRecorder) seen(count int) bool {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	for _, c := range w.counts {
		if c == count {
			return true
		}
	}
	return false
}

func startWatch(t *testing.T, manifest, outputDir string, notify func(*BatchResult, error)) (context.CancelFunc, chan error) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	batch := &Batch{Generator: testGenerator(), Out: &bytes.Buffer{}}
	go func() {
		done <- Watch(ctx, manifest, outputDir, batch, notify)
	}()
	return cancel, done
}

func stopWatch(t *testing.T, cancel context.CancelFunc, done chan error) {
	cancel()
	select {
	case err := <-done:
		require.Nil(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "language_list.csv")
	outputDir := filepath.Join(dir, "out")
	err := os.WriteFile(manifest, []byte("Locale,QWERTY_KCM\nru,ru.kcm\n"), 0600)
	require.Nil(t, err)

	recorder := &watchRecorder{}
	cancel, done := startWatch(t, manifest, outputDir, recorder.notify)
	require.Eventually(t, func() bool { return recorder.seen(1) }, 5*time.Second, 10*time.Millisecond)

	err = os.WriteFile(manifest, []byte("Locale,QWERTY_KCM\nru,ru.kcm\nuk,uk.kcm\n"), 0600)
	require.Nil(t, err)
	require.Eventually(t, func() bool { return recorder.seen(2) }, 5*time.Second, 10*time.Millisecond)

	stopWatch(t, cancel, done)
	_, err = os.Stat(filepath.Join(outputDir, "uk.kcm"))
	require.Nil(t, err)
}

func TestWatchEditDuringFirstRun(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "language_list.csv")
	outputDir := filepath.Join(dir, "out")
	err := os.WriteFile(manifest, []byte("Locale,QWERTY_KCM\nru,ru.kcm\n"), 0600)
	require.Nil(t, err)

	recorder := &watchRecorder{}
	first := true
	notify := func(result *BatchResult, err error) {
		if first {
			// the event loop has not started yet
			first = false
			werr := os.WriteFile(manifest, []byte("Locale,QWERTY_KCM\nru,ru.kcm\nbe,be.kcm\nbg,bg.kcm\n"), 0600)
			if werr != nil {
				t.Error(werr)
			}
		}
		recorder.notify(result, err)
	}
	cancel, done := startWatch(t, manifest, outputDir, notify)
	require.Eventually(t, func() bool { return recorder.seen(3) }, 5*time.Second, 10*time.Millisecond)
	stopWatch(t, cancel, done)
}

func TestWatchInitialError(t *testing.T) {
	batch := &Batch{Generator: testGenerator(), Out: &bytes.Buffer{}}
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "missing.csv"), t.TempDir(), batch, nil)
	require.NotNil(t, err)
}
