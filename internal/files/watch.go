package files

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const watchDelay = 100 * time.Millisecond

// Watch reports changes to the file at path until ctx is cancelled. The parent
// directory is watched so editors that replace files by rename are still seen.
// Bursts of events are coalesced into one notification. The channel is closed
// once ctx is done or the watcher fails.
func (m *Manager) Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	abs, err := m.Resolve(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	changes := make(chan struct{}, 1)
	notify := func() {
		select {
		case changes <- struct{}{}:
		default:
			// A notification is already pending; the reader reloads once.
		}
	}

	go func() {
		throttle := newThrottle(watchDelay)
		defer close(changes)
		defer throttle.stop()
		defer func() {
			if err := watcher.Close(); err != nil {
				m.logger.Debug("watcher close", zap.Error(err))
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				m.logger.Debug("watcher error", zap.String("path", abs), zap.Error(err))
				throttle.enqueue(notify)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != abs {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				throttle.enqueue(notify)
			}
		}
	}()

	return changes, nil
}

// throttle coalesces rapid notifications so a reload happens once per burst.
type throttle struct {
	mu      sync.Mutex
	timer   *time.Timer
	delay   time.Duration
	stopped bool
}

func newThrottle(delay time.Duration) *throttle {
	return &throttle{delay: delay}
}

func (t *throttle) enqueue(fire func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil || t.stopped {
		return
	}
	t.timer = time.AfterFunc(t.delay, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		t.timer = nil
		// fire must not block: it runs under the lock so stop can fence it.
		if !t.stopped {
			fire()
		}
	})
}

// stop cancels any pending notification. No fire runs after it returns.
func (t *throttle) stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
