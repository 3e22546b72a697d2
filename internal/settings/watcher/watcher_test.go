package watcher

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// newTestWatcher returns a fast-polling watcher over a memory fs and a
// channel receiving its events.
func newTestWatcher(t *testing.T) (*Watcher, afero.Fs, chan Event) {
	t.Helper()

	fs := afero.NewMemMapFs()
	w := New(
		WithFs(fs),
		WithInterval(5*time.Millisecond),
		WithDebounce(0),
	)
	events := make(chan Event, 16)
	w.OnChange(func(e Event) {
		events <- e
	})
	t.Cleanup(w.Stop)
	return w, fs, events
}

func waitEvent(t *testing.T, events chan Event) Event {
	t.Helper()
	select {
	case e := <-events:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for watcher event")
		return Event{}
	}
}

func TestDetectsWrite(t *testing.T) {
	w, fs, events := newTestWatcher(t)
	const path = "/cfg/Preferences.json"

	if err := afero.WriteFile(fs, path, []byte(`{"font_size": 10}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := w.Watch(path); err != nil {
		t.Fatal(err)
	}
	w.Start()

	// Make sure the new mod time differs from the recorded one.
	time.Sleep(10 * time.Millisecond)
	if err := afero.WriteFile(fs, path, []byte(`{"font_size": 12}`), 0o644); err != nil {
		t.Fatal(err)
	}

	e := waitEvent(t, events)
	if e.Path != path || e.Op != OpWrite {
		t.Errorf("event = %v %v, want %s write", e.Path, e.Op, path)
	}
}

func TestDetectsCreate(t *testing.T) {
	w, fs, events := newTestWatcher(t)
	const path = "/cfg/Preferences.json"

	// Watching a file that does not exist yet waits for its creation.
	if err := w.Watch(path); err != nil {
		t.Fatal(err)
	}
	w.Start()

	if err := afero.WriteFile(fs, path, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	e := waitEvent(t, events)
	if e.Op != OpCreate {
		t.Errorf("event op = %v, want create", e.Op)
	}
}

func TestDetectsRemove(t *testing.T) {
	w, fs, events := newTestWatcher(t)
	const path = "/cfg/Preferences.json"

	if err := afero.WriteFile(fs, path, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := w.Watch(path); err != nil {
		t.Fatal(err)
	}
	w.Start()

	if err := fs.Remove(path); err != nil {
		t.Fatal(err)
	}

	e := waitEvent(t, events)
	if e.Op != OpRemove {
		t.Errorf("event op = %v, want remove", e.Op)
	}
}

func TestUnwatchedFileIsIgnored(t *testing.T) {
	w, fs, events := newTestWatcher(t)
	const path = "/cfg/Preferences.json"

	if err := afero.WriteFile(fs, path, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := w.Watch(path); err != nil {
		t.Fatal(err)
	}
	w.Unwatch(path)
	w.Start()

	time.Sleep(10 * time.Millisecond)
	if err := afero.WriteFile(fs, path, []byte(`{"font_size": 9}`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case e := <-events:
		t.Errorf("unexpected event after Unwatch: %+v", e)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDebounceCoalescesRapidEdits(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := New(
		WithFs(fs),
		WithInterval(5*time.Millisecond),
		WithDebounce(50*time.Millisecond),
	)
	events := make(chan Event, 16)
	w.OnChange(func(e Event) { events <- e })
	t.Cleanup(w.Stop)

	const path = "/cfg/Preferences.json"
	if err := afero.WriteFile(fs, path, []byte(`{"font_size": 10}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := w.Watch(path); err != nil {
		t.Fatal(err)
	}
	w.Start()

	for i := 0; i < 3; i++ {
		time.Sleep(10 * time.Millisecond)
		if err := afero.WriteFile(fs, path, []byte(`{"font_size": 11}`), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	waitEvent(t, events)
	// The rapid edits collapse into at most one further event.
	extra := 0
	deadline := time.After(200 * time.Millisecond)
drain:
	for {
		select {
		case <-events:
			extra++
		case <-deadline:
			break drain
		}
	}
	if extra > 1 {
		t.Errorf("got %d extra events after debounce, want at most 1", extra)
	}
}

func TestStartStopLifecycle(t *testing.T) {
	w := New(WithFs(afero.NewMemMapFs()), WithInterval(5*time.Millisecond))

	if w.IsRunning() {
		t.Error("new watcher should not be running")
	}
	w.Start()
	w.Start() // second Start is a no-op
	if !w.IsRunning() {
		t.Error("watcher should be running after Start")
	}
	w.Stop()
	w.Stop() // second Stop is a no-op
	if w.IsRunning() {
		t.Error("watcher should not be running after Stop")
	}
}

func TestWatchedFiles(t *testing.T) {
	w, fs, _ := newTestWatcher(t)

	if err := afero.WriteFile(fs, "/a.json", []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := w.Watch("/a.json"); err != nil {
		t.Fatal(err)
	}
	if err := w.Watch("/b.json"); err != nil {
		t.Fatal(err)
	}

	files := w.WatchedFiles()
	if len(files) != 2 {
		t.Errorf("WatchedFiles() = %v, want 2 entries", files)
	}
}
