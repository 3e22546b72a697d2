package plugin

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/tidwall/gjson"

	"github.com/dshills/fontscale/internal/dispatcher/handlers/font"
	"github.com/dshills/fontscale/internal/fontsize"
	"github.com/dshills/fontscale/internal/settings"
)

const testPrefs = "/cfg/fontscale/Preferences.json"

func newTestHost(t *testing.T, fs afero.Fs) *Host {
	t.Helper()

	h, err := NewHost(
		WithFilesystem(fs),
		WithPreferencesPath(testPrefs),
		WithWatchInterval(5*time.Millisecond),
	)
	if err != nil {
		t.Fatalf("NewHost error: %v", err)
	}
	t.Cleanup(h.Deactivate)
	return h
}

func TestActivateSeedsPreferences(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, testPrefs, []byte(`{"font_size": 12, "theme": "dark"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	h := newTestHost(t, fs)
	if err := h.Activate(); err != nil {
		t.Fatalf("Activate error: %v", err)
	}

	data, err := afero.ReadFile(fs, testPrefs)
	if err != nil {
		t.Fatal(err)
	}
	if got := gjson.GetBytes(data, "default_font_size").Int(); got != 12 {
		t.Errorf("default_font_size = %d, want seeded 12", got)
	}
	if got := gjson.GetBytes(data, "min_font_size").Int(); got != fontsize.DefaultMinFontSize {
		t.Errorf("min_font_size = %d, want %d", got, fontsize.DefaultMinFontSize)
	}
	if got := gjson.GetBytes(data, "theme").String(); got != "dark" {
		t.Errorf("theme = %q, want preserved dark", got)
	}
}

func TestActivateTwiceFails(t *testing.T) {
	h := newTestHost(t, afero.NewMemMapFs())
	if err := h.Activate(); err != nil {
		t.Fatal(err)
	}
	if err := h.Activate(); !errors.Is(err, ErrAlreadyActivated) {
		t.Errorf("second Activate error = %v, want ErrAlreadyActivated", err)
	}
}

func TestActivateFailsOnMalformedPreferences(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, testPrefs, []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	h := newTestHost(t, fs)
	if err := h.Activate(); err == nil {
		t.Error("Activate should fail on a malformed preferences file")
	}
}

func TestCommandAdjustsAndPersists(t *testing.T) {
	fs := afero.NewMemMapFs()
	h := newTestHost(t, fs)
	if err := h.Activate(); err != nil {
		t.Fatal(err)
	}

	result := h.Command(font.ActionIncreaseGlobal, 0, 0, "")
	if !result.IsOK() {
		t.Fatalf("result = %+v, want ok", result)
	}
	if result.FontSize != fontsize.FallbackFontSize+1 {
		t.Errorf("FontSize = %d, want %d", result.FontSize, fontsize.FallbackFontSize+1)
	}

	data, err := afero.ReadFile(fs, testPrefs)
	if err != nil {
		t.Fatal(err)
	}
	if got := gjson.GetBytes(data, "font_size").Int(); got != int64(fontsize.FallbackFontSize+1) {
		t.Errorf("persisted font_size = %d, want %d", got, fontsize.FallbackFontSize+1)
	}
}

func TestCommandWithFocus(t *testing.T) {
	h := newTestHost(t, afero.NewMemMapFs())
	if err := h.Activate(); err != nil {
		t.Fatal(err)
	}

	result := h.Command(font.ActionIncreaseView, 1, 4, "Go")
	if !result.IsOK() {
		t.Fatalf("result = %+v, want ok", result)
	}
	if got, ok := h.Store().Get(settings.ViewTarget(4, 1, "Go"), fontsize.KeyFontSize); !ok {
		t.Errorf("view override missing, got %v", got)
	}

	// Without a focused view the same command fails.
	result = h.Command(font.ActionIncreaseView, 0, 0, "")
	if !result.IsError() {
		t.Errorf("result = %+v, want error without focus", result)
	}
}

func TestExternalEditReloads(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, testPrefs, []byte(`{"font_size": 10}`), 0o644); err != nil {
		t.Fatal(err)
	}

	h := newTestHost(t, fs)
	if err := h.Activate(); err != nil {
		t.Fatal(err)
	}

	// Simulate the user editing the file outside the editor.
	time.Sleep(10 * time.Millisecond)
	if err := afero.WriteFile(fs, testPrefs, []byte(`{"font_size": 33, "default_font_size": 10, "min_font_size": 8, "max_font_size": 128}`), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		if size := h.Fonts().Effective(settings.GlobalTarget()); size == 33 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("effective size = %d, want reloaded 33",
				h.Fonts().Effective(settings.GlobalTarget()))
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestDeactivateStopsDispatch(t *testing.T) {
	h := newTestHost(t, afero.NewMemMapFs())
	if err := h.Activate(); err != nil {
		t.Fatal(err)
	}
	h.Deactivate()
	h.Deactivate() // idempotent

	result := h.Command(font.ActionIncreaseGlobal, 0, 0, "")
	if !errors.Is(result.Error, ErrNotActivated) {
		t.Errorf("error = %v, want ErrNotActivated", result.Error)
	}
}

func TestSyntaxFileEditReloads(t *testing.T) {
	fs := afero.NewMemMapFs()
	syntaxFile := "/cfg/fontscale/Go.json"

	h, err := NewHost(
		WithFilesystem(fs),
		WithPreferencesPath(testPrefs),
		WithSyntaxPaths(func(string) string { return syntaxFile }),
		WithWatchInterval(5*time.Millisecond),
	)
	if err != nil {
		t.Fatalf("NewHost error: %v", err)
	}
	t.Cleanup(h.Deactivate)
	if err := h.Activate(); err != nil {
		t.Fatal(err)
	}

	// The first syntax-scoped command puts the file under watch.
	result := h.Command(font.ActionIncreaseSyntax, 1, 2, "Go")
	if !result.IsOK() {
		t.Fatalf("result = %+v, want ok", result)
	}

	time.Sleep(10 * time.Millisecond)
	if err := afero.WriteFile(fs, syntaxFile, []byte(`{"font_size": 21}`), 0o644); err != nil {
		t.Fatal(err)
	}

	target := settings.SyntaxTarget("Go")
	deadline := time.Now().Add(2 * time.Second)
	for {
		if size := h.Fonts().Effective(target); size == 21 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("effective size = %d, want reloaded 21", h.Fonts().Effective(target))
		}
		time.Sleep(5 * time.Millisecond)
	}
}
