package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"atvremote/backend"
	"atvremote/internal/bridge"
	"atvremote/internal/models"
	"atvremote/res"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	mu      sync.Mutex
	calls   [][]string
	outputs map[string]string
	err     error
}

func (f *fakeRunner) Run(_ context.Context, args ...string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, args)
	if f.err != nil {
		return "", f.err
	}
	return f.outputs[args[0]], nil
}

func (f *fakeRunner) Calls() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]string(nil), f.calls...)
}

func (f *fakeRunner) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

type notifications []fyne.Notification

func (n *notifications) record(note *fyne.Notification) {
	*n = append(*n, *note)
}

func (n *notifications) take() []fyne.Notification {
	out := *n
	*n = nil
	return out
}

func note(title, content string) fyne.Notification {
	return fyne.Notification{Title: title, Content: content}
}

func newTestWindow(t *testing.T, runner *fakeRunner) (*MainWindow, *notifications) {
	t.Helper()
	a := test.NewTempApp(t)

	app, err := backend.StartupApp(backend.Options{
		AppName:        res.AppName,
		Version:        "test",
		DataDir:        t.TempDir(),
		Runner:         runner,
		DetectLanguage: func([]string) string { return "English" },
	})
	require.NoError(t, err)
	t.Cleanup(app.Shutdown)

	m := NewMainWindow(a, res.AppName, res.DisplayName, app)
	sent := &notifications{}
	m.notifier = sent.record
	return m, sent
}

func TestPadSendsKeyevents(t *testing.T) {
	runner := &fakeRunner{}
	m, _ := newTestWindow(t, runner)

	test.Tap(m.pad.Button(models.ActionUp))
	test.Tap(m.pad.Button(models.ActionVolumeDown))

	assert.Equal(t, [][]string{
		{"shell", "input", "keyevent", "KEYCODE_DPAD_UP"},
		{"shell", "input", "keyevent", "KEYCODE_VOLUME_DOWN"},
	}, runner.Calls())
}

func TestShortcuts(t *testing.T) {
	runner := &fakeRunner{}
	m, _ := newTestWindow(t, runner)

	m.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyReturn})
	m.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyBackspace})
	m.Canvas().OnTypedRune()('+')
	m.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyF1})

	assert.Equal(t, [][]string{
		{"shell", "input", "keyevent", "KEYCODE_ENTER"},
		{"shell", "input", "keyevent", "KEYCODE_BACK"},
		{"shell", "input", "keyevent", "KEYCODE_VOLUME_UP"},
	}, runner.Calls())
}

func TestShortcutsIgnoredWhileSettingsOpen(t *testing.T) {
	runner := &fakeRunner{}
	m, _ := newTestWindow(t, runner)

	m.ShowSettings()
	require.True(t, m.HaveModal())
	m.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyUp})
	assert.Empty(t, runner.Calls())

	m.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyEscape})
	assert.False(t, m.HaveModal())
}

func TestSendTextEscapesSpaces(t *testing.T) {
	runner := &fakeRunner{}
	m, _ := newTestWindow(t, runner)

	test.Type(m.textEntry, "hello tv world")
	test.Tap(m.sendBtn)

	assert.Equal(t, [][]string{{"shell", "input", "text", "hello%stv%sworld"}}, runner.Calls())
	assert.Empty(t, m.textEntry.Text)
}

func TestSendBlankTextDoesNothing(t *testing.T) {
	runner := &fakeRunner{}
	m, _ := newTestWindow(t, runner)

	test.Type(m.textEntry, "   ")
	test.Tap(m.sendBtn)

	assert.Empty(t, runner.Calls())
}

func TestConnectSuccess(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"connect":   "connected to 192.168.1.50:5555",
		"get-state": "device",
	}}
	m, sent := newTestWindow(t, runner)

	m.Connect("192.168.1.50")
	m.Connect("192.168.1.50")

	assert.Equal(t, []fyne.Notification{
		note("Connection successful", "Connection successful 192.168.1.50"),
		note("Connection successful", "Connection successful 192.168.1.50"),
	}, sent.take())
	assert.Equal(t, []string{"192.168.1.50"}, m.App.Remote.SavedAddresses())
	assert.Equal(t, "● Connected 192.168.1.50", m.statusLabel.Text)
	assert.Equal(t, []string{"get-state"}, runner.Calls()[1])
}

func TestConnectFailure(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"connect": "failed to connect to 10.0.0.9:5555",
	}}
	m, sent := newTestWindow(t, runner)

	m.Connect("10.0.0.9")

	assert.Equal(t, []fyne.Notification{note("Connection error", "Connection error 10.0.0.9")}, sent.take())
	assert.Empty(t, m.App.Remote.SavedAddresses())
	assert.Equal(t, "● Disconnected", m.statusLabel.Text)
}

func TestConnectBlankAddressMakesNoCall(t *testing.T) {
	runner := &fakeRunner{}
	m, sent := newTestWindow(t, runner)

	m.Connect("  ")

	assert.Empty(t, sent.take())
	assert.Empty(t, runner.Calls())
}

func TestDisconnectWithoutDeviceMakesNoCall(t *testing.T) {
	runner := &fakeRunner{}
	m, sent := newTestWindow(t, runner)

	m.Disconnect()

	assert.Empty(t, sent.take())
	assert.Empty(t, runner.Calls())
}

func TestDisconnectAfterConnect(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{"connect": "connected to 10.0.0.2"}}
	m, sent := newTestWindow(t, runner)
	m.Connect("10.0.0.2")
	runner.reset()
	sent.take()

	m.Disconnect()

	assert.Equal(t, []fyne.Notification{note("Disconnected", "Disconnected 10.0.0.2")}, sent.take())
	assert.Equal(t, [][]string{{"disconnect", "10.0.0.2"}, {"get-state"}}, runner.Calls())
	assert.Empty(t, m.App.Remote.Current())
}

func TestStatusNotifiesOnlyOnChange(t *testing.T) {
	m, sent := newTestWindow(t, &fakeRunner{})

	m.applyStatus(models.StatusDisconnected, nil, true)
	m.applyStatus(models.StatusConnected, nil, true)
	m.applyStatus(models.StatusConnected, nil, true)
	m.applyStatus(models.StatusDisconnected, nil, false)

	assert.Equal(t, []fyne.Notification{note("● Connected", "● Connected")}, sent.take())
	assert.Equal(t, "● Disconnected", m.statusLabel.Text)
}

func TestMissingBridgeIsReportedOnce(t *testing.T) {
	runner := &fakeRunner{err: fmt.Errorf("start adb: %w", bridge.ErrNotFound)}
	m, sent := newTestWindow(t, runner)

	test.Tap(m.pad.Button(models.ActionHome))
	test.Tap(m.pad.Button(models.ActionHome))

	assert.Equal(t, []fyne.Notification{note(res.AppName, "adb not found")}, sent.take())
	assert.Len(t, runner.Calls(), 2)
}

func TestNotificationsCanBeDisabled(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{"connect": "connected to 10.0.0.3"}}
	m, sent := newTestWindow(t, runner)
	m.App.Config.Application.ShowNotifications = false

	m.Connect("10.0.0.3")

	assert.Empty(t, sent.take())
	assert.Equal(t, "10.0.0.3", m.App.Remote.Current())
}

func TestLanguageChangeRelabels(t *testing.T) {
	m, _ := newTestWindow(t, &fakeRunner{})
	m.ShowSettings()

	m.setLanguage("Español")

	assert.Equal(t, "Enviar", m.sendBtn.Text)
	assert.Equal(t, "Texto a enviar", m.textEntry.PlaceHolder)
	assert.Equal(t, "● Desconectado", m.statusLabel.Text)
	assert.Equal(t, "Español", m.App.Docs.Language())
	assert.FileExists(t, filepath.Join(m.App.DataDir(), "language.json"))
}

func TestSettingsConnectUpdatesHistory(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{"connect": "connected to 10.0.0.7"}}
	m, _ := newTestWindow(t, runner)
	m.ShowSettings()
	require.NotNil(t, m.settings)

	m.settings.OnConnect("10.0.0.7")

	assert.Equal(t, []string{"10.0.0.7"}, m.App.Remote.SavedAddresses())
	m.closeSettings()
	assert.Nil(t, m.settings)
	assert.FileExists(t, filepath.Join(m.App.DataDir(), "config.toml"))
}

func TestPollingUpdatesStatus(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{"get-state": "device"}}
	m, _ := newTestWindow(t, runner)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.StartPolling(ctx, 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		return len(runner.Calls()) >= 2
	}, time.Second, 5*time.Millisecond)
	cancel()
	for _, call := range runner.Calls() {
		assert.Equal(t, []string{"get-state"}, call)
	}
}

func TestDesiredSizeFallsBack(t *testing.T) {
	m, _ := newTestWindow(t, &fakeRunner{})
	m.App.Config.Application.WindowWidth = 0
	m.App.Config.Application.WindowHeight = 0
	assert.Equal(t, fyne.NewSize(300, 600), m.DesiredSize())

	m.App.Config.Application.WindowWidth = 320
	assert.Equal(t, float32(320), m.DesiredSize().Width)
}
