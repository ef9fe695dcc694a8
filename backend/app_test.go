package backend

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"atvremote/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	calls [][]string
}

func (s *stubRunner) Run(_ context.Context, args ...string) (string, error) {
	s.calls = append(s.calls, args)
	if len(args) > 0 && args[0] == "connect" {
		return "connected to " + args[1], nil
	}
	return "device", nil
}

func startTestApp(t *testing.T, dir string) (*App, *stubRunner) {
	t.Helper()
	runner := &stubRunner{}
	a, err := StartupApp(Options{
		AppName:        "atvremote",
		Version:        "v0.0.0-test",
		DataDir:        dir,
		Runner:         runner,
		DetectLanguage: func([]string) string { return "English" },
	})
	require.NoError(t, err)
	t.Cleanup(a.cancel)
	return a, runner
}

func TestStartupAppFreshDirectory(t *testing.T) {
	dir := t.TempDir()
	a, _ := startTestApp(t, dir)

	assert.True(t, a.IsFirstLaunch())
	assert.Nil(t, a.Bridge)
	assert.Equal(t, dir, a.DataDir())
	assert.Equal(t, "English", a.Translator.Language())
	assert.Equal(t, []string{"Español", "English"}, a.Translator.Languages())
	assert.Empty(t, a.Remote.SavedAddresses())
	assert.Equal(t, 3*time.Second, a.Config.PollInterval())

	for _, name := range []string{"ips.json", "language.json", "translations.json", "how_to_add_languages.txt"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
}

func TestStartupAppWiresController(t *testing.T) {
	dir := t.TempDir()
	a, runner := startTestApp(t, dir)

	ok, err := a.Remote.Connect(context.Background(), "192.168.1.20")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"connect", "192.168.1.20"}, runner.calls[0])
	assert.Equal(t, []string{"192.168.1.20"}, a.Docs.Addresses())

	status, err := a.Remote.PollStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.StatusConnected, status)
}

func TestSetLanguagePersists(t *testing.T) {
	dir := t.TempDir()
	a, _ := startTestApp(t, dir)

	require.NoError(t, a.SetLanguage("Español"))
	assert.Equal(t, "Español", a.Translator.Language())
	assert.Equal(t, "● Conectado", a.Translator.T("status_connected"))

	b, _ := startTestApp(t, dir)
	assert.Equal(t, "Español", b.Translator.Language())
}

func TestShutdownWritesConfig(t *testing.T) {
	dir := t.TempDir()
	a, _ := startTestApp(t, dir)
	a.Config.Application.WindowWidth = 420
	a.Shutdown()

	cfg, err := ReadConfigFile(filepath.Join(dir, configFile))
	require.NoError(t, err)
	assert.Equal(t, 420, cfg.Application.WindowWidth)
	assert.Equal(t, "v0.0.0-test", cfg.Application.LastLaunchedVersion)
	assert.False(t, a.configChanged())

	b, _ := startTestApp(t, dir)
	assert.False(t, b.IsFirstLaunch())
	assert.Equal(t, 420, b.Config.Application.WindowWidth)
}

func TestMalformedConfigIsBackedUp(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFile), []byte("[Application\nbroken"), 0o644))

	a, _ := startTestApp(t, dir)
	assert.Equal(t, DefaultConfig(), a.Config)
	assert.FileExists(t, filepath.Join(dir, configFile+".bak"))
}

func TestStartupAppCorruptDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ips.json"), []byte("{not json"), 0o644))

	_, err := StartupApp(Options{
		DataDir:        dir,
		Runner:         &stubRunner{},
		DetectLanguage: func([]string) string { return "English" },
	})
	assert.Error(t, err)
}

func TestPollIntervalClamp(t *testing.T) {
	tests := []struct {
		seconds int
		want    time.Duration
	}{
		{0, time.Second},
		{3, 3 * time.Second},
		{600, time.Minute},
	}
	for _, tt := range tests {
		c := DefaultConfig()
		c.Application.PollIntervalSeconds = tt.seconds
		assert.Equal(t, tt.want, c.PollInterval())
	}
}

func TestQuitWithoutHandler(t *testing.T) {
	a, _ := startTestApp(t, t.TempDir())
	assert.Error(t, a.Quit())

	done := make(chan struct{})
	a.OnExit = func() { close(done) }
	require.NoError(t, a.Quit())
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("OnExit not called")
	}
}
