package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"atvremote/backend"
	"atvremote/internal/bridge"
	"atvremote/internal/models"
	"atvremote/res"
	"atvremote/ui/components"
	"atvremote/ui/dialogs"
	"atvremote/ui/util"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	log "github.com/sirupsen/logrus"
)

const logViewLines = 500

type MainWindow struct {
	Window fyne.Window

	App  *backend.App
	Logs *components.LogHandler

	fyneApp        fyne.App
	notifier       func(*fyne.Notification)
	appName        string
	haveSystemTray bool
	trayMenu       *fyne.Menu

	statusLabel *widget.Label
	settingsBtn *widget.Button
	pad         *components.RemotePad
	textEntry   *widget.Entry
	sendBtn     *widget.Button

	settings     *dialogs.SettingsDialog
	settingsPop  *widget.PopUp
	haveModal    bool
	status       models.ConnectionStatus
	statusKnown  bool
	bridgeWarned bool
}

func NewMainWindow(fyneApp fyne.App, appName, displayAppName string, app *backend.App) *MainWindow {
	m := &MainWindow{
		App:     app,
		Logs:    components.NewLogHandler(logViewLines),
		Window:  fyneApp.NewWindow(displayAppName),
		fyneApp: fyneApp,
		appName: appName,
	}
	m.notifier = fyneApp.SendNotification

	if app.Config.Application.EnableSystemTray {
		m.SetupSystemTrayMenu(displayAppName, fyneApp)
	}

	m.initUI()
	m.initShortcuts()
	m.setInitialSize()

	m.Window.SetCloseIntercept(func() {
		m.SaveWindowSize()
		if app.Config.Application.CloseToSystemTray && m.HaveSystemTray() {
			m.sendNotification(appName, m.tr("app_minimized"))
			m.Window.Hide()
		} else {
			m.Window.Close()
		}
	})

	return m
}

func (m *MainWindow) initUI() {
	m.statusLabel = widget.NewLabel("")
	m.statusLabel.TextStyle = fyne.TextStyle{Bold: true}
	m.settingsBtn = widget.NewButtonWithIcon("", theme.SettingsIcon(), m.ShowSettings)
	m.settingsBtn.Importance = widget.LowImportance

	m.pad = components.NewRemotePad()
	m.pad.OnPress = m.press

	m.textEntry = widget.NewEntry()
	m.textEntry.SetPlaceHolder(m.tr("text_input_placeholder"))
	m.textEntry.OnSubmitted = func(string) { m.sendText() }
	m.sendBtn = widget.NewButton(m.tr("send"), m.sendText)

	topRow := container.NewHBox(m.statusLabel, layout.NewSpacer(), m.settingsBtn)
	bottomRow := container.NewBorder(nil, nil, nil, m.sendBtn, m.textEntry)
	m.Window.SetContent(container.NewPadded(
		container.NewBorder(topRow, bottomRow, nil, nil, container.NewCenter(m.pad)),
	))

	m.renderStatus()
}

func (m *MainWindow) initShortcuts() {
	c := m.Window.Canvas()
	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape && m.haveModal {
			m.closeSettings()
			return
		}
		if m.haveModal {
			return
		}
		if action, ok := keyActions[ev.Name]; ok {
			m.press(action)
		}
	})
	c.SetOnTypedRune(func(r rune) {
		if m.haveModal {
			return
		}
		switch r {
		case '+':
			m.press(models.ActionVolumeUp)
		case '-':
			m.press(models.ActionVolumeDown)
		}
	})
}

var keyActions = map[fyne.KeyName]models.Action{
	fyne.KeyUp:        models.ActionUp,
	fyne.KeyDown:      models.ActionDown,
	fyne.KeyLeft:      models.ActionLeft,
	fyne.KeyRight:     models.ActionRight,
	fyne.KeyReturn:    models.ActionOK,
	fyne.KeyEnter:     models.ActionOK,
	fyne.KeyBackspace: models.ActionBack,
	fyne.KeyHome:      models.ActionHome,
}

func (m *MainWindow) tr(key string) string {
	return m.App.Translator.T(key)
}

func (m *MainWindow) ctx() context.Context {
	return m.App.Context()
}

func (m *MainWindow) press(action models.Action) {
	m.reportErr(m.App.Remote.Press(m.ctx(), action))
}

func (m *MainWindow) sendText() {
	sent, err := m.App.Remote.SendText(m.ctx(), m.textEntry.Text)
	m.reportErr(err)
	if sent {
		m.textEntry.SetText("")
	}
	m.Window.Canvas().Focus(m.textEntry)
}

// Connect is the settings panel's connect action.
func (m *MainWindow) Connect(addr string) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return
	}
	ok, err := m.App.Remote.Connect(m.ctx(), addr)
	if ok {
		m.sendNotification(m.tr("connection_success"), m.tr("connection_success")+" "+addr)
		if err != nil {
			dialog.ShowError(err, m.Window)
		}
		if m.settings != nil {
			m.settings.SetAddresses(m.App.Remote.SavedAddresses())
		}
	} else {
		m.reportErr(err)
		m.sendNotification(m.tr("connection_error"), m.tr("connection_error")+" "+addr)
	}
	m.checkStatus()
}

// Disconnect is the settings panel's disconnect action.
func (m *MainWindow) Disconnect() {
	addr, err := m.App.Remote.Disconnect(m.ctx())
	if addr == "" {
		return
	}
	m.reportErr(err)
	m.sendNotification(m.tr("disconnected"), m.tr("disconnected")+" "+addr)
	m.checkStatus()
}

func (m *MainWindow) checkStatus() {
	status, err := m.App.Remote.PollStatus(m.ctx())
	m.applyStatus(status, err, false)
}

// StartPolling checks the device state every interval until ctx is done.
// The bridge call runs off the UI goroutine.
func (m *MainWindow) StartPolling(ctx context.Context, interval time.Duration) {
	poll := func() {
		status, err := m.App.Remote.PollStatus(ctx)
		if ctx.Err() != nil {
			return
		}
		fyne.Do(func() { m.applyStatus(status, err, true) })
	}
	go func() {
		tick := time.NewTicker(interval)
		defer tick.Stop()
		poll()
		for {
			select {
			case <-ctx.Done():
				return
			case <-tick.C:
				poll()
			}
		}
	}()
}

func (m *MainWindow) applyStatus(status models.ConnectionStatus, err error, notify bool) {
	m.reportErr(err)
	changed := m.statusKnown && status != m.status
	m.status = status
	m.statusKnown = true
	m.renderStatus()

	if notify && changed {
		key := statusKey(status)
		m.sendNotification(m.tr(key), m.statusText())
	}
}

func statusKey(status models.ConnectionStatus) string {
	if status == models.StatusConnected {
		return "status_connected"
	}
	return "status_disconnected"
}

func (m *MainWindow) statusText() string {
	text := m.tr(statusKey(m.status))
	if m.status == models.StatusConnected {
		if addr := m.App.Remote.Current(); addr != "" {
			text += " " + addr
		}
	}
	return text
}

func (m *MainWindow) renderStatus() {
	connected := m.status == models.StatusConnected
	m.statusLabel.SetText(m.statusText())
	if connected {
		m.statusLabel.Importance = widget.SuccessImportance
	} else {
		m.statusLabel.Importance = widget.LowImportance
	}
	m.statusLabel.Refresh()
	if m.settings != nil {
		m.settings.SetStatus(m.statusText(), connected)
	}
}

// reportErr surfaces a missing adb once; other failures are only logged.
func (m *MainWindow) reportErr(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, bridge.ErrNotFound) {
		if !m.bridgeWarned {
			m.bridgeWarned = true
			m.sendNotification(m.appName, m.tr("bridge_missing"))
		}
		return
	}
	log.WithError(err).Debug("remote call failed")
}

func (m *MainWindow) ShowSettings() {
	dlg := dialogs.NewSettingsDialog(m.App.Config, m.App.Translator, m.App.Remote.SavedAddresses(), m.Logs)
	dlg.OnConnect = m.Connect
	dlg.OnDisconnect = m.Disconnect
	dlg.OnLanguageChanged = m.setLanguage
	dlg.OnShowAbout = m.ShowAbout
	dlg.OnDismiss = m.closeSettings
	m.settings = dlg
	m.renderStatus()
	m.refreshBridgeState()

	pop := widget.NewModalPopUp(dlg, m.Canvas())
	pop.Resize(m.Canvas().Size().Subtract(fyne.NewSquareSize(theme.Padding() * 4)))
	m.settingsPop = pop
	m.haveModal = true
	pop.Show()
}

func (m *MainWindow) closeSettings() {
	if m.settingsPop != nil {
		m.settingsPop.Hide()
	}
	m.settingsPop = nil
	m.settings = nil
	m.haveModal = false
	m.App.SaveConfigFile()
}

func (m *MainWindow) ShowAbout() {
	dialogs.NewAboutDialog(m.fyneApp, m.Window, m.tr("about"), m.App.VersionTag(), m.App.DataDir()).Show()
}

func (m *MainWindow) refreshBridgeState() {
	dlg := m.settings
	if m.App.Bridge == nil || !m.App.Bridge.Available() {
		dlg.SetBridge("", components.BridgeMissing)
		return
	}
	path := m.App.Bridge.Path()
	dlg.SetBridge(path, components.BridgeServerStopped)
	go func() {
		running, err := bridge.ServerRunning(m.ctx())
		if err != nil {
			log.WithError(err).Warn("list processes")
			return
		}
		if running {
			fyne.Do(func() { dlg.SetBridge(path, components.BridgeServerRunning) })
		}
	}()
}

func (m *MainWindow) setLanguage(lang string) {
	if err := m.App.SetLanguage(lang); err != nil {
		dialog.ShowError(err, m.Window)
		return
	}
	m.relabel()
}

func (m *MainWindow) relabel() {
	m.textEntry.SetPlaceHolder(m.tr("text_input_placeholder"))
	m.sendBtn.SetText(m.tr("send"))
	m.renderStatus()
	if m.settings != nil {
		m.settings.Relabel()
	}
	if m.trayMenu != nil {
		m.trayMenu.Items[0].Label = m.tr("tray_show")
		m.trayMenu.Items[1].Label = m.tr("tray_hide")
		m.trayMenu.Items[3].Label = m.tr("tray_quit")
		m.trayMenu.Refresh()
	}
}

func (m *MainWindow) DesiredSize() fyne.Size {
	w := float32(m.App.Config.Application.WindowWidth)
	if w <= 1 {
		w = 300
	}
	h := float32(m.App.Config.Application.WindowHeight)
	if h <= 1 {
		h = 600
	}
	return fyne.NewSize(w, h)
}

func (m *MainWindow) setInitialSize() {
	m.Window.Resize(m.DesiredSize())
}

func (m *MainWindow) sendNotification(title, content string) {
	if !m.App.Config.Application.ShowNotifications {
		return
	}
	m.notifier(fyne.NewNotification(title, content))
}

func (m *MainWindow) SetupSystemTrayMenu(appName string, fyneApp fyne.App) {
	if desk, ok := fyneApp.(desktop.App); ok {
		m.trayMenu = fyne.NewMenu(appName,
			fyne.NewMenuItem(m.tr("tray_show"), m.Window.Show),
			fyne.NewMenuItem(m.tr("tray_hide"), m.Window.Hide),
			fyne.NewMenuItemSeparator(),
			fyne.NewMenuItem(m.tr("tray_quit"), func() {
				m.Quit()
			}),
		)
		desk.SetSystemTrayMenu(m.trayMenu)
		desk.SetSystemTrayIcon(fyne.NewStaticResource("icon.svg", res.AppIcon))
		m.haveSystemTray = true
	}
}

func (m *MainWindow) HaveSystemTray() bool {
	return m.haveSystemTray
}

func (m *MainWindow) HaveModal() bool {
	return m.haveModal
}

func (m *MainWindow) SetMaster() {
	m.Window.SetMaster()
}

func (m *MainWindow) Show() {
	m.Window.Show()
}

func (m *MainWindow) ShowAndRun() {
	m.Window.ShowAndRun()
}

func (m *MainWindow) Canvas() fyne.Canvas {
	return m.Window.Canvas()
}

func (m *MainWindow) Quit() {
	m.SaveWindowSize()
	m.fyneApp.Quit()
}

func (m *MainWindow) SaveWindowSize() {
	util.SaveWindowSize(m.Window,
		&m.App.Config.Application.WindowWidth,
		&m.App.Config.Application.WindowHeight)
}
