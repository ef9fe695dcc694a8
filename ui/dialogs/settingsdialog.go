package dialogs

import (
	"strconv"

	"atvremote/backend"
	"atvremote/internal/i18n"
	"atvremote/ui/components"
	"atvremote/ui/util"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	tabGeneral = "General"
	tabLog     = "Log"
)

// SettingsDialog manages device connections, the UI language and the
// application preferences.
type SettingsDialog struct {
	widget.BaseWidget

	OnDismiss         func()
	OnConnect         func(addr string)
	OnDisconnect      func()
	OnLanguageChanged func(lang string)
	OnShowAbout       func()

	config    *backend.Config
	tr        *i18n.Translator
	addresses []string

	statusLabel   *widget.Label
	ipEntry       *widget.Entry
	connectBtn    *widget.Button
	disconnectBtn *widget.Button
	historyLabel  *widget.Label
	historyList   *widget.List
	languageLabel *widget.Label
	languageSel   *widget.Select
	bridgeLabel   *widget.Label
	bridgeBadge   *components.BridgeBadge
	bridgePath    *widget.Label
	trayEnable    *widget.Check
	closeToTray   *widget.Check
	notifications *widget.Check
	pollLabel     *widget.Label
	pollSelect    *widget.Select
	aboutBtn      *widget.Button
	closeBtn      *widget.Button
	promptText    *widget.RichText
	restartNeeded bool

	tabs       *container.AppTabs
	generalTab *container.TabItem
	logTab     *container.TabItem

	content fyne.CanvasObject
}

func NewSettingsDialog(
	config *backend.Config,
	tr *i18n.Translator,
	addresses []string,
	logs *components.LogHandler,
) *SettingsDialog {
	s := &SettingsDialog{config: config, tr: tr, addresses: addresses}
	s.ExtendBaseWidget(s)

	s.generalTab = s.createGeneralTab()
	s.logTab = container.NewTabItem(tr.T("log"), logs.GetContainer())
	s.tabs = container.NewAppTabs(s.generalTab, s.logTab)
	s.tabs.SelectIndex(s.getActiveTabNumFromConfig())
	s.tabs.OnSelected = func(*container.TabItem) {
		s.saveSelectedTab(s.tabs.SelectedIndex())
	}

	s.promptText = widget.NewRichTextWithText("")
	s.aboutBtn = widget.NewButtonWithIcon(tr.T("about"), theme.InfoIcon(), func() {
		if s.OnShowAbout != nil {
			s.OnShowAbout()
		}
	})
	s.closeBtn = widget.NewButton(tr.T("close_settings"), func() {
		if s.OnDismiss != nil {
			s.OnDismiss()
		}
	})
	s.content = container.NewBorder(nil,
		container.NewVBox(widget.NewSeparator(),
			container.NewHBox(s.aboutBtn, s.promptText, layout.NewSpacer(), s.closeBtn)),
		nil, nil, s.tabs)

	return s
}

func (s *SettingsDialog) createGeneralTab() *container.TabItem {
	s.statusLabel = widget.NewLabel(s.tr.T("status_disconnected"))
	s.statusLabel.Importance = widget.LowImportance

	s.ipEntry = widget.NewEntry()
	s.ipEntry.SetPlaceHolder(s.tr.T("connect_to_ip"))
	s.ipEntry.OnSubmitted = s.connect

	s.connectBtn = widget.NewButton(s.tr.T("connect"), func() {
		s.connect(s.ipEntry.Text)
	})
	s.connectBtn.Importance = widget.HighImportance
	s.disconnectBtn = widget.NewButton(s.tr.T("disconnect_device"), func() {
		if s.OnDisconnect != nil {
			s.OnDisconnect()
		}
	})

	s.historyLabel = widget.NewLabel(s.tr.T("previous_connections"))
	s.historyList = widget.NewList(
		func() int {
			if len(s.addresses) == 0 {
				return 1 // placeholder row
			}
			return len(s.addresses)
		},
		func() fyne.CanvasObject {
			return util.NewTruncatingLabel()
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			if len(s.addresses) == 0 {
				label.Importance = widget.LowImportance
				label.SetText(s.tr.T("no_previous_connections"))
				return
			}
			label.Importance = widget.MediumImportance
			label.SetText(s.addresses[id])
		},
	)
	s.historyList.OnSelected = func(id widget.ListItemID) {
		s.historyList.UnselectAll()
		if id < 0 || id >= len(s.addresses) {
			return
		}
		addr := s.addresses[id]
		s.ipEntry.SetText(addr)
		s.connect(addr)
	}

	s.languageLabel = widget.NewLabel(s.tr.T("language"))
	s.languageSel = widget.NewSelect(s.tr.Languages(), nil)
	s.languageSel.SetSelectedIndex(s.tr.SelectedIndex())
	s.languageSel.OnChanged = func(lang string) {
		if s.OnLanguageChanged != nil {
			s.OnLanguageChanged(lang)
		}
	}

	s.bridgeLabel = widget.NewLabel(s.tr.T("bridge"))
	s.bridgeBadge = components.NewBridgeBadge()
	s.bridgePath = util.NewTruncatingLabel()
	s.bridgePath.Importance = widget.LowImportance

	s.closeToTray = widget.NewCheckWithData(s.tr.T("close_to_tray"),
		binding.BindBool(&s.config.Application.CloseToSystemTray))
	if !s.config.Application.EnableSystemTray {
		s.closeToTray.Disable()
	}
	s.trayEnable = widget.NewCheck(s.tr.T("enable_system_tray"), func(val bool) {
		s.config.Application.EnableSystemTray = val
		// Fyne cannot remove a tray menu once installed.
		s.setRestartRequired()
		if val {
			s.closeToTray.Enable()
		} else {
			s.closeToTray.Disable()
		}
	})
	s.trayEnable.Checked = s.config.Application.EnableSystemTray
	s.notifications = widget.NewCheckWithData(s.tr.T("show_notifications"),
		binding.BindBool(&s.config.Application.ShowNotifications))

	s.pollLabel = widget.NewLabel(s.tr.T("poll_interval"))
	s.pollSelect = widget.NewSelect([]string{"1", "2", "3", "5", "10", "30"}, nil)
	s.pollSelect.SetSelected(strconv.Itoa(s.config.Application.PollIntervalSeconds))
	s.pollSelect.OnChanged = func(v string) {
		if n, err := strconv.Atoi(v); err == nil {
			s.config.Application.PollIntervalSeconds = n
			s.setRestartRequired()
		}
	}

	history := container.NewBorder(s.historyLabel, nil, nil, nil, s.historyList)

	top := container.NewVBox(
		util.NewHSpace(0),
		s.statusLabel,
		s.ipEntry,
		container.NewGridWithColumns(2, s.connectBtn, s.disconnectBtn),
	)
	bottom := container.NewVBox(
		s.newSectionSeparator(),
		container.NewBorder(nil, nil, s.languageLabel, nil, s.languageSel),
		container.NewBorder(nil, nil, s.bridgeLabel, s.bridgeBadge.Container, s.bridgePath),
		s.trayEnable,
		s.closeToTray,
		s.notifications,
		container.NewBorder(nil, nil, s.pollLabel, nil, s.pollSelect),
	)

	return container.NewTabItem(s.tr.T("general"), container.NewBorder(top, bottom, nil, nil, history))
}

func (s *SettingsDialog) connect(addr string) {
	if s.OnConnect != nil {
		s.OnConnect(addr)
	}
}

// SetStatus mirrors the main window status line.
func (s *SettingsDialog) SetStatus(text string, connected bool) {
	s.statusLabel.SetText(text)
	if connected {
		s.statusLabel.Importance = widget.SuccessImportance
	} else {
		s.statusLabel.Importance = widget.LowImportance
	}
	s.statusLabel.Refresh()
}

func (s *SettingsDialog) SetAddresses(addresses []string) {
	s.addresses = addresses
	s.historyList.Refresh()
}

func (s *SettingsDialog) SetBridge(path string, state components.BridgeState) {
	s.bridgePath.SetText(path)
	var key string
	switch state {
	case components.BridgeServerRunning:
		key = "bridge_server_running"
	case components.BridgeServerStopped:
		key = "bridge_server_stopped"
	default:
		key = "bridge_missing"
	}
	s.bridgeBadge.SetState(state, s.tr.T(key))
}

// Relabel reapplies every caption from the active language.
func (s *SettingsDialog) Relabel() {
	s.generalTab.Text = s.tr.T("general")
	s.logTab.Text = s.tr.T("log")
	s.tabs.Refresh()

	s.ipEntry.SetPlaceHolder(s.tr.T("connect_to_ip"))
	s.connectBtn.SetText(s.tr.T("connect"))
	s.disconnectBtn.SetText(s.tr.T("disconnect_device"))
	s.historyLabel.SetText(s.tr.T("previous_connections"))
	s.historyList.Refresh()
	s.languageLabel.SetText(s.tr.T("language"))
	s.bridgeLabel.SetText(s.tr.T("bridge"))
	s.SetBridge(s.bridgePath.Text, s.bridgeBadge.State())
	s.trayEnable.SetText(s.tr.T("enable_system_tray"))
	s.closeToTray.SetText(s.tr.T("close_to_tray"))
	s.notifications.SetText(s.tr.T("show_notifications"))
	s.pollLabel.SetText(s.tr.T("poll_interval"))
	s.aboutBtn.SetText(s.tr.T("about"))
	s.closeBtn.SetText(s.tr.T("close_settings"))
	if s.restartNeeded {
		s.promptText.Segments[0].(*widget.TextSegment).Text = s.tr.T("restart_required")
		s.promptText.Refresh()
	}
}

func (s *SettingsDialog) setRestartRequired() {
	if s.restartNeeded {
		return
	}
	s.restartNeeded = true
	ts := s.promptText.Segments[0].(*widget.TextSegment)
	ts.Text = s.tr.T("restart_required")
	ts.Style.ColorName = theme.ColorNameError
	s.promptText.Refresh()
}

func (s *SettingsDialog) newSectionSeparator() fyne.CanvasObject {
	return container.New(&layout.CustomPaddedLayout{LeftPadding: 15, RightPadding: 15}, widget.NewSeparator())
}

func (s *SettingsDialog) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.content)
}

func (s *SettingsDialog) saveSelectedTab(tabNum int) {
	var tabName string
	switch tabNum {
	case 1:
		tabName = tabLog
	default:
		tabName = tabGeneral
	}
	s.config.Application.SettingsTab = tabName
}

func (s *SettingsDialog) getActiveTabNumFromConfig() int {
	switch s.config.Application.SettingsTab {
	case tabLog:
		return 1
	default:
		return 0
	}
}
