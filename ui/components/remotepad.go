package components

import (
	"atvremote/internal/models"
	"atvremote/ui/layouts"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// RemotePad lays out the power key, the directional cluster, the
// navigation row and the volume rocker.
type RemotePad struct {
	widget.BaseWidget

	// OnPress is called on the UI goroutine for every tapped key.
	OnPress func(models.Action)

	buttons map[models.Action]*widget.Button
	content fyne.CanvasObject
}

func NewRemotePad() *RemotePad {
	p := &RemotePad{buttons: make(map[models.Action]*widget.Button)}
	p.ExtendBaseWidget(p)

	power := p.newButton(models.ActionPower, "⏻", nil)
	power.Importance = widget.DangerImportance

	dpad := container.NewGridWithColumns(3,
		layout.NewSpacer(), p.newButton(models.ActionUp, "", theme.MoveUpIcon()), layout.NewSpacer(),
		p.newButton(models.ActionLeft, "", theme.NavigateBackIcon()),
		p.newButton(models.ActionOK, "OK", nil),
		p.newButton(models.ActionRight, "", theme.NavigateNextIcon()),
		layout.NewSpacer(), p.newButton(models.ActionDown, "", theme.MoveDownIcon()), layout.NewSpacer(),
	)
	p.buttons[models.ActionOK].Importance = widget.HighImportance

	nav := container.NewGridWithColumns(3,
		p.newButton(models.ActionApps, "", theme.GridIcon()),
		p.newButton(models.ActionBack, "", theme.ContentUndoIcon()),
		p.newButton(models.ActionHome, "", theme.HomeIcon()),
	)

	volume := container.NewVBox(
		p.newButton(models.ActionVolumeUp, "", theme.VolumeUpIcon()),
		p.newButton(models.ActionVolumeDown, "", theme.VolumeDownIcon()),
	)

	p.content = container.NewVBox(
		container.NewCenter(power),
		container.New(&layouts.MarginLayout{MarginTop: 8, MarginBottom: 8}, dpad),
		nav,
		container.New(&layouts.MarginLayout{MarginTop: 8}, container.NewCenter(volume)),
	)
	return p
}

func (p *RemotePad) newButton(action models.Action, label string, icon fyne.Resource) *widget.Button {
	b := widget.NewButtonWithIcon(label, icon, func() {
		if p.OnPress != nil {
			p.OnPress(action)
		}
	})
	p.buttons[action] = b
	return b
}

// Button returns the button bound to action, or nil.
func (p *RemotePad) Button(action models.Action) *widget.Button {
	return p.buttons[action]
}

func (p *RemotePad) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.content)
}
