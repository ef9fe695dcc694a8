package dialogs

import (
	"fmt"

	"atvremote/res"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// NewAboutDialog builds the about box. version falls back to the app
// metadata when empty.
func NewAboutDialog(app fyne.App, window fyne.Window, title, version, dataDir string) dialog.Dialog {
	logo := canvas.NewImageFromResource(fyne.NewStaticResource("icon.svg", res.AppIcon))
	logo.FillMode = canvas.ImageFillContain
	logo.SetMinSize(fyne.NewSize(96, 96))
	logoRow := container.NewCenter(logo)

	infoRow := widget.NewRichTextFromMarkdown(`
## ` + res.DisplayName + `
---
Control an Android TV from the desktop over ADB. Connect to the TV's IP in the settings, then use the pad or type text to send it.

---`)

	if version == "" {
		version = app.Metadata().Version
	}
	if version == "" {
		version = "selfcrafted"
	}
	versionLine := "Version: " + version

	var buildLine string
	if buildFor := app.Metadata().Custom["BuildForOS"]; buildFor != "" {
		buildLine = fmt.Sprintf("Build for: %s ", buildFor)
	}
	if goVersion := app.Metadata().Custom["GoVersion"]; goVersion != "" {
		buildLine = buildLine + fmt.Sprintf(" | Go version: %s ", goVersion)
	}

	tecRow := widget.NewRichTextFromMarkdown(versionLine + `

` + buildLine)

	dataRow := widget.NewLabel(dataDir)
	dataRow.Wrapping = fyne.TextWrapBreak
	dataRow.Importance = widget.LowImportance

	noteRow := widget.NewRichTextFromMarkdown(`
---
*Created using* [Fyne](https://fyne.io) *GUI library*.`)

	return dialog.NewCustom(title, "Ok", container.NewVBox(logoRow, infoRow, tecRow, dataRow, noteRow), window)
}
