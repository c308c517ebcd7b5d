package ui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/image-searcher/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	endpointEntry  *widget.Entry
	limitEntry     *widget.Entry
	columnsEntry   *widget.Entry
	thumbSizeEntry *widget.Entry
	timeoutEntry   *widget.Entry
	rateEntry      *widget.Entry
	saveDirEntry   *widget.Entry
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog builds and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.endpointEntry = widget.NewEntry()
	sd.endpointEntry.SetPlaceHolder(config.DefaultSearchEndpoint)

	sd.limitEntry = widget.NewEntry()
	sd.limitEntry.SetPlaceHolder(rangeHint(config.MinResultLimit, config.MaxResultLimit))

	sd.columnsEntry = widget.NewEntry()
	sd.columnsEntry.SetPlaceHolder(rangeHint(config.MinGridColumns, config.MaxGridColumns))

	sd.thumbSizeEntry = widget.NewEntry()
	sd.thumbSizeEntry.SetPlaceHolder(rangeHint(config.MinThumbnailSize, config.MaxThumbnailSize))

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(rangeHint(config.MinTimeoutSeconds, config.MaxTimeoutSeconds))

	sd.rateEntry = widget.NewEntry()
	sd.rateEntry.SetPlaceHolder("0")

	sd.saveDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(IconFolder+" "+text(KeyBrowse), sd.onBrowseDirectory)
	saveDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.saveDirEntry)

	languageOptions := make([]string, 0, len(sd.settings.GetLanguageOptions()))
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeySearchSettings)),
		widget.NewSeparator(),

		widget.NewLabel(text(KeySearchEndpoint)+":"),
		sd.endpointEntry,

		widget.NewLabel(text(KeyResultLimit)+":"),
		sd.limitEntry,

		widget.NewLabel(text(KeyRequestTimeout)+":"),
		sd.timeoutEntry,

		widget.NewLabel(text(KeyFetchRate)+":"),
		sd.rateEntry,

		widget.NewSeparator(),
		widget.NewLabel(text(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyGridColumns)+":"),
		sd.columnsEntry,

		widget.NewLabel(text(KeyThumbnailSize)+":"),
		sd.thumbSizeEntry,

		widget.NewLabel(text(KeySaveDirectory)+":"),
		saveDirRow,

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.endpointEntry.SetText(sd.settings.GetSearchEndpoint())
	sd.limitEntry.SetText(strconv.Itoa(sd.settings.GetResultLimit()))
	sd.columnsEntry.SetText(strconv.Itoa(sd.settings.GetGridColumns()))
	sd.thumbSizeEntry.SetText(strconv.Itoa(sd.settings.GetThumbnailSize()))
	sd.timeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetRequestTimeout().Seconds())))
	sd.rateEntry.SetText(strconv.FormatFloat(sd.settings.GetFetchRate(), 'f', -1, 64))
	sd.saveDirEntry.SetText(sd.settings.GetSaveDirectory())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.saveDirEntry.SetText(uri.Path())
	}, sd.window)
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	if err := sd.apply(); err != nil {
		dialog.ShowError(err, sd.window)
		return
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply writes the form into settings. Unparsable numbers keep their previous
// value. An invalid endpoint rejects the whole form.
func (sd *SettingsDialog) apply() error {
	endpoint := strings.TrimSpace(sd.endpointEntry.Text)
	if endpoint != "" {
		if err := config.ValidateEndpoint(endpoint); err != nil {
			return fmt.Errorf("%s: %w", sd.localization.GetText(KeySearchEndpoint), err)
		}
		sd.settings.SetSearchEndpoint(endpoint)
	}
	if n, ok := parseInt(sd.limitEntry.Text); ok {
		sd.settings.SetResultLimit(n)
	}
	if n, ok := parseInt(sd.columnsEntry.Text); ok {
		sd.settings.SetGridColumns(n)
	}
	if n, ok := parseInt(sd.thumbSizeEntry.Text); ok {
		sd.settings.SetThumbnailSize(n)
	}
	if n, ok := parseInt(sd.timeoutEntry.Text); ok {
		sd.settings.SetRequestTimeoutSeconds(n)
	}
	if rate, err := strconv.ParseFloat(strings.TrimSpace(sd.rateEntry.Text), 64); err == nil {
		sd.settings.SetFetchRate(rate)
	}
	if dir := strings.TrimSpace(sd.saveDirEntry.Text); dir != "" {
		sd.settings.SetSaveDirectory(dir)
	}
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
	return nil
}

func parseInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil
}

func rangeHint(lo, hi int) string {
	return strconv.Itoa(lo) + "-" + strconv.Itoa(hi)
}
