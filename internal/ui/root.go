package ui

import (
	"context"
	"errors"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/ytget/image-searcher/internal/activity"
	"github.com/ytget/image-searcher/internal/config"
	"github.com/ytget/image-searcher/internal/download"
	"github.com/ytget/image-searcher/internal/model"
	"github.com/ytget/image-searcher/internal/platform"
	"github.com/ytget/image-searcher/internal/preview"
	"github.com/ytget/image-searcher/internal/search"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	logger       logrus.FieldLogger

	fetcher      *download.Client
	searchClient *platform.SearchClient
	activity     *activity.Log
	controller   *search.Controller
	launcher     *preview.Launcher
	surface      *PreviewSurface

	searchEntry *widget.Entry
	searchBtn   *widget.Button
	grid        *ResultGrid
	logView     *LogView
	logTitle    *widget.Label

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite

	// Latest submission issued from the search bar; touched on the Fyne goroutine only
	searchSeq uint64
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, activityLog *activity.Log, fetcher *download.Client, searchClient *platform.SearchClient, logger logrus.FieldLogger) *RootUI {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		logger:       logger,
		fetcher:      fetcher,
		searchClient: searchClient,
		activity:     activityLog,
	}

	ui.grid = NewResultGrid(settings.GetGridColumns(), ui.onTileActivated)
	ui.logView = NewLogView(activityLog)

	ui.controller = search.NewController(searchClient, fetcher, ui, activityLog, settings, logger)

	ui.surface = NewPreviewSurface(app, window, localization, settings.GetSaveDirectory, logger)
	ui.launcher = preview.NewLauncher(fetcher, ui.surface, activityLog, settings, logger)
	ui.surface.SetSaver(ui.launcher)

	ui.applySettings()

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetOnClosed(ui.controller.Cancel)

	ui.setupUI()
	logger.Debug("root UI initialized")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterQuery))
	ui.searchEntry.OnSubmitted = func(string) {
		ui.onSearch()
	}

	ui.searchBtn = widget.NewButton(ui.localization.GetText(KeySearch), ui.onSearch)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil, settingsBtn, ui.searchBtn, ui.searchEntry)

	// Hidden until a search is running
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Truncation = fyne.TextTruncateEllipsis
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewBorder(nil, nil, nil, ui.notificationSpinner, ui.notificationLabel)
	ui.notificationContainer.Hide()

	topCombined := container.NewVBox(topPanel, ui.notificationContainer)

	ui.logTitle = widget.NewLabelWithStyle(ui.localization.GetText(KeyActivity), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	logPanel := container.NewBorder(ui.logTitle, nil, nil, nil, ui.logView.Container())

	split := container.NewHSplit(ui.grid.Container(), logPanel)
	split.Offset = LogPanelOffset

	ui.window.SetContent(container.NewBorder(topCombined, nil, nil, nil, split))
	ui.window.Canvas().Focus(ui.searchEntry)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterQuery))
	ui.searchBtn.SetText(ui.localization.GetText(KeySearch))
	ui.logTitle.SetText(ui.localization.GetText(KeyActivity))
}

// onSearch submits the entry text. The search runs off the UI goroutine and
// supersedes any search still in flight.
func (ui *RootUI) onSearch() {
	raw := ui.searchEntry.Text

	ui.searchSeq++
	seq := ui.searchSeq
	if strings.TrimSpace(raw) != "" {
		ui.showNotification(ui.localization.GetText(KeySearching)+" "+strings.TrimSpace(raw), true)
	}

	go func() {
		summary, err := ui.controller.Submit(context.Background(), raw)
		if err != nil {
			ui.logger.WithError(err).Debug("search ended with error")
		} else if summary != nil {
			ui.logger.WithFields(logrus.Fields{
				"search_id": summary.ID,
				"status":    summary.Status.String(),
			}).Debug("search returned")
		}

		fyne.Do(func() {
			if seq == ui.searchSeq {
				ui.hideNotification()
			}
		})
	}()
}

func (ui *RootUI) onTileActivated(href string) {
	go func() {
		_ = ui.launcher.Open(context.Background(), href)
	}()
}

// ShowWarning implements search.Presenter
func (ui *RootUI) ShowWarning(title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, message, ui.window)
	})
}

// ShowError implements search.Presenter
func (ui *RootUI) ShowError(title, message string) {
	fyne.Do(func() {
		dialog.ShowError(errors.New(message), ui.window)
	})
}

// ClearResults implements search.Presenter
func (ui *RootUI) ClearResults(columns, thumbnailSize int) {
	fyne.Do(func() {
		ui.grid.Reset(columns, thumbnailSize)
	})
}

// AddTile implements search.Presenter
func (ui *RootUI) AddTile(tile *model.Tile) {
	fyne.Do(func() {
		ui.grid.Add(tile)
	})
}

// showNotification displays a message under the search bar.
// Must be called on the Fyne goroutine.
func (ui *RootUI) showNotification(message string, spinning bool) {
	ui.notificationLabel.SetText(message)
	if spinning {
		ui.notificationSpinner.Show()
		ui.notificationSpinner.Start()
	} else {
		ui.notificationSpinner.Stop()
		ui.notificationSpinner.Hide()
	}
	ui.notificationContainer.Show()
}

func (ui *RootUI) hideNotification() {
	ui.notificationSpinner.Stop()
	ui.notificationSpinner.Hide()
	ui.notificationContainer.Hide()
}

func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.applySettings()
		if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
			ui.onLanguageChange(lang)
		}
	})
}

// applySettings pushes the validated settings snapshot into the clients.
// Invalid settings fall back to the defaults and are only logged. Grid
// columns and tile size change with the next search.
func (ui *RootUI) applySettings() {
	cfg, err := ui.settings.SearchConfig()
	if err != nil {
		ui.logger.WithError(err).Warn("invalid settings, using defaults")
	}

	ui.fetcher.SetTimeout(cfg.RequestTimeout)
	ui.fetcher.SetRateLimit(cfg.FetchRate)
	ui.searchClient.SetEndpoint(cfg.Endpoint)

	if err := platform.CreateDirectoryIfNotExists(ui.settings.GetSaveDirectory()); err != nil {
		ui.logger.WithError(err).Warn("cannot create save directory")
	}
}

// Controller returns the search controller driving this window
func (ui *RootUI) Controller() *search.Controller {
	return ui.controller
}

// Grid returns the result grid
func (ui *RootUI) Grid() *ResultGrid {
	return ui.grid
}
