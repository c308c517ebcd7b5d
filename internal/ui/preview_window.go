package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/ytget/image-searcher/internal/model"
)

// ImageSaver stores previews on disk
type ImageSaver interface {
	Save(preview *model.Preview, dir string) (string, error)
	Reveal(path string) error
}

// PreviewSurface opens every preview in a new window
type PreviewSurface struct {
	app          fyne.App
	parent       fyne.Window
	localization *Localization
	saveDir      func() string
	saver        ImageSaver
	logger       logrus.FieldLogger
}

// NewPreviewSurface creates a surface whose windows belong to app and whose
// dialogs without a preview window attach to parent
func NewPreviewSurface(app fyne.App, parent fyne.Window, localization *Localization, saveDir func() string, logger logrus.FieldLogger) *PreviewSurface {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &PreviewSurface{
		app:          app,
		parent:       parent,
		localization: localization,
		saveDir:      saveDir,
		logger:       logger,
	}
}

// SetSaver enables the Save button of preview windows
func (ps *PreviewSurface) SetSaver(saver ImageSaver) {
	ps.saver = saver
}

// ShowPreview opens a new window with the full-size image
func (ps *PreviewSurface) ShowPreview(preview *model.Preview) {
	fyne.Do(func() {
		ps.openWindow(preview)
	})
}

// ShowError shows an error dialog over the main window
func (ps *PreviewSurface) ShowError(title, message string) {
	fyne.Do(func() {
		dialog.ShowError(errors.New(message), ps.parent)
	})
}

func (ps *PreviewSurface) openWindow(preview *model.Preview) fyne.Window {
	win := ps.app.NewWindow(ps.localization.GetText(KeyFullImage))

	img := canvas.NewImageFromImage(preview.Image)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleSmooth

	saveBtn := widget.NewButton(IconSave+" "+ps.localization.GetText(KeySave), func() {
		ps.save(preview, win)
	})
	if ps.saver == nil || len(preview.Data) == 0 {
		saveBtn.Disable()
	}

	toolbar := container.NewHBox(saveBtn)
	win.SetContent(container.NewBorder(nil, toolbar, nil, nil, img))
	win.Resize(previewWindowSize(preview))
	win.Show()
	return win
}

func (ps *PreviewSurface) save(preview *model.Preview, win fyne.Window) {
	dir := ""
	if ps.saveDir != nil {
		dir = ps.saveDir()
	}

	go func() {
		path, err := ps.saver.Save(preview, dir)
		fyne.Do(func() {
			if err != nil {
				dialog.ShowError(err, win)
				return
			}
			confirm := dialog.NewConfirm(ps.localization.GetText(KeyImageSaved), path, func(reveal bool) {
				if !reveal {
					return
				}
				if err := ps.saver.Reveal(path); err != nil {
					ps.logger.WithError(err).Warn("cannot reveal saved image")
					dialog.ShowError(err, win)
				}
			}, win)
			confirm.SetConfirmText(ps.localization.GetText(KeyShowInFolder))
			confirm.Show()
		})
	}()
}

// previewWindowSize fits the image into the preview bounds without upscaling
func previewWindowSize(preview *model.Preview) fyne.Size {
	if preview == nil || preview.Image == nil {
		return fyne.NewSize(PreviewMinWidth, PreviewMinHeight)
	}
	bounds := preview.Image.Bounds()
	w, h := float32(bounds.Dx()), float32(bounds.Dy())
	if w <= 0 || h <= 0 {
		return fyne.NewSize(PreviewMinWidth, PreviewMinHeight)
	}

	scale := float32(1)
	if w > PreviewMaxWidth {
		scale = PreviewMaxWidth / w
	}
	if h*scale > PreviewMaxHeight {
		scale = PreviewMaxHeight / h
	}
	w, h = w*scale, h*scale

	return fyne.NewSize(max(w, PreviewMinWidth), max(h, PreviewMinHeight))
}
