package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/image-searcher/internal/activity"
	"github.com/ytget/image-searcher/internal/model"
)

// LogView renders the activity log and keeps the newest line in view
type LogView struct {
	list    *widget.List
	entries []model.LogEntry
}

// NewLogView creates a view showing the entries already in log and following new ones
func NewLogView(log *activity.Log) *LogView {
	lv := &LogView{}
	lv.list = widget.NewList(
		func() int {
			return len(lv.entries)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(lv.entries) {
				return
			}
			obj.(*widget.Label).SetText(lv.entries[id].Text)
		},
	)

	if log != nil {
		log.Subscribe(func(entry model.LogEntry) {
			fyne.Do(func() { lv.Append(entry) })
		})
		lv.entries = log.Entries()
	}
	return lv
}

// Container returns the list widget
func (lv *LogView) Container() fyne.CanvasObject {
	return lv.list
}

// Append shows one more entry and scrolls to it. Must be called on the Fyne goroutine.
func (lv *LogView) Append(entry model.LogEntry) {
	// Entries already loaded from the snapshot are not repeated
	if n := len(lv.entries); n > 0 && entry.Seq <= lv.entries[n-1].Seq {
		return
	}
	lv.entries = append(lv.entries, entry)
	lv.list.Refresh()
	lv.list.ScrollToBottom()
}

// Lines returns the displayed lines
func (lv *LogView) Lines() []string {
	lines := make([]string, len(lv.entries))
	for i, entry := range lv.entries {
		lines[i] = entry.Text
	}
	return lines
}
