// Package ui contains the Fyne desktop interface: the search bar, the result
// grid, the activity log panel, preview windows and the settings dialog.
// Widget state is only touched on the Fyne goroutine; core callbacks arrive
// from worker goroutines and are marshalled with fyne.Do.
package ui
