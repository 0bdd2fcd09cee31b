package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
)

// RunApp shows the board in a window and blocks until it is closed. The
// board's outputs are written when the window closes.
func RunApp(board *BoardWidget) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Local Paint")

	w, h := board.raster.Size()
	myWindow.Resize(fyne.NewSize(float32(w), float32(h)+80))

	toolbar := NewToolbar(board)
	content := container.NewBorder(toolbar, board.StatusBar(), nil, nil, board)
	myWindow.SetContent(content)

	myWindow.SetOnClosed(func() {
		if err := board.Close(); err != nil {
			slog.Error("closing board", slog.Any("error", err))
		}
	})
	myWindow.ShowAndRun()
}
