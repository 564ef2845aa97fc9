package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/refview/refview/internal/config"
	"github.com/refview/refview/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID(config.AppID)
	myWindow := myApp.NewWindow(config.AppName)
	myWindow.Resize(fyne.NewSize(config.DefaultWindowWidth, config.DefaultWindowHeight))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp)

	// Show and run
	myWindow.ShowAndRun()
}
