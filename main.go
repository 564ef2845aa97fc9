package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/refview/refview/internal/config"
	"github.com/refview/refview/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", config.AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(config.AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(config.AppName)
	myWindow.Resize(fyne.NewSize(config.DefaultWindowWidth, config.DefaultWindowHeight))

	// Set window icon if the logo is available next to the binary
	if logo, err := ui.LoadLogoResource(); err == nil {
		myWindow.SetIcon(logo)
	}

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp)

	// Show and run
	myWindow.ShowAndRun()
}
