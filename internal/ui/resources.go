package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "refview.png"
)

// LoadLogoResource loads the logo from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
