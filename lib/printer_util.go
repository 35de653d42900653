package lib

import (
	"github.com/fatih/color"
)

var (
	// GreenBold is a convenient color helper
	GreenBold = color.New(color.FgGreen, color.Bold).SprintfFunc()
	// RedBold is a convenient color helper
	RedBold = color.New(color.FgRed, color.Bold).SprintfFunc()
)
