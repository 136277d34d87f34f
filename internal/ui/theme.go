package ui

import "image/color"

var (
	colClear      = color.RGBA{0, 0, 0, 255}
	colBackground = color.RGBA{255, 255, 255, 255}
	colDivider    = color.RGBA{128, 128, 128, 255}

	colNote     = color.RGBA{0, 0, 0, 255}
	colHover    = color.RGBA{0, 255, 0, 255}
	colSelected = color.RGBA{40, 90, 220, 255}
	colBar      = color.RGBA{255, 0, 0, 255}
	colSection  = color.RGBA{255, 200, 0, 255}

	colHUD       = color.RGBA{30, 30, 30, 220}
	colHUDBorder = color.RGBA{240, 240, 240, 255}
	colPlaying   = color.RGBA{40, 200, 40, 255}
	colPaused    = color.RGBA{200, 40, 40, 255}
)
