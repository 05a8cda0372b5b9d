package game

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/0x0caf/color-dancing/internal/orbit"
)

var image3x3Center = image.Rect(1, 1, 2, 2)

// toScreen maps a center-origin, y-up point onto a w x h image.
func toScreen(p orbit.Point, w, h int) (float32, float32) {
	return float32(float64(w)/2 + p.X), float32(float64(h)/2 - p.Y)
}

func visible(c color.Color) bool {
	if c == nil {
		return false
	}
	_, _, _, a := c.RGBA()
	return a != 0
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
