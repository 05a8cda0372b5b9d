package config

import "time"

const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Color Dancing - Space: next orbit, C: restart orbit, Esc/Q: quit"

	// Orbit parameters
	MaxDistance    = 600
	MinRadius      = 10
	MaxRadius      = 40 // exclusive
	MinSweepFrames = 80
	MaxSweepFrames = 250 // exclusive
	RingStepFactor = 0.5
	StartFactor    = 2

	// Drawing
	BackgroundGray = 0.25
	StrokeWidth    = 1

	// Chime played when a new orbit starts
	ChimeSampleRate = 44100
	ChimeBuffer     = time.Second / 20
	ChimeDuration   = 400 * time.Millisecond
	ChimeBaseHz     = 220.0
	ChimeGain       = 0.2
)
