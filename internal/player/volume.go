package player

import (
	"math"

	"github.com/gopxl/beep/v2/speaker"
)

// SetVolume sets the volume level (0 to 100).
// The level survives track changes; it is reapplied on every Play.
func (p *Player) SetVolume(level int) {
	if level < 0 {
		level = 0
	}
	if level > 100 {
		level = 100
	}

	p.volumeLevel = level

	if p.volume != nil {
		speaker.Lock()
		p.volume.Volume = levelToVolume(level)
		p.volume.Silent = level == 0
		speaker.Unlock()
	}
}

// Volume returns the current volume level (0 to 100).
func (p *Player) Volume() int {
	return p.volumeLevel
}

// levelToVolume converts a 0-100 level to beep's logarithmic Volume value.
// beep uses base-2 "decibels": 0 means unchanged, -1 half volume, -2 quarter.
func levelToVolume(level int) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 100 {
		return 0
	}
	return math.Log2(float64(level) / 100)
}
