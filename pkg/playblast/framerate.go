package playblast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/user/playblast/pkg/ports"
)

// timeUnitRates maps the host's named time units to frames per second.
var timeUnitRates = map[string]float64{
	"game":  15,
	"film":  24,
	"pal":   25,
	"ntsc":  30,
	"show":  48,
	"palf":  50,
	"ntscf": 60,
}

// FrameRateForUnit converts a host time unit to frames per second. A
// literal "<number>fps" unit is parsed directly. An unrecognized unit is
// a fatal configuration error for the invocation.
func FrameRateForUnit(unit string) (float64, error) {
	if rate, ok := timeUnitRates[unit]; ok {
		return rate, nil
	}
	if strings.HasSuffix(unit, "fps") {
		rate, err := strconv.ParseFloat(strings.TrimSuffix(unit, "fps"), 64)
		if err == nil && rate > 0 {
			return rate, nil
		}
	}
	return 0, fmt.Errorf("unsupported frame rate unit: %s", unit)
}

// FrameRate queries the host's current time unit and converts it to
// frames per second.
func FrameRate(host ports.Host) (float64, error) {
	unit, err := host.TimeUnit()
	if err != nil {
		return 0, fmt.Errorf("query time unit: %w", err)
	}
	return FrameRateForUnit(unit)
}

// AudioOffsetSec computes the encoder seek offset for muxing scene audio:
// the capture's start frame relative to the audio's frame offset,
// expressed in seconds.
func AudioOffsetSec(startFrame int, audioFrameOffset, frameRate float64) float64 {
	return (float64(startFrame) - audioFrameOffset) / frameRate
}
