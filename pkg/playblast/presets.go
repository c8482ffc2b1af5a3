// Package playblast provides the configuration model for viewport
// captures: preset tables, validated settings, and the helpers that
// resolve presets and path tokens against live host state.
package playblast

import (
	"fmt"

	"github.com/user/playblast/pkg/ports"
)

// Defaults applied by NewSettings and at capture time.
const (
	DefaultResolutionPreset = "Render"
	DefaultFrameRangePreset = "Render"
	DefaultContainer        = "mp4"
	DefaultEncoder          = "h264"
	DefaultH264Quality      = "High"
	DefaultH264Preset       = "fast"
	DefaultImageQuality     = 100
	DefaultPadding          = 4
	DefaultVisibilityPreset = "Viewport"
)

// ImageContainer is the pseudo container for direct image-sequence
// output; it is the only container that skips the external encoder.
const ImageContainer = "Image"

// resolutionLookup maps fixed resolution presets to pixel sizes. The
// "Render" preset is absent because it resolves against render settings.
var resolutionLookup = map[string][2]int{
	"HD 1080": {1920, 1080},
	"HD 720":  {1280, 720},
	"HD 540":  {960, 540},
}

// ResolutionPresets lists the accepted resolution preset names.
var ResolutionPresets = []string{"Render", "HD 1080", "HD 720", "HD 540"}

// FrameRangePresets lists the accepted frame-range preset names.
var FrameRangePresets = []string{"Render", "Playback", "Animation"}

// ContainerEncoders maps each container format to its compatible
// encoders.
var ContainerEncoders = map[string][]string{
	"mov":          {"h264"},
	"mp4":          {"h264"},
	ImageContainer: {"jpg", "png", "tif"},
}

// H264Qualities maps named quality levels to x264 CRF values.
var H264Qualities = map[string]int{
	"Very high": 18,
	"High":      20,
	"Medium":    23,
	"Low":       26,
}

// H264Presets lists the accepted x264 speed presets.
var H264Presets = []string{
	"veryslow",
	"slow",
	"medium",
	"fast",
	"faster",
	"ultrafast",
}

// PresetToResolution resolves a resolution preset against live host
// state. "Render" queries the render settings; the fixed HD presets
// return their table values.
func PresetToResolution(host ports.Host, preset string) (int, int, error) {
	if preset == "Render" {
		width, height, err := host.RenderResolution()
		if err != nil {
			return 0, 0, fmt.Errorf("query render resolution: %w", err)
		}
		return width, height, nil
	}
	if wh, ok := resolutionLookup[preset]; ok {
		return wh[0], wh[1], nil
	}
	return 0, 0, fmt.Errorf("invalid resolution preset: %s", preset)
}

// PresetToFrameRange resolves a frame-range preset against live host
// state.
func PresetToFrameRange(host ports.Host, preset string) (int, int, error) {
	var (
		start, end int
		err        error
	)
	switch preset {
	case "Render":
		start, end, err = host.RenderFrameRange()
	case "Playback":
		start, end, err = host.PlaybackFrameRange()
	case "Animation":
		start, end, err = host.AnimationFrameRange()
	default:
		return 0, 0, fmt.Errorf("invalid frame range preset: %s", preset)
	}
	if err != nil {
		return 0, 0, fmt.Errorf("query %s frame range: %w", preset, err)
	}
	return start, end, nil
}

func isResolutionPreset(name string) bool {
	_, ok := resolutionLookup[name]
	return ok || name == "Render"
}

func isFrameRangePreset(name string) bool {
	for _, preset := range FrameRangePresets {
		if preset == name {
			return true
		}
	}
	return false
}
