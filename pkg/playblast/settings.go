package playblast

import (
	"fmt"
	"strings"

	"github.com/ideamans/go-l10n"
	"github.com/user/playblast/pkg/ports"
)

// Settings is the capture configuration for one session. Construct it
// with NewSettings and mutate it through the setters; each setter
// validates its input, and on an invalid value it logs an error, keeps
// the prior value, and returns a non-nil error. Errors never panic or
// propagate implicitly, so UI glue can call setters fire-and-forget
// while tests assert on the returned status.
//
// Resolution and frame-range presets are not cached: ResolveResolution
// and ResolveFrameRange query live host state on every call.
type Settings struct {
	logger ports.Logger

	encoderPath string

	camera string

	resolutionPreset string
	width            int
	height           int

	frameRangePreset string
	startFrame       int
	endFrame         int

	container string
	encoder   string

	h264Quality string
	h264Preset  string

	imageQuality int

	visibilityPreset string
	visibilityFlags  []bool
}

// NewSettings creates Settings with the session defaults. The logger
// receives every validation failure; pass a noop logger to silence them.
func NewSettings(logger ports.Logger) *Settings {
	return &Settings{
		logger:           logger,
		resolutionPreset: DefaultResolutionPreset,
		frameRangePreset: DefaultFrameRangePreset,
		container:        DefaultContainer,
		encoder:          DefaultEncoder,
		h264Quality:      DefaultH264Quality,
		h264Preset:       DefaultH264Preset,
		imageQuality:     DefaultImageQuality,
		visibilityPreset: DefaultVisibilityPreset,
	}
}

// SetEncoderPath stores the external encoder executable path verbatim.
// Validity is checked only at capture time.
func (s *Settings) SetEncoderPath(path string) {
	s.encoderPath = path
}

// EncoderPath returns the configured external encoder path.
func (s *Settings) EncoderPath() string {
	return s.encoderPath
}

// SetCamera selects the camera to capture through. An empty name clears
// the selection so the active viewport camera is used. A non-empty name
// must exist in the scene.
func (s *Settings) SetCamera(host ports.Host, name string) error {
	if name == "" {
		s.camera = ""
		return nil
	}

	cameras, err := host.ListCameras()
	if err != nil {
		return s.fail(l10n.F("Failed to list cameras: %s", err))
	}
	for _, camera := range cameras {
		if camera == name {
			s.camera = name
			return nil
		}
	}
	return s.fail(l10n.F("Camera does not exist: %s", name))
}

// Camera returns the configured camera name, or "" when the active
// viewport camera should be used.
func (s *Settings) Camera() string {
	return s.camera
}

// SetResolution selects a named resolution preset. The preset resolves
// against live host state every time the resolution is read.
func (s *Settings) SetResolution(preset string) error {
	if !isResolutionPreset(preset) {
		return s.fail(l10n.F("Invalid resolution: %s. Expected a [width, height] pair or one of %s",
			preset, strings.Join(ResolutionPresets, ", ")))
	}
	s.resolutionPreset = preset
	s.width = 0
	s.height = 0
	return nil
}

// SetResolutionPixels stores an explicit resolution, bypassing preset
// lookup. Both dimensions must be positive.
func (s *Settings) SetResolutionPixels(width, height int) error {
	if width <= 0 || height <= 0 {
		return s.fail(l10n.F("Invalid resolution: (%d, %d). Values must be greater than zero.", width, height))
	}
	s.resolutionPreset = ""
	s.width = width
	s.height = height
	return nil
}

// ResolveResolution returns the effective capture resolution, resolving
// a configured preset against live host state.
func (s *Settings) ResolveResolution(host ports.Host) (int, int, error) {
	if s.resolutionPreset != "" {
		return PresetToResolution(host, s.resolutionPreset)
	}
	return s.width, s.height, nil
}

// SetFrameRange selects a named frame-range preset, resolved against
// live host state every time the range is read.
func (s *Settings) SetFrameRange(preset string) error {
	if !isFrameRangePreset(preset) {
		return s.fail(l10n.F("Invalid frame range: %s. Expected a (start, end) pair or one of %s",
			preset, strings.Join(FrameRangePresets, ", ")))
	}
	s.frameRangePreset = preset
	s.startFrame = 0
	s.endFrame = 0
	return nil
}

// SetFrameRangeFrames stores an explicit frame range, bypassing preset
// lookup. The start frame must not exceed the end frame.
func (s *Settings) SetFrameRangeFrames(start, end int) error {
	if start > end {
		return s.fail(l10n.F("Invalid frame range: (%d, %d). Start frame must not exceed end frame.", start, end))
	}
	s.frameRangePreset = ""
	s.startFrame = start
	s.endFrame = end
	return nil
}

// ResolveFrameRange returns the effective capture frame range, resolving
// a configured preset against live host state.
func (s *Settings) ResolveFrameRange(host ports.Host) (int, int, error) {
	if s.frameRangePreset != "" {
		return PresetToFrameRange(host, s.frameRangePreset)
	}
	return s.startFrame, s.endFrame, nil
}

// SetEncoding selects the container format and encoder together. Both
// must be valid and compatible per ContainerEncoders, or the prior pair
// is retained.
func (s *Settings) SetEncoding(container, encoder string) error {
	encoders, ok := ContainerEncoders[container]
	if !ok {
		return s.fail(l10n.F("Invalid container: %s. Expected one of %s",
			container, strings.Join(containerNames(), ", ")))
	}
	for _, candidate := range encoders {
		if candidate == encoder {
			s.container = container
			s.encoder = encoder
			return nil
		}
	}
	return s.fail(l10n.F("Invalid encoder: %s. Expected one of %s for container %s",
		encoder, strings.Join(encoders, ", "), container))
}

// Container returns the configured container format.
func (s *Settings) Container() string {
	return s.container
}

// Encoder returns the configured encoder identifier.
func (s *Settings) Encoder() string {
	return s.encoder
}

// RequiresEncoder reports whether the configured container needs the
// external encoder. Only direct image sequences do not.
func (s *Settings) RequiresEncoder() bool {
	return s.container != ImageContainer
}

// SetH264Settings selects the named quality level and x264 speed preset
// used when encoding to h264.
func (s *Settings) SetH264Settings(quality, preset string) error {
	if _, ok := H264Qualities[quality]; !ok {
		return s.fail(l10n.F("Invalid h264 quality: %s. Expected one of %s",
			quality, strings.Join(h264QualityNames(), ", ")))
	}
	if !containsString(H264Presets, preset) {
		return s.fail(l10n.F("Invalid h264 preset: %s. Expected one of %s",
			preset, strings.Join(H264Presets, ", ")))
	}
	s.h264Quality = quality
	s.h264Preset = preset
	return nil
}

// H264Settings returns the configured quality level and speed preset.
func (s *Settings) H264Settings() (quality, preset string) {
	return s.h264Quality, s.h264Preset
}

// H264CRF returns the CRF value for the configured quality level.
func (s *Settings) H264CRF() int {
	return H264Qualities[s.h264Quality]
}

// SetImageSettings sets the image-sequence quality (1-100).
func (s *Settings) SetImageSettings(quality int) error {
	if quality <= 0 || quality > 100 {
		return s.fail(l10n.F("Invalid image quality: %d. Expected a value between 1 and 100", quality))
	}
	s.imageQuality = quality
	return nil
}

// ImageQuality returns the configured image-sequence quality.
func (s *Settings) ImageQuality() int {
	return s.imageQuality
}

// SetVisibilityPreset selects a named viewport-visibility preset applied
// for the duration of a capture.
func (s *Settings) SetVisibilityPreset(preset string) error {
	if !isVisibilityPreset(preset) {
		return s.fail(l10n.F("Invalid visibility preset: %s. Expected one of %s",
			preset, strings.Join(VisibilityPresets, ", ")))
	}
	s.visibilityPreset = preset
	s.visibilityFlags = nil
	return nil
}

// SetVisibilityFlags stores explicit per-element visibility states,
// ordered like ViewportElements.
func (s *Settings) SetVisibilityFlags(flags []bool) error {
	if len(flags) != len(ViewportElements) {
		return s.fail(l10n.F("Invalid visibility flags: got %d values, expected %d",
			len(flags), len(ViewportElements)))
	}
	s.visibilityPreset = ""
	s.visibilityFlags = append([]bool(nil), flags...)
	return nil
}

// VisibilityFlags returns the per-element visibility states to apply
// during a capture, or nil when the viewport's current states should be
// kept.
func (s *Settings) VisibilityFlags() []bool {
	if s.visibilityFlags != nil {
		return append([]bool(nil), s.visibilityFlags...)
	}
	// Preset names are validated at set time, so this cannot fail.
	flags, _ := FlagsForVisibilityPreset(s.visibilityPreset)
	return flags
}

// fail logs a validation message and returns it as an error.
func (s *Settings) fail(msg string) error {
	if s.logger != nil {
		s.logger.Error(msg)
	}
	return fmt.Errorf("%s", msg)
}

func containerNames() []string {
	names := make([]string, 0, len(ContainerEncoders))
	for _, name := range []string{"mov", "mp4", ImageContainer} {
		if _, ok := ContainerEncoders[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

func h264QualityNames() []string {
	names := make([]string, 0, len(H264Qualities))
	for _, name := range []string{"Very high", "High", "Medium", "Low"} {
		if _, ok := H264Qualities[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
