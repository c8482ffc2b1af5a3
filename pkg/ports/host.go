// Package ports defines interfaces for external dependencies.
package ports

// RecorderOptions carries the fully resolved options for one invocation of
// the host's built-in viewport recorder.
type RecorderOptions struct {
	// Filename is the output base path. The recorder appends the frame
	// number and image extension.
	Filename string

	Width  int
	Height int

	// Percent scales the capture relative to Width/Height (100 = exact).
	Percent int

	StartFrame int
	EndFrame   int

	ClearCache     bool
	ForceOverwrite bool

	// Format is always "image"; the recorder writes an image sequence and
	// any video assembly happens outside the host.
	Format      string
	Compression string // image codec: png, jpg, tif
	Quality     int    // 1-100

	// IndexFromZero numbers frames 0..N-1 instead of by scene frame.
	IndexFromZero bool
	FramePadding  int

	// ShowOrnaments burns HUD/overlay elements into the capture.
	ShowOrnaments bool

	// Viewer asks the host to open the result itself when done.
	Viewer bool
}

// SoundInfo describes the scene's active sound node.
type SoundInfo struct {
	FilePath    string
	FrameOffset float64
}

// Host abstracts the content-creation application's scene and viewport
// API. All preset resolution queries live state through this interface,
// so a preset's effective value can change between reads.
type Host interface {
	// ListCameras returns the names of all cameras in the scene.
	ListCameras() ([]string, error)

	// ActivePanel returns the focused viewport panel name, or "" when no
	// viewport has focus.
	ActivePanel() (string, error)

	// ActiveCamera returns the camera the given panel looks through.
	ActiveCamera(panel string) (string, error)

	// SetActiveCamera switches the panel to look through the camera.
	SetActiveCamera(panel, camera string) error

	// RenderResolution returns the render-settings output resolution.
	RenderResolution() (width, height int, err error)

	// RenderFrameRange returns the render-settings frame range.
	RenderFrameRange() (start, end int, err error)

	// PlaybackFrameRange returns the timeline playback range.
	PlaybackFrameRange() (start, end int, err error)

	// AnimationFrameRange returns the full animation range.
	AnimationFrameRange() (start, end int, err error)

	// ProjectRoot returns the current project's root directory.
	ProjectRoot() (string, error)

	// SceneName returns the current scene's base name without extension,
	// or "" when the scene has never been saved.
	SceneName() (string, error)

	// TimeUnit returns the host's named time unit (e.g. "film", "ntsc",
	// "23.976fps").
	TimeUnit() (string, error)

	// Sound returns the active sound node, or nil when none is attached
	// to the timeline.
	Sound() (*SoundInfo, error)

	// Playblast runs the built-in viewport recorder. Blocking.
	Playblast(opts RecorderOptions) error

	// ViewportVisibility returns the panel's per-element visibility
	// states, ordered like playblast.ViewportElements.
	ViewportVisibility(panel string) ([]bool, error)

	// SetViewportVisibility applies per-element visibility states,
	// ordered like playblast.ViewportElements.
	SetViewportVisibility(panel string, flags []bool) error

	// ViewerApplication returns the external viewer registered for the
	// container format, or "" when none is configured.
	ViewerApplication(container string) (string, error)
}
