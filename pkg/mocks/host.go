// Package mocks provides test doubles for the ports interfaces.
package mocks

import (
	"fmt"

	"github.com/user/playblast/pkg/playblast"
	"github.com/user/playblast/pkg/ports"
)

// Host is a mock implementation of ports.Host carrying a scripted scene
// state. Individual methods can be overridden through the Func fields;
// mutating calls are recorded for verification.
type Host struct {
	Cameras     []string
	Panel       string // focused viewport panel, "" for none
	PanelCamera string // camera the panel looks through

	RenderWidth    int
	RenderHeight   int
	RenderStart    int
	RenderEnd      int
	PlaybackStart  int
	PlaybackEnd    int
	AnimationStart int
	AnimationEnd   int
	Project        string
	Scene          string
	Unit           string
	SoundNode      *ports.SoundInfo
	Visibility     []bool
	ViewerApps     map[string]string

	PlayblastFunc func(opts ports.RecorderOptions) error

	// Recorded calls
	PlayblastCalls       []ports.RecorderOptions
	SetActiveCameraCalls []string
	SetVisibilityCalls   [][]bool
}

// NewHost creates a mock host with a minimal usable scene: one camera
// "persp" focused in panel "modelPanel4", film time unit, and HD render
// settings.
func NewHost() *Host {
	return &Host{
		Cameras:        []string{"persp"},
		Panel:          "modelPanel4",
		PanelCamera:    "persp",
		RenderWidth:    1920,
		RenderHeight:   1080,
		RenderStart:    1,
		RenderEnd:      120,
		PlaybackStart:  1,
		PlaybackEnd:    100,
		AnimationStart: 1,
		AnimationEnd:   200,
		Project:        "/projects/demo",
		Scene:          "shot010",
		Unit:           "film",
		Visibility:     make([]bool, len(playblast.ViewportElements)),
		ViewerApps:     map[string]string{},
	}
}

func (m *Host) ListCameras() ([]string, error) {
	return append([]string(nil), m.Cameras...), nil
}

func (m *Host) ActivePanel() (string, error) {
	return m.Panel, nil
}

func (m *Host) ActiveCamera(panel string) (string, error) {
	if panel != m.Panel {
		return "", fmt.Errorf("no such panel: %s", panel)
	}
	return m.PanelCamera, nil
}

func (m *Host) SetActiveCamera(panel, camera string) error {
	if panel != m.Panel {
		return fmt.Errorf("no such panel: %s", panel)
	}
	m.SetActiveCameraCalls = append(m.SetActiveCameraCalls, camera)
	m.PanelCamera = camera
	return nil
}

func (m *Host) RenderResolution() (int, int, error) {
	return m.RenderWidth, m.RenderHeight, nil
}

func (m *Host) RenderFrameRange() (int, int, error) {
	return m.RenderStart, m.RenderEnd, nil
}

func (m *Host) PlaybackFrameRange() (int, int, error) {
	return m.PlaybackStart, m.PlaybackEnd, nil
}

func (m *Host) AnimationFrameRange() (int, int, error) {
	return m.AnimationStart, m.AnimationEnd, nil
}

func (m *Host) ProjectRoot() (string, error) {
	return m.Project, nil
}

func (m *Host) SceneName() (string, error) {
	return m.Scene, nil
}

func (m *Host) TimeUnit() (string, error) {
	return m.Unit, nil
}

func (m *Host) Sound() (*ports.SoundInfo, error) {
	return m.SoundNode, nil
}

func (m *Host) Playblast(opts ports.RecorderOptions) error {
	m.PlayblastCalls = append(m.PlayblastCalls, opts)
	if m.PlayblastFunc != nil {
		return m.PlayblastFunc(opts)
	}
	return nil
}

func (m *Host) ViewportVisibility(panel string) ([]bool, error) {
	if panel != m.Panel {
		return nil, fmt.Errorf("no such panel: %s", panel)
	}
	return append([]bool(nil), m.Visibility...), nil
}

func (m *Host) SetViewportVisibility(panel string, flags []bool) error {
	if panel != m.Panel {
		return fmt.Errorf("no such panel: %s", panel)
	}
	m.SetVisibilityCalls = append(m.SetVisibilityCalls, append([]bool(nil), flags...))
	m.Visibility = append([]bool(nil), flags...)
	return nil
}

func (m *Host) ViewerApplication(container string) (string, error) {
	return m.ViewerApps[container], nil
}

var _ ports.Host = (*Host)(nil)
