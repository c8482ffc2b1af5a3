// Package orchestrator runs the capture protocol: it resolves the
// configured presets and path tokens against live host state, drives the
// host's viewport recorder, and for video containers assembles the
// intermediate image sequence with the external encoder.
package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ideamans/go-l10n"
	"github.com/user/playblast/pkg/playblast"
	"github.com/user/playblast/pkg/ports"
)

// tempDirName is the subdirectory, under the output directory, holding
// the intermediate PNG sequence for video containers.
const tempDirName = "playblast_temp"

// Orchestrator coordinates one capture: host recorder first, external
// encoder second. Every failure is logged before it is returned, so
// script-console callers can ignore the error value.
type Orchestrator struct {
	host   ports.Host
	fs     ports.FileSystem
	runner ports.ProcessRunner
	logger ports.Logger
}

// New creates an Orchestrator.
func New(host ports.Host, fs ports.FileSystem, runner ports.ProcessRunner, logger ports.Logger) *Orchestrator {
	return &Orchestrator{
		host:   host,
		fs:     fs,
		runner: runner,
		logger: logger,
	}
}

// Run performs a capture with the given settings and request and returns
// the final output path: the video file for encoder containers, the
// sequence base path for direct image sequences.
func (o *Orchestrator) Run(ctx context.Context, settings *playblast.Settings, req playblast.Request) (string, error) {
	if settings.RequiresEncoder() {
		if err := o.validateEncoderPath(settings.EncoderPath()); err != nil {
			return "", err
		}
	}

	panel, err := o.host.ActivePanel()
	if err != nil {
		return "", o.fail(l10n.F("Failed to query the active viewport: %s", err))
	}
	if panel == "" {
		return "", o.fail(l10n.T("An active viewport is not selected. Select the viewport and retry."))
	}

	outputDir, err := playblast.ResolveOutputDir(o.host, req.OutputDir)
	if err != nil {
		return "", o.fail(l10n.F("Failed to resolve output directory: %s", err))
	}
	if outputDir == "" {
		return "", o.fail(l10n.T("Output directory path not set"))
	}

	filename, err := playblast.ResolveOutputFilename(o.host, req.Filename)
	if err != nil {
		return "", o.fail(l10n.F("Failed to resolve output file name: %s", err))
	}
	if filename == "" {
		return "", o.fail(l10n.T("Output file name not set"))
	}

	padding := req.Padding
	if padding <= 0 {
		padding = playblast.DefaultPadding
	}

	var (
		finalPath   string
		tempDir     string
		recorderOut string
	)
	opts := ports.RecorderOptions{
		Percent:       100,
		ClearCache:    true,
		Format:        "image",
		FramePadding:  padding,
		ShowOrnaments: req.ShowOrnaments,
	}

	if settings.RequiresEncoder() {
		finalPath = filepath.Join(outputDir, filename+"."+settings.Container())
		exists, err := o.fs.Exists(finalPath)
		if err != nil {
			return "", o.fail(l10n.F("Failed to check output file: %s", err))
		}
		if exists && !req.Overwrite {
			return "", o.fail(l10n.F("Output file already exists: %s. Enable overwrite to replace it.", finalPath))
		}

		tempDir = filepath.Join(outputDir, tempDirName)
		recorderOut = filepath.Join(tempDir, filename)
		opts.Filename = recorderOut
		opts.ForceOverwrite = true
		opts.Compression = "png"
		opts.Quality = 100
		opts.IndexFromZero = true
		opts.Viewer = false
	} else {
		recorderOut = filepath.Join(outputDir, filename)
		finalPath = recorderOut
		opts.Filename = recorderOut
		opts.ForceOverwrite = req.Overwrite
		opts.Compression = settings.Encoder()
		opts.Quality = settings.ImageQuality()
		opts.IndexFromZero = false
		opts.Viewer = req.ShowInViewer
	}

	opts.Width, opts.Height, err = settings.ResolveResolution(o.host)
	if err != nil {
		return "", o.fail(l10n.F("Failed to resolve resolution: %s", err))
	}
	opts.StartFrame, opts.EndFrame, err = settings.ResolveFrameRange(o.host)
	if err != nil {
		return "", o.fail(l10n.F("Failed to resolve frame range: %s", err))
	}

	o.logger.Info(l10n.F("Recorder options: %+v", opts))

	if err := o.record(panel, settings, opts); err != nil {
		return "", err
	}

	if settings.RequiresEncoder() {
		sourcePattern := fmt.Sprintf("%s.%%0%dd.png", filepath.Join(tempDir, filename), padding)

		if settings.Encoder() == "h264" {
			err = o.encodeH264(ctx, settings, sourcePattern, finalPath, opts.StartFrame)
		} else {
			err = o.fail(l10n.F("Encoding failed. Unsupported encoder (%s) for container (%s)",
				settings.Encoder(), settings.Container()))
		}
		o.removeTempDir(tempDir)
		if err != nil {
			return "", err
		}

		if req.ShowInViewer {
			o.openInViewer(finalPath, settings.Container())
		}
	}

	o.logger.Info(l10n.F("Playblast output: %s", finalPath))
	return finalPath, nil
}

// record switches the viewport to the configured camera and visibility
// states, runs the host recorder, and restores the original states
// whether or not the recorder succeeded.
func (o *Orchestrator) record(panel string, settings *playblast.Settings, opts ports.RecorderOptions) error {
	origCamera, err := o.host.ActiveCamera(panel)
	if err != nil {
		return o.fail(l10n.F("Failed to get active camera: %s", err))
	}

	camera := settings.Camera()
	if camera == "" {
		camera = origCamera
	}
	if err := o.checkCameraExists(camera); err != nil {
		return err
	}

	if err := o.host.SetActiveCamera(panel, camera); err != nil {
		return o.fail(l10n.F("Failed to set active camera to %s: %s", camera, err))
	}
	defer func() {
		if err := o.host.SetActiveCamera(panel, origCamera); err != nil {
			o.logger.Warn(l10n.F("Failed to restore active camera %s: %s", origCamera, err))
		}
	}()

	if flags := settings.VisibilityFlags(); flags != nil {
		origFlags, err := o.host.ViewportVisibility(panel)
		if err != nil {
			return o.fail(l10n.F("Failed to get viewport visibility: %s", err))
		}
		if err := o.host.SetViewportVisibility(panel, flags); err != nil {
			return o.fail(l10n.F("Failed to set viewport visibility: %s", err))
		}
		defer func() {
			if err := o.host.SetViewportVisibility(panel, origFlags); err != nil {
				o.logger.Warn(l10n.F("Failed to restore viewport visibility: %s", err))
			}
		}()
	}

	if err := o.host.Playblast(opts); err != nil {
		return o.fail(l10n.F("Failed to create playblast: %s", err))
	}
	return nil
}

// validateEncoderPath checks the encoder executable at capture time: it
// must be set, exist, and be a regular file.
func (o *Orchestrator) validateEncoderPath(path string) error {
	if path == "" {
		return o.fail(l10n.T("Encoder executable path not set"))
	}
	exists, err := o.fs.Exists(path)
	if err != nil {
		return o.fail(l10n.F("Failed to check encoder path: %s", err))
	}
	if !exists {
		return o.fail(l10n.F("Encoder executable path does not exist: %s", path))
	}
	isDir, err := o.fs.IsDir(path)
	if err != nil {
		return o.fail(l10n.F("Failed to check encoder path: %s", err))
	}
	if isDir {
		return o.fail(l10n.F("Invalid encoder path: %s", path))
	}
	return nil
}

func (o *Orchestrator) checkCameraExists(camera string) error {
	cameras, err := o.host.ListCameras()
	if err != nil {
		return o.fail(l10n.F("Failed to list cameras: %s", err))
	}
	for _, candidate := range cameras {
		if candidate == camera {
			return nil
		}
	}
	return o.fail(l10n.F("Camera does not exist: %s", camera))
}

// removeTempDir deletes the intermediate PNG sequence and its directory.
// Cleanup failures only warn; they never fail the capture.
func (o *Orchestrator) removeTempDir(tempDir string) {
	frames, err := o.fs.Glob(filepath.Join(tempDir, "*.png"))
	if err != nil {
		o.logger.Warn(l10n.F("Failed to list temporary files in %s: %s", tempDir, err))
		return
	}
	for _, frame := range frames {
		if err := o.fs.Remove(frame); err != nil {
			o.logger.Warn(l10n.F("Failed to remove temporary file %s: %s", frame, err))
		}
	}
	if err := o.fs.Remove(tempDir); err != nil {
		o.logger.Warn(l10n.F("Failed to remove temporary directory: %s", tempDir))
	}
}

// openInViewer opens the final output, preferring a host-registered
// viewer application for video containers over the platform default
// handler. Viewer problems are logged but never fail the capture.
func (o *Orchestrator) openInViewer(path, container string) {
	exists, err := o.fs.Exists(path)
	if err != nil || !exists {
		o.logger.Error(l10n.F("Failed to open in viewer. File does not exist: %s", path))
		return
	}

	if container == "mov" || container == "mp4" {
		app, err := o.host.ViewerApplication(container)
		if err != nil {
			o.logger.Warn(l10n.F("Failed to query viewer application: %s", err))
		} else if app != "" {
			if err := o.runner.StartDetached(app, path); err != nil {
				o.logger.Error(l10n.F("Failed to start viewer %s: %s", app, err))
			}
			return
		}
	}

	if err := o.runner.OpenWithDefaultApp(path); err != nil {
		o.logger.Error(l10n.F("Failed to open %s: %s", path, err))
	}
}

// fail logs an error message and returns it as an error.
func (o *Orchestrator) fail(msg string) error {
	o.logger.Error(msg)
	return fmt.Errorf("%s", msg)
}
