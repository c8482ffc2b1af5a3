package orchestrator

import (
	"context"
	"strconv"
	"strings"

	"github.com/ideamans/go-l10n"
	"github.com/user/playblast/pkg/playblast"
	"github.com/user/playblast/pkg/ports"
)

// h264Job carries the resolved parameters for one encoder invocation.
type h264Job struct {
	SourcePattern string
	OutputPath    string
	FrameRate     float64

	CRF    int
	Preset string

	// AudioPath is empty when no scene audio is muxed in.
	AudioPath      string
	AudioOffsetSec float64
}

// buildH264Args builds the encoder argument list:
//
//	-y -framerate <fps> -i <pattern> [-ss <offset> -i <audio>]
//	-c:v libx264 -crf:v <crf> -preset:v <preset> -profile high -level 4.0
//	-pix_fmt yuv420p [-filter_complex "[1:0] apad" -shortest] <output>
func buildH264Args(job h264Job) []string {
	args := []string{
		"-y",
		"-framerate", formatFrameRate(job.FrameRate),
		"-i", job.SourcePattern,
	}

	if job.AudioPath != "" {
		args = append(args,
			"-ss", strconv.FormatFloat(job.AudioOffsetSec, 'f', -1, 64),
			"-i", job.AudioPath,
		)
	}

	args = append(args,
		"-c:v", "libx264",
		"-crf:v", strconv.Itoa(job.CRF),
		"-preset:v", job.Preset,
		"-profile", "high",
		"-level", "4.0",
		"-pix_fmt", "yuv420p",
	)

	if job.AudioPath != "" {
		args = append(args,
			"-filter_complex", "[1:0] apad",
			"-shortest",
		)
	}

	return append(args, job.OutputPath)
}

// formatFrameRate renders an fps value without trailing zeros, so whole
// rates come out as "24" and fractional ones as "23.976".
func formatFrameRate(fps float64) string {
	return strconv.FormatFloat(fps, 'f', -1, 64)
}

// encodeH264 assembles the intermediate PNG sequence into an H.264 video
// with the external encoder, muxing in the scene audio when a sound node
// is present. Blocks until the encoder exits; its stderr is forwarded to
// the log.
func (o *Orchestrator) encodeH264(ctx context.Context, settings *playblast.Settings, sourcePattern, outputPath string, startFrame int) error {
	frameRate, err := playblast.FrameRate(o.host)
	if err != nil {
		return o.fail(l10n.F("Failed to derive frame rate: %s", err))
	}

	_, preset := settings.H264Settings()
	job := h264Job{
		SourcePattern: sourcePattern,
		OutputPath:    outputPath,
		FrameRate:     frameRate,
		CRF:           settings.H264CRF(),
		Preset:        preset,
	}

	if sound := o.soundAttributes(); sound != nil {
		job.AudioPath = sound.FilePath
		job.AudioOffsetSec = playblast.AudioOffsetSec(startFrame, sound.FrameOffset, frameRate)
	}

	args := buildH264Args(job)
	o.logger.Info(l10n.F("Encoder command: %s %s", settings.EncoderPath(), strings.Join(args, " ")))

	err = o.runner.Run(ctx, settings.EncoderPath(), args, func(line string) {
		o.logger.Info(line)
	})
	if err != nil {
		return o.fail(l10n.F("Encoder failed: %s", err))
	}
	return nil
}

// soundAttributes returns the scene's sound node when one is attached
// and its audio file exists on disk, nil otherwise.
func (o *Orchestrator) soundAttributes() *ports.SoundInfo {
	sound, err := o.host.Sound()
	if err != nil {
		o.logger.Warn(l10n.F("Failed to query sound node: %s", err))
		return nil
	}
	if sound == nil || sound.FilePath == "" {
		return nil
	}
	exists, err := o.fs.Exists(sound.FilePath)
	if err != nil || !exists {
		o.logger.Warn(l10n.F("Audio file does not exist, skipping audio: %s", sound.FilePath))
		return nil
	}
	return sound
}
