package logger

import (
	"testing"

	"github.com/user/playblast/pkg/ports"
)

func TestBroadcast_EmitsFormattedEvents(t *testing.T) {
	var events []ports.LogEvent
	log := NewBroadcast(NewNoop())
	log.Subscribe(func(event ports.LogEvent) {
		events = append(events, event)
	})

	log.Info("Playblast output: %s", "/renders/output.mp4")
	log.Warn("Failed to remove temporary directory: %s", "/renders/playblast_temp")
	log.Error("Output file name not set")

	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	if events[0].Level != ports.LevelInfo || events[0].Message != "Playblast output: /renders/output.mp4" {
		t.Errorf("unexpected first event: %+v", events[0])
	}
	if events[1].Level != ports.LevelWarn {
		t.Errorf("expected warn level, got %v", events[1].Level)
	}
	if events[2].Level != ports.LevelError || events[2].Message != "Output file name not set" {
		t.Errorf("unexpected third event: %+v", events[2])
	}
}

func TestBroadcast_MultipleSubscribers(t *testing.T) {
	first := 0
	second := 0
	log := NewBroadcast(NewNoop())
	log.Subscribe(func(ports.LogEvent) { first++ })
	log.Subscribe(func(ports.LogEvent) { second++ })

	log.Debug("probe")
	log.Info("probe")

	if first != 2 || second != 2 {
		t.Errorf("expected both subscribers to see 2 events, got %d and %d", first, second)
	}
}
