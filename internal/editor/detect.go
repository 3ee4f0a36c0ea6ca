package editor

import (
	"context"
	"os/exec"
	"time"
)

// DefaultProbeTimeout bounds each availability probe.
const DefaultProbeTimeout = 5 * time.Second

// Prober runs command with a version flag and reports whether it succeeded.
type Prober func(ctx context.Context, command string) error

// Availability answers which editors are installed.
type Availability interface {
	DetectAvailable(ctx context.Context) []Kind
	SelectDefault(ctx context.Context) Kind
}

// Detector probes the host for installed editors.
type Detector struct {
	probe   Prober
	timeout time.Duration
}

// NewDetector returns a Detector that runs `<launch> --version`.
func NewDetector() *Detector {
	return &Detector{probe: execProbe, timeout: DefaultProbeTimeout}
}

// NewDetectorWithProber returns a Detector using probe with the given
// per-probe timeout. A zero timeout means DefaultProbeTimeout.
func NewDetectorWithProber(probe Prober, timeout time.Duration) *Detector {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	return &Detector{probe: probe, timeout: timeout}
}

// DetectAvailable returns the installed editors in priority order.
// Spawn failures, non-zero exits and timeouts all count as "not installed".
func (d *Detector) DetectAvailable(ctx context.Context) []Kind {
	var found []Kind
	for _, cfg := range All() {
		if d.available(ctx, cfg.LaunchCommand) {
			found = append(found, cfg.Kind)
		}
	}
	return found
}

// SelectDefault returns the highest-priority detected editor, or Default.
func (d *Detector) SelectDefault(ctx context.Context) Kind {
	return Preferred(d.DetectAvailable(ctx))
}

func (d *Detector) available(ctx context.Context, command string) bool {
	probeCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- d.probe(probeCtx, command) }()

	select {
	case err := <-done:
		return err == nil
	case <-probeCtx.Done():
		return false
	}
}

// Preferred returns the first of detected, or Default when it is empty.
// detected is expected in priority order, as DetectAvailable returns it.
func Preferred(detected []Kind) Kind {
	if len(detected) == 0 {
		return Default
	}
	return detected[0]
}

func execProbe(ctx context.Context, command string) error {
	return exec.CommandContext(ctx, command, "--version").Run()
}
