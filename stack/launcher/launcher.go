package launcher

import (
	"errors"
	"fmt"

	"github.com/codebrew-ai/devstack/logger"
)

// Launcher starts the services of a stack as detached child processes.
// It issues one non-blocking spawn per descriptor and never waits on,
// tracks, or terminates the children.
type Launcher struct {
	spawner Spawner
	log     *logger.Logger
}

// NewLauncher creates a launcher using the given spawner. A nil spawner
// defaults to the OS-backed ExecSpawner.
func NewLauncher(spawner Spawner) *Launcher {
	if spawner == nil {
		spawner = NewExecSpawner()
	}
	return &Launcher{
		spawner: spawner,
		log:     logger.GetGlobalLogger().WithComponent("launcher"),
	}
}

// Options tunes a single Up call.
type Options struct {
	// LogOutput receives the status line emitted immediately before each
	// spawn. Defaults to the launcher's logger.
	LogOutput func(string)
}

// Up spawns every service in order. Each descriptor gets exactly one
// spawn call, issued even when an earlier one failed; failures are
// collected and returned joined. Up returns as soon as the last spawn
// has been issued, while the children keep running.
func (l *Launcher) Up(services []Descriptor, options ...Options) error {
	var opts Options
	if len(options) > 0 {
		opts = options[0]
	}
	status := opts.LogOutput
	if status == nil {
		status = func(msg string) { l.log.Info(msg) }
	}

	var errs []error
	for _, svc := range services {
		status(fmt.Sprintf("Starting %s...", svc.Name))

		pid, err := l.spawner.Spawn(svc)
		if err != nil {
			l.log.WithError(err).Error("failed to start " + svc.Name)
			errs = append(errs, fmt.Errorf("start %s: %w", svc.Name, err))
			continue
		}

		l.log.Debug("service started", map[string]interface{}{
			"service": svc.Name,
			"pid":     pid,
			"dir":     svc.Dir,
		})
	}

	return errors.Join(errs...)
}
