package launcher

import (
	"os"
	"os/exec"
)

// Spawner starts one child process described by a Descriptor without
// waiting for it. Implementations must return as soon as the process
// has been handed to the OS.
type Spawner interface {
	Spawn(desc Descriptor) (pid int, err error)
}

// ExecSpawner starts children with os/exec. Children share the invoking
// console (inherited stdout/stderr) but run in their own session or
// process group so they survive the launcher exiting.
type ExecSpawner struct{}

// NewExecSpawner creates a spawner backed by the OS process facility.
func NewExecSpawner() *ExecSpawner {
	return &ExecSpawner{}
}

// Spawn starts the described process detached and returns its PID.
// It does not wait for the child; the child is never reaped by us.
func (s *ExecSpawner) Spawn(desc Descriptor) (int, error) {
	name, args := desc.Command, desc.Args
	if desc.KeepShellOpen {
		name, args = shellCommand(desc)
	}

	cmd := exec.Command(name, args...)
	cmd.Dir = desc.Dir
	cmd.Stdout, cmd.Stderr = os.Stdout, os.Stderr

	setupDetachedProcessAttributes(cmd)

	if err := cmd.Start(); err != nil {
		return 0, err
	}
	// Release so the child is not tied to our process handle; it keeps
	// running after we exit.
	pid := cmd.Process.Pid
	_ = cmd.Process.Release()
	return pid, nil
}
