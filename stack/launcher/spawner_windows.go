//go:build windows

package launcher

import (
	"os/exec"
	"strings"
	"syscall"
)

// setupDetachedProcessAttributes puts the child in its own process group
// so Ctrl+C in the shared console does not propagate to it.
func setupDetachedProcessAttributes(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP,
	}
}

// shellCommand maps a KeepShellOpen descriptor to `cmd /k`, which leaves
// the shell interactive after the command exits.
func shellCommand(desc Descriptor) (string, []string) {
	line := strings.Join(append([]string{desc.Command}, desc.Args...), " ")
	return "cmd", []string{"/k", line}
}
