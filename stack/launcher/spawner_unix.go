//go:build !windows

package launcher

import (
	"os/exec"
	"strings"
	"syscall"
)

// setupDetachedProcessAttributes starts the child in a new session so it
// is detached from the controlling terminal and survives parent exit.
func setupDetachedProcessAttributes(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}

// shellCommand maps a KeepShellOpen descriptor to a shell invocation.
// Unix has no per-window "keep the shell open" notion when the console is
// shared, so the command line simply runs through sh.
func shellCommand(desc Descriptor) (string, []string) {
	line := strings.Join(append([]string{desc.Command}, desc.Args...), " ")
	return "sh", []string{"-c", line}
}
