package launcher

// Descriptor describes how to start one child process of the stack.
type Descriptor struct {
	// Name identifies the service in log output.
	Name string
	// Command is the executable path or name (resolved via PATH).
	Command string
	// Args are the command-line arguments.
	Args []string
	// Dir is the working directory for the child.
	Dir string
	// KeepShellOpen runs the command through an interactive shell that
	// stays open after the command exits, where the platform supports it.
	KeepShellOpen bool
}
