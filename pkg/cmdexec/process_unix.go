//go:build unix

package cmdexec

import (
	"os/exec"
	"syscall"
)

// setProcGroup places the command in its own process group.
//
// Package managers routinely fork helpers (downloaders, installers). Grouping
// the child and everything it spawns lets a timeout terminate all of them at
// once instead of leaving orphans behind.
//
// Parameters:
//   - cmd: The command to configure before it starts
func setProcGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
	}
}

// killProcGroup terminates the command's entire process group.
//
// It sends SIGKILL to the negated process id, which addresses every process
// in the group rather than just the direct child.
//
// Parameters:
//   - cmd: The command whose process group should be terminated
//
// Returns:
//   - error: Error if the kill signal could not be delivered, nil if
//     successful or the process never started
func killProcGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	// Negative PID means kill the entire process group
	return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
}
