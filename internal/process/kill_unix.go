//go:build !windows

// Package process terminates browser processes started by the viewer.
package process

import "syscall"

// KillProcessGroup sends SIGKILL to the process group led by pid, so the
// browser's renderer and GPU helpers exit with it. Errors are ignored:
// the launcher's own Kill runs afterwards.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
