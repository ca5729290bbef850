package kit

import (
	"testing"
)

const kernelSysC = `#include <linux/syscalls.h>

SYSCALL_DEFINE3(setpriority, int, which, int, who, int, niceval)
{
	return 0;
}
`

const kernelSyscallsH = `asmlinkage long sys_setpriority(int which, int who, int niceval);
asmlinkage long sys_getpriority(int which, int who);
`

func kernelTree() map[string]string {
	return map[string]string{
		"/kernel/sys.c":             kernelSysC,
		"/include/linux/syscalls.h": kernelSyscallsH,
		// Not a source file, must never match.
		"/kernel/Makefile": "obj-y += sys.o # sys_setpriority\n",
	}
}

func TestGrepSyscall(t *testing.T) {
	cases := goldenTestSuite{
		"no-args": {Args: []string{"grep_syscall"}},
		"found": {
			Args:  []string{"grep_syscall", "setpriority"},
			Setup: writeFiles(kernelTree()),
		},
		"missing": {
			Args:  []string{"grep_syscall", "openat2"},
			Setup: writeFiles(kernelTree()),
		},
	}

	cases.Run(t, GrepSyscall)
}

func TestGrepSyscallDef(t *testing.T) {
	cases := goldenTestSuite{
		"no-args": {Args: []string{"grep_syscall_def"}},
		"found": {
			Args:  []string{"grep_syscall_def", "setpriority"},
			Setup: writeFiles(kernelTree()),
		},
		"missing": {
			Args:  []string{"grep_syscall_def", "openat2"},
			Setup: writeFiles(kernelTree()),
		},
	}

	cases.Run(t, GrepSyscallDef)
}
