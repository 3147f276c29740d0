package preflight

import (
	"fmt"
	"os"
)

// shellCommandCheck returns the shell executable and arguments used to
// probe for a command through the user's shell.
//
// The user's shell comes from the SHELL environment variable, with "sh"
// as the fallback. The probe runs 'command -v' in a login shell (-l) so
// PATH entries and functions set up by shell profiles are visible.
//
// Parameters:
//   - name: the command name to probe for
//
// Returns:
//   - shell: the shell executable to invoke
//   - args: the arguments that make the shell run the probe
func shellCommandCheck(name string) (shell string, args []string) {
	shell = os.Getenv("SHELL")
	if shell == "" {
		shell = "sh"
	}
	return shell, []string{"-l", "-c", fmt.Sprintf("command -v %s", name)}
}
