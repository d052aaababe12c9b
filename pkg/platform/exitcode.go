package platform

import "fmt"

// ExitCode is the package manager's exit status. Codes from 100 through 103
// carry information about the host rather than signalling failure.
type ExitCode int

const (
	ExitOK ExitCode = 0
	// ExitUpdateNeeded reports pending non-security updates.
	ExitUpdateNeeded ExitCode = 100
	// ExitSecUpdateNeeded reports pending security updates.
	ExitSecUpdateNeeded ExitCode = 101
	// ExitRebootNeeded reports that applied patches require a host reboot.
	ExitRebootNeeded ExitCode = 102
	// ExitRestartNeeded reports that applied patches require running
	// services to be restarted.
	ExitRestartNeeded ExitCode = 103
	// ExitCapNotFound and ExitOnSignal report a capability or lock conflict
	// and are handled as errors.
	ExitCapNotFound ExitCode = 104
	ExitOnSignal    ExitCode = 105
)

// IsError reports whether the code signals a failed invocation: anything in
// 1..99, the cap/lock conflict codes, and any code the agent does not know.
func (c ExitCode) IsError() bool {
	switch c {
	case ExitOK, ExitUpdateNeeded, ExitSecUpdateNeeded, ExitRebootNeeded, ExitRestartNeeded:
		return false
	}
	return true
}

// UpdatesPending reports whether patches remain to be applied.
func (c ExitCode) UpdatesPending() bool {
	return c == ExitUpdateNeeded || c == ExitSecUpdateNeeded
}

// RebootNeeded reports whether the host must be rebooted.
func (c ExitCode) RebootNeeded() bool {
	return c == ExitRebootNeeded
}

// RestartNeeded reports whether running services must be restarted.
func (c ExitCode) RestartNeeded() bool {
	return c == ExitRestartNeeded
}

func (c ExitCode) String() string {
	switch {
	case c == ExitOK:
		return "ok"
	case c == ExitUpdateNeeded:
		return "update-needed"
	case c == ExitSecUpdateNeeded:
		return "security-update-needed"
	case c == ExitRebootNeeded:
		return "reboot-needed"
	case c == ExitRestartNeeded:
		return "restart-needed"
	case c == ExitCapNotFound || c == ExitOnSignal:
		return fmt.Sprintf("cap-missing(%d)", int(c))
	default:
		return fmt.Sprintf("error(%d)", int(c))
	}
}
