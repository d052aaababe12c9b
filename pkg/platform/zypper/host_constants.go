package zypper

// Binary is the package manager executed on the host.
const Binary = "zypper"

var (
	argsVersion     = []string{Binary, "--version"}
	argsRefresh     = []string{Binary, "ref", "-s"}
	argsPatch       = []string{Binary, "--non-interactive", "--non-interactive-include-reboot-patches", "patch"}
	argsNeedsReboot = []string{Binary, "needs-rebooting"}
	argsPs          = []string{Binary, "ps", "-sss"}
	argsListPatches = []string{Binary, "--non-interactive", "--xmlout", "list-patches"}
)
