package logging

// DebugEnable is a string passed in by the compiler to control the build's
// inclusion of Debuggable sections, for example:
//
//	go build -ldflags "-X github.com/SUSE/skuba-update/pkg/logging.DebugEnable=1"
var DebugEnable string

// Debuggable means that the build should include any debugging logic in it,
// such as dumping the full output of every child process.
var Debuggable = DebugEnable != ""
