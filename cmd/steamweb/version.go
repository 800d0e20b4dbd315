package main

import "runtime/debug"

// Version is the module version when installed with go install, "devel"
// otherwise.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return "devel"
	}
	return info.Main.Version
}
