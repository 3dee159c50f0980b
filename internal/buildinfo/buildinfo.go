// Package buildinfo resolves the version shown by the version command.
package buildinfo

import "runtime/debug"

// Placeholders the ldflags variables hold when the binary is built without them
const (
	DevVersion = "dev"
	Unknown    = "unknown"
)

type Info struct {
	Version   string
	CommitSHA string
	BuildDate string
	Modified  bool // working tree had uncommitted changes at build time
}

// Resolve starts from the ldflags values and fills any placeholder from the
// module build info (go install version, VCS revision and time).
func Resolve(version, commit, date string, read func() (*debug.BuildInfo, bool)) Info {
	info := Info{Version: version, CommitSHA: commit, BuildDate: date}
	if read == nil {
		return info
	}
	bi, ok := read()
	if !ok || bi == nil {
		return info
	}

	if info.Version == DevVersion && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.CommitSHA == Unknown {
				info.CommitSHA = s.Value
			}
		case "vcs.time":
			if info.BuildDate == Unknown {
				info.BuildDate = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}
