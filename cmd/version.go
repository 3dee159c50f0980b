package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/kozaktomas/face-attendance/internal/buildinfo"
	"github.com/spf13/cobra"
)

// Build metadata variables, set by -ldflags at compile time.
// Values left at their placeholders are filled from the module build info.
var (
	Version   = buildinfo.DevVersion
	CommitSHA = buildinfo.Unknown
	BuildDate = buildinfo.Unknown
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := buildinfo.Resolve(Version, CommitSHA, BuildDate, debug.ReadBuildInfo)
		commit := info.CommitSHA
		if info.Modified {
			commit += " (modified)"
		}
		fmt.Printf("face-attendance %s\n", info.Version)
		fmt.Printf("  Commit: %s\n", commit)
		fmt.Printf("  Built:  %s\n", info.BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
