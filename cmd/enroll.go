package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/kozaktomas/face-attendance/internal/config"
	"github.com/kozaktomas/face-attendance/internal/enrollment"
	"github.com/spf13/cobra"
)

var enrollCmd = &cobra.Command{
	Use:   "enroll",
	Short: "Check which known faces load from the enrollment directory",
	Long: `Load every reference image from the enrollment directory exactly as the
capture loop would and report which identities were enrolled and which
images were skipped (no face, more than one face, unreadable).

Examples:
  # Check the default known_faces directory
  face-attendance enroll

  # Check another directory
  face-attendance enroll --known-faces ./staff`,
	Args: cobra.NoArgs,
	RunE: runEnroll,
}

func init() {
	rootCmd.AddCommand(enrollCmd)

	enrollCmd.Flags().String("known-faces", "", "Directory of enrollment images (overrides KNOWN_FACES_DIR)")
}

func runEnroll(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if err := applyFlagOverrides(cmd, cfg); err != nil {
		return err
	}
	logger := newLogger(cfg)

	extractor, err := newExtractor(cfg, logger)
	if err != nil {
		return err
	}
	defer extractor.Close()

	result, err := enrollment.NewLoader(extractor, logger, os.Stderr).Load(context.Background(), cfg.Enrollment.Dir)
	if err != nil {
		return err
	}

	fmt.Printf("Enrolled identities: %d\n", len(result.Entries))
	for _, e := range result.Entries {
		fmt.Printf("  %-24s (%d-d embedding)\n", e.Name, len(e.Embedding))
	}

	if len(result.Skipped) > 0 {
		fmt.Printf("\nSkipped images: %d\n", len(result.Skipped))
		for _, s := range result.Skipped {
			fmt.Printf("  %-24s %v\n", s.File, s.Reason)
		}
	}

	return nil
}
