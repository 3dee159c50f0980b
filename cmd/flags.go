package cmd

import (
	"fmt"

	"github.com/kozaktomas/face-attendance/internal/config"
	"github.com/spf13/cobra"
)

// mustGetInt gets an int flag value or panics if the flag doesn't exist.
// This is appropriate for flags defined in init() - errors indicate programming bugs.
func mustGetInt(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		panic(fmt.Sprintf("flag error for --%s: %v", name, err))
	}
	return val
}

// mustGetString gets a string flag value or panics if the flag doesn't exist.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic(fmt.Sprintf("flag error for --%s: %v", name, err))
	}
	return val
}

// mustGetFloat64 gets a float64 flag value or panics if the flag doesn't exist.
func mustGetFloat64(cmd *cobra.Command, name string) float64 {
	val, err := cmd.Flags().GetFloat64(name)
	if err != nil {
		panic(fmt.Sprintf("flag error for --%s: %v", name, err))
	}
	return val
}

// applyFlagOverrides copies explicitly set flags over the environment config.
// Flags that are not defined on cmd are left alone.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Lookup("known-faces") != nil && flags.Changed("known-faces") {
		cfg.Enrollment.Dir = mustGetString(cmd, "known-faces")
	}
	if flags.Lookup("camera") != nil && flags.Changed("camera") {
		device := mustGetInt(cmd, "camera")
		if device < 0 {
			return fmt.Errorf("--camera must not be negative, got %d", device)
		}
		cfg.Capture.Device = device
	}
	if flags.Lookup("threshold") != nil && flags.Changed("threshold") {
		threshold := mustGetFloat64(cmd, "threshold")
		if threshold <= 0 {
			return fmt.Errorf("--threshold must be positive, got %g", threshold)
		}
		cfg.Matching.Threshold = threshold
	}
	return nil
}
