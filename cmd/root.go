package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "face-attendance",
	Short: "Mark attendance by recognizing faces from a webcam",
	Long: `Face Attendance loads reference photos of known people, watches the default
camera and writes one attendance row per recognized person per day to
attendance_YYYY-MM-DD.csv.

Press 'q' in the video window to quit.

Examples:
  # Run with defaults (known_faces/, camera 0)
  face-attendance

  # Use another enrollment directory and a stricter threshold
  face-attendance --known-faces ./staff --threshold 0.5`,
	Args:          cobra.NoArgs,
	RunE:          runAttendance,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().String("known-faces", "", "Directory of enrollment images (overrides KNOWN_FACES_DIR)")
	rootCmd.Flags().Int("camera", 0, "Camera device index (overrides CAMERA_DEVICE)")
	rootCmd.Flags().Float64("threshold", 0, "Maximum face distance for a match (overrides MATCH_THRESHOLD)")
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}
