package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mykeomos/Newton-law-tutor/internal/selfupdate"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update newton-tutor to the latest version",
	RunE: func(cmd *cobra.Command, args []string) error {
		if checkOnly, _ := cmd.Flags().GetBool("check"); checkOnly {
			return runUpdateCheck(cmd)
		}
		return runUpdate(cmd)
	},
}

func init() {
	updateCmd.Flags().Bool("check", false, "Only check whether a newer release exists")
}

// runUpdateCheck reports whether a newer release exists without
// touching the installed binary.
func runUpdateCheck(cmd *cobra.Command) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	result, err := selfupdate.NewChecker().Check(ctx, &selfupdate.CheckInput{Version: version})
	if err != nil {
		return err
	}
	if result.UpdateAvailable {
		fmt.Printf("Update available: %s (running %s)\n", result.LatestVersion, result.CurrentVersion)
		fmt.Println(result.ReleaseURL)
	} else {
		fmt.Printf("Running %s, latest release is %s.\n", result.CurrentVersion, result.LatestVersion)
	}
	return nil
}

// runUpdate downloads the latest release and swaps the binary in place.
func runUpdate(cmd *cobra.Command) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	checker := selfupdate.NewChecker(selfupdate.WithTimeout(2 * time.Minute))
	err := checker.Update(ctx, &selfupdate.UpdateInput{CurrentVersion: version},
		func(p selfupdate.UpdateProgress) { fmt.Println(p.Message) })

	switch {
	case err == nil:
		return nil
	case errors.Is(err, selfupdate.ErrDevBuild):
		fmt.Println("This is a development build; self-update only works on release builds.")
		return nil
	case errors.Is(err, selfupdate.ErrAlreadyLatest):
		fmt.Println("newton-tutor is already up to date.")
		return nil
	case os.IsPermission(err):
		return fmt.Errorf("%w\n\nTry running: sudo newton-tutor update", err)
	default:
		return err
	}
}
