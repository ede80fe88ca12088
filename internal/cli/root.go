// Package cli wires the fatmove commands to the engine.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fatmove/fatmove/internal/config"
	"github.com/fatmove/fatmove/internal/engine"
	"github.com/fatmove/fatmove/internal/execx"
	"github.com/fatmove/fatmove/internal/fatsort"
	"github.com/fatmove/fatmove/internal/prompt"
	"github.com/fatmove/fatmove/internal/rootx"
)

var (
	// Transfer flags
	noFatsort      bool
	nonInteractive bool
	configFile     string
	useDefault     bool
	arminMode      bool
	dryRun         bool

	// Global output flags
	verbose bool
	quiet   bool
)

// rootCmd is the root command for fatmove. The transfer itself lives on
// the root so the common case stays `fatmove SOURCE... DEST`.
var rootCmd = &cobra.Command{
	Use:     "fatmove SOURCE... DEST",
	Version: "dev",
	Short:   "Transfer audio files onto a FAT device",
	Long: `fatmove copies audio files and directories onto a FAT device, filters
out files you don't want on it, converts lossless audio to mp3 along the
way, and finally runs fatsort so car stereos play everything in order.`,
	Args:          cobra.MinimumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: runTransfer,
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolVarP(&noFatsort, "no-fatsort", "f", false, "Transfer without sorting the device afterwards")
	flags.BoolVarP(&nonInteractive, "non-interactive", "n", false, "Never prompt; resolve every PROMPT policy to its safe default")
	flags.StringVar(&configFile, "config-file", "config.ini", "Path to the settings file")
	flags.BoolVar(&useDefault, "default", false, "Use the DEFAULT settings profile")
	flags.BoolVar(&arminMode, "armin", false, "Use the ARMIN profile and rename A State of Trance directories")
	flags.BoolVar(&dryRun, "dry-run", false, "Plan and filter the transfer without touching anything")

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Report progress step by step")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress warnings and per-file diagnostics")

	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(configCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// runTransfer is the RunE for the root command.
func runTransfer(cmd *cobra.Command, args []string) error {
	sources := args[:len(args)-1]
	destination := args[len(args)-1]
	interactive := !nonInteractive

	profile := config.ProfileUser
	if useDefault {
		profile = config.ProfileDefault
	}
	if arminMode {
		profile = config.ProfileArmin
	}

	settings, err := config.Load(configFile, profile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	runner := execx.NewRealRunner()
	prompter := prompt.New(os.Stdin, os.Stdout)

	// The fatsort cycle needs root and the fatsort binary. Check both up
	// front so a doomed transfer fails before any file moves.
	if !noFatsort && !dryRun {
		sorter := &fatsort.Sorter{Runner: runner, Verbose: verbose}
		if !sorter.Available() {
			return engine.ErrFatsortMissing
		}

		elevator := rootx.NewElevator(runner, prompter, os.Stdout)
		ok, err := elevator.Ensure(ctx, settings.UpdateUserCredentials, interactive, verbose)
		if err != nil {
			return fmt.Errorf("%w: %v", engine.ErrRootAccess, err)
		}
		if !ok {
			return engine.ErrRootAccess
		}
	}

	eng := newEngine(runner, prompter)
	result, err := eng.Run(ctx, &engine.Request{
		Sources:     sources,
		Destination: destination,
		Settings:    settings,
		Interactive: interactive,
		Fatsort:     !noFatsort,
		Armin:       arminMode,
		DryRun:      dryRun,
		Verbose:     verbose,
		Quiet:       quiet,
	})
	if err != nil {
		return err
	}

	if dryRun {
		printDryRun(result)
		return nil
	}

	if !quiet {
		copied := PrintCount(result.Copied, "file", "files")
		PrintSuccess(fmt.Sprintf("Transferred %s to %s", copied, result.Volume))
		if result.Converted > 0 {
			PrintInfo(fmt.Sprintf("Converted %s to mp3", PrintCount(result.Converted, "file", "files")))
		}
		if result.CopyErrors > 0 {
			PrintWarning(fmt.Sprintf("%s failed to copy", PrintCount(result.CopyErrors, "file", "files")))
		}
	}
	return nil
}

// printDryRun reports what a transfer would have done.
func printDryRun(result *engine.Result) {
	PrintSection("Dry Run")
	PrintInfo(fmt.Sprintf("Device: %s", result.Volume))
	PrintInfo(fmt.Sprintf("Would create %s and copy %s",
		PrintCount(result.Plan.DirCount(), "directory", "directories"),
		PrintCount(result.Plan.FileCount(), "file", "files")))

	if result.Plan.FileCount() == 0 {
		PrintEmptyState("nothing to copy")
		return
	}
	pairs := make([]string, 0, result.Plan.FileCount())
	for i, src := range result.Plan.SourceFiles {
		pairs = append(pairs, fmt.Sprintf("%s -> %s", src, result.Plan.DestFiles[i]))
	}
	PrintList(pairs, 1)
}
