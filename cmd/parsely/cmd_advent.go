package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/parsely/advent"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"gopkg.in/yaml.v3"
)

var adventLog = commonlog.GetLogger("parsely.advent")

// adventManifest maps puzzle names to their input files, so a whole
// season's inputs can live in one YAML document:
//
//	days:
//	  day1: inputs/day1.txt
//	  day2: inputs/day2.txt
type adventManifest struct {
	Days map[string]string `yaml:"days"`
}

func newAdventCmd() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "advent <day1|day2> [file]",
		Short: "Solve Advent of Code puzzles whose inputs are flat text",
		Long: `Solve an Advent of Code puzzle.

day1 follows a string of '(' and ')' floor moves.
day2 sums wrapping paper and ribbon for LxWxH present dimensions.

The input comes from the file argument, from a manifest entry named
after the day, or from stdin.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day := args[0]

			input, err := readAdventInput(cmd, args, manifestPath)
			if err != nil {
				return err
			}

			switch day {
			case "day1":
				return runDay1(cmd, input)
			case "day2":
				return runDay2(cmd, input)
			default:
				return fmt.Errorf("unknown day: %s", day)
			}
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "YAML manifest mapping day names to input files")

	return cmd
}

func readAdventInput(cmd *cobra.Command, args []string, manifestPath string) (string, error) {
	if len(args) == 2 {
		data, err := os.ReadFile(args[1])
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}

	if manifestPath != "" {
		data, err := os.ReadFile(manifestPath)
		if err != nil {
			return "", fmt.Errorf("read manifest: %w", err)
		}
		var manifest adventManifest
		if err := yaml.Unmarshal(data, &manifest); err != nil {
			return "", fmt.Errorf("parse manifest: %w", err)
		}
		path, ok := manifest.Days[args[0]]
		if !ok {
			return "", fmt.Errorf("manifest has no entry for %s", args[0])
		}
		adventLog.Infof("reading %s input from %s", args[0], path)
		input, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(input), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func runDay1(cmd *cobra.Command, input string) error {
	moves := trimTrailingNewlines(input)
	adventLog.Infof("day1: %d moves", len(moves))

	floor, err := advent.FindFloor(moves)
	if err != nil {
		if printParseError(cmd.ErrOrStderr(), err) {
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
		}
		return err
	}
	basement, err := advent.FirstBasementPosition(moves)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "floor=%d\n", floor)
	if basement > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "basement=%d\n", basement)
	}
	return nil
}

func runDay2(cmd *cobra.Command, input string) error {
	paper, ribbon, err := advent.Totals(input)
	if err != nil {
		if printParseError(cmd.ErrOrStderr(), err) {
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "paper=%d\n", paper)
	fmt.Fprintf(cmd.OutOrStdout(), "ribbon=%d\n", ribbon)
	return nil
}

func trimTrailingNewlines(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
