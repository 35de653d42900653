// Copyright © 2016 NAME HERE <EMAIL ADDRESS>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/suse/tinytest/lib"
	"github.com/suse/tinytest/samples"
)

const bufferSizeEnv = "TINYTEST_BUFFER_SIZE"

// Flags from the command line are set in these variables
var bufferSize int
var noColor bool

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Runs the bundled test suites",
	Long: `Runs every bundled suite in order. Each suite stops at its first failing
assertion; the command exits with an error if any suite failed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		size, err := resolveBufferSize(bufferSize, cmd.Flags().Changed("buffer-size"))
		if err != nil {
			return err
		}
		options := lib.RunnerOptions{
			BufferSize: size,
			Colorize:   !noColor,
		}
		return runCommand(cmd.OutOrStdout(), options, samples.Suites())
	},
}

func init() {
	RootCmd.AddCommand(runCmd)
	runCmd.Flags().IntVar(&bufferSize, "buffer-size", lib.DefaultBufferSize,
		"Capacity of the failure message, overrides $"+bufferSizeEnv)
	runCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored PASSED/FAIL markers")
}

func runCommand(stdout io.Writer, options lib.RunnerOptions, suites []lib.Suite) error {
	return lib.NewRunner(stdout, options).Run(suites...)
}

// resolveBufferSize picks the flag value when it was given explicitly, then
// the environment, then the default.
func resolveBufferSize(flagValue int, flagSet bool) (int, error) {
	size := flagValue
	if !flagSet {
		var err error
		size, err = getEnvAsInt(bufferSizeEnv, lib.DefaultBufferSize)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", bufferSizeEnv, err)
		}
	}
	if size < 1 {
		return 0, fmt.Errorf("buffer size must be positive, got %d", size)
	}
	return size, nil
}

// getEnvAsInt returns the environment variable as an integer.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(valueStr)
}
