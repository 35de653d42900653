package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/suse/tinytest/cmd"
)

// This variable is set in the make/build script, during the go build
var version = "0"

func main() {
	switch {
	case version == "":
		fmt.Fprintln(os.Stderr, color.RedString("tinytest was built incorrectly and its version string is empty"))
		os.Exit(1)
	case version == "0":
		fmt.Fprintln(os.Stderr, color.RedString("tinytest was built incorrectly and it doesn't have a proper version string"))
		os.Exit(1)
	}

	cmd.Execute(version)
}
