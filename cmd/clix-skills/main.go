// Package main is the entry point for the clix-skills CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/clix-so/clix-skills/cmd/clix-skills/commands"
	clixerrors "github.com/clix-so/clix-skills/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	var exitErr *clixerrors.ExitError
	if errors.As(err, &exitErr) {
		// A nil underlying error carries an exit code with nothing to print.
		if exitErr.Err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", exitErr.Err)
		}
		if exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(clixerrors.ExitUser)
}
