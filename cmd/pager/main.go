package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/maxviazov/pager/internal/cli"
)

var version = "0.1.0"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}
