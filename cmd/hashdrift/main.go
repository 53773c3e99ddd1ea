package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/x0d167/hashdrift/internal/cli"
	"github.com/x0d167/hashdrift/internal/engine"
)

var version = "dev"

func main() {
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		if errors.Is(err, engine.ErrDrift) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
}
