package main

import (
	"os"

	"github.com/mvisser/enroll/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
