package main

import (
	"os"

	"github.com/Arekkusul/Rustypipe/internal/cmd"
)

var version = "0.0.1-dev"

func main() {
	os.Exit(cmd.RunWithArgs(os.Args[1:], version))
}
