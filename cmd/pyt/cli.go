package main

import (
	"fmt"
	"os"
)

type CliResult struct {
	Path string
}

// cli accepts exactly one source path, taken as the last argument.
func cli() (CliResult, error) {
	result := CliResult{}

	args := os.Args[1:]
	if len(args) == 0 {
		return result, fmt.Errorf("usage: %s <file>", os.Args[0])
	}

	result.Path = args[len(args)-1]
	return result, nil
}
