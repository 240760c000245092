package main

import (
	"fmt"
	"os"

	"github.com/teranos/astgen/cmd/astgen/cmd"
	"github.com/teranos/astgen/errors"
	"github.com/teranos/astgen/logger"
	"github.com/teranos/astgen/lox"
)

func main() {
	root := cmd.NewRootCmd(lox.NewRegistry())
	err := root.Execute()
	logger.Cleanup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
