package main

import (
	"os"

	"go.dw1.io/rex/internal/cmd"
	"go.dw1.io/rex/internal/logger"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}
