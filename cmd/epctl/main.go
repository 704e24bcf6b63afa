package main

import (
	"os"

	"epctl/pkg/logging"
)

func main() {
	defer logging.CloseLogger()

	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
