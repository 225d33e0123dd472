package main

import (
	"os"

	"github.com/msto63/bookfab/cmd/bookfab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
