package main

import (
	"os"

	"github.com/blacktop/socialshare/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
