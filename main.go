package main

import (
	"os"

	"github.com/kawalpreet/folio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
