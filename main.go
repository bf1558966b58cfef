package main

import (
	"os"

	"github.com/Tamilselvan-ats/neet-sheet-z/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
