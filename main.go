package main

import (
	"os"

	"github.com/kaisuddinahmed/mymath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
