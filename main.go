package main

import (
	"os"

	"github.com/polyscan-dev/polyscan/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
