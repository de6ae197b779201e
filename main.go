package main

import (
	"os"

	"github.com/sift-tools/sift/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
