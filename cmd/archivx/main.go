package main

import (
	"os"

	"archivx/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
