package main

import (
	"os"
	"time"

	"github.com/idilsaglam/taskcal/internal/cli"
	"github.com/idilsaglam/taskcal/internal/ui"
)

func main() {
	// Tasks come from stdin; there are no flags.
	code := cli.Run(cli.Options{
		In:          os.Stdin,
		Out:         os.Stdout,
		Err:         os.Stderr,
		Now:         time.Now,
		Interactive: true,
		Profile:     ui.DetectProfile(os.Stdout),
	})
	os.Exit(code)
}
