package main

import (
	"os"

	"github.com/danjhk/scripture-srs/internal/cli"
)

func main() {
	os.Exit(cli.Main())
}
