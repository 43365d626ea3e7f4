package main

import (
	"os"

	"github.com/lunaris-space/lunaris-go/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
