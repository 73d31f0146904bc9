package main

import (
	"os"

	"github.com/rhartert/mcflow/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
