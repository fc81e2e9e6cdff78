package main

import (
	"os"

	"modelget/internal/cli"
)

func main() { os.Exit(cli.Main()) }
