package main

import (
	"github.com/dailygrid/dailygrid/internal/cli"
)

func main() {
	cli.Execute()
}
