package main

import (
	"github.com/mcoot/rummyledger/internal/cli"
)

func main() {
	cli.Execute()
}
