package main

import (
	"github.com/robotalks/ioexpander/pkg/cli/sh"

	_ "github.com/robotalks/ioexpander/pkg/cli/cmds/expander"
)

//go-build: CGO_ENABLED=0

func main() {
	sh.Main()
}
