// Package main is the entry point for reel.
package main

import (
	"github.com/anisan-cli/reel/cmd"
	"github.com/anisan-cli/reel/config"
	"github.com/anisan-cli/reel/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
