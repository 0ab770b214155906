// Package main is the entry point for the ava application.
package main

import (
	"github.com/ava-vibe/ava/cmd"
	"github.com/ava-vibe/ava/config"
	"github.com/ava-vibe/ava/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
