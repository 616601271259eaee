package main

import (
	"github.com/solarlune/meshtree/log"
	"github.com/urfave/cli"
)

var logger = log.New("meshtree")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
