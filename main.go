package main

import (
	"flag"
	"os"

	"github.com/fzft/go-intset/cmd"
	"github.com/fzft/go-intset/log"
)

func main() {
	debug := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	log.InitLogger(*debug)
	cli := cmd.NewCli()
	os.Exit(cli.Run())
}
