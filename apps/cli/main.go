package main

import (
	"fmt"
	"log"
	"os"

	"github.com/trezcool/masomo-ui/core"
	"github.com/trezcool/masomo-ui/core/datefmt"
	"github.com/trezcool/masomo-ui/services/logger"
)

var logger core.Logger

func main() {
	std := log.New(os.Stderr, "FMT : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf, err := core.NewConfig()
	if err != nil {
		std.Fatal(err)
	}
	logger = logsvc.New(std, conf)

	fmtr, err := datefmt.NewFromConfig(conf, logger)
	errAndDie(err)

	cli := commandLine{
		fmtr:   fmtr,
		in:     os.Stdin,
		inFd:   int(os.Stdin.Fd()),
		out:    os.Stdout,
		errOut: os.Stderr,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			_, _ = fmt.Fprintf(os.Stderr, "error: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err.Error(), err)
	}
}
