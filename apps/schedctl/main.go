package main

import (
	"log"
	"os"

	"github.com/trezcool/timetable/core"
	logsvc "github.com/trezcool/timetable/services/logger"
)

func main() {
	std := log.New(os.Stderr, "SCHEDCTL : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()
	logger := logsvc.NewRollbarLogger(std, conf)
	logger.Enable(!conf.Debug && conf.RollbarToken != "")
	defer logger.Flush()
	if err := conf.Validate(); err != nil {
		logger.Fatal("invalid configuration", err)
	}

	// start CLI
	cli := newCommandLine(conf, logger, os.Stdout, isTerminalFunc(int(os.Stdout.Fd())))
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			std.Printf("error: %s\n", err)
		}
		logger.Flush()
		os.Exit(1)
	}
}
