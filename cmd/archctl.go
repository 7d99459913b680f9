package main

import (
	"fmt"
	"os"

	"github.com/xompass/archctl/pkg/action"
	"github.com/xompass/archctl/pkg/log"
)

func main() {
	defer log.Sync()

	cfg := new(action.Configuration)
	cmd, err := newRootCmd(cfg, os.Stdout)
	if err != nil {
		log.Warn(err.Error())
		os.Exit(1)
	}

	if err := cmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func warning(format string, v ...interface{}) {
	format = fmt.Sprintf("WARNING: %s\n", format)
	_, _ = fmt.Fprintf(os.Stderr, format, v...)
}
