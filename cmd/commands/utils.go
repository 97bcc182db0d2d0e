package commands

import (
	"fmt"
	"os"

	"pixgate/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("pixgate error", "err", err.Error())
	os.Exit(1)
}

func HandleHelp(_ []string) {
	fmt.Println(`pixgate - media ingestion service

usage:
  pixgate run <config.yml>   start the service
  pixgate version            print the version
  pixgate help               show this help`) //nolint
}
