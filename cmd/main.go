package main

import (
	"fmt"
	"os"

	"pixgate"
	"pixgate/cmd/commands"
)

func main() {
	cmd := "help"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "run":
		commands.HandleRun(os.Args)

	case "version":
		fmt.Println(pixgate.StringVersion()) //nolint

	case "help":
		commands.HandleHelp(os.Args)

	default:
		fmt.Printf("unknown command: %s\n\n", cmd) //nolint
		commands.HandleHelp(os.Args)
		os.Exit(1)
	}
}
