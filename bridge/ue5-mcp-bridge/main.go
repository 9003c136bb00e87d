package main

import (
	"errors"
	"log"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/viant/ue5-mcp-bridge/bridge"
)

func main() {
	if err := bridge.Run(os.Args[1:]); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return
		}
		log.Fatal(err)
	}
}
