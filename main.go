// main.go
package main

import (
	"errors"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/trvswgnr/maze-raycaster/config"
)

func main() {
	flags := config.Flags(os.Args[0])
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}

	cfg, err := config.Load("", flags)
	if err != nil {
		log.Fatal(err)
	}

	g, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := g.Run(); err != nil {
		log.Fatal(err)
	}
}
