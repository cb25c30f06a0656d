package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/calamaunido/internal/buildinfo"
	"github.com/dmitrijs2005/calamaunido/internal/sandbox"
	"github.com/dmitrijs2005/calamaunido/internal/sandbox/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := sandbox.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}

}
