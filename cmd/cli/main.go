package main

import (
	"context"
	"log"

	"github.com/datarium/datarium/internal/cli"
	"github.com/datarium/datarium/internal/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(ctx)
}
