package main

import (
	"context"
	"log"
	"os"

	"clipmon/internal/app"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := app.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
