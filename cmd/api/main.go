package main

import (
	"context"
	"log"

	"github.com/delibro/delibro/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("delibro api exited: %v", err)
	}
}
