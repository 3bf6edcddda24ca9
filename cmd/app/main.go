package main

import (
	"github.com/streamsync/core/internal/app"
	"github.com/streamsync/core/internal/config"
)

func main() {
	app.Go(config.Load())
}
