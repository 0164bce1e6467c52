package main

import (
	"dinevibe/config"
	"dinevibe/di"
	"dinevibe/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
