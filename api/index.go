package handler

import (
	"net/http"

	"dinevibe/config"
	"dinevibe/di"
	"dinevibe/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	service := di.InitializeService()
	service.Adaptor().ServeHTTP(w, r)
}
