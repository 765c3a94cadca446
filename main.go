package main

import (
	"log"

	"langfilter/models"
	"langfilter/web"

	"github.com/rohanthewiz/logger"
)

func main() {
	cfg, err := models.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	logger.SetLogLevel(cfg.LogLevel)

	// The catalog is loaded once and handed to every widget read-only
	catalog, err := models.LoadCatalog(cfg.LanguagesFile)
	if err != nil {
		log.Fatal("Failed to load language catalog: ", err)
	}
	logger.Info("Language catalog loaded", "entries", len(catalog), "file", cfg.LanguagesFile)

	srv := web.NewServer(cfg, catalog)
	log.Fatal(web.Run(srv, cfg))
}
