package catalog

import (
	"database/sql"

	"petstore/internal/catalog/repository"
	"petstore/internal/catalog/service"
	"petstore/internal/config"
	"petstore/internal/infrastructure/httpclient"
)

// NewModule assembles the catalog lookup adapter. db may be nil when the
// HTTP backend is selected.
func NewModule(cfg *config.Config, db *sql.DB) Lookup {
	var repo service.Repository
	if cfg.Adapters.Backend == config.BackendMySQL {
		repo = repository.NewMySQLCatalogRepository(db)
	} else {
		client := httpclient.New(cfg.Adapters.CatalogBaseURL, cfg.Adapters.LookupTimeout)
		repo = repository.NewHTTPCatalogRepository(client)
	}
	return service.NewService(repo)
}
