package customer

import (
	"database/sql"

	"petstore/internal/config"
	"petstore/internal/customer/repository"
	"petstore/internal/customer/service"
	"petstore/internal/infrastructure/httpclient"
)

// NewModule assembles the customer lookup adapter. db may be nil when the
// HTTP backend is selected.
func NewModule(cfg *config.Config, db *sql.DB) Lookup {
	var repo service.Repository
	if cfg.Adapters.Backend == config.BackendMySQL {
		repo = repository.NewMySQLCustomerRepository(db)
	} else {
		client := httpclient.New(cfg.Adapters.CustomerBaseURL, cfg.Adapters.LookupTimeout)
		repo = repository.NewHTTPCustomerRepository(client)
	}
	return service.NewService(repo)
}
