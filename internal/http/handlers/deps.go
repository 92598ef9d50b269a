package handlers

import (
	"crudusers/internal/config"
	"crudusers/internal/repos"
	"crudusers/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	UserHandler   *UserHandler
	HealthHandler *HealthHandler
	DocsHandler   *DocsHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	userSvc := services.NewUserService(repos.NewUserRepo(db))

	return &Deps{
		UserHandler:   &UserHandler{Users: userSvc},
		HealthHandler: &HealthHandler{Users: userSvc},
		DocsHandler:   &DocsHandler{Port: cfg.Port},
	}
}
