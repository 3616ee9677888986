package container

import (
	"database/sql"

	"go.uber.org/zap"

	"stockroom/internal/config"
	"stockroom/internal/inventory/locations"
	"stockroom/internal/inventory/products"
	"stockroom/internal/inventory/transfers"
	"stockroom/internal/linnworks"
	"stockroom/internal/repository"
	"stockroom/internal/users"
	"stockroom/pkg/security"
)

type Container struct {
	Repository      *repository.Repository
	LoginHandler    *security.LoginHandler
	ProductHandler  *products.ProductHandler
	TransferHandler *transfers.TransferHandler
	UserHandler     *users.UsersHandler
}

func NewAppContainer(db *sql.DB, cfg *config.Config, log *zap.Logger) *Container {
	repo := repository.NewRepository(db)

	linnworksClient := linnworks.NewClient(cfg.Linnworks)
	catalog := locations.NewCatalog(linnworksClient, log)

	movementRepo := transfers.NewMovementRepository(repo)
	transferService := transfers.NewTransferService(
		repo, movementRepo, catalog, linnworksClient, cfg.Transfer, log)

	productRepo := products.NewRepository(repo)
	userRepo := users.NewRepository(repo)

	return &Container{
		Repository:      repo,
		LoginHandler:    security.NewLoginHandler(repo),
		ProductHandler:  products.NewHandler(productRepo, catalog, log),
		TransferHandler: transfers.NewHandler(transferService, movementRepo, userRepo, productRepo, log),
		UserHandler:     users.NewHandler(userRepo),
	}
}
