package app

import (
	"log/slog"

	"github.com/linemk/product-lookup/internal/config"
	"github.com/linemk/product-lookup/internal/domain/models"
	"github.com/linemk/product-lookup/internal/service"
	"github.com/linemk/product-lookup/internal/storage"
	"github.com/pkg/errors"
)

type App struct {
	Config *config.Config
	Logger *slog.Logger
	Server storage.ProductServer
	Prices *service.PriceClient
}

// NewApp создаёт новый экземпляр App: товары из конфига, выбранное хранилище и клиент
func NewApp(log *slog.Logger, cfg *config.Config) (*App, error) {
	const op = "app.NewApp"

	products, err := buildProducts(cfg.Catalog)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}

	server, err := storage.New(storage.Kind(cfg.Server.Kind), log, products)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}

	log.Info("catalog loaded",
		slog.String("op", op),
		slog.String("kind", cfg.Server.Kind),
		slog.Int("products", len(products)),
	)

	app := &App{
		Config: cfg,
		Logger: log,
		Server: server,
		Prices: service.NewPriceClient(log, server),
	}

	return app, nil
}

// buildProducts переводит товары из конфига в модели, первая ошибка прерывает сборку
func buildProducts(catalog []config.ProductConfig) ([]models.Product, error) {
	products := make([]models.Product, 0, len(catalog))
	for i, pc := range catalog {
		p, err := models.NewProduct(pc.Name, pc.Price)
		if err != nil {
			return nil, errors.Wrapf(err, "catalog[%d]", i)
		}
		products = append(products, p)
	}
	return products, nil
}
