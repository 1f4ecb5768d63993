package service

import (
	"log/slog"

	"github.com/linemk/product-lookup/internal/storage"
	"github.com/pkg/errors"
)

type PriceService interface {
	TotalPrice(nLetters int) (float64, bool, error)
}

// PriceClient считает суммарную цену товаров, найденных сервером
type PriceClient struct {
	log    *slog.Logger
	server storage.ProductServer
}

var _ PriceService = (*PriceClient)(nil)

func NewPriceClient(log *slog.Logger, server storage.ProductServer) *PriceClient {
	return &PriceClient{
		log:    log,
		server: server,
	}
}

// TotalPrice возвращает сумму цен найденных товаров.
// ok == false означает, что суммы нет: товаров не найдено, их слишком много или nLetters некорректен.
// Эти случаи не считаются ошибкой; err возвращается только для прочих ошибок сервера.
func (c *PriceClient) TotalPrice(nLetters int) (float64, bool, error) {
	const op = "service.PriceClient.TotalPrice"
	logger := c.log.With(slog.String("op", op), slog.Int("nLetters", nLetters))

	entries, err := c.server.GetEntries(nLetters)
	if err != nil {
		if errors.Is(err, storage.ErrTooManyResults) || errors.Is(err, storage.ErrInvalidArgument) {
			logger.Warn("total price unavailable", slog.Any("error", err))
			return 0, false, nil
		}
		logger.Error("failed to get entries", slog.Any("error", err))
		return 0, false, errors.Wrap(err, op)
	}

	if len(entries) == 0 {
		logger.Info("no products found")
		return 0, false, nil
	}

	var total float64
	for _, p := range entries {
		total += p.Price
	}

	logger.Debug("total price calculated", slog.Int("count", len(entries)), slog.Float64("total", total))
	return total, true, nil
}
