package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/linemk/product-lookup/internal/app"
	"github.com/linemk/product-lookup/internal/config"
	"github.com/linemk/product-lookup/internal/lib/logger"
	"github.com/pkg/errors"
)

func main() {
	// 0 - аргумент не передан, такой запрос даёт "unavailable"
	nLetters := flag.Int("n", 0, "number of leading letters in product name")

	// загрузка конфигурации, флаги разбираются внутри
	cfg := config.MustLoad()

	// логи пишем в stderr, результат - в stdout
	log := logger.SetupLogger(cfg.Env, os.Stderr)
	log.Info("starting lookup", slog.String("env", cfg.Env), slog.Int("nLetters", *nLetters))

	application, err := app.NewApp(log, cfg)
	if err != nil {
		log.Error("failed to initialize app", slog.Any("error", err))
		panic(errors.Wrap(err, "failed to initialize app"))
	}

	if err := run(os.Stdout, application, *nLetters); err != nil {
		log.Error("lookup failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// run печатает найденные товары и их суммарную цену
func run(out io.Writer, application *app.App, nLetters int) error {
	entries, err := application.Server.GetEntries(nLetters)
	if err != nil {
		fmt.Fprintln(out, color.YellowString("entries: %v", err))
	} else {
		for _, p := range entries {
			fmt.Fprintf(out, "%s\t%s\n", color.CyanString("%s", p.Name), formatPrice(p.Price))
		}
	}

	total, ok, err := application.Prices.TotalPrice(nLetters)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, color.RedString("total: unavailable"))
		return nil
	}

	fmt.Fprintln(out, color.GreenString("total: %s", formatPrice(total)))
	return nil
}

func formatPrice(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
