package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/library-catalog/catalog/app"
	"github.com/Astemirdum/library-catalog/catalog/cli"
	"github.com/Astemirdum/library-catalog/catalog/config"
	"github.com/Astemirdum/library-catalog/pkg/logger"
)

func main() {
	_ = godotenv.Load() //nolint:errcheck

	if err := cli.NewRootCmd(openCatalog).Execute(); err != nil {
		os.Exit(1)
	}
}

func openCatalog(ctx context.Context) (cli.Store, error) {
	cfg, err := config.Load(config.WithLogLevel(zapcore.WarnLevel))
	if err != nil {
		return nil, err
	}
	c, err := app.OpenCatalog(ctx, cfg, logger.NewLogger(cfg.Log, "catalogctl"))
	if err != nil {
		return nil, err
	}
	return c, nil
}
