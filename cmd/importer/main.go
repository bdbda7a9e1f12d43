// Command importer copies a vocabulary assets directory into Postgres.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/ZoVoS/welsh-advanced/internal/assets"
	"github.com/ZoVoS/welsh-advanced/internal/config"
	"github.com/ZoVoS/welsh-advanced/internal/repository"
	"github.com/ZoVoS/welsh-advanced/internal/storage/db"

	"go.uber.org/zap"
)

func main() {
	dir := flag.String("dir", "", "assets directory to import (defaults to provider.assets_dir)")
	flag.Parse()

	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	assetsDir := *dir
	if assetsDir == "" {
		assetsDir = cfg.Provider.AssetsDir
	}

	conn, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}
	defer conn.Close()

	ctx := context.Background()
	store := assets.NewStore(assetsDir)
	repo := repository.NewRepository(conn)

	categories, err := store.Categories(ctx)
	if err != nil {
		logger.Fatal("failed read categories", zap.Error(err))
	}

	total := 0
	for _, category := range categories {
		items, err := store.Items(ctx, category.ID)
		if err != nil {
			logger.Warn("skipping category", zap.String("category", category.ID), zap.Error(err))
			continue
		}

		if err := repo.AddCategory(ctx, category); err != nil {
			logger.Fatal("failed add category", zap.String("category", category.ID), zap.Error(err))
		}
		for _, item := range items {
			if err := repo.AddItem(ctx, category.ID, item); err != nil {
				logger.Fatal("failed add item", zap.String("category", category.ID), zap.String("item", item.ID), zap.Error(err))
			}
		}

		total += len(items)
		logger.Info("imported category", zap.String("category", category.ID), zap.Int("items", len(items)))
	}

	logger.Info("import finished", zap.Int("categories", len(categories)), zap.Int("items", total))
}
