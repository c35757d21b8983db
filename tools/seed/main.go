// Command seed loads lawyers from data/lawyers.json plus sample clients,
// legal resources and news into the configured store.
package main

import (
	"context"
	"flag"
	"time"

	"legalassist/config"
	"legalassist/database"
	contentRepo "legalassist/database/repository/content"
	userRepo "legalassist/database/repository/user"
	"legalassist/database/seed"
	"legalassist/utils"
)

func main() {
	dataPath := flag.String("lawyers", "data/lawyers.json", "path to the lawyer import file")
	flag.Parse()

	config.LoadConfig()
	logger := utils.GetLogger()

	if config.UsesMemoryStorage() {
		logger.Sugar().Fatal("seed: STORAGE_DRIVER=memory has nothing to seed")
	}

	lawyers, err := seed.LoadLawyers(*dataPath)
	if err != nil {
		logger.Sugar().Fatalf("seed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	defer func() { _ = database.Close(context.Background()) }()

	db := database.Database()
	seeder := &seed.Seeder{
		Users:   userRepo.NewMongoUserRepo(db),
		Content: contentRepo.NewMongoContentRepo(db),
	}
	report, err := seeder.Run(ctx, lawyers)
	if err != nil {
		logger.Sugar().Fatalf("seed: %v", err)
	}
	logger.Sugar().Infof("seed: created %d users, %d resources, %d news items", report.Users, report.Resources, report.News)
}
