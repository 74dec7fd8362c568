// Command seed populates the configured database with generated demo
// sites, assets and jobs.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/joho/godotenv"

	"cueron/config"
	"cueron/database"
	"cueron/models"
	"cueron/storage"
)

const (
	siteCount     = 5
	assetsPerSite = 4
	jobsPerSite   = 3
)

var (
	assetTypes   = []string{"HVAC", "Chiller", "Generator", "Elevator", "Pump"}
	serviceTypes = []string{
		models.ServiceTypeAMC,
		models.ServiceTypeRepair,
		models.ServiceTypeInstallation,
		models.ServiceTypeEmergency,
	}
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it")
	}
	config.LoadConfig()

	client, err := database.Connect(config.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Disconnect(client)

	store := storage.NewMongoStore(client, config.DBName)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := seed(ctx, store); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
	log.Println("Seed complete")
}

func seed(ctx context.Context, store storage.Store) error {
	for i := 0; i < siteCount; i++ {
		addr := gofakeit.Address()
		site := models.Site{
			Name:    fmt.Sprintf("%s Plant", gofakeit.Company()),
			Address: &addr.Street,
			City:    &addr.City,
			State:   &addr.State,
			Pincode: &addr.Zip,
		}

		siteID, err := store.InsertOne(ctx, storage.CollectionSite, site)
		if err != nil {
			return fmt.Errorf("seed site: %w", err)
		}

		assetIDs := make([]string, 0, assetsPerSite)
		for j := 0; j < assetsPerSite; j++ {
			serial := gofakeit.UUID()
			model := gofakeit.CarModel()
			asset := models.Asset{
				SiteID:       siteID,
				Name:         fmt.Sprintf("%s Unit %d", gofakeit.ProductName(), j+1),
				Type:         gofakeit.RandomString(assetTypes),
				Status:       models.AssetStatusActive,
				SerialNumber: &serial,
				Model:        &model,
			}

			assetID, err := store.InsertOne(ctx, storage.CollectionAsset, asset)
			if err != nil {
				return fmt.Errorf("seed asset: %w", err)
			}
			assetIDs = append(assetIDs, assetID)
		}

		for j := 0; j < jobsPerSite; j++ {
			desc := gofakeit.Sentence(8)
			req := models.JobRequest{
				ServiceType: gofakeit.RandomString(serviceTypes),
				SiteID:      siteID,
				AssetIDs:    assetIDs[:1+j%assetsPerSite],
				Description: &desc,
			}

			job := models.NewJobFromRequest(req, time.Now().UTC())
			if _, err := store.InsertOne(ctx, storage.CollectionJob, job); err != nil {
				return fmt.Errorf("seed job: %w", err)
			}
		}
	}
	return nil
}

