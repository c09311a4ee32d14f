package main

import (
	"ngo_portal/config"
	"ngo_portal/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

// InitRegistry registers every collection handle at process start.
// Services resolve their collections from the registry, never from the
// client directly, so a missing registration fails loudly here instead
// of at request time.
func InitRegistry() {
	if err := InitCollections(global.MongoSession, global.ServerConfig); err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections registers the portal's collections in the global
// registry.
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)

	for _, name := range collectionNames() {
		if _, err := global.RegistryCollections.Register(name, db.Collection(name)); err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}
		logrus.Infof("Collection %s registered", name)
	}
	return nil
}
