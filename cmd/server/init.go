package main

import (
	"context"

	"ngo_portal/config"
	authmodels "ngo_portal/internal/api/auth/models"
	contentmodels "ngo_portal/internal/api/content/models"
	donationmodels "ngo_portal/internal/api/donation/models"
	eventmodels "ngo_portal/internal/api/event/models"
	settingmodels "ngo_portal/internal/api/settings/models"
	volunteermodels "ngo_portal/internal/api/volunteer/models"
	"ngo_portal/internal/database"
	"ngo_portal/internal/global"
	"ngo_portal/internal/logger"

	"github.com/sirupsen/logrus"
)

// InitGlobal fills the process-wide state in dependency order: names and
// validator first, then configuration, then logging, then the database.
func InitGlobal() {
	initColNames()
	initValidator()
	initConfig()
	initLogger()
	initDatabase()
}

func initColNames() {
	global.ColNames.Donations = "donations"
	global.ColNames.Events = "events"
	global.ColNames.Galleries = "galleries"
	global.ColNames.Posts = "posts"
	global.ColNames.Volunteers = "volunteers"
	global.ColNames.Settings = "settings"
	global.ColNames.Admins = "admins"
	global.ColNames.Documents = "documents"
	global.ColNames.TeamMembers = "teammembers"

	logrus.Info("Initialized collection names")
}

func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

func initLogger() {
	cfg := logger.DefaultConfig()
	cfg.LogDir = global.ServerConfig.LogDir
	cfg.Level = global.ServerConfig.LogLevel
	if err := logger.Init(cfg); err != nil {
		logrus.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.GetAppLogger().Info("Logger system initialized")
}

func initDatabase() {
	var err error
	global.MongoSession, err = database.GetInstance(global.ServerConfig.MongoDB_ConnectionURI)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}

	dbName := global.ServerConfig.MongoDB_DBName
	if err := database.EnsureCollections(global.MongoSession, dbName, collectionNames()); err != nil {
		logrus.Fatalf("Failed to ensure collections: %v", err)
	}

	db := global.MongoSession.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Donations), donationmodels.Donation{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Events), eventmodels.Event{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Galleries), eventmodels.GalleryItem{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Posts), contentmodels.Post{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Volunteers), volunteermodels.Volunteer{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Settings), settingmodels.Setting{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Admins), authmodels.Admin{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Documents), contentmodels.Document{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.TeamMembers), contentmodels.TeamMember{})

	logger.GetAppLogger().Info("Ensured collections and indexes")
}

// collectionNames returns every collection the portal uses, in the order
// they are registered.
func collectionNames() []string {
	return []string{
		global.ColNames.Donations,
		global.ColNames.Events,
		global.ColNames.Galleries,
		global.ColNames.Posts,
		global.ColNames.Volunteers,
		global.ColNames.Settings,
		global.ColNames.Admins,
		global.ColNames.Documents,
		global.ColNames.TeamMembers,
	}
}
