package main

import (
	"context"
	"time"

	seedservices "ngo_portal/internal/api/seed/service"
	"ngo_portal/internal/global"
	"ngo_portal/internal/logger"
)

// InitDefaultData runs the idempotent seed on boot when INITMODE is on.
// The seed only touches empty collections, so restarts never duplicate
// data.
func InitDefaultData() {
	if !global.ServerConfig.InitMode {
		return
	}

	log := logger.GetAppLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	result, err := seedservices.NewSeedService().Run(ctx)
	if err != nil {
		log.WithError(err).Error("Boot seed failed, continuing without seed data")
		return
	}
	if result.AdminCreated {
		log.WithField("username", seedservices.DefaultAdminUsername).
			Warn("Default admin created, log in and change the password")
	}
}
