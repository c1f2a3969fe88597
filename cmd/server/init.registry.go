package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"chat_grow/config"
	"chat_grow/internal/database"
	"chat_grow/internal/global"
	"chat_grow/internal/logger"
)

// InitGlobal khởi tạo các biến toàn cục: config server và kết nối MongoDB.
func InitGlobal() {
	var err error

	global.ServerConfig, err = config.NewConfig()
	if err != nil {
		logrus.Fatalf("Failed to initialize config: %v", err)
	}
	logrus.Info("Initialized server config")

	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")
}

// InitRegistry đăng ký các collection vào registry và tạo indexes.
func InitRegistry() {
	db := global.MongoDB_Session.Database(global.ServerConfig.MongoDB_DBName)

	colNames := []string{
		global.MongoDB_ColNames.Businesses,
		global.MongoDB_ColNames.CrmCustomers,
		global.MongoDB_ColNames.BookingEvents,
		global.MongoDB_ColNames.BookingRegistrations,
		global.MongoDB_ColNames.BookingAppointments,
		global.MongoDB_ColNames.PaymentTransactions,
		global.MongoDB_ColNames.LandingPages,
		global.MongoDB_ColNames.LandingPageVisits,
		global.MongoDB_ColNames.GrowthSourceStats,
		global.MongoDB_ColNames.GrowthDirtyDays,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Fatalf("Failed to register collection %s: %v", name, err)
		}
		if !registered {
			logrus.Warnf("Collection %s already registered", name)
		}
	}
	logrus.Info("Initialized collection registry")

	if err := database.CreateIndexes(context.TODO(), db); err != nil {
		logger.GetAppLogger().WithError(err).Error("Failed to create indexes, continuing startup")
	} else {
		logrus.Info("Created database indexes")
	}
}
