package database

import (
	"fmt"
	"log"

	"learnsphere_backend/internal/config"
	"learnsphere_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := openDialector(&cfg.Database)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if cfg.ResetSchema {
		if err := dropSchema(db); err != nil {
			return nil, err
		}
		log.Println("Database schema dropped")
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}

func openDialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.EffectiveDriver() {
	case "sqlite":
		return sqlite.Open(cfg.Path), nil
	case "postgres":
		if cfg.URL == "" {
			return nil, fmt.Errorf("database.url is required for the postgres driver")
		}
		return postgres.Open(cfg.URL), nil
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
			cfg.ParseTime,
		)
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Migrate creates or updates all tables. Exposed separately so the
// migrate-only boot mode and tests can run it against their own handles.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Learner{},
		&model.LearningSession{},
		&model.KnowledgeGap{},
	)
}

// dropSchema removes owned tables before learners so foreign keys do not
// block the drop. Only runs when the reset flag is set; it destroys all data.
func dropSchema(db *gorm.DB) error {
	return db.Migrator().DropTable(
		&model.LearningSession{},
		&model.KnowledgeGap{},
		&model.Learner{},
	)
}
