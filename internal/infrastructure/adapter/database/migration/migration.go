package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/core"
	"github.com/amirhossein-jamali/petavatar-credits/internal/infrastructure/adapter/model"
)

// step is one schema version. Steps run in order, each in its own transaction.
type step struct {
	version string
	details string
	apply   func(m *MigrationManager, tx *gorm.DB) error
}

var steps = []step{
	{
		version: "1.0.0",
		details: "accounts, transactions and generation records",
		apply: func(m *MigrationManager, tx *gorm.DB) error {
			if err := tx.AutoMigrate(&model.Account{}, &model.Transaction{}, &model.Generation{}); err != nil {
				return err
			}
			if err := m.advancedIndexMgr.CreateAdvancedIndexes(tx); err != nil {
				return err
			}
			m.advancedIndexMgr.CreatePerformanceTweaks(tx)
			return nil
		},
	},
	{
		version: "1.1.0",
		details: "request guards",
		apply: func(_ *MigrationManager, tx *gorm.DB) error {
			return tx.AutoMigrate(&model.RequestGuard{})
		},
	},
}

// CurrentSchemaVersion is the version the last step brings the database to
var CurrentSchemaVersion = steps[len(steps)-1].version

// MigrationManager manages database migrations
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	advancedIndexMgr *AdvancedIndexManager
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		advancedIndexMgr: NewAdvancedIndexManager(logger),
	}
}

// MigrateAll applies every pending step
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	db := m.db.WithContext(ctx)

	if err := db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	applied, err := m.appliedVersions(ctx)
	if err != nil {
		m.logger.Error("Failed to read applied schema versions", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	pending := 0
	for _, s := range steps {
		if applied[s.version] {
			continue
		}
		pending++

		m.logger.Info("Applying schema migration", map[string]any{
			"version": s.version,
			"details": s.details,
		})

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := s.apply(m, tx); err != nil {
				return err
			}
			return tx.Create(&model.MigrationVersion{
				Version:   s.version,
				AppliedAt: m.timeProvider.Now(),
				Details:   s.details,
			}).Error
		})
		if err != nil {
			m.logger.Error("Schema migration failed", map[string]any{
				"version": s.version,
				"error":   err.Error(),
			})
			return fmt.Errorf("migration %s: %w", s.version, err)
		}
	}

	m.logger.Info("Database schema up to date", map[string]any{
		"version": CurrentSchemaVersion,
		"applied": pending,
	})
	return nil
}

// GetCurrentVersion returns the most recently applied version, or "" for an empty database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	var versions []model.MigrationVersion
	err := m.db.WithContext(ctx).Order("applied_at DESC, id DESC").Limit(1).Find(&versions).Error
	if err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", nil
	}
	return versions[0].Version, nil
}

func (m *MigrationManager) appliedVersions(ctx context.Context) (map[string]bool, error) {
	var versions []string
	if err := m.db.WithContext(ctx).Model(&model.MigrationVersion{}).Pluck("version", &versions).Error; err != nil {
		return nil, err
	}
	applied := make(map[string]bool, len(versions))
	for _, v := range versions {
		applied[v] = true
	}
	return applied, nil
}
