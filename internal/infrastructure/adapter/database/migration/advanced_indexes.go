package migration

import (
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/petavatar-credits/internal/domain/port/core"
)

// indexStatement is one idempotent DDL statement with a name for logging
type indexStatement struct {
	name     string
	sql      string
	critical bool
}

// ledgerIndexes back the ledger's uniqueness guarantees and its hot read paths
var ledgerIndexes = []indexStatement{
	{
		name: "ux_transactions_user_payment_ref",
		sql: `CREATE UNIQUE INDEX IF NOT EXISTS ux_transactions_user_payment_ref
			ON transactions (user_id, external_payment_ref)
			WHERE external_payment_ref IS NOT NULL`,
		critical: true,
	},
	{
		name: "idx_transactions_user_created",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_user_created
			ON transactions (user_id, created_at DESC, id DESC)`,
		critical: true,
	},
	{
		name: "idx_transactions_user_kind_related",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_user_kind_related
			ON transactions (user_id, kind, related_id)
			WHERE related_id IS NOT NULL`,
		critical: true,
	},
	{
		name: "fk_transactions_account",
		sql: `DO $$ BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_transactions_account') THEN
				ALTER TABLE transactions ADD CONSTRAINT fk_transactions_account
				FOREIGN KEY (user_id) REFERENCES accounts (user_id) ON DELETE RESTRICT;
			END IF;
		END $$`,
		critical: true,
	},
	{
		name: "chk_transactions_kind",
		sql: `DO $$ BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_transactions_kind') THEN
				ALTER TABLE transactions ADD CONSTRAINT chk_transactions_kind
				CHECK (kind IN ('purchase', 'reward', 'generation', 'refund'));
			END IF;
		END $$`,
		critical: true,
	},
	{
		name: "idx_transactions_created_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
			ON transactions USING BRIN (created_at)
			WITH (pages_per_range = 32)`,
	},
}

// AdvancedIndexManager manages PostgreSQL-specific indexes and constraints gorm cannot express
type AdvancedIndexManager struct {
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		logger: logger,
	}
}

// CreateAdvancedIndexes creates the ledger indexes and constraints
func (m *AdvancedIndexManager) CreateAdvancedIndexes(tx *gorm.DB) error {
	for _, stmt := range ledgerIndexes {
		if err := tx.Exec(stmt.sql).Error; err != nil {
			if stmt.critical {
				m.logger.Error("Failed to create index", map[string]any{
					"index": stmt.name,
					"error": err.Error(),
				})
				return err
			}
			m.logger.Warn("Skipping optional index", map[string]any{
				"index": stmt.name,
				"error": err.Error(),
			})
		}
	}

	m.logger.Info("Ledger indexes created", map[string]any{"count": len(ledgerIndexes)})
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL planner tweaks. Failures are logged, not returned.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(tx *gorm.DB) {
	if err := tx.Exec(`ALTER TABLE transactions ALTER COLUMN user_id SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for user_id", map[string]any{
			"error": err.Error(),
		})
	}
}
