package migration

import "context"

// indexes holds what GORM tags cannot express
var indexes = map[string]string{
	// expiry sweep and reconciliation scan only pending rows
	"idx_transactions_pending_created": `CREATE INDEX IF NOT EXISTS idx_transactions_pending_created
		ON transactions (created_at) WHERE status = 'pending'`,
	"idx_transactions_unsettled": `CREATE INDEX IF NOT EXISTS idx_transactions_unsettled
		ON transactions (reference) WHERE status = 'success' AND settled = FALSE`,
	"idx_users_username_lower": `CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username_lower
		ON users (LOWER(username))`,
	"idx_share_events_created_brin": `CREATE INDEX IF NOT EXISTS idx_share_events_created_brin
		ON share_events USING BRIN (created_at) WITH (pages_per_range = 32)`,
	"idx_webhook_events_received_brin": `CREATE INDEX IF NOT EXISTS idx_webhook_events_received_brin
		ON webhook_events USING BRIN (received_at) WITH (pages_per_range = 32)`,
}

func (m *MigrationManager) createIndexes(ctx context.Context) error {
	for name, ddl := range indexes {
		if err := m.db.WithContext(ctx).Exec(ddl).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": name,
				"error": err.Error(),
			})
			return err
		}
	}
	return nil
}

// tuneStorage lowers fillfactor on tables updated in place on every view
// and spend. Failures are logged only.
func (m *MigrationManager) tuneStorage(ctx context.Context) {
	for _, table := range []string{"portfolio_stats", "wallets", "transactions"} {
		if err := m.db.WithContext(ctx).Exec("ALTER TABLE " + table + " SET (fillfactor = 90)").Error; err != nil {
			m.logger.Warn("Failed to set fillfactor", map[string]any{
				"table": table,
				"error": err.Error(),
			})
		}
	}
}
