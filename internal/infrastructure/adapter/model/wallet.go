package model

import "time"

// Wallet represents the database model for AI token balances
type Wallet struct {
	UserID    uint64    `gorm:"primaryKey"`
	Tokens    int64     `gorm:"not null;default:0;check:tokens >= 0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Wallet
func (Wallet) TableName() string {
	return "wallets"
}

// WalletEntry is one ledger line. (kind, reference) is unique so replays are rejected by the database.
type WalletEntry struct {
	ID           string    `gorm:"primaryKey;size:36"`
	UserID       uint64    `gorm:"not null;index:idx_wallet_entries_user_created,priority:1"`
	Kind         string    `gorm:"not null;size:10;uniqueIndex:idx_wallet_entries_kind_reference,priority:1"`
	Tokens       int64     `gorm:"not null"`
	BalanceAfter int64     `gorm:"not null"`
	Reason       string    `gorm:"size:64"`
	Reference    string    `gorm:"not null;size:128;uniqueIndex:idx_wallet_entries_kind_reference,priority:2"`
	CreatedAt    time.Time `gorm:"not null;index:idx_wallet_entries_user_created,priority:2,sort:desc"`
}

// TableName specifies the table name for WalletEntry
func (WalletEntry) TableName() string {
	return "wallet_entries"
}
