package migration

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/guidy-app/joblight/internal/domain/entity"
	coreport "github.com/guidy-app/joblight/internal/domain/port/core"
	"github.com/guidy-app/joblight/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// demoUsers are created in development databases so the portfolio and AI endpoints have data to serve
var demoUsers = []model.User{
	{ID: 1, Name: "Amina Ngono", Email: "amina@example.cm", Phone: "670000001", Username: "amina"},
	{ID: 2, Name: "Paul Essomba", Email: "paul@example.cm", Phone: "690000002", Username: "paulessomba"},
}

var demoCV = entity.CVData{
	Professions: []entity.Profession{{Name: "Full-stack Developer"}},
	Summaries:   []entity.Summary{{Text: "Developer based in Douala building payment and HR tools."}},
	Experiences: []entity.Experience{
		{Category: "Experience", Title: "Backend Engineer", Company: "Guidy", Location: "Douala", StartDate: "2022-01", Current: true},
		{Category: "Education", Title: "BSc Computer Science", Company: "Université de Yaoundé I", StartDate: "2017-09", EndDate: "2021-06"},
	},
	Competences: []entity.Competence{{Name: "Go", Level: "Advanced"}, {Name: "PostgreSQL", Level: "Intermediate"}},
	Languages:   []entity.Language{{Name: "French", Level: "Native"}, {Name: "English", Level: "Fluent"}},
}

// SeedDemoData inserts demo users, their CVs and a starting wallet. Existing rows are left alone.
func SeedDemoData(ctx context.Context, db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) error {
	now := timeProvider.Now()
	cvData, err := json.Marshal(demoCV)
	if err != nil {
		return err
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range demoUsers {
			user := u
			verified := now.Add(-24 * time.Hour)
			user.EmailVerifiedAt = &verified
			user.CreatedAt = now
			user.UpdatedAt = now

			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&user).Error; err != nil {
				return err
			}
			doc := model.CVDocument{UserID: user.ID, Data: cvData, UpdatedAt: now}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&doc).Error; err != nil {
				return err
			}
			wallet := model.Wallet{UserID: user.ID, Tokens: 50, CreatedAt: now, UpdatedAt: now}
			created := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&wallet)
			if created.Error != nil {
				return created.Error
			}
			if created.RowsAffected == 0 {
				continue
			}
			entry := model.WalletEntry{
				ID:           uuid.NewString(),
				UserID:       user.ID,
				Kind:         string(entity.EntryCredit),
				Tokens:       wallet.Tokens,
				BalanceAfter: wallet.Tokens,
				Reason:       "seed",
				Reference:    fmt.Sprintf("seed-%d", user.ID),
				CreatedAt:    now,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}

		logger.Info("Seeded demo data", map[string]any{
			"users": len(demoUsers),
		})
		return nil
	})
}
