package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/easeaico/moodmate/internal/types"
)

// chatEntryModel maps to the chat_entries table.
type chatEntryModel struct {
	ID             uint           `gorm:"primaryKey"`
	EntryID        string         `gorm:"size:36;uniqueIndex"`
	UserID         string         `gorm:"size:128;index;not null"`
	MessageText    string         `gorm:"type:text"`
	Mood           string         `gorm:"size:16;not null"`
	SentimentScore *int           ``
	Keywords       datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time      `gorm:"index"`
}

func (chatEntryModel) TableName() string {
	return "chat_entries"
}

// chatEntryRepo stores chat entries in PostgreSQL.
type chatEntryRepo struct {
	db *gorm.DB
}

// NewChatEntryRepo returns a gorm-backed AdminLog.
func NewChatEntryRepo(db *gorm.DB) AdminLog {
	return &chatEntryRepo{db: db}
}

func (r *chatEntryRepo) Append(ctx context.Context, userID string, entry types.ChatEntry) error {
	keywords, err := json.Marshal(entry.Keywords)
	if err != nil {
		return fmt.Errorf("failed to encode keywords: %w", err)
	}
	record := chatEntryModel{
		EntryID:        entry.ID,
		UserID:         userID,
		MessageText:    entry.MessageText,
		Mood:           string(entry.Mood),
		SentimentScore: entry.SentimentScore,
		Keywords:       datatypes.JSON(keywords),
		CreatedAt:      entry.Timestamp,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to insert chat entry: %w", err)
	}
	return nil
}

func (r *chatEntryRepo) ReadAll(ctx context.Context, userID string) ([]types.ChatEntry, error) {
	var records []chatEntryModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query chat entries: %w", err)
	}

	results := make([]types.ChatEntry, 0, len(records))
	for _, record := range records {
		results = append(results, chatEntryFromModel(record))
	}
	return results, nil
}

func (r *chatEntryRepo) Users(ctx context.Context) ([]string, error) {
	var users []string
	if err := r.db.WithContext(ctx).
		Model(&chatEntryModel{}).
		Distinct("user_id").
		Order("user_id").
		Pluck("user_id", &users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *chatEntryRepo) Clear(ctx context.Context, userID string) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&chatEntryModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear chat entries: %w", err)
	}
	return nil
}

// Close is a no-op; the owning Store closes the pool.
func (r *chatEntryRepo) Close() error {
	return nil
}

func chatEntryFromModel(model chatEntryModel) types.ChatEntry {
	var keywords []string
	if len(model.Keywords) > 0 {
		if err := json.Unmarshal(model.Keywords, &keywords); err != nil {
			slog.Warn("failed to decode stored keywords", "entry_id", model.EntryID, "error", err.Error())
		}
	}
	if keywords == nil {
		keywords = []string{}
	}
	return types.ChatEntry{
		ID:             model.EntryID,
		UserID:         model.UserID,
		MessageText:    model.MessageText,
		Mood:           types.Mood(model.Mood),
		SentimentScore: model.SentimentScore,
		Keywords:       keywords,
		Timestamp:      model.CreatedAt,
	}
}
