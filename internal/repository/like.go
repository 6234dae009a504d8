package repository

import (
	"context"

	"syahi/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// loadLikes returns the like sets of the given targets keyed by target ID.
func loadLikes(ctx context.Context, db *gorm.DB, targetType string, ids []string) (map[string][]string, error) {
	out := make(map[string][]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var likes []models.Like
	err := db.WithContext(ctx).
		Where("target_type = ? AND target_id IN ?", targetType, ids).
		Order("created_at ASC").
		Find(&likes).Error
	if err != nil {
		return nil, err
	}
	for _, l := range likes {
		out[l.TargetID] = append(out[l.TargetID], l.UserID)
	}
	return out, nil
}

// toggleLike removes the caller's like if present, otherwise inserts it.
// The composite key keeps concurrent inserts from duplicating membership.
func toggleLike(ctx context.Context, db *gorm.DB, targetType, targetID, userID string) (bool, error) {
	liked := false
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("target_type = ? AND target_id = ? AND user_id = ?", targetType, targetID, userID).
			Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}

		liked = true
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.Like{
			TargetType: targetType,
			TargetID:   targetID,
			UserID:     userID,
		}).Error
	})
	return liked, err
}

func deleteLikes(tx *gorm.DB, targetType, targetID string) error {
	return tx.Where("target_type = ? AND target_id = ?", targetType, targetID).Delete(&models.Like{}).Error
}
