// comment_delete.go
//
// Block document engine for the Nokturo studio application
// Copyright (c) 2026 Vojtech Okenka <vojtech@okenka.dev>
//
// This file is part of nokturo.
// nokturo is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// nokturo is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with nokturo.
// If not, see <https://www.gnu.org/licenses/>.

package services

import (
	"fmt"

	"github.com/vojtechokenka/nokturo/internal/comments"
	"github.com/vojtechokenka/nokturo/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// DeleteComment removes a comment and its whole reply subtree. The author
// may delete their own comment; admins may delete any. Returns the ids of
// everything deleted so callers can broadcast the removals.
func DeleteComment(db *gorm.DB, actor *models.Profile, commentID string) ([]string, error) {
	if actor == nil {
		return nil, fmt.Errorf("login required")
	}

	var deleted []string

	err := db.Transaction(func(tx *gorm.DB) error {
		var target models.TextComment
		if err := tx.Session(&gorm.Session{Logger: tx.Logger.LogMode(logger.Silent)}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("comment_id = ?", commentID).
			First(&target).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fmt.Errorf("not found")
			}
			return err
		}

		if target.AuthorID != actor.ProfileID && !actor.CanDeleteAnyComment() {
			return fmt.Errorf("forbidden")
		}

		// Load the whole product's comments to walk the reply tree in one
		// pass instead of issuing a query per level.
		var all []models.TextComment
		if err := tx.Session(&gorm.Session{Logger: tx.Logger.LogMode(logger.Silent)}).
			Where("product_id = ?", target.ProductID).
			Find(&all).Error; err != nil {
			return err
		}

		deleted = comments.CascadeIDs(all, commentID)

		if err := tx.Where("comment_id IN ?", deleted).
			Delete(&models.TextComment{}).Error; err != nil {
			return err
		}

		// Mention notifications for removed comments are dead ends.
		if err := tx.Where("comment_id IN ?", deleted).
			Delete(&models.Notification{}).Error; err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}

// ClearProductComments removes every comment on a product. This is an
// admin moderation action; authors clearing their own threads go through
// DeleteComment. Returns the ids of the removed comments.
func ClearProductComments(db *gorm.DB, actor *models.Profile, productID string) ([]string, error) {
	if actor == nil {
		return nil, fmt.Errorf("login required")
	}
	if !actor.CanDeleteAnyComment() {
		return nil, fmt.Errorf("forbidden")
	}

	var deleted []string

	err := db.Transaction(func(tx *gorm.DB) error {
		var all []models.TextComment
		if err := tx.Session(&gorm.Session{Logger: tx.Logger.LogMode(logger.Silent)}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("product_id = ?", productID).
			Find(&all).Error; err != nil {
			return err
		}
		if len(all) == 0 {
			return nil
		}

		deleted = make([]string, 0, len(all))
		for _, comment := range all {
			deleted = append(deleted, comment.CommentID)
		}

		if err := tx.Where("comment_id IN ?", deleted).
			Delete(&models.TextComment{}).Error; err != nil {
			return err
		}
		return tx.Where("comment_id IN ?", deleted).
			Delete(&models.Notification{}).Error
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}
