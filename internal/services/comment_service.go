// comment_service.go
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
	"strings"

	"github.com/google/uuid"
	"github.com/vojtechokenka/nokturo/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// CommentInput is the request body for creating a comment.
type CommentInput struct {
	ProductID     string   `json:"product_id"`
	ParentID      *string  `json:"parent_id,omitempty"`
	Content       string   `json:"content"`
	BlockID       string   `json:"block_id"`
	SelectedText  string   `json:"selected_text,omitempty"`
	StartOffset   *int     `json:"start_offset,omitempty"`
	EndOffset     *int     `json:"end_offset,omitempty"`
	TaggedUserIDs []string `json:"taggedUserIds,omitempty"`
}

// ListComments returns every comment on a product with its author joined,
// oldest first so reply threads read top down.
func ListComments(db *gorm.DB, productID string) ([]models.TextComment, error) {
	var list []models.TextComment
	err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Preload("Author").
		Where("product_id = ?", productID).
		Order("created_at ASC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// CreateComment validates and stores a new comment or reply, then creates
// a mention notification for every tagged profile except the author.
func CreateComment(db *gorm.DB, authorID string, in CommentInput) (*models.TextComment, error) {
	if authorID == "" {
		return nil, fmt.Errorf("login required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, fmt.Errorf("comment content is empty")
	}
	if in.ProductID == "" {
		return nil, fmt.Errorf("product_id is required")
	}

	comment := models.TextComment{
		CommentID:    uuid.NewString(),
		ProductID:    in.ProductID,
		AuthorID:     authorID,
		ParentID:     in.ParentID,
		Content:      in.Content,
		BlockID:      in.BlockID,
		SelectedText: in.SelectedText,
		StartOffset:  in.StartOffset,
		EndOffset:    in.EndOffset,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if in.ParentID != nil {
			// Replies anchor to their root's selection, never their own.
			var parent models.TextComment
			if err := tx.Session(&gorm.Session{Logger: tx.Logger.LogMode(logger.Silent)}).
				Where("comment_id = ?", *in.ParentID).
				First(&parent).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return fmt.Errorf("parent comment not found")
				}
				return err
			}
			if parent.ProductID != in.ProductID {
				return fmt.Errorf("parent comment belongs to a different product")
			}
			comment.BlockID = parent.BlockID
			comment.SelectedText = ""
			comment.StartOffset = nil
			comment.EndOffset = nil
		}

		if err := tx.Create(&comment).Error; err != nil {
			return err
		}

		for _, profileID := range in.TaggedUserIDs {
			if profileID == "" || profileID == authorID {
				continue
			}
			notification := models.Notification{
				NotificationID: uuid.NewString(),
				ProfileID:      profileID,
				ActorID:        authorID,
				CommentID:      comment.CommentID,
				Kind:           models.NotificationMention,
			}
			if err := tx.Create(&notification).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Reload with the author joined so the caller can broadcast a complete record.
	if err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Preload("Author").
		Where("comment_id = ?", comment.CommentID).
		First(&comment).Error; err != nil {
		return nil, err
	}

	return &comment, nil
}

// UpdateComment changes a comment's content. Only the author may edit.
func UpdateComment(db *gorm.DB, actorID, commentID, content string) (*models.TextComment, error) {
	if actorID == "" {
		return nil, fmt.Errorf("login required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("comment content is empty")
	}

	var comment models.TextComment
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{Logger: tx.Logger.LogMode(logger.Silent)}).
			Where("comment_id = ?", commentID).
			First(&comment).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fmt.Errorf("not found")
			}
			return err
		}

		if comment.AuthorID != actorID {
			return fmt.Errorf("forbidden")
		}

		return tx.Model(&comment).Update("content", content).Error
	})
	if err != nil {
		return nil, err
	}

	if err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Preload("Author").
		Where("comment_id = ?", commentID).
		First(&comment).Error; err != nil {
		return nil, err
	}

	return &comment, nil
}
