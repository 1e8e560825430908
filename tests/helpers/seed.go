// seed.go
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

package helpers

import (
	"testing"

	"github.com/google/uuid"
	"github.com/vojtechokenka/nokturo/internal/blocks"
	"github.com/vojtechokenka/nokturo/internal/models"
	"gorm.io/gorm"
)

// CreateTestProfile inserts a profile and returns it.
func CreateTestProfile(t *testing.T, db *gorm.DB, firstName, lastName, role string) models.Profile {
	t.Helper()
	profile := models.Profile{
		ProfileID: uuid.NewString(),
		Email:     firstName + "." + lastName + "@example.com",
		FirstName: firstName,
		LastName:  lastName,
		Role:      role,
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}
	return profile
}

// CreateTestProduct inserts a product with the given description document.
func CreateTestProduct(t *testing.T, db *gorm.DB, name string, doc blocks.Document, version uint64) models.Product {
	t.Helper()
	raw, err := blocks.EncodeDescription(doc)
	if err != nil {
		t.Fatalf("Failed to encode description: %v", err)
	}
	product := models.Product{
		ProductID:          uuid.NewString(),
		Name:               name,
		Description:        models.NewJSON(raw),
		DescriptionVersion: version,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("Failed to create product: %v", err)
	}
	return product
}

// CreateTestComment inserts a root comment anchored to a block selection.
func CreateTestComment(t *testing.T, db *gorm.DB, productID, authorID, blockID, selectedText, content string) models.TextComment {
	t.Helper()
	comment := models.TextComment{
		CommentID:    uuid.NewString(),
		ProductID:    productID,
		AuthorID:     authorID,
		BlockID:      blockID,
		SelectedText: selectedText,
		Content:      content,
	}
	if err := db.Create(&comment).Error; err != nil {
		t.Fatalf("Failed to create comment: %v", err)
	}
	return comment
}

// CreateTestReply inserts a reply under the given parent comment.
func CreateTestReply(t *testing.T, db *gorm.DB, parent models.TextComment, authorID, content string) models.TextComment {
	t.Helper()
	reply := models.TextComment{
		CommentID: uuid.NewString(),
		ProductID: parent.ProductID,
		AuthorID:  authorID,
		ParentID:  &parent.CommentID,
		BlockID:   parent.BlockID,
		Content:   content,
	}
	if err := db.Create(&reply).Error; err != nil {
		t.Fatalf("Failed to create reply: %v", err)
	}
	return reply
}
