// document_service.go
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

	"github.com/vojtechokenka/nokturo/internal/blocks"
	"github.com/vojtechokenka/nokturo/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// DescriptionResult is the API output for a product description read.
type DescriptionResult struct {
	ProductID string          `json:"product_id"`
	Version   uint64          `json:"version"`
	Document  blocks.Document `json:"document"`
}

// GetProductDescription loads a product's description and decodes it into
// a block document. Descriptions written before the block editor existed
// are plain text; those come back as a single paragraph block.
func GetProductDescription(db *gorm.DB, productID string) (*DescriptionResult, error) {
	var product models.Product
	err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Where("product_id = ?", productID).
		First(&product).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("not found")
		}
		return nil, err
	}

	doc := blocks.ParseDescription(product.Description.String())

	return &DescriptionResult{
		ProductID: product.ProductID,
		Version:   product.DescriptionVersion,
		Document:  doc,
	}, nil
}

// SaveProductDescription writes a new description document if version
// still matches the stored one. A mismatch returns E_VERSION; the caller
// maps that to a conflict response.
func SaveProductDescription(db *gorm.DB, productID string, version uint64, doc blocks.Document) (uint64, error) {
	var newVersion uint64

	err := db.Transaction(func(tx *gorm.DB) error {
		// Lock and check version
		var product models.Product
		if err := tx.Session(&gorm.Session{Logger: tx.Logger.LogMode(logger.Silent)}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("product_id = ?", productID).
			First(&product).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fmt.Errorf("not found")
			}
			return err
		}

		if product.DescriptionVersion != version {
			return fmt.Errorf("E_VERSION")
		}

		raw, err := blocks.EncodeDescription(doc)
		if err != nil {
			return err
		}

		newVersion = product.DescriptionVersion + 1
		result := tx.Model(&product).
			Where("description_version = ?", product.DescriptionVersion).
			Updates(map[string]interface{}{
				"description":         models.NewJSON(raw),
				"description_version": newVersion,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("E_VERSION - Failed to update description due to concurrent modification")
		}

		return nil
	})

	return newVersion, err
}

// ImportProductDescription converts markdown source into a block document
// and saves it through the same versioned path as a normal save.
func ImportProductDescription(db *gorm.DB, productID string, version uint64, markdown []byte) (uint64, blocks.Document, error) {
	doc := blocks.ImportMarkdown(markdown)

	newVersion, err := SaveProductDescription(db, productID, version, doc)
	if err != nil {
		return 0, nil, err
	}
	return newVersion, doc, nil
}
