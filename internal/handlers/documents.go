// documents.go
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

package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/vojtechokenka/nokturo/internal/blocks"
	"github.com/vojtechokenka/nokturo/internal/i18n"
	"github.com/vojtechokenka/nokturo/internal/services"
	"github.com/vojtechokenka/nokturo/internal/toc"
	"github.com/vojtechokenka/nokturo/internal/types"
	"github.com/vojtechokenka/nokturo/internal/utils"
	"gorm.io/gorm"
)

// DocumentHandler handles product description routes
type DocumentHandler struct {
	DB *gorm.DB
}

// GetDescription handles GET /api/products/:product/description
// @Summary Get product description
// @Description Get the block document and version for a product description. With ?view=rendered the response carries the sanitized read view and heading outline instead of the raw document.
// @Tags Documents
// @Accept json
// @Produce json
// @Param product path string true "Product ID"
// @Param view query string false "Set to 'rendered' for the read view"
// @Success 200 {object} services.DescriptionResult
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /products/{product}/description [get]
func (h *DocumentHandler) GetDescription(c *fiber.Ctx) error {
	product := c.Params("product")

	result, err := services.GetProductDescription(h.DB, product)
	if err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, fmt.Sprintf("Product '%s' not found", product))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getDescription")
	}

	if c.Query("view") == "rendered" {
		view := blocks.Render(result.Document)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"version":  fmt.Sprintf("%d", result.Version),
			"rendered": view.Blocks,
			"outline":  toc.Build(view.Outline, nil),
		})
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// SaveDescription handles POST /api/products/:product/description
// @Summary Save product description
// @Description Save a new block document if the version still matches
// @Tags Documents
// @Accept json
// @Produce json
// @Param product path string true "Product ID"
// @Param body body object true "Document and version"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /products/{product}/description [post]
func (h *DocumentHandler) SaveDescription(c *fiber.Ctx) error {
	product := c.Params("product")

	var body struct {
		Version  types.FlexUint64 `json:"version"`
		Document blocks.Document  `json:"document"`
	}

	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "validation.input")
	}

	if product == "" {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "validation.input")
	}

	newVersion, err := services.SaveProductDescription(h.DB, product, body.Version.Uint64(), body.Document)
	if err != nil {
		if strings.Contains(err.Error(), "E_VERSION") {
			return utils.VersionErrorResponse(c)
		}
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, fmt.Sprintf("Product '%s' not found", product))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "saveDescription")
	}

	return utils.MutationSuccessResponse(c, i18n.T(lang(c), "description.saved"), newVersion)
}

// ImportDescription handles POST /api/products/:product/description/import
// @Summary Import a markdown description
// @Description Convert markdown into a block document and save it
// @Tags Documents
// @Accept json
// @Produce json
// @Param product path string true "Product ID"
// @Param body body object true "Markdown source and version"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /products/{product}/description/import [post]
func (h *DocumentHandler) ImportDescription(c *fiber.Ctx) error {
	product := c.Params("product")

	var body struct {
		Version  types.FlexUint64 `json:"version"`
		Markdown string           `json:"markdown"`
	}

	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "validation.input")
	}

	if product == "" || strings.TrimSpace(body.Markdown) == "" {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "validation.input")
	}

	newVersion, doc, err := services.ImportProductDescription(h.DB, product, body.Version.Uint64(), []byte(body.Markdown))
	if err != nil {
		if strings.Contains(err.Error(), "E_VERSION") {
			return utils.VersionErrorResponse(c)
		}
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, fmt.Sprintf("Product '%s' not found", product))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "importDescription")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"ok":         true,
		"message":    i18n.T(lang(c), "description.import_done"),
		"newVersion": fmt.Sprintf("%d", newVersion),
		"document":   doc,
	})
}
