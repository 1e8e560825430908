// comments.go
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
	"github.com/gofiber/fiber/v2"
	"github.com/vojtechokenka/nokturo/internal/comments"
	"github.com/vojtechokenka/nokturo/internal/i18n"
	"github.com/vojtechokenka/nokturo/internal/models"
	"github.com/vojtechokenka/nokturo/internal/realtime"
	"github.com/vojtechokenka/nokturo/internal/services"
	"github.com/vojtechokenka/nokturo/internal/types"
	"github.com/vojtechokenka/nokturo/internal/utils"
	"gorm.io/gorm"
)

// CommentHandler handles comment routes. Mutations are broadcast on the
// product's realtime channel after commit.
type CommentHandler struct {
	DB  *gorm.DB
	Hub *realtime.Hub
}

// ListComments handles GET /api/products/:product/comments
// @Summary List product comments
// @Description List every comment on a product with authors, oldest first
// @Tags Comments
// @Accept json
// @Produce json
// @Param product path string true "Product ID"
// @Success 200 {array} models.TextComment
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /products/{product}/comments [get]
func (h *CommentHandler) ListComments(c *fiber.Ctx) error {
	product := c.Params("product")

	list, err := services.ListComments(h.DB, product)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "listComments")
	}

	return c.Status(fiber.StatusOK).JSON(list)
}

// CreateComment handles POST /api/products/:product/comments
// @Summary Create a comment
// @Description Create a comment or reply on a product, notifying any tagged profiles
// @Tags Comments
// @Accept json
// @Produce json
// @Param product path string true "Product ID"
// @Param body body services.CommentInput true "Comment"
// @Success 201 {object} models.TextComment
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /products/{product}/comments [post]
func (h *CommentHandler) CreateComment(c *fiber.Ctx) error {
	product := c.Params("product")

	var body struct {
		services.CommentInput
		TaggedUserIDs types.FlexList[string] `json:"taggedUserIds"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "validation.input")
	}

	in := body.CommentInput
	in.ProductID = product
	in.TaggedUserIDs = body.TaggedUserIDs.Slice()

	comment, err := services.CreateComment(h.DB, actorID(c), in)
	if err != nil {
		switch err.Error() {
		case "login required":
			return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "createComment")
		case "comment content is empty", "product_id is required",
			"parent comment not found", "parent comment belongs to a different product":
			return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "createComment")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "createComment")
	}

	h.Hub.Publish(product, comments.ChangeEvent{
		Type: comments.EventInsert,
		New:  comment,
	})

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// UpdateComment handles PATCH /api/comments/:id
// @Summary Update a comment
// @Description Change a comment's content; only the author may edit
// @Tags Comments
// @Accept json
// @Produce json
// @Param id path string true "Comment ID"
// @Param body body object true "New content"
// @Success 200 {object} models.TextComment
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /comments/{id} [patch]
func (h *CommentHandler) UpdateComment(c *fiber.Ctx) error {
	id := c.Params("id")

	var body struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, "validation.input")
	}

	comment, err := services.UpdateComment(h.DB, actorID(c), id, body.Content)
	if err != nil {
		switch err.Error() {
		case "login required", "forbidden":
			return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "updateComment")
		case "not found":
			return utils.NotFoundResponse(c, "Comment not found")
		case "comment content is empty":
			return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "updateComment")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "updateComment")
	}

	h.Hub.Publish(comment.ProductID, comments.ChangeEvent{
		Type: comments.EventUpdate,
		New:  comment,
	})

	return c.Status(fiber.StatusOK).JSON(comment)
}

// DeleteComment handles DELETE /api/comments/:id
// @Summary Delete a comment
// @Description Delete a comment and its reply subtree
// @Tags Comments
// @Accept json
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} utils.DeletedResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *fiber.Ctx) error {
	id := c.Params("id")

	// Load before delete so the broadcast can carry the product channel.
	var target models.TextComment
	if err := h.DB.Where("comment_id = ?", id).First(&target).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.NotFoundResponse(c, "Comment not found")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "deleteComment")
	}

	deleted, err := services.DeleteComment(h.DB, actorProfile(c), id)
	if err != nil {
		switch err.Error() {
		case "login required", "forbidden":
			return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "deleteComment")
		case "not found":
			return utils.NotFoundResponse(c, "Comment not found")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "deleteComment")
	}

	for _, deletedID := range deleted {
		old := models.TextComment{CommentID: deletedID, ProductID: target.ProductID}
		h.Hub.Publish(target.ProductID, comments.ChangeEvent{
			Type: comments.EventDelete,
			Old:  &old,
		})
	}

	return utils.DeletedResponse(c, i18n.T(lang(c), "comments.deleted"), deleted)
}

// ClearComments handles DELETE /api/products/:product/comments
// @Summary Clear product comments
// @Description Remove every comment on a product; admin moderation only
// @Tags Comments
// @Accept json
// @Produce json
// @Param product path string true "Product ID"
// @Success 200 {object} utils.DeletedResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /products/{product}/comments [delete]
func (h *CommentHandler) ClearComments(c *fiber.Ctx) error {
	product := c.Params("product")

	deleted, err := services.ClearProductComments(h.DB, actorProfile(c), product)
	if err != nil {
		switch err.Error() {
		case "login required", "forbidden":
			return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "clearComments")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "clearComments")
	}

	for _, deletedID := range deleted {
		old := models.TextComment{CommentID: deletedID, ProductID: product}
		h.Hub.Publish(product, comments.ChangeEvent{
			Type: comments.EventDelete,
			Old:  &old,
		})
	}

	return utils.DeletedResponse(c, i18n.T(lang(c), "comments.deleted"), deleted)
}
