// common.go
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
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/vojtechokenka/nokturo/internal/models"
)

// actorProfile pulls the authenticated profile the auth middleware stored
// in locals. nil means the request was not authenticated.
func actorProfile(c *fiber.Ctx) *models.Profile {
	profile, ok := c.Locals("profile").(*models.Profile)
	if !ok {
		return nil
	}
	return profile
}

// actorID is a convenience for handlers that only need the id.
func actorID(c *fiber.Ctx) string {
	if p := actorProfile(c); p != nil {
		return p.ProfileID
	}
	return ""
}

// lang resolves the response language from the Accept-Language header.
// Only the primary subtag matters, "cs-CZ;q=0.9" resolves to "cs".
func lang(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAcceptLanguage)
	if header == "" {
		return "en"
	}
	tag := header
	for i, r := range header {
		if r == ',' || r == ';' || r == '-' {
			tag = header[:i]
			break
		}
	}
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" || tag == "*" {
		return "en"
	}
	return tag
}
