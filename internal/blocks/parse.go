// parse.go
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

package blocks

import (
	"encoding/json"
	"strings"
)

// ParseDescription accepts a persisted description column value. A JSON
// array is decoded as a block document; anything else is a legacy plain-text
// description and is upgraded to a single-paragraph document on the fly.
// The stored value is never rewritten here; the upgrade only materializes on
// the next explicit save.
func ParseDescription(raw string) Document {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Document{}
	}

	if strings.HasPrefix(trimmed, "[") {
		var doc Document
		if err := json.Unmarshal([]byte(trimmed), &doc); err == nil {
			return doc
		}
	}

	// Legacy text migrated into the JSON column arrives as a JSON string.
	if strings.HasPrefix(trimmed, `"`) {
		var text string
		if err := json.Unmarshal([]byte(trimmed), &text); err == nil {
			raw = text
		}
	}

	return Document{{
		ID:        NewID(),
		Kind:      KindParagraph,
		Paragraph: &Paragraph{Size: SizeNormal, Content: raw},
	}}
}

// EncodeDescription serializes a document for the JSON description column.
func EncodeDescription(doc Document) ([]byte, error) {
	if doc == nil {
		doc = Document{}
	}
	return json.Marshal(doc)
}
