package models

import "time"

// TextComment anchors a discussion to a selected substring of a block's
// rendered text. selected_text must be a literal substring of the block
// text at creation time; a later edit can orphan the anchor, in which case
// the comment still lists and opens but no longer highlights. parent_id
// forms the reply tree.
type TextComment struct {
	CommentID    string  `gorm:"type:char(36);primaryKey" json:"id"`
	ProductID    string  `gorm:"type:char(36);not null;index" json:"product_id"`
	AuthorID     string  `gorm:"type:char(36);not null;index" json:"author_id"`
	ParentID     *string `gorm:"type:char(36);index" json:"parent_id,omitempty"`
	Content      string  `gorm:"type:text;not null" json:"content"`
	BlockID      string  `gorm:"size:64;not null;index" json:"block_id"`
	SelectedText string  `gorm:"type:text" json:"selected_text"`
	StartOffset  *int    `json:"start_offset,omitempty"`
	EndOffset    *int    `json:"end_offset,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Author *Profile `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// TableName overrides the table name for TextComment
func (TextComment) TableName() string {
	return "text_comments"
}

// IsRoot reports whether the comment anchors a highlight (replies never do).
func (c TextComment) IsRoot() bool {
	return c.ParentID == nil
}
