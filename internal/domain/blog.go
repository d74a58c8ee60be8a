package domain

import "time"

type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
)

type Blog struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	ThumbnailURL string     `json:"thumbnailUrl"`
	Content      string     `json:"content"`
	AuthorEmail  string     `json:"authorEmail"`
	Status       BlogStatus `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// BlogPatch is a moderator edit. Status changes and content changes follow
// different updated-at rules, so the two are kept distinguishable here.
type BlogPatch struct {
	Title        *string     `json:"title"`
	ThumbnailURL *string     `json:"thumbnailUrl"`
	Content      *string     `json:"content"`
	Status       *BlogStatus `json:"status"`
}

func (p BlogPatch) Empty() bool {
	return p.Title == nil && p.ThumbnailURL == nil && p.Content == nil && p.Status == nil
}

type BlogStats struct {
	PerStatus map[BlogStatus]int64 `json:"perStatus"`
	Total     int64                `json:"total"`
}
