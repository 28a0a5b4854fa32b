// Package entity defines the domain entities for the blog feature.
package entity

import "time"

// Article represents a published blog article.
// The slug is derived from the title once at creation time and never changes,
// even when the title is edited later. Both title and slug carry unique
// indexes; the index names are matched against duplicate-key errors to tell
// the two conflicts apart.
type Article struct {
	// ID is the internal identifier; the public identifier is the slug.
	ID uint `gorm:"primaryKey"`

	// Title is the article headline. It must be unique across all articles.
	Title string `gorm:"uniqueIndex:uq_articles_title;size:255;not null"`

	// Slug is the URL-safe identifier derived from the title at creation time.
	Slug string `gorm:"uniqueIndex:uq_articles_slug;size:255;not null"`

	// Summary is a short teaser shown in the article list.
	Summary string `gorm:"type:text;not null"`

	// Content is the article body.
	Content string `gorm:"type:text;not null"`

	// CreatedAt is set once at creation and never mutated afterwards.
	CreatedAt time.Time

	// UpdatedAt is the timestamp of the last edit.
	UpdatedAt time.Time
}
