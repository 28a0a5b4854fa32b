// Package domain defines domain-level errors for the blog feature.
package domain

import "errors"

// Domain errors for article operations.
var (
	// ErrArticleNotFound indicates that no article exists for the given slug.
	ErrArticleNotFound = errors.New("no article with this slug found")

	// ErrTitleAlreadyExists indicates a create or update with a title that is
	// already taken by another article.
	ErrTitleAlreadyExists = errors.New("title already exists")

	// ErrSlugAlreadyExists indicates that a new title, while unique itself,
	// normalizes to a slug already taken by another article.
	ErrSlugAlreadyExists = errors.New("slug already exists")

	// ErrTitleNotSluggable indicates a title with no alphanumeric characters,
	// which would produce an empty slug.
	ErrTitleNotSluggable = errors.New("title does not produce a valid slug")
)
