// Package dto はblogフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// CreateArticleReq represents the request body for POST /blogs.
// Field limits mirror the storage columns (varchar(255) / text).
type CreateArticleReq struct {
	Title   string `json:"title" binding:"required,max=255"`
	Summary string `json:"summary" binding:"required,max=65535"`
	Content string `json:"content" binding:"required,max=65535"`
}
