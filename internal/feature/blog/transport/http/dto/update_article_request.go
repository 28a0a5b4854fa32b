package dto

// UpdateArticleReq はPATCH /blogs/:slugのリクエストボディを表します。
// 省略されたフィールドは変更されません。slugとcreatedOnはそもそも
// 列挙されていないため、リクエストで上書きすることはできません。
type UpdateArticleReq struct {
	Title   *string `json:"title" binding:"omitempty,max=255"`
	Summary *string `json:"summary" binding:"omitempty,max=65535"`
	Content *string `json:"content" binding:"omitempty,max=65535"`
}
