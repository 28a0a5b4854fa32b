package dto

// LoginReq は/loginエンドポイントのリクエストボディを表します。
// 資格情報の形式チェックは行いません。不一致は常に401として扱われます。
type LoginReq struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}
