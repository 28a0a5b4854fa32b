// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// RegisterReq represents the request body for the /register endpoint.
// The login name must be email-shaped. The password limit matches bcrypt's
// 72-byte input maximum; anything longer would fail hashing.
type RegisterReq struct {
	Name     string `json:"name" binding:"required,email"`
	Password string `json:"password" binding:"required,max=72"`
}
