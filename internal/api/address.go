// Package api はHTTP境界で共有されるリクエスト/レスポンス型を定義します。
package api

import "time"

// AddressRecord は住所レコードのワイヤ表現です。
// id / createdAt / updatedAt はサーバー側で割り当てられ、入力時には無視されます。
// バリデーションはGinのbindingタグで宣言します。
type AddressRecord struct {
	ID        uint       `json:"id,omitempty"`
	Name      string     `json:"name" binding:"required,notblank,max=100"`
	Phone     string     `json:"phone,omitempty" binding:"omitempty,max=20"`
	Email     string     `json:"email,omitempty" binding:"omitempty,email,max=100"`
	Street    string     `json:"street,omitempty" binding:"omitempty,max=255"`
	City      string     `json:"city,omitempty" binding:"omitempty,max=100"`
	State     string     `json:"state,omitempty" binding:"omitempty,max=100"`
	ZipCode   string     `json:"zipCode,omitempty" binding:"omitempty,max=20"`
	Country   string     `json:"country,omitempty" binding:"omitempty,max=100"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// ErrorResponse は単一メッセージのエラーレスポンスボディです。
type ErrorResponse struct {
	Message string `json:"message"`
}

// FieldError は1つの入力項目に対するバリデーションエラーです。
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse は項目別メッセージ付きの400レスポンスボディです。
type ValidationErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}
