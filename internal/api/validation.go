package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// init はGinのバリデーターエンジンにカスタムルールを登録します。
// notblank: 空白のみの文字列を拒否（requiredは空文字のみ検出するため）。
// エラーのフィールド名にはjsonタグ名を使用します。
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("notblank", notBlank)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// NewBindingErrorResponse はShouldBindJSONの失敗を400レスポンスボディに変換します。
// validatorのフィールドエラーは項目別メッセージに展開し、
// それ以外（JSON構文エラー等）は汎用メッセージのみを返します。
func NewBindingErrorResponse(err error) ValidationErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ValidationErrorResponse{Message: "invalid request body"}
	}

	resp := ValidationErrorResponse{Message: "validation failed"}
	for _, fe := range verrs {
		resp.Errors = append(resp.Errors, FieldError{
			Field:   fe.Field(),
			Message: messageForTag(fe),
		})
	}
	return resp
}

// messageForTag はバリデーションタグをユーザー向けメッセージに対応付けます。
func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required and must not be blank"
	case "email":
		return "must be a valid email address"
	case "max":
		return fmt.Sprintf("must not exceed %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed on '%s' validation", fe.Tag())
	}
}
