// Package usecase はaddressbookフィーチャーのビジネスロジックを実装します。
package usecase

import "fmt"

// NotFoundError は指定IDのレコードが存在しないことを示します。
// エンティティ種別とIDを保持し、HTTP層で404に変換されます。
type NotFoundError struct {
	Entity string
	ID     uint
}

// Error はIDを含むメッセージを返します。
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id: %d", e.Entity, e.ID)
}

// newAddressNotFound はAddressRecord用のNotFoundErrorを生成します。
func newAddressNotFound(id uint) *NotFoundError {
	return &NotFoundError{Entity: "AddressRecord", ID: id}
}
