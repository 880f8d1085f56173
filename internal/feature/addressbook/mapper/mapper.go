// Package mapper はワイヤ表現（api.AddressRecord）と永続化表現（entity.UserAddress）の
// 相互変換を提供します。純粋なフィールドコピーのみで、ビジネスロジックは持ちません。
package mapper

import (
	"addressbook_backend/internal/api"
	"addressbook_backend/internal/feature/addressbook/domain/entity"
)

// ToWire はエンティティをワイヤ表現に変換します。
// タイムスタンプを含むすべてのフィールドをそのままコピーします。nil入力はnilを返します。
func ToWire(e *entity.UserAddress) *api.AddressRecord {
	if e == nil {
		return nil
	}

	createdAt := e.CreatedAt
	updatedAt := e.UpdatedAt
	return &api.AddressRecord{
		ID:        e.ID,
		Name:      e.Name,
		Phone:     e.Phone,
		Email:     e.Email,
		Street:    e.Street,
		City:      e.City,
		State:     e.State,
		ZipCode:   e.ZipCode,
		Country:   e.Country,
		CreatedAt: &createdAt,
		UpdatedAt: &updatedAt,
	}
}

// ToEntity はワイヤ表現をエンティティに変換します。
// タイムスタンプはクライアント入力から決して取り込みません（ストアが割り当てます）。
// nil入力はnilを返します。
func ToEntity(r *api.AddressRecord) *entity.UserAddress {
	if r == nil {
		return nil
	}

	return &entity.UserAddress{
		ID:      r.ID,
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Street:  r.Street,
		City:    r.City,
		State:   r.State,
		ZipCode: r.ZipCode,
		Country: r.Country,
	}
}

// ApplyUpdate は既存エンティティの可変フィールドをワイヤ表現の値で上書きします。
// ID・CreatedAt・UpdatedAtには触れません（UpdatedAtの更新は永続化時のストアの責務です）。
// どちらかがnilの場合は何もしません。
func ApplyUpdate(r *api.AddressRecord, e *entity.UserAddress) {
	if r == nil || e == nil {
		return
	}

	e.Name = r.Name
	e.Phone = r.Phone
	e.Email = r.Email
	e.Street = r.Street
	e.City = r.City
	e.State = r.State
	e.ZipCode = r.ZipCode
	e.Country = r.Country
}

// ToWireList はエンティティのスライスをワイヤ表現のスライスに変換します。
// JSONでnullではなく[]として直列化されるよう、常に非nilスライスを返します。
func ToWireList(recs []entity.UserAddress) []api.AddressRecord {
	out := make([]api.AddressRecord, 0, len(recs))
	for i := range recs {
		out = append(out, *ToWire(&recs[i]))
	}
	return out
}
