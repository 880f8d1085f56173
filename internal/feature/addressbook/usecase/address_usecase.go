package usecase

import (
	"context"
	"strings"

	"addressbook_backend/internal/api"
	"addressbook_backend/internal/feature/addressbook/domain/entity"
	"addressbook_backend/internal/feature/addressbook/mapper"
)

// AddressRepository は住所レコードの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type AddressRepository interface {
	// Insert は新しいレコードを永続化し、IDとタイムスタンプを割り当てて返します。
	Insert(ctx context.Context, rec *entity.UserAddress) (*entity.UserAddress, error)

	// FindByID はIDでレコードを取得します。
	// 不在は有効な結果であり、エラーではなく (nil, nil) を返します。
	FindByID(ctx context.Context, id uint) (*entity.UserAddress, error)

	// FindAll はすべてのレコードをストアのデフォルト順で返します。
	FindAll(ctx context.Context) ([]entity.UserAddress, error)

	// Update は既存レコードを上書き保存し、UpdatedAtを更新します。
	// 呼び出し側がレコードの存在を確認済みであることが前提です。
	Update(ctx context.Context, rec *entity.UserAddress) (*entity.UserAddress, error)

	// DeleteByID は指定IDのレコードを物理削除します。
	DeleteByID(ctx context.Context, id uint) error

	// ExistsByID は指定IDのレコードが存在するかを返します。
	ExistsByID(ctx context.Context, id uint) (bool, error)

	// SearchByKeyword はname/phone/email/street/city/state/countryのいずれかに
	// キーワードが部分一致（大文字小文字無視）するレコードを返します。
	SearchByKeyword(ctx context.Context, keyword string) ([]entity.UserAddress, error)

	// FindByNameContaining はnameへの部分一致（大文字小文字無視）で検索します。
	FindByNameContaining(ctx context.Context, name string) ([]entity.UserAddress, error)

	// FindByCityExact はcityへの完全一致（大文字小文字無視）で検索します。
	FindByCityExact(ctx context.Context, city string) ([]entity.UserAddress, error)
}

// AddressUsecase は住所レコードのCRUDと検索のビジネスロジックを提供します。
// NotFoundの判定と「空クエリは全件を返す」ポリシーを所有します。
type AddressUsecase struct {
	repo AddressRepository
}

// NewAddressUsecase は指定されたリポジトリでAddressUsecaseの新しいインスタンスを生成します。
func NewAddressUsecase(repo AddressRepository) *AddressUsecase {
	return &AddressUsecase{repo: repo}
}

// Create は新しい住所レコードを永続化し、割り当てられたIDとタイムスタンプ付きで返します。
// クライアントが指定したid/タイムスタンプは取り込まれません。
func (u *AddressUsecase) Create(ctx context.Context, dto *api.AddressRecord) (*api.AddressRecord, error) {
	rec := mapper.ToEntity(dto)
	// IDはサーバー割り当て
	rec.ID = 0

	saved, err := u.repo.Insert(ctx, rec)
	if err != nil {
		return nil, err
	}
	return mapper.ToWire(saved), nil
}

// GetByID はIDでレコードを1件取得します。
// 存在しない場合は*NotFoundErrorを返します。
func (u *AddressUsecase) GetByID(ctx context.Context, id uint) (*api.AddressRecord, error) {
	rec, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, newAddressNotFound(id)
	}
	return mapper.ToWire(rec), nil
}

// GetAll はすべてのレコードをストア順で返します。
func (u *AddressUsecase) GetAll(ctx context.Context) ([]api.AddressRecord, error) {
	recs, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.ToWireList(recs), nil
}

// Update は既存レコードの可変フィールドをdtoの値で上書きして保存します。
// IDとCreatedAtはdtoの内容にかかわらず保持されます。
// レコードが存在しない場合は*NotFoundErrorを返し、ストアには書き込みません。
func (u *AddressUsecase) Update(ctx context.Context, id uint, dto *api.AddressRecord) (*api.AddressRecord, error) {
	existing, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, newAddressNotFound(id)
	}

	mapper.ApplyUpdate(dto, existing)
	saved, err := u.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}
	return mapper.ToWire(saved), nil
}

// Delete は指定IDのレコードを削除します。
// 存在確認を先に行い、存在しない場合は*NotFoundErrorを返します。
func (u *AddressUsecase) Delete(ctx context.Context, id uint) error {
	exists, err := u.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return newAddressNotFound(id)
	}
	return u.repo.DeleteByID(ctx, id)
}

// Search はキーワードで全文検索します。
// キーワードがトリム後に空の場合はGetAllと同一の結果を返します。
func (u *AddressUsecase) Search(ctx context.Context, keyword string) ([]api.AddressRecord, error) {
	trimmed := strings.TrimSpace(keyword)
	if trimmed == "" {
		return u.GetAll(ctx)
	}

	recs, err := u.repo.SearchByKeyword(ctx, trimmed)
	if err != nil {
		return nil, err
	}
	return mapper.ToWireList(recs), nil
}

// FindByName はnameへの部分一致検索を委譲します。空文字の特別扱いはしません。
func (u *AddressUsecase) FindByName(ctx context.Context, name string) ([]api.AddressRecord, error) {
	recs, err := u.repo.FindByNameContaining(ctx, name)
	if err != nil {
		return nil, err
	}
	return mapper.ToWireList(recs), nil
}

// FindByCity はcityへの完全一致検索（大文字小文字無視）を委譲します。
func (u *AddressUsecase) FindByCity(ctx context.Context, city string) ([]api.AddressRecord, error) {
	recs, err := u.repo.FindByCityExact(ctx, city)
	if err != nil {
		return nil, err
	}
	return mapper.ToWireList(recs), nil
}
