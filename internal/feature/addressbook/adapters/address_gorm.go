// Package adapters はaddressbookフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"addressbook_backend/internal/feature/addressbook/domain/entity"
	"addressbook_backend/internal/feature/addressbook/usecase"
)

// addressGorm はAddressRepositoryインターフェースのGORM実装です。
// 本番ではPostgreSQL、テストではインメモリSQLiteで動作します。
type addressGorm struct {
	db *gorm.DB
}

// addressGormがAddressRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.AddressRepository = (*addressGorm)(nil)

// NewAddressRepository は指定されたDB接続でaddressGormリポジトリの新しいインスタンスを生成します。
func NewAddressRepository(db *gorm.DB) *addressGorm {
	return &addressGorm{db: db}
}

// Insert は新しいレコードを永続化します。
// CreatedAtとUpdatedAtはここで明示的に同一時刻で設定します（ORMフックには依存しません）。
func (r *addressGorm) Insert(ctx context.Context, rec *entity.UserAddress) (*entity.UserAddress, error) {
	now := time.Now()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

// FindByID はIDでレコードを取得します。不在の場合はエラーではなく (nil, nil) を返します。
func (r *addressGorm) FindByID(ctx context.Context, id uint) (*entity.UserAddress, error) {
	var rec entity.UserAddress
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// FindAll はすべてのレコードをストアのデフォルト順で返します。
func (r *addressGorm) FindAll(ctx context.Context) ([]entity.UserAddress, error) {
	var recs []entity.UserAddress
	if err := r.db.WithContext(ctx).Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// Update は既存レコードを全フィールド上書きで保存し、UpdatedAtを更新します。
// 楽観ロックは行わないため、同一IDへの並行更新は最後の書き込みが勝ちます。
func (r *addressGorm) Update(ctx context.Context, rec *entity.UserAddress) (*entity.UserAddress, error) {
	rec.UpdatedAt = time.Now()

	if err := r.db.WithContext(ctx).Save(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

// DeleteByID は指定IDのレコードを物理削除します。
func (r *addressGorm) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.UserAddress{}, id).Error
}

// ExistsByID は指定IDのレコードが存在するかを返します。
func (r *addressGorm) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.UserAddress{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// SearchByKeyword は7つのテキストフィールドのいずれかにキーワードが
// 部分一致（大文字小文字無視）するレコードを返します。zip_codeは対象外です。
func (r *addressGorm) SearchByKeyword(ctx context.Context, keyword string) ([]entity.UserAddress, error) {
	pattern := containsPattern(keyword)

	var recs []entity.UserAddress
	if err := r.db.WithContext(ctx).
		Where(`LOWER(name) LIKE ? OR LOWER(phone) LIKE ? OR LOWER(email) LIKE ? OR `+
			`LOWER(street) LIKE ? OR LOWER(city) LIKE ? OR LOWER(state) LIKE ? OR LOWER(country) LIKE ?`,
			pattern, pattern, pattern, pattern, pattern, pattern, pattern).
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// FindByNameContaining はnameへの部分一致（大文字小文字無視）で検索します。
func (r *addressGorm) FindByNameContaining(ctx context.Context, name string) ([]entity.UserAddress, error) {
	var recs []entity.UserAddress
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", containsPattern(name)).
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// FindByCityExact はcityへの完全一致（大文字小文字無視）で検索します。部分一致ではありません。
func (r *addressGorm) FindByCityExact(ctx context.Context, city string) ([]entity.UserAddress, error) {
	var recs []entity.UserAddress
	if err := r.db.WithContext(ctx).
		Where("LOWER(city) = LOWER(?)", city).
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// FindByEmailExact はemailへの完全一致（大文字小文字無視）で検索します。
func (r *addressGorm) FindByEmailExact(ctx context.Context, email string) ([]entity.UserAddress, error) {
	var recs []entity.UserAddress
	if err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// containsPattern はキーワードをLIKE用の部分一致パターンに変換します。
func containsPattern(keyword string) string {
	return "%" + strings.ToLower(keyword) + "%"
}
