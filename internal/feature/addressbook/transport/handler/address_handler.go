// Package handler はaddressbookフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"addressbook_backend/internal/api"
	"addressbook_backend/internal/feature/addressbook/usecase"
)

// AddressUsecase は住所レコード操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AddressUsecase interface {
	Create(ctx context.Context, dto *api.AddressRecord) (*api.AddressRecord, error)
	GetByID(ctx context.Context, id uint) (*api.AddressRecord, error)
	GetAll(ctx context.Context) ([]api.AddressRecord, error)
	Update(ctx context.Context, id uint, dto *api.AddressRecord) (*api.AddressRecord, error)
	Delete(ctx context.Context, id uint) error
	Search(ctx context.Context, keyword string) ([]api.AddressRecord, error)
	FindByName(ctx context.Context, name string) ([]api.AddressRecord, error)
	FindByCity(ctx context.Context, city string) ([]api.AddressRecord, error)
}

// AddressHandler は住所レコードのHTTPリクエストを処理します。
type AddressHandler struct {
	uc AddressUsecase
}

// NewAddressHandler は指定されたusecaseでAddressHandlerの新しいインスタンスを生成します。
func NewAddressHandler(uc AddressUsecase) *AddressHandler {
	return &AddressHandler{uc: uc}
}

// Create は POST /api/addresses を処理します。
// - リクエストJSONをバインドし、バリデーションエラー時は項目別メッセージ付きで400を返却
// - 成功時は作成されたレコードとともに201を返却
func (h *AddressHandler) Create(c *gin.Context) {
	var req api.AddressRecord
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("address create validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.NewBindingErrorResponse(err))
		return
	}

	created, err := h.uc.Create(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	slog.Info("address created", "id", created.ID)
	c.JSON(http.StatusCreated, created)
}

// GetByID は GET /api/addresses/:id を処理します。
// レコードが存在しない場合はIDを含むメッセージとともに404を返却します。
func (h *AddressHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	rec, err := h.uc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// List は GET /api/addresses を処理し、全レコードを配列で返します。
func (h *AddressHandler) List(c *gin.Context) {
	recs, err := h.uc.GetAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, emptyIfNil(recs))
}

// Update は PUT /api/addresses/:id を処理します。
// - 不正なボディは400、存在しないIDは404を返却
// - 成功時は更新後のレコードとともに200を返却
func (h *AddressHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req api.AddressRecord
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("address update validation failed", "error", err, "id", id, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.NewBindingErrorResponse(err))
		return
	}

	updated, err := h.uc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	slog.Info("address updated", "id", id)
	c.JSON(http.StatusOK, updated)
}

// Delete は DELETE /api/addresses/:id を処理します。
// 成功時はボディなしで204を返却します。
func (h *AddressHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	slog.Info("address deleted", "id", id)
	c.Status(http.StatusNoContent)
}

// Search は GET /api/addresses/search?q=<keyword> を処理します。
// qが空または未指定の場合は全件を返します。
func (h *AddressHandler) Search(c *gin.Context) {
	recs, err := h.uc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, emptyIfNil(recs))
}

// SearchByName は GET /api/addresses/search/name?name=<name> を処理します。
func (h *AddressHandler) SearchByName(c *gin.Context) {
	recs, err := h.uc.FindByName(c.Request.Context(), c.Query("name"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, emptyIfNil(recs))
}

// SearchByCity は GET /api/addresses/search/city?city=<city> を処理します。
func (h *AddressHandler) SearchByCity(c *gin.Context) {
	recs, err := h.uc.FindByCity(c.Request.Context(), c.Query("city"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, emptyIfNil(recs))
}

// parseID はパスパラメータのIDを解析します。不正な値の場合は400を書き込みfalseを返します。
func (h *AddressHandler) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		slog.Warn("invalid address id", "raw", c.Param("id"), "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid address id"})
		return 0, false
	}
	return uint(id), true
}

// respondError はユースケースのエラーをHTTPステータスに対応付けます。
// NotFoundは404、それ以外はインフラ障害として原因をログに残し汎用の500を返します。
func (h *AddressHandler) respondError(c *gin.Context, err error) {
	var notFound *usecase.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Message: notFound.Error()})
		return
	}

	slog.Error("address request failed", "error", err, "path", c.FullPath())
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
}

// emptyIfNil はJSONでnullではなく[]を返すためのガードです。
func emptyIfNil(recs []api.AddressRecord) []api.AddressRecord {
	if recs == nil {
		return []api.AddressRecord{}
	}
	return recs
}
