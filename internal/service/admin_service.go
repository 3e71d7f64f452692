package service

import (
	"context"
	"strings"

	"github.com/RoyceAzure/lab/santoral/internal/apperr"
	"github.com/RoyceAzure/lab/santoral/internal/constants"
	"github.com/RoyceAzure/lab/santoral/internal/infra/backend"
	"github.com/RoyceAzure/lab/santoral/internal/infra/cache"
	"github.com/RoyceAzure/lab/santoral/internal/model"
	"github.com/rs/zerolog"
)

// AdminAPI groups the back-office endpoints.
type AdminAPI interface {
	backend.ICategoryAPI
	backend.IUserAPI
	backend.INotificationAPI
	backend.IContactAPI
	backend.IDashboardAPI
}

type IAdminService interface {
	ListCategories(ctx context.Context, limit, offset int) ([]model.Category, error)
	CreateCategory(ctx context.Context, req model.CategoryRequest) (*model.Category, error)
	UpdateCategory(ctx context.Context, id string, req model.CategoryRequest) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) (string, error)
	CategoryProducts(ctx context.Context, id string) ([]model.Product, error)

	GetProduct(ctx context.Context, productID string) (*model.Product, error)
	UpdateProduct(ctx context.Context, productID string, product model.Product) (*model.Product, error)
	UpdateVariant(ctx context.Context, productID string, variant model.Variant) (*model.Variant, error)
	DeleteProduct(ctx context.Context, productID string) (string, error)

	ListUsers(ctx context.Context, page, limit int) (*model.UsersPage, error)
	EditUser(ctx context.Context, id int64, req model.EditUserRequest) (string, error)
	DeleteUser(ctx context.Context, id int64) (string, error)

	Notifications(ctx context.Context, userID int64) ([]model.Notification, error)
	DeleteNotification(ctx context.Context, id string) (string, error)
	MarkNotificationsRead(ctx context.Context, userID int64) (string, error)
	CreateGlobalNotification(ctx context.Context, req model.GlobalNotificationRequest) (*model.Notification, error)
	MarkGlobalNotificationRead(ctx context.Context, id string) error

	CreateContactRequest(ctx context.Context, req model.ContactRequest) (string, error)
	ListContactRequests(ctx context.Context, page, limit int) (*model.ContactRequestsPage, error)
	UpdateContactRequestStatus(ctx context.Context, id string, status model.ContactRequestStatus) (string, error)
	DeleteContactRequest(ctx context.Context, id string) (string, error)

	DashboardStats(ctx context.Context) (*model.DashboardStats, error)
}

type AdminService struct {
	api    AdminAPI
	cache  cache.Cache
	logger *zerolog.Logger
}

var _ IAdminService = (*AdminService)(nil)

// NewAdminService takes the catalog cache so product edits drop stale listings.
func NewAdminService(api AdminAPI, c cache.Cache, logger *zerolog.Logger) *AdminService {
	if c == nil {
		c = cache.NoopCache{}
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &AdminService{
		api:    api,
		cache:  c,
		logger: logger,
	}
}

func required(op apperr.Op, value, msg string) error {
	if strings.TrimSpace(value) == "" {
		return apperr.Validation(op, apperr.CodeValidation, msg)
	}
	return nil
}

func (a *AdminService) dropCatalog(ctx context.Context) {
	for _, p := range []string{productsKeyPattern, productKeyPattern} {
		if _, err := a.cache.DeleteByPattern(ctx, p); err != nil {
			a.logger.Warn().Err(err).Str("pattern", p).Msg("catalog cache invalidation failed")
		}
	}
}

func (a *AdminService) ListCategories(ctx context.Context, limit, offset int) ([]model.Category, error) {
	if limit <= 0 {
		limit = constants.DefaultCategoriesLimit
	}
	if offset < 0 {
		offset = 0
	}
	return a.api.ListCategories(ctx, limit, offset)
}

func validateCategory(op apperr.Op, req model.CategoryRequest) error {
	if err := required(op, req.Code, "El código de la categoría es requerido"); err != nil {
		return err
	}
	return required(op, req.Name, "El nombre de la categoría es requerido")
}

func (a *AdminService) CreateCategory(ctx context.Context, req model.CategoryRequest) (*model.Category, error) {
	if err := validateCategory(apperr.OpCreateCategory, req); err != nil {
		return nil, err
	}
	return a.api.CreateCategory(ctx, req)
}

func (a *AdminService) UpdateCategory(ctx context.Context, id string, req model.CategoryRequest) (*model.Category, error) {
	if err := required(apperr.OpUpdateCategory, id, "El ID de la categoría es requerido"); err != nil {
		return nil, err
	}
	if err := validateCategory(apperr.OpUpdateCategory, req); err != nil {
		return nil, err
	}
	return a.api.UpdateCategory(ctx, id, req)
}

func (a *AdminService) DeleteCategory(ctx context.Context, id string) (string, error) {
	if err := required(apperr.OpDeleteCategory, id, "El ID de la categoría es requerido"); err != nil {
		return "", err
	}
	return a.api.DeleteCategory(ctx, id)
}

func (a *AdminService) CategoryProducts(ctx context.Context, id string) ([]model.Product, error) {
	if err := required(apperr.OpCategoryProducts, id, "El ID de la categoría es requerido"); err != nil {
		return nil, err
	}
	return a.api.GetCategoryProducts(ctx, id)
}

func (a *AdminService) GetProduct(ctx context.Context, productID string) (*model.Product, error) {
	if err := required(apperr.OpAdminGetProduct, productID, "El ID del producto es requerido"); err != nil {
		return nil, err
	}
	return a.api.AdminGetProduct(ctx, productID)
}

func (a *AdminService) UpdateProduct(ctx context.Context, productID string, product model.Product) (*model.Product, error) {
	if err := required(apperr.OpUpdateProduct, productID, "El ID del producto es requerido"); err != nil {
		return nil, err
	}
	updated, err := a.api.UpdateProduct(ctx, productID, product)
	if err != nil {
		return nil, err
	}
	a.dropCatalog(ctx)
	return updated, nil
}

func (a *AdminService) UpdateVariant(ctx context.Context, productID string, variant model.Variant) (*model.Variant, error) {
	if err := required(apperr.OpUpdateVariant, productID, "El ID del producto es requerido"); err != nil {
		return nil, err
	}
	if strings.TrimSpace(variant.VariantID) == "" {
		return nil, apperr.Validation(apperr.OpUpdateVariant, apperr.CodeMissingVariant, "El ID de la variante es requerido")
	}
	updated, err := a.api.UpdateVariant(ctx, productID, variant)
	if err != nil {
		return nil, err
	}
	a.dropCatalog(ctx)
	return updated, nil
}

func (a *AdminService) DeleteProduct(ctx context.Context, productID string) (string, error) {
	if err := required(apperr.OpDeleteProduct, productID, "El ID del producto es requerido"); err != nil {
		return "", err
	}
	msg, err := a.api.DeleteProduct(ctx, productID)
	if err != nil {
		return "", err
	}
	a.dropCatalog(ctx)
	return msg, nil
}

func (a *AdminService) ListUsers(ctx context.Context, page, limit int) (*model.UsersPage, error) {
	page, limit = normalizePage(page, limit, constants.DefaultUsersLimit)
	return a.api.ListUsers(ctx, page, limit)
}

func (a *AdminService) EditUser(ctx context.Context, id int64, req model.EditUserRequest) (string, error) {
	if id <= 0 {
		return "", apperr.Validation(apperr.OpEditUser, apperr.CodeValidation, "ID de usuario inválido")
	}
	if err := required(apperr.OpEditUser, req.Email, "El email es requerido"); err != nil {
		return "", err
	}
	return a.api.EditUser(ctx, id, req)
}

func (a *AdminService) DeleteUser(ctx context.Context, id int64) (string, error) {
	if id <= 0 {
		return "", apperr.Validation(apperr.OpDeleteUser, apperr.CodeValidation, "ID de usuario inválido")
	}
	return a.api.DeleteUser(ctx, id)
}

func (a *AdminService) Notifications(ctx context.Context, userID int64) ([]model.Notification, error) {
	if userID <= 0 {
		return nil, apperr.Validation(apperr.OpGetNotifications, apperr.CodeValidation, "ID de usuario inválido")
	}
	return a.api.GetNotifications(ctx, userID)
}

func (a *AdminService) DeleteNotification(ctx context.Context, id string) (string, error) {
	if err := required(apperr.OpDeleteNotification, id, "El ID de la notificación es requerido"); err != nil {
		return "", err
	}
	return a.api.DeleteNotification(ctx, id)
}

func (a *AdminService) MarkNotificationsRead(ctx context.Context, userID int64) (string, error) {
	if userID <= 0 {
		return "", apperr.Validation(apperr.OpMarkNotificationsRead, apperr.CodeValidation, "ID de usuario inválido")
	}
	return a.api.MarkNotificationsRead(ctx, userID)
}

func (a *AdminService) CreateGlobalNotification(ctx context.Context, req model.GlobalNotificationRequest) (*model.Notification, error) {
	if err := required(apperr.OpCreateGlobalNotification, req.Title, "El título es requerido"); err != nil {
		return nil, err
	}
	if err := required(apperr.OpCreateGlobalNotification, req.Message, "El mensaje es requerido"); err != nil {
		return nil, err
	}
	return a.api.CreateGlobalNotification(ctx, req)
}

func (a *AdminService) MarkGlobalNotificationRead(ctx context.Context, id string) error {
	if err := required(apperr.OpMarkGlobalNotificationRead, id, "El ID de la notificación es requerido"); err != nil {
		return err
	}
	return a.api.MarkGlobalNotificationRead(ctx, id)
}

func (a *AdminService) CreateContactRequest(ctx context.Context, req model.ContactRequest) (string, error) {
	if err := required(apperr.OpCreateContact, req.Email, "El email es requerido"); err != nil {
		return "", err
	}
	if err := required(apperr.OpCreateContact, req.Message, "El mensaje es requerido"); err != nil {
		return "", err
	}
	return a.api.CreateContactRequest(ctx, req)
}

func (a *AdminService) ListContactRequests(ctx context.Context, page, limit int) (*model.ContactRequestsPage, error) {
	page, limit = normalizePage(page, limit, constants.DefaultContactLimit)
	return a.api.ListContactRequests(ctx, page, limit)
}

func (a *AdminService) UpdateContactRequestStatus(ctx context.Context, id string, status model.ContactRequestStatus) (string, error) {
	if err := required(apperr.OpUpdateContactStatus, id, "El ID de la solicitud es requerido"); err != nil {
		return "", err
	}
	if !status.IsValid() {
		return "", apperr.Validation(apperr.OpUpdateContactStatus, apperr.CodeValidation, "Estado de solicitud no permitido")
	}
	return a.api.UpdateContactRequestStatus(ctx, id, status)
}

func (a *AdminService) DeleteContactRequest(ctx context.Context, id string) (string, error) {
	if err := required(apperr.OpDeleteContact, id, "El ID de la solicitud es requerido"); err != nil {
		return "", err
	}
	return a.api.DeleteContactRequest(ctx, id)
}

func (a *AdminService) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	return a.api.GetDashboardStats(ctx)
}
