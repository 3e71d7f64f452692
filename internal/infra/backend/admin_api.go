package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/RoyceAzure/lab/santoral/internal/apperr"
	"github.com/RoyceAzure/lab/santoral/internal/model"
)

type ICategoryAPI interface {
	ListCategories(ctx context.Context, limit, offset int) ([]model.Category, error)
	CreateCategory(ctx context.Context, req model.CategoryRequest) (*model.Category, error)
	UpdateCategory(ctx context.Context, id string, req model.CategoryRequest) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) (string, error)
	GetCategoryProducts(ctx context.Context, id string) ([]model.Product, error)

	AdminGetProduct(ctx context.Context, productID string) (*model.Product, error)
	UpdateProduct(ctx context.Context, productID string, product model.Product) (*model.Product, error)
	UpdateVariant(ctx context.Context, productID string, variant model.Variant) (*model.Variant, error)
	DeleteProduct(ctx context.Context, productID string) (string, error)
}

type IUserAPI interface {
	ListUsers(ctx context.Context, page, limit int) (*model.UsersPage, error)
	EditUser(ctx context.Context, id int64, req model.EditUserRequest) (string, error)
	DeleteUser(ctx context.Context, id int64) (string, error)
}

type INotificationAPI interface {
	GetNotifications(ctx context.Context, userID int64) ([]model.Notification, error)
	DeleteNotification(ctx context.Context, id string) (string, error)
	MarkNotificationsRead(ctx context.Context, userID int64) (string, error)
	CreateGlobalNotification(ctx context.Context, req model.GlobalNotificationRequest) (*model.Notification, error)
	MarkGlobalNotificationRead(ctx context.Context, id string) error
}

type IContactAPI interface {
	CreateContactRequest(ctx context.Context, req model.ContactRequest) (string, error)
	// ListContactRequests always returns a fully populated page.
	ListContactRequests(ctx context.Context, page, limit int) (*model.ContactRequestsPage, error)
	UpdateContactRequestStatus(ctx context.Context, id string, status model.ContactRequestStatus) (string, error)
	DeleteContactRequest(ctx context.Context, id string) (string, error)
}

type IDashboardAPI interface {
	GetDashboardStats(ctx context.Context) (*model.DashboardStats, error)
}

var (
	_ ICategoryAPI     = (*Client)(nil)
	_ IUserAPI         = (*Client)(nil)
	_ INotificationAPI = (*Client)(nil)
	_ IContactAPI      = (*Client)(nil)
	_ IDashboardAPI    = (*Client)(nil)
)

type dataEnvelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

func (c *Client) ListCategories(ctx context.Context, limit, offset int) ([]model.Category, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	var res dataEnvelope[[]model.Category]
	if err := c.do(ctx, apperr.OpListCategories, http.MethodGet, "/admin/categories", q, nil, &res); err != nil {
		return nil, err
	}
	if res.Data == nil {
		return []model.Category{}, nil
	}
	return res.Data, nil
}

func (c *Client) CreateCategory(ctx context.Context, req model.CategoryRequest) (*model.Category, error) {
	var res dataEnvelope[model.Category]
	if err := c.do(ctx, apperr.OpCreateCategory, http.MethodPost, "/admin/categories", nil, req, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id string, req model.CategoryRequest) (*model.Category, error) {
	var res dataEnvelope[model.Category]
	if err := c.do(ctx, apperr.OpUpdateCategory, http.MethodPut, "/admin/categories/"+url.PathEscape(id), nil, req, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) (string, error) {
	var res model.MessageResponse
	if err := c.do(ctx, apperr.OpDeleteCategory, http.MethodDelete, "/admin/categories/"+url.PathEscape(id), nil, nil, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

func (c *Client) GetCategoryProducts(ctx context.Context, id string) ([]model.Product, error) {
	var res dataEnvelope[[]model.Product]
	path := "/admin/categories/" + url.PathEscape(id) + "/products"
	if err := c.do(ctx, apperr.OpCategoryProducts, http.MethodGet, path, nil, nil, &res); err != nil {
		return nil, err
	}
	if res.Data == nil {
		return []model.Product{}, nil
	}
	return res.Data, nil
}

func (c *Client) AdminGetProduct(ctx context.Context, productID string) (*model.Product, error) {
	var res dataEnvelope[model.Product]
	if err := c.do(ctx, apperr.OpAdminGetProduct, http.MethodGet, "/admin/categories/product/"+url.PathEscape(productID), nil, nil, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

func (c *Client) UpdateProduct(ctx context.Context, productID string, product model.Product) (*model.Product, error) {
	var updated model.Product
	if err := c.do(ctx, apperr.OpUpdateProduct, http.MethodPut, "/admin/categories/product/"+url.PathEscape(productID), nil, product, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) UpdateVariant(ctx context.Context, productID string, variant model.Variant) (*model.Variant, error) {
	var res struct {
		Message string        `json:"message"`
		Variant model.Variant `json:"variant"`
	}
	path := "/admin/categories/product/variants/" + url.PathEscape(productID)
	if err := c.do(ctx, apperr.OpUpdateVariant, http.MethodPut, path, nil, variant, &res); err != nil {
		return nil, err
	}
	return &res.Variant, nil
}

func (c *Client) DeleteProduct(ctx context.Context, productID string) (string, error) {
	var res model.MessageResponse
	if err := c.do(ctx, apperr.OpDeleteProduct, http.MethodDelete, "/admin/categories/product/"+url.PathEscape(productID), nil, nil, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

func (c *Client) ListUsers(ctx context.Context, page, limit int) (*model.UsersPage, error) {
	res := model.UsersPage{Page: page, Limit: limit}
	if err := c.do(ctx, apperr.OpListUsers, http.MethodGet, "/user/admin", pageQuery(page, limit), nil, &res); err != nil {
		return nil, err
	}
	if res.Users == nil {
		res.Users = []model.User{}
	}
	return &res, nil
}

func (c *Client) EditUser(ctx context.Context, id int64, req model.EditUserRequest) (string, error) {
	var res model.MessageResponse
	if err := c.do(ctx, apperr.OpEditUser, http.MethodPut, "/user/"+strconv.FormatInt(id, 10), nil, req, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int64) (string, error) {
	var res model.MessageResponse
	if err := c.do(ctx, apperr.OpDeleteUser, http.MethodDelete, "/user/admin/users/"+strconv.FormatInt(id, 10), nil, nil, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

func (c *Client) GetNotifications(ctx context.Context, userID int64) ([]model.Notification, error) {
	notifications := []model.Notification{}
	if err := c.do(ctx, apperr.OpGetNotifications, http.MethodGet, "/notifications/"+strconv.FormatInt(userID, 10), nil, nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (c *Client) DeleteNotification(ctx context.Context, id string) (string, error) {
	var res model.MessageResponse
	if err := c.do(ctx, apperr.OpDeleteNotification, http.MethodDelete, "/notifications/"+url.PathEscape(id), nil, nil, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

func (c *Client) MarkNotificationsRead(ctx context.Context, userID int64) (string, error) {
	var res model.MessageResponse
	path := "/notifications/mark-read/" + strconv.FormatInt(userID, 10)
	if err := c.do(ctx, apperr.OpMarkNotificationsRead, http.MethodPut, path, nil, struct{}{}, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

func (c *Client) CreateGlobalNotification(ctx context.Context, req model.GlobalNotificationRequest) (*model.Notification, error) {
	var n model.Notification
	if err := c.do(ctx, apperr.OpCreateGlobalNotification, http.MethodPost, "/notifications/add-global-notification", nil, req, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (c *Client) MarkGlobalNotificationRead(ctx context.Context, id string) error {
	path := "/notifications/global/" + url.PathEscape(id) + "/read"
	return c.do(ctx, apperr.OpMarkGlobalNotificationRead, http.MethodPut, path, nil, struct{}{}, nil)
}

func (c *Client) CreateContactRequest(ctx context.Context, req model.ContactRequest) (string, error) {
	var res model.MessageResponse
	if err := c.do(ctx, apperr.OpCreateContact, http.MethodPost, "/contact-us", nil, req, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

type rawContactPage struct {
	Data       []model.ContactRequest `json:"data"`
	Total      *int                   `json:"total"`
	Page       *int                   `json:"page"`
	TotalPages *int                   `json:"totalPages"`
}

func (c *Client) ListContactRequests(ctx context.Context, page, limit int) (*model.ContactRequestsPage, error) {
	var raw rawContactPage
	if err := c.do(ctx, apperr.OpListContacts, http.MethodGet, "/contact-us", pageQuery(page, limit), nil, &raw); err != nil {
		return nil, err
	}
	return normalizeContactPage(raw, page, limit), nil
}

// normalizeContactPage fills whatever the backend left out.
func normalizeContactPage(raw rawContactPage, page, limit int) *model.ContactRequestsPage {
	res := &model.ContactRequestsPage{
		Data: raw.Data,
		Page: page,
	}
	if res.Data == nil {
		res.Data = []model.ContactRequest{}
	}
	if raw.Total != nil {
		res.Total = *raw.Total
	}
	if raw.Page != nil {
		res.Page = *raw.Page
	}
	if raw.TotalPages != nil {
		res.TotalPages = *raw.TotalPages
	} else {
		res.TotalPages = totalPages(res.Total, limit)
	}
	return res
}

// totalPages is ceil(total/limit), never below 1.
func totalPages(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 1
	}
	pages := (total + limit - 1) / limit
	if pages < 1 {
		return 1
	}
	return pages
}

func (c *Client) UpdateContactRequestStatus(ctx context.Context, id string, status model.ContactRequestStatus) (string, error) {
	var res model.MessageResponse
	path := "/contact-us/" + url.PathEscape(id) + "/status"
	if err := c.do(ctx, apperr.OpUpdateContactStatus, http.MethodPut, path, nil, model.ContactStatusRequest{Status: status}, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

func (c *Client) DeleteContactRequest(ctx context.Context, id string) (string, error) {
	var res model.MessageResponse
	if err := c.do(ctx, apperr.OpDeleteContact, http.MethodDelete, "/contact-us/"+url.PathEscape(id), nil, nil, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

func (c *Client) GetDashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	if err := c.do(ctx, apperr.OpDashboardStats, http.MethodGet, "/dashboard/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
