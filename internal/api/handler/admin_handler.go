package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/santoral/internal/api/dto"
	"github.com/RoyceAzure/lab/santoral/internal/api/response"
	"github.com/RoyceAzure/lab/santoral/internal/model"
	"github.com/go-chi/chi/v5"
)

// AdminHandler serves the back-office plus the public contact form and the
// user's own notifications.
type AdminHandler struct {
	base
}

func NewAdminHandler(resolve StorefrontResolver) *AdminHandler {
	return &AdminHandler{base: newBase(resolve)}
}

//分類

func (h *AdminHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	categories, err := sf.Admin.ListCategories(r.Context(), queryInt(r, "limit"), queryInt(r, "offset"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, categories, "")
}

func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	var req model.CategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	category, err := sf.Admin.CreateCategory(r.Context(), req)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, category, "Categoría creada")
}

func (h *AdminHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	var req model.CategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	category, err := sf.Admin.UpdateCategory(r.Context(), chi.URLParam(r, "categoryId"), req)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, category, "Categoría actualizada")
}

func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	msg, err := sf.Admin.DeleteCategory(r.Context(), chi.URLParam(r, "categoryId"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, msg)
}

func (h *AdminHandler) CategoryProducts(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	products, err := sf.Admin.CategoryProducts(r.Context(), chi.URLParam(r, "categoryId"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, products, "")
}

//商品

func (h *AdminHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	product, err := sf.Admin.GetProduct(r.Context(), chi.URLParam(r, "productId"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, product, "")
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	var req model.Product
	if !decodeJSON(w, r, &req) {
		return
	}
	product, err := sf.Admin.UpdateProduct(r.Context(), chi.URLParam(r, "productId"), req)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, product, "Producto actualizado")
}

func (h *AdminHandler) UpdateVariant(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	var req model.Variant
	if !decodeJSON(w, r, &req) {
		return
	}
	variant, err := sf.Admin.UpdateVariant(r.Context(), chi.URLParam(r, "productId"), req)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, variant, "Variante actualizada")
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	msg, err := sf.Admin.DeleteProduct(r.Context(), chi.URLParam(r, "productId"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, msg)
}

//使用者

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	users, err := sf.Admin.ListUsers(r.Context(), queryInt(r, "page"), queryInt(r, "limit"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, users, "")
}

func (h *AdminHandler) EditUser(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	userID, ok := int64Param(w, r, "userId")
	if !ok {
		return
	}
	var req model.EditUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	msg, err := sf.Admin.EditUser(r.Context(), userID, req)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, msg)
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	userID, ok := int64Param(w, r, "userId")
	if !ok {
		return
	}
	msg, err := sf.Admin.DeleteUser(r.Context(), userID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, msg)
}

//通知

// MyNotifications lists the signed-in user's notifications.
func (h *AdminHandler) MyNotifications(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	var userID int64
	if u := sf.Session.Current(); u != nil {
		userID = u.ID
	}
	notifications, err := sf.Admin.Notifications(r.Context(), userID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, notifications, "")
}

func (h *AdminHandler) MarkMyNotificationsRead(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	var userID int64
	if u := sf.Session.Current(); u != nil {
		userID = u.ID
	}
	msg, err := sf.Admin.MarkNotificationsRead(r.Context(), userID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, msg)
}

func (h *AdminHandler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	msg, err := sf.Admin.DeleteNotification(r.Context(), chi.URLParam(r, "notificationId"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, msg)
}

func (h *AdminHandler) MarkGlobalNotificationRead(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	if err := sf.Admin.MarkGlobalNotificationRead(r.Context(), chi.URLParam(r, "notificationId")); err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, "")
}

func (h *AdminHandler) CreateGlobalNotification(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	var req model.GlobalNotificationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	notification, err := sf.Admin.CreateGlobalNotification(r.Context(), req)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, notification, "Notificación enviada")
}

//聯絡

func (h *AdminHandler) CreateContactRequest(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	var req model.ContactRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	msg, err := sf.Admin.CreateContactRequest(r.Context(), req)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, nil, msg)
}

func (h *AdminHandler) ListContactRequests(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	page, err := sf.Admin.ListContactRequests(r.Context(), queryInt(r, "page"), queryInt(r, "limit"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, page, "")
}

func (h *AdminHandler) UpdateContactRequestStatus(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	var req dto.ContactStatusDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	msg, err := sf.Admin.UpdateContactRequestStatus(r.Context(), chi.URLParam(r, "contactId"), req.Status)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, msg)
}

func (h *AdminHandler) DeleteContactRequest(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	msg, err := sf.Admin.DeleteContactRequest(r.Context(), chi.URLParam(r, "contactId"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, nil, msg)
}

func (h *AdminHandler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	sf, ok := h.storefront(w, r)
	if !ok {
		return
	}
	stats, err := sf.Admin.DashboardStats(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, stats, "")
}
