package model

import (
	"encoding/json"
	"time"
)

type Notification struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id,omitempty"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	IsGlobal  bool      `json:"is_global,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type GlobalNotificationRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

type ContactRequestStatus string

const (
	ContactStatusPending  ContactRequestStatus = "pendiente"
	ContactStatusAnswered ContactRequestStatus = "respondida"
	ContactStatusClosed   ContactRequestStatus = "cerrada"
)

func (s ContactRequestStatus) IsValid() bool {
	switch s {
	case ContactStatusPending, ContactStatusAnswered, ContactStatusClosed:
		return true
	default:
		return false
	}
}

type ContactRequest struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Email     string               `json:"email"`
	Subject   string               `json:"subject"`
	Message   string               `json:"message"`
	Status    ContactRequestStatus `json:"status,omitempty"`
	CreatedAt time.Time            `json:"created_at,omitempty"`
}

type ContactStatusRequest struct {
	Status ContactRequestStatus `json:"status"`
}

// ContactRequestsPage is always fully populated after normalization.
type ContactRequestsPage struct {
	Data       []ContactRequest `json:"data"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
}

// Counts arrive as numbers or numeric strings depending on the SQL driver.
type DayCount struct {
	Day   string      `json:"day"`
	Count json.Number `json:"count"`
}

type ProductCount struct {
	Name  string      `json:"name"`
	Count json.Number `json:"count"`
}

type DashboardStats struct {
	TotalUsers      int            `json:"total_users"`
	NewUsersToday   int            `json:"new_users_today"`
	TotalProducts   int            `json:"total_products"`
	TotalCartItems  int            `json:"total_cart_items"`
	UsersPerDay     []DayCount     `json:"users_per_day"`
	TopCartProducts []ProductCount `json:"top_cart_products"`
}
