package service

import (
	"context"
	"strings"

	"github.com/RoyceAzure/lab/santoral/internal/apperr"
	"github.com/RoyceAzure/lab/santoral/internal/infra/backend"
	"github.com/RoyceAzure/lab/santoral/internal/model"
	"github.com/rs/zerolog"
)

type IOrderService interface {
	Addresses(ctx context.Context) ([]model.Address, error)
	// RegisterAddress 驗證必填欄位後新增地址
	//
	// 必填: direccion, departamento, ciudad, barrio, nombre_contacto, celular_contacto
	// tipo_domicilio 空白時預設為 residencia
	RegisterAddress(ctx context.Context, address model.Address) (*model.Address, error)
	// SelectAddress looks addressID up in the user's list and selects it.
	SelectAddress(ctx context.Context, sel *AddressSelection, addressID int64) (*model.Address, error)
	// SelectLatestAddress re-reads the list and selects its last entry,
	// which is the address registered most recently.
	SelectLatestAddress(ctx context.Context, sel *AddressSelection) (*model.Address, error)
	MyOrders(ctx context.Context) ([]model.Order, error)
	AllOrders(ctx context.Context) ([]model.AdminOrder, error)
	UpdateStatus(ctx context.Context, order model.AdminOrder, newStatus model.OrderStatus) (string, error)
}

type OrderService struct {
	api    backend.IOrderAPI
	logger *zerolog.Logger
}

var _ IOrderService = (*OrderService)(nil)

func NewOrderService(api backend.IOrderAPI, logger *zerolog.Logger) *OrderService {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &OrderService{
		api:    api,
		logger: logger,
	}
}

func (o *OrderService) Addresses(ctx context.Context) ([]model.Address, error) {
	return o.api.GetAddresses(ctx)
}

func (o *OrderService) RegisterAddress(ctx context.Context, address model.Address) (*model.Address, error) {
	if err := validateAddress(&address); err != nil {
		return nil, err
	}
	return o.api.RegisterAddress(ctx, address)
}

func validateAddress(a *model.Address) error {
	required := []struct {
		field string
		value string
	}{
		{"direccion", a.Direccion},
		{"departamento", a.Departamento},
		{"ciudad", a.Ciudad},
		{"barrio", a.Barrio},
		{"nombre_contacto", a.NombreContacto},
		{"celular_contacto", a.CelularContacto},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return apperr.Validation(apperr.OpRegisterAddress, apperr.CodeValidation, "El campo "+r.field+" es requerido")
		}
	}

	if a.TipoDomicilio == "" {
		a.TipoDomicilio = model.TipoDomicilioResidencia
	}
	if !a.TipoDomicilio.IsValid() {
		return apperr.Validation(apperr.OpRegisterAddress, apperr.CodeValidation, "tipo_domicilio debe ser residencia o laboral")
	}
	return nil
}

func (o *OrderService) SelectAddress(ctx context.Context, sel *AddressSelection, addressID int64) (*model.Address, error) {
	if addressID <= 0 {
		return nil, apperr.Validation(apperr.OpGetAddresses, apperr.CodeValidation, "Debes seleccionar una dirección de envío.")
	}
	addresses, err := o.api.GetAddresses(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range addresses {
		if a.ID == addressID {
			sel.Select(a)
			return &a, nil
		}
	}
	return nil, apperr.BusinessRule(apperr.OpGetAddresses, apperr.CodeNotFound, "Dirección no encontrada")
}

func (o *OrderService) SelectLatestAddress(ctx context.Context, sel *AddressSelection) (*model.Address, error) {
	addresses, err := o.api.GetAddresses(ctx)
	if err != nil {
		return nil, err
	}
	if len(addresses) == 0 {
		return nil, apperr.BusinessRule(apperr.OpGetAddresses, apperr.CodeNotFound, "Dirección no encontrada")
	}
	latest := addresses[len(addresses)-1]
	sel.Select(latest)
	return &latest, nil
}

func (o *OrderService) MyOrders(ctx context.Context) ([]model.Order, error) {
	return o.api.GetMyOrders(ctx)
}

func (o *OrderService) AllOrders(ctx context.Context) ([]model.AdminOrder, error) {
	return o.api.GetAllOrders(ctx)
}

// UpdateStatus checks the transition against the order as the backend
// reports it. The caller's order only supplies the id; its status and user
// are not trusted.
func (o *OrderService) UpdateStatus(ctx context.Context, order model.AdminOrder, newStatus model.OrderStatus) (string, error) {
	if order.OrderID <= 0 || newStatus == "" {
		return "", apperr.Validation(apperr.OpUpdateOrderStatus, apperr.CodeValidation, "Debe proporcionar el ID del pedido y el nuevo estado.")
	}
	if order.Status == model.OrderStatusCancelado {
		return "", apperr.ErrOrderCancelled
	}
	if !newStatus.AdminSettable() {
		return "", apperr.ErrInvalidOrderStatus
	}

	current, err := o.findOrder(ctx, order.OrderID)
	if err != nil {
		return "", err
	}
	if current.Status == model.OrderStatusCancelado {
		o.logger.Warn().
			Int64("order_id", order.OrderID).
			Str("claimed_status", string(order.Status)).
			Msg("status change rejected for cancelled order")
		return "", apperr.ErrOrderCancelled
	}

	msg, err := o.api.UpdateOrderStatus(ctx, model.UpdateOrderStatusRequest{
		OrderID:   current.OrderID,
		NewStatus: newStatus,
		UserID:    current.UserID,
	})
	if err != nil {
		o.logger.Error().Err(err).Int64("order_id", order.OrderID).Msg("failed to update order status")
		return "", err
	}
	return msg, nil
}

func (o *OrderService) findOrder(ctx context.Context, orderID int64) (*model.AdminOrder, error) {
	orders, err := o.api.GetAllOrders(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].OrderID == orderID {
			return &orders[i], nil
		}
	}
	return nil, apperr.BusinessRule(apperr.OpUpdateOrderStatus, apperr.CodeNotFound, "Pedido no encontrado")
}
