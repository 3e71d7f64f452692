package service

import (
	"context"
	"sync"

	"github.com/RoyceAzure/lab/santoral/internal/model"
	"github.com/RoyceAzure/lab/santoral/internal/model/event"
	"github.com/shopspring/decimal"
)

type eventRecorder struct {
	mu     sync.Mutex
	events []event.Event
}

func (r *eventRecorder) Publish(_ context.Context, evt event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	return nil
}

func (r *eventRecorder) types() []event.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]event.EventType, 0, len(r.events))
	for _, e := range r.events {
		res = append(res, e.Type())
	}
	return res
}

func (r *eventRecorder) last() event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return nil
	}
	return r.events[len(r.events)-1]
}

func cartWith(unitPrice int64, quantity int) model.CartSummary {
	price := decimal.NewFromInt(unitPrice)
	return model.CartSummary{
		Items: []model.CartItem{{
			CartItemID: 7,
			ProductID:  "p1",
			VariantID:  "v1",
			Name:       "San Miguel Arcángel",
			UnitPrice:  price,
			Quantity:   quantity,
		}},
		Total:            price.Mul(decimal.NewFromInt(int64(quantity))),
		TotalUniqueItems: 1,
		TotalQuantity:    quantity,
	}
}

func testAddress(id int64) model.Address {
	return model.Address{
		ID:              id,
		Direccion:       "Calle 10 # 5-20",
		Departamento:    "Antioquia",
		Ciudad:          "Medellín",
		Barrio:          "Laureles",
		TipoDomicilio:   model.TipoDomicilioResidencia,
		NombreContacto:  "María",
		CelularContacto: "3001234567",
	}
}
