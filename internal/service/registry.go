package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/RoyceAzure/lab/santoral/internal/infra/backend"
	"github.com/RoyceAzure/lab/santoral/internal/infra/cache"
	"github.com/RoyceAzure/lab/santoral/internal/infra/producer"
	"github.com/RoyceAzure/lab/santoral/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// StorefrontAPI is everything one browser session may call on the backend.
// *backend.Client satisfies it.
type StorefrontAPI interface {
	backend.ICartAPI
	backend.IOrderAPI
	backend.IAuthAPI
	backend.ICatalogAPI
	AdminAPI
}

var _ StorefrontAPI = (*backend.Client)(nil)

// APIFactory builds a backend client with its own cookie jar.
type APIFactory func() (StorefrontAPI, error)

// Storefront is the state of one browser session. Each one owns its backend
// client, so the backend session cookie is never shared.
type Storefront struct {
	ID        string
	Session   *Session
	Cart      *CartStore
	Addresses *AddressSelection
	Checkout  *Checkout
	Orders    *OrderService
	Catalog   *CatalogService
	Admin     *AdminService

	lastSeen atomic.Int64
}

func (sf *Storefront) touch(now time.Time) {
	sf.lastSeen.Store(now.UnixNano())
}

func (sf *Storefront) LastSeen() time.Time {
	return time.Unix(0, sf.lastSeen.Load())
}

type CheckoutPage struct {
	Cart      model.CartSummary `json:"cart"`
	Addresses []model.Address   `json:"addresses"`
	Selected  *model.Address    `json:"selected,omitempty"`
	State     string            `json:"state"`
}

// LoadCheckoutPage fetches the cart and the address list concurrently.
func (sf *Storefront) LoadCheckoutPage(ctx context.Context) (*CheckoutPage, error) {
	page := &CheckoutPage{}
	// no shared cancellation: a failed address call must not abort the cart
	// load, which would reset a valid cart cache
	var g errgroup.Group

	g.Go(func() error {
		summary, err := sf.Cart.LoadSummary(ctx)
		page.Cart = summary
		return err
	})
	g.Go(func() error {
		addresses, err := sf.Orders.Addresses(ctx)
		page.Addresses = addresses
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if a, ok := sf.Addresses.Current(); ok {
		page.Selected = &a
	}
	page.State = sf.Checkout.State().String()
	return page, nil
}

type RegistryOptions struct {
	Publisher     producer.EventPublisher
	Cache         cache.Cache
	CacheTTL      time.Duration
	IdleTTL       time.Duration
	SweepInterval time.Duration
	Logger        *zerolog.Logger
}

// Registry maps session ids to storefronts and evicts idle ones.
type Registry struct {
	newAPI APIFactory
	opts   RegistryOptions
	now    func() time.Time

	mu          sync.RWMutex
	storefronts map[string]*Storefront

	isRunning atomic.Bool
	stopCh    chan struct{}
	wg        sync.WaitGroup
}

func NewRegistry(newAPI APIFactory, opts RegistryOptions) *Registry {
	if opts.Publisher == nil {
		opts.Publisher = producer.NoopEventPublisher{}
	}
	if opts.Cache == nil {
		opts.Cache = cache.NoopCache{}
	}
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = 30 * time.Minute
	}
	if opts.SweepInterval <= 0 {
		opts.SweepInterval = opts.IdleTTL / 2
	}
	if opts.Logger == nil {
		nop := zerolog.Nop()
		opts.Logger = &nop
	}
	return &Registry{
		newAPI:      newAPI,
		opts:        opts,
		now:         time.Now,
		storefronts: make(map[string]*Storefront),
	}
}

func (r *Registry) build(id string) (*Storefront, error) {
	api, err := r.newAPI()
	if err != nil {
		return nil, err
	}
	logger := r.opts.Logger.With().Str("session_id", id).Logger()

	addresses := NewAddressSelection()
	session := NewSession(api, addresses, r.opts.Publisher, &logger, id)
	cart := NewCartStore(api, r.opts.Publisher, &logger, id)
	session.Subscribe(cart)

	return &Storefront{
		ID:        id,
		Session:   session,
		Cart:      cart,
		Addresses: addresses,
		Checkout:  NewCheckout(api, cart, addresses, session, r.opts.Publisher, &logger, id),
		Orders:    NewOrderService(api, &logger),
		Catalog:   NewCatalogService(api, r.opts.Cache, r.opts.CacheTTL, &logger),
		Admin:     NewAdminService(api, r.opts.Cache, &logger),
	}, nil
}

// Get returns the storefront for id and marks it as used.
func (r *Registry) Get(id string) (*Storefront, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sf, ok := r.storefronts[id]
	if ok {
		// touched under the lock so a concurrent Sweep sees the new lastSeen
		sf.touch(r.now())
	}
	return sf, ok
}

// GetOrCreate returns the storefront for id. An empty or unknown id gets a
// fresh storefront under a new id; created reports that case.
func (r *Registry) GetOrCreate(id string) (sf *Storefront, created bool, err error) {
	if id != "" {
		if sf, ok := r.Get(id); ok {
			return sf, false, nil
		}
	}

	newID := uuid.New().String()
	sf, err = r.build(newID)
	if err != nil {
		return nil, false, err
	}
	sf.touch(r.now())

	r.mu.Lock()
	r.storefronts[newID] = sf
	r.mu.Unlock()

	r.opts.Logger.Debug().Str("session_id", newID).Msg("storefront session created")
	return sf, true, nil
}

func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.storefronts, id)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.storefronts)
}

// Sweep drops storefronts idle longer than IdleTTL and returns how many.
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.opts.IdleTTL)

	r.mu.Lock()
	defer r.mu.Unlock()
	evicted := 0
	for id, sf := range r.storefronts {
		if sf.LastSeen().Before(cutoff) {
			delete(r.storefronts, id)
			evicted++
		}
	}
	if evicted > 0 {
		r.opts.Logger.Info().Int("evicted", evicted).Int("remaining", len(r.storefronts)).Msg("idle storefront sessions evicted")
	}
	return evicted
}

func (r *Registry) Start() {
	if !r.isRunning.CompareAndSwap(false, true) {
		return
	}
	r.stopCh = make(chan struct{})
	r.wg.Add(1)
	go r.run()
}

func (r *Registry) run() {
	defer r.wg.Done()
	ticker := time.NewTicker(r.opts.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

func (r *Registry) Stop() {
	if !r.isRunning.CompareAndSwap(true, false) {
		return
	}
	close(r.stopCh)
	r.wg.Wait()
}
