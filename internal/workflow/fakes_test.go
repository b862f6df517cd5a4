package workflow_test

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"github.com/INFIxChatnify/mercur/internal/domain"
	"github.com/INFIxChatnify/mercur/internal/port"
)

// In-memory collaborators with per-operation failure injection, so saga
// rollback can be observed without a database.

type fakeSellers struct {
	mu sync.Mutex

	byAuth      map[string]domain.Seller
	sellers     map[uuid.UUID]domain.Seller
	members     map[uuid.UUID]domain.Member
	onboardings map[uuid.UUID]domain.SellerOnboarding

	fail map[string]error
}

func newFakeSellers() *fakeSellers {
	return &fakeSellers{
		byAuth:      map[string]domain.Seller{},
		sellers:     map[uuid.UUID]domain.Seller{},
		members:     map[uuid.UUID]domain.Member{},
		onboardings: map[uuid.UUID]domain.SellerOnboarding{},
		fail:        map[string]error{},
	}
}

func (f *fakeSellers) addSeller(authIdentityID string) domain.Seller {
	f.mu.Lock()
	defer f.mu.Unlock()

	seller := domain.Seller{ID: uuid.New(), Name: "seller", Handle: "seller"}
	f.sellers[seller.ID] = seller
	f.byAuth[authIdentityID] = seller
	return seller
}

func (f *fakeSellers) ResolveSellerForCaller(_ context.Context, authIdentityID string) (domain.Seller, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	seller, ok := f.byAuth[authIdentityID]
	if !ok {
		return domain.Seller{}, domain.ErrUnauthorized
	}
	return seller, nil
}

func (f *fakeSellers) GetSeller(_ context.Context, id uuid.UUID) (domain.Seller, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	seller, ok := f.sellers[id]
	if !ok {
		return domain.Seller{}, domain.ErrNotFound
	}
	return seller, nil
}

func (f *fakeSellers) ListSellers(_ context.Context, _ domain.Page) ([]domain.Seller, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var sellers []domain.Seller
	for _, s := range f.sellers {
		sellers = append(sellers, s)
	}
	return sellers, int64(len(sellers)), nil
}

func (f *fakeSellers) InsertSeller(_ context.Context, seller domain.Seller) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.fail["InsertSeller"]; err != nil {
		return uuid.Nil, err
	}

	seller.ID = uuid.New()
	if seller.Handle == "" {
		seller.Handle = domain.ToHandle(seller.Name)
	}
	f.sellers[seller.ID] = seller
	return seller.ID, nil
}

func (f *fakeSellers) InsertMember(_ context.Context, member domain.Member) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.fail["InsertMember"]; err != nil {
		return uuid.Nil, err
	}

	member.ID = uuid.New()
	f.members[member.ID] = member
	f.byAuth[member.AuthIdentityID] = f.sellers[member.SellerID]
	return member.ID, nil
}

func (f *fakeSellers) InsertOnboarding(_ context.Context, onboarding domain.SellerOnboarding) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.fail["InsertOnboarding"]; err != nil {
		return uuid.Nil, err
	}

	onboarding.ID = uuid.New()
	f.onboardings[onboarding.ID] = onboarding
	return onboarding.ID, nil
}

func (f *fakeSellers) DeleteSeller(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.sellers, id)
	return nil
}

func (f *fakeSellers) DeleteMember(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.members, id)
	return nil
}

func (f *fakeSellers) DeleteOnboarding(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.onboardings, id)
	return nil
}

type fakeProducts struct {
	mu sync.Mutex

	products map[uuid.UUID]domain.Product
	fail     map[string]error
}

func newFakeProducts() *fakeProducts {
	return &fakeProducts{
		products: map[uuid.UUID]domain.Product{},
		fail:     map[string]error{},
	}
}

func (f *fakeProducts) GetProduct(_ context.Context, id uuid.UUID) (domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	product, ok := f.products[id]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return product, nil
}

func (f *fakeProducts) InsertProduct(_ context.Context, product domain.Product) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.fail["InsertProduct"]; err != nil {
		return uuid.Nil, err
	}

	product.ID = uuid.New()
	for i := range product.Variants {
		product.Variants[i].ID = uuid.New()
		product.Variants[i].ProductID = product.ID
	}
	f.products[product.ID] = product
	return product.ID, nil
}

func (f *fakeProducts) DeleteProduct(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.products, id)
	return nil
}

func (f *fakeProducts) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.products)
}

type fakeDigitalProducts struct {
	mu sync.Mutex

	products map[uuid.UUID]domain.DigitalProduct
	medias   *fakeMedias
	fail     map[string]error
}

func newFakeDigitalProducts(medias *fakeMedias) *fakeDigitalProducts {
	return &fakeDigitalProducts{
		products: map[uuid.UUID]domain.DigitalProduct{},
		medias:   medias,
		fail:     map[string]error{},
	}
}

func (f *fakeDigitalProducts) GetDigitalProduct(ctx context.Context, id uuid.UUID) (domain.DigitalProduct, error) {
	f.mu.Lock()
	dp, ok := f.products[id]
	f.mu.Unlock()

	if !ok {
		return domain.DigitalProduct{}, domain.ErrNotFound
	}

	if f.medias != nil {
		medias, err := f.medias.ListMedias(ctx, id)
		if err != nil {
			return domain.DigitalProduct{}, err
		}
		dp.Medias = medias
	}

	return dp, nil
}

func (f *fakeDigitalProducts) ListDigitalProducts(ctx context.Context, filter domain.DigitalProductFilter, _ domain.Page) ([]domain.DigitalProduct, int64, error) {
	f.mu.Lock()
	var ids []uuid.UUID
	for id := range f.products {
		ids = append(ids, id)
	}
	f.mu.Unlock()

	var results []domain.DigitalProduct
	for _, id := range ids {
		dp, err := f.GetDigitalProduct(ctx, id)
		if err != nil {
			return nil, 0, err
		}
		results = append(results, dp)
	}
	return results, int64(len(results)), nil
}

func (f *fakeDigitalProducts) InsertDigitalProduct(_ context.Context, dp domain.DigitalProduct) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.fail["InsertDigitalProduct"]; err != nil {
		return uuid.Nil, err
	}

	dp.ID = uuid.New()
	f.products[dp.ID] = dp
	return dp.ID, nil
}

func (f *fakeDigitalProducts) SoftDeleteDigitalProduct(_ context.Context, id uuid.UUID) error {
	return f.DeleteDigitalProduct(context.Background(), id)
}

func (f *fakeDigitalProducts) DeleteDigitalProduct(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.products, id)
	return nil
}

func (f *fakeDigitalProducts) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.products)
}

type fakeMedias struct {
	mu sync.Mutex

	medias map[uuid.UUID]domain.Media
	fail   map[string]error
}

func newFakeMedias() *fakeMedias {
	return &fakeMedias{
		medias: map[uuid.UUID]domain.Media{},
		fail:   map[string]error{},
	}
}

func (f *fakeMedias) ListMedias(_ context.Context, digitalProductID uuid.UUID) ([]domain.Media, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var results []domain.Media
	for _, m := range f.medias {
		if m.DigitalProductID == digitalProductID {
			results = append(results, m)
		}
	}
	return results, nil
}

func (f *fakeMedias) EnsureMedias(ctx context.Context, digitalProductID uuid.UUID, batch []domain.Media) (all, created []domain.Media, err error) {
	f.mu.Lock()
	if err := f.fail["EnsureMedias"]; err != nil {
		f.mu.Unlock()
		return nil, nil, err
	}

	existing := map[domain.MediaKey]struct{}{}
	for _, m := range f.medias {
		if m.DigitalProductID == digitalProductID {
			existing[m.Key()] = struct{}{}
		}
	}

	for _, media := range batch {
		if _, ok := existing[media.Key()]; ok {
			continue
		}
		existing[media.Key()] = struct{}{}

		media.ID = uuid.New()
		media.DigitalProductID = digitalProductID
		f.medias[media.ID] = media
		created = append(created, media)
	}
	f.mu.Unlock()

	all, err = f.ListMedias(ctx, digitalProductID)
	return all, created, err
}

func (f *fakeMedias) DeleteMedias(_ context.Context, ids []uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, id := range ids {
		delete(f.medias, id)
	}
	return nil
}

func (f *fakeMedias) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.medias)
}

type fakeRequests struct {
	mu sync.Mutex

	requests map[uuid.UUID]domain.Request
	order    []uuid.UUID
	fail     map[string]error
}

func newFakeRequests() *fakeRequests {
	return &fakeRequests{
		requests: map[uuid.UUID]domain.Request{},
		fail:     map[string]error{},
	}
}

func (f *fakeRequests) GetRequest(_ context.Context, id uuid.UUID) (domain.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	req, ok := f.requests[id]
	if !ok {
		return domain.Request{}, domain.ErrNotFound
	}
	return req, nil
}

func (f *fakeRequests) ListRequests(_ context.Context, filter port.RequestFilter, _ domain.Page) ([]domain.Request, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var results []domain.Request
	for _, req := range f.requests {
		results = append(results, req)
	}
	return results, int64(len(results)), nil
}

func (f *fakeRequests) FindOpenRequest(_ context.Context, submitterID string, requestType domain.RequestType) (domain.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, req := range f.requests {
		if req.SubmitterID == submitterID && req.Type == requestType && req.Status.Open() {
			return req, nil
		}
	}
	return domain.Request{}, domain.ErrNotFound
}

func (f *fakeRequests) FindLatestRequest(_ context.Context, submitterID string, requestType domain.RequestType) (domain.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := len(f.order) - 1; i >= 0; i-- {
		req := f.requests[f.order[i]]
		if req.SubmitterID == submitterID && req.Type == requestType {
			return req, nil
		}
	}
	return domain.Request{}, domain.ErrNotFound
}

func (f *fakeRequests) InsertRequest(_ context.Context, request domain.Request) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.fail["InsertRequest"]; err != nil {
		return uuid.Nil, err
	}

	request.ID = uuid.New()
	f.requests[request.ID] = request
	f.order = append(f.order, request.ID)
	return request.ID, nil
}

func (f *fakeRequests) UpdateRequestStatus(_ context.Context, id uuid.UUID, status domain.RequestStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	req, ok := f.requests[id]
	if !ok {
		return domain.ErrNotFound
	}
	req.Status = status
	f.requests[id] = req
	return nil
}

func (f *fakeRequests) UpdateRequestData(_ context.Context, id uuid.UUID, data json.RawMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	req, ok := f.requests[id]
	if !ok {
		return domain.ErrNotFound
	}
	req.Data = data
	f.requests[id] = req
	return nil
}

func (f *fakeRequests) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

type fakeOrders struct {
	mu sync.Mutex

	orders map[uuid.UUID]domain.DigitalProductOrder
	fail   map[string]error
}

func newFakeOrders() *fakeOrders {
	return &fakeOrders{
		orders: map[uuid.UUID]domain.DigitalProductOrder{},
		fail:   map[string]error{},
	}
}

func (f *fakeOrders) GetOrder(_ context.Context, id uuid.UUID) (domain.DigitalProductOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	order, ok := f.orders[id]
	if !ok {
		return domain.DigitalProductOrder{}, domain.ErrNotFound
	}
	return order, nil
}

func (f *fakeOrders) InsertOrder(_ context.Context, order domain.DigitalProductOrder) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.fail["InsertOrder"]; err != nil {
		return uuid.Nil, err
	}

	order.ID = uuid.New()
	f.orders[order.ID] = order
	return order.ID, nil
}

func (f *fakeOrders) DeleteOrder(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.orders, id)
	return nil
}

type emitted struct {
	name    string
	payload any
}

type fakeEmitter struct {
	mu sync.Mutex

	events []emitted
	err    error
}

func (f *fakeEmitter) Emit(_ context.Context, name string, payload any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}

	f.events = append(f.events, emitted{name: name, payload: payload})
	return nil
}

func (f *fakeEmitter) names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	var names []string
	for _, e := range f.events {
		names = append(names, e.name)
	}
	return names
}
