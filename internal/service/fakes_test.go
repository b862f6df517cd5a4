package service_test

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"github.com/INFIxChatnify/mercur/internal/domain"
	"github.com/INFIxChatnify/mercur/internal/port"
)

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
		if len(filter.SubmitterIDs) > 0 && filter.SubmitterIDs[0] != req.SubmitterID {
			continue
		}
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

	request.ID = uuid.New()
	f.requests[request.ID] = request
	f.order = append(f.order, request.ID)
	return request.ID, nil
}

func (f *fakeRequests) UpdateRequestStatus(_ context.Context, id uuid.UUID, status domain.RequestStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.fail["UpdateRequestStatus"]; err != nil {
		return err
	}

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

type fakeProducts struct {
	mu sync.Mutex

	products map[uuid.UUID]domain.Product
	err      error
}

func newFakeProducts() *fakeProducts {
	return &fakeProducts{products: map[uuid.UUID]domain.Product{}}
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

	if f.err != nil {
		return uuid.Nil, f.err
	}

	product.ID = uuid.New()
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

type fakeSellers struct {
	mu sync.Mutex

	byAuth      map[string]domain.Seller
	sellers     map[uuid.UUID]domain.Seller
	members     map[uuid.UUID]domain.Member
	onboardings map[uuid.UUID]domain.SellerOnboarding
}

func newFakeSellers() *fakeSellers {
	return &fakeSellers{
		byAuth:      map[string]domain.Seller{},
		sellers:     map[uuid.UUID]domain.Seller{},
		members:     map[uuid.UUID]domain.Member{},
		onboardings: map[uuid.UUID]domain.SellerOnboarding{},
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
	return nil, 0, nil
}

func (f *fakeSellers) InsertSeller(_ context.Context, seller domain.Seller) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

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

	member.ID = uuid.New()
	f.members[member.ID] = member
	return member.ID, nil
}

func (f *fakeSellers) InsertOnboarding(_ context.Context, onboarding domain.SellerOnboarding) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

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

type fakeDigitalProducts struct {
	mu sync.Mutex

	products map[uuid.UUID]domain.DigitalProduct
}

func newFakeDigitalProducts() *fakeDigitalProducts {
	return &fakeDigitalProducts{products: map[uuid.UUID]domain.DigitalProduct{}}
}

func (f *fakeDigitalProducts) GetDigitalProduct(_ context.Context, id uuid.UUID) (domain.DigitalProduct, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	dp, ok := f.products[id]
	if !ok {
		return domain.DigitalProduct{}, domain.ErrNotFound
	}
	return dp, nil
}

func (f *fakeDigitalProducts) ListDigitalProducts(_ context.Context, _ domain.DigitalProductFilter, _ domain.Page) ([]domain.DigitalProduct, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var results []domain.DigitalProduct
	for _, dp := range f.products {
		results = append(results, dp)
	}
	return results, int64(len(results)), nil
}

func (f *fakeDigitalProducts) InsertDigitalProduct(_ context.Context, dp domain.DigitalProduct) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

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

type fakeFiles struct {
	mu sync.Mutex

	urls map[string]string
	err  error
}

func newFakeFiles() *fakeFiles {
	return &fakeFiles{urls: map[string]string{}}
}

func (f *fakeFiles) RetrieveFile(_ context.Context, fileID string) (port.FileInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return port.FileInfo{}, f.err
	}

	url, ok := f.urls[fileID]
	if !ok {
		return port.FileInfo{}, domain.ErrNotFound
	}
	return port.FileInfo{URL: url}, nil
}

type fakeEmitter struct {
	mu sync.Mutex

	names []string
}

func (f *fakeEmitter) Emit(_ context.Context, name string, _ any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.names = append(f.names, name)
	return nil
}
