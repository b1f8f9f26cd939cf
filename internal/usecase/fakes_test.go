package usecase

import (
	"context"
	"fmt"
	"sync"

	"campuscart/internal/domain/entity"
	"campuscart/pkg/errors"
)

// In-memory repository fakes shared by the usecase tests.

type fakeCartRepo struct {
	mu     sync.Mutex
	carts  map[string]*entity.Cart
	getErr error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string]*entity.Cart)}
}

func (r *fakeCartRepo) GetByUser(ctx context.Context, userID string) (*entity.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	cart, ok := r.carts[userID]
	if !ok {
		return &entity.Cart{UserID: userID}, nil
	}
	copied := *cart
	copied.Items = append([]entity.CartItem(nil), cart.Items...)
	return &copied, nil
}

func (r *fakeCartRepo) Save(ctx context.Context, cart *entity.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *cart
	copied.Items = append([]entity.CartItem(nil), cart.Items...)
	r.carts[cart.UserID] = &copied
	return nil
}

func (r *fakeCartRepo) Delete(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, userID)
	return nil
}

func (r *fakeCartRepo) exists(userID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.carts[userID]
	return ok
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = fmt.Sprintf("product-%d", len(r.products)+1)
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	return product, nil
}

func (r *fakeProductRepo) List(ctx context.Context, category string, limit, offset int) ([]*entity.Product, int64, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if category == "" || p.Category == category {
			out = append(out, p)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) SearchByName(ctx context.Context, query string, limit, offset int) ([]*entity.Product, int64, error) {
	return r.List(ctx, "", limit, offset)
}

func (r *fakeProductRepo) ListByDonor(ctx context.Context, donorID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.DonorID == donorID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	delete(r.products, id)
	return nil
}

type fakeAddressRepo struct {
	mu        sync.Mutex
	addresses map[string][]*entity.Address
	nextID    int
	listErr   error
	// failFlagFor makes SetDefaultFlag fail for the given address id.
	failFlagFor string
}

func newFakeAddressRepo() *fakeAddressRepo {
	return &fakeAddressRepo{addresses: make(map[string][]*entity.Address)}
}

func (r *fakeAddressRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*entity.Address, 0, len(r.addresses[userID]))
	for _, a := range r.addresses[userID] {
		copied := *a
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeAddressRepo) GetByID(ctx context.Context, userID, addressID string) (*entity.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.addresses[userID] {
		if a.ID == addressID {
			copied := *a
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Address", nil)
}

func (r *fakeAddressRepo) Create(ctx context.Context, userID string, address *entity.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	address.ID = fmt.Sprintf("address-%d", r.nextID)
	copied := *address
	r.addresses[userID] = append(r.addresses[userID], &copied)
	return nil
}

func (r *fakeAddressRepo) Delete(ctx context.Context, userID, addressID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.addresses[userID][:0]
	for _, a := range r.addresses[userID] {
		if a.ID != addressID {
			kept = append(kept, a)
		}
	}
	r.addresses[userID] = kept
	return nil
}

func (r *fakeAddressRepo) SetDefaultFlag(ctx context.Context, userID, addressID string, isDefault bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failFlagFor == addressID {
		return fmt.Errorf("write failed for %s", addressID)
	}
	for _, a := range r.addresses[userID] {
		if a.ID == addressID {
			a.IsDefault = isDefault
		}
	}
	return nil
}

func (r *fakeAddressRepo) defaultCount(userID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, a := range r.addresses[userID] {
		if a.IsDefault {
			count++
		}
	}
	return count
}

type fakeUserRepo struct {
	users  map[string]*entity.User
	getErr error
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) SetPaymentMethod(ctx context.Context, userID, method string) error {
	user, ok := r.users[userID]
	if !ok {
		return errors.NotFound("User", nil)
	}
	user.SelectedPaymentMethod = method
	return nil
}

// fakeOrderRepo mirrors the transactional contract of the real repository:
// placing an order also deletes the user's cart, and a duplicate order id
// is a conflict.
type fakeOrderRepo struct {
	orders   map[string]*entity.Order
	carts    *fakeCartRepo
	placeErr error
}

func newFakeOrderRepo(carts *fakeCartRepo) *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order), carts: carts}
}

func (r *fakeOrderRepo) Place(ctx context.Context, order *entity.Order) error {
	if r.placeErr != nil {
		return r.placeErr
	}
	if _, ok := r.orders[order.ID]; ok {
		return errors.Conflict("Order already placed for this checkout session")
	}
	copied := *order
	r.orders[order.ID] = &copied
	if r.carts != nil {
		r.carts.Delete(ctx, order.UserID)
	}
	return nil
}

func (r *fakeOrderRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	// Newest first, matching the real repository.
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].CreatedAt.After(out[i].CreatedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

type fakeAuthClient struct {
	nextUID    string
	signInErr  error
	created    map[string]string // email -> password
	passwords  map[string]string // uid -> password
	tokenToUID map[string]string
}

func newFakeAuthClient() *fakeAuthClient {
	return &fakeAuthClient{
		nextUID:    "uid-1",
		created:    make(map[string]string),
		passwords:  make(map[string]string),
		tokenToUID: make(map[string]string),
	}
}

func (f *fakeAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	f.created[email] = password
	f.passwords[f.nextUID] = password
	f.tokenToUID["token-"+f.nextUID] = f.nextUID
	return f.nextUID, nil
}

func (f *fakeAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	uid, ok := f.tokenToUID[token]
	if !ok {
		return "", fmt.Errorf("unknown token")
	}
	return uid, nil
}

func (f *fakeAuthClient) SignInWithEmailPassword(email, password string) (string, string, error) {
	if f.signInErr != nil {
		return "", "", f.signInErr
	}
	if stored, ok := f.created[email]; !ok || stored != password {
		return "", "", fmt.Errorf("invalid credentials")
	}
	return "token-" + f.nextUID, "refresh-" + f.nextUID, nil
}

func (f *fakeAuthClient) RefreshIDToken(refreshToken string) (string, string, error) {
	return "token-refreshed", refreshToken, nil
}

func (f *fakeAuthClient) UpdateUserPassword(ctx context.Context, uid, newPassword string) error {
	f.passwords[uid] = newPassword
	return nil
}
