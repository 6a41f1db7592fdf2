package services

import (
	"context"
	"time"

	"kampus-admin/internal/adapters/persistence/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes. They assign UUIDs on create the way the
// gorm hooks do, and return gorm.ErrRecordNotFound for misses so the
// services' error mapping is exercised.

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*models.User, error) {
	users := make([]*models.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, user)
	}
	return users, nil
}

type fakeCustomerRepo struct {
	customers []*models.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{}
}

func (f *fakeCustomerRepo) Create(ctx context.Context, customer *models.Customer) error {
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = time.Now()
	}
	f.customers = append(f.customers, customer)
	return nil
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	for _, c := range f.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCustomerRepo) Update(ctx context.Context, customer *models.Customer) error {
	for i, c := range f.customers {
		if c.ID == customer.ID {
			f.customers[i] = customer
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeCustomerRepo) List(ctx context.Context, includeDeleted bool, offset, limit int) ([]*models.Customer, int64, error) {
	filtered := make([]*models.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		if !includeDeleted && c.IsDeleted {
			continue
		}
		filtered = append(filtered, c)
	}

	total := int64(len(filtered))
	if offset >= len(filtered) {
		return []*models.Customer{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end], total, nil
}

func (f *fakeCustomerRepo) ListActive(ctx context.Context) ([]*models.Customer, error) {
	active := make([]*models.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		if !c.IsDeleted {
			active = append(active, c)
		}
	}
	return active, nil
}

type fakeCodeRepo struct {
	codes []*models.CollaborationCode
}

func newFakeCodeRepo() *fakeCodeRepo {
	return &fakeCodeRepo{}
}

func (f *fakeCodeRepo) Create(ctx context.Context, code *models.CollaborationCode) error {
	if code.ID == "" {
		code.ID = uuid.New().String()
	}
	code.CreatedAt = time.Now()
	f.codes = append(f.codes, code)
	return nil
}

func (f *fakeCodeRepo) GetByID(ctx context.Context, id string) (*models.CollaborationCode, error) {
	for _, c := range f.codes {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCodeRepo) GetByCode(ctx context.Context, code string) (*models.CollaborationCode, error) {
	for _, c := range f.codes {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCodeRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	_, err := f.GetByCode(ctx, code)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (f *fakeCodeRepo) Update(ctx context.Context, code *models.CollaborationCode) error {
	for i, c := range f.codes {
		if c.ID == code.ID {
			f.codes[i] = code
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeCodeRepo) Delete(ctx context.Context, id string) error {
	for i, c := range f.codes {
		if c.ID == id {
			f.codes = append(f.codes[:i], f.codes[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeCodeRepo) List(ctx context.Context) ([]*models.CollaborationCode, error) {
	return f.codes, nil
}

func (f *fakeCodeRepo) ListActive(ctx context.Context) ([]*models.CollaborationCode, error) {
	active := make([]*models.CollaborationCode, 0, len(f.codes))
	for _, c := range f.codes {
		if c.IsActive {
			active = append(active, c)
		}
	}
	return active, nil
}

type fakeRefreshTokenRepo struct {
	tokens map[uint]*models.RefreshToken
	nextID uint
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: make(map[uint]*models.RefreshToken), nextID: 1}
}

func (f *fakeRefreshTokenRepo) Create(ctx context.Context, token *models.RefreshToken) error {
	token.ID = f.nextID
	f.nextID++
	f.tokens[token.ID] = token
	return nil
}

func (f *fakeRefreshTokenRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	for _, t := range f.tokens {
		if t.TokenHash == tokenHash {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRefreshTokenRepo) Revoke(ctx context.Context, id uint) error {
	if t, ok := f.tokens[id]; ok {
		now := time.Now()
		t.RevokedAt = &now
	}
	return nil
}

func (f *fakeRefreshTokenRepo) RevokeByTokenHash(ctx context.Context, tokenHash string) error {
	for _, t := range f.tokens {
		if t.TokenHash == tokenHash && t.RevokedAt == nil {
			now := time.Now()
			t.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeRefreshTokenRepo) RevokeAllByUserID(ctx context.Context, userID string) error {
	for _, t := range f.tokens {
		if t.UserID == userID && t.RevokedAt == nil {
			now := time.Now()
			t.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeRefreshTokenRepo) DeleteExpired(ctx context.Context) (int64, error) {
	var deleted int64
	for id, t := range f.tokens {
		if time.Now().After(t.ExpiresAt) {
			delete(f.tokens, id)
			deleted++
		}
	}
	return deleted, nil
}
