// Package store holds the sandbox's in-memory data set: users with bcrypt
// password hashes, categories and a fixed list of publications around
// Calama.
package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrijs2005/calamaunido/internal/client/models"
	"github.com/dmitrijs2005/calamaunido/internal/rut"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRUT         = errors.New("invalid rut check digit")
	ErrUserExists         = errors.New("user already exists")
	ErrPageNotFound       = errors.New("page not found")
)

// User is a seeded account. Only the hash is kept.
type User struct {
	RUT          string
	Name         string
	PasswordHash []byte
}

// Query selects one page of publications. Categories are matched by name,
// case-insensitively; empty means no filter.
type Query struct {
	Page       int
	PageSize   int
	Categories []string
}

// Result is one page plus what the handler needs to build links.
type Result struct {
	Count   int
	Items   []models.Publication
	HasNext bool
	HasPrev bool
}

// Store is the read side the handlers depend on.
type Store interface {
	Authenticate(ctx context.Context, rutInput, password string) (User, error)
	LookupUser(ctx context.Context, rutInput string) (User, bool)
	Categories(ctx context.Context) ([]models.Category, error)
	Publications(ctx context.Context, q Query) (Result, error)
}

// Memory is a Store backed by maps and slices guarded by a RWMutex.
type Memory struct {
	mu           sync.RWMutex
	cost         int
	users        map[string]User
	categories   []models.Category
	publications []models.Publication
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty store hashing passwords with cost.
func NewMemory(cost int) *Memory {
	return &Memory{cost: cost, users: map[string]User{}}
}

// userKey normalises any RUT spelling ("12.345.678-k", "12345678K") to the
// map key.
func userKey(s string) string {
	return strings.ToUpper(rut.Clean(s))
}

// AddUser hashes password and stores the account. The RUT must carry a
// correct check digit.
func (m *Memory) AddUser(rutInput, name, password string) error {
	if !rut.VerifyCheckDigit(rutInput) {
		return fmt.Errorf("%w: %s", ErrInvalidRUT, rutInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), m.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	key := userKey(rutInput)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[key]; ok {
		return ErrUserExists
	}
	m.users[key] = User{RUT: rut.Format(key), Name: name, PasswordHash: hash}
	return nil
}

func (m *Memory) LookupUser(_ context.Context, rutInput string) (User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[userKey(rutInput)]
	return u, ok
}

// Authenticate returns ErrInvalidCredentials for an unknown RUT and for a
// wrong password alike.
func (m *Memory) Authenticate(ctx context.Context, rutInput, password string) (User, error) {
	u, ok := m.LookupUser(ctx, rutInput)
	if !ok {
		return User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

// SetCategories replaces the category list.
func (m *Memory) SetCategories(cats []models.Category) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories = append([]models.Category(nil), cats...)
}

// AddPublications appends ps and keeps the list newest first.
func (m *Memory) AddPublications(ps ...models.Publication) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.publications = append(m.publications, ps...)
	sort.SliceStable(m.publications, func(i, j int) bool {
		a, b := m.publications[i], m.publications[j]
		if a.FechaPublicacion.Equal(b.FechaPublicacion) {
			return a.ID > b.ID
		}
		return a.FechaPublicacion.After(b.FechaPublicacion)
	})
}

func (m *Memory) Categories(_ context.Context) ([]models.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Category{}, m.categories...), nil
}

// Publications filters, then slices out page q.Page. Page 1 always exists;
// any other page past the end is ErrPageNotFound.
func (m *Memory) Publications(_ context.Context, q Query) (Result, error) {
	if q.Page < 1 {
		return Result{}, ErrPageNotFound
	}
	if q.PageSize < 1 {
		q.PageSize = 10
	}

	wanted := map[string]struct{}{}
	for _, c := range q.Categories {
		if c = strings.TrimSpace(c); c != "" {
			wanted[strings.ToLower(c)] = struct{}{}
		}
	}

	m.mu.RLock()
	matched := make([]models.Publication, 0, len(m.publications))
	for _, p := range m.publications {
		if len(wanted) > 0 {
			if _, ok := wanted[strings.ToLower(p.Categoria.Nombre)]; !ok {
				continue
			}
		}
		matched = append(matched, p)
	}
	m.mu.RUnlock()

	if q.Page > 1 && q.Page-1 > (len(matched)-1)/q.PageSize {
		return Result{}, ErrPageNotFound
	}
	start := (q.Page - 1) * q.PageSize
	end := min(start+q.PageSize, len(matched))

	return Result{
		Count:   len(matched),
		Items:   matched[start:end],
		HasNext: end < len(matched),
		HasPrev: q.Page > 1,
	}, nil
}
