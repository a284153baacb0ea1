package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/emsp/platform/internal/core/domain"
	"github.com/emsp/platform/internal/core/ports"
	"github.com/emsp/platform/pkg/result"
)

var discardLogger = zerolog.Nop()

var (
	admin  = ports.Actor{UserID: 1, Role: domain.RoleAdmin}
	member = ports.Actor{UserID: 2, Role: domain.RoleUser}
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubProductRepo struct {
	byID    map[int64]*domain.Product
	nextID  int64
	listErr error
	last    ports.ProductFilter
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{byID: make(map[int64]*domain.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) error {
	r.nextID++
	p.ID = r.nextID
	p.Version = 1
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok || p.Deleted {
		return nil, domain.ErrProductNotFound
	}
	clone := *p
	return &clone, nil
}

// List applies the same keyword match the real Mongo query uses.
func (r *stubProductRepo) List(_ context.Context, f ports.ProductFilter) ([]*domain.Product, int64, error) {
	r.last = f
	if r.listErr != nil {
		return nil, 0, r.listErr
	}
	var matched []*domain.Product
	for _, p := range r.byID {
		if p.Deleted {
			continue
		}
		if f.Keyword != "" {
			kw := strings.ToLower(f.Keyword)
			if !strings.Contains(strings.ToLower(p.Name), kw) && !strings.Contains(strings.ToLower(p.Description), kw) {
				continue
			}
		}
		clone := *p
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := int64(len(matched))
	skip := f.Page.Skip()
	if skip >= total {
		return []*domain.Product{}, total, nil
	}
	end := skip + f.Page.Size
	if end > total {
		end = total
	}
	return matched[skip:end], total, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *domain.Product) error {
	cur, ok := r.byID[p.ID]
	if !ok || cur.Deleted {
		return domain.ErrProductNotFound
	}
	if cur.Version != p.Version {
		return domain.NewConflict("version")
	}
	p.Version++
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id, actor int64) error {
	p, ok := r.byID[id]
	if !ok || p.Deleted {
		return domain.ErrProductNotFound
	}
	p.Deleted = true
	p.UpdatedBy = actor
	return nil
}

func productInput(name string) ports.ProductInput {
	return ports.ProductInput{
		Name:        name,
		Description: "fresh " + name,
		Price:       9.5,
		Stock:       10,
		Status:      domain.ProductOnSale,
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestProductService_Create_Success(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, discardLogger)

	p, err := svc.CreateProduct(context.Background(), admin, productInput("Apple"))
	if err != nil {
		t.Fatalf("CreateProduct returned error: %v", err)
	}
	if p.ID == 0 || p.Version != 1 {
		t.Fatalf("expected id and version 1, got id=%d version=%d", p.ID, p.Version)
	}
	if p.CreatedBy != admin.UserID {
		t.Fatalf("expected createBy %d, got %d", admin.UserID, p.CreatedBy)
	}
	if p.CreatedAt.IsZero() {
		t.Fatalf("expected create time to be set")
	}
}

func TestProductService_Create_RequiresAdmin(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), discardLogger)

	if _, err := svc.CreateProduct(context.Background(), member, productInput("Apple")); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestProductService_Create_Validation(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), discardLogger)

	bad := []ports.ProductInput{
		{Name: " ", Price: 1},
		{Name: "Apple", Price: -1},
		{Name: "Apple", Stock: -3},
		{Name: "Apple", Status: 7},
	}
	for _, in := range bad {
		if _, err := svc.CreateProduct(context.Background(), admin, in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("CreateProduct(%+v): expected ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestProductService_List_KeywordAndPaging(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, discardLogger)
	for _, name := range []string{"Green Apple", "Banana", "Red apple", "Cherry", "Apple pie"} {
		if _, err := svc.CreateProduct(context.Background(), admin, productInput(name)); err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
	}

	page, err := svc.ListProducts(context.Background(), "  APPLE ", result.NewPageRequest(1, 2))
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if repo.last.Keyword != "APPLE" {
		t.Fatalf("expected trimmed keyword, got %q", repo.last.Keyword)
	}
	if page.Total != 3 || page.Pages != 2 || len(page.Records) != 2 {
		t.Fatalf("unexpected page: total=%d pages=%d records=%d", page.Total, page.Pages, len(page.Records))
	}
	if !page.HasNext || page.HasPrevious {
		t.Fatalf("unexpected navigation flags: next=%v prev=%v", page.HasNext, page.HasPrevious)
	}
}

func TestProductService_List_RepoError(t *testing.T) {
	repo := newStubProductRepo()
	repo.listErr = errors.New("mongo down")
	svc := NewProductService(repo, discardLogger)

	page, err := svc.ListProducts(context.Background(), "", result.NewPageRequest(1, 10))
	if err == nil {
		t.Fatalf("expected error")
	}
	if page.Records == nil {
		t.Fatalf("expected empty records, not nil")
	}
}

func TestProductService_Update_OptimisticLock(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, discardLogger)
	p, _ := svc.CreateProduct(context.Background(), admin, productInput("Apple"))

	in := productInput("Apple v2")
	in.Version = p.Version
	updated, err := svc.UpdateProduct(context.Background(), admin, p.ID, in)
	if err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}
	if updated.Name != "Apple v2" || updated.Version != 2 {
		t.Fatalf("unexpected update result: name=%s version=%d", updated.Name, updated.Version)
	}

	// Re-using the stale version must fail.
	_, err = svc.UpdateProduct(context.Background(), admin, p.ID, in)
	var conflict *domain.ConflictError
	if !errors.As(err, &conflict) || conflict.Field != "version" {
		t.Fatalf("expected version conflict, got %v", err)
	}
}

func TestProductService_Update_RequiresVersion(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, discardLogger)
	p, _ := svc.CreateProduct(context.Background(), admin, productInput("Apple"))

	if _, err := svc.UpdateProduct(context.Background(), admin, p.ID, productInput("Apple")); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProductService_Delete_IsLogical(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, discardLogger)
	p, _ := svc.CreateProduct(context.Background(), admin, productInput("Apple"))

	if err := svc.DeleteProduct(context.Background(), member, p.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-admin, got %v", err)
	}
	if err := svc.DeleteProduct(context.Background(), admin, p.ID); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}
	if !repo.byID[p.ID].Deleted {
		t.Fatalf("expected record to be kept and flagged as deleted")
	}
	if _, err := svc.GetProduct(context.Background(), p.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("deleted product should not be found, got %v", err)
	}
	if err := svc.DeleteProduct(context.Background(), admin, p.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second delete should report not found, got %v", err)
	}
}

func TestProductService_UsesInjectedClock(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), discardLogger)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	p, err := svc.CreateProduct(context.Background(), admin, productInput("Apple"))
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if !p.CreatedAt.Equal(fixed) || !p.UpdatedAt.Equal(fixed) {
		t.Fatalf("expected timestamps %v, got %v / %v", fixed, p.CreatedAt, p.UpdatedAt)
	}
}
