package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/emsp/platform/internal/core/domain"
	"github.com/emsp/platform/internal/core/ports"
	"github.com/emsp/platform/pkg/result"
)

type stubMomentRepo struct {
	mu     sync.Mutex
	byID   map[int64]*domain.Moment
	nextID int64
	last   ports.MomentFilter
}

func newStubMomentRepo() *stubMomentRepo {
	return &stubMomentRepo{byID: make(map[int64]*domain.Moment)}
}

func (r *stubMomentRepo) Create(_ context.Context, m *domain.Moment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	m.ID = r.nextID
	m.Version = 1
	clone := *m
	r.byID[m.ID] = &clone
	return nil
}

func (r *stubMomentRepo) FindByID(_ context.Context, id int64) (*domain.Moment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.byID[id]
	if !ok || m.Deleted {
		return nil, domain.ErrMomentNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *stubMomentRepo) List(_ context.Context, f ports.MomentFilter) ([]*domain.Moment, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = f
	var out []*domain.Moment
	for id := r.nextID; id > 0; id-- {
		m, ok := r.byID[id]
		if !ok || m.Deleted || (!f.IncludeHidden && m.Status != domain.MomentVisible) {
			continue
		}
		if f.UserID != 0 && m.UserID != f.UserID {
			continue
		}
		if f.Keyword != "" && !strings.Contains(strings.ToLower(m.Content), strings.ToLower(f.Keyword)) {
			continue
		}
		clone := *m
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (r *stubMomentRepo) Delete(_ context.Context, id, _ int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.byID[id]
	if !ok || m.Deleted {
		return domain.ErrMomentNotFound
	}
	m.Deleted = true
	return nil
}

func (r *stubMomentRepo) IncrementLikes(_ context.Context, id int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.byID[id]
	if !ok || m.Deleted || m.Status != domain.MomentVisible {
		return 0, domain.ErrMomentNotFound
	}
	m.LikeCount++
	return m.LikeCount, nil
}

func (r *stubMomentRepo) SetStatus(_ context.Context, id int64, status domain.MomentStatus, actor int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.byID[id]
	if !ok || m.Deleted {
		return domain.ErrMomentNotFound
	}
	m.Status = status
	m.UpdatedBy = actor
	m.Version++
	return nil
}

func TestMomentService_Create_Success(t *testing.T) {
	svc := NewMomentService(newStubMomentRepo(), discardLogger)

	m, err := svc.CreateMoment(context.Background(), member, ports.CreateMomentInput{
		Content:   "  sunny day  ",
		ImageURLs: []string{"https://img/1.png"},
	})
	if err != nil {
		t.Fatalf("CreateMoment returned error: %v", err)
	}
	if m.Content != "sunny day" {
		t.Fatalf("expected trimmed content, got %q", m.Content)
	}
	if m.Status != domain.MomentVisible || m.UserID != member.UserID {
		t.Fatalf("unexpected moment: %+v", m)
	}
}

func TestMomentService_Create_Validation(t *testing.T) {
	svc := NewMomentService(newStubMomentRepo(), discardLogger)

	bad := []ports.CreateMomentInput{
		{Content: "   "},
		{Content: strings.Repeat("字", maxMomentContent+1)},
		{Content: "ok", ImageURLs: make([]string, maxMomentImages+1)},
	}
	for i, in := range bad {
		if _, err := svc.CreateMoment(context.Background(), member, in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}

	// Exactly the limit in runes is accepted even though it is longer in bytes.
	if _, err := svc.CreateMoment(context.Background(), member, ports.CreateMomentInput{Content: strings.Repeat("字", maxMomentContent)}); err != nil {
		t.Fatalf("content at the limit should be accepted: %v", err)
	}
}

func TestMomentService_ListByAuthor(t *testing.T) {
	repo := newStubMomentRepo()
	svc := NewMomentService(repo, discardLogger)
	svc.CreateMoment(context.Background(), member, ports.CreateMomentInput{Content: "a"})
	svc.CreateMoment(context.Background(), admin, ports.CreateMomentInput{Content: "b"})

	page, err := svc.ListMoments(context.Background(), member.UserID, result.NewPageRequest(0, 0))
	if err != nil {
		t.Fatalf("ListMoments: %v", err)
	}
	if repo.last.Page.Number != 1 || repo.last.Page.Size != result.DefaultPageSize {
		t.Fatalf("expected default paging, got %+v", repo.last.Page)
	}
	if page.Total != 1 || page.Records[0].Content != "a" {
		t.Fatalf("expected only the author's moment, got %+v", page.Records)
	}
}

func TestMomentService_Get_HiddenIsNotFound(t *testing.T) {
	repo := newStubMomentRepo()
	svc := NewMomentService(repo, discardLogger)
	m, _ := svc.CreateMoment(context.Background(), member, ports.CreateMomentInput{Content: "a"})
	repo.byID[m.ID].Status = domain.MomentHidden

	if _, err := svc.GetMoment(context.Background(), m.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMomentService_Delete_OwnerOrAdmin(t *testing.T) {
	repo := newStubMomentRepo()
	svc := NewMomentService(repo, discardLogger)
	mine, _ := svc.CreateMoment(context.Background(), member, ports.CreateMomentInput{Content: "a"})
	other, _ := svc.CreateMoment(context.Background(), member, ports.CreateMomentInput{Content: "b"})

	stranger := ports.Actor{UserID: 55, Role: domain.RoleUser}
	if err := svc.DeleteMoment(context.Background(), stranger, mine.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.DeleteMoment(context.Background(), member, mine.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if err := svc.DeleteMoment(context.Background(), admin, other.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if !repo.byID[mine.ID].Deleted || !repo.byID[other.ID].Deleted {
		t.Fatalf("expected both moments to be flagged deleted")
	}
}

func TestMomentService_Like_Concurrent(t *testing.T) {
	repo := newStubMomentRepo()
	svc := NewMomentService(repo, discardLogger)
	m, _ := svc.CreateMoment(context.Background(), member, ports.CreateMomentInput{Content: "a"})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.LikeMoment(context.Background(), m.ID); err != nil {
				t.Errorf("LikeMoment: %v", err)
			}
		}()
	}
	wg.Wait()

	n, err := svc.LikeMoment(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("LikeMoment: %v", err)
	}
	if n != 21 {
		t.Fatalf("expected 21 likes, got %d", n)
	}
}

func TestMomentService_Like_Missing(t *testing.T) {
	svc := NewMomentService(newStubMomentRepo(), discardLogger)

	if _, err := svc.LikeMoment(context.Background(), 9); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMomentService_Moderation_HideAndShow(t *testing.T) {
	repo := newStubMomentRepo()
	svc := NewMomentService(repo, discardLogger)
	m, _ := svc.CreateMoment(context.Background(), member, ports.CreateMomentInput{Content: "a"})

	hidden, err := svc.SetMomentStatus(context.Background(), admin, m.ID, domain.MomentHidden)
	if err != nil {
		t.Fatalf("SetMomentStatus: %v", err)
	}
	if hidden.Status != domain.MomentHidden || hidden.UpdatedBy != admin.UserID || hidden.Version != 2 {
		t.Fatalf("unexpected moment after hide: %+v", hidden)
	}
	if _, err := svc.GetMoment(context.Background(), m.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("hidden moment should be invisible, got %v", err)
	}
	public, _ := svc.ListMoments(context.Background(), 0, result.NewPageRequest(1, 10))
	if public.Total != 0 {
		t.Fatalf("hidden moment should not be listed, got %+v", public.Records)
	}

	if _, err := svc.SetMomentStatus(context.Background(), admin, m.ID, domain.MomentVisible); err != nil {
		t.Fatalf("SetMomentStatus: %v", err)
	}
	if _, err := svc.GetMoment(context.Background(), m.ID); err != nil {
		t.Fatalf("shown moment should be visible: %v", err)
	}
}

func TestMomentService_Moderation_Rejects(t *testing.T) {
	repo := newStubMomentRepo()
	svc := NewMomentService(repo, discardLogger)
	m, _ := svc.CreateMoment(context.Background(), member, ports.CreateMomentInput{Content: "a"})

	if _, err := svc.SetMomentStatus(context.Background(), member, m.ID, domain.MomentHidden); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for a non-admin, got %v", err)
	}
	if _, err := svc.SetMomentStatus(context.Background(), admin, m.ID, domain.MomentStatus(7)); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.SetMomentStatus(context.Background(), admin, 99, domain.MomentHidden); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.ListAllMoments(context.Background(), member, "", result.NewPageRequest(1, 10)); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for a non-admin, got %v", err)
	}
	if repo.byID[m.ID].Status != domain.MomentVisible {
		t.Fatalf("rejected calls must not change the moment")
	}
}

func TestMomentService_ListAll_IncludesHiddenAndFilters(t *testing.T) {
	repo := newStubMomentRepo()
	svc := NewMomentService(repo, discardLogger)
	a, _ := svc.CreateMoment(context.Background(), member, ports.CreateMomentInput{Content: "Sunny beach"})
	svc.CreateMoment(context.Background(), member, ports.CreateMomentInput{Content: "rainy city"})
	svc.SetMomentStatus(context.Background(), admin, a.ID, domain.MomentHidden)

	all, err := svc.ListAllMoments(context.Background(), admin, "", result.NewPageRequest(1, 10))
	if err != nil {
		t.Fatalf("ListAllMoments: %v", err)
	}
	if all.Total != 2 {
		t.Fatalf("expected hidden moments to be listed, got %d", all.Total)
	}

	sunny, err := svc.ListAllMoments(context.Background(), admin, "  sunny ", result.NewPageRequest(1, 10))
	if err != nil {
		t.Fatalf("ListAllMoments: %v", err)
	}
	if !repo.last.IncludeHidden || repo.last.Keyword != "sunny" {
		t.Fatalf("unexpected filter: %+v", repo.last)
	}
	if sunny.Total != 1 || sunny.Records[0].ID != a.ID {
		t.Fatalf("expected only the matching moment, got %+v", sunny.Records)
	}
}
