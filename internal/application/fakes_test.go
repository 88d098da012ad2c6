package application

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"catalog-admin-core/internal/domain"
)

// fakeTaxonomyRepo is an in-memory TaxonomyRepository that counts writes so
// tests can assert "no store write occurred". getOverride, when set, makes
// Get return a fixed stale snapshot regardless of stored state, which lets
// tests reproduce the read-modify-write race between two sessions.
type fakeTaxonomyRepo struct {
	mu          sync.Mutex
	sets        map[domain.Tenant]*domain.TaxonomySet
	writes      int
	failWrites  bool
	getOverride *domain.TaxonomySet
}

func newFakeTaxonomyRepo() *fakeTaxonomyRepo {
	return &fakeTaxonomyRepo{sets: make(map[domain.Tenant]*domain.TaxonomySet)}
}

func (r *fakeTaxonomyRepo) Get(_ context.Context, tenant domain.Tenant) (*domain.TaxonomySet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.getOverride != nil {
		cp := *r.getOverride
		return &cp, nil
	}

	set, ok := r.sets[tenant]
	if !ok {
		return nil, nil
	}
	cp := *set
	cp.Brands = append([]string(nil), set.Brands...)
	cp.Categories = append([]string(nil), set.Categories...)
	return &cp, nil
}

func (r *fakeTaxonomyRepo) MergeDefaults(_ context.Context, tenant domain.Tenant, brands, categories []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failWrites {
		return fmt.Errorf("store unavailable")
	}
	r.writes++

	set, ok := r.sets[tenant]
	if !ok {
		set = &domain.TaxonomySet{Tenant: tenant}
		r.sets[tenant] = set
	}
	set.Brands = union(set.Brands, brands)
	set.Categories = union(set.Categories, categories)
	return nil
}

func (r *fakeTaxonomyRepo) ReplaceList(_ context.Context, tenant domain.Tenant, kind domain.OptionKind, names []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failWrites {
		return fmt.Errorf("store unavailable")
	}
	r.writes++

	set, ok := r.sets[tenant]
	if !ok {
		set = &domain.TaxonomySet{Tenant: tenant}
		r.sets[tenant] = set
	}
	if kind == domain.OptionBrand {
		set.Brands = append([]string(nil), names...)
	} else {
		set.Categories = append([]string(nil), names...)
	}
	return nil
}

func union(existing, add []string) []string {
	out := append([]string(nil), existing...)
	for _, v := range add {
		found := false
		for _, e := range out {
			if e == v {
				found = true
				break
			}
		}
		if !found {
			out = append(out, v)
		}
	}
	return out
}

// fakeSectionRepo is an in-memory SectionRepository with write counting.
type fakeSectionRepo struct {
	mu       sync.Mutex
	sections map[string]*domain.CustomSection
	writes   int
	nextID   int
}

func newFakeSectionRepo() *fakeSectionRepo {
	return &fakeSectionRepo{sections: make(map[string]*domain.CustomSection)}
}

func (r *fakeSectionRepo) Create(_ context.Context, section *domain.CustomSection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.writes++
	r.nextID++
	section.ID = fmt.Sprintf("section-%d", r.nextID)
	section.CreatedAt = time.Now()

	cp := *section
	cp.Items = append([]domain.SectionItem(nil), section.Items...)
	r.sections[section.ID] = &cp
	return nil
}

func (r *fakeSectionRepo) Get(_ context.Context, id string) (*domain.CustomSection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	section, ok := r.sections[id]
	if !ok {
		return nil, nil
	}
	cp := *section
	cp.Items = append([]domain.SectionItem(nil), section.Items...)
	return &cp, nil
}

func (r *fakeSectionRepo) List(_ context.Context) ([]*domain.CustomSection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.CustomSection, 0, len(r.sections))
	for _, s := range r.sections {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSectionRepo) PushItem(_ context.Context, sectionID string, item domain.SectionItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	section, ok := r.sections[sectionID]
	if !ok {
		return domain.ErrNotFound
	}
	r.writes++
	section.Items = append(section.Items, item)
	return nil
}

func (r *fakeSectionRepo) ReplaceItems(_ context.Context, sectionID string, items []domain.SectionItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	section, ok := r.sections[sectionID]
	if !ok {
		return domain.ErrNotFound
	}
	r.writes++
	section.Items = append([]domain.SectionItem(nil), items...)
	return nil
}

func (r *fakeSectionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.writes++
	delete(r.sections, id)
	return nil
}

// fakeProductRepo is an in-memory ProductRepository with write counting.
type fakeProductRepo struct {
	mu         sync.Mutex
	products   map[string]*domain.Product
	writes     int
	failWrites bool
	nextID     int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*domain.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failWrites {
		return fmt.Errorf("store unavailable")
	}
	r.writes++
	r.nextID++
	product.ID = fmt.Sprintf("product-%d", r.nextID)
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt

	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, id string, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.failWrites {
		return fmt.Errorf("store unavailable")
	}
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	r.writes++
	cp := *product
	cp.ID = id
	cp.UpdatedAt = time.Now()
	r.products[id] = &cp
	return nil
}

func (r *fakeProductRepo) Get(_ context.Context, id string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *product
	return &cp, nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.writes++
	delete(r.products, id)
	return nil
}

// fakeProjectRepo is an in-memory ProjectRepository.
type fakeProjectRepo struct {
	mu       sync.Mutex
	projects map[string]*domain.Project
	writes   int
	nextID   int
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]*domain.Project)}
}

func (r *fakeProjectRepo) Create(_ context.Context, project *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.writes++
	r.nextID++
	project.ID = fmt.Sprintf("project-%d", r.nextID)
	project.CreatedAt = time.Now()
	project.UpdatedAt = project.CreatedAt

	cp := *project
	r.projects[project.ID] = &cp
	return nil
}

func (r *fakeProjectRepo) Update(_ context.Context, id string, project *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[id]; !ok {
		return domain.ErrNotFound
	}
	r.writes++
	cp := *project
	cp.ID = id
	cp.UpdatedAt = time.Now()
	r.projects[id] = &cp
	return nil
}

func (r *fakeProjectRepo) Get(_ context.Context, id string) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	project, ok := r.projects[id]
	if !ok {
		return nil, nil
	}
	cp := *project
	return &cp, nil
}

func (r *fakeProjectRepo) List(_ context.Context) ([]*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Project, 0, len(r.projects))
	for _, p := range r.projects {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProjectRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.writes++
	delete(r.projects, id)
	return nil
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[string]*domain.User // by email
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	user.CreatedAt = time.Now()

	cp := *user
	r.users[user.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	cp := *user
	return &cp, nil
}

func (r *fakeUserRepo) GetByKey(_ context.Context, key string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Key == key {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// fakeAssetHost records uploads and can be told to fail after a number of
// successful ones, to exercise the orphaned-upload path.
type fakeAssetHost struct {
	mu        sync.Mutex
	uploads   []string
	failAfter int // fail uploads once len(uploads) reaches this; -1 never fails
}

func newFakeAssetHost() *fakeAssetHost {
	return &fakeAssetHost{failAfter: -1}
}

func (h *fakeAssetHost) Upload(_ context.Context, filename string, _ io.Reader) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.failAfter >= 0 && len(h.uploads) >= h.failAfter {
		return "", fmt.Errorf("upload rejected")
	}
	h.uploads = append(h.uploads, filename)
	return "https://cdn.example.com/" + filename, nil
}

func (h *fakeAssetHost) uploadCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.uploads)
}

// recordingPublisher captures every published change event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*domain.ChangeEvent
}

func (p *recordingPublisher) Publish(event *domain.ChangeEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}

func (p *recordingPublisher) last() *domain.ChangeEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.events) == 0 {
		return nil
	}
	return p.events[len(p.events)-1]
}
