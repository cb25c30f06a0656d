// Package feed holds the pagination and category-filter state of the
// publications list.
//
// Every fetch gets a generation number. A replace-mode fetch (first load,
// refresh, applying filters) cancels whatever is in flight, and any reply
// belonging to an older generation than the latest replace is dropped, so
// the visible list only ever reflects the newest request.
package feed

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/calamaunido/internal/client/client"
	"github.com/dmitrijs2005/calamaunido/internal/client/models"
	"github.com/dmitrijs2005/calamaunido/internal/logging"
	"golang.org/x/sync/errgroup"
)

// ErrStale is returned for a reply that was superseded by a newer
// replace-mode fetch. State is left untouched.
var ErrStale = errors.New("stale response discarded")

// Source is the part of the API client the feed needs.
type Source interface {
	Categories(ctx context.Context) ([]models.Category, error)
	Publications(ctx context.Context, q client.PublicationsQuery) (*models.Page, error)
}

// Item is one row of the list.
type Item struct {
	Key         string
	Page        int
	Publication models.Publication
}

// State is a point-in-time copy of the feed.
type State struct {
	Page            int
	Items           []Item
	HasMore         bool
	IsLoading       bool
	IsLoadingMore   bool
	Refreshing      bool
	IsFilterLoading bool
	FilterVisible   bool
	Selected        []int64
	Categories      []models.Category
}

// Busy reports whether any load is in flight.
func (s State) Busy() bool {
	return s.IsLoading || s.IsLoadingMore || s.Refreshing || s.IsFilterLoading
}

type Feed struct {
	src Source
	log logging.Logger

	mu         sync.Mutex
	st         State
	seen       map[int64]struct{}
	gen        uint64
	replaceGen uint64
	inflight   map[uint64]context.CancelFunc

	// afterClaim runs between reserving a request and sending it. Tests
	// use it to interleave calls.
	afterClaim func()
}

// request is a fetch whose generation has been reserved.
type request struct {
	ctx     context.Context
	cancel  context.CancelFunc
	gen     uint64
	page    int
	replace bool
	query   client.PublicationsQuery
}

func New(src Source, log logging.Logger) *Feed {
	return &Feed{
		src:      src,
		log:      log,
		st:       State{Page: 1, HasMore: true},
		seen:     make(map[int64]struct{}),
		inflight: make(map[uint64]context.CancelFunc),
	}
}

// Mount loads categories and the first page concurrently. A categories
// failure is logged and leaves the filter list empty; only the page error
// is returned.
func (f *Feed) Mount(ctx context.Context) error {
	f.mu.Lock()
	f.st.IsLoading = true
	first := f.beginLocked(ctx, 1, true)
	f.mu.Unlock()

	var g errgroup.Group
	g.Go(func() error {
		cats, err := f.src.Categories(ctx)
		if err != nil {
			f.log.Error(ctx, "fetching categories failed", "error", err)
			return nil
		}
		f.mu.Lock()
		f.st.Categories = append([]models.Category(nil), cats...)
		f.mu.Unlock()
		return nil
	})
	g.Go(func() error {
		return f.run(first)
	})
	return g.Wait()
}

// Fetch loads page in replace or append mode. Asking for a page past the
// last one is a no-op.
func (f *Feed) Fetch(ctx context.Context, page int, replace bool) error {
	f.mu.Lock()
	if !f.st.HasMore && page != 1 {
		f.mu.Unlock()
		return nil
	}
	if replace {
		f.st.IsLoading = true
	} else {
		f.st.IsLoadingMore = true
	}
	r := f.beginLocked(ctx, page, replace)
	f.mu.Unlock()

	return f.run(r)
}

// LoadMore appends the next page. It reports false without fetching when a
// load is in flight or there are no more pages. The check, the claim and
// the generation happen under one lock, so concurrent callers start at
// most one request and a later replace always supersedes it.
func (f *Feed) LoadMore(ctx context.Context) (bool, error) {
	f.mu.Lock()
	if f.st.Busy() || !f.st.HasMore {
		f.mu.Unlock()
		return false, nil
	}
	f.st.IsLoadingMore = true
	r := f.beginLocked(ctx, f.st.Page+1, false)
	f.mu.Unlock()

	return true, f.run(r)
}

// Refresh starts over from page 1, replacing the list.
func (f *Feed) Refresh(ctx context.Context) error {
	f.mu.Lock()
	f.st.Refreshing = true
	f.st.Page = 1
	f.st.HasMore = true
	r := f.beginLocked(ctx, 1, true)
	f.mu.Unlock()

	return f.run(r)
}

// ToggleCategory adds id to the selection, or removes it when present.
// It reports whether id is selected afterwards. Nothing is fetched until
// ApplyFilters.
func (f *Feed) ToggleCategory(id int64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, sel := range f.st.Selected {
		if sel == id {
			f.st.Selected = append(f.st.Selected[:i:i], f.st.Selected[i+1:]...)
			return false
		}
	}
	f.st.Selected = append(f.st.Selected, id)
	return true
}

func (f *Feed) ShowFilters() {
	f.mu.Lock()
	f.st.FilterVisible = true
	f.mu.Unlock()
}

func (f *Feed) HideFilters() {
	f.mu.Lock()
	f.st.FilterVisible = false
	f.mu.Unlock()
}

// ApplyFilters closes the filter panel and reloads page 1 with the
// current selection.
func (f *Feed) ApplyFilters(ctx context.Context) error {
	f.mu.Lock()
	f.st.FilterVisible = false
	f.st.IsFilterLoading = true
	r := f.beginLocked(ctx, 1, true)
	f.mu.Unlock()

	return f.run(r)
}

// Snapshot returns a copy that is safe to read while fetches run.
func (f *Feed) Snapshot() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	s := f.st
	s.Items = append([]Item(nil), f.st.Items...)
	s.Selected = append([]int64(nil), f.st.Selected...)
	s.Categories = append([]models.Category(nil), f.st.Categories...)
	return s
}

// Item returns the publication at index i of the current list by value.
func (f *Feed) Item(i int) (models.Publication, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if i < 0 || i >= len(f.st.Items) {
		return models.Publication{}, false
	}
	return f.st.Items[i].Publication, true
}

// SelectedNames resolves the selection against the fetched categories in
// selection order. Unknown ids are dropped.
func (f *Feed) SelectedNames() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.selectedNamesLocked()
}

func (f *Feed) selectedNamesLocked() []string {
	names := make([]string, 0, len(f.st.Selected))
	for _, id := range f.st.Selected {
		for _, c := range f.st.Categories {
			if c.ID == id {
				names = append(names, c.Nombre)
				break
			}
		}
	}
	return names
}

// beginLocked reserves the next generation for page and registers its
// cancel func. A replace cancels everything already in flight. The query
// is built from the selection at this moment. f.mu must be held.
func (f *Feed) beginLocked(ctx context.Context, page int, replace bool) request {
	f.gen++
	gen := f.gen
	if replace {
		for g, cancel := range f.inflight {
			cancel()
			delete(f.inflight, g)
		}
		f.replaceGen = gen
	}
	ctx, cancel := context.WithCancel(ctx)
	f.inflight[gen] = cancel
	return request{
		ctx:     ctx,
		cancel:  cancel,
		gen:     gen,
		page:    page,
		replace: replace,
		query:   client.PublicationsQuery{Page: page, Categories: f.selectedNamesLocked()},
	}
}

// run sends r and reconciles the reply. Callers have already set the
// loading flag that matches the trigger.
func (f *Feed) run(r request) error {
	defer r.cancel()
	if f.afterClaim != nil {
		f.afterClaim()
	}

	ctx, gen, page, replace := r.ctx, r.gen, r.page, r.replace

	res, err := f.src.Publications(ctx, r.query)

	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.inflight, gen)

	if gen < f.replaceGen {
		f.log.Debug(ctx, "discarding stale page", "page", page, "generation", gen, "latest", f.replaceGen)
		return ErrStale
	}

	f.clearLoadingLocked()
	if err != nil {
		f.log.Error(ctx, "fetching publications failed", "page", page, "error", err)
		return fmt.Errorf("fetch page %d: %w", page, err)
	}

	if replace {
		f.st.Items = nil
		clear(f.seen)
	}
	for _, p := range res.Results {
		if _, dup := f.seen[p.ID]; dup {
			f.log.Debug(ctx, "skipping duplicate publication", "id", p.ID, "page", page)
			continue
		}
		f.seen[p.ID] = struct{}{}
		f.st.Items = append(f.st.Items, Item{Key: models.RowKey(p.ID, page), Page: page, Publication: p})
	}
	f.st.HasMore = res.HasNext()
	f.st.Page = page

	f.log.Debug(ctx, "publications fetched", "page", page, "count", len(res.Results), "has_more", f.st.HasMore)
	return nil
}

func (f *Feed) clearLoadingLocked() {
	f.st.IsLoading = false
	f.st.IsLoadingMore = false
	f.st.Refreshing = false
	f.st.IsFilterLoading = false
}
