package services

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/Owhab/nexacms-sub002/internal/data/repos"
	"github.com/Owhab/nexacms-sub002/internal/data/repos/testutil"
	types "github.com/Owhab/nexacms-sub002/internal/domain"
	"github.com/Owhab/nexacms-sub002/internal/modules/navigation"
	"github.com/Owhab/nexacms-sub002/internal/platform/dbctx"
)

type fakeTreeCache struct {
	mu          sync.Mutex
	entries     map[string][]byte
	invalidated int
}

func newFakeTreeCache() *fakeTreeCache { return &fakeTreeCache{entries: map[string][]byte{}} }

func (c *fakeTreeCache) Get(_ context.Context, menuID string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.entries[menuID]
	return raw, ok, nil
}

func (c *fakeTreeCache) Set(_ context.Context, menuID string, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[menuID] = payload
	return nil
}

func (c *fakeTreeCache) Invalidate(_ context.Context, menuID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, menuID)
	c.invalidated++
	return nil
}

func (c *fakeTreeCache) Close() error { return nil }

type navFixture struct {
	svc   NavigationService
	items repos.NavigationItemRepo
	cache *fakeTreeCache
}

func newNavFixture(t *testing.T) navFixture {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	cache := newFakeTreeCache()
	items := repos.NewNavigationItemRepo(db, log)
	svc := NewNavigationService(db, log, repos.NewNavigationMenuRepo(db, log), items, cache)
	return navFixture{svc: svc, items: items, cache: cache}
}

func intPtr(i int) *int { return &i }

func TestCreateItemAssignsNextOrder(t *testing.T) {
	f := newNavFixture(t)
	ctx := context.Background()
	menu, err := f.svc.CreateMenu(ctx, CreateMenuInput{Name: "Main"})
	if err != nil {
		t.Fatalf("CreateMenu: %v", err)
	}

	first, err := f.svc.CreateItem(ctx, menu.ID, CreateItemInput{Label: "Home"})
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	second, err := f.svc.CreateItem(ctx, menu.ID, CreateItemInput{Label: "About"})
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if first.Order != 0 || second.Order != 1 {
		t.Fatalf("unexpected orders: %d, %d", first.Order, second.Order)
	}
	if second.Target != types.NavigationTargetSelf {
		t.Fatalf("expected default target, got %q", second.Target)
	}

	child, err := f.svc.CreateItem(ctx, menu.ID, CreateItemInput{Label: "Team", ParentID: &second.ID})
	if err != nil {
		t.Fatalf("CreateItem (child): %v", err)
	}
	if child.Order != 0 {
		t.Fatalf("expected first child order 0, got %d", child.Order)
	}

	missing := uuid.New()
	_, err = f.svc.CreateItem(ctx, menu.ID, CreateItemInput{Label: "Ghost", ParentID: &missing})
	expectStatus(t, err, http.StatusBadRequest, navigation.CodeInvalidParent)

	_, err = f.svc.CreateItem(ctx, menu.ID, CreateItemInput{Label: "Clash", Order: intPtr(0)})
	expectStatus(t, err, http.StatusBadRequest, navigation.CodeDuplicateOrder)

	_, err = f.svc.CreateItem(ctx, uuid.New(), CreateItemInput{Label: "Lost"})
	expectStatus(t, err, http.StatusNotFound, CodeMenuNotFound)

	tree, err := f.svc.GetMenuTree(ctx, menu.ID)
	if err != nil {
		t.Fatalf("GetMenuTree: %v", err)
	}
	if len(tree.Items) != 2 || len(tree.Items[1].Children) != 1 || tree.Items[1].Children[0].Label != "Team" {
		t.Fatalf("unexpected tree: %+v", tree.Items)
	}
}

func TestGetMenuTreeUsesCache(t *testing.T) {
	f := newNavFixture(t)
	ctx := context.Background()
	menu, err := f.svc.CreateMenu(ctx, CreateMenuInput{Name: "Footer", Location: "footer"})
	if err != nil {
		t.Fatalf("CreateMenu: %v", err)
	}
	if _, err := f.svc.CreateItem(ctx, menu.ID, CreateItemInput{Label: "Privacy"}); err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if _, err := f.svc.GetMenuTree(ctx, menu.ID); err != nil {
		t.Fatalf("GetMenuTree: %v", err)
	}
	if _, ok, _ := f.cache.Get(ctx, menu.ID.String()); !ok {
		t.Fatalf("expected tree to be cached")
	}
	if _, err := f.svc.CreateItem(ctx, menu.ID, CreateItemInput{Label: "Terms"}); err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if _, ok, _ := f.cache.Get(ctx, menu.ID.String()); ok {
		t.Fatalf("expected cache entry to be invalidated")
	}
	tree, err := f.svc.GetMenuTree(ctx, menu.ID)
	if err != nil {
		t.Fatalf("GetMenuTree: %v", err)
	}
	if len(tree.Items) != 2 {
		t.Fatalf("expected 2 roots after invalidation, got %d", len(tree.Items))
	}
}

func TestReorderSwapsSiblingsAndReparents(t *testing.T) {
	f := newNavFixture(t)
	ctx := context.Background()
	menu, err := f.svc.CreateMenu(ctx, CreateMenuInput{Name: "Main"})
	if err != nil {
		t.Fatalf("CreateMenu: %v", err)
	}
	a, _ := f.svc.CreateItem(ctx, menu.ID, CreateItemInput{Label: "A"})
	b, _ := f.svc.CreateItem(ctx, menu.ID, CreateItemInput{Label: "B"})
	c, _ := f.svc.CreateItem(ctx, menu.ID, CreateItemInput{Label: "C"})
	invalidatedBefore := f.cache.invalidated

	// Swapping A and B collides on the unique sibling order without the parking phase.
	got, err := f.svc.Reorder(ctx, menu.ID, []navigation.Move{
		{ID: a.ID, Order: 1},
		{ID: b.ID, Order: 0},
		{ID: c.ID, ParentID: &b.ID, Order: 0},
	})
	if err != nil {
		t.Fatalf("Reorder: %v", err)
	}
	if len(got.Items) != 2 || got.Items[0].ID != b.ID || got.Items[1].ID != a.ID {
		t.Fatalf("unexpected root order: %+v", got.Items)
	}
	if len(got.Items[0].Children) != 1 || got.Items[0].Children[0].ID != c.ID {
		t.Fatalf("expected C under B, got %+v", got.Items[0].Children)
	}
	if f.cache.invalidated != invalidatedBefore+1 {
		t.Fatalf("expected cache invalidation after reorder")
	}

	rows, err := f.items.ListByMenu(dbctx.Context{Ctx: ctx}, menu.ID)
	if err != nil {
		t.Fatalf("ListByMenu: %v", err)
	}
	for _, r := range rows {
		if r.Order < 0 {
			t.Fatalf("item %s left on a temporary order %d", r.Label, r.Order)
		}
	}
}

func TestReorderRejectsCycleWithoutWriting(t *testing.T) {
	f := newNavFixture(t)
	ctx := context.Background()
	menu, _ := f.svc.CreateMenu(ctx, CreateMenuInput{Name: "Main"})
	a, _ := f.svc.CreateItem(ctx, menu.ID, CreateItemInput{Label: "A"})
	b, _ := f.svc.CreateItem(ctx, menu.ID, CreateItemInput{Label: "B", ParentID: &a.ID})
	c, _ := f.svc.CreateItem(ctx, menu.ID, CreateItemInput{Label: "C", ParentID: &b.ID})

	_, err := f.svc.Reorder(ctx, menu.ID, []navigation.Move{{ID: a.ID, ParentID: &c.ID, Order: 0}})
	expectStatus(t, err, http.StatusBadRequest, navigation.CodeCircularReference)

	rows, err := f.items.ListByMenu(dbctx.Context{Ctx: ctx}, menu.ID)
	if err != nil {
		t.Fatalf("ListByMenu: %v", err)
	}
	for _, r := range rows {
		if r.ID == a.ID && r.ParentID != nil {
			t.Fatalf("rejected reorder must not write: %+v", r)
		}
	}

	_, err = f.svc.Reorder(ctx, uuid.New(), []navigation.Move{{ID: a.ID}})
	expectStatus(t, err, http.StatusNotFound, CodeMenuNotFound)

	_, err = f.svc.Reorder(ctx, menu.ID, nil)
	expectStatus(t, err, http.StatusBadRequest, navigation.CodeInvalidRequest)
}

func TestBuildItemTree(t *testing.T) {
	root := &types.NavigationItem{ID: uuid.New(), Label: "root"}
	child := &types.NavigationItem{ID: uuid.New(), ParentID: &root.ID, Label: "child"}
	orphanParent := uuid.New()
	orphan := &types.NavigationItem{ID: uuid.New(), ParentID: &orphanParent, Label: "orphan"}

	roots := BuildItemTree([]*types.NavigationItem{root, child, orphan})
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}
	if len(roots[0].Children) != 1 || roots[0].Children[0] != child {
		t.Fatalf("child not nested: %+v", roots[0].Children)
	}
	if child.Children == nil {
		t.Fatalf("leaf children must be an empty slice for JSON")
	}
}
