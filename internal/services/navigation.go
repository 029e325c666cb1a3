package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"

	"github.com/Owhab/nexacms-sub002/internal/clients/redis"
	"github.com/Owhab/nexacms-sub002/internal/data/repos"
	types "github.com/Owhab/nexacms-sub002/internal/domain"
	"github.com/Owhab/nexacms-sub002/internal/modules/navigation"
	"github.com/Owhab/nexacms-sub002/internal/observability"
	"github.com/Owhab/nexacms-sub002/internal/platform/apierr"
	"github.com/Owhab/nexacms-sub002/internal/platform/dbctx"
	"github.com/Owhab/nexacms-sub002/internal/platform/logger"
)

const CodeMenuNotFound = "MENU_NOT_FOUND"

type NavigationService interface {
	CreateMenu(ctx context.Context, in CreateMenuInput) (*types.NavigationMenu, error)
	ListMenus(ctx context.Context) ([]*types.NavigationMenu, error)
	GetMenuTree(ctx context.Context, menuID uuid.UUID) (*types.NavigationMenu, error)
	CreateItem(ctx context.Context, menuID uuid.UUID, in CreateItemInput) (*types.NavigationItem, error)
	Reorder(ctx context.Context, menuID uuid.UUID, moves []navigation.Move) (*types.NavigationMenu, error)
}

type CreateMenuInput struct {
	Name     string
	Location string
}

type CreateItemInput struct {
	Label    string
	URL      *string
	Target   string
	ParentID *uuid.UUID
	PageID   *uuid.UUID
	Order    *int
}

type navigationService struct {
	db       *gorm.DB
	log      *logger.Logger
	menuRepo repos.NavigationMenuRepo
	itemRepo repos.NavigationItemRepo
	cache    redis.TreeCache
}

func NewNavigationService(
	db *gorm.DB,
	log *logger.Logger,
	menuRepo repos.NavigationMenuRepo,
	itemRepo repos.NavigationItemRepo,
	cache redis.TreeCache,
) NavigationService {
	if cache == nil {
		cache = redis.NopTreeCache()
	}
	return &navigationService{
		db:       db,
		log:      log.With("service", "NavigationService"),
		menuRepo: menuRepo,
		itemRepo: itemRepo,
		cache:    cache,
	}
}

func (s *navigationService) CreateMenu(ctx context.Context, in CreateMenuInput) (*types.NavigationMenu, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apierr.BadRequest(navigation.CodeInvalidRequest, "name is required").
			WithDetails(apierr.Detail{Field: "name", Message: "name is required"})
	}
	location := strings.TrimSpace(in.Location)
	if location == "" {
		location = "header"
	}
	menu := &types.NavigationMenu{ID: uuid.New(), Name: name, Location: location, IsActive: true}
	if _, err := s.menuRepo.Create(dbctx.Context{Ctx: ctx}, []*types.NavigationMenu{menu}); err != nil {
		return nil, fmt.Errorf("create menu: %w", err)
	}
	menu.Items = []*types.NavigationItem{}
	s.log.Info("Navigation menu created", "menu_id", menu.ID, "location", location)
	return menu, nil
}

func (s *navigationService) ListMenus(ctx context.Context) ([]*types.NavigationMenu, error) {
	menus, err := s.menuRepo.List(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, fmt.Errorf("list menus: %w", err)
	}
	return menus, nil
}

func (s *navigationService) requireMenu(dbc dbctx.Context, menuID uuid.UUID) (*types.NavigationMenu, error) {
	menu, err := s.menuRepo.GetByID(dbc, menuID)
	if err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}
	if menu == nil {
		return nil, apierr.NotFound(CodeMenuNotFound, "navigation menu %s", menuID)
	}
	return menu, nil
}

// GetMenuTree returns the menu with its items nested under their parents.
func (s *navigationService) GetMenuTree(ctx context.Context, menuID uuid.UUID) (*types.NavigationMenu, error) {
	menu, err := s.requireMenu(dbctx.Context{Ctx: ctx}, menuID)
	if err != nil {
		return nil, err
	}

	key := menuID.String()
	if raw, ok, err := s.cache.Get(ctx, key); err != nil {
		s.log.Warn("navigation tree cache read failed", "menu_id", menuID, "error", err)
	} else if ok {
		var roots []*types.NavigationItem
		if err := json.Unmarshal(raw, &roots); err == nil {
			menu.Items = roots
			return menu, nil
		}
		s.log.Warn("navigation tree cache entry unreadable", "menu_id", menuID)
	}

	roots, err := s.loadTree(dbctx.Context{Ctx: ctx}, menuID)
	if err != nil {
		return nil, err
	}
	menu.Items = roots
	if raw, err := json.Marshal(roots); err == nil {
		if err := s.cache.Set(ctx, key, raw); err != nil {
			s.log.Warn("navigation tree cache write failed", "menu_id", menuID, "error", err)
		}
	}
	return menu, nil
}

func (s *navigationService) loadTree(dbc dbctx.Context, menuID uuid.UUID) ([]*types.NavigationItem, error) {
	items, err := s.itemRepo.ListByMenu(dbc, menuID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return BuildItemTree(items), nil
}

// BuildItemTree nests a flat, order-sorted item list. Items whose parent is
// missing are treated as roots.
func BuildItemTree(items []*types.NavigationItem) []*types.NavigationItem {
	byID := make(map[uuid.UUID]*types.NavigationItem, len(items))
	for _, it := range items {
		it.Children = []*types.NavigationItem{}
		byID[it.ID] = it
	}
	roots := []*types.NavigationItem{}
	for _, it := range items {
		if it.ParentID != nil {
			if parent, ok := byID[*it.ParentID]; ok {
				parent.Children = append(parent.Children, it)
				continue
			}
		}
		roots = append(roots, it)
	}
	return roots
}

func toNodes(items []*types.NavigationItem) []navigation.Node {
	nodes := make([]navigation.Node, 0, len(items))
	for _, it := range items {
		nodes = append(nodes, navigation.Node{ID: it.ID, ParentID: it.ParentID, Order: it.Order})
	}
	return nodes
}

func (s *navigationService) CreateItem(ctx context.Context, menuID uuid.UUID, in CreateItemInput) (*types.NavigationItem, error) {
	label := strings.TrimSpace(in.Label)
	if label == "" {
		return nil, apierr.BadRequest(navigation.CodeInvalidRequest, "label is required").
			WithDetails(apierr.Detail{Field: "label", Message: "label is required"})
	}
	target := strings.TrimSpace(in.Target)
	switch target {
	case "":
		target = types.NavigationTargetSelf
	case types.NavigationTargetSelf, types.NavigationTargetBlank:
	default:
		return nil, apierr.BadRequest(navigation.CodeInvalidRequest, "unknown target %q", target).
			WithDetails(apierr.Detail{Field: "target", Message: "target must be _self or _blank"})
	}

	var created *types.NavigationItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		if _, err := s.requireMenu(dbc, menuID); err != nil {
			return err
		}
		existing, err := s.itemRepo.ListByMenu(dbc, menuID)
		if err != nil {
			return fmt.Errorf("list items: %w", err)
		}
		if err := navigation.CheckPlacement(toNodes(existing), in.ParentID); err != nil {
			return err
		}
		order := 0
		if in.Order != nil {
			order = *in.Order
			for _, it := range existing {
				if sameParent(it.ParentID, in.ParentID) && it.Order == order {
					return apierr.BadRequest(navigation.CodeDuplicateOrder, "order %d is already used among siblings", order).
						WithDetails(apierr.Detail{Field: "order", Message: "order already used"})
				}
			}
		} else {
			order, err = s.itemRepo.NextSiblingOrder(dbc, menuID, in.ParentID)
			if err != nil {
				return fmt.Errorf("next sibling order: %w", err)
			}
		}
		item := &types.NavigationItem{
			ID:       uuid.New(),
			MenuID:   menuID,
			ParentID: in.ParentID,
			Order:    order,
			Label:    label,
			URL:      in.URL,
			Target:   target,
			PageID:   in.PageID,
			IsActive: true,
		}
		if _, err := s.itemRepo.Create(dbc, []*types.NavigationItem{item}); err != nil {
			return fmt.Errorf("create item: %w", err)
		}
		if err := s.menuRepo.Touch(dbc, menuID); err != nil {
			return fmt.Errorf("touch menu: %w", err)
		}
		created = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, menuID)
	created.Children = []*types.NavigationItem{}
	s.log.Info("Navigation item created", "menu_id", menuID, "item_id", created.ID, "order", created.Order)
	return created, nil
}

// Reorder validates the moves and applies them in one transaction: every item
// is first parked on a unique negative order, then given its final order, so
// the (menu, parent, order) unique index never sees a transient collision.
func (s *navigationService) Reorder(ctx context.Context, menuID uuid.UUID, moves []navigation.Move) (*types.NavigationMenu, error) {
	ctx, span := observability.StartSpan(ctx, "NavigationService.Reorder",
		attribute.String("menu.id", menuID.String()),
		attribute.Int("items.count", len(moves)),
	)
	defer span.End()

	var menu *types.NavigationMenu
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		m, err := s.requireMenu(dbc, menuID)
		if err != nil {
			return err
		}
		existing, err := s.itemRepo.ListByMenu(dbc, menuID)
		if err != nil {
			return fmt.Errorf("list items: %w", err)
		}
		plan, err := navigation.PlanReorder(toNodes(existing), moves)
		if err != nil {
			return err
		}
		for _, u := range plan.Updates {
			if err := s.itemRepo.UpdatePosition(dbc, u.ID, u.ParentID, u.TempOrder); err != nil {
				return fmt.Errorf("park item %s: %w", u.ID, err)
			}
		}
		for _, u := range plan.Updates {
			if err := s.itemRepo.UpdatePosition(dbc, u.ID, u.ParentID, u.Order); err != nil {
				return fmt.Errorf("place item %s: %w", u.ID, err)
			}
		}
		if err := s.menuRepo.Touch(dbc, menuID); err != nil {
			return fmt.Errorf("touch menu: %w", err)
		}
		roots, err := s.loadTree(dbc, menuID)
		if err != nil {
			return err
		}
		m.Items = roots
		menu = m
		return nil
	})
	if err != nil {
		if ae, ok := apierr.As(err); ok && ae.Status < 500 {
			s.log.Warn("Navigation reorder rejected", "menu_id", menuID, "code", ae.Code, "error", ae.Err)
		} else {
			span.RecordError(err)
			span.SetStatus(codes.Error, "reorder failed")
		}
		return nil, err
	}
	s.invalidate(ctx, menuID)
	s.log.Info("Navigation menu reordered", "menu_id", menuID, "items", len(moves))
	return menu, nil
}

func (s *navigationService) invalidate(ctx context.Context, menuID uuid.UUID) {
	if err := s.cache.Invalidate(ctx, menuID.String()); err != nil {
		s.log.Warn("navigation tree cache invalidate failed", "menu_id", menuID, "error", err)
	}
}

func sameParent(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
