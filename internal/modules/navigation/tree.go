// Package navigation holds the pure tree checks behind navigation menu
// reordering: parent validation, cycle and depth limits, and the two-phase
// order plan that avoids unique-key collisions inside one transaction.
package navigation

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/Owhab/nexacms-sub002/internal/platform/apierr"
)

const (
	// MaxDepth counts levels, so a root item has depth 1.
	MaxDepth = 5
	// cycleDepth is reported for chains that loop.
	cycleDepth = 999
	// tempOrderOffset keeps phase-one orders clear of any real order value.
	tempOrderOffset = 1_000_000
)

const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeItemsNotFound     = "ITEMS_NOT_FOUND"
	CodeInvalidParent     = "INVALID_PARENT"
	CodeCircularReference = "CIRCULAR_REFERENCE"
	CodeDepthExceeded     = "DEPTH_EXCEEDED"
	CodeDuplicateOrder    = "DUPLICATE_ORDER"
)

// Node is the persisted position of one item.
type Node struct {
	ID       uuid.UUID
	ParentID *uuid.UUID
	Order    int
}

// Move is the requested position of one item.
type Move struct {
	ID       uuid.UUID  `json:"id" binding:"required"`
	ParentID *uuid.UUID `json:"parentId"`
	Order    int        `json:"order"`
}

type Update struct {
	ID        uuid.UUID
	ParentID  *uuid.UUID
	Order     int
	TempOrder int
}

// Plan is the ordered list of writes for a validated reorder. Apply every
// TempOrder first, then every final Order.
type Plan struct {
	Updates []Update
}

type parents map[uuid.UUID]*uuid.UUID

// PlanReorder validates moves against the menu's current items and returns
// the write plan. Errors are *apierr.Error values with status 400.
// Cycle and depth checks walk the persisted parents with the moves overlaid,
// which is stricter than walking the moved items alone.
func PlanReorder(existing []Node, moves []Move) (Plan, error) {
	if len(moves) == 0 {
		return Plan{}, apierr.BadRequest(CodeInvalidRequest, "items are required")
	}

	known := make(map[uuid.UUID]Node, len(existing))
	for _, n := range existing {
		known[n.ID] = n
	}

	var missing []apierr.Detail
	seen := map[uuid.UUID]bool{}
	for i, m := range moves {
		if seen[m.ID] {
			return Plan{}, apierr.BadRequest(CodeInvalidRequest, "item %s appears more than once", m.ID).
				WithDetails(apierr.Detail{Field: fmt.Sprintf("items[%d].id", i), Message: "duplicate item"})
		}
		seen[m.ID] = true
		if _, ok := known[m.ID]; !ok {
			missing = append(missing, apierr.Detail{Field: fmt.Sprintf("items[%d].id", i), Message: fmt.Sprintf("item %s does not belong to this menu", m.ID)})
		}
	}
	if len(missing) > 0 {
		return Plan{}, apierr.BadRequest(CodeItemsNotFound, "some items were not found in this menu").WithDetails(missing...)
	}

	for i, m := range moves {
		if m.ParentID == nil {
			continue
		}
		field := fmt.Sprintf("items[%d].parentId", i)
		if *m.ParentID == m.ID {
			return Plan{}, apierr.BadRequest(CodeCircularReference, "item %s cannot be its own parent", m.ID).
				WithDetails(apierr.Detail{Field: field, Message: "item cannot be its own parent"})
		}
		if _, ok := known[*m.ParentID]; !ok {
			return Plan{}, apierr.BadRequest(CodeInvalidParent, "parent %s does not exist in this menu", *m.ParentID).
				WithDetails(apierr.Detail{Field: field, Message: "parent not found in this menu"})
		}
	}

	proposed := make(parents, len(existing))
	for _, n := range existing {
		proposed[n.ID] = n.ParentID
	}
	for _, m := range moves {
		proposed[m.ID] = m.ParentID
	}

	// Persisted state is acyclic, so any new cycle runs through a re-parented
	// item and is found by walking up from that item's new parent.
	for i, m := range moves {
		if m.ParentID != nil && proposed.leadsTo(*m.ParentID, m.ID) {
			return Plan{}, apierr.BadRequest(CodeCircularReference, "moving %s under %s would create a circular reference", m.ID, *m.ParentID).
				WithDetails(apierr.Detail{Field: fmt.Sprintf("items[%d].parentId", i), Message: "circular reference"})
		}
	}

	ids := make([]uuid.UUID, 0, len(proposed))
	for id := range proposed {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	for _, id := range ids {
		if d := proposed.depth(id); d > MaxDepth {
			return Plan{}, apierr.BadRequest(CodeDepthExceeded, "item %s would be nested %d levels deep; the limit is %d", id, d, MaxDepth).
				WithDetails(apierr.Detail{Field: "items", Message: fmt.Sprintf("maximum depth is %d", MaxDepth)})
		}
	}

	if err := checkSiblingOrders(existing, moves, proposed); err != nil {
		return Plan{}, err
	}

	plan := Plan{Updates: make([]Update, 0, len(moves))}
	for i, m := range moves {
		plan.Updates = append(plan.Updates, Update{
			ID:        m.ID,
			ParentID:  m.ParentID,
			Order:     m.Order,
			TempOrder: -(tempOrderOffset + i),
		})
	}
	return plan, nil
}

// leadsTo walks the parent chain from start and reports whether it reaches
// target or loops.
func (p parents) leadsTo(start, target uuid.UUID) bool {
	visited := map[uuid.UUID]bool{}
	cur := &start
	for cur != nil {
		if *cur == target || visited[*cur] {
			return true
		}
		visited[*cur] = true
		cur = p[*cur]
	}
	return false
}

// depth counts levels from id up to a root; a looping chain reports cycleDepth.
func (p parents) depth(id uuid.UUID) int {
	visited := map[uuid.UUID]bool{}
	d := 0
	cur := &id
	for cur != nil {
		if visited[*cur] {
			return cycleDepth
		}
		visited[*cur] = true
		d++
		cur = p[*cur]
	}
	return d
}

func parentKey(p *uuid.UUID) string {
	if p == nil {
		return "root"
	}
	return p.String()
}

func checkSiblingOrders(existing []Node, moves []Move, proposed parents) error {
	orders := make(map[uuid.UUID]int, len(existing))
	for _, n := range existing {
		orders[n.ID] = n.Order
	}
	for _, m := range moves {
		orders[m.ID] = m.Order
	}
	type slot struct {
		parent string
		order  int
	}
	taken := map[slot]uuid.UUID{}
	ids := make([]uuid.UUID, 0, len(orders))
	for id := range orders {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	for _, id := range ids {
		s := slot{parent: parentKey(proposed[id]), order: orders[id]}
		if other, dup := taken[s]; dup {
			return apierr.BadRequest(CodeDuplicateOrder, "items %s and %s would share order %d under the same parent", other, id, s.order).
				WithDetails(apierr.Detail{Field: "items", Message: fmt.Sprintf("order %d is used twice among siblings", s.order)})
		}
		taken[s] = id
	}
	return nil
}

// CheckPlacement validates where a new item would be attached.
func CheckPlacement(existing []Node, parentID *uuid.UUID) error {
	if parentID == nil {
		return nil
	}
	p := make(parents, len(existing))
	for _, n := range existing {
		p[n.ID] = n.ParentID
	}
	if _, ok := p[*parentID]; !ok {
		return apierr.BadRequest(CodeInvalidParent, "parent %s does not exist in this menu", *parentID).
			WithDetails(apierr.Detail{Field: "parentId", Message: "parent not found in this menu"})
	}
	if d := p.depth(*parentID) + 1; d > MaxDepth {
		return apierr.BadRequest(CodeDepthExceeded, "item would be nested %d levels deep; the limit is %d", d, MaxDepth).
			WithDetails(apierr.Detail{Field: "parentId", Message: fmt.Sprintf("maximum depth is %d", MaxDepth)})
	}
	return nil
}
