package navigation

import (
	"testing"

	"github.com/google/uuid"

	"github.com/Owhab/nexacms-sub002/internal/platform/apierr"
)

func ptr(id uuid.UUID) *uuid.UUID { return &id }

// chain builds n items where item i is the parent of item i+1.
func chain(n int) []Node {
	nodes := make([]Node, n)
	for i := range nodes {
		nodes[i] = Node{ID: uuid.New()}
		if i > 0 {
			nodes[i].ParentID = ptr(nodes[i-1].ID)
		}
	}
	return nodes
}

func expectCode(t *testing.T, err error, code string) {
	t.Helper()
	ae, ok := apierr.As(err)
	if !ok {
		t.Fatalf("expected *apierr.Error, got %v", err)
	}
	if ae.Code != code || ae.Status != 400 {
		t.Fatalf("expected 400 %s, got %d %s (%v)", code, ae.Status, ae.Code, err)
	}
}

func TestCycleRejected(t *testing.T) {
	nodes := chain(3) // A <- B <- C
	a, c := nodes[0], nodes[2]
	_, err := PlanReorder(nodes, []Move{{ID: a.ID, ParentID: ptr(c.ID), Order: 0}})
	expectCode(t, err, CodeCircularReference)
}

func TestCycleWithinRequest(t *testing.T) {
	nodes := chain(2)
	x := Node{ID: uuid.New(), Order: 1}
	nodes = append(nodes, x)
	_, err := PlanReorder(nodes, []Move{
		{ID: x.ID, ParentID: ptr(nodes[1].ID), Order: 0},
		{ID: nodes[0].ID, ParentID: ptr(x.ID), Order: 0},
	})
	expectCode(t, err, CodeCircularReference)
}

func TestSelfParentRejected(t *testing.T) {
	nodes := chain(1)
	_, err := PlanReorder(nodes, []Move{{ID: nodes[0].ID, ParentID: ptr(nodes[0].ID)}})
	expectCode(t, err, CodeCircularReference)
}

func TestDepthLimit(t *testing.T) {
	nodes := chain(5)
	leaf := Node{ID: uuid.New()}
	all := append(append([]Node{}, nodes...), leaf)

	if _, err := PlanReorder(all, []Move{{ID: leaf.ID, ParentID: ptr(nodes[3].ID), Order: 1}}); err != nil {
		t.Fatalf("depth 5 should be accepted: %v", err)
	}
	_, err := PlanReorder(all, []Move{{ID: leaf.ID, ParentID: ptr(nodes[4].ID), Order: 0}})
	expectCode(t, err, CodeDepthExceeded)
}

func TestDepthCountsDescendants(t *testing.T) {
	deep := chain(3)
	other := chain(3)
	all := append(append([]Node{}, deep...), other...)
	// Moving the root of a 3-level chain under a depth-3 node yields depth 6.
	_, err := PlanReorder(all, []Move{{ID: other[0].ID, ParentID: ptr(deep[2].ID), Order: 0}})
	expectCode(t, err, CodeDepthExceeded)
}

func TestUnknownItemsAndParents(t *testing.T) {
	nodes := chain(2)
	_, err := PlanReorder(nodes, []Move{{ID: uuid.New()}})
	expectCode(t, err, CodeItemsNotFound)

	_, err = PlanReorder(nodes, []Move{{ID: nodes[1].ID, ParentID: ptr(uuid.New())}})
	expectCode(t, err, CodeInvalidParent)

	_, err = PlanReorder(nodes, nil)
	expectCode(t, err, CodeInvalidRequest)

	_, err = PlanReorder(nodes, []Move{{ID: nodes[0].ID}, {ID: nodes[0].ID, Order: 1}})
	expectCode(t, err, CodeInvalidRequest)
}

func TestDuplicateSiblingOrder(t *testing.T) {
	a := Node{ID: uuid.New(), Order: 0}
	b := Node{ID: uuid.New(), Order: 1}
	c := Node{ID: uuid.New(), Order: 2}
	_, err := PlanReorder([]Node{a, b, c}, []Move{{ID: a.ID, Order: 2}})
	expectCode(t, err, CodeDuplicateOrder)

	plan, err := PlanReorder([]Node{a, b, c}, []Move{{ID: a.ID, Order: 2}, {ID: c.ID, Order: 0}})
	if err != nil {
		t.Fatalf("swap should be accepted: %v", err)
	}
	if len(plan.Updates) != 2 {
		t.Fatalf("expected two updates, got %d", len(plan.Updates))
	}
	if plan.Updates[0].TempOrder == plan.Updates[1].TempOrder || plan.Updates[0].TempOrder >= 0 {
		t.Fatalf("temporary orders must be distinct and negative: %+v", plan.Updates)
	}
}

func TestMoveToRoot(t *testing.T) {
	nodes := chain(3)
	plan, err := PlanReorder(nodes, []Move{{ID: nodes[2].ID, ParentID: nil, Order: 5}})
	if err != nil {
		t.Fatalf("PlanReorder: %v", err)
	}
	if plan.Updates[0].ParentID != nil || plan.Updates[0].Order != 5 {
		t.Fatalf("unexpected update %+v", plan.Updates[0])
	}
}

func TestCheckPlacement(t *testing.T) {
	nodes := chain(5)
	if err := CheckPlacement(nodes, nil); err != nil {
		t.Fatalf("root placement: %v", err)
	}
	if err := CheckPlacement(nodes, ptr(nodes[3].ID)); err != nil {
		t.Fatalf("placement at depth 5: %v", err)
	}
	expectCode(t, CheckPlacement(nodes, ptr(nodes[4].ID)), CodeDepthExceeded)
	expectCode(t, CheckPlacement(nodes, ptr(uuid.New())), CodeInvalidParent)
}
