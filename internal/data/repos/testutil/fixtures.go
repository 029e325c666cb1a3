package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/Owhab/nexacms-sub002/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email, role string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:        uuid.New(),
		Email:     email,
		Password:  "pw",
		FirstName: "A",
		LastName:  "B",
		Role:      role,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedMenu(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.NavigationMenu {
	tb.Helper()
	m := &types.NavigationMenu{
		ID:       uuid.New(),
		Name:     name,
		Location: "header",
		IsActive: true,
	}
	if err := tx.WithContext(ctx).Create(m).Error; err != nil {
		tb.Fatalf("seed menu: %v", err)
	}
	return m
}

func SeedItem(tb testing.TB, ctx context.Context, tx *gorm.DB, menuID uuid.UUID, parentID *uuid.UUID, label string, order int) *types.NavigationItem {
	tb.Helper()
	it := &types.NavigationItem{
		ID:       uuid.New(),
		MenuID:   menuID,
		ParentID: parentID,
		Order:    order,
		Label:    label,
		Target:   types.NavigationTargetSelf,
		IsActive: true,
	}
	if err := tx.WithContext(ctx).Create(it).Error; err != nil {
		tb.Fatalf("seed item: %v", err)
	}
	return it
}
