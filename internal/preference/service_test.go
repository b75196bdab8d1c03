package preference

import (
	"context"
	"errors"
	"testing"
)

func TestServiceDefaultsWhenNothingStored(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository(), "AED")

	cur, err := svc.Get(ctx, "client-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if cur.Code != "AED" {
		t.Fatalf("expected default AED, got %s", cur.Code)
	}
}

func TestServiceSetAndGet(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository(), "AED")

	cur, err := svc.Set(ctx, "client-1", "TRY")
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if cur.Symbol != "₺" {
		t.Fatalf("unexpected symbol: %s", cur.Symbol)
	}

	cur, err = svc.Get(ctx, "client-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if cur.Code != "TRY" {
		t.Fatalf("expected TRY, got %s", cur.Code)
	}
}

func TestServiceRejectsUnknownCurrency(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository(), "AED")

	if _, err := svc.Set(ctx, "client-1", "XYZ"); !errors.Is(err, ErrUnknownCurrency) {
		t.Fatalf("expected ErrUnknownCurrency, got %v", err)
	}
}

func TestServiceRequiresClientID(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepository(), "AED")

	if _, err := svc.Get(ctx, ""); err == nil {
		t.Fatal("expected error for empty client id")
	}
	if _, err := svc.Set(ctx, "", "USD"); err == nil {
		t.Fatal("expected error for empty client id")
	}
}
