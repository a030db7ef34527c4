package draft

import (
	"errors"
	"testing"

	"boxroom/internal/model"
)

func TestBuildAllNoneIsEmptySelection(t *testing.T) {
	customers := listing()
	m := New(customers)

	_, err := Build(customers, m)
	var empty *EmptySelectionError
	if !errors.As(err, &empty) {
		t.Fatalf("expected EmptySelectionError, got %v", err)
	}
}

func TestBuildFailsFastOnMissingOrigin(t *testing.T) {
	customers := listing()
	m := New(customers)

	// First row is the violation; a valid row after it must not rescue the batch.
	m.SetType("c-1", model.DispositionPackage)
	m.SetType("c-2", model.DispositionMail)

	_, err := Build(customers, m)
	var missing *MissingOriginError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingOriginError, got %v", err)
	}
	if missing.BoxNumber != "101" || missing.CustomerID != "c-1" {
		t.Fatalf("expected error to name box 101, got %+v", missing)
	}
}

func TestBuildDistinguishesErrorKinds(t *testing.T) {
	customers := listing()
	m := New(customers)
	m.SetType("c-2", model.DispositionPackage)

	_, err := Build(customers, m)
	var empty *EmptySelectionError
	if errors.As(err, &empty) {
		t.Fatalf("missing origin must not report as empty selection")
	}
}

func TestBuildProjectsSelectedRowsInOrder(t *testing.T) {
	customers := listing()
	m := New(customers)
	m.SetType("c-1", model.DispositionMail)
	m.SetType("c-2", model.DispositionPackage)
	m.SetOrigin("c-2", "Seattle")
	// c-3 stays none and must be excluded.

	items, err := Build(customers, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].CustomerID != "c-1" || items[0].Type != model.DispositionMail || items[0].Origin != "" {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[1].CustomerID != "c-2" || items[1].Type != model.DispositionPackage || items[1].Origin != "Seattle" {
		t.Fatalf("unexpected second item: %+v", items[1])
	}
	// Full customer snapshot must ride along.
	if items[1].BoxNumber != "102" || items[1].Name != "Ben" || items[1].Email != "ben@example.com" {
		t.Fatalf("expected full customer fields, got %+v", items[1])
	}
}
