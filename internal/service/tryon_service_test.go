package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Grendlee/fit-check/internal/domain"
	"github.com/Grendlee/fit-check/internal/llm"
)

func TestTryOn_HappyPath(t *testing.T) {
	svc := NewTryOnService(&llm.MockTryOnClient{Image: "aW1n", Description: "done"}, zap.NewNop())

	got, err := svc.GenerateTryOn(context.Background(), "", "Ym9keQ==", "Y2xvdGg=")
	if err != nil {
		t.Fatalf("try-on: %v", err)
	}
	if got.ImageBase64 != "aW1n" || got.Description != "done" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestTryOn_DefaultDescription(t *testing.T) {
	svc := NewTryOnService(&llm.MockTryOnClient{Image: "aW1n"}, zap.NewNop())

	got, err := svc.GenerateTryOn(context.Background(), "custom prompt", "Ym9keQ==", "Y2xvdGg=")
	if err != nil {
		t.Fatalf("try-on: %v", err)
	}
	if got.Description != "Try-on generated" {
		t.Fatalf("expected default description, got %q", got.Description)
	}
}

func TestTryOn_MissingImages(t *testing.T) {
	svc := NewTryOnService(&llm.MockTryOnClient{Image: "aW1n"}, zap.NewNop())

	_, err := svc.GenerateTryOn(context.Background(), "", "", "Y2xvdGg=")
	if !errors.Is(err, domain.ErrMissingImage) {
		t.Fatalf("expected ErrMissingImage for body, got %v", err)
	}
	_, err = svc.GenerateTryOn(context.Background(), "", "Ym9keQ==", " ")
	if !errors.Is(err, domain.ErrMissingImage) {
		t.Fatalf("expected ErrMissingImage for clothing, got %v", err)
	}
}

func TestTryOn_ModelFailureSurfaces(t *testing.T) {
	upstream := errors.New("text only, no image")
	svc := NewTryOnService(&llm.MockTryOnClient{Err: upstream}, zap.NewNop())

	_, err := svc.GenerateTryOn(context.Background(), "", "Ym9keQ==", "Y2xvdGg=")
	if !errors.Is(err, upstream) {
		t.Fatalf("expected upstream error surfaced, got %v", err)
	}
}
