package generations

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestMemoryRepoCreateAndGet(t *testing.T) {
	repo := NewMemoryRepo()
	gen := Generation{ID: "gen-1", ResumeText: "resume", CoverLetter: "letter", CreatedAt: time.Now().UTC()}

	if err := repo.Create(context.Background(), gen); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := repo.GetByID(context.Background(), "gen-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.CoverLetter != "letter" {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestMemoryRepoRejectsMissingID(t *testing.T) {
	repo := NewMemoryRepo()
	if err := repo.Create(context.Background(), Generation{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMemoryRepoGetMissing(t *testing.T) {
	repo := NewMemoryRepo()
	if _, err := repo.GetByID(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepoListRecentOrdersAndLimits(t *testing.T) {
	repo := NewMemoryRepo()
	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		gen := Generation{
			ID:        fmt.Sprintf("gen-%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(context.Background(), gen); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	out, err := repo.ListRecent(context.Background(), 3)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 records, got %d", len(out))
	}
	if out[0].ID != "gen-4" || out[2].ID != "gen-2" {
		t.Fatalf("unexpected order: %+v", out)
	}
}

func TestMemoryRepoHonorsCancelledContext(t *testing.T) {
	repo := NewMemoryRepo()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := repo.Create(ctx, Generation{ID: "gen-1"}); err == nil {
		t.Fatalf("expected context error")
	}
}
