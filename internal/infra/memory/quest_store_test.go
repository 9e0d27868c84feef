package memory

import (
	"context"
	"testing"

	"camp-portal/internal/domain"
)

func TestQuestStoreRoundTrip(t *testing.T) {
	store := NewQuestStore()
	ctx := context.Background()

	quests, err := store.Load(ctx, "sess-1")
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if len(quests) != 0 {
		t.Fatalf("expected no quests, got %d", len(quests))
	}

	saved := []domain.Quest{
		{Text: "Retrieve the lightning bolt"},
		{Text: "Visit the Oracle", Completed: true},
	}
	if err := store.Save(ctx, "sess-1", saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	quests, err = store.Load(ctx, "sess-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(quests) != 2 || quests[0].Text != "Retrieve the lightning bolt" || !quests[1].Completed {
		t.Fatalf("unexpected quests: %+v", quests)
	}

	// returned slice is a copy, mutating it must not touch the store
	quests[0].Completed = true
	again, _ := store.Load(ctx, "sess-1")
	if again[0].Completed {
		t.Fatal("store state mutated through returned slice")
	}
}

func TestQuestStoreIsolatesSessions(t *testing.T) {
	store := NewQuestStore()
	ctx := context.Background()

	if err := store.Save(ctx, "sess-1", []domain.Quest{{Text: "Train with Luke"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	quests, err := store.Load(ctx, "sess-2")
	if err != nil {
		t.Fatalf("load other session: %v", err)
	}
	if len(quests) != 0 {
		t.Fatalf("expected empty list for other session, got %d", len(quests))
	}
}
