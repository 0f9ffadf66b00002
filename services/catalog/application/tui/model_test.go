package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ghuser/wardrobe/pkg/config"
	"github.com/ghuser/wardrobe/pkg/logger"
	appsvcs "github.com/ghuser/wardrobe/services/catalog/application/services"
	"github.com/ghuser/wardrobe/services/catalog/domain/models"
	"github.com/ghuser/wardrobe/services/catalog/infrastructure/persistence/memory"
)

func newTestModel(t *testing.T) (Model, *appsvcs.CatalogService) {
	t.Helper()
	log := logger.New(&config.Config{LogLevel: "error"})
	repo := memory.NewItemRepository(nil, log)
	if err := repo.Seed(models.SeedItems()...); err != nil {
		t.Fatalf("seed: %v", err)
	}
	svc := appsvcs.NewCatalogService(repo, appsvcs.Options{StrictPrices: true, SortScope: config.SortScopeView}, log)
	m := New(context.Background(), svc, log)
	return drain(t, m, m.Init()), svc
}

func key(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func apply(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return drain(t, got, cmd)
}

func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for i := 0; cmd != nil && i < 16; i++ {
		msg := cmd()
		if msg == nil {
			return m
		}
		if _, quit := msg.(tea.QuitMsg); quit {
			return m
		}
		next, nextCmd := m.Update(msg)
		m = next.(Model)
		cmd = nextCmd
	}
	return m
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m = apply(t, m, key(k))
	}
	return m
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = apply(t, m, key(string(r)))
	}
	return m
}

func names(m Model) string {
	out := make([]string, len(m.view.Items))
	for i, it := range m.view.Items {
		out[i] = it.Name
	}
	return strings.Join(out, ",")
}

func TestModel_InitLoadsCatalog(t *testing.T) {
	m, _ := newTestModel(t)
	if names(m) != "product1,product2" {
		t.Fatalf("unexpected list %q", names(m))
	}
	if !strings.Contains(m.View(), "product1") {
		t.Fatal("list screen does not render items")
	}
}

func TestModel_FilterAndSort(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "/")
	if !m.filterMode {
		t.Fatal("expected filter mode")
	}
	m = typeText(t, m, "CATEGORY2")
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.filterMode || names(m) != "product2" || m.view.Category != "CATEGORY2" {
		t.Fatalf("unexpected filtered view %q (category %q)", names(m), m.view.Category)
	}

	m = press(t, m, "r")
	if names(m) != "product1,product2" {
		t.Fatalf("reset: unexpected list %q", names(m))
	}

	m = press(t, m, "S")
	if names(m) != "product2,product1" || m.view.Sort != models.SortDescending {
		t.Fatalf("sort desc: unexpected list %q", names(m))
	}
	m = press(t, m, "s")
	if names(m) != "product1,product2" {
		t.Fatalf("sort asc: unexpected list %q", names(m))
	}
}

func TestModel_FilterEscapeKeepsView(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "/")
	m = typeText(t, m, "category1")
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.filterMode || names(m) != "product1,product2" {
		t.Fatalf("escape should cancel the filter, got %q", names(m))
	}
}

func TestModel_DetailScreen(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, "j")
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenDetail || m.detail.ID != "2" {
		t.Fatalf("expected detail of item 2, got screen %d item %q", m.screen, m.detail.ID)
	}
	out := m.View()
	for _, want := range []string{"product2", "category2", "50", "description2"} {
		if !strings.Contains(out, want) {
			t.Errorf("detail view missing %q", want)
		}
	}
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenList {
		t.Fatal("esc should return to the list")
	}
}

func TestModel_AddItem(t *testing.T) {
	m, svc := newTestModel(t)
	m = press(t, m, "/")
	m = typeText(t, m, "category1")
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = press(t, m, "a")
	if m.screen != screenForm {
		t.Fatal("expected form screen")
	}
	m = typeText(t, m, "shirt")
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "tops")
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "15")
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "plain")
	m = apply(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = typeText(t, m, "tee")
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.screen != screenList {
		t.Fatalf("expected list screen after submit, status %q", m.status)
	}
	if names(m) != "product1,product2,shirt" {
		t.Fatalf("expected full catalog with new item, got %q", names(m))
	}
	all, _ := svc.Items(context.Background())
	last := all[len(all)-1]
	if last.Category != "tops" || last.Price.String() != "15" || last.Description != "plain tee" {
		t.Fatalf("unexpected stored item %+v", last)
	}
}

func TestModel_AddItemInvalidPrice(t *testing.T) {
	m, svc := newTestModel(t)
	m = press(t, m, "a")
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "abc")
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	if m.screen != screenForm || !m.statusErr {
		t.Fatalf("expected to stay on the form with an error, screen %d status %q", m.screen, m.status)
	}
	all, _ := svc.Items(context.Background())
	if len(all) != 2 {
		t.Fatalf("invalid item must not be stored, got %d items", len(all))
	}
}

func TestModel_EditItem(t *testing.T) {
	m, svc := newTestModel(t)
	m = press(t, m, "e")
	if m.form.editing != "1" || m.form.fields[fieldName] != "product1" {
		t.Fatalf("expected edit form for item 1, got %+v", m.form)
	}
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = typeText(t, m, "9")
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	item, err := svc.GetItem(context.Background(), "1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if item.Name != "product9" {
		t.Fatalf("expected renamed item, got %q", item.Name)
	}
}

func TestModel_DeleteItem(t *testing.T) {
	m, svc := newTestModel(t)
	m = press(t, m, "d")
	if names(m) != "product2" {
		t.Fatalf("unexpected list after delete %q", names(m))
	}
	all, _ := svc.Items(context.Background())
	if len(all) != 1 || all[0].ID != "2" {
		t.Fatalf("unexpected catalog after delete %+v", all)
	}
	if m.cursor != 0 {
		t.Fatalf("cursor should clamp to 0, got %d", m.cursor)
	}
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}
