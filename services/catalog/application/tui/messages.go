package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ghuser/wardrobe/services/catalog/domain/models"
)

// Catalog is the subset of the catalog service the terminal UI drives.
type Catalog interface {
	View(ctx context.Context) (models.View, error)
	GetItem(ctx context.Context, id models.ItemID) (*models.Item, error)
	AddItem(ctx context.Context, name, category, priceText, description string) (*models.Item, error)
	UpdateItem(ctx context.Context, id models.ItemID, name, category, priceText, description string) (*models.Item, error)
	DeleteItem(ctx context.Context, id models.ItemID) error
	FilterByCategory(ctx context.Context, category string) ([]models.Item, error)
	Sort(ctx context.Context, dir models.SortDirection) ([]models.Item, error)
	ResetView(ctx context.Context) (models.View, error)
}

type viewLoadedMsg struct {
	view   models.View
	status string
}

type itemLoadedMsg struct {
	item models.Item
}

type itemSavedMsg struct {
	item    models.Item
	created bool
}

type itemDeletedMsg struct {
	id models.ItemID
}

type errMsg struct {
	err error
}

func (m Model) loadView(status string) tea.Cmd {
	return func() tea.Msg {
		v, err := m.catalog.View(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		return viewLoadedMsg{view: v, status: status}
	}
}

func (m Model) filterCmd(category string) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.catalog.FilterByCategory(m.ctx, category); err != nil {
			return errMsg{err}
		}
		return m.loadView("")()
	}
}

func (m Model) sortCmd(dir models.SortDirection) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.catalog.Sort(m.ctx, dir); err != nil {
			return errMsg{err}
		}
		return m.loadView("")()
	}
}

func (m Model) resetCmd() tea.Cmd {
	return func() tea.Msg {
		if _, err := m.catalog.ResetView(m.ctx); err != nil {
			return errMsg{err}
		}
		return m.loadView("View reset.")()
	}
}

func (m Model) getItemCmd(id models.ItemID) tea.Cmd {
	return func() tea.Msg {
		item, err := m.catalog.GetItem(m.ctx, id)
		if err != nil {
			return errMsg{err}
		}
		return itemLoadedMsg{item: *item}
	}
}

func (m Model) deleteCmd(id models.ItemID) tea.Cmd {
	return func() tea.Msg {
		if err := m.catalog.DeleteItem(m.ctx, id); err != nil {
			return errMsg{err}
		}
		return itemDeletedMsg{id: id}
	}
}

func (m Model) saveCmd(f form) tea.Cmd {
	return func() tea.Msg {
		name, category, price, description := f.values()
		if f.editing == "" {
			item, err := m.catalog.AddItem(m.ctx, name, category, price, description)
			if err != nil {
				return errMsg{err}
			}
			return itemSavedMsg{item: *item, created: true}
		}
		item, err := m.catalog.UpdateItem(m.ctx, f.editing, name, category, price, description)
		if err != nil {
			return errMsg{err}
		}
		return itemSavedMsg{item: *item}
	}
}
