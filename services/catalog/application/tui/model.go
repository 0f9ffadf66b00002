// Package tui is the terminal front end of the catalog: a list screen with
// filter and sort, a read-only detail screen and an add/edit form.
package tui

import (
	"context"
	"errors"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ghuser/wardrobe/pkg/logger"
	catalogdomain "github.com/ghuser/wardrobe/services/catalog/domain"
	"github.com/ghuser/wardrobe/services/catalog/domain/models"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenForm
)

// Model is the Bubble Tea model. Every catalog call runs inside a tea.Cmd and
// comes back as a message, so Update itself never blocks.
type Model struct {
	ctx     context.Context
	catalog Catalog
	log     logger.Logger

	screen screen
	view   models.View
	cursor int

	filterMode  bool
	filterQuery string

	detail models.Item
	form   form

	status    string
	statusErr bool
	width     int
}

// New returns a Model over catalog. ctx bounds every catalog call.
func New(ctx context.Context, catalog Catalog, log logger.Logger) Model {
	return Model{ctx: ctx, catalog: catalog, log: log}
}

// Init loads the initial view.
func (m Model) Init() tea.Cmd {
	return m.loadView("")
}

// Update handles key presses and results of catalog commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case viewLoadedMsg:
		m.view = msg.view
		m.clampCursor()
		if msg.status != "" {
			m.setStatus(msg.status)
		}
		return m, nil
	case itemLoadedMsg:
		m.detail = msg.item
		m.screen = screenDetail
		return m, nil
	case itemSavedMsg:
		m.screen = screenList
		m.form = form{}
		if msg.created {
			return m, m.loadView("Added " + displayName(msg.item) + ".")
		}
		return m, m.loadView("Updated " + displayName(msg.item) + ".")
	case itemDeletedMsg:
		m.screen = screenList
		return m, m.loadView("Deleted.")
	case errMsg:
		m.log.ErrorContext(m.ctx, "catalog command failed", "error", msg.err)
		m.setError(msg.err)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.screen {
		case screenDetail:
			return m.updateDetail(msg)
		case screenForm:
			return m.updateForm(msg)
		default:
			if m.filterMode {
				return m.updateFilter(msg)
			}
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.view.Items)-1 {
			m.cursor++
		}
	case "/":
		m.filterMode = true
		m.filterQuery = m.view.Category
	case "s":
		return m, m.sortCmd(models.SortAscending)
	case "S":
		return m, m.sortCmd(models.SortDescending)
	case "r":
		m.filterQuery = ""
		return m, m.resetCmd()
	case "a":
		m.form = form{}
		m.screen = screenForm
	case "e":
		if item, ok := m.selected(); ok {
			m.form = newEditForm(item)
			m.screen = screenForm
		}
	case "d":
		if item, ok := m.selected(); ok {
			return m, m.deleteCmd(item.ID)
		}
	case "enter":
		if item, ok := m.selected(); ok {
			return m, m.getItemCmd(item.ID)
		}
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filterMode = false
		m.filterQuery = m.view.Category
		return m, nil
	case tea.KeyEnter:
		m.filterMode = false
		m.cursor = 0
		return m, m.filterCmd(m.filterQuery)
	case tea.KeyBackspace:
		if r := []rune(m.filterQuery); len(r) > 0 {
			m.filterQuery = string(r[:len(r)-1])
		}
		return m, nil
	case tea.KeyRunes, tea.KeySpace:
		for _, r := range msg.Runes {
			if unicode.IsPrint(r) {
				m.filterQuery += string(r)
			}
		}
		if msg.Type == tea.KeySpace && len(msg.Runes) == 0 {
			m.filterQuery += " "
		}
	}
	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace", "q":
		m.screen = screenList
	case "e":
		m.form = newEditForm(m.detail)
		m.screen = screenForm
	case "d":
		return m, m.deleteCmd(m.detail.ID)
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.screen = screenList
		m.form = form{}
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		m.form.next()
	case tea.KeyShiftTab, tea.KeyUp:
		m.form.prev()
	case tea.KeyCtrlS:
		return m, m.saveCmd(m.form)
	case tea.KeyEnter:
		if m.form.focus == fieldCount-1 {
			return m, m.saveCmd(m.form)
		}
		m.form.next()
	case tea.KeyBackspace:
		m.form.backspace()
	case tea.KeySpace:
		m.form.typeRunes([]rune{' '})
	case tea.KeyRunes:
		m.form.typeRunes(msg.Runes)
	}
	return m, nil
}

func (m Model) selected() (models.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.view.Items) {
		return models.Item{}, false
	}
	return m.view.Items[m.cursor], true
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.view.Items) {
		m.cursor = len(m.view.Items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.statusErr = true
	switch {
	case errors.Is(err, catalogdomain.ErrInvalidPrice):
		m.status = "Price must be a number."
	case errors.Is(err, catalogdomain.ErrItemNotFound):
		m.status = "That item no longer exists."
	default:
		m.status = err.Error()
	}
}

func displayName(item models.Item) string {
	if item.Name == "" {
		return "item " + item.ID.String()
	}
	return item.Name
}
