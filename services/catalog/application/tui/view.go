package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the active screen.
func (m Model) View() string {
	var body string
	switch m.screen {
	case screenDetail:
		body = m.detailView()
	case screenForm:
		body = m.formView()
	default:
		body = m.listView()
	}
	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = errorStyle
		}
		body += "\n" + style.Render(m.status)
	}
	return body + "\n"
}

func (m Model) listView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Wardrobe"))
	b.WriteString("\n")

	filter := m.view.Category
	if m.filterMode {
		filter = m.filterQuery + "█"
	}
	if filter == "" {
		filter = placeholderFg.Render("Search by Category")
	}
	b.WriteString(labelStyle.Render("Category: ") + filter)
	if m.view.Sort != "" {
		b.WriteString(labelStyle.Render("   Sort: ") + m.view.Sort.String())
	}
	b.WriteString("\n\n")

	if len(m.view.Items) == 0 {
		b.WriteString(placeholderFg.Render("No items."))
		b.WriteString("\n")
	}
	for i, item := range m.view.Items {
		line := fmt.Sprintf("%-24s %-16s %s", truncate(item.Name, 24), truncate(item.Category, 16), priceStyle.Render(item.Price.String()))
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString(rowStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	help := "↑/↓ move • enter details • / filter • s sort asc • S sort desc • r reset • a add • e edit • d delete • q quit"
	if m.filterMode {
		help = "type a category • enter apply • esc cancel"
	}
	hs := helpStyle
	if m.width > 0 {
		hs = hs.Width(m.width)
	}
	b.WriteString(hs.Render(help))
	return b.String()
}

func (m Model) detailView() string {
	item := m.detail
	lines := []string{
		titleStyle.Render(item.Name),
		labelStyle.Render("Category: ") + item.Category,
		labelStyle.Render("Price:    ") + priceStyle.Render(item.Price.String()),
		"",
		item.Description,
	}
	return detailBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)) + "\n" +
		helpStyle.Render("esc back • e edit • d delete")
}

func (m Model) formView() string {
	title := "Add Item"
	submit := "Add Product"
	if m.form.editing != "" {
		title = "Edit Item"
		submit = "Save"
	}

	rows := []string{titleStyle.Render(title)}
	for i := 0; i < fieldCount; i++ {
		value := m.form.fields[i]
		if value == "" && i != m.form.focus {
			value = placeholderFg.Render(fieldLabels[i])
		}
		style := blurredField
		if i == m.form.focus {
			style = focusedField
			value += "█"
		}
		rows = append(rows, style.Render(value))
	}
	rows = append(rows, helpStyle.Render("tab/↓ next • shift+tab/↑ previous • enter on last field or ctrl+s "+submit+" • esc cancel"))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
