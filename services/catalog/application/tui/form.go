package tui

import (
	"unicode"

	"github.com/ghuser/wardrobe/services/catalog/domain/models"
)

const (
	fieldName = iota
	fieldCategory
	fieldPrice
	fieldDescription
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Category", "Price", "Description"}

// form holds the add and edit screen inputs. editing is empty when adding.
type form struct {
	fields  [fieldCount]string
	focus   int
	editing models.ItemID
}

func newEditForm(item models.Item) form {
	return form{
		fields:  [fieldCount]string{item.Name, item.Category, item.Price.String(), item.Description},
		editing: item.ID,
	}
}

func (f form) values() (name, category, price, description string) {
	return f.fields[fieldName], f.fields[fieldCategory], f.fields[fieldPrice], f.fields[fieldDescription]
}

func (f *form) next() { f.focus = (f.focus + 1) % fieldCount }

func (f *form) prev() { f.focus = (f.focus + fieldCount - 1) % fieldCount }

func (f *form) typeRunes(rs []rune) {
	for _, r := range rs {
		if unicode.IsPrint(r) {
			f.fields[f.focus] += string(r)
		}
	}
}

func (f *form) backspace() {
	s := []rune(f.fields[f.focus])
	if len(s) > 0 {
		f.fields[f.focus] = string(s[:len(s)-1])
	}
}
