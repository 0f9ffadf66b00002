package models

// View is the filtered and/or sorted sequence of the catalog last shown to the user.
// Category is the active filter text ("" when unfiltered) and Sort the active
// ordering (SortNone when the view is in catalog order).
type View struct {
	Items    []Item
	Category string
	Sort     SortDirection
}
