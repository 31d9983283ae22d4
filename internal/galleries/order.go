package galleries

// MoveDirection selects the neighbor an item is swapped with.
type MoveDirection int

const (
	MoveUp   MoveDirection = -1
	MoveDown MoveDirection = 1
)

// Renumber reassigns dense, 1-based sort orders in place, preserving the
// slice's relative order. Safe to call repeatedly; the result of calling it
// twice equals calling it once.
func Renumber(items []ItemDraft) []ItemDraft {
	for i := range items {
		items[i].SortOrder = i + 1
	}
	return items
}

// AppendItem adds a draft placeholder at the end of the list and renumbers.
func AppendItem(items []ItemDraft, item ItemDraft) []ItemDraft {
	return Renumber(append(items, item))
}

// RemoveItem drops the item at index and renumbers the remainder, closing
// any gap the removal left.
func RemoveItem(items []ItemDraft, index int) ([]ItemDraft, error) {
	if index < 0 || index >= len(items) {
		return items, ErrItemIndexInvalid
	}
	out := append(items[:index], items[index+1:]...)
	return Renumber(out), nil
}

// MoveItem swaps the item at index with its neighbor in the given direction,
// wholesale, then renumbers the full list. Moving the first item up or the
// last item down is a no-op rather than an error.
func MoveItem(items []ItemDraft, index int, direction MoveDirection) ([]ItemDraft, error) {
	if index < 0 || index >= len(items) {
		return items, ErrItemIndexInvalid
	}
	target := index + int(direction)
	if target < 0 || target >= len(items) {
		return Renumber(items), nil
	}
	items[index], items[target] = items[target], items[index]
	return Renumber(items), nil
}
