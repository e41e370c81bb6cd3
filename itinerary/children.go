package itinerary

import "github.com/Dhunu/vigovia/utils"

// child is satisfied by pointers to models.Activity, models.Transfer and
// models.Flight. Identifiers only address elements for update/removal;
// they are unique within one collection, nothing more.
type child[T any] interface {
	*T
	ChildID() string
	SetField(field string, value any)
}

// UpdateField returns the sequence with the named field replaced on the
// element matching id. Everything else, including order, is untouched; an
// unknown id is a silent no-op.
func UpdateField[T any, PT child[T]](items []T, id, field string, value any) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := range out {
		if PT(&out[i]).ChildID() == id {
			PT(&out[i]).SetField(field, value)
			break
		}
	}
	return out
}

// RemoveByID returns the sequence without the matching element; an
// unknown id is a silent no-op.
func RemoveByID[T any, PT child[T]](items []T, id string) []T {
	out := make([]T, 0, len(items))
	for i := range items {
		if PT(&items[i]).ChildID() != id {
			out = append(out, items[i])
		}
	}
	return out
}

// Append adds el at the end, keeping existing order.
func Append[T any](items []T, el T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, el)
}

// NewChildID returns a fresh identifier unused within items.
func NewChildID[T any, PT child[T]](items []T) string {
	for {
		id := utils.GetUUID()
		taken := false
		for i := range items {
			if PT(&items[i]).ChildID() == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}
