// Package hooks binds the generic fetch orchestration to the Domain
// Client, one constructor per entity operation. There is no logic here
// beyond argument threading and page-size defaults.
package hooks

// Default page sizes. Rooms render a wider grid and page by 12.
const (
	DefaultPageSize      = 10
	DefaultRoomsPageSize = 12
)

// Update pairs an entity id with its patch for update mutations.
type Update[P any] struct {
	ID    int
	Patch P
}

// None is the empty mutation result (deletes).
type None = struct{}

func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func clampLimit(limit, def int) int {
	if limit < 1 {
		return def
	}
	return limit
}
