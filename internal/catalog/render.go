package catalog

import (
	"fmt"
	"strings"
)

// NothingFoundMessage is shown instead of a listing when a filter/page
// combination matches no projects.
const NothingFoundMessage = "По этому фильтру пока ничего не нашлось."

// RenderShortList renders one page of a project listing, one numbered line
// per project. Numbering is absolute across pages (page 2 starts at 6).
func RenderShortList(items []Project, page, pageSize int) string {
	pageItems := Paginate(items, page, pageSize)
	if len(pageItems) == 0 {
		return NothingFoundMessage
	}

	var b strings.Builder
	start := page*pageSize + 1
	for i, p := range pageItems {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s — %s \n", start+i, p.Title, p.ShortDescription)
	}
	return b.String()
}

// RenderCard renders the full project card shown for a keyword match.
func RenderCard(p Project) string {
	return fmt.Sprintf(
		"%s\nНаправление: %s\nДлительность: %s\n\n%s\n\n%s\nПодробнее: %s",
		p.Title, p.Direction, p.Duration, p.ShortDescription, p.FullDescription, p.Link,
	)
}

// RenderDetails renders the project card shown from the "details" button.
func RenderDetails(p Project) string {
	return fmt.Sprintf(
		"Проект - %s\n\nНаправление: %s\nДлительность: %s\n\n%s\n\nСсылка: %s",
		p.Title, p.Direction, p.Duration, p.FullDescription, p.Link,
	)
}
