// Package catalog holds the read-only project/FAQ data the bot serves.
// A Repository is loaded once at startup and atomically replaced by the
// scraper; handlers only ever see a complete snapshot.
package catalog

import "sync/atomic"

type Project struct {
	Title            string `json:"title"`
	Direction        string `json:"direction"`
	Duration         string `json:"duration"`
	ShortDescription string `json:"short_description"`
	FullDescription  string `json:"full_description"`
	Link             string `json:"link_to_project"`
}

// FacetValue is one selectable filter option. Count is display metadata
// from the storefront, not re-checked against the live project list.
type FacetValue struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Snapshot is the complete catalog state produced by one scraper run.
type Snapshot struct {
	Projects   []Project    `json:"available_projects"`
	Directions []FacetValue `json:"directions"`
	Durations  []FacetValue `json:"durations"`
}

// Repository gives handlers a consistent view of the catalog and the FAQ
// list. Reads are lock-free; Replace swaps the whole snapshot at once so
// in-flight requests never observe a partially updated catalog.
type Repository struct {
	snapshot atomic.Pointer[Snapshot]
	faq      atomic.Pointer[[]FAQEntry]
}

func NewRepository(snap Snapshot, faq []FAQEntry) *Repository {
	r := &Repository{}
	r.Replace(snap)
	r.ReplaceFAQ(faq)
	return r
}

func (r *Repository) Replace(snap Snapshot) {
	r.snapshot.Store(&snap)
}

func (r *Repository) ReplaceFAQ(faq []FAQEntry) {
	r.faq.Store(&faq)
}

func (r *Repository) Projects() []Project      { return r.snapshot.Load().Projects }
func (r *Repository) Directions() []FacetValue { return r.snapshot.Load().Directions }
func (r *Repository) Durations() []FacetValue  { return r.snapshot.Load().Durations }
func (r *Repository) FAQ() []FAQEntry          { return *r.faq.Load() }

// Filter returns projects matching every non-empty filter, in load order.
func (r *Repository) Filter(direction, duration string) []Project {
	res := r.Projects()
	if direction != "" {
		res = matching(res, func(p Project) bool { return p.Direction == direction })
	}
	if duration != "" {
		res = matching(res, func(p Project) bool { return p.Duration == duration })
	}
	return res
}

// FindByTitle returns the first project with the given title, titles being
// the catalog's identity key.
func (r *Repository) FindByTitle(title string) (Project, bool) {
	for _, p := range r.Projects() {
		if p.Title == title {
			return p, true
		}
	}
	return Project{}, false
}

func matching(projects []Project, keep func(Project) bool) []Project {
	var res []Project
	for _, p := range projects {
		if keep(p) {
			res = append(res, p)
		}
	}
	return res
}

// Paginate returns the page-th slice of size pageSize. Pages past the end
// yield an empty slice, which callers render as "nothing found".
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 0 || pageSize <= 0 {
		return nil
	}
	start := page * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// MaxPage returns the index of the last non-empty page.
func MaxPage(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total - 1) / pageSize
}
