// Package scraper refreshes the project catalog from the storefront API.
// It pages through product slices, strips HTML out of descriptions, picks
// the direction/duration facets up from the first slice that carries them
// and deduplicates projects by title.
package scraper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/vkedu/projects-bot/internal/catalog"
)

const defaultMaxSlices = 3

const (
	charDirection = "Направление"
	charDuration  = "Длительность работы"
	notSpecified  = "Не указано"
)

var tagRe = regexp.MustCompile(`<[^>]*>`)

type Scraper struct {
	urlTemplate string // printf template, %d is the slice number
	maxSlices   int
	http        *http.Client
}

func New(urlTemplate string) *Scraper {
	return &Scraper{
		urlTemplate: urlTemplate,
		maxSlices:   defaultMaxSlices,
		http:        &http.Client{Timeout: 15 * time.Second},
	}
}

// Run fetches every slice and assembles a catalog snapshot. Individual
// slice failures are logged and skipped; an entirely empty result is an
// error so a broken API never wipes out a previously saved snapshot.
func (s *Scraper) Run(ctx context.Context) (catalog.Snapshot, error) {
	var snap catalog.Snapshot
	seen := make(map[string]bool)
	gotFilters := false
	total := -1

	for i := 1; i <= s.maxSlices; i++ {
		page, err := s.fetchSlice(ctx, i)
		if err != nil {
			log.Printf("scraper: slice %d: %v", i, err)
			continue
		}
		if page.Status == "ERROR" {
			log.Printf("scraper: API error for slice %d: %s", i, page.Message)
			continue
		}

		if !gotFilters && page.Filters != nil {
			snap.Directions, snap.Durations = extractFacets(page.Filters)
			if len(snap.Directions) > 0 || len(snap.Durations) > 0 {
				log.Printf("scraper: facets extracted: %d directions, %d durations",
					len(snap.Directions), len(snap.Durations))
				gotFilters = true
			}
		}
		if page.Total != nil {
			total = *page.Total
		}

		if len(page.Products) == 0 {
			log.Printf("scraper: slice %d carries no products", i)
			if total >= 0 && len(snap.Projects) >= total {
				break
			}
			continue
		}

		for _, dto := range page.Products {
			p := extractProject(dto)
			if seen[p.Title] {
				continue
			}
			seen[p.Title] = true
			snap.Projects = append(snap.Projects, p)
		}
		log.Printf("scraper: slice %d done, %d projects collected", i, len(snap.Projects))
	}

	if len(snap.Projects) == 0 {
		return catalog.Snapshot{}, errors.New("no projects collected")
	}
	if total >= 0 && len(snap.Projects) != total {
		log.Printf("scraper: collected %d projects but the API reports %d in total", len(snap.Projects), total)
	}
	return snap, nil
}

func (s *Scraper) fetchSlice(ctx context.Context, slice int) (*productsResponse, error) {
	url := fmt.Sprintf(s.urlTemplate, slice)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, firstBytes(body, 200))
	}

	var page productsResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}
	return &page, nil
}

func extractProject(dto productDTO) catalog.Project {
	p := catalog.Project{
		Title:            dto.Title,
		Direction:        notSpecified,
		Duration:         notSpecified,
		ShortDescription: cleanHTML(dto.Descr),
		FullDescription:  cleanHTML(dto.Text),
	}
	if p.Title == "" {
		log.Printf("scraper: product without a title")
		p.Title = "Название не указано"
	}
	if p.ShortDescription == "" && p.FullDescription == "" {
		log.Printf("scraper: project %q has no description", p.Title)
	}

	if strings.HasPrefix(dto.Brand, "http://") || strings.HasPrefix(dto.Brand, "https://") {
		p.Link = dto.Brand
	} else {
		log.Printf("scraper: project %q has an invalid link %q", p.Title, dto.Brand)
	}

	for _, c := range dto.Characteristics {
		switch c.Title {
		case charDirection:
			p.Direction = c.Value
		case charDuration:
			p.Duration = c.Value
		}
	}
	return p
}

func extractFacets(dto *filtersDTO) (directions, durations []catalog.FacetValue) {
	for _, f := range dto.Filters {
		var values []catalog.FacetValue
		for _, v := range f.Values {
			if v.Value == nil || v.Count == nil {
				log.Printf("scraper: skipping facet value for %q: value or count missing", f.Label)
				continue
			}
			values = append(values, catalog.FacetValue{Value: *v.Value, Count: *v.Count})
		}
		switch f.Label {
		case charDirection:
			directions = values
		case charDuration:
			durations = values
		}
	}
	return directions, durations
}

// cleanHTML strips tags, unescapes entities and collapses whitespace.
func cleanHTML(raw string) string {
	if raw == "" {
		return ""
	}
	text := tagRe.ReplaceAllString(raw, " ")
	text = html.UnescapeString(text)
	return strings.Join(strings.Fields(text), " ")
}

func firstBytes(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}
