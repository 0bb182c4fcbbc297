package engine

import (
	"fmt"

	"github.com/vkedu/projects-bot/internal/catalog"
	"github.com/vkedu/projects-bot/internal/vk"
)

// Labels sourced from catalog content are cut to fit VK's button limit.
const (
	maxFAQLabel   = 35
	maxTitleLabel = 36
)

func button(label string, cmd Command, depth int, color string, data Data) vk.Button {
	p := Payload{Cmd: cmd, Depth: depth, Data: data}
	return vk.TextButton(label, p.encode(), color)
}

// navTail builds the trailing navigation row:
// depth 0 → nothing, depth 1 → [Back], depth ≥2 → [Back, Home].
// Back always targets the level above the current screen.
func navTail(depth int) []vk.Button {
	var buttons []vk.Button
	if depth >= 1 {
		buttons = append(buttons, button("🔙 Назад", CmdGoBack, max(depth-1, 0), vk.ColorNegative, Data{}))
	}
	if depth >= 2 {
		buttons = append(buttons, button("🏠 Главное меню", CmdGoHome, depthMain, vk.ColorSecondary, Data{}))
	}
	return buttons
}

func mainMenuKeyboard() *vk.Keyboard {
	return &vk.Keyboard{Buttons: [][]vk.Button{
		{button("📚 Посмотреть проекты", CmdMenuFind, depthMain, vk.ColorPrimary, Data{})},
		{button("❓ Частые вопросы (FAQ)", CmdMenuFAQ, depthMain, vk.ColorSecondary, Data{})},
		{button("☎️ Помощь / Контакты", CmdMenuHelp, depthMain, vk.ColorSecondary, Data{})},
	}}
}

func findMenuKeyboard(depth int) *vk.Keyboard {
	return &vk.Keyboard{Buttons: [][]vk.Button{
		{button("🗂️ Посмотреть все проекты", CmdFindAllProjects, depth, vk.ColorPrimary, Data{})},
		{button("По направлению", CmdFindByDirection, depth, vk.ColorPrimary, Data{})},
		{button("По длительности", CmdFindByDuration, depth, vk.ColorPrimary, Data{})},
		navTail(depth),
	}}
}

// facetRows lays facet options out two per row, each button carrying the
// chosen value so the next screen can filter by it.
func facetRows(values []catalog.FacetValue, cmd Command, depth int) [][]vk.Button {
	var rows [][]vk.Button
	var row []vk.Button
	for _, v := range values {
		label := fmt.Sprintf("%s (%d)", v.Value, v.Count)
		row = append(row, button(label, cmd, depth, vk.ColorPrimary, Data{Value: v.Value}))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}

func directionsKeyboard(directions []catalog.FacetValue, depth int) *vk.Keyboard {
	rows := facetRows(directions, CmdDirectionSelected, depth)
	rows = append(rows, navTail(depth))
	return &vk.Keyboard{Buttons: rows}
}

func durationsKeyboard(durations []catalog.FacetValue, depth int) *vk.Keyboard {
	rows := facetRows(durations, CmdDurationSelected, depth)
	rows = append(rows, navTail(depth))
	return &vk.Keyboard{Buttons: rows}
}

func faqPageKeyboard(faq []catalog.FAQEntry, page, pageSize, depth int) *vk.Keyboard {
	var rows [][]vk.Button

	start := page * pageSize
	for i, entry := range catalog.Paginate(faq, page, pageSize) {
		id := start + i
		rows = append(rows, []vk.Button{
			button(truncate(entry.Question, maxFAQLabel), CmdFAQAnswer, depth, vk.ColorPrimary, Data{ID: &id}),
		})
	}

	var nav []vk.Button
	if page > 0 {
		nav = append(nav, button("⬅ Предыдущие", CmdFAQPage, depth, vk.ColorSecondary, Data{Page: page - 1}))
	}
	if page < catalog.MaxPage(len(faq), pageSize) {
		nav = append(nav, button("Следующие ➡", CmdFAQPage, depth, vk.ColorSecondary, Data{Page: page + 1}))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	rows = append(rows, navTail(depth))
	return &vk.Keyboard{Buttons: rows}
}

// projectsPageKeyboard builds the listing keyboard. Every button forwards
// the active filter and page so that details, paging and "back" can rebuild
// this exact view with no state on the server.
func projectsPageKeyboard(projects []catalog.Project, page, pageSize, depth int, filter FilterContext) *vk.Keyboard {
	var rows [][]vk.Button

	for _, p := range catalog.Paginate(projects, page, pageSize) {
		data := filter.data(page)
		data.Title = p.Title
		rows = append(rows, []vk.Button{
			button(truncate(p.Title, maxTitleLabel), CmdProjectDetails, depth, vk.ColorPrimary, data),
		})
	}

	var nav []vk.Button
	if page > 0 {
		nav = append(nav, button("⬅ Предыдущие", CmdProjectsPage, depth, vk.ColorSecondary, filter.data(page-1)))
	}
	if (page+1)*pageSize < len(projects) {
		nav = append(nav, button("Следующие ➡", CmdProjectsPage, depth, vk.ColorSecondary, filter.data(page+1)))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	tail := []vk.Button{
		button("🔙 Назад", CmdGoBack, depth-1, vk.ColorNegative, filter.data(page)),
	}
	if depth >= 2 {
		tail = append(tail, button("🏠 Главное меню", CmdGoHome, depthMain, vk.ColorSecondary, Data{}))
	}
	rows = append(rows, tail)

	return &vk.Keyboard{Buttons: rows}
}

// detailsKeyboard is the two-button tail under a project card: Back rebuilds
// the listing the card was opened from, Home jumps to the main menu.
func detailsKeyboard(depth, page int, filter FilterContext) *vk.Keyboard {
	return &vk.Keyboard{Buttons: [][]vk.Button{{
		button("🔙 Назад", CmdGoBack, depth, vk.ColorNegative, filter.data(page)),
		button("🏠 Главное меню", CmdGoHome, depthMain, vk.ColorSecondary, Data{}),
	}}}
}

func truncate(s string, maxRunes int) string {
	r := []rune(s)
	if len(r) <= maxRunes {
		return s
	}
	return string(r[:maxRunes]) + "…"
}
