package engine

import (
	"fmt"

	"github.com/vkedu/projects-bot/internal/catalog"
)

// dispatch routes a decoded button payload to its screen handler. The
// switch covers every Command; an unknown command gets the fallback.
func (e *Engine) dispatch(p Payload) Response {
	switch p.Cmd {
	case CmdGoHome:
		return e.mainMenu()

	case CmdGoBack:
		return e.goBack(p.Depth, p.Data)

	case CmdMenuFind:
		return e.findMenu()

	case CmdMenuFAQ:
		return e.faqPage(0)

	case CmdFAQPage:
		return e.faqPage(p.Data.Page)

	case CmdMenuHelp:
		return Response{Text: ContactsText, Keyboard: mainMenuKeyboard()}

	case CmdFindAllProjects:
		return e.listing(FilterContext{}, p.Data.Page)

	case CmdFindByDirection:
		return e.directionsPicker()

	case CmdFindByDuration:
		return e.durationsPicker()

	case CmdDirectionSelected:
		return e.listing(FilterContext{Direction: p.Data.Value}, p.Data.Page)

	case CmdDurationSelected:
		return e.listing(FilterContext{Duration: p.Data.Value}, p.Data.Page)

	case CmdProjectsPage:
		return e.listing(p.Data.Filter(), p.Data.Page)

	case CmdProjectDetails:
		return e.projectDetails(p.Depth, p.Data)

	case CmdFAQAnswer:
		return e.faqAnswer(p.Data.ID)

	default:
		return Response{Text: DefaultFallbackMessage, Keyboard: mainMenuKeyboard()}
	}
}

func (e *Engine) mainMenu() Response {
	return Response{Text: mainMenuPrompt, Keyboard: mainMenuKeyboard()}
}

func (e *Engine) findMenu() Response {
	return Response{Text: findMenuPrompt, Keyboard: findMenuKeyboard(depthFind)}
}

func (e *Engine) directionsPicker() Response {
	return Response{Text: chooseDirection, Keyboard: directionsKeyboard(e.repo.Directions(), depthPicker)}
}

func (e *Engine) durationsPicker() Response {
	return Response{Text: chooseDuration, Keyboard: durationsKeyboard(e.repo.Durations(), depthPicker)}
}

// goBack rebuilds the screen one level above. The button already carries
// the target depth; the filter context decides which variant of that level
// the user came through.
func (e *Engine) goBack(depth int, data Data) Response {
	switch {
	case depth <= depthMain:
		return e.mainMenu()

	case depth == depthFind:
		return e.findMenu()

	case depth == depthPicker:
		if data.Direction != "" {
			return e.directionsPicker()
		}
		if data.Duration != "" {
			return e.durationsPicker()
		}
		// came back from the unfiltered "all projects" listing
		return e.findMenu()

	default: // a listing: rebuild the same filters and page
		return e.listing(data.Filter(), data.Page)
	}
}

// listing renders one page of a (possibly filtered) project list.
func (e *Engine) listing(filter FilterContext, page int) Response {
	subset := e.repo.Filter(filter.Direction, filter.Duration)
	body := catalog.RenderShortList(subset, page, e.pageSize)

	var header string
	switch {
	case filter.Direction != "":
		header = fmt.Sprintf("Проекты по направлению «%s» (стр. %d):", filter.Direction, page+1)
	case filter.Duration != "":
		header = fmt.Sprintf("Проекты длительностью «%s» (стр. %d):", filter.Duration, page+1)
	default:
		header = fmt.Sprintf("Список всех проектов (страница %d):", page+1)
	}

	kb := projectsPageKeyboard(subset, page, e.pageSize, depthListing, filter)
	return Response{Text: header + "\n" + body, Keyboard: kb}
}

func (e *Engine) projectDetails(depth int, data Data) Response {
	p, ok := e.repo.FindByTitle(data.Title)
	if !ok {
		return Response{Text: projectNotFound, Keyboard: mainMenuKeyboard()}
	}
	return Response{
		Text:     catalog.RenderDetails(p),
		Keyboard: detailsKeyboard(depth, data.Page, data.Filter()),
	}
}

func (e *Engine) faqPage(page int) Response {
	kb := faqPageKeyboard(e.repo.FAQ(), page, e.pageSize, depthFAQ)
	return Response{Text: faqIntro, Keyboard: kb}
}

// faqAnswer shows question and answer for the pressed entry. The keyboard
// stays whatever the client already shows, so the user can keep browsing.
func (e *Engine) faqAnswer(id *int) Response {
	faq := e.repo.FAQ()
	if id == nil || *id < 0 || *id >= len(faq) {
		return Response{Text: DefaultFallbackMessage}
	}
	entry := faq[*id]
	return Response{Text: entry.Question + "\n\n" + entry.Answer}
}
