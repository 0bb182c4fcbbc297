package engine

// Command identifies the screen a pressed button asks for. The set is
// closed: the dispatcher switches over every value and anything else is
// answered with the default fallback.
type Command string

const (
	CmdGoHome            Command = "go_home"
	CmdGoBack            Command = "go_back"
	CmdMenuFind          Command = "menu_find"
	CmdMenuFAQ           Command = "menu_faq"
	CmdFAQPage           Command = "faq_page"
	CmdMenuHelp          Command = "menu_help"
	CmdFindAllProjects   Command = "find_all_projects"
	CmdFindByDirection   Command = "find_by_direction"
	CmdFindByDuration    Command = "find_by_duration"
	CmdDirectionSelected Command = "direction_selected"
	CmdDurationSelected  Command = "duration_selected"
	CmdProjectsPage      Command = "projects_page"
	CmdProjectDetails    Command = "project_details"
	CmdFAQAnswer         Command = "faq_answer"
)

// Depth is assigned per screen kind, so "back" affordances follow from what
// the screen is rather than from how the user got there.
const (
	depthMain    = 0
	depthFind    = 1
	depthFAQ     = 1
	depthPicker  = 2
	depthListing = 3
)
