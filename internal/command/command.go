// Package command maps voice transcripts and keyboard shortcuts to navigation targets
package command

import "strings"

// Client side actions that are not navigations
const (
	ActionFocusSearch   = "focus_search"
	ActionShowShortcuts = "show_shortcuts"
	ActionHideShortcuts = "hide_shortcuts"
)

// Result is what the client should do. Exactly one field is set.
type Result struct {
	Route  string `json:"route,omitempty"`
	Action string `json:"action,omitempty"`
}

type voiceRule struct {
	phrase string
	route  string
}

// first match wins, so more specific phrases come first
var voiceRules = []voiceRule{
	{"show rejected resumes", "/hr/search?status=rejected"},
	{"upload resume", "/hr/upload"},
	{"dashboard", "/hr"},
	{"settings", "/hr/settings"},
}

// ResolveVoice matches a spoken command, ignoring case
func ResolveVoice(transcript string) (Result, bool) {
	t := strings.ToLower(strings.TrimSpace(transcript))
	if t == "" {
		return Result{}, false
	}
	for _, r := range voiceRules {
		if strings.Contains(t, r.phrase) {
			return Result{Route: r.route}, true
		}
	}
	return Result{}, false
}

// Shortcut is a key press together with the page it happened on
type Shortcut struct {
	Key  string `json:"key" binding:"required"`
	Ctrl bool   `json:"ctrl"`
	Path string `json:"path"`
}

// ShortcutHelp describes one shortcut for the help overlay
type ShortcutHelp struct {
	Key         string `json:"key"`
	Description string `json:"description"`
}

// Shortcuts lists the documented shortcuts
var Shortcuts = []ShortcutHelp{
	{Key: "Ctrl + K", Description: "Focus search"},
	{Key: "Ctrl + H", Description: "Go to home"},
	{Key: "Ctrl + U", Description: "Upload resume (HR)"},
	{Key: "Ctrl + D", Description: "Dashboard"},
	{Key: "Ctrl + S", Description: "Settings"},
	{Key: "?", Description: "Show keyboard shortcuts"},
	{Key: "Esc", Description: "Close dialogs"},
}

// ResolveShortcut maps a key press to a Result. Some shortcuts only apply inside the HR or admin consoles.
func ResolveShortcut(s Shortcut) (Result, bool) {
	inHR := strings.Contains(s.Path, "/hr")
	inAdmin := strings.Contains(s.Path, "/admin")

	if s.Key == "Escape" {
		return Result{Action: ActionHideShortcuts}, true
	}
	if !s.Ctrl {
		if s.Key == "?" {
			return Result{Action: ActionShowShortcuts}, true
		}
		return Result{}, false
	}

	switch strings.ToLower(s.Key) {
	case "k":
		return Result{Action: ActionFocusSearch}, true
	case "h":
		return Result{Route: "/"}, true
	case "u":
		if inHR {
			return Result{Route: "/hr/upload"}, true
		}
	case "d":
		if inHR {
			return Result{Route: "/hr"}, true
		}
	case "s":
		if inHR {
			return Result{Route: "/hr/settings"}, true
		}
		if inAdmin {
			return Result{Route: "/admin/settings"}, true
		}
	}
	return Result{}, false
}
