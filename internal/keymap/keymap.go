// Package keymap binds keys to actions per focus context and renders the
// help line from the same table.
package keymap

import "strings"

type Action string

const (
	ActionQuit        Action = "quit"
	ActionForceQuit   Action = "force_quit"
	ActionSwitchFocus Action = "switch_focus"
	ActionSearch      Action = "search"

	ActionMoveDown    Action = "move_down"
	ActionMoveUp      Action = "move_up"
	ActionRemove      Action = "remove"
	ActionUndo        Action = "undo"
	ActionActivate    Action = "activate"
	ActionContextMenu Action = "context_menu"
	ActionPlayPause   Action = "play_pause"
	ActionFindCurrent Action = "find_current"
)

// Context is the focus area a binding applies to.
type Context string

const (
	ContextGlobal   Context = "global"
	ContextPlaylist Context = "playlist"
	ContextSearch   Context = "search"
)

type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     Context
	Help        string // short help label, empty to hide from the help line
}

// All is the reel key table.
var All = []Binding{
	{ActionForceQuit, []string{"ctrl+c"}, "Quit", ContextGlobal, ""},
	{ActionSwitchFocus, []string{"tab", "shift+tab"}, "Switch focus", ContextGlobal, "focus"},
	{ActionQuit, []string{"q"}, "Quit", ContextPlaylist, "quit"},
	{ActionSearch, []string{"/"}, "Search", ContextPlaylist, "search"},

	{ActionActivate, []string{"enter"}, "Play item", ContextPlaylist, "play"},
	{ActionMoveDown, []string{"shift+j", "J", "shift+down"}, "Move item down", ContextPlaylist, "move"},
	{ActionMoveUp, []string{"shift+k", "K", "shift+up"}, "Move item up", ContextPlaylist, ""},
	{ActionRemove, []string{"d", "delete"}, "Remove item", ContextPlaylist, "remove"},
	{ActionUndo, []string{"u"}, "Undo remove", ContextPlaylist, "undo"},
	{ActionContextMenu, []string{"m"}, "Item info", ContextPlaylist, "info"},
	{ActionPlayPause, []string{" ", "space"}, "Play/pause", ContextPlaylist, "pause"},
	{ActionFindCurrent, []string{"c"}, "Go to current item", ContextPlaylist, ""},

	{ActionActivate, []string{"enter"}, "Add to playlist", ContextSearch, "add"},
}

var defaultResolver = NewResolver(All)

// Resolve looks key up in the default table.
func Resolve(ctx Context, key string) Action {
	return defaultResolver.Resolve(ctx, key)
}

// HelpLine renders the default table's help for ctx.
func HelpLine(ctx Context) string {
	return defaultResolver.HelpLine(ctx)
}

// Resolver maps keys to actions. Context bindings shadow global ones.
type Resolver struct {
	bindings map[Context]map[string]Action
	help     map[Context][]string
}

func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[Context]map[string]Action),
		help:     make(map[Context][]string),
	}
	for _, b := range bindings {
		keys := r.bindings[b.Context]
		if keys == nil {
			keys = make(map[string]Action)
			r.bindings[b.Context] = keys
		}
		for _, k := range b.Keys {
			keys[k] = b.Action
		}
		if b.Help != "" && len(b.Keys) > 0 {
			r.help[b.Context] = append(r.help[b.Context], b.Keys[0]+" "+b.Help)
		}
	}
	return r
}

// Resolve returns the action bound to key in ctx, falling back to global
// bindings. Unbound keys give "".
func (r *Resolver) Resolve(ctx Context, key string) Action {
	if a, ok := r.bindings[ctx][key]; ok {
		return a
	}
	return r.bindings[ContextGlobal][key]
}

// HelpLine lists the global and ctx bindings that carry a help label.
func (r *Resolver) HelpLine(ctx Context) string {
	parts := append([]string{}, r.help[ContextGlobal]...)
	if ctx != ContextGlobal {
		parts = append(parts, r.help[ctx]...)
	}
	return strings.Join(parts, " · ")
}
