package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type action string

type binding struct {
	Action action
	Keys   []string
	Help   string
}

// keyRegistry maps key names to actions per scope. Lookups fall back to the
// global scope.
type keyRegistry struct {
	bindingsByScope map[string][]*binding
	indexByScope    map[string]map[string]*binding
}

const (
	scopeGlobal   = "global"
	scopeCatalog  = "catalog"
	scopeSearch   = "search"
	scopeDetail   = "detail"
	scopeSettings = "settings"
)

const (
	actionQuit       action = "quit"
	actionNextAge    action = "next_age"
	actionPrevAge    action = "prev_age"
	actionAge        action = "age"
	actionUp         action = "up"
	actionDown       action = "down"
	actionLeft       action = "left"
	actionRight      action = "right"
	actionOpen       action = "open"
	actionClose      action = "close"
	actionSearch     action = "search"
	actionSettings   action = "settings"
	actionToggle     action = "toggle"
	actionPageUp     action = "page_up"
	actionPageDown   action = "page_down"
	actionConfirm    action = "confirm"
	actionClearQuery action = "clear_query"
)

func newKeyRegistry() *keyRegistry {
	r := &keyRegistry{
		bindingsByScope: make(map[string][]*binding),
		indexByScope:    make(map[string]map[string]*binding),
	}
	reg := func(scope string, a action, keys []string, help string) {
		r.register(scope, binding{Action: a, Keys: keys, Help: help})
	}

	reg(scopeGlobal, actionQuit, []string{"ctrl+c"}, "quit")

	reg(scopeCatalog, actionAge, []string{"1-4", "1", "2", "3", "4"}, "age")
	reg(scopeCatalog, actionNextAge, []string{"tab", "]"}, "next age")
	reg(scopeCatalog, actionPrevAge, []string{"shift+tab", "["}, "prev age")
	reg(scopeCatalog, actionUp, []string{"↑/k", "up", "k"}, "")
	reg(scopeCatalog, actionDown, []string{"↓/j", "down", "j"}, "")
	reg(scopeCatalog, actionLeft, []string{"←/h", "left", "h"}, "")
	reg(scopeCatalog, actionRight, []string{"→/l", "right", "l"}, "move")
	reg(scopeCatalog, actionOpen, []string{"enter"}, "open lesson")
	reg(scopeCatalog, actionSearch, []string{"/"}, "search")
	reg(scopeCatalog, actionClearQuery, []string{"esc"}, "clear search")
	reg(scopeCatalog, actionSettings, []string{"s"}, "accessibility")
	reg(scopeCatalog, actionQuit, []string{"q"}, "quit")

	reg(scopeSearch, actionConfirm, []string{"enter"}, "apply")
	reg(scopeSearch, actionClose, []string{"esc"}, "cancel")

	reg(scopeDetail, actionUp, []string{"↑/k", "up", "k"}, "")
	reg(scopeDetail, actionDown, []string{"↓/j", "down", "j"}, "step")
	reg(scopeDetail, actionToggle, []string{"enter", "space"}, "expand")
	reg(scopeDetail, actionPageUp, []string{"pgup", "ctrl+u"}, "")
	reg(scopeDetail, actionPageDown, []string{"pgdown", "ctrl+d"}, "scroll")
	reg(scopeDetail, actionSettings, []string{"s"}, "accessibility")
	reg(scopeDetail, actionClose, []string{"esc", "q"}, "close")

	reg(scopeSettings, actionUp, []string{"↑/k", "up", "k"}, "")
	reg(scopeSettings, actionDown, []string{"↓/j", "down", "j"}, "field")
	reg(scopeSettings, actionLeft, []string{"←/h", "left", "h"}, "")
	reg(scopeSettings, actionRight, []string{"→/l", "right", "l"}, "text size")
	reg(scopeSettings, actionToggle, []string{"space", "enter"}, "toggle")
	reg(scopeSettings, actionClose, []string{"esc", "s", "q"}, "close")

	return r
}

func (r *keyRegistry) register(scope string, b binding) {
	if _, ok := r.indexByScope[scope]; !ok {
		r.indexByScope[scope] = make(map[string]*binding)
	}
	keys := normalizeKeyList(b.Keys)
	if len(keys) == 0 {
		return
	}
	copyBinding := b
	copyBinding.Keys = keys
	r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &copyBinding)
	for _, k := range keys {
		if _, taken := r.indexByScope[scope][k]; taken {
			continue
		}
		r.indexByScope[scope][k] = &copyBinding
	}
}

// lookup resolves keyName in scope, then in the global scope.
func (r *keyRegistry) lookup(keyName, scope string) action {
	keyName = normalizeKeyName(keyName)
	if keyName == "" {
		return ""
	}
	if b, ok := r.indexByScope[scope][keyName]; ok {
		return b.Action
	}
	if b, ok := r.indexByScope[scopeGlobal][keyName]; ok {
		return b.Action
	}
	return ""
}

// helpBindings returns the footer help for scope. The first key of each
// binding is its display label; bindings with empty help are folded into the
// next one that has help.
func (r *keyRegistry) helpBindings(scope string) []key.Binding {
	items := r.bindingsByScope[scope]
	out := make([]key.Binding, 0, len(items))
	var pending []string
	for _, b := range items {
		pending = append(pending, b.Keys[0])
		if b.Help == "" {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(strings.Join(pending, " "), b.Help)))
		pending = nil
	}
	return out
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	s := strings.ToLower(strings.TrimSpace(k))
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	return s
}
