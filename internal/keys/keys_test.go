package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/edi/internal/input"
)

func TestDefaultKeyMap_KeyAssignments(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name     string
		binding  key.Binding
		expected []string
	}{
		{name: "Quit uses ctrl+q", binding: km.Quit, expected: []string{"ctrl+q"}},
		{name: "Save uses ctrl+s", binding: km.Save, expected: []string{"ctrl+s"}},
		{name: "Refresh uses ctrl+l", binding: km.Refresh, expected: []string{"ctrl+l"}},
		{name: "Backspace accepts ctrl+h", binding: km.Backspace, expected: []string{"backspace", "ctrl+h"}},
		{name: "Delete", binding: km.Delete, expected: []string{"delete"}},
		{name: "PageUp", binding: km.PageUp, expected: []string{"pgup"}},
		{name: "PageDown", binding: km.PageDown, expected: []string{"pgdown"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.binding.Keys())
		})
	}
}

func TestDefaultKeyMap_MatchesDecodedKeys(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name    string
		key     input.Key
		binding key.Binding
	}{
		{name: "ctrl+q quits", key: input.Control('q'), binding: km.Quit},
		{name: "ctrl+s saves", key: input.Control('s'), binding: km.Save},
		{name: "ctrl+h is backspace", key: input.Control('h'), binding: km.Backspace},
		{name: "del byte is backspace", key: input.Key{Kind: input.KindBackspace}, binding: km.Backspace},
		{name: "delete", key: input.Key{Kind: input.KindDelete}, binding: km.Delete},
		{name: "arrow up", key: input.Key{Kind: input.KindArrowUp}, binding: km.Up},
		{name: "home", key: input.Key{Kind: input.KindHome}, binding: km.Home},
		{name: "end", key: input.Key{Kind: input.KindEnd}, binding: km.End},
		{name: "page down", key: input.Key{Kind: input.KindPageDown}, binding: km.PageDown},
		{name: "enter", key: input.Key{Kind: input.KindEnter}, binding: km.Enter},
		{name: "escape", key: input.Key{Kind: input.KindEscape}, binding: km.Escape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, key.Matches(tt.key, tt.binding))
		})
	}
}

func TestDefaultKeyMap_PrintableMatchesNothing(t *testing.T) {
	km := DefaultKeyMap()
	all := []key.Binding{
		km.Up, km.Down, km.Left, km.Right, km.Home, km.End, km.PageUp, km.PageDown,
		km.Enter, km.Backspace, km.Delete, km.Save, km.Quit, km.Refresh, km.Escape,
	}

	for _, b := range []byte("qshjl ~\t") {
		require.False(t, key.Matches(input.Printable(b), all...), "printable %q must insert", b)
	}
}

func TestHelpLine(t *testing.T) {
	km := DefaultKeyMap()

	require.Equal(t, "HELP: Ctrl-S = save | Ctrl-Q = quit", HelpLine(km.ShortHelp()))
}

func TestHelpLine_SkipsDisabled(t *testing.T) {
	km := DefaultKeyMap()
	km.Save.SetEnabled(false)

	require.Equal(t, "HELP: Ctrl-Q = quit", HelpLine(km.ShortHelp()))
}
