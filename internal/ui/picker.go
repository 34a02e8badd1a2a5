package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Johannes-Berggren/webgit/internal/models"
)

// ErrPickCancelled is returned when the picker is closed without a choice.
var ErrPickCancelled = errors.New("no remote selected")

type pickerKeys struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Choose key.Binding
	Quit   key.Binding
}

func (k pickerKeys) short() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Quit}
}

var defaultPickerKeys = pickerKeys{
	Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
	Top:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	Bottom: key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	Choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "cancel")),
}

// RemotePicker lets the user choose one remote by name.
type RemotePicker struct {
	remotes []models.Remote
	cursor  int
	chosen  string
	done    bool
	keys    pickerKeys
	help    help.Model
}

// NewRemotePicker lists each remote name once. The cursor starts on
// preselect when present.
func NewRemotePicker(remotes []models.Remote, preselect string) *RemotePicker {
	p := &RemotePicker{
		keys: defaultPickerKeys,
		help: help.New(),
	}

	seen := map[string]struct{}{}
	for _, r := range remotes {
		if _, ok := seen[r.Name]; ok {
			continue
		}
		seen[r.Name] = struct{}{}
		if r.Name == preselect {
			p.cursor = len(p.remotes)
		}
		p.remotes = append(p.remotes, r)
	}

	return p
}

func (p *RemotePicker) Init() tea.Cmd {
	return nil
}

func (p *RemotePicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch {
	case key.Matches(keyMsg, p.keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}

	case key.Matches(keyMsg, p.keys.Down):
		if p.cursor < len(p.remotes)-1 {
			p.cursor++
		}

	case key.Matches(keyMsg, p.keys.Top):
		p.cursor = 0

	case key.Matches(keyMsg, p.keys.Bottom):
		p.cursor = max(len(p.remotes)-1, 0)

	case key.Matches(keyMsg, p.keys.Choose):
		if p.cursor < len(p.remotes) {
			p.chosen = p.remotes[p.cursor].Name
		}
		p.done = true
		return p, tea.Quit

	case key.Matches(keyMsg, p.keys.Quit):
		p.done = true
		return p, tea.Quit
	}

	return p, nil
}

func (p *RemotePicker) View() string {
	if p.done {
		return ""
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("cyan")).
		Bold(true).
		MarginBottom(1)

	nameStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("green")).
		Bold(true)

	urlStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))

	selectedStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("238"))

	var out strings.Builder

	out.WriteString(headerStyle.Render(fmt.Sprintf("Remotes (%d)", len(p.remotes))) + "\n")

	width := 0
	for _, r := range p.remotes {
		width = max(width, len(r.Name))
	}

	for i, r := range p.remotes {
		line := nameStyle.Render(fmt.Sprintf("%-*s", width, r.Name)) + " " + urlStyle.Render(r.URL)
		if i == p.cursor {
			line = selectedStyle.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		out.WriteString(line + "\n")
	}

	out.WriteString("\n" + p.help.ShortHelpView(p.keys.short()))

	return out.String()
}

// Selected returns the chosen remote name.
func (p *RemotePicker) Selected() (string, bool) {
	return p.chosen, p.chosen != ""
}

// PickRemote runs the picker on in/out and returns the chosen remote name.
func PickRemote(remotes []models.Remote, preselect string, in io.Reader, out io.Writer) (string, error) {
	picker := NewRemotePicker(remotes, preselect)

	final, err := tea.NewProgram(picker, tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return "", fmt.Errorf("running remote picker: %w", err)
	}

	name, ok := final.(*RemotePicker).Selected()
	if !ok {
		return "", ErrPickCancelled
	}
	return name, nil
}
