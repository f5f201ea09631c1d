package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"speedcheck/internal/tui/styles"
)

// ErrCancelled is returned when the user aborts the prompt.
var ErrCancelled = errors.New("prompt cancelled")

// Model asks for a single line of input.
type Model struct {
	Label string
	Input textinput.Model

	Done      bool
	Cancelled bool
}

func NewModel(label, placeholder string) Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.PromptStyle = styles.Active
	ti.TextStyle = styles.Active
	ti.CharLimit = 255
	ti.Width = 40
	ti.Focus()
	return Model{Label: label, Input: ti}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			// empty answers are ignored
			if m.Value() == "" {
				return m, nil
			}
			m.Done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.Cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func (m Model) Value() string {
	return strings.TrimSpace(m.Input.Value())
}

func (m Model) View() string {
	if m.Done || m.Cancelled {
		return ""
	}
	var s strings.Builder
	s.WriteString(styles.Subtle.Render(m.Label))
	s.WriteString("\n")
	s.WriteString(m.Input.View())
	s.WriteString("\n\n")
	s.WriteString(styles.RenderKey("enter", "confirm"))
	s.WriteString("  ")
	s.WriteString(styles.RenderKey("esc", "cancel"))
	s.WriteString("\n")
	return s.String()
}

// Ask runs an interactive prompt and returns the trimmed answer. When stdin
// is not a terminal the answer is read as a plain line instead.
func Ask(label, placeholder string, opts ...tea.ProgramOption) (string, error) {
	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		fmt.Fprintf(os.Stderr, "%s: ", label)
		return ReadLine(stdin())
	}

	p := tea.NewProgram(NewModel(label, placeholder), opts...)
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	m := final.(Model)
	if m.Cancelled || !m.Done {
		return "", ErrCancelled
	}
	return m.Value(), nil
}

// stdin is shared so consecutive questions consume consecutive lines.
var stdin = sync.OnceValue(func() *bufio.Reader { return bufio.NewReader(os.Stdin) })

// ReadLine returns the next non-blank line from r, trimmed. Running out of
// input before an answer counts as a cancelled prompt.
func ReadLine(r *bufio.Reader) (string, error) {
	for {
		line, err := r.ReadString('\n')
		if answer := strings.TrimSpace(line); answer != "" {
			return answer, nil
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: end of input", ErrCancelled)
		}
		if err != nil {
			return "", err
		}
	}
}
