package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/faizmokh/mdorg/internal/files"
	"github.com/faizmokh/mdorg/internal/outline"
	"github.com/faizmokh/mdorg/internal/timestamp"
)

const defaultHeight = 20

// Options carries the collaborators the editor needs.
type Options struct {
	Manager *files.Manager
	Editor  *timestamp.Editor
	Writer  *outline.Writer
	Logger  *zap.Logger
	Path    string
	// Line is the 0-based line the cursor starts on.
	Line int
}

// Model owns Bubble Tea state for the line editor.
type Model struct {
	ctx     context.Context
	manager *files.Manager
	editor  *timestamp.Editor
	writer  *outline.Writer
	logger  *zap.Logger
	path    string

	lines []string
	row   int
	col   int

	keys    keyMap
	help    help.Model
	height  int
	changes <-chan struct{}

	confirmArchive bool
	loading        bool
	statusLine     string
	errorLine      string
}

type docLoadedMsg struct {
	lines []string
	err   error
}

type editResultMsg struct {
	row    int
	result timestamp.Result
	err    error
}

type statusResultMsg struct {
	row  int
	line string
	err  error
}

type archiveResultMsg struct {
	heading outline.Heading
	path    string
	err     error
}

type fileChangedMsg struct{}

// NewModel seeds a Bubble Tea model with required collaborators. When the
// file can be watched, external changes trigger a reload.
func NewModel(ctx context.Context, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	editor := opts.Editor
	if editor == nil {
		editor = timestamp.NewEditor(timestamp.Russian)
	}

	m := Model{
		ctx:        ctx,
		manager:    opts.Manager,
		editor:     editor,
		writer:     opts.Writer,
		logger:     logger,
		path:       opts.Path,
		row:        max(opts.Line, 0),
		keys:       defaultKeyMap(),
		help:       help.New(),
		height:     defaultHeight,
		loading:    true,
		statusLine: fmt.Sprintf("Loading %s...", filepath.Base(opts.Path)),
	}

	if opts.Manager != nil {
		changes, err := opts.Manager.Watch(ctx, opts.Path)
		if err != nil {
			logger.Debug("watch unavailable", zap.String("path", opts.Path), zap.Error(err))
		} else {
			m.changes = changes
		}
	}
	return m
}

// Init loads the document and starts listening for external changes.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.waitForChange())
}

// Update wires TUI state transitions from user input and async commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-6, 1)
		m.help.Width = msg.Width
		return m, nil
	case docLoadedMsg:
		return m.handleLoaded(msg)
	case editResultMsg:
		return m.handleEditResult(msg)
	case statusResultMsg:
		return m.handleStatusResult(msg)
	case archiveResultMsg:
		return m.handleArchiveResult(msg)
	case fileChangedMsg:
		m.loading = true
		return m, tea.Batch(m.loadCmd(), m.waitForChange())
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmArchive {
		switch msg.String() {
		case "y", "Y":
			m.confirmArchive = false
			m.statusLine = "Archiving..."
			return m, m.archiveCmd(m.row)
		case "ctrl+c":
			return m, tea.Quit
		default:
			m.confirmArchive = false
			m.statusLine = "Archive cancelled."
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		if m.row > 0 {
			m.row--
			m.errorLine = ""
		}
	case key.Matches(msg, m.keys.Down):
		if m.row < len(m.lines)-1 {
			m.row++
			m.errorLine = ""
		}
	case key.Matches(msg, m.keys.Left):
		m.col = m.cursorCol()
		if m.col > 0 {
			m.col--
		}
	case key.Matches(msg, m.keys.Right):
		m.col = m.cursorCol()
		if m.col < m.lineWidth()-1 {
			m.col++
		}
	case key.Matches(msg, m.keys.Home):
		m.col = 0
	case key.Matches(msg, m.keys.End):
		m.col = max(m.lineWidth()-1, 0)
	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		m.statusLine = "Reloading..."
		m.errorLine = ""
		return m, m.loadCmd()
	case key.Matches(msg, m.keys.StepUp):
		return m.step(timestamp.Up)
	case key.Matches(msg, m.keys.StepDown):
		return m.step(timestamp.Down)
	case key.Matches(msg, m.keys.Todo):
		return m.setStatus(outline.StatusTodo)
	case key.Matches(msg, m.keys.Done):
		return m.setStatus(outline.StatusDone)
	case key.Matches(msg, m.keys.Archive):
		if m.loading || len(m.lines) == 0 {
			return m, nil
		}
		m.confirmArchive = true
		m.errorLine = ""
		return m, nil
	}
	return m, nil
}

func (m Model) step(dir timestamp.Direction) (tea.Model, tea.Cmd) {
	if m.loading || m.row >= len(m.lines) {
		return m, nil
	}
	m.errorLine = ""
	return m, m.editCmd(m.row, m.cursorCol(), dir)
}

func (m Model) setStatus(status outline.Status) (tea.Model, tea.Cmd) {
	if m.loading || m.row >= len(m.lines) || m.writer == nil {
		return m, nil
	}
	if _, ok := outline.SetStatus(m.lines[m.row], status); !ok {
		m.errorLine = "Not a heading."
		return m, nil
	}
	m.errorLine = ""
	return m, m.statusCmd(m.row, status)
}

func (m Model) handleLoaded(msg docLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Failed to load %s: %v", m.path, msg.err)
		m.statusLine = ""
		return m, nil
	}
	m.lines = msg.lines
	if m.row >= len(m.lines) {
		m.row = max(len(m.lines)-1, 0)
	}
	m.statusLine = fmt.Sprintf("%d line%s.", len(m.lines), plural(len(m.lines)))
	m.errorLine = ""
	return m, nil
}

func (m Model) handleEditResult(msg editResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Edit failed: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}
	if !msg.result.Changed {
		m.statusLine = "Nothing to change here."
		return m, nil
	}
	if msg.row < len(m.lines) {
		m.lines[msg.row] = msg.result.Line
	}
	m.statusLine = fmt.Sprintf("%s → %s", msg.result.Field, formatDateTime(msg.result.After))
	if msg.result.Paired {
		m.statusLine += fmt.Sprintf(" (=>%s)", msg.result.Duration)
	}
	m.errorLine = ""
	return m, nil
}

func (m Model) handleStatusResult(msg statusResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Status change failed: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}
	if msg.row < len(m.lines) {
		m.lines[msg.row] = msg.line
	}
	m.statusLine = "Updated heading."
	m.errorLine = ""
	return m, nil
}

func (m Model) handleArchiveResult(msg archiveResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Archive failed: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}
	m.row = msg.heading.Line
	m.statusLine = fmt.Sprintf("Moved %q to %s.", msg.heading.Text, filepath.Base(msg.path))
	m.errorLine = ""
	m.loading = true
	return m, m.loadCmd()
}

func (m Model) loadCmd() tea.Cmd {
	manager := m.manager
	path := m.path
	return func() tea.Msg {
		if manager == nil {
			return docLoadedMsg{err: fmt.Errorf("no file manager")}
		}
		doc, err := manager.Open(path)
		if err != nil {
			return docLoadedMsg{err: err}
		}
		return docLoadedMsg{lines: append([]string(nil), doc.Lines...)}
	}
}

func (m Model) waitForChange() tea.Cmd {
	changes := m.changes
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

func (m Model) editCmd(row, col int, dir timestamp.Direction) tea.Cmd {
	manager := m.manager
	editor := m.editor
	logger := m.logger
	path := m.path
	return func() tea.Msg {
		if manager == nil {
			return editResultMsg{row: row, err: fmt.Errorf("no file manager")}
		}
		doc, err := manager.Open(path)
		if err != nil {
			return editResultMsg{row: row, err: err}
		}
		line, err := doc.Line(row)
		if err != nil {
			return editResultMsg{row: row, err: err}
		}
		result := editor.Apply(line, col, dir)
		if !result.Changed || result.Line == line {
			logger.Debug("no-op edit", zap.Int("line", row+1), zap.Int("col", col))
			return editResultMsg{row: row, result: result}
		}
		if err := doc.SetLine(row, result.Line); err != nil {
			return editResultMsg{row: row, err: err}
		}
		if err := manager.Save(doc); err != nil {
			return editResultMsg{row: row, err: err}
		}
		return editResultMsg{row: row, result: result}
	}
}

func (m Model) statusCmd(row int, status outline.Status) tea.Cmd {
	writer := m.writer
	ctx := m.ctx
	path := m.path
	return func() tea.Msg {
		if writer == nil {
			return statusResultMsg{row: row, err: fmt.Errorf("no outline writer")}
		}
		line, err := writer.SetStatus(ctx, path, row, status)
		return statusResultMsg{row: row, line: line, err: err}
	}
}

func (m Model) archiveCmd(row int) tea.Cmd {
	writer := m.writer
	ctx := m.ctx
	path := m.path
	return func() tea.Msg {
		if writer == nil {
			return archiveResultMsg{err: fmt.Errorf("no outline writer")}
		}
		heading, archivePath, err := writer.Archive(ctx, path, row)
		return archiveResultMsg{heading: heading, path: archivePath, err: err}
	}
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	header := headerStyle.Render(m.path)
	b.WriteString(header)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", min(len([]rune(m.path)), 80)))
	b.WriteString("\n\n")

	if m.loading && len(m.lines) == 0 {
		b.WriteString("Loading...\n")
	} else if len(m.lines) == 0 {
		b.WriteString("(empty file)\n")
	} else {
		start, end := m.window()
		gutter := len(fmt.Sprint(len(m.lines)))
		for i := start; i < end; i++ {
			b.WriteString(gutterStyle.Render(fmt.Sprintf("%*d ", gutter, i+1)))
			if i == m.row {
				b.WriteString(m.renderCursorLine())
			} else {
				b.WriteString(m.lines[i])
			}
			b.WriteByte('\n')
		}
	}

	if m.errorLine != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.statusLine))
		b.WriteByte('\n')
	}

	if m.confirmArchive {
		b.WriteString("\nArchive the heading under the cursor? (y/n)\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteByte('\n')

	return b.String()
}

func (m Model) window() (int, int) {
	height := max(m.height, 1)
	start := 0
	if m.row >= height {
		start = m.row - height + 1
	}
	end := min(start+height, len(m.lines))
	return start, end
}

func (m Model) renderCursorLine() string {
	r := []rune(m.lines[m.row])
	if len(r) == 0 {
		return cursorStyle.Render(" ")
	}
	col := m.cursorCol()
	return currentStyle.Render(string(r[:col])) +
		cursorStyle.Render(string(r[col])) +
		currentStyle.Render(string(r[col+1:]))
}

// cursorCol clamps the remembered column to the current line.
func (m Model) cursorCol() int {
	width := m.lineWidth()
	if width == 0 {
		return 0
	}
	return min(max(m.col, 0), width-1)
}

func (m Model) lineWidth() int {
	if m.row >= len(m.lines) {
		return 0
	}
	return len([]rune(m.lines[m.row]))
}

func formatDateTime(dt timestamp.DateTime) string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d", dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute)
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
