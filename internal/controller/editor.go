package controller

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"cobble.dev/pkg/cobble/internal/adapter"
	"cobble.dev/pkg/cobble/internal/domain"
	m "cobble.dev/pkg/cobble/internal/model"
)

// EditorDeps wires the editor to the domain components it drives.
type EditorDeps struct {
	Session  *domain.Session
	Engine   *domain.Engine
	Compiler *domain.Compiler
	Reports  adapter.ReportStore

	// ReportsFile is where compile reports are appended; empty disables
	// report recording.
	ReportsFile m.Path

	// Toolchain is the explicit toolchain root override, if configured.
	Toolchain string
}

// RunEditor starts the full-screen editor and blocks until the user
// quits.
func RunEditor(deps EditorDeps) error {
	program := tea.NewProgram(newEditorModel(deps), tea.WithAltScreen())

	_, err := program.Run()

	return err
}

type editorMode int

const (
	modeEdit editorMode = iota
	modePrompt
	modeConfirm
	modeOverlay
)

type promptKind int

const (
	promptOpen promptKind = iota
	promptSaveAs
	promptCompileOut
)

type pendingAction int

const (
	pendingNone pendingAction = iota
	pendingNew
	pendingOpen
	pendingQuit
)

// compileFinishedMsg delivers the result of an asynchronous compile
// back to the update loop.
type compileFinishedMsg struct {
	output m.Path
	result m.CompileResult
}

type editorModel struct {
	deps   EditorDeps
	lines  []string
	row    int
	col    int // rune index within lines[row]
	top    int
	width  int
	height int

	mode      editorMode
	prompt    promptKind
	pending   pendingAction
	afterSave pendingAction

	input    textinput.Model
	overlay  viewport.Model
	overlayT string
	help     help.Model
	keys     editorKeyMap
	styles   Styles

	status    string
	statusErr bool
	compiling bool
	quitting  bool
}

func newEditorModel(deps EditorDeps) editorModel {
	input := textinput.New()
	input.CharLimit = 512

	model := editorModel{
		deps:   deps,
		lines:  deps.Session.Lines(),
		input:  input,
		help:   help.New(),
		keys:   defaultEditorKeyMap(),
		styles: DefaultStyles(),
	}

	_ = deps.Engine.RecomputeAll(context.Background(), model.lines)

	return model
}

func (e editorModel) Init() tea.Cmd {
	return nil
}

func (e editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.width = msg.Width
		e.height = msg.Height
		e.overlay.Width = msg.Width
		e.overlay.Height = maxInt(msg.Height-2, 1)
		e.ensureCursorVisible()

		return e, nil

	case compileFinishedMsg:
		return e.handleCompileFinished(msg), nil

	case tea.KeyMsg:
		switch e.mode {
		case modePrompt:
			return e.updatePrompt(msg)
		case modeConfirm:
			return e.updateConfirm(msg)
		case modeOverlay:
			return e.updateOverlay(msg)
		default:
			return e.updateEdit(msg)
		}
	}

	return e, nil
}

// updateEdit handles keys in the normal editing mode.
func (e editorModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	e.status = ""
	e.statusErr = false

	keys := e.keys

	switch {
	case key.Matches(msg, keys.Quit):
		return e.requestAction(pendingQuit)
	case key.Matches(msg, keys.New):
		return e.requestAction(pendingNew)
	case key.Matches(msg, keys.Open):
		return e.requestAction(pendingOpen)
	case key.Matches(msg, keys.Save):
		return e.doSave()
	case key.Matches(msg, keys.SaveAs):
		return e.startPrompt(promptSaveAs, string(e.deps.Session.Path())), nil
	case key.Matches(msg, keys.Compile):
		return e.requestCompile()
	case key.Matches(msg, keys.Diff):
		return e.showDiff(), nil
	case key.Matches(msg, keys.Help):
		e.help.ShowAll = !e.help.ShowAll
		return e, nil

	case key.Matches(msg, keys.Up):
		e.moveCursor(-1, 0)
	case key.Matches(msg, keys.Down):
		e.moveCursor(1, 0)
	case key.Matches(msg, keys.Left):
		e.moveCursor(0, -1)
	case key.Matches(msg, keys.Right):
		e.moveCursor(0, 1)
	case key.Matches(msg, keys.Home):
		e.col = 0
	case key.Matches(msg, keys.End):
		e.col = len([]rune(e.lines[e.row]))
	case key.Matches(msg, keys.PageUp):
		e.moveCursor(-e.visibleRows(), 0)
	case key.Matches(msg, keys.PageDown):
		e.moveCursor(e.visibleRows(), 0)

	case key.Matches(msg, keys.Enter):
		e.splitLine()
	case key.Matches(msg, keys.Backspace):
		e.deleteLeft()
	case key.Matches(msg, keys.Del):
		e.deleteRight()
	case key.Matches(msg, keys.Tab):
		e.insertText("    ")

	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			e.insertText(string(msg.Runes))
		}
	}

	e.ensureCursorVisible()

	return e, nil
}

func (e editorModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		e.mode = modeEdit
		e.afterSave = pendingNone

		return e, nil

	case "enter":
		value := strings.TrimSpace(e.input.Value())
		e.mode = modeEdit

		if value == "" {
			return e, nil
		}

		switch e.prompt {
		case promptOpen:
			return e.doOpen(m.Path(value)), nil
		case promptSaveAs:
			return e.doSaveAs(m.Path(value))
		default:
			return e.startCompile(m.Path(value))
		}
	}

	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)

	return e, cmd
}

func (e editorModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s":
		pending := e.pending
		e.mode = modeEdit
		e.pending = pendingNone

		if e.deps.Session.Path() == "" {
			e.afterSave = pending
			return e.startPrompt(promptSaveAs, ""), nil
		}

		if err := e.deps.Session.Save(); err != nil {
			return e.withError(err.Error()), nil
		}

		return e.proceed(pending)

	case "d":
		pending := e.pending
		e.mode = modeEdit
		e.pending = pendingNone
		e.deps.Session.Discard()

		return e.proceed(pending)

	case "c", "esc":
		// Cancel aborts the pending operation entirely.
		e.mode = modeEdit
		e.pending = pendingNone

		return e, nil
	}

	return e, nil
}

func (e editorModel) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" || msg.String() == "q" {
		e.mode = modeEdit
		return e, nil
	}

	var cmd tea.Cmd
	e.overlay, cmd = e.overlay.Update(msg)

	return e, cmd
}

// requestAction runs the unsaved-changes protocol before a destructive
// transition: dirty buffers get the save/discard/cancel prompt.
func (e editorModel) requestAction(action pendingAction) (tea.Model, tea.Cmd) {
	if e.deps.Session.IsDirty() {
		e.mode = modeConfirm
		e.pending = action

		return e, nil
	}

	return e.proceed(action)
}

func (e editorModel) proceed(action pendingAction) (tea.Model, tea.Cmd) {
	switch action {
	case pendingNew:
		return e.doNew(), nil
	case pendingOpen:
		return e.startPrompt(promptOpen, ""), nil
	case pendingQuit:
		e.quitting = true
		return e, tea.Quit
	default:
		return e, nil
	}
}

func (e editorModel) doNew() editorModel {
	if err := e.deps.Session.New(); err != nil {
		return e.withError(err.Error())
	}

	e.lines = []string{""}
	e.row, e.col, e.top = 0, 0, 0
	e.deps.Engine.Truncate(0)
	e.deps.Engine.Recompute(0, "")
	e.status = "new file created"

	return e
}

func (e editorModel) doOpen(path m.Path) editorModel {
	if err := e.deps.Session.Open(path); err != nil {
		return e.withError(err.Error())
	}

	e.lines = e.deps.Session.Lines()
	e.row, e.col, e.top = 0, 0, 0
	_ = e.deps.Engine.RecomputeAll(context.Background(), e.lines)
	e.status = fmt.Sprintf("opened %s", path)

	return e
}

func (e editorModel) doSave() (tea.Model, tea.Cmd) {
	if e.deps.Session.Path() == "" {
		return e.startPrompt(promptSaveAs, ""), nil
	}

	if err := e.deps.Session.Save(); err != nil {
		return e.withError(err.Error()), nil
	}

	e.status = fmt.Sprintf("saved %s", e.deps.Session.Path())

	return e, nil
}

func (e editorModel) doSaveAs(path m.Path) (tea.Model, tea.Cmd) {
	if err := e.deps.Session.SaveAs(path); err != nil {
		return e.withError(err.Error()), nil
	}

	e.status = fmt.Sprintf("saved %s", path)

	if after := e.afterSave; after != pendingNone {
		e.afterSave = pendingNone
		return e.proceed(after)
	}

	return e, nil
}

func (e editorModel) requestCompile() (tea.Model, tea.Cmd) {
	if e.deps.Session.Path() == "" {
		return e.withError("save the file before compiling"), nil
	}

	return e.startPrompt(promptCompileOut, defaultOutputPath(e.deps.Session.Path())), nil
}

func (e editorModel) startCompile(output m.Path) (tea.Model, tea.Cmd) {
	e.compiling = true
	e.status = "compiling..."

	deps := e.deps

	return e, func() tea.Msg {
		result := deps.Compiler.Compile(context.Background(), deps.Session, domain.CompileOptions{
			OutputPath:    output,
			ToolchainRoot: deps.Toolchain,
		})

		if deps.Reports != nil && deps.ReportsFile != "" && result.Status != m.CompileConfigError {
			_ = deps.Reports.Append(deps.ReportsFile, m.CompileReport{
				Timestamp:   time.Now(),
				Source:      deps.Session.Path(),
				Output:      output,
				Status:      result.Status,
				Diagnostics: result.Diagnostics,
			})
		}

		return compileFinishedMsg{output: output, result: result}
	}
}

func (e editorModel) handleCompileFinished(msg compileFinishedMsg) editorModel {
	e.compiling = false

	switch msg.result.Status {
	case m.CompileSuccess:
		e.status = "compilation successful!"
	case m.CompileToolchainNotFound:
		e = e.withError("cobc not found: check your GnuCOBOL installation")
		e = e.showOverlay("toolchain not found", msg.result.Diagnostics)
	case m.CompileConfigError:
		e = e.withError(msg.result.Diagnostics)
	default:
		e = e.withError("compilation failed")
		e = e.showOverlay("compiler diagnostics", msg.result.Diagnostics)
	}

	return e
}

func (e editorModel) showDiff() editorModel {
	diff, err := e.deps.Session.DiffAgainstDisk()
	if err != nil {
		return e.withError(err.Error())
	}

	if diff == "" {
		e.status = "buffer matches the saved file"
		return e
	}

	return e.showOverlay("unsaved changes", diff)
}

func (e editorModel) showOverlay(title, body string) editorModel {
	e.mode = modeOverlay
	e.overlayT = title
	e.overlay.SetContent(body)
	e.overlay.GotoTop()

	return e
}

func (e editorModel) startPrompt(kind promptKind, initial string) editorModel {
	e.mode = modePrompt
	e.prompt = kind
	e.input.SetValue(initial)
	e.input.CursorEnd()
	e.input.Focus()

	return e
}

func (e editorModel) withError(text string) editorModel {
	e.status = text
	e.statusErr = true

	return e
}

// --- buffer mutations -------------------------------------------------

// syncLine pushes the whole buffer into the session and reclassifies
// the single edited line.
func (e *editorModel) syncLine(row int) {
	e.deps.Session.SetContent(strings.Join(e.lines, "\n"))
	e.deps.Engine.Recompute(row, e.lines[row])
}

func (e *editorModel) insertText(text string) {
	runes := []rune(e.lines[e.row])
	e.col = clampInt(e.col, 0, len(runes))

	updated := make([]rune, 0, len(runes)+len(text))
	updated = append(updated, runes[:e.col]...)
	updated = append(updated, []rune(text)...)
	updated = append(updated, runes[e.col:]...)

	e.lines[e.row] = string(updated)
	e.col += len([]rune(text))
	e.syncLine(e.row)
}

func (e *editorModel) splitLine() {
	runes := []rune(e.lines[e.row])
	e.col = clampInt(e.col, 0, len(runes))

	head := string(runes[:e.col])
	tail := string(runes[e.col:])

	e.lines[e.row] = head
	e.lines = append(e.lines[:e.row+1], append([]string{tail}, e.lines[e.row+1:]...)...)

	e.deps.Session.SetContent(strings.Join(e.lines, "\n"))
	e.deps.Engine.Recompute(e.row, head)
	e.deps.Engine.InsertLine(e.row+1, tail)

	e.row++
	e.col = 0
}

func (e *editorModel) deleteLeft() {
	if e.col > 0 {
		runes := []rune(e.lines[e.row])
		e.lines[e.row] = string(append(runes[:e.col-1:e.col-1], runes[e.col:]...))
		e.col--
		e.syncLine(e.row)

		return
	}

	if e.row == 0 {
		return
	}

	// Merge with the previous line.
	prev := e.lines[e.row-1]
	merged := prev + e.lines[e.row]

	e.lines = append(e.lines[:e.row], e.lines[e.row+1:]...)
	e.row--
	e.lines[e.row] = merged
	e.col = len([]rune(prev))

	e.deps.Session.SetContent(strings.Join(e.lines, "\n"))
	e.deps.Engine.RemoveLine(e.row + 1)
	e.deps.Engine.Recompute(e.row, merged)
}

func (e *editorModel) deleteRight() {
	runes := []rune(e.lines[e.row])

	if e.col < len(runes) {
		e.lines[e.row] = string(append(runes[:e.col:e.col], runes[e.col+1:]...))
		e.syncLine(e.row)

		return
	}

	if e.row+1 >= len(e.lines) {
		return
	}

	// Merge the next line into this one.
	merged := e.lines[e.row] + e.lines[e.row+1]
	e.lines = append(e.lines[:e.row+1], e.lines[e.row+2:]...)
	e.lines[e.row] = merged

	e.deps.Session.SetContent(strings.Join(e.lines, "\n"))
	e.deps.Engine.RemoveLine(e.row + 1)
	e.deps.Engine.Recompute(e.row, merged)
}

func (e *editorModel) moveCursor(rows, cols int) {
	e.row = clampInt(e.row+rows, 0, len(e.lines)-1)

	lineLen := len([]rune(e.lines[e.row]))

	if cols != 0 {
		next := e.col + cols

		switch {
		case next < 0 && e.row > 0:
			e.row--
			e.col = len([]rune(e.lines[e.row]))
		case next > lineLen && e.row < len(e.lines)-1:
			e.row++
			e.col = 0
		default:
			e.col = clampInt(next, 0, lineLen)
		}

		return
	}

	e.col = clampInt(e.col, 0, lineLen)
}

// --- view -------------------------------------------------------------

func (e *editorModel) visibleRows() int {
	rows := e.height - 2 // status bar and help line
	if e.mode == modePrompt || e.mode == modeConfirm {
		rows--
	}

	return maxInt(rows, 1)
}

func (e *editorModel) ensureCursorVisible() {
	rows := e.visibleRows()

	if e.row < e.top {
		e.top = e.row
	}

	if e.row >= e.top+rows {
		e.top = e.row - rows + 1
	}
}

func (e editorModel) View() string {
	if e.quitting {
		return ""
	}

	if e.width == 0 {
		return "loading..."
	}

	if e.mode == modeOverlay {
		return e.overlayT + "\n" + e.overlay.View() + "\nesc: close"
	}

	var b strings.Builder

	rows := e.visibleRows()
	for i := e.top; i < e.top+rows; i++ {
		if i >= len(e.lines) {
			b.WriteString(e.styles.Gutter.Render("   ~"))
			b.WriteString("\n")
			continue
		}

		cursor := -1
		if i == e.row {
			cursor = byteOffset(e.lines[i], e.col)
		}

		b.WriteString(e.styles.Gutter.Render(fmt.Sprintf("%4d ", i+1)))
		b.WriteString(renderLine(e.lines[i], e.deps.Engine.SpansFor(i), cursor, e.styles))
		b.WriteString("\n")
	}

	switch e.mode {
	case modePrompt:
		b.WriteString(e.styles.Prompt.Render(promptLabel(e.prompt)))
		b.WriteString(e.input.View())
		b.WriteString("\n")
	case modeConfirm:
		b.WriteString(e.styles.Prompt.Render(confirmQuestion(e.pending) + "  [s]ave / [d]iscard / [c]ancel"))
		b.WriteString("\n")
	}

	b.WriteString(e.statusLine())
	b.WriteString("\n")
	b.WriteString(e.help.View(e.keys))

	return b.String()
}

func (e editorModel) statusLine() string {
	name := "untitled"
	if path := e.deps.Session.Path(); path != "" {
		name = filepath.Base(string(path))
	}

	if e.deps.Session.IsDirty() {
		name += " [modified]"
	}

	status := e.status
	if e.compiling {
		status = "compiling..."
	}

	line := fmt.Sprintf(" cobble | %s", name)
	if status != "" {
		style := e.styles.StatusBar
		if e.statusErr {
			style = e.styles.StatusErr
		}

		line += "  " + style.Render(status)
	}

	return e.styles.StatusBar.Render(line)
}

func promptLabel(kind promptKind) string {
	switch kind {
	case promptOpen:
		return "open file: "
	case promptSaveAs:
		return "save as: "
	default:
		return "compile to: "
	}
}

func confirmQuestion(action pendingAction) string {
	switch action {
	case pendingNew:
		return "Save changes before creating a new file?"
	case pendingOpen:
		return "Save changes before opening another file?"
	default:
		return "Save changes before exiting?"
	}
}

// defaultOutputPath derives the executable path for a source file: the
// source without its extension, platform-suffixed.
func defaultOutputPath(source m.Path) string {
	base := strings.TrimSuffix(string(source), filepath.Ext(string(source)))
	if runtime.GOOS == "windows" {
		base += ".exe"
	}

	return base
}

func byteOffset(line string, col int) int {
	runes := []rune(line)
	col = clampInt(col, 0, len(runes))

	return len(string(runes[:col]))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
