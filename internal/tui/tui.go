package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tatianab/rps-game/internal/engine"
	"github.com/tatianab/rps-game/internal/models"
	"github.com/tatianab/rps-game/internal/rules"
)

type sessionState int

const (
	stateName sessionState = iota
	stateChoosing
	stateStickOrTwist
	stateSaving
	stateGameOver
	stateError
)

type model struct {
	state     sessionState
	session   *engine.Session
	sink      models.Sink
	textInput textinput.Model
	viewport  viewport.Model
	err       error
	report    engine.Report
	gameLog   string
	width     int
	height    int
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5FD75F")).
			Bold(true)

	loseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D75F5F")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)
)

func NewModel(s *engine.Session, sink models.Sink) model {
	ti := textinput.New()
	ti.Placeholder = "Enter your name..."
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	return model{
		state:     stateName,
		session:   s,
		sink:      sink,
		textInput: ti,
		viewport:  viewport.New(60, 20),
		width:     80,
		height:    26,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

type finishedMsg struct {
	report engine.Report
	err    error
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			input := strings.TrimSpace(m.textInput.Value())
			m.textInput.Reset()
			if input == "/quit" {
				return m, tea.Quit
			}
			switch m.state {
			case stateName:
				return m.startGame(input)
			case stateChoosing:
				return m.playRound(input)
			case stateStickOrTwist:
				return m.stickOrTwist(input)
			case stateGameOver, stateError:
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = int(float64(msg.Width) * 0.70)
		m.viewport.Height = msg.Height - 6
		m.viewport.SetContent(m.gameLog)

	case finishedMsg:
		m.report = msg.report
		if msg.err != nil {
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.state = stateGameOver
		m.appendLog(m.renderReport())
		m.textInput.Placeholder = "Press Enter to quit"
		return m, nil
	}

	if m.state != stateSaving && m.state != stateError {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) startGame(name string) (tea.Model, tea.Cmd) {
	if err := m.session.Start(name); err != nil {
		m.err = err
		m.state = stateError
		return m, nil
	}
	m.state = stateChoosing
	m.gameLog = gameStyle.Bold(true).Render("Welcome to "+engine.Title(m.session.RuleSet())+"!") + "\n\n"
	m.textInput.Placeholder = choicesHint(m.session.RuleSet())
	m.viewport.SetContent(m.gameLog)
	return m, nil
}

func (m model) playRound(input string) (tea.Model, tea.Cmd) {
	if input == "" {
		return m, nil
	}
	m.appendLog(userStyle.Width(m.viewport.Width).Render("> " + input))

	round, err := m.session.Round(input)
	if errors.Is(err, rules.ErrInvalidChoice) {
		m.appendLog(helpStyle.Render("Invalid choice. Please choose from the available options."))
		return m, nil
	}
	if err != nil {
		m.err = err
		m.state = stateError
		return m, nil
	}

	m.appendLog(fmt.Sprintf("Computer chose: %s\n%s\n%s: %d - Computer: %d",
		round.Computer, renderOutcome(round), m.session.Player(), round.Scores.Player, round.Scores.Computer))

	if round.GameOver {
		m.state = stateSaving
		return m, m.finish()
	}
	m.state = stateStickOrTwist
	m.textInput.Placeholder = "Stick (s) or twist (t)?"
	return m, nil
}

func (m model) stickOrTwist(input string) (tea.Model, tea.Cmd) {
	decision, err := m.session.Continue(input)
	if err != nil {
		m.err = err
		m.state = stateError
		return m, nil
	}
	switch decision {
	case engine.Stick:
		m.appendLog(m.session.Player() + " sticks.")
		m.state = stateSaving
		return m, m.finish()
	case engine.StickRefused:
		m.appendLog(helpStyle.Render("You can only stick while you are ahead. Playing on."))
	}
	m.state = stateChoosing
	m.textInput.Placeholder = choicesHint(m.session.RuleSet())
	return m, nil
}

func (m *model) appendLog(s string) {
	m.gameLog += s + "\n\n"
	m.viewport.SetContent(m.gameLog)
	m.viewport.GotoBottom()
}

func (m model) View() string {
	var s string

	switch m.state {
	case stateName:
		s = fmt.Sprintf(
			"%s\n\n%s\n\n%s",
			titleStyle.Render("Welcome to "+engine.Title(m.session.RuleSet())+"!"),
			"Enter your name:",
			m.textInput.View(),
		)

	case stateSaving:
		s = "\n  Saving game history...\n"

	case stateChoosing, stateStickOrTwist, stateGameOver:
		mainView := lipgloss.JoinHorizontal(lipgloss.Top,
			m.viewport.View(),
			m.renderState(),
		)

		help := helpStyle.Render("Commands: /quit, or type your choice.")

		s = lipgloss.JoinVertical(lipgloss.Left,
			mainView,
			"\n"+m.textInput.View(),
			"\n"+help,
		)

	case stateError:
		s = fmt.Sprintf("\n  Error: %v\n\nPress Esc to quit.", m.err)
	}

	return "\n" + s + "\n"
}

func (m model) renderState() string {
	sc := m.session.Scores()

	rulesView := titleStyle.Render("RULES") + "\n" + m.session.RuleSet().Name() +
		fmt.Sprintf("\nfirst to %d\n\n", m.session.RoundsToWin())

	score := titleStyle.Render("SCORE") + "\n" +
		fmt.Sprintf("%s: %d\nComputer: %d\n\n", m.session.Player(), sc.Player, sc.Computer)

	freq := titleStyle.Render("YOUR PICKS") + "\n"
	report := m.session.Frequencies()
	if len(report) == 0 {
		freq += "(none yet)"
	}
	for _, f := range report {
		freq += fmt.Sprintf("%s: %d\n", f.Choice, f.Count)
	}

	stateWidth := int(float64(m.width) * 0.25)
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(rulesView + score + freq)
}

func (m model) renderReport() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Player's Strategy Analysis:"))
	b.WriteString("\n")
	for _, f := range m.report.Frequencies {
		fmt.Fprintf(&b, "Choice: %s, Frequency: %d\n", f.Choice, f.Count)
	}
	if history := m.session.History(); history != nil {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Game History:"))
		b.WriteString("\n")
		b.WriteString(strings.Join(history, "\n"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.report.PlayerWon {
		b.WriteString(winStyle.Render(fmt.Sprintf("Congratulations, %s! You win the game!", m.report.Player)))
	} else {
		b.WriteString(loseStyle.Render("Computer wins the game. Better luck next time!"))
	}
	b.WriteString("\n\nThanks for playing!")
	return b.String()
}

func renderOutcome(r engine.Round) string {
	switch r.Outcome {
	case rules.PlayerWins:
		return winStyle.Render(string(r.Entry))
	case rules.ComputerWins:
		return loseStyle.Render(string(r.Entry))
	}
	if strings.HasPrefix(string(r.Entry), "It's a draw") {
		return gameStyle.Render(string(r.Entry))
	}
	return gameStyle.Render("It's a draw! " + string(r.Entry))
}

func choicesHint(rs rules.RuleSet) string {
	names := make([]string, 0, len(rs.Choices()))
	for _, c := range rs.Choices() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

func (m model) finish() tea.Cmd {
	return func() tea.Msg {
		report, err := m.session.Finish(m.sink)
		return finishedMsg{report, err}
	}
}

// Run plays one session full screen and returns its report once the player quits.
func Run(s *engine.Session, sink models.Sink) (engine.Report, error) {
	p := tea.NewProgram(NewModel(s, sink), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return engine.Report{}, err
	}

	m := final.(model)
	if m.err != nil {
		return m.report, m.err
	}
	if m.state != stateGameOver {
		return m.report, engine.ErrInputClosed
	}
	return m.report, nil
}
