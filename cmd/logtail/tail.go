package main

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"go.jacobcolvin.com/taglog"
)

// sample is the demo traffic cycled through the logger. Lines under
// inactive tags never reach the view, demonstrating the gate.
var sample = []struct {
	message string
	tags    []string
	isError bool
}{
	{message: "connection established", tags: []string{"NET"}},
	{message: "query took 12ms", tags: []string{"DB"}},
	{message: "frame dropped", tags: []string{"UI"}},
	{message: "cache warmed", tags: []string{"DB", "CACHE"}},
	{message: "heartbeat", tags: []string{"NET"}},
	{message: "texture missing", tags: []string{"UI", "ASSETS"}},
	{message: "retry budget exhausted", isError: true},
	{message: "startup complete", tags: []string{taglog.Force}},
}

// emit cycles the sample traffic through logger until done closes.
func emit(logger *taglog.Logger, done <-chan struct{}) {
	ticker := time.NewTicker(400 * time.Millisecond)
	defer ticker.Stop()

	i := 0

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
		}

		entry := sample[i%len(sample)]
		if entry.isError {
			logger.Error(entry.message, entry.tags...)
		} else {
			logger.Log(entry.message, entry.tags...)
		}

		i++
	}
}

// lineMsg carries one emitted log line into the program.
type lineMsg string

// streamClosedMsg signals that the publisher stream ended.
type streamClosedMsg struct{}

// waitForLine blocks on the subscription until the next line arrives.
func waitForLine(sub *taglog.Subscription) tea.Cmd {
	return func() tea.Msg {
		line, ok := <-sub.C()
		if !ok {
			return streamClosedMsg{}
		}

		return lineMsg(line)
	}
}

// model is the bubbletea model tailing the publisher stream.
type model struct {
	sub    *taglog.Subscription
	lines  []string
	height int
}

func newModel(sub *taglog.Subscription) *model {
	return &model{
		sub:    sub,
		height: 24,
	}
}

// Init starts listening for the first line.
func (m *model) Init() tea.Cmd {
	return waitForLine(m.sub)
}

// Update handles incoming lines, resize, and quit keys.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.sub.Close()

			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.height = msg.Height

	case lineMsg:
		m.lines = append(m.lines, string(msg))

		// Keep only what fits plus some scrollback.
		if limit := m.height * 4; len(m.lines) > limit {
			m.lines = m.lines[len(m.lines)-limit:]
		}

		return m, waitForLine(m.sub)

	case streamClosedMsg:
		return m, tea.Quit
	}

	return m, nil
}

// View renders the newest lines that fit the window.
func (m *model) View() tea.View {
	visible := m.height - 1
	if visible < 1 {
		visible = 1
	}

	lines := m.lines
	if len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}

	var sb strings.Builder

	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	sb.WriteString("q to quit")

	v := tea.NewView(sb.String())
	v.AltScreen = true

	return v
}
