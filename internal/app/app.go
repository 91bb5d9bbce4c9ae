// Package app implements the humidity/temperature monitor TUI: live
// readings, alarm thresholds, timed batch sampling, and the stats and
// records views, all on a single BubbleTea event loop.
package app

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/luki/roomsense/internal/alarm"
	"github.com/luki/roomsense/internal/sensor"
	"github.com/luki/roomsense/internal/stats"
	"github.com/luki/roomsense/internal/store"
)

const (
	batchSize     = 10
	batchInterval = 1 * time.Second
	windowSize    = 10 // readings covered by stats/records views

	timeLayout = "2006-01-02 15:04:05"
)

// ── Messages ─────────────────────────────────────────────────────────

type batchTickMsg time.Time

// ── Model ────────────────────────────────────────────────────────────

type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayStats
	overlayRecords
)

type focusField int

const (
	focusHumidity focusField = iota
	focusTemperature
)

// Model holds all session state: thresholds, batch progress, the
// generator and store handles. Nothing lives in package globals.
type Model struct {
	gen    *sensor.Generator
	store  *store.Store
	logger *slog.Logger

	thresholds alarm.Thresholds
	latest     *sensor.Reading
	alarmOn    bool

	batchRemaining int

	overlay     overlayKind
	overlayInfo string           // informational message (e.g. empty store)
	summary     stats.Summary    // valid while overlay == overlayStats
	records     []sensor.Reading // valid while overlay == overlayRecords

	focus  focusField
	status string
	fatal  error
	width  int
	height int
}

// New creates the initial model with default thresholds.
func New(st *store.Store, gen *sensor.Generator, logger *slog.Logger) Model {
	return Model{
		gen:        gen,
		store:      st,
		logger:     logger,
		thresholds: alarm.Defaults(),
		status:     "Ready.",
	}
}

// Fatal returns the store error that ended the session, if any. The
// entry point reports it after the program exits.
func (m Model) Fatal() error {
	return m.fatal
}

func (m Model) batchRunning() bool {
	return m.batchRemaining > 0
}

// ── Commands ─────────────────────────────────────────────────────────

func batchTickCmd() tea.Cmd {
	return tea.Tick(batchInterval, func(t time.Time) tea.Msg {
		return batchTickMsg(t)
	})
}

// ── Init / Update ────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case batchTickMsg:
		if !m.batchRunning() {
			// Batch was cancelled after this tick was scheduled.
			return m, nil
		}
		if err := m.sampleOnce(); err != nil {
			return m.quitFatal(err)
		}
		m.batchRemaining--
		if m.batchRemaining > 0 {
			m.status = fmt.Sprintf("Reading batch... remaining: %d", m.batchRemaining)
			return m, batchTickCmd()
		}
		m.status = "Read 10: complete."
		m.logger.Info("batch complete", "size", batchSize)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {

	case "q", "ctrl+c":
		return m.quit()

	case "esc":
		if m.overlay != overlayNone {
			m.overlay = overlayNone
			return m, nil
		}
		if m.batchRunning() {
			m.logger.Info("batch cancelled", "remaining", m.batchRemaining)
			m.batchRemaining = 0
			m.status = "Batch cancelled."
		}
		return m, nil

	case "1":
		if m.batchRunning() {
			return m, nil
		}
		if err := m.sampleOnce(); err != nil {
			return m.quitFatal(err)
		}
		m.status = "Read 1: done."
		return m, nil

	case "0":
		// At most one batch at a time; a second request is a no-op.
		if m.batchRunning() {
			return m, nil
		}
		m.batchRemaining = batchSize
		m.status = "Starting 10 reads..."
		m.logger.Info("batch started", "size", batchSize, "interval", batchInterval)
		return m, batchTickCmd()

	case "s":
		return m.openStats()

	case "r":
		return m.openRecords()

	case "tab":
		if m.focus == focusHumidity {
			m.focus = focusTemperature
		} else {
			m.focus = focusHumidity
		}
		return m, nil

	case "up":
		m.adjustThreshold(1)
		return m, nil
	case "down":
		m.adjustThreshold(-1)
		return m, nil
	case "shift+up":
		m.adjustThreshold(5)
		return m, nil
	case "shift+down":
		m.adjustThreshold(-5)
		return m, nil
	}

	return m, nil
}

// sampleOnce performs one sample/store/display/alarm cycle. Both the
// single read and each batch tick go through here.
func (m *Model) sampleOnce() error {
	h, t := m.gen.Next()
	ts, err := m.store.Insert(h, t)
	if err != nil {
		return err
	}
	m.latest = &sensor.Reading{TS: ts, Humidity: h, Temperature: t}
	m.alarmOn = alarm.Evaluate(h, t, m.thresholds)
	m.logger.Debug("reading stored",
		"ts", ts, "humidity", h, "temperature", t, "alarm", m.alarmOn)
	return nil
}

func (m Model) openStats() (tea.Model, tea.Cmd) {
	rows, err := m.store.FetchLast(windowSize)
	if err != nil {
		return m.quitFatal(err)
	}
	m.overlay = overlayStats
	if len(rows) == 0 {
		m.overlayInfo = "No readings available yet."
		return m, nil
	}
	m.overlayInfo = ""
	m.summary = stats.Summarize(rows)
	return m, nil
}

func (m Model) openRecords() (tea.Model, tea.Cmd) {
	rows, err := m.store.FetchLast(windowSize)
	if err != nil {
		return m.quitFatal(err)
	}
	m.overlay = overlayRecords
	if len(rows) == 0 {
		m.overlayInfo = "No readings available yet."
		m.records = nil
		return m, nil
	}
	m.overlayInfo = ""
	// Reverse to oldest-first for display.
	m.records = make([]sensor.Reading, len(rows))
	for i, r := range rows {
		m.records[len(rows)-1-i] = r
	}
	return m, nil
}

// adjustThreshold moves the focused threshold by delta, clamped to the
// metric's display range, and re-checks the alarm against the latest
// reading.
func (m *Model) adjustThreshold(delta float64) {
	switch m.focus {
	case focusHumidity:
		m.thresholds.Humidity = clamp(m.thresholds.Humidity+delta,
			sensor.HumidityMin, sensor.HumidityMax)
	case focusTemperature:
		m.thresholds.Temperature = clamp(m.thresholds.Temperature+delta,
			sensor.TemperatureMin, sensor.TemperatureMax)
	}
	if m.latest != nil {
		m.alarmOn = alarm.Evaluate(m.latest.Humidity, m.latest.Temperature, m.thresholds)
	}
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	// Best-effort close; a failure here has nothing left to affect.
	if err := m.store.Close(); err != nil {
		m.logger.Warn("store close", "error", err)
	}
	return m, tea.Quit
}

func (m Model) quitFatal(err error) (tea.Model, tea.Cmd) {
	m.fatal = err
	m.logger.Error("store failure", "error", err)
	_ = m.store.Close()
	return m, tea.Quit
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func fmtTS(ts float64) string {
	return sensor.Reading{TS: ts}.Time().Format(timeLayout)
}
