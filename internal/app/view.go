package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/luki/roomsense/internal/chart"
	"github.com/luki/roomsense/internal/sensor"
	"github.com/luki/roomsense/internal/stats"
)

// ── Color palette ────────────────────────────────────────────────────

var (
	colorTitleBg  = lipgloss.Color("17")
	colorTitleFg  = lipgloss.Color("51")
	colorBorder   = lipgloss.Color("62")
	colorLabel    = lipgloss.Color("252")
	colorDim      = lipgloss.Color("240")
	colorFooterBg = lipgloss.Color("235")
	colorOk       = lipgloss.Color("78")
	colorAlarmFg  = lipgloss.Color("231")
	colorAlarmBg  = lipgloss.Color("160")
	colorFocus    = lipgloss.Color("214")
)

// ── View ─────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "  Initializing..."
	}

	contentWidth := m.width - 2
	if contentWidth < 48 {
		contentWidth = 48
	}
	if contentWidth > 100 {
		contentWidth = 100
	}

	var sections []string
	sections = append(sections, m.renderTitleBar(contentWidth))
	sections = append(sections, m.renderLivePanel(contentWidth))
	sections = append(sections, m.renderThresholdPanel(contentWidth))

	switch m.overlay {
	case overlayStats:
		sections = append(sections, m.renderStatsPanel(contentWidth))
	case overlayRecords:
		sections = append(sections, m.renderRecordsPanel(contentWidth))
	}

	sections = append(sections, m.renderStatus(contentWidth))
	sections = append(sections, m.renderFooter(contentWidth))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTitleBar(width int) string {
	logo := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorTitleFg).
		Render("ROOMSENSE")

	var right string
	if m.batchRunning() {
		right = lipgloss.NewStyle().
			Foreground(colorFocus).
			Bold(true).
			Render(fmt.Sprintf("BATCH %d/%d", batchSize-m.batchRemaining, batchSize))
	} else {
		right = lipgloss.NewStyle().
			Foreground(colorDim).
			Render("idle")
	}

	gap := width - lipgloss.Width(logo) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}

	return lipgloss.NewStyle().
		Background(colorTitleBg).
		Width(width).
		Padding(0, 1).
		Render(logo + strings.Repeat(" ", gap) + right)
}

func (m Model) renderLivePanel(width int) string {
	labelS := lipgloss.NewStyle().Foreground(colorLabel).Width(13)
	dimS := lipgloss.NewStyle().Foreground(colorDim)

	barWidth := width - 28
	if barWidth < 20 {
		barWidth = 20
	}

	var rows []string

	if m.latest == nil {
		rows = append(rows,
			labelS.Render("Humidity")+" "+dimS.Render("-- %"),
			labelS.Render("Temperature")+" "+dimS.Render("-- °F"),
			dimS.Render("Last reading at: —"),
		)
	} else {
		h := m.latest.Humidity
		t := m.latest.Temperature

		hRow := labelS.Render("Humidity") + " " +
			chart.RenderValue(h, m.thresholds.Humidity, "%") + "  " +
			chart.RenderGauge(h, sensor.HumidityMin, sensor.HumidityMax,
				m.thresholds.Humidity, barWidth)
		tRow := labelS.Render("Temperature") + " " +
			chart.RenderValue(t, m.thresholds.Temperature, "°F") + " " +
			chart.RenderGauge(t, sensor.TemperatureMin, sensor.TemperatureMax,
				m.thresholds.Temperature, barWidth)

		rows = append(rows, hRow, tRow,
			dimS.Render("Last reading at: "+fmtTS(m.latest.TS)))
	}

	return panel("Live Readings", rows, width)
}

func (m Model) renderThresholdPanel(width int) string {
	hField := m.renderThresholdField("Humidity alarm",
		fmt.Sprintf("%.1f %%", m.thresholds.Humidity), m.focus == focusHumidity)
	tField := m.renderThresholdField("Temperature alarm",
		fmt.Sprintf("%.1f °F", m.thresholds.Temperature), m.focus == focusTemperature)

	var indicator string
	if m.alarmOn {
		indicator = lipgloss.NewStyle().
			Foreground(colorAlarmFg).
			Background(colorAlarmBg).
			Bold(true).
			Padding(0, 1).
			Render("ALARM!")
	} else {
		indicator = lipgloss.NewStyle().
			Foreground(colorOk).
			Padding(0, 1).
			Render("No alarms")
	}

	left := hField + "   " + tField
	gap := width - lipgloss.Width(left) - lipgloss.Width(indicator) - 6
	if gap < 1 {
		gap = 1
	}

	return panel("Alarm Thresholds",
		[]string{left + strings.Repeat(" ", gap) + indicator}, width)
}

func (m Model) renderThresholdField(label, value string, focused bool) string {
	labelS := lipgloss.NewStyle().Foreground(colorDim)
	valueS := lipgloss.NewStyle().Foreground(colorLabel)
	if focused {
		valueS = lipgloss.NewStyle().Foreground(colorFocus).Bold(true).Underline(true)
	}
	return labelS.Render(label+": ") + valueS.Render(value)
}

func (m Model) renderStatsPanel(width int) string {
	if m.overlayInfo != "" {
		return panel("Last 10 Stats", []string{
			lipgloss.NewStyle().Foreground(colorDim).Render(m.overlayInfo),
		}, width)
	}

	s := m.summary
	head := lipgloss.NewStyle().Foreground(colorDim).Render(
		fmt.Sprintf("Over last %d reading(s), latest: %s", s.Count, fmtTS(s.NewestTS)))

	rows := []string{
		head,
		statsRow("Humidity (%)", s.Humidity),
		statsRow("Temperature (°F)", s.Temperature),
	}
	return panel("Last 10 Stats", rows, width)
}

func statsRow(label string, met stats.Metric) string {
	labelS := lipgloss.NewStyle().Foreground(colorLabel).Width(18)
	dimS := lipgloss.NewStyle().Foreground(colorDim)
	valS := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

	return labelS.Render(label) +
		dimS.Render(" min ") + valS.Render(fmt.Sprintf("%6.1f", met.Min)) +
		dimS.Render("  max ") + valS.Render(fmt.Sprintf("%6.1f", met.Max)) +
		dimS.Render("  avg ") + valS.Render(fmt.Sprintf("%6.1f", met.Mean))
}

func (m Model) renderRecordsPanel(width int) string {
	if m.overlayInfo != "" {
		return panel("Last 10 Records", []string{
			lipgloss.NewStyle().Foreground(colorDim).Render(m.overlayInfo),
		}, width)
	}

	dimS := lipgloss.NewStyle().Foreground(colorDim)
	valS := lipgloss.NewStyle().Foreground(colorLabel)

	var rows []string
	for _, r := range m.records {
		rows = append(rows,
			dimS.Render(fmtTS(r.TS))+
				valS.Render(fmt.Sprintf("  Hum: %5.1f %%", r.Humidity))+
				valS.Render(fmt.Sprintf("  Temp: %5.1f °F", r.Temperature)))
	}
	return panel("Last 10 Records", rows, width)
}

func (m Model) renderStatus(width int) string {
	return lipgloss.NewStyle().
		Foreground(colorDim).
		Width(width).
		Padding(0, 1).
		Render(m.status)
}

func (m Model) renderFooter(width int) string {
	dimS := lipgloss.NewStyle().Foreground(colorDim)
	keyS := lipgloss.NewStyle().Foreground(colorLabel)
	offS := lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	readKeys := dimS.Render("1") + keyS.Render(":read  ") +
		dimS.Render("0") + keyS.Render(":read 10")
	if m.batchRunning() {
		readKeys = offS.Render("1:read  0:read 10")
	}

	keys := readKeys +
		dimS.Render("  s") + keyS.Render(":stats") +
		dimS.Render("  r") + keyS.Render(":records") +
		dimS.Render("  tab") + keyS.Render(":field") +
		dimS.Render("  ↑/↓") + keyS.Render(":adjust") +
		dimS.Render("  esc") + keyS.Render(":close/cancel") +
		dimS.Render("  q") + keyS.Render(":quit")

	return lipgloss.NewStyle().
		Background(colorFooterBg).
		Width(width).
		Padding(0, 1).
		Render(keys)
}

func panel(title string, rows []string, width int) string {
	titleS := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("147")).
		Render(title)

	content := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{titleS}, rows...)...)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Width(width).
		Render(content)
}
