// Package tui provides the interactive Bubble Tea dashboard for spendr.
package tui

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/theirongolddev/spendr/internal/cli"
	"github.com/theirongolddev/spendr/internal/config"
	"github.com/theirongolddev/spendr/internal/export"
	"github.com/theirongolddev/spendr/internal/fault"
	"github.com/theirongolddev/spendr/internal/ledger"
	"github.com/theirongolddev/spendr/internal/logger"
	"github.com/theirongolddev/spendr/internal/model"
	"github.com/theirongolddev/spendr/internal/pipeline"
	"github.com/theirongolddev/spendr/internal/tui/components"
	"github.com/theirongolddev/spendr/internal/tui/theme"
)

// DataLoadedMsg is sent when the startup workbooks finish loading.
type DataLoadedMsg struct {
	Result   *pipeline.LoadResult
	Err      error
	LoadTime time.Duration
}

// ProgressMsg reports workbook loading progress.
type ProgressMsg struct {
	Current int
	Total   int
}

// ExportDoneMsg is sent when a background export finishes.
type ExportDoneMsg struct {
	Path string
	Rows int
	Err  error
}

// Options configures a new App.
type Options struct {
	Config     config.Config
	ConfigPath string
	// NeedSetup shows the first-run setup form before the dashboard.
	NeedSetup bool
	// Preload lists exported workbooks whose records seed the session.
	Preload []string
	// ExportPath overrides the configured export target.
	ExportPath string
	// Store is the session store. A new one is created when nil.
	Store *ledger.Synced
}

// App is the root Bubble Tea model.
type App struct {
	ctx     context.Context
	cfg     config.Config
	cfgPath string
	store   *ledger.Synced

	// Pre-computed from the store
	records    []model.Expense // newest first, for the history tab
	stats      model.SummaryStats
	categories []model.CategoryStats
	dailyStats []model.DailyStats
	months     []model.MonthlyStats
	weekdays   []model.WeekdayStats

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	hist     historyState
	settings settingsState

	// Add-expense form (huh), bound to expenseVals
	expenseForm *huh.Form
	expenseVals *ExpenseValues

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *SetupValues
	needSetup bool

	// Loading: channel-based progress subscription
	loaded      bool
	preload     []string
	spinner     spinner.Model
	progress    int
	progressMax int
	loadSub     chan tea.Msg
	loadTime    time.Duration

	// Export
	exportPath string
	exporting  bool

	// Status bar message
	alert      string
	alertLevel components.AlertLevel
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	minContentHeight = 5 // minimum content area height
	trendDays        = 30
)

// NewApp creates a new dashboard model. ctx carries the logger.
func NewApp(ctx context.Context, opts Options) App {
	if ctx == nil {
		ctx = context.Background()
	}
	store := opts.Store
	if store == nil {
		store = ledger.NewSynced(nil)
	}

	exportPath := opts.ExportPath
	if exportPath == "" {
		exportPath = opts.Config.ExportPath()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	a := App{
		ctx:        logger.WithFields(ctx, zap.String("component", "tui")),
		cfg:        opts.Config,
		cfgPath:    opts.ConfigPath,
		store:      store,
		needSetup:  opts.NeedSetup,
		preload:    opts.Preload,
		loaded:     len(opts.Preload) == 0,
		spinner:    sp,
		loadSub:    make(chan tea.Msg, 1),
		exportPath: exportPath,
	}
	a.recompute()
	if a.loaded {
		a.startSetup()
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if !a.loaded {
		cmds = append(cmds, loadDataCmd(a.ctx, a.preload, a.cfg.ExportOptions(), a.loadSub), a.spinner.Tick)
	}
	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// Store returns the session store.
func (a App) Store() *ledger.Synced { return a.store }

func (a *App) recompute() {
	start := time.Now()
	records := a.store.Records()

	a.stats = pipeline.Aggregate(records, model.Date{}, model.Date{})
	a.categories = pipeline.AggregateCategories(records, model.Date{}, model.Date{})
	a.months = pipeline.AggregateMonths(records, model.Date{}, model.Date{})
	a.weekdays = pipeline.AggregateWeekdays(records, model.Date{}, model.Date{})

	a.dailyStats = nil
	if !a.stats.Last.IsZero() {
		until := a.stats.Last
		since := model.DateOf(until.Time().AddDate(0, 0, -(trendDays - 1)))
		a.dailyStats = pipeline.AggregateDays(records, since, until)
	}

	// History lists newest first; same-day expenses keep store order.
	sorted := make([]model.Expense, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date().After(sorted[j].Date())
	})
	a.records = sorted

	a.hist.clamp(len(a.historyRecords()))

	if logger.IsDebug(a.ctx) {
		logger.Debug(a.ctx, "aggregates recomputed",
			zap.Int("records", len(records)),
			zap.Int("categories", len(a.categories)),
			zap.Duration("took", time.Since(start)))
	}
}

func (a *App) setAlert(level components.AlertLevel, format string, args ...any) {
	a.alert = fmt.Sprintf(format, args...)
	a.alertLevel = level
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		if a.expenseForm != nil {
			a.expenseForm = a.expenseForm.WithWidth(formWidth(msg.Width))
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || a.setupForm != nil || a.expenseForm != nil {
			return a, nil
		}
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == tabHistory {
				a.hist.move(-1, len(a.historyRecords()))
			}
		case tea.MouseButtonWheelDown:
			if a.activeTab == tabHistory {
				a.hist.move(1, len(a.historyRecords()))
			}
		case tea.MouseButtonLeft:
			// Tab bar is the first line.
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)

	case DataLoadedMsg:
		a.loaded = true
		a.loadTime = msg.LoadTime
		switch {
		case msg.Err != nil:
			logger.Error(a.ctx, "loading workbooks failed", zap.Error(msg.Err))
			a.setAlert(components.AlertError, "Load failed: %v", msg.Err)
		case msg.Result != nil:
			records := msg.Result.Store.Records()
			a.store.Add(records...)
			logger.Info(a.ctx, "workbooks loaded",
				zap.Int("files", msg.Result.LoadedFiles),
				zap.Int("records", len(records)),
				zap.Duration("took", msg.LoadTime))
			if err := msg.Result.Err(); err != nil {
				logger.Warn(a.ctx, "some workbooks could not be read", zap.Error(err))
				a.setAlert(components.AlertWarn, "%d of %d files could not be read",
					len(msg.Result.FileErrors), msg.Result.TotalFiles)
			} else {
				a.setAlert(components.AlertInfo, "Loaded %s", cli.FormatCount(len(records), "expense"))
			}
		}
		a.recompute()
		return a.maybeStartSetup()

	case ProgressMsg:
		a.progress = msg.Current
		a.progressMax = msg.Total
		return a, waitForLoadMsg(a.loadSub)

	case ExportDoneMsg:
		a.exporting = false
		if msg.Err != nil {
			logger.Error(a.ctx, "export failed", zap.String("path", msg.Path), zap.Error(msg.Err))
			if fault.KindOf(msg.Err) == fault.ErrIO {
				a.setAlert(components.AlertError, "Could not write %s: %v", msg.Path, msg.Err)
			} else {
				a.setAlert(components.AlertError, "Export failed: %v", msg.Err)
			}
			return a, nil
		}
		logger.Info(a.ctx, "exported", zap.String("path", msg.Path), zap.Int("rows", msg.Rows))
		a.setAlert(components.AlertSuccess, "Exported %s to %s", cli.FormatCount(msg.Rows, "expense"), msg.Path)
		return a, nil

	case spinner.TickMsg:
		if !a.loaded || a.exporting {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages (cursor blinks, etc.) to an open form.
	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.expenseForm != nil {
		return a.updateExpenseForm(msg)
	}
	if a.activeTab == tabSettings && a.settings.editing {
		var cmd tea.Cmd
		a.settings.input, cmd = a.settings.input.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}
	if !a.loaded {
		return a, nil
	}

	// Open forms and inputs take every key.
	switch {
	case a.setupForm != nil:
		return a.updateSetupForm(msg)
	case a.expenseForm != nil:
		return a.updateExpenseForm(msg)
	case a.activeTab == tabSettings && a.settings.editing:
		return a.updateSettingsInput(msg)
	case a.activeTab == tabHistory && a.hist.searching:
		return a.updateHistorySearch(msg)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	// Any key press clears a stale alert.
	a.alert = ""

	switch key {
	case "q":
		return a, tea.Quit
	case "a":
		return a.openExpenseForm()
	case "w":
		return a.startExport()
	}

	if a.activeTab == tabHistory {
		if handled, cmd := a.updateHistoryKey(key); handled {
			return a, cmd
		}
	}
	if a.activeTab == tabSettings {
		switch key {
		case "j", "down":
			a.settings.move(1)
			return a, nil
		case "k", "up":
			a.settings.move(-1)
			return a, nil
		case "enter":
			return a.settingsStartEdit()
		}
	}

	switch key {
	case "left", "shift+tab":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	default:
		if len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
				a.activeTab = idx
			}
		}
	}
	return a, nil
}

// ─── Add expense ────────────────────────────────────────────────

func (a App) openExpenseForm() (tea.Model, tea.Cmd) {
	a.expenseVals = NewExpenseValues(time.Now())
	a.expenseForm = NewExpenseForm(a.cfg.Categories(), a.expenseVals)
	if a.width > 0 {
		a.expenseForm = a.expenseForm.WithWidth(formWidth(a.width))
	}
	return a, a.expenseForm.Init()
}

func (a App) updateExpenseForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.expenseForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.expenseForm = f
	}

	switch a.expenseForm.State {
	case huh.StateCompleted:
		vals := a.expenseVals
		a.expenseForm = nil
		a.expenseVals = nil
		a.addExpense(vals)
		return a, nil
	case huh.StateAborted:
		a.expenseForm = nil
		a.expenseVals = nil
		return a, nil
	}
	return a, cmd
}

// addExpense validates the submitted form values and records the expense.
func (a *App) addExpense(v *ExpenseValues) {
	e, err := v.Parse(a.cfg.Categories())
	if err != nil {
		logger.Warn(a.ctx, "expense rejected", zap.Error(err))
		a.setAlert(components.AlertWarn, "%v", err)
		return
	}
	a.store.AddExpense(e.Category(), e.Amount(), e.Date())
	logger.Info(a.ctx, "expense added",
		zap.String("category", e.Category()),
		zap.String("amount", e.Amount().String()),
		zap.Stringer("date", e.Date()))
	a.setAlert(components.AlertSuccess, "Added %s to %s",
		cli.FormatAmount(e.Amount(), a.cfg.General.Currency), e.Category())
	a.recompute()
}

// ─── Export ─────────────────────────────────────────────────────

func (a App) startExport() (tea.Model, tea.Cmd) {
	if a.exporting {
		return a, nil
	}
	a.exporting = true
	return a, tea.Batch(exportCmd(a.store, a.exportPath, a.cfg.ExportOptions()), a.spinner.Tick)
}

// exportCmd writes a snapshot of the store in the background.
func exportCmd(store *ledger.Synced, path string, opts []export.Option) tea.Cmd {
	return func() tea.Msg {
		records := store.Records()
		err := export.ExportToExcel(path, records, opts...)
		return ExportDoneMsg{Path: path, Rows: len(records), Err: err}
	}
}

// ─── Setup ──────────────────────────────────────────────────────

func (a App) maybeStartSetup() (tea.Model, tea.Cmd) {
	if !a.startSetup() {
		return a, nil
	}
	return a, a.setupForm.Init()
}

// startSetup opens the first-run setup form when the config file is missing.
func (a *App) startSetup() bool {
	if !a.needSetup || a.setupForm != nil {
		return false
	}
	a.setupVals = NewSetupValues(a.cfg)
	a.setupForm = NewSetupForm(a.setupVals)
	if a.width > 0 {
		a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
	}
	return true
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		a.finishSetup(a.setupVals)
		return a, nil
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}
	return a, cmd
}

// finishSetup validates the setup answers and saves them. Invalid answers
// leave the config untouched.
func (a *App) finishSetup(vals *SetupValues) {
	a.needSetup = false
	a.setupForm = nil
	a.setupVals = nil

	next := a.cfg
	vals.Apply(&next)
	if err := next.Validate(); err != nil {
		logger.Warn(a.ctx, "setup rejected", zap.Error(err))
		a.setAlert(components.AlertError, "Setup not saved: %v", err)
		return
	}

	levelChanged := next.Log.Level != a.cfg.Log.Level
	a.cfg = next
	theme.SetActive(a.cfg.Appearance.Theme)
	a.exportPath = a.cfg.ExportPath()

	if err := config.SaveTo(a.cfgPath, a.cfg); err != nil {
		logger.Error(a.ctx, "saving config failed", zap.Error(err))
		a.setAlert(components.AlertError, "Could not save config: %v", err)
		return
	}
	logger.Info(a.ctx, "config saved", zap.String("path", a.cfgPath))
	if levelChanged {
		a.setAlert(components.AlertSuccess, "Saved %s (log level applies on restart)", a.cfgPath)
		return
	}
	a.setAlert(components.AlertSuccess, "Saved %s", a.cfgPath)
}

// ─── View ───────────────────────────────────────────────────────

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if !a.loaded {
		return a.viewLoading()
	}
	if a.setupForm != nil {
		return a.setupForm.View()
	}
	if a.expenseForm != nil {
		return a.viewExpenseForm()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  spendr needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	spinnerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	countStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ spendr"))
	b.WriteString(subtitleStyle.Render(" · Expense Tracker"))
	b.WriteString("\n\n")

	b.WriteString(spinnerStyle.Render(a.spinner.View()))
	if a.progressMax > 0 {
		barW := max(20, min(40, a.width-30))
		b.WriteString(subtitleStyle.Render(" Reading workbooks\n\n"))
		b.WriteString(components.ProgressBar(float64(a.progress)/float64(a.progressMax), barW))
		b.WriteString("\n")
		b.WriteString(countStyle.Render(strconv.Itoa(a.progress)))
		b.WriteString(subtitleStyle.Render(" / "))
		b.WriteString(countStyle.Render(strconv.Itoa(a.progressMax)))
	} else {
		b.WriteString(subtitleStyle.Render(" Opening workbooks..."))
	}

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewExpenseForm() string {
	t := theme.Active
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 2).
		Render(a.expenseForm.View())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings [][2]string
	}{
		{"Navigation", [][2]string{
			{"o c h t x", "Jump to tab"},
			{"← →", "Previous / Next tab"},
			{"j k", "Move in lists"},
			{"g G", "First / Last expense"},
		}},
		{"Actions", [][2]string{
			{"a", "Add an expense"},
			{"w", "Export to " + a.exportPath},
			{"/", "Filter history by category"},
			{"Enter", "Edit setting / Confirm"},
			{"Esc", "Cancel"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind[0])),
				descStyle.Render(bind[1]))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	status := components.Status{
		Summary: fmt.Sprintf("%s · %s",
			cli.FormatCount(a.stats.Count, "expense"),
			cli.FormatAmount(a.stats.Total, a.cfg.General.Currency)),
		Alert: a.alert,
		Level: a.alertLevel,
	}
	if a.exporting {
		status.Busy = a.spinner.View() + " Exporting..."
	}
	statusBar := components.RenderStatusBar(w, status)

	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabCategories:
		content = a.renderCategoriesTab(cw)
	case tabHistory:
		content = a.renderHistoryTab(cw, contentH)
	case tabTrends:
		content = a.renderTrendsTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

// Tab indexes, matching components.Tabs.
const (
	tabOverview = iota
	tabCategories
	tabHistory
	tabTrends
	tabSettings
)

// loadDataCmd starts loading workbooks in a background goroutine. It streams
// ProgressMsg updates and a final DataLoadedMsg through sub.
func loadDataCmd(ctx context.Context, paths []string, opts []export.Option, sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		go func() {
			start := time.Now()

			// Non-blocking send so workers aren't stalled; the next update catches up.
			progressFn := func(current, total int) {
				select {
				case sub <- ProgressMsg{Current: current, Total: total}:
				default:
				}
			}

			result, err := pipeline.Load(ctx, paths, opts, progressFn)
			sub <- DataLoadedMsg{Result: result, Err: err, LoadTime: time.Since(start)}
		}()

		return <-sub
	}
}

// waitForLoadMsg blocks until the next message arrives from the loader goroutine.
func waitForLoadMsg(sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-sub
	}
}

// chartDateLabels builds compact x-axis labels for a date series.
// First label and month boundaries show the month ("Jan"), the rest the
// day number. days is sorted newest-first; labels are returned oldest-left.
func chartDateLabels(days []model.DailyStats) []string {
	n := len(days)
	labels := make([]string, n)
	prevMonth := time.Month(0)
	for i := 0; i < n; i++ {
		dt := days[n-1-i].Date.Time()
		switch {
		case i == 0, i < n-1 && dt.Month() != prevMonth:
			labels[i] = dt.Format("Jan")
		default:
			labels[i] = strconv.Itoa(dt.Day())
		}
		prevMonth = dt.Month()
	}
	return labels
}

func formWidth(termWidth int) int {
	return max(40, min(70, termWidth-10))
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes follow the same width rules as RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 1 // separator
	}
	return -1
}
