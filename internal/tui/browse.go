package tui

import (
	"os/exec"
	"runtime"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gitstars/starboard/internal/badge"
	"github.com/gitstars/starboard/internal/cache"
	"github.com/gitstars/starboard/internal/client"
	"github.com/gitstars/starboard/internal/log"
	"github.com/gitstars/starboard/internal/model"
	"github.com/gitstars/starboard/internal/state"
)

// mode selects which layer of the UI owns keyboard input.
type mode int

const (
	modeBrowse mode = iota
	modeFilter
	modeDetail
)

// filter form field indexes
const (
	fieldSearch = iota
	fieldLanguage
	fieldTopic
	fieldCount
)

// sortCycle is the order the sort key steps through.
var sortCycle = []model.SortColumn{
	model.SortRank, model.SortName, model.SortStars, model.SortForks,
	model.SortWatchers, model.SortLanguage, model.SortNewStars,
}

// BrowseModel is the Bubble Tea model for the interactive leaderboard.
type BrowseModel struct {
	client *client.Client
	cache  cache.Store
	server string

	state   state.ViewState
	intents state.Intents

	page  *model.LeaderboardPage
	items []model.RepoSummary // page items in display order

	sortCol  model.SortColumn
	sortDesc bool

	cursor   int
	mode     mode
	loading  bool
	fetchSeq int // seq of the latest issued page request

	banner     string // dismissible fetch error, stale items stay visible
	statusMsg  string
	statusTime time.Time

	detail detailModel

	inputs      [fieldCount]textinput.Model
	filterFocus int

	spinner      spinner.Model
	windowWidth  int
	windowHeight int
	quitting     bool
}

// BrowseOption is a functional option for configuring a BrowseModel.
type BrowseOption func(*BrowseModel)

// WithState sets the initial view state, typically parsed from a deep link.
func WithState(s state.ViewState) BrowseOption {
	return func(m *BrowseModel) {
		m.state = s
	}
}

// WithIntents sets the one-shot highlight/open hints from a deep link.
func WithIntents(i state.Intents) BrowseOption {
	return func(m *BrowseModel) {
		m.intents = i
	}
}

// NewBrowseModel creates the leaderboard model.
func NewBrowseModel(c *client.Client, store cache.Store, serverURL string, opts ...BrowseOption) BrowseModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	m := BrowseModel{
		client:       c,
		cache:        store,
		server:       serverURL,
		state:        state.Default(),
		sortCol:      model.SortRank,
		spinner:      sp,
		windowWidth:  80,
		windowHeight: 24,
	}

	for i := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = 100
		ti.Width = 30
		ti.PromptStyle = promptStyle
		m.inputs[i] = ti
	}
	m.inputs[fieldSearch].Placeholder = "substring of name"
	m.inputs[fieldLanguage].Placeholder = "exact language"
	m.inputs[fieldTopic].Placeholder = "exact topic"

	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init implements tea.Model.
func (m BrowseModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, func() tea.Msg { return initMsg{} })
}

// loadPage resolves the current view state to a page, from cache when
// allowed. force bypasses the cache read; the response still overwrites
// the cached entry when it arrives. A cache hit also bumps the sequence,
// orphaning any fetch still in flight: its response must not clobber the
// display the user has already navigated to.
func (m *BrowseModel) loadPage(force bool) tea.Cmd {
	key := cache.Key(m.state)
	if !force {
		if page, ok := m.cache.GetPage(key); ok {
			log.Trace("page cache hit", "key", key)
			m.fetchSeq++
			m.applyPage(m.state, page)
			return m.consumeIntents()
		}
	}
	m.loading = true
	m.fetchSeq++
	log.Debug("fetching page", "seq", m.fetchSeq, "query", m.state.Encode(), "forced", force)
	return fetchPage(m.client, m.state, m.fetchSeq)
}

// applyPage installs a loaded page and re-derives the display order. The
// view mode is presentation-only and never travels with a request, so the
// current one survives a response issued before the user toggled it.
func (m *BrowseModel) applyPage(s state.ViewState, page *model.LeaderboardPage) {
	s.View = m.state.View
	m.state = s
	m.page = page
	m.loading = false
	m.banner = ""
	m.resort()
	if m.cursor >= len(m.items) {
		m.cursor = 0
	}
}

// resort re-derives the displayed item order from the sort settings.
// Rank order is the server's order for the page.
func (m *BrowseModel) resort() {
	if m.page == nil {
		m.items = nil
		return
	}
	m.items = model.SortItems(m.page.Items, m.sortCol, m.sortDesc)
}

// consumeIntents applies any pending deep-link hints against the loaded
// page. Each hint fires at most once for the lifetime of the model.
func (m *BrowseModel) consumeIntents() tea.Cmd {
	if name, ok := m.intents.TakeHighlight(); ok {
		for i, item := range m.items {
			if item.Name == name {
				m.cursor = i
				break
			}
		}
	}
	if name, ok := m.intents.TakeOpen(); ok {
		return m.openDetail(name)
	}
	return nil
}

// openDetail switches to the detail modal for name, fetching on cache miss.
func (m *BrowseModel) openDetail(name string) tea.Cmd {
	m.mode = modeDetail
	m.detail = newDetailModel(name, m.server)
	if entry, ok := m.cache.GetDetail(name); ok {
		log.Trace("detail cache hit", "name", name)
		m.detail.setEntry(entry)
		return nil
	}
	m.detail.loading = true
	return fetchDetail(m.client, name)
}

// Update implements tea.Model.
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case modeFilter:
			return m.handleFilterKey(msg)
		case modeDetail:
			return m.handleDetailKey(msg)
		default:
			return m.handleBrowseKey(msg)
		}

	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case initMsg:
		return m, m.loadPage(false)

	case pageLoadedMsg:
		if msg.seq != m.fetchSeq {
			log.Trace("dropping stale page response", "seq", msg.seq, "latest", m.fetchSeq)
			return m, nil
		}
		m.cache.PutPage(cache.Key(msg.state), msg.page)
		m.applyPage(msg.state, msg.page)
		return m, m.consumeIntents()

	case pageErrMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}
		m.loading = false
		m.banner = msg.err.Error()
		log.Warn("page fetch failed", "error", msg.err)
		return m, nil

	case detailLoadedMsg:
		m.cache.PutDetail(msg.name, msg.entry)
		if m.mode == modeDetail && m.detail.name == msg.name {
			m.detail.setEntry(msg.entry)
		}
		return m, nil

	case detailErrMsg:
		if m.mode == modeDetail && m.detail.name == msg.name {
			m.detail.loading = false
			m.detail.err = msg.err
		}
		return m, nil

	case clearStatusMsg:
		m.statusMsg = ""
		return m, nil
	}

	return m, nil
}

// handleBrowseKey processes keyboard input in the main list.
func (m BrowseModel) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		m.banner = ""
		return m, nil

	case "j", "down":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "g", "home":
		m.cursor = 0
		return m, nil

	case "G", "end":
		if len(m.items) > 0 {
			m.cursor = len(m.items) - 1
		}
		return m, nil

	case "n", "right", "l":
		if m.page == nil {
			return m, nil
		}
		next := m.state.NextPage(m.page.TotalPages)
		if next == m.state {
			return m, nil
		}
		m.state = next
		m.cursor = 0
		return m, m.loadPage(false)

	case "p", "left", "h":
		prev := m.state.PrevPage()
		if prev == m.state {
			return m, nil
		}
		m.state = prev
		m.cursor = 0
		return m, m.loadPage(false)

	case "m":
		m.state = m.state.WithMetric(nextMetric(m.state.Metric, 1))
		m.cursor = 0
		return m, m.loadPage(false)

	case "M":
		m.state = m.state.WithMetric(nextMetric(m.state.Metric, -1))
		m.cursor = 0
		return m, m.loadPage(false)

	case "v":
		m.state = m.state.ToggleView()
		return m, nil

	case "s":
		m.sortCol = nextSortColumn(m.sortCol)
		m.sortDesc = false
		m.resort()
		m.cursor = 0
		return m, nil

	case "S":
		m.sortDesc = !m.sortDesc
		m.resort()
		return m, nil

	case "f", "/":
		return m.enterFilterForm()

	case "t":
		// Drill into the selected repo's first topic
		if item, ok := m.selected(); ok && len(item.Topics) > 0 {
			m.state = m.state.WithTopic(item.Topics[0])
			m.cursor = 0
			return m, m.loadPage(false)
		}
		return m, nil

	case "r":
		return m, m.loadPage(true)

	case "y":
		return m.copyLink()

	case "enter":
		if item, ok := m.selected(); ok {
			return m, m.openDetail(item.Name)
		}
		return m, nil

	case "b":
		if item, ok := m.selected(); ok {
			return m, openURL("https://github.com/" + item.Name)
		}
		return m, nil
	}

	return m, nil
}

// handleFilterKey processes keyboard input while the filter form is open.
func (m BrowseModel) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		m.mode = modeBrowse
		return m, nil

	case "tab", "down":
		return m.focusFilterField((m.filterFocus + 1) % fieldCount)

	case "shift+tab", "up":
		return m.focusFilterField((m.filterFocus + fieldCount - 1) % fieldCount)

	case "enter":
		m.mode = modeBrowse
		m.state = m.state.WithFilters(
			m.inputs[fieldSearch].Value(),
			m.inputs[fieldLanguage].Value(),
			m.inputs[fieldTopic].Value(),
		)
		m.cursor = 0
		// Applying filters always refetches so results reflect the
		// server's current data.
		return m, m.loadPage(true)
	}

	var cmd tea.Cmd
	m.inputs[m.filterFocus], cmd = m.inputs[m.filterFocus].Update(msg)
	return m, cmd
}

// handleDetailKey processes keyboard input while the detail modal is open.
func (m BrowseModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "q", "esc":
		m.mode = modeBrowse
		m.detail = detailModel{}
		return m, nil

	case "c":
		if err := clipboard.WriteAll(badge.Markdown(m.server, m.detail.name)); err != nil {
			return m.flashStatus("clipboard unavailable: " + err.Error())
		}
		return m.flashStatus("badge markdown copied")

	case "b":
		return m, openURL("https://github.com/" + m.detail.name)
	}
	return m, nil
}

// enterFilterForm opens the filter form seeded with the active filters.
func (m BrowseModel) enterFilterForm() (tea.Model, tea.Cmd) {
	m.mode = modeFilter
	m.inputs[fieldSearch].SetValue(m.state.Search)
	m.inputs[fieldLanguage].SetValue(m.state.Language)
	m.inputs[fieldTopic].SetValue(m.state.Topic)
	return m.focusFilterField(fieldSearch)
}

func (m BrowseModel) focusFilterField(idx int) (tea.Model, tea.Cmd) {
	m.filterFocus = idx
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == idx {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m, cmd
}

// copyLink puts the shareable query string for the current display on the
// clipboard.
func (m BrowseModel) copyLink() (tea.Model, tea.Cmd) {
	link := m.server + "/?" + m.state.Encode()
	if err := clipboard.WriteAll(link); err != nil {
		return m.flashStatus("clipboard unavailable: " + err.Error())
	}
	return m.flashStatus("link copied")
}

func (m BrowseModel) flashStatus(msg string) (tea.Model, tea.Cmd) {
	m.statusMsg = msg
	m.statusTime = time.Now()
	return m, clearStatusAfter(2 * time.Second)
}

// selected returns the item under the cursor.
func (m *BrowseModel) selected() (model.RepoSummary, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return model.RepoSummary{}, false
	}
	return m.items[m.cursor], true
}

// View implements tea.Model.
func (m BrowseModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.mode {
	case modeFilter:
		return renderFilterForm(m)
	case modeDetail:
		return m.detail.view(m.windowWidth, m.windowHeight, m.spinner.View())
	default:
		return renderBrowseView(m)
	}
}

// nextMetric steps through the metric list in display order, wrapping.
func nextMetric(cur state.Metric, dir int) state.Metric {
	metrics := state.Metrics()
	for i, mt := range metrics {
		if mt == cur {
			return metrics[(i+dir+len(metrics))%len(metrics)]
		}
	}
	return metrics[0]
}

// nextSortColumn steps through the sort cycle, wrapping.
func nextSortColumn(cur model.SortColumn) model.SortColumn {
	for i, col := range sortCycle {
		if col == cur {
			return sortCycle[(i+1)%len(sortCycle)]
		}
	}
	return sortCycle[0]
}

// openURL opens a URL in the default browser.
func openURL(url string) tea.Cmd {
	return func() tea.Msg {
		var cmd *exec.Cmd
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", url)
		case "linux":
			cmd = exec.Command("xdg-open", url)
		case "windows":
			cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
		default:
			return nil
		}
		_ = cmd.Start()
		return nil
	}
}
