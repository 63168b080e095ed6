package tui

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/DefinitelyNotProcrastinating/a-tale-of-the-stars/internal/catalog"
	"github.com/DefinitelyNotProcrastinating/a-tale-of-the-stars/internal/engine"
	"github.com/DefinitelyNotProcrastinating/a-tale-of-the-stars/internal/sink"
	"github.com/DefinitelyNotProcrastinating/a-tale-of-the-stars/internal/storage"
	"github.com/DefinitelyNotProcrastinating/a-tale-of-the-stars/internal/ui"
	"github.com/DefinitelyNotProcrastinating/a-tale-of-the-stars/internal/yamlenc"
)

// Deps wires the builder to its collaborators. Snapshots may be nil when the
// archive is unavailable; export still works, it just isn't recorded.
type Deps struct {
	Loader    *catalog.Loader
	Host      *sink.Host
	Snapshots *storage.SnapshotRepo
	IDs       engine.IDSource

	TotalBudget int
	PageSize    int
}

const (
	paneSetup = iota
	paneCatalog
	paneInventory
	paneCount
)

// Setup pane rows: the five stats, then the investment pools, then the total
// budget row.
const (
	setupRowStats  = 0 // first of 5
	setupRowPools  = 5 // first of len(engine.Pools)
	setupRowBudget = 5 + 8
	setupRowCount  = setupRowBudget + 1
)

type builderModel struct {
	ctx  context.Context
	deps Deps

	width  int
	height int

	loading  bool
	loadNote string
	catalog  catalog.Catalog

	ledger engine.Ledger
	view   catalog.View
	tags   []string
	tagIdx int // 0 = all; otherwise tags[tagIdx-1]

	search    textinput.Model
	searching bool

	pane        int
	selected    int // catalog pane row, within the current page
	invSelected int
	setupRow    int

	exporting bool
	lastLog   string
}

type catalogLoadedMsg struct {
	cat catalog.Catalog
	err error
}

type exportDoneMsg struct {
	snapshotID int64
	delivered  bool
	err        error
}

func newBuilderModel(ctx context.Context, deps Deps) builderModel {
	search := textinput.New()
	search.Placeholder = "search name or tag…"
	search.CharLimit = 64
	search.Width = 28

	ledger := engine.NewLedger()
	if deps.TotalBudget > 0 {
		ledger = ledger.SetTotalBudget(deps.TotalBudget)
	}

	view := catalog.NewView(catalog.CategoryItem)
	if deps.PageSize > 0 {
		view.PageSize = deps.PageSize
	}

	return builderModel{
		ctx:     ctx,
		deps:    deps,
		loading: true,
		ledger:  ledger,
		view:    view,
		search:  search,
		pane:    paneCatalog,
		lastLog: "Connecting to the star sea…",
	}
}

func (m builderModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m builderModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		cat, err := m.deps.Loader.Load(m.ctx)
		return catalogLoadedMsg{cat: cat, err: err}
	}
}

func (m builderModel) exportCmd(payload string, total, spent, remaining int) tea.Cmd {
	return func() tea.Msg {
		delivered := m.deps.Host.Deliver(m.ctx, payload)
		var id int64
		if m.deps.Snapshots != nil {
			var err error
			id, err = m.deps.Snapshots.Insert(m.ctx, storage.SnapshotInsert{
				TotalBudget: total,
				Spent:       spent,
				Remaining:   remaining,
				Delivered:   delivered,
				Document:    payload,
			})
			if err != nil {
				return exportDoneMsg{delivered: delivered, err: err}
			}
		}
		return exportDoneMsg{snapshotID: id, delivered: delivered}
	}
}

func (m builderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case catalogLoadedMsg:
		m.loading = false
		m.catalog = msg.cat
		if msg.err != nil {
			m.loadNote = "Catalog unavailable; browsing an empty data set."
			m.lastLog = "Catalog load failed: " + msg.err.Error()
		} else {
			m.lastLog = fmt.Sprintf("Catalog loaded (%d entries).", msg.cat.Size())
		}
		m.tags = catalog.Tags(m.catalog.Entries(m.view.Category))
		return m, nil

	case exportDoneMsg:
		m.exporting = false
		switch {
		case msg.err != nil:
			m.lastLog = "Export archived with errors: " + msg.err.Error()
		case msg.delivered && msg.snapshotID > 0:
			m.lastLog = fmt.Sprintf("Export sent to chat host and archived as snapshot #%d.", msg.snapshotID)
		case msg.delivered:
			m.lastLog = "Export sent to chat host."
		case msg.snapshotID > 0:
			m.lastLog = fmt.Sprintf("No chat host; payload printed to console and archived as snapshot #%d.", msg.snapshotID)
		default:
			m.lastLog = "No chat host; payload printed to console."
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m builderModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	// Every keystroke narrows the filter and therefore resets to page 1.
	m.view = m.view.WithSearch(m.search.Value())
	m.selected = 0
	return m, cmd
}

func (m builderModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "tab":
		m.pane = (m.pane + 1) % paneCount
		return m, nil

	case "1", "2", "3", "4", "5", "6":
		idx := int(msg.String()[0] - '1')
		if idx < len(catalog.Categories) {
			m.view = m.view.WithCategory(catalog.Categories[idx])
			m.search.SetValue("")
			m.tags = catalog.Tags(m.catalog.Entries(m.view.Category))
			m.tagIdx = 0
			m.selected = 0
			m.pane = paneCatalog
		}
		return m, nil

	case "/":
		m.pane = paneCatalog
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case "t":
		next := m.view.Filter.Tier + 1
		if next > catalog.TierMax {
			next = catalog.TierAll
		}
		m.view = m.view.WithTier(next)
		m.selected = 0
		return m, nil

	case "g":
		if len(m.tags) > 0 {
			m.tagIdx = (m.tagIdx + 1) % (len(m.tags) + 1)
			tag := catalog.TagAll
			if m.tagIdx > 0 {
				tag = m.tags[m.tagIdx-1]
			}
			m.view = m.view.WithTag(tag)
			m.selected = 0
		}
		return m, nil

	case "b":
		// Reroll the allowance, as the original header button did.
		budget := 800 + rand.Intn(501)
		m.ledger = m.ledger.SetTotalBudget(budget)
		m.lastLog = fmt.Sprintf("Budget rerolled to %d RP.", budget)
		return m, nil

	case "e":
		return m.startExport()
	}

	switch m.pane {
	case paneCatalog:
		return m.updateCatalogKeys(msg)
	case paneInventory:
		return m.updateInventoryKeys(msg)
	case paneSetup:
		return m.updateSetupKeys(msg)
	}
	return m, nil
}

func (m builderModel) updateCatalogKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.catalog.Entries(m.view.Category)
	page := m.view.Slice(entries)

	switch msg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(page)-1 {
			m.selected++
		}
	case "left", "h":
		m.view = m.view.WithPage(entries, m.view.Page-1)
		m.selected = 0
	case "right", "l":
		m.view = m.view.WithPage(entries, m.view.Page+1)
		m.selected = 0
	case "enter", " ":
		if m.selected >= 0 && m.selected < len(page) {
			e := page[m.selected]
			next, err := m.ledger.Buy(m.deps.IDs, m.view.Category, e)
			if err != nil {
				m.lastLog = ui.IconWarn + " " + err.Error()
				return m, nil
			}
			m.ledger = next
			cost := engine.CostFor(m.view.Category, e.Tier)
			if m.view.Category.Exclusive() {
				m.lastLog = fmt.Sprintf("Selected %s.", e.DisplayName())
			} else {
				m.lastLog = fmt.Sprintf("Bought %s (-%d RP).", e.DisplayName(), cost)
			}
		}
	}
	return m, nil
}

func (m builderModel) updateInventoryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.invSelected > 0 {
			m.invSelected--
		}
	case "down", "j":
		if m.invSelected < len(m.ledger.Records)-1 {
			m.invSelected++
		}
	case "enter", "x", "d":
		if m.invSelected >= 0 && m.invSelected < len(m.ledger.Records) {
			rec := m.ledger.Records[m.invSelected]
			m.ledger = m.ledger.Remove(rec.ID)
			m.lastLog = fmt.Sprintf("Removed %s (+%d RP).", rec.Entry.DisplayName(), rec.Cost)
			if m.invSelected >= len(m.ledger.Records) && m.invSelected > 0 {
				m.invSelected--
			}
		}
	}
	return m, nil
}

func (m builderModel) updateSetupKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.setupRow > 0 {
			m.setupRow--
		}
		return m, nil
	case "down", "j":
		if m.setupRow < setupRowCount-1 {
			m.setupRow++
		}
		return m, nil
	}

	step := 0
	switch msg.String() {
	case "+", "=", "right", "l":
		step = 1
	case "-", "_", "left", "h":
		step = -1
	case ">":
		step = 10
	case "<":
		step = -10
	default:
		return m, nil
	}

	switch {
	case m.setupRow < setupRowPools:
		stat := engine.StatOrder[m.setupRow]
		var err error
		if step > 0 {
			m.ledger, err = m.ledger.IncStat(stat)
		} else {
			m.ledger, err = m.ledger.DecStat(stat)
		}
		if err != nil {
			m.lastLog = ui.IconWarn + " " + err.Error()
		}
	case m.setupRow < setupRowBudget:
		pool := engine.Pools[m.setupRow-setupRowPools]
		cur := m.ledger.Investments[pool]
		m.ledger = m.ledger.SetInvestment(pool, cur+step)
	default:
		m.ledger = m.ledger.SetTotalBudget(m.ledger.TotalBudget + step*50)
	}
	return m, nil
}

func (m builderModel) startExport() (tea.Model, tea.Cmd) {
	if m.exporting {
		return m, nil
	}
	doc, err := m.ledger.Export()
	if err != nil {
		m.lastLog = ui.IconWarn + " " + err.Error()
		return m, nil
	}
	payload := sink.WrapPrompt(yamlenc.Marshal(doc))
	m.exporting = true
	m.lastLog = "Exporting…"
	return m, m.exportCmd(payload, m.ledger.TotalBudget, m.ledger.Spent(), m.ledger.Remaining())
}

func (m builderModel) View() string {
	header := m.renderHeader()
	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderSetup(),
		" ",
		m.renderCatalog(),
		" ",
		m.renderInventory(),
	)
	footer := m.renderFooter()
	return header + "\n" + body + "\n" + footer
}

func (m builderModel) renderHeader() string {
	title := ui.Heading(ui.IconStar, "Star Sea Protocol — Character Setup")
	rp := ui.RPText(m.ledger.Remaining(), m.ledger.TotalBudget)
	free := ui.Muted.Render(fmt.Sprintf("free stat points: %d", m.ledger.FreePoints))
	line := title + "  " + rp + "  " + free
	if m.loadNote != "" {
		line += "\n" + ui.Warn.Render(ui.IconWarn+" "+m.loadNote)
	}
	return line
}

func (m builderModel) renderSetup() string {
	var lines []string
	lines = append(lines, ui.PanelTitle.Render("Setup"))

	for i, s := range engine.StatOrder {
		row := fmt.Sprintf("%-3s %2d", s, m.ledger.Stats[s])
		lines = append(lines, m.setupLine(i, row))
	}
	lines = append(lines, "")
	for i, p := range engine.Pools {
		label := string(p)
		val := m.ledger.Investments[p]
		var row string
		if p == engine.PoolCredits {
			row = fmt.Sprintf("%-12s %4d (%d cr)", label, val, val*engine.CreditsPerRP)
		} else {
			row = fmt.Sprintf("%-12s %4d (%d xp)", label, val, val*engine.EXPPerRP)
		}
		lines = append(lines, m.setupLine(setupRowPools+i, row))
	}
	lines = append(lines, "")
	lines = append(lines, m.setupLine(setupRowBudget, fmt.Sprintf("%-12s %4d", "budget", m.ledger.TotalBudget)))

	for _, cat := range []catalog.Category{catalog.CategoryFaction, catalog.CategorySpawn, catalog.CategoryScenario} {
		name := engine.Undecided
		if rec := m.ledger.Selected(cat); rec != nil {
			name = rec.Entry.DisplayName()
		}
		lines = append(lines, ui.Muted.Render(fmt.Sprintf("%s: %s", cat.Label(), name)))
	}

	return pane(strings.Join(lines, "\n"), m.pane == paneSetup)
}

func (m builderModel) setupLine(row int, s string) string {
	if m.pane == paneSetup && row == m.setupRow {
		return ui.SelectedRow.Render("> " + s)
	}
	return "  " + s
}

func (m builderModel) renderCatalog() string {
	var lines []string

	var tabs []string
	for i, cat := range catalog.Categories {
		label := fmt.Sprintf("%d:%s", i+1, cat.Label())
		if cat == m.view.Category {
			tabs = append(tabs, ui.H2.Render(label))
		} else {
			tabs = append(tabs, ui.Muted.Render(label))
		}
	}
	lines = append(lines, strings.Join(tabs, " "))
	lines = append(lines, m.renderFilters())

	if m.loading {
		lines = append(lines, "", "Loading catalog…")
		return pane(strings.Join(lines, "\n"), m.pane == paneCatalog)
	}

	entries := m.catalog.Entries(m.view.Category)
	page := m.view.Slice(entries)
	if len(page) == 0 {
		lines = append(lines, "", ui.Muted.Render("no matching entries"))
	}
	for i, e := range page {
		lines = append(lines, "", m.renderEntry(i, e))
	}

	lines = append(lines, "", ui.Muted.Render(fmt.Sprintf("page %d / %d", m.view.Page, m.view.TotalPages(entries))))
	return pane(strings.Join(lines, "\n"), m.pane == paneCatalog)
}

func (m builderModel) renderFilters() string {
	parts := []string{"/" + m.search.View()}
	if m.view.Filter.Tier == catalog.TierAll {
		parts = append(parts, ui.Muted.Render("tier:all"))
	} else {
		parts = append(parts, ui.Key.Render(fmt.Sprintf("tier:%d", m.view.Filter.Tier)))
	}
	if m.view.Filter.Tag == catalog.TagAll {
		parts = append(parts, ui.Muted.Render("tag:all"))
	} else {
		parts = append(parts, ui.Key.Render("tag:"+m.view.Filter.Tag))
	}
	return strings.Join(parts, "  ")
}

func (m builderModel) renderEntry(i int, e catalog.Entry) string {
	name := e.DisplayName()
	marker := "  "
	if m.pane == paneCatalog && i == m.selected {
		marker = ui.SelectedRow.Render("> ")
		name = ui.SelectedRow.Render(name)
	}

	head := marker + name
	if m.view.Category.Purchasable() {
		head += "  " + ui.TierBadge(e.Tier) + "  " + ui.Gold.Render(fmt.Sprintf("%d RP", engine.CostFor(m.view.Category, e.Tier)))
	}
	if len(e.Tags) > 0 {
		head += "  " + ui.Dim.Render("["+strings.Join(e.Tags, ", ")+"]")
	}

	if m.pane == paneCatalog && i == m.selected {
		if fx := firstLine(e.Effects); fx != "" {
			head += "\n    " + ui.Muted.Render(truncate(fx, 76))
		}
		if e.Defenses != nil {
			head += "\n    " + ui.Dim.Render(fmt.Sprintf("shield %d · armor %d · hull %d",
				e.Defenses.Shield.Max, e.Defenses.Armor.Max, e.Defenses.Hull.Max))
		}
	}
	return head
}

func (m builderModel) renderInventory() string {
	var lines []string
	lines = append(lines, ui.PanelTitle.Render(ui.IconCart+" Inventory"))

	if len(m.ledger.Records) == 0 {
		lines = append(lines, ui.Muted.Render("nothing selected yet"))
	}
	for i, rec := range m.ledger.Records {
		row := fmt.Sprintf("%s %s", rec.Entry.DisplayName(), ui.Bad.Render(fmt.Sprintf("-%d", rec.Cost)))
		if m.pane == paneInventory && i == m.invSelected {
			row = ui.SelectedRow.Render("> ") + row
		} else {
			row = "  " + row
		}
		lines = append(lines, row)
	}

	lines = append(lines, "", ui.LabelValue("Spent", m.ledger.Spent()))
	return pane(strings.Join(lines, "\n"), m.pane == paneInventory)
}

func (m builderModel) renderFooter() string {
	keys := "tab:pane  1-6:category  /:search  t:tier  g:tag  ←→:page  enter:buy/remove  +/-:adjust  b:reroll  e:export  q:quit"
	return ui.Muted.Render(keys) + "\n" + m.lastLog
}

func pane(content string, active bool) string {
	style := ui.Panel
	if active {
		style = style.BorderForeground(lipgloss.Color("45"))
	}
	return style.Render(content)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
