package table

import (
	"bufio"
	"io"
	"sort"
	"strings"

	"github.com/auto-dns/compose-hosts/internal/domain"
	"github.com/mattn/go-runewidth"
)

const (
	minNameWidth     = 4
	minProtocolWidth = 8
	minIPWidth       = 2
	minPortWidth     = 4
	minURLWidth      = 3

	columnSeparator = "  "
)

var headers = [...]string{"Name", "Protocol", "Ip", "Port", "Url"}

// Widths holds the display width of each column.
type Widths struct {
	Name     int
	Protocol int
	IP       int
	Port     int
	URL      int
}

func (w Widths) columns() [5]int {
	return [5]int{w.Name, w.Protocol, w.IP, w.Port, w.URL}
}

// Total is the width of a full row including separators.
func (w Widths) Total() int {
	total := 0
	for _, c := range w.columns() {
		total += c
	}
	return total + len(columnSeparator)*len(headers)
}

// HostTable is a host collection sorted by IP.
type HostTable struct {
	hosts []domain.Host
}

// New copies hosts and sorts them by IP. Hosts sharing an IP keep their input order.
func New(hosts []domain.Host) *HostTable {
	sorted := append([]domain.Host{}, hosts...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].IP < sorted[j].IP
	})
	return &HostTable{hosts: sorted}
}

func (t *HostTable) Hosts() []domain.Host {
	return t.hosts
}

// Widths computes column widths over all hosts, never below the header minimums.
func (t *HostTable) Widths() Widths {
	w := Widths{
		Name:     minNameWidth,
		Protocol: minProtocolWidth,
		IP:       minIPWidth,
		Port:     minPortWidth,
		URL:      minURLWidth,
	}
	for _, h := range t.hosts {
		w.Name = max(w.Name, runewidth.StringWidth(h.Name))
		w.Protocol = max(w.Protocol, runewidth.StringWidth(h.Protocol))
		w.IP = max(w.IP, runewidth.StringWidth(h.IP))
		w.Port = max(w.Port, runewidth.StringWidth(h.Port))
		w.URL = max(w.URL, runewidth.StringWidth(h.URL))
	}
	return w
}

// Render writes the header, a dash separator and one row per host.
func (t *HostTable) Render(out io.Writer) error {
	widths := t.Widths()
	cols := widths.columns()
	bw := bufio.NewWriter(out)

	header := make([]string, len(headers))
	for i, title := range headers {
		header[i] = center(title, cols[i])
	}
	writeLine(bw, strings.Join(header, columnSeparator))
	writeLine(bw, strings.Repeat("-", widths.Total()))

	for _, h := range t.hosts {
		cells := [5]string{h.Name, h.Protocol, h.IP, h.Port, h.URL}
		row := make([]string, len(cells))
		for i, cell := range cells {
			row[i] = ljust(cell, cols[i])
		}
		writeLine(bw, strings.Join(row, columnSeparator))
	}
	return bw.Flush()
}

func writeLine(w *bufio.Writer, line string) {
	// bufio.Writer keeps the first error and reports it from Flush.
	_, _ = w.WriteString(line)
	_ = w.WriteByte('\n')
}

// center pads s to width, putting the odd space on the right unless width is odd.
func center(s string, width int) string {
	margin := width - runewidth.StringWidth(s)
	if margin <= 0 {
		return s
	}
	left := margin/2 + (margin & width & 1)
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", margin-left)
}

func ljust(s string, width int) string {
	margin := width - runewidth.StringWidth(s)
	if margin <= 0 {
		return s
	}
	return s + strings.Repeat(" ", margin)
}
