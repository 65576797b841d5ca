package table

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/auto-dns/compose-hosts/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, hosts []domain.Host) []string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, New(hosts).Render(&buf))
	require.True(t, strings.HasSuffix(buf.String(), "\n"))
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func TestRender_Empty(t *testing.T) {
	lines := render(t, nil)

	assert.Equal(t, []string{
		"Name  Protocol  Ip  Port  Url",
		strings.Repeat("-", 4+8+2+4+3+10),
	}, lines)
}

func TestRender_SingleHost(t *testing.T) {
	lines := render(t, []domain.Host{domain.NewHost("db_1", "tcp", "172.17.0.2", "5432")})

	require.Len(t, lines, 3)
	assert.Equal(t, "Name  Protocol      Ip      Port  "+strings.Repeat(" ", 9)+"Url"+strings.Repeat(" ", 10), lines[0])
	assert.Equal(t, strings.Repeat("-", 4+8+10+4+22+10), lines[1])
	assert.Equal(t, "db_1"+"  "+"tcp     "+"  "+"172.17.0.2"+"  "+"5432"+"  "+"http://172.17.0.2:5432", lines[2])
	assert.Equal(t, []string{"db_1", "tcp", "172.17.0.2", "5432", "http://172.17.0.2:5432"}, strings.Fields(lines[2]))
}

func TestRender_BlankHost(t *testing.T) {
	lines := render(t, []domain.Host{domain.NewHost("worker_1", "", "", "")})

	require.Len(t, lines, 3)
	assert.Equal(t, "worker_1"+"  "+strings.Repeat(" ", 8)+"  "+"  "+"  "+"    "+"  "+"   ", lines[2])
	assert.Equal(t, []string{"worker_1"}, strings.Fields(lines[2]))
}

func TestRender_ColumnsAlign(t *testing.T) {
	lines := render(t, []domain.Host{
		domain.NewHost("a", "tcp", "10.0.0.10", "80"),
		domain.NewHost("much_longer_name", "udp", "10.0.0.2", "53"),
	})

	require.Len(t, lines, 4)
	assert.Equal(t, 16+8+9+4+len("http://10.0.0.10:80")+10, len(lines[1]))
	ipCol := strings.Index(lines[2], "10.0.0.")
	assert.Equal(t, ipCol, strings.Index(lines[3], "10.0.0."))
}

func TestNew_SortsByIPStable(t *testing.T) {
	hosts := []domain.Host{
		domain.NewHost("c", "tcp", "172.17.0.3", "80"),
		domain.NewHost("first_blank", "", "", ""),
		domain.NewHost("a", "tcp", "172.17.0.10", "80"),
		domain.NewHost("tie_1", "tcp", "172.17.0.2", "80"),
		domain.NewHost("second_blank", "", "", ""),
		domain.NewHost("tie_2", "tcp", "172.17.0.2", "81"),
	}

	tbl := New(hosts)

	var names []string
	for _, h := range tbl.Hosts() {
		names = append(names, h.Name)
	}
	// Lexicographic, so "172.17.0.10" sorts before "172.17.0.2".
	assert.Equal(t, []string{"first_blank", "second_blank", "a", "tie_1", "tie_2", "c"}, names)
	for i := 1; i < len(tbl.Hosts()); i++ {
		assert.LessOrEqual(t, tbl.Hosts()[i-1].IP, tbl.Hosts()[i].IP)
	}
	assert.Equal(t, "c", hosts[0].Name, "input slice must not be reordered")
}

func TestWidths_Minimums(t *testing.T) {
	want := Widths{Name: 4, Protocol: 8, IP: 2, Port: 4, URL: 3}

	assert.Equal(t, want, New(nil).Widths())
	assert.Equal(t, want, New([]domain.Host{domain.NewHost("", "", "", "")}).Widths())
	assert.Equal(t, want, New([]domain.Host{domain.NewHost("ab", "tcp", "", "80")}).Widths())
}

func TestWidths_GrowWithData(t *testing.T) {
	w := New([]domain.Host{domain.NewHost("postgres_primary_1", "tcp", "192.168.100.200", "15432")}).Widths()

	assert.Equal(t, Widths{Name: 18, Protocol: 8, IP: 15, Port: 5, URL: len("http://192.168.100.200:15432")}, w)
}

func TestWidths_WideCharactersCountDisplayCells(t *testing.T) {
	tbl := New([]domain.Host{domain.NewHost("数据库_1", "tcp", "10.0.0.2", "80")})

	// Three wide runes take two cells each.
	assert.Equal(t, 8, tbl.Widths().Name)

	lines := render(t, tbl.Hosts())
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Repeat("-", 8+8+8+4+len("http://10.0.0.2:80")+10), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "数据库_1  tcp"))
}

func TestCenter(t *testing.T) {
	assert.Equal(t, "ABC", center("ABC", 2))
	assert.Equal(t, " ABC ", center("ABC", 5))
	assert.Equal(t, "ABC ", center("ABC", 4))
	assert.Equal(t, "    Ip    ", center("Ip", 10))
	assert.Equal(t, " Url ", center("Url", 5))
}

func TestLjust(t *testing.T) {
	assert.Equal(t, "tcp     ", ljust("tcp", 8))
	assert.Equal(t, "toolong", ljust("toolong", 3))
	assert.Equal(t, "   ", ljust("", 3))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func TestRender_WriteError(t *testing.T) {
	err := New(nil).Render(failingWriter{})
	assert.EqualError(t, err, "closed pipe")
}
