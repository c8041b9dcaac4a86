package answer

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plain(lines []string) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = StripANSI(line)
	}
	return strings.Join(out, "\n")
}

func TestLines_Paragraphs(t *testing.T) {
	lines := fragmentLines(`<p>Hello <strong>there</strong>.</p><p>Second paragraph</p>`, 80)
	require.Len(t, lines, 3)
	assert.Equal(t, "Hello there.", StripANSI(lines[0]))
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "Second paragraph", StripANSI(lines[2]))
}

func TestLines_Empty(t *testing.T) {
	assert.Nil(t, fragmentLines("   ", 80))
}

func TestLines_WrapsToWidth(t *testing.T) {
	lines := fragmentLines(`<p>one two three four five six seven eight nine ten</p>`, 12)
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.LessOrEqual(t, visibleLen(line), 12, line)
	}
}

func TestLines_HeadingsAndLists(t *testing.T) {
	out := plain(fragmentLines(`
		<h2>Steps</h2>
		<ol><li>Install</li><li>Run <code>make</code></li></ol>
		<ul><li>alpha<ul><li>nested</li></ul></li><li>beta</li></ul>`, 60))

	assert.Contains(t, out, "▌ Steps")
	assert.Contains(t, out, "1. Install")
	assert.Contains(t, out, "2. Run `make`")
	assert.Contains(t, out, "• alpha")
	assert.Contains(t, out, "  ◦ nested")
	assert.Contains(t, out, "• beta")
}

func TestLines_CodeBlockKeepsIndentation(t *testing.T) {
	out := plain(fragmentLines(`<pre><div>go<button>Copy code</button></div><code class="language-go">func main() {
    fmt.Println("hi")
}
</code></pre>`, 40))

	assert.Contains(t, out, "go\n")
	gutter := StripANSI(codeGutter)
	assert.Contains(t, out, gutter+"func main() {")
	assert.Contains(t, out, gutter+`    fmt.Println("hi")`)
	assert.NotContains(t, out, "Copy code")
}

func TestLines_Table(t *testing.T) {
	lines := fragmentLines(`<table>
		<tr><th>Metric</th><th>Value</th></tr>
		<tr><td>Speed</td><td>Fast</td></tr>
	</table>`, 80)
	require.Len(t, lines, 3)
	assert.Equal(t, "| Metric | Value |", StripANSI(lines[0]))
	assert.Equal(t, "| ------ | ----- |", StripANSI(lines[1]))
	assert.Equal(t, "| Speed  | Fast  |", StripANSI(lines[2]))
}

func TestLines_LinksAndQuotes(t *testing.T) {
	out := plain(fragmentLines(`<p>See <a href="https://go.dev">the docs</a>, or <a href="#x">here</a>.</p>
		<blockquote><p>Quoted claim</p></blockquote>`, 80))

	assert.Contains(t, out, "See the docs (https://go.dev), or here.")
	assert.Contains(t, out, "Quoted claim")
}

func TestLines_DropsScripts(t *testing.T) {
	out := plain(fragmentLines(`<p>visible</p><script>alert(1)</script><svg><path/></svg>`, 80))
	assert.Equal(t, "visible", out)
}

func TestPlainText(t *testing.T) {
	lines := fragmentLines("", 10)
	assert.Nil(t, lines)

	doc := mustParse(t, `<div> How do   I <b>sort</b>
	a map? <button>Edit</button></div>`)
	assert.Equal(t, "How do I sort a map?", PlainText(doc))
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"abc", "def"}, Wrap("abc def", 5))
	assert.Equal(t, []string{"abcd", "efgh", "ij"}, Wrap("abcdefghij", 4))
	assert.Equal(t, []string{"a", "", "b"}, Wrap("a\n\nb", 10))
	assert.Equal(t, []string{"héllo", "wörld"}, Wrap("héllo wörld", 5))
	assert.Equal(t, []string{"as is"}, Wrap("as is", 0))
}

func TestWrap_MeasuresCells(t *testing.T) {
	assert.Equal(t, []string{"日本", "語テ", "キス", "ト"}, Wrap("日本語テキスト", 4))
	assert.Equal(t, []string{"日本 a", "語"}, Wrap("日本 a 語", 6))
	for _, line := range Wrap("広い 文字 を 含む 答え です", 7) {
		assert.LessOrEqual(t, visibleLen(line), 7, line)
	}
}

func TestSplitCells_TakesAtLeastOneRune(t *testing.T) {
	head, tail := splitCells("語x", 1)
	assert.Equal(t, "語", head)
	assert.Equal(t, "x", tail)
}

func TestCompactBlankLinesCollapsesRuns(t *testing.T) {
	got := compactBlankLines([]string{"", "a", "", " ", "b", ""})
	assert.Equal(t, []string{"a", "", "b"}, got)
	assert.Nil(t, compactBlankLines([]string{"", "  "}))
}

func TestPlainLines_NoStylingOrGlyphs(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(termenv.Ascii) })

	doc := mustParse(t, `<div>
		<h2>Setup</h2>
		<p>Run <code>go test</code> first.</p>
		<pre><code class="language-go">x := 1
	y := 2</code></pre>
		<blockquote><p>Careful</p></blockquote>
		<ul><li>one</li><li>two</li></ul>
		<table><tr><th>k</th><th>v</th></tr><tr><td>a</td><td>1</td></tr></table>
	</div>`)

	got := strings.Join(PlainLines(doc), "\n")
	assert.NotContains(t, got, "\x1b[")
	for _, glyph := range []string{"▌", "┃", "│", "•", "`"} {
		assert.NotContains(t, got, glyph)
	}
	assert.Contains(t, got, "Setup\n\nRun go test first.")
	assert.Contains(t, got, "x := 1\n\ty := 2")
	assert.Contains(t, got, "> Careful")
	assert.Contains(t, got, "- one\n- two")
	assert.Contains(t, got, "| k   | v   |")
}

func TestPlainLines_DoesNotWrap(t *testing.T) {
	long := strings.Repeat("word ", 60)
	lines := PlainLines(mustParse(t, "<p>"+long+"</p>"))
	require.Len(t, lines, 1)
	assert.Equal(t, strings.TrimSpace(long), lines[0])
}
