package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppend(t *testing.T) {
	js := Snippet("var a='x';")
	b := js.Append("alert(a);")
	assert.Equal(t, Snippet("var a='x';alert(a);"), b)
	assert.Equal(t, Snippet("var a='x';"), js, "Append must not modify its receiver")
	assert.Equal(t, Snippet(`a\'b`), Snippet("a").Append(`\'b`), "no escaping on append")
}

func TestJoin(t *testing.T) {
	sep := Snippet(";")
	assert.Equal(t, Snippet(""), sep.Join())
	assert.Equal(t, Snippet("alert(1)"), sep.Join("alert(1)"))
	assert.Equal(t, Snippet("a;b;c"), sep.Join("a", "b", "c"))
	assert.Equal(t, Snippet("a, b"), Snippet(", ").JoinStrings("a", "b"))
	assert.Equal(t, Snippet("x\ny"), Lines("x", "y"))
}

func TestSplitRejoin(t *testing.T) {
	js := Snippet("a();b();c()")
	parts := js.Split(";")
	assert.Equal(t, []Snippet{"a()", "b()", "c()"}, parts)
	assert.Equal(t, js, Snippet(";").Join(parts...))
	//
	assert.Equal(t, []Snippet{"a()", "b();c()"}, js.SplitN(";", 2))
	assert.Equal(t, []Snippet{"a();b()", "c()"}, js.RSplit(";", 2))
	assert.Equal(t, []Snippet{"a()", "b()", "c()"}, js.RSplit(";", -1))
	assert.Equal(t, []Snippet{"a();b();c()"}, js.RSplit("#", 3))
	assert.Equal(t, []Snippet{"var", "x=1;"}, Snippet("  var \t x=1;\n").Fields())
}

func TestPartition(t *testing.T) {
	js := Snippet("a//b//c")
	b, s, a := js.Partition("//")
	assert.Equal(t, []Snippet{"a", "//", "b//c"}, []Snippet{b, s, a})
	b, s, a = js.RPartition("//")
	assert.Equal(t, []Snippet{"a//b", "//", "c"}, []Snippet{b, s, a})
	b, s, a = js.Partition("#")
	assert.Equal(t, []Snippet{"a//b//c", "", ""}, []Snippet{b, s, a})
	b, s, a = js.RPartition("#")
	assert.Equal(t, []Snippet{"", "", "a//b//c"}, []Snippet{b, s, a})
}

func TestSplitLines(t *testing.T) {
	js := Snippet("a\nb\r\nc\rd\u2028e\n")
	assert.Equal(t, []Snippet{"a", "b", "c", "d", "e"}, js.SplitLines(false))
	assert.Equal(t, []Snippet{"a\n", "b\r\n", "c\r", "d\u2028", "e\n"}, js.SplitLines(true))
	assert.Equal(t, []Snippet{"", "x"}, Snippet("\nx").SplitLines(false))
	assert.Empty(t, Snippet("").SplitLines(false))
}
