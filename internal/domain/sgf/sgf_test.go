package sgf_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lightvector/ogstosgf/internal/domain/sgf"
)

func TestEscape(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"plain [text", "plain [text"},
		{"a]b", `a\]b`},
		{"]]", `\]\]`},
		{`back\slash`, `back\slash`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, sgf.Escape(tc.in), "escape %q", tc.in)
	}
}

func TestEscapeIdempotentWithoutBracket(t *testing.T) {
	for _, s := range []string{"", "abc", "Game [1", "日本棋院"} {
		once := sgf.Escape(s)
		require.Equal(t, s, once)
		require.Equal(t, once, sgf.Escape(once))
	}
}

func TestEscapeLeavesNoBareBracket(t *testing.T) {
	for _, s := range []string{"]", "x]y]z", "[]", "]]]["} {
		out := sgf.Escape(s)
		for i := 0; i < len(out); i++ {
			if out[i] == ']' {
				require.True(t, i > 0 && out[i-1] == '\\', "bare ] in %q", out)
			}
		}
	}
}

func TestCoord(t *testing.T) {
	c, ok := sgf.Coord(3, 3)
	require.True(t, ok)
	assert.Equal(t, "dd", c)

	c, ok = sgf.Coord(26, 51)
	require.True(t, ok)
	assert.Equal(t, "AZ", c)

	_, ok = sgf.Coord(52, 0)
	assert.False(t, ok)
	_, ok = sgf.Coord(0, -1)
	assert.False(t, ok)
}

func TestSerializeKeepsInsertionOrder(t *testing.T) {
	doc := sgf.New()
	root := doc.RootNode()
	root.Add("FF", "4")
	root.Add("GN", "a]b")
	root.Add("AB", "dd", "pp")
	doc.AppendNode(sgf.Property{Key: "B", Values: []string{"ee"}})
	doc.AppendNode(sgf.Property{Key: "W", Values: []string{""}})

	assert.Equal(t, `(;FF[4]GN[a\]b]AB[dd][pp];B[ee];W[])`, sgf.Serialize(doc))
}

func TestSerializeVariations(t *testing.T) {
	doc := sgf.New()
	doc.RootNode().Add("GM", "1")
	doc.Root.Children = []*sgf.GameTree{
		{Nodes: []*sgf.Node{{Properties: []sgf.Property{{Key: "B", Values: []string{"aa"}}}}}},
		{Nodes: []*sgf.Node{{Properties: []sgf.Property{{Key: "B", Values: []string{"bb"}}}}}},
	}

	out := sgf.Serialize(doc)
	assert.Equal(t, "(;GM[1](;B[aa])(;B[bb]))", out)
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestNodeGet(t *testing.T) {
	n := &sgf.Node{}
	n.Add("RE", "B+R")
	n.Add("RE", "ignored")

	v, ok := n.Get("RE")
	require.True(t, ok)
	assert.Equal(t, []string{"B+R"}, v)

	_, ok = n.Get("KM")
	assert.False(t, ok)
}
