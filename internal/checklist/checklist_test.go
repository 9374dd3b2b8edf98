package checklist

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestStatusStringIsFixed(t *testing.T) {
	assert.Equal(t, "[ ] (Unchecked)", Unchecked.String())
	assert.Equal(t, "[x] (Checked)", Checked.String())
	assert.Equal(t, "[-] (skipped)", Skipped.String())
}

func TestStatusTokens(t *testing.T) {
	for _, tc := range []struct {
		status Status
		token  string
	}{
		{Unchecked, "UNCHECKED"},
		{Checked, "CHECKED"},
		{Skipped, "SKIP"},
	} {
		b, err := tc.status.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, tc.token, string(b))

		var s Status
		require.NoError(t, s.UnmarshalText([]byte(tc.token)))
		assert.Equal(t, tc.status, s)
	}

	var s Status
	assert.Error(t, s.UnmarshalText([]byte("skipped")))
	_, err := Status(7).MarshalText()
	assert.Error(t, err)
}

func TestItemString(t *testing.T) {
	it := Item{Name: "item1", Description: "item 1 description"}
	assert.Equal(t, "name: item1\ndescription: item 1 description\nstatus: [ ] (Unchecked)\ncomment: -\n", it.String())

	it.SetStatus(Skipped)
	it.SetComment("bad lighting")
	assert.Equal(t, "name: item1\ndescription: item 1 description\nstatus: [-] (skipped)\ncomment: bad lighting\n", it.String())
}

func TestSetCommentKeepsStatus(t *testing.T) {
	it := Item{Name: "a", Status: Checked}
	it.SetComment("note")
	assert.Equal(t, Checked, it.Status)
	it.SetComment("")
	require.True(t, it.HasComment())
	assert.Equal(t, "", *it.Comment)
}

func TestChecklistString(t *testing.T) {
	c := Example()
	c.Items[0].SetStatus(Checked)
	want := "checklist name: list 1\n\n" +
		"\tname: item1 -> [x] (Checked)\n" +
		"\tname: item2 -> [ ] (Unchecked)\n"
	assert.Equal(t, want, c.String())
}

func TestCounts(t *testing.T) {
	c := &Checklist{Items: []Item{{Status: Checked}, {Status: Skipped}, {}, {}}}
	checked, skipped, unchecked := c.Counts()
	assert.Equal(t, 1, checked)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, 2, unchecked)
}

func TestMarshalWritesNullComment(t *testing.T) {
	b, err := Marshal(Example())
	require.NoError(t, err)
	want := `{
  "name": "list 1",
  "list": [
    {
      "name": "item1",
      "desc": "item 1 description",
      "status": "UNCHECKED",
      "comment": null
    },
    {
      "name": "item2",
      "desc": "item 2 description",
      "status": "UNCHECKED",
      "comment": null
    }
  ]
}
`
	assert.Equal(t, want, string(b))
}

func TestMarshalDoesNotEscapeHTML(t *testing.T) {
	b, err := Marshal(&Checklist{Name: "flash <250>", Items: []Item{{Name: "a&b"}}})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"flash <250>"`)
	assert.Contains(t, string(b), `"a&b"`)
}

func TestMarshalEmptyListIsArray(t *testing.T) {
	b, err := Marshal(&Checklist{Name: "empty"})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"list": []`)

	_, err = Marshal(nil)
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	cases := []*Checklist{
		Example(),
		{Name: "empty"},
		{
			Name: "mixed",
			Items: []Item{
				{Name: "b", Description: "second", Status: Checked},
				{Name: "a", Description: "first", Status: Skipped, Comment: strptr("bad lighting")},
				{Name: "c", Description: "", Status: Unchecked, Comment: strptr("")},
				{Name: "d", Description: "quotes \" and\nnewlines", Status: Skipped},
			},
		},
	}
	for _, want := range cases {
		t.Run(want.Name, func(t *testing.T) {
			b, err := Marshal(want)
			require.NoError(t, err)
			got, err := Unmarshal(b)
			require.NoError(t, err)
			if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnmarshalMissingCommentIsAbsent(t *testing.T) {
	c, err := Unmarshal([]byte(`{"name":"n","list":[{"name":"a","desc":"d","status":"CHECKED"}]}`))
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Nil(t, c.Items[0].Comment)
	assert.Equal(t, Checked, c.Items[0].Status)
}

func TestUnmarshalErrors(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		field string
		msg   string
	}{
		{"malformed", `{"name": "n", "list": [`, "", "malformed JSON"},
		{"not an object", `[1, 2]`, "", ""},
		{"missing list", `{"name": "n"}`, "", "list"},
		{"missing name", `{"list": []}`, "", "name"},
		{"missing status", `{"name":"n","list":[{"name":"a","desc":"d"}]}`, "list[0]", "status"},
		{"bad status", `{"name":"n","list":[{"name":"a","desc":"d","status":"DONE"}]}`, "list[0].status", ""},
		{"wrong comment type", `{"name":"n","list":[{"name":"a","desc":"d","status":"SKIP","comment":3}]}`, "list[0].comment", ""},
		{"case variant of list", `{"name":"a","list":[],"LIST":[{"name":"x","desc":"d","status":"CHECKED"}]}`, "LIST", ""},
		{"case variant of status", `{"name":"n","list":[{"name":"a","desc":"d","status":"UNCHECKED","Status":"CHECKED"}]}`, "list[0].Status", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tc.input))
			require.Error(t, err)
			var pe *ParseError
			require.True(t, errors.As(err, &pe), "want *ParseError, got %T", err)
			assert.Equal(t, tc.field, pe.Field)
			assert.True(t, strings.Contains(pe.Error(), tc.msg), "error %q does not mention %q", pe.Error(), tc.msg)
		})
	}
}

func TestUnmarshalIgnoresUnrelatedKeys(t *testing.T) {
	c, err := Unmarshal([]byte(`{"name":"n","version":2,"list":[{"name":"a","desc":"d","status":"CHECKED","tags":["x"]}]}`))
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, Checked, c.Items[0].Status)
}

func TestUnmarshalMalformedWrapsSyntaxError(t *testing.T) {
	_, err := Unmarshal([]byte(`{`))
	var syn *json.SyntaxError
	assert.True(t, errors.As(err, &syn))
}

func TestParseErrorMessage(t *testing.T) {
	err := &ParseError{Path: "a.json", Field: "list[0].status", Msg: "bad"}
	assert.Equal(t, "parse checklist a.json: list[0].status: bad", err.Error())
}

func TestPointerToPath(t *testing.T) {
	assert.Equal(t, "", pointerToPath(""))
	assert.Equal(t, "name", pointerToPath("/name"))
	assert.Equal(t, "list[2].comment", pointerToPath("/list/2/comment"))
	assert.Equal(t, "a/b", pointerToPath("#/a~1b"))
}
