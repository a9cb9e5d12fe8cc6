package layout

import (
	"strings"
	"testing"
)

func TestUtilitiesMatchContainerClass(t *testing.T) {
	tokens := strings.Fields(ContainerClass)
	if len(tokens) != len(Utilities) {
		t.Fatalf("ContainerClass has %d tokens, Utilities has %d", len(tokens), len(Utilities))
	}
	for i, u := range Utilities {
		if u.Class != tokens[i] {
			t.Errorf("Utilities[%d].Class = %q, want %q", i, u.Class, tokens[i])
		}
	}
}

func TestStylesheet(t *testing.T) {
	css := Stylesheet()

	want := []string{
		".max-w-\\[1200px\\] {\n  max-width: 1200px;\n}\n",
		".mx-auto {\n  margin-left: auto;\n  margin-right: auto;\n}\n",
		".px-8 {\n  padding-left: 2rem;\n  padding-right: 2rem;\n}\n",
	}
	if css != strings.Join(want, "") {
		t.Errorf("Stylesheet() =\n%s\nwant\n%s", css, strings.Join(want, ""))
	}
}

func TestEscapeSelector(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"mx-auto", "mx-auto"},
		{"max-w-[1200px]", `max-w-\[1200px\]`},
		{"w-1/2", `w-1\/2`},
		{"2xl", `\32 xl`},
		{"hover:bg-white", `hover\:bg-white`},
		{"-1x", `-\31 x`},
		{"-m-2", "-m-2"},
		{"-", `\-`},
	}
	for _, tt := range tests {
		if got := EscapeSelector(tt.in); got != tt.want {
			t.Errorf("EscapeSelector(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
