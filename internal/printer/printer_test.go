package printer

import (
	"fmt"
	"testing"

	"github.com/pytlang/pyt/internal/diagnostics"
	"github.com/pytlang/pyt/internal/lexer"
	"github.com/pytlang/pyt/internal/lexer/token"
)

func tokenize(t *testing.T, src string) []*token.Token {
	t.Helper()

	collector := diagnostics.New()
	lex := lexer.New("test.py", []byte(src), collector)

	tokens, err := lex.Tokenize()
	if err != nil {
		t.Fatalf("unexpected error '%v'", err)
	}
	return tokens
}

func TestDump(t *testing.T) {
	src := `class A:
    def f(self, x: int) -> int:
        return x`

	expected := `keyword(class) name(A) :
indent keyword(def) name(f) ( keyword(self) , name(x) : keyword(int) ) -> keyword(int) :
indent indent keyword(return) name(x)`

	dump := Dump(tokenize(t, src))
	if dump != expected {
		t.Errorf("expected dump to be:\n%s\nbut got:\n%s", expected, dump)
	}
}

func TestDumpBlankLines(t *testing.T) {
	src := "a\n\n\nb"
	expected := "name(a)\n\n\nname(b)"

	dump := Dump(tokenize(t, src))
	if dump != expected {
		t.Errorf("expected dump to be %q, but got %q", expected, dump)
	}
}

func TestDumpEmptyStream(t *testing.T) {
	if dump := Dump(nil); dump != "" {
		t.Errorf("expected empty dump, but got %q", dump)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []string{
		"a = 1",
		"a   =   1",
		"x := f(a, b) ** 2 // 3",
		"result -> int",
		"# leading comment\nvalue = 3.14  # trailing comment",
		"print('hello world')",
		"café = 1",
		"s = 'héllo wörld'  # café",
		`class A:
    def f(self, x: int) -> int:
        return x`,
		`class Multiplication:
    def __init__(self, left: int, right: int) -> None:
        self.left = left
        self.right = right

    def compute(self) -> int:
        return self.left * self.right


def main():
    if Multiplication(2, 3).compute() >= 10:
        print('hello world')
    else:
        print('hello Mars')


main()`,
	}

	for _, src := range tests {
		t.Run(fmt.Sprintf("TestRoundTrip(%.20q)", src), func(t *testing.T) {
			rebuilt := Source(tokenize(t, src))
			if rebuilt != src {
				t.Errorf("expected reconstruction to be:\n%s\nbut got:\n%s", src, rebuilt)
			}
		})
	}
}

// Cells no token occupies are space placeholders, so layout the scanner
// never records (trailing blanks, a trailing newline) is not preserved.
func TestRoundTripBoundaries(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{"a   ", "a"},
		{"a\n", "a"},
		{"a = 1\n", "a = 1"},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestRoundTripBoundary(%q)", test.src), func(t *testing.T) {
			rebuilt := Source(tokenize(t, test.src))
			if rebuilt != test.expected {
				t.Errorf("expected reconstruction to be %q, but got %q", test.expected, rebuilt)
			}
		})
	}
}

func TestRescanIsIdempotent(t *testing.T) {
	src := `class Multiplication:
    def __init__(self, left: int, right: int) -> None:
        self.left = left
        self.right = right

    def compute(self) -> int:
        return self.left * self.right  # the product


def main():
    if Multiplication(2, 3).compute() >= 10:
        print('hello world')
    else:
        print('hello Mars')


main()`

	original := tokenize(t, src)
	rescanned := tokenize(t, Source(original))

	if len(original) != len(rescanned) {
		t.Fatalf("expected %d tokens after re-scan, but got %d", len(original), len(rescanned))
	}
	for i := range original {
		if original[i].Kind != rescanned[i].Kind {
			t.Errorf(
				"expected token %d to keep kind %q, but got %q",
				i,
				original[i].Kind,
				rescanned[i].Kind,
			)
		}
		if original[i].Literal != rescanned[i].Literal {
			t.Errorf(
				"expected token %d to keep literal %q, but got %q",
				i,
				original[i].Literal,
				rescanned[i].Literal,
			)
		}
	}
}

func TestIndentationReconstruction(t *testing.T) {
	src := `class A:
    def f(self, x: int) -> int:
        return x`

	rebuilt := Source(tokenize(t, src))

	lines := []string{
		"class A:",
		"    def f(self, x: int) -> int:",
		"        return x",
	}
	expected := lines[0] + "\n" + lines[1] + "\n" + lines[2]
	if rebuilt != expected {
		t.Errorf("expected reconstruction to be:\n%s\nbut got:\n%s", expected, rebuilt)
	}
}
