package prompt

import (
	"bytes"
	"slices"
	"testing"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want []int
	}{
		{"empty input", "", nil},
		{"no digits", "abc", nil},
		{"single value", "3", []int{3}},
		{"dash range", "2-4", []int{2, 3, 4}},
		{"inverted range expands empty", "9-3", nil},
		{"comma list", "0,2,5-7", []int{0, 2, 5, 6, 7}},
		{"trailing dash", "5-", []int{5}},
		{"duplicates preserved", "1,1", []int{1, 1}},
		{"overlapping tokens", "2-4,3", []int{2, 3, 4, 3}},
		{"digit runs matched anywhere", "abc3def5", []int{3, 5}},
		{"whitespace separators", "0 2  5-7", []int{0, 2, 5, 6, 7}},
		{"conversion overflow", "99999999999999999999", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseRange(tt.expr)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ParseRange(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestParseRangeAllSubstitutionRoundTrip(t *testing.T) {
	const n = 8
	got := ParseRange(allIndices(n))
	if len(got) != n {
		t.Fatalf("ParseRange(allIndices(%d)) has %d elements, want %d", n, len(got), n)
	}
	for i, v := range got {
		if v != i {
			t.Errorf("element %d = %d, want %d", i, v, i)
		}
	}
}

// fakePrompt returns a PromptFunc that commits answer without any
// interaction, recording the validator it was handed.
func fakePrompt(answer string, validate *func(string) bool) PromptFunc {
	return func(message, defaultValue string, valid func(string) bool, dirtyMessage string) (string, error) {
		if validate != nil {
			*validate = valid
		}
		return answer, nil
	}
}

func TestSelectRangeEmptyOptionsDoesNotPrompt(t *testing.T) {
	var buf bytes.Buffer
	s := Selector{
		Out: &buf,
		Prompt: func(string, string, func(string) bool, string) (string, error) {
			t.Fatal("prompt should not be called for an empty option list")
			return "", nil
		},
	}

	if got := s.SelectRange(nil, "pick"); len(got) != 0 {
		t.Errorf("SelectRange(nil) = %v, want empty", got)
	}
	if buf.Len() != 0 {
		t.Errorf("SelectRange(nil) printed %q, want nothing", buf.String())
	}
}

func TestSelectRangeEnumeratesOptions(t *testing.T) {
	var buf bytes.Buffer
	s := Selector{Out: &buf, Prompt: fakePrompt("0", nil)}

	s.SelectRange([]string{"alpha", "beta", "gamma"}, "pick")

	want := "0. alpha\n1. beta\n2. gamma\n"
	if buf.String() != want {
		t.Errorf("enumeration output = %q, want %q", buf.String(), want)
	}
}

func TestSelectRangeAllKeywords(t *testing.T) {
	options := []string{"a", "b", "c", "d"}
	for _, keyword := range []string{KeywordAll, KeywordAllShort} {
		t.Run(keyword, func(t *testing.T) {
			var buf bytes.Buffer
			s := Selector{Out: &buf, Prompt: fakePrompt(keyword, nil)}

			got := s.SelectRange(options, "pick")
			if !slices.Equal(got, []int{0, 1, 2, 3}) {
				t.Errorf("SelectRange with %q = %v, want [0 1 2 3]", keyword, got)
			}
		})
	}
}

func TestSelectRangeFiltersOutOfBounds(t *testing.T) {
	var buf bytes.Buffer
	s := Selector{Out: &buf, Prompt: fakePrompt("1,5,2-4", nil)}

	got := s.SelectRange([]string{"a", "b", "c"}, "pick")
	if !slices.Equal(got, []int{1, 2}) {
		t.Errorf("SelectRange = %v, want [1 2]", got)
	}
}

func TestSelectRangeKeepsDuplicatesAndOrder(t *testing.T) {
	var buf bytes.Buffer
	s := Selector{Out: &buf, Prompt: fakePrompt("2,2,0-1", nil)}

	got := s.SelectRange([]string{"a", "b", "c"}, "pick")
	if !slices.Equal(got, []int{2, 2, 0, 1}) {
		t.Errorf("SelectRange = %v, want [2 2 0 1]", got)
	}
}

func TestSelectRangeValidator(t *testing.T) {
	var valid func(string) bool
	var buf bytes.Buffer
	s := Selector{Out: &buf, Prompt: fakePrompt("0", &valid)}
	s.SelectRange([]string{"a", "b", "c"}, "pick")

	if valid == nil {
		t.Fatal("selector did not hand a validator to the prompt")
	}

	tests := []struct {
		input string
		want  bool
	}{
		{"all", true},
		{"a", true},
		{"0", true},
		{"1-5", true}, // intersects [0,3)
		{"2,9", true},
		{"5", false},
		{"9-3", false},
		{"abc", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := valid(tt.input); got != tt.want {
			t.Errorf("validator(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSelectRangeCancelledPrompt(t *testing.T) {
	var buf bytes.Buffer
	s := Selector{
		Out: &buf,
		Prompt: func(string, string, func(string) bool, string) (string, error) {
			return "", ErrCancelled
		},
	}

	if got := s.SelectRange([]string{"a", "b"}, "pick"); len(got) != 0 {
		t.Errorf("SelectRange after cancel = %v, want empty", got)
	}
}
