package parse

import (
	"reflect"
	"testing"
)

func TestTag(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		input    string
		wantRest string
		want     string
		wantErr  bool
	}{
		{"full match", "abc", "abcdef", "def", "abc", false},
		{"exact input", "abc", "abc", "", "abc", false},
		{"mismatch", "abc", "abd", "abd", "", true},
		{"short input", "abc", "ab", "ab", "", true},
		{"empty tag", "", "xyz", "xyz", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, got, err := Tag(tt.tag)(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if rest != tt.wantRest {
				t.Errorf("rest = %q, want %q", rest, tt.wantRest)
			}
			if got != tt.want {
				t.Errorf("value = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTagNoCase(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		input    string
		wantRest string
		want     string
		wantErr  bool
	}{
		{"same case", "HTTP://", "HTTP://x", "x", "HTTP://", false},
		{"lower input", "HTTP://", "http://x", "x", "http://", false},
		{"mixed input", "HTTP://", "hTtP://x", "x", "hTtP://", false},
		{"mismatch", "HTTP://", "https://x", "https://x", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, got, err := TagNoCase(tt.tag)(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if rest != tt.wantRest {
				t.Errorf("rest = %q, want %q", rest, tt.wantRest)
			}
			if got != tt.want {
				t.Errorf("value = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOneOf(t *testing.T) {
	digits := OneOf("0123456789")

	rest, c, err := digits("5x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != '5' || rest != "x" {
		t.Errorf("got (%q, %q), want (%q, %q)", rest, c, "x", '5')
	}

	rest, _, err = digits("x5")
	if err == nil {
		t.Fatal("expected error")
	}
	if rest != "x5" {
		t.Errorf("rest = %q, want input untouched", rest)
	}
	wantFrames := []Frame{{Input: "x5", Kind: KindOneOf}}
	if !reflect.DeepEqual(err.Frames, wantFrames) {
		t.Errorf("frames = %v, want %v", err.Frames, wantFrames)
	}
}

func TestTakeWhile1(t *testing.T) {
	alpha := TakeWhile1(IsAlpha, KindAlpha)

	rest, got, err := alpha("abc1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "abc" || rest != "1" {
		t.Errorf("got (%q, %q), want (%q, %q)", rest, got, "1", "abc")
	}

	_, _, err = alpha("1abc")
	if err == nil {
		t.Fatal("expected error")
	}
	wantFrames := []Frame{{Input: "1abc", Kind: KindAlpha}}
	if !reflect.DeepEqual(err.Frames, wantFrames) {
		t.Errorf("frames = %v, want %v", err.Frames, wantFrames)
	}
}

func TestTakeWhile0(t *testing.T) {
	alpha := TakeWhile0(IsAlpha)

	rest, got, err := alpha("123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" || rest != "123" {
		t.Errorf("got (%q, %q), want empty match", rest, got)
	}
}

func TestAlt(t *testing.T) {
	ab := Alt(Tag("a"), Tag("b"))

	rest, got, err := ab("bc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "b" || rest != "c" {
		t.Errorf("got (%q, %q)", rest, got)
	}

	_, _, err = ab("c")
	if err == nil {
		t.Fatal("expected error")
	}
	wantFrames := []Frame{
		{Input: "c", Kind: KindTag},
		{Input: "c", Kind: KindAlt},
	}
	if !reflect.DeepEqual(err.Frames, wantFrames) {
		t.Errorf("frames = %v, want %v", err.Frames, wantFrames)
	}
}

func TestOpt(t *testing.T) {
	opt := Opt(Tag("a"))

	rest, got, err := opt("ab")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || *got != "a" || rest != "b" {
		t.Errorf("got (%q, %v)", rest, got)
	}

	rest, got, err = opt("ba")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("value = %v, want nil", got)
	}
	if rest != "ba" {
		t.Errorf("rest = %q, want input untouched", rest)
	}
}

func TestMany0(t *testing.T) {
	ab := Many0(Tag("ab"))

	rest, got, err := ab("ababx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"ab", "ab"}) || rest != "x" {
		t.Errorf("got (%q, %v)", rest, got)
	}

	rest, got, err = ab("x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 || rest != "x" {
		t.Errorf("got (%q, %v), want no matches", rest, got)
	}
}

func TestMany0RejectsEmptyMatch(t *testing.T) {
	// An inner parser that succeeds without consuming would loop forever.
	_, _, err := Many0(TakeWhile0(IsAlpha))("123")
	if err == nil {
		t.Fatal("expected error")
	}
	wantFrames := []Frame{{Input: "123", Kind: KindMany0}}
	if !reflect.DeepEqual(err.Frames, wantFrames) {
		t.Errorf("frames = %v, want %v", err.Frames, wantFrames)
	}
}

func TestMany1(t *testing.T) {
	ab := Many1(Tag("ab"))

	rest, got, err := ab("ababx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"ab", "ab"}) || rest != "x" {
		t.Errorf("got (%q, %v)", rest, got)
	}

	_, _, err = ab("x")
	if err == nil {
		t.Fatal("expected error")
	}
	wantFrames := []Frame{
		{Input: "x", Kind: KindTag},
		{Input: "x", Kind: KindMany1},
	}
	if !reflect.DeepEqual(err.Frames, wantFrames) {
		t.Errorf("frames = %v, want %v", err.Frames, wantFrames)
	}
}

func TestManyMN(t *testing.T) {
	digits := ManyMN(1, 3, OneOf("0123456789"))

	tests := []struct {
		name     string
		input    string
		wantRest string
		want     []byte
		wantErr  bool
	}{
		{"greedy up to max", "12345", "45", []byte("123"), false},
		{"stops at non-digit", "1a", "a", []byte("1"), false},
		{"min unmet", "abc", "abc", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, got, err := digits(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if rest != tt.wantRest {
				t.Errorf("rest = %q, want %q", rest, tt.wantRest)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("value = %v, want %v", got, tt.want)
			}
		})
	}

	_, _, err := digits("abc")
	wantFrames := []Frame{
		{Input: "abc", Kind: KindOneOf},
		{Input: "abc", Kind: KindManyMN},
	}
	if !reflect.DeepEqual(err.Frames, wantFrames) {
		t.Errorf("frames = %v, want %v", err.Frames, wantFrames)
	}
}

func TestCount(t *testing.T) {
	three := Count(Tag("a"), 3)

	rest, got, err := three("aaab")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"a", "a", "a"}) || rest != "b" {
		t.Errorf("got (%q, %v)", rest, got)
	}

	_, _, err = three("aab")
	if err == nil {
		t.Fatal("expected error")
	}
	wantFrames := []Frame{
		{Input: "b", Kind: KindTag},
		{Input: "aab", Kind: KindCount},
	}
	if !reflect.DeepEqual(err.Frames, wantFrames) {
		t.Errorf("frames = %v, want %v", err.Frames, wantFrames)
	}
}

func TestSequencing(t *testing.T) {
	term := Terminated(Tag("a"), Tag("b"))
	rest, got, err := term("abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "a" || rest != "c" {
		t.Errorf("terminated: got (%q, %q)", rest, got)
	}

	rest, _, err = term("ax")
	if err == nil {
		t.Fatal("expected error")
	}
	if rest != "ax" {
		t.Errorf("rest = %q, want input untouched on suffix failure", rest)
	}

	pre := Preceded(Tag("#"), Alpha1())
	rest, got, err = pre("#frag rest")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "frag" || rest != " rest" {
		t.Errorf("preceded: got (%q, %q)", rest, got)
	}

	del := Delimited(Tag("["), Alpha1(), Tag("]"))
	rest, got, err = del("[ab]x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ab" || rest != "x" {
		t.Errorf("delimited: got (%q, %q)", rest, got)
	}
}

func TestSeparatedPair(t *testing.T) {
	pair := SeparatedPair(Alpha1(), Tag(":"), Digit1())

	rest, got, err := pair("ab:12x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Pair[string, string]{First: "ab", Second: "12"}
	if got != want || rest != "x" {
		t.Errorf("got (%q, %+v)", rest, got)
	}
}

func TestSeparatedList0(t *testing.T) {
	list := SeparatedList0(Tag(","), Digit1())

	tests := []struct {
		name     string
		input    string
		wantRest string
		want     []string
	}{
		{"several", "1,2,3x", "x", []string{"1", "2", "3"}},
		{"single", "7", "", []string{"7"}},
		{"none", "x", "x", []string{}},
		{"trailing separator left alone", "1,x", ",x", []string{"1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rest, got, err := list(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rest != tt.wantRest {
				t.Errorf("rest = %q, want %q", rest, tt.wantRest)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("value = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContext(t *testing.T) {
	digits := Context("digits", Digit1())

	_, _, err := digits("abc")
	if err == nil {
		t.Fatal("expected error")
	}
	wantFrames := []Frame{
		{Input: "abc", Kind: KindDigit},
		{Input: "abc", Context: "digits"},
	}
	if !reflect.DeepEqual(err.Frames, wantFrames) {
		t.Errorf("frames = %v, want %v", err.Frames, wantFrames)
	}
}

func TestErrorMessage(t *testing.T) {
	_, _, err := Context("digits", Digit1())("abc")
	if err == nil {
		t.Fatal("expected error")
	}
	want := "expected digit at \"abc\"\nin digits at \"abc\""
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}

	if BareError().Error() != "parse failed" {
		t.Errorf("bare message = %q", BareError().Error())
	}
}
