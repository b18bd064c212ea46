package utf8

import (
	"strings"
	"testing"
	stdlib "unicode/utf8"

	"github.com/stretchr/testify/assert"
)

type byteRange struct {
	Low  byte
	High byte
}

func one(b byte) byteRange {
	return byteRange{b, b}
}

// expand builds every sequence taking the low, middle and high byte of each
// range in turn.
func expand(current string, ranges []byteRange) []string {
	if len(ranges) == 0 {
		return []string{current}
	}
	r := ranges[0]
	elements := []byte{r.Low, r.High}
	if mid := r.Low/2 + r.High/2; mid != r.Low && mid != r.High {
		elements = append(elements, mid)
	}

	var all []string
	for _, x := range elements {
		all = append(all, expand(current+string(x), ranges[1:])...)
		if r.Low == r.High {
			break
		}
	}
	return all
}

func TestValidString(t *testing.T) {
	examples := []string{
		"",
		"a",
		"the apple is the red one",
		"Ж",
		"брэд-ЛГТМ",
		"☺☻☹",
		// overlong
		"\xE0\x80",
		"\xc0\x80",
		// unfinished continuation
		"aa\xE2",
		// U+10FFFF and one past it
		"\xF4\x8F\xBF\xBF",
		"\xF4\x90\x80\x80",
		// surrogate half
		"\xed\xa0\x80",
		strings.Repeat("a", 63) + "☺",
		strings.Repeat("a", 63) + "\xE2a",
	}

	cont := byteRange{0x80, 0xBF}
	ascii := byteRange{0, 0x7F}
	for _, r := range [][]byteRange{
		{one(0xC2), cont},
		{one(0xC2), ascii},
		{one(0xE1), cont, cont},
		{one(0xE1), cont, ascii},
		{one(0xF1), cont, cont, cont},
		{{0xC0, 0xC1}, cont},
		{one(0xE0), {0x80, 0x9F}, cont},
	} {
		examples = append(examples, expand("x", r)...)
	}

	for _, tt := range examples {
		t.Run(tt, func(t *testing.T) {
			assert.Equal(t, stdlib.ValidString(tt), ValidString(tt))
		})
	}
}

func TestRuneCount(t *testing.T) {
	for _, s := range []string{"", "abc", "日本語", "ab日本語cd", "x\xffy"} {
		assert.Equal(t, stdlib.RuneCountInString(s), RuneCount(s), "RuneCount(%q)", s)
	}
}

func TestRuneOffsets(t *testing.T) {
	tests := []struct {
		s    string
		in   []int
		want []int
	}{
		{"hello", []int{0, 2, 5}, []int{0, 2, 5}},
		{"日本語", []int{0, 3, 6, 9}, []int{0, 1, 2, 3}},
		{"ab日本cd", []int{0, 2, 5, 8, 9}, []int{0, 2, 3, 4, 5}},
		{"x日本x日本", []int{1, 8}, []int{1, 4}},
		{"日本", nil, nil},
	}

	for _, tt := range tests {
		got := append([]int(nil), tt.in...)
		RuneOffsets(tt.s, got)
		assert.Equal(t, tt.want, got, "RuneOffsets(%q, %v)", tt.s, tt.in)
	}
}

var longMostlyASCII = strings.Repeat(strings.Repeat("0123456789", 99)+"日本語", 100)

func BenchmarkValidString(b *testing.B) {
	b.Run("std", func(b *testing.B) {
		b.SetBytes(int64(len(longMostlyASCII)))
		for i := 0; i < b.N; i++ {
			stdlib.ValidString(longMostlyASCII)
		}
	})

	b.Run("fastpath", func(b *testing.B) {
		b.SetBytes(int64(len(longMostlyASCII)))
		for i := 0; i < b.N; i++ {
			ValidString(longMostlyASCII)
		}
	})
}
