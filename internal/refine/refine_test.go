package refine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefine(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Leading space pronoun and contraction", " i cant believe it.", "I can't believe it."},
		{"Whitespace runs collapse", "the  night\t\tis\nlong", "The night is long"},
		{"Space before punctuation removed", "hello , world !", "Hello, world!"},
		{"Space inserted after punctuation", "stay.Go on,friend;really", "Stay. Go on, friend; really"},
		{"Host names keep their dots", "visit example.com or www.syahi.in today", "Visit example.com or www.syahi.in today"},
		{"File names keep their dots", "open notes.txt.then rest", "Open notes.txt.then rest"},
		{"Paragraph breaks survive", "first line\nstill first.\n\n\n  second   para", "First line still first.\n\nSecond para"},
		{"Paragraph edges trimmed", "\n\n  i wrote this  \n\n", "I wrote this"},
		{"Windows line endings", "one\r\ntwo\r\n\r\nthree", "One two\n\nThree"},
		{"Sentence starts capitalized", "one. two! three? four", "One. Two! Three? Four"},
		{"Capitalized contraction keeps case", "Dont stop. im here", "Don't stop. I'm here"},
		{"Whole words only", "important cantor", "Important cantor"},
		{"Pronoun only as a word", "i think it is ink", "I think it is ink"},
		{"Words that are also contractions stay", "he is ill and lets go", "He is ill and lets go"},
		{"Already refined text is stable", "I can't believe it.", "I can't believe it."},
		{"Empty", "", ""},
		{"Only spaces", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Refine(tt.in))
		})
	}
}

func TestRefine_Idempotent(t *testing.T) {
	t.Parallel()
	inputs := []string{
		" i cant believe it.",
		"hello   world .this is  great!dont stop",
		"theyre here,whats next ?",
		"see example.com.\n\n\nthen  rest",
	}
	for _, in := range inputs {
		once := Refine(in)
		assert.Equal(t, once, Refine(once), in)
	}
}

func TestRules_Order(t *testing.T) {
	t.Parallel()
	rs := Rules()
	assert.Equal(t, "collapse-whitespace", rs[0].Name)
	assert.Equal(t, "trim-lines", rs[1].Name)
	assert.Equal(t, "capitalize-sentences", rs[len(rs)-1].Name)

	rs[0].Name = "mutated"
	assert.Equal(t, "collapse-whitespace", Rules()[0].Name)
}
