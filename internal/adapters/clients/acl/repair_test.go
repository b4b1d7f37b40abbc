package acl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepair(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "escaped apostrophe",
			raw:  `{"quoteText":"Don\'t panic","quoteAuthor":""}`,
			want: `{"quoteText":"Don't panic","quoteAuthor":""}`,
		},
		{
			name: "multiple occurrences",
			raw:  `it\'s what it\'s`,
			want: `it's what it's`,
		},
		{
			name: "no escapes",
			raw:  `{"quoteText":"plain"}`,
			want: `{"quoteText":"plain"}`,
		},
		{
			name: "other escapes untouched",
			raw:  `a \" b \\ c \n d`,
			want: `a \" b \\ c \n d`,
		},
		{
			name: "backslash run before apostrophe",
			raw:  `{"quoteText":"a \\\\' b"}`,
			want: `{"quoteText":"a ' b"}`,
		},
		{
			name: "empty",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Repair(tt.raw))
		})
	}
}

func TestRepair_Idempotent(t *testing.T) {
	inputs := []string{
		`Don\'t`,
		`\\'`,
		`\\\\\'`,
		`\'\'\'`,
		`nothing here`,
	}

	for _, in := range inputs {
		once := Repair(in)
		assert.Equal(t, once, Repair(once), "input %q", in)
		assert.NotContains(t, once, `\'`)
	}
}
