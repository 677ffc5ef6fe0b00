package handler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommandArgs(t *testing.T) {
	testCases := []struct {
		text string
		want string
	}{
		{text: "/ignore Fire Shard", want: "Fire Shard"},
		{text: "/ignore   Fire Shard  ", want: "Fire Shard"},
		{text: "/ignore", want: ""},
		{text: "/top@shard_bot 5", want: "5"},
	}

	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			require.Equal(t, tc.want, commandArgs(tc.text))
		})
	}
}

func TestParseLimit(t *testing.T) {
	testCases := []struct {
		args   string
		want   int
		wantOK bool
	}{
		{args: "", want: defaultLimit, wantOK: true},
		{args: "5", want: 5, wantOK: true},
		{args: "50 extra", want: 50, wantOK: true},
		{args: "0"},
		{args: "51"},
		{args: "ten"},
	}

	for _, tc := range testCases {
		t.Run(tc.args, func(t *testing.T) {
			rq := require.New(t)

			got, ok := parseLimit(tc.args)
			rq.Equal(tc.wantOK, ok)
			rq.Equal(tc.want, got)
		})
	}
}
