package handler

import (
	"strconv"
	"strings"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

// commandArgs returns the text after the command word.
func commandArgs(text string) string {
	_, args, _ := strings.Cut(strings.TrimSpace(text), " ")
	return strings.TrimSpace(args)
}

// parseLimit reads the optional row count of /top and /sell.
func parseLimit(args string) (int, bool) {
	if args == "" {
		return defaultLimit, true
	}

	n, err := strconv.Atoi(strings.Fields(args)[0])
	if err != nil || n < 1 || n > maxLimit {
		return 0, false
	}

	return n, true
}
