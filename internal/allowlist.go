package internal

import (
	"fmt"

	"github.com/Workiva/go-datastructures/set"
)

// AllowList is an ordered, immutable set of wire tokens such as periods or
// detail levels. It is safe for concurrent use.
type AllowList struct {
	tokens  []string
	members *set.Set
}

func NewAllowList[T ~string](tokens []T) *AllowList {
	a := &AllowList{
		tokens:  make([]string, 0, len(tokens)),
		members: set.New(),
	}
	for _, t := range tokens {
		if a.members.Exists(string(t)) {
			continue
		}
		a.tokens = append(a.tokens, string(t))
		a.members.Add(string(t))
	}
	return a
}

func (a *AllowList) Contains(token string) bool {
	return a.members.Exists(token)
}

func (a *AllowList) Len() int {
	return len(a.tokens)
}

// Tokens returns a copy of the tokens in insertion order.
func (a *AllowList) Tokens() []string {
	return append([]string(nil), a.tokens...)
}

// String renders the list the way it appears in error messages, e.g. "[1d 7d]".
func (a *AllowList) String() string {
	return fmt.Sprint(a.tokens)
}
