// Package misc holds helpers that fit no other group: colors, URLs, tokens,
// easing curves, dice, ordinals and runtime detection.
package misc

import (
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
	"github.com/on-the-ground/oneliners_go/capability"
	"github.com/on-the-ground/oneliners_go/shared/kind"
	"github.com/samber/mo"
)

// ThrowDice returns 1 to 6.
func ThrowDice(r capability.Random) int {
	return int(r.Float64()*6) + 1
}

func FlipCoin(r capability.Random) bool {
	return r.Float64() < 0.5
}

// Coalesce returns the first argument that is not of kind.Null.
func Coalesce[T any](args []T) mo.Option[T] {
	for _, a := range args {
		if kind.Of(a) != kind.Null {
			return mo.Some(a)
		}
	}
	return mo.None[T]()
}

// GetTypeOf names the kind of v, e.g. "String", "Array" or "Null".
func GetTypeOf(v any) string {
	return kind.Of(v).String()
}

// AddOrdinal appends st, nd, rd or th. 11 to 13 always take th.
func AddOrdinal(n int) string {
	suffix := "th"
	idx := 0
	if (n%100)>>3^1 != 0 {
		idx = n % 10
	}
	switch idx {
	case 1:
		suffix = "st"
	case 2:
		suffix = "nd"
	case 3:
		suffix = "rd"
	}
	return strconv.Itoa(n) + suffix
}

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ToChars converts n to a spreadsheet column name: 0 is A, 26 is AA.
// Negative n yields "".
func ToChars(n int) string {
	if n < 0 {
		return ""
	}
	prefix := ""
	if n >= 26 {
		prefix = ToChars(n/26 - 1)
	}
	return prefix + string(alphabet[n%26])
}

// NewUUID returns a version 4 UUID read from r.
func NewUUID(r io.Reader) (string, error) {
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to generate uuid: %w", err)
	}
	return id.String(), nil
}
