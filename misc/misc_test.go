package misc_test

import (
	"bytes"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/on-the-ground/oneliners_go/capability"
	"github.com/on-the-ground/oneliners_go/misc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironment(t *testing.T) {
	assert.True(t, misc.IsRunningInTest(capability.Flags{TestWorkerID: "1"}))
	assert.True(t, misc.IsRunningInTest(capability.Flags{AppEnv: "test"}))
	assert.False(t, misc.IsRunningInTest(capability.Flags{AppEnv: "production"}))
	assert.True(t, misc.IsCI(capability.Flags{CI: true}))

	wasm := capability.Platform{GOOS: "js", GOARCH: "wasm"}
	linux := capability.Platform{GOOS: "linux", GOARCH: "amd64"}
	assert.True(t, misc.IsBrowser(wasm))
	assert.False(t, misc.IsNative(wasm))
	assert.True(t, misc.IsNative(linux))
}

func TestDiceAndCoin(t *testing.T) {
	r := capability.NewSequenceRandom(0, 0.5, 0.999)
	assert.Equal(t, 1, misc.ThrowDice(r))
	assert.Equal(t, 4, misc.ThrowDice(r))
	assert.Equal(t, 6, misc.ThrowDice(r))

	seeded := capability.NewSeeded(1)
	for i := 0; i < 100; i++ {
		n := misc.ThrowDice(seeded)
		assert.True(t, n >= 1 && n <= 6)
	}

	coin := capability.NewSequenceRandom(0.2, 0.7)
	assert.True(t, misc.FlipCoin(coin))
	assert.False(t, misc.FlipCoin(coin))
}

func TestCoalesce(t *testing.T) {
	v, ok := misc.Coalesce([]any{nil, nil, "helloworld", math.NaN()}).Get()
	assert.True(t, ok)
	assert.Equal(t, "helloworld", v)

	var nilPtr *int
	zero := 0
	p, ok := misc.Coalesce([]*int{nilPtr, &zero}).Get()
	assert.True(t, ok)
	assert.Same(t, &zero, p)

	assert.True(t, misc.Coalesce([]any{nil}).IsAbsent())
}

func TestGetTypeOf(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"hello world", "String"},
		{1000, "Number"},
		{math.Inf(1), "Number"},
		{true, "Boolean"},
		{nil, "Null"},
		{map[string]any{}, "Object"},
		{[]int{}, "Array"},
		{time.Unix(0, 0), "Date"},
		{errors.New("x"), "Error"},
		{func(a, b int) int { return a + b }, "Function"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, misc.GetTypeOf(tt.in))
	}
}

func TestAddOrdinal(t *testing.T) {
	for n, want := range map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th",
		11: "11th", 12: "12th", 13: "13th",
		21: "21st", 22: "22nd", 23: "23rd",
		101: "101st", 111: "111th", 0: "0th",
	} {
		assert.Equal(t, want, misc.AddOrdinal(n))
	}
}

func TestToChars(t *testing.T) {
	for n, want := range map[int]string{0: "A", 1: "B", 25: "Z", 26: "AA", 27: "AB", 51: "AZ", 702: "AAA"} {
		assert.Equal(t, want, misc.ToChars(n))
	}
	assert.Equal(t, "", misc.ToChars(-1))
}

func TestNewUUID(t *testing.T) {
	id, err := misc.NewUUID(bytes.NewReader(make([]byte, 16)))
	require.NoError(t, err)
	assert.Equal(t, "00000000-0000-4000-8000-000000000000", id)

	_, err = misc.NewUUID(bytes.NewReader(nil))
	assert.Error(t, err)
}
