package sessionid_test

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessionkit/noluhn/internal/noluhn"
	"github.com/sessionkit/noluhn/internal/sessionid"
)

// attributes is a map backed AttributeSource.
type attributes map[string]string

func (a attributes) Attribute(key, defaultValue string) string {
	if v, ok := a[key]; ok {
		return v
	}

	return defaultValue
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted") //nolint:goerr113
}

func TestNewDefaults(t *testing.T) {
	p := sessionid.New()

	assert.Equal(t, sessionid.DefaultLength, p.Length())
	assert.Equal(t, 40, p.CharLength())

	id, err := p.NewID()
	require.NoError(t, err)
	assert.Len(t, id, 40)
	assert.True(t, noluhn.Valid(id))
}

func TestNewIDDeterministicSource(t *testing.T) {
	src := []byte{0xD0, 0, 0, 0xD0, 0, 0}
	p := sessionid.New(sessionid.WithLength(len(src)), sessionid.WithRandom(bytes.NewReader(src)))

	id, err := p.NewID()
	require.NoError(t, err)
	assert.Equal(t, "0AAANAAA", id)
}

func TestNewIDRandomFailure(t *testing.T) {
	p := sessionid.New(sessionid.WithRandom(failingReader{}))

	id, err := p.NewID()
	require.Error(t, err)
	assert.Empty(t, id)
	assert.Contains(t, err.Error(), "entropy exhausted")

	assert.Panics(t, func() { p.KeyGenerator()() })
}

func TestNewIDShortSource(t *testing.T) {
	p := sessionid.New(sessionid.WithLength(6), sessionid.WithRandom(bytes.NewReader([]byte{1, 2, 3})))

	_, err := p.NewID()
	require.Error(t, err)
}

func TestNewIDZeroLength(t *testing.T) {
	p := sessionid.New(sessionid.WithLength(0))

	id, err := p.NewID()
	require.NoError(t, err)
	assert.Empty(t, id)

	// empty is never a recognisable id
	_, ok := p.ReadID("")
	assert.False(t, ok)
}

func TestWithLengthNegativePanics(t *testing.T) {
	assert.Panics(t, func() { sessionid.New(sessionid.WithLength(-1)) })
}

func TestSetLength(t *testing.T) {
	p := sessionid.New()

	require.NoError(t, p.SetLength(3))
	assert.Equal(t, 4, p.CharLength())

	err := p.SetLength(-3)
	require.ErrorIs(t, err, sessionid.ErrNegativeLength)
	assert.Equal(t, 3, p.Length())
}

func TestReadID(t *testing.T) {
	p := sessionid.New(sessionid.WithLength(6))

	testCases := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{name: "empty", in: ""},
		{name: "blank", in: "   "},
		{name: "tabs and newlines", in: "\t\n"},
		{name: "too short", in: "AAAA"},
		{name: "too long", in: "AAAAAAAAAAAA"},
		{name: "exact", in: "AAAANAAA", want: "AAAANAAA", wantOK: true},
		{name: "trimmed", in: "  AAAANAAA\n", want: "AAAANAAA", wantOK: true},
		{name: "charset is not checked", in: "!!!!!!!!", want: "!!!!!!!!", wantOK: true},
		{name: "inner whitespace counts", in: "AAAA AAA", want: "AAAA AAA", wantOK: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := p.ReadID(tc.in)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReadIDAcceptsGeneratedIDs(t *testing.T) {
	for _, n := range []int{1, 2, 3, 16, 30, 31, 64} {
		p := sessionid.New(sessionid.WithLength(n))

		for range 20 {
			id, err := p.NewID()
			require.NoError(t, err)

			got, ok := p.ReadID(id)
			require.True(t, ok, "length %d id %q", n, id)
			assert.Equal(t, id, got)
		}
	}
}

func TestReadIDRejectsWrongLength(t *testing.T) {
	p := sessionid.New()

	for n := 1; n < 100; n++ {
		s := strings.Repeat("A", n)

		_, ok := p.ReadID(s)
		assert.Equal(t, n == p.CharLength(), ok, "n=%d", n)
	}
}

func TestConfigure(t *testing.T) {
	testCases := []struct {
		name    string
		attrs   attributes
		want    int
		wantErr error
	}{
		{name: "absent uses default", attrs: attributes{}, want: sessionid.DefaultLength},
		{name: "explicit", attrs: attributes{sessionid.AttributeIDLength: "12"}, want: 12},
		{name: "zero", attrs: attributes{sessionid.AttributeIDLength: "0"}, want: 0},
		{name: "not numeric", attrs: attributes{sessionid.AttributeIDLength: "thirty"}, wantErr: sessionid.ErrInvalidLength},
		{name: "empty string", attrs: attributes{sessionid.AttributeIDLength: ""}, wantErr: sessionid.ErrInvalidLength},
		{name: "negative", attrs: attributes{sessionid.AttributeIDLength: "-4"}, wantErr: sessionid.ErrNegativeLength},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := sessionid.New(sessionid.WithLength(7))

			err := p.Configure(tc.attrs)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, 7, p.Length(), "failed configure must not change the length")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, p.Length())
		})
	}
}

func TestConfigureNilSource(t *testing.T) {
	require.Error(t, sessionid.New().Configure(nil))
}

func TestNewIDConcurrent(t *testing.T) {
	const (
		workers = 16
		perWork = 500
	)

	p := sessionid.New()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[string]struct{}, workers*perWork)
	)

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range perWork {
				id, err := p.NewID()
				if !assert.NoError(t, err) {
					return
				}

				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	assert.Len(t, seen, workers*perWork, "ids must not repeat")
}

func TestConfigureWhileGenerating(t *testing.T) {
	p := sessionid.New(sessionid.WithLength(3))

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		for i := range 200 {
			n := "3"
			if i%2 == 0 {
				n = "6"
			}

			assert.NoError(t, p.Configure(attributes{sessionid.AttributeIDLength: n}))
		}
	}()

	for range 200 {
		id, err := p.NewID()
		require.NoError(t, err)
		assert.Contains(t, []int{4, 8}, len(id))
	}

	wg.Wait()
}

func TestZeroProvider(t *testing.T) {
	var p sessionid.Provider

	id, err := p.NewID()
	require.NoError(t, err)
	assert.Empty(t, id)

	require.NoError(t, p.SetLength(3))

	id, err = p.NewID()
	require.NoError(t, err)
	assert.Len(t, id, 4)

	got, ok := p.ReadID(id)
	assert.True(t, ok)
	assert.Equal(t, id, got)
}

func TestReadIDCountsBytes(t *testing.T) {
	p := sessionid.New(sessionid.WithLength(3))

	// four characters, seven bytes
	_, ok := p.ReadID("ééé!")
	assert.False(t, ok)

	// two characters, four bytes
	got, ok := p.ReadID("éé")
	assert.True(t, ok)
	assert.Equal(t, "éé", got)
}
