package gameid

import (
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/lox/holdem-engine/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIsValid(t *testing.T) {
	t.Parallel()

	id := Generate()
	assert.Len(t, id, Length)
	require.NoError(t, Validate(id))
	assert.LessOrEqual(t, id[0], byte('7'))
}

func TestGenerateUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for range 500 {
		id := Generate()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestGenerateSortsByTime(t *testing.T) {
	t.Parallel()

	mClock := quartz.NewMock(t)
	mClock.Set(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	gen := NewGenerator(randutil.Intn{R: randutil.New(7)}, mClock)

	var ids []string
	for range 10 {
		ids = append(ids, gen.Generate())
		mClock.Set(mClock.Now().Add(time.Millisecond))
	}
	assert.IsIncreasing(t, ids)
}

func TestGenerateIsDeterministicWithSeed(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	newGen := func() *Generator {
		mClock := quartz.NewMock(t)
		mClock.Set(at)
		return NewGenerator(randutil.Intn{R: randutil.New(42)}, mClock)
	}

	assert.Equal(t, newGen().Generate(), newGen().Generate())
}

func TestTimestampRoundTrip(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 7, 4, 9, 30, 15, 123_000_000, time.UTC)
	mClock := quartz.NewMock(t)
	mClock.Set(at)

	id := NewGenerator(nil, mClock).Generate()
	got, err := Timestamp(id)
	require.NoError(t, err)
	assert.True(t, at.Equal(got), "want %s, got %s", at, got)
}

func TestVersionAndVariantBits(t *testing.T) {
	t.Parallel()

	uuid, err := decode(Generate())
	require.NoError(t, err)
	assert.Equal(t, byte(0x70), uuid[6]&0xf0)
	assert.Equal(t, byte(0x80), uuid[8]&0xc0)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "valid", id: "01h5n0et5q6mt3v7ms1234abcd"},
		{name: "too short", id: "01h5n0et5q6mt3v7ms123", wantErr: true},
		{name: "too long", id: "01h5n0et5q6mt3v7ms1234abcdef", wantErr: true},
		{name: "first char too high", id: "81h5n0et5q6mt3v7ms1234abcd", wantErr: true},
		{name: "excluded letter", id: "01h5n0et5q6mt3v7ms1234abci", wantErr: true},
		{name: "upper case", id: "01H5N0ET5Q6MT3V7MS1234ABCD", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
