package everything_test

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/jpl-au/evsearch/internal/everything"
	"github.com/jpl-au/evsearch/internal/everything/sdktest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchDecodesRows(t *testing.T) {
	sdk := &sdktest.SDK{
		Rows: []sdktest.Row{
			{Path: `C:\docs\report.pdf`, Attr: 0x20},
			{Path: `C:\docs`, Attr: 0x10},
		},
		Total: 42,
	}
	e := sdk.Engine()

	set, err := e.Search("report", everything.Options{Max: 50})
	require.NoError(t, err)

	assert.Equal(t, uint32(42), set.Total)
	require.Len(t, set.Results, 2)
	assert.Equal(t, `C:\docs\report.pdf`, set.Results[0].Path)
	assert.False(t, set.Results[0].IsDir)
	assert.Equal(t, `C:\docs`, set.Results[1].Path)
	assert.True(t, set.Results[1].IsDir)

	// Configuration reached the SDK: query text, cap, and the fixed
	// request flags selecting full path and attributes.
	assert.Equal(t, "report", sdk.Search)
	assert.Equal(t, uint32(50), sdk.Max)
	assert.Equal(t, uint32(0x113), sdk.Flags)
}

func TestSearchPassesModeFlags(t *testing.T) {
	sdk := &sdktest.SDK{}
	e := sdk.Engine()

	_, err := e.Search("x", everything.Options{
		Max:       10,
		MatchCase: true,
		WholeWord: true,
		Regex:     true,
		MatchPath: true,
	})
	require.NoError(t, err)

	assert.True(t, sdk.MatchCase)
	assert.True(t, sdk.WholeWord)
	assert.True(t, sdk.Regex)
	assert.True(t, sdk.MatchPath)
}

func TestSearchClampsMax(t *testing.T) {
	tests := []struct {
		name string
		in   uint32
		want uint32
	}{
		{"zero clamps up", 0, 1},
		{"in range unchanged", 50, 50},
		{"upper bound", 500, 500},
		{"above upper clamps down", 10000, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sdk := &sdktest.SDK{}
			_, err := sdk.Engine().Search("x", everything.Options{Max: tt.in})
			require.NoError(t, err)
			assert.Equal(t, tt.want, sdk.Max)
		})
	}
}

func TestSearchEmptyResultSetIsNotAnError(t *testing.T) {
	sdk := &sdktest.SDK{Total: 0}
	set, err := sdk.Engine().Search("nothing-matches", everything.Options{Max: 50})
	require.NoError(t, err)
	assert.Empty(t, set.Results)
	assert.Zero(t, set.Total)
}

func TestSearchQueryFailure(t *testing.T) {
	sdk := &sdktest.SDK{FailCode: 2}
	_, err := sdk.Engine().Search("x", everything.Options{Max: 50})

	var qe *everything.QueryError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, uint32(2), qe.Code)
	assert.Equal(t, "Query failed (2). Is Everything running?", qe.Error())
}

func TestSearchInvalidQueryText(t *testing.T) {
	sdk := &sdktest.SDK{SearchErr: errors.New("invalid UTF-16")}
	_, err := sdk.Engine().Search("bad\x00query", everything.Options{Max: 50})
	assert.ErrorIs(t, err, everything.ErrInvalidQuery)
}

func TestEngineUnavailable(t *testing.T) {
	loads := 0
	e := everything.NewWithSDK(func() (everything.SDK, error) {
		loads++
		return nil, errors.New("Everything64.dll not found")
	})

	_, err := e.Search("x", everything.Options{Max: 50})
	assert.ErrorIs(t, err, everything.ErrUnavailable)

	_, err = e.Status()
	assert.ErrorIs(t, err, everything.ErrUnavailable)

	// The load failure is cached: one attempt, never retried.
	assert.Equal(t, 1, loads)
}

func TestEngineLoadsOnce(t *testing.T) {
	loads := 0
	sdk := &sdktest.SDK{DBLoaded: true}
	e := everything.NewWithSDK(func() (everything.SDK, error) {
		loads++
		return sdk, nil
	})

	for i := 0; i < 3; i++ {
		_, err := e.Search("x", everything.Options{Max: 10})
		require.NoError(t, err)
	}
	assert.Equal(t, 1, loads)
}

func TestStatus(t *testing.T) {
	sdk := &sdktest.SDK{DBLoaded: true, Ver: [4]uint32{1, 4, 1, 1026}}
	st, err := sdk.Engine().Status()
	require.NoError(t, err)

	assert.True(t, st.Ready)
	assert.Equal(t, "v1.4.1.1026 Ready", st.String())
}

func TestStatusNotReady(t *testing.T) {
	sdk := &sdktest.SDK{DBLoaded: false}
	st, err := sdk.Engine().Status()
	require.NoError(t, err)

	assert.False(t, st.Ready)
	assert.Equal(t, "Not available", st.String())
}

// Concurrent searches share one SDK with one search state. The engine's
// lock must make interleaved configure+query+decode sequences impossible:
// every caller gets rows fabricated from its own query, and the double
// records zero concurrent entries.
func TestConcurrentSearchesSerialise(t *testing.T) {
	sdk := &sdktest.SDK{
		QueryFunc: func(search string) ([]sdktest.Row, uint32) {
			return []sdktest.Row{{Path: `C:\hits\` + search, Attr: 0}}, 1
		},
	}
	e := sdk.Engine()

	const n = 16
	var wg sync.WaitGroup
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			q := fmt.Sprintf("query-%d", i)
			set, err := e.Search(q, everything.Options{Max: 10})
			if err != nil {
				errs[i] = err
				return
			}
			if len(set.Results) != 1 || !strings.HasSuffix(set.Results[0].Path, q) {
				errs[i] = fmt.Errorf("query %q got foreign results %v", q, set.Results)
			}
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "caller %d", i)
	}
	assert.Zero(t, sdk.Violations(), "SDK calls interleaved across callers")
}
