package registry

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

type dummy struct{ id int }

func TestResolveByAliasAndCanonicalName(t *testing.T) {
	r := NewRegistry[*dummy]()
	var calls int32
	r.Register("python", []string{"py", "py3"}, func() *dummy {
		atomic.AddInt32(&calls, 1)
		return &dummy{id: 1}
	})

	v1, ok := r.Resolve("python")
	require.True(t, ok)
	v2, ok := r.Resolve("PY")
	require.True(t, ok)
	v3, ok := r.Resolve("Py3")
	require.True(t, ok)

	require.Same(t, v1, v2)
	require.Same(t, v1, v3)
	require.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestResolveTrimsWhitespace(t *testing.T) {
	r := NewRegistry[*dummy]()
	r.Register("python", []string{"py"}, func() *dummy { return &dummy{id: 1} })

	v, ok := r.Resolve(" python ")
	require.True(t, ok)
	require.NotNil(t, v)

	v2, ok := r.Resolve("  PY\t")
	require.True(t, ok)
	require.Same(t, v, v2)
}

func TestResolveUnknownReturnsFalse(t *testing.T) {
	r := NewRegistry[*dummy]()
	_, ok := r.Resolve("nope")
	require.False(t, ok)
}

func TestNamesSorted(t *testing.T) {
	r := NewRegistry[*dummy]()
	r.Register("rust", nil, func() *dummy { return &dummy{} })
	r.Register("bash", nil, func() *dummy { return &dummy{} })
	r.Register("golang", nil, func() *dummy { return &dummy{} })
	require.Equal(t, []string{"bash", "golang", "rust"}, r.Names())
}

// TestConcurrentResolveConstructsOnce exercises the concurrency guarantee
// the registry exists for: many goroutines resolving the same language at
// once must observe exactly one construction and the same instance.
func TestConcurrentResolveConstructsOnce(t *testing.T) {
	r := NewRegistry[*dummy]()
	var calls int32
	r.Register("golang", []string{"go"}, func() *dummy {
		atomic.AddInt32(&calls, 1)
		return &dummy{id: 42}
	})

	const workers = 64
	results := make([]*dummy, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			v, ok := r.Resolve("golang")
			require.True(t, ok)
			results[i] = v
		}(i)
	}
	wg.Wait()

	for _, v := range results {
		require.Same(t, results[0], v)
	}
	require.LessOrEqual(t, atomic.LoadInt32(&calls), int32(1))
}

func TestRegisteredLexersResolve(t *testing.T) {
	for _, name := range []string{"plaintext", "python", "py", "golang", "go", "javascript", "js", "json", "rust", "rs", "clang", "c", "bash", "sh"} {
		lx, err := ResolveLexer(name)
		require.NoError(t, err, name)
		require.NotNil(t, lx)
	}
	_, err := ResolveLexer("cobol")
	require.Error(t, err)
}

func TestRegisteredFormattersResolve(t *testing.T) {
	for _, name := range []string{"html", "htm", "terminal", "ansi", "null", "plain"} {
		f, err := ResolveFormatter(name)
		require.NoError(t, err, name)
		require.NotNil(t, f)
	}
	_, err := ResolveFormatter("pdf")
	require.Error(t, err)
}
