package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/mdblocks/pkg/errors"
)

func TestOpenReadsLocalFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("# hello\n"), 0o644))

	doc, err := Open(context.Background(), path, Options{})

	require.NoError(t, err)
	assert.Equal(t, path, doc.Name)
	assert.Equal(t, "# hello\n", string(doc.Content))
}

func TestOpenMissingFileReturnsSourceError(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), filepath.Join(t.TempDir(), "missing.md"), Options{})

	var srcErr *apperrors.SourceError
	require.True(t, errors.As(err, &srcErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestOpenReadsStdin(t *testing.T) {
	t.Parallel()

	doc, err := Open(context.Background(), Stdin, Options{Stdin: strings.NewReader("- a\n")})

	require.NoError(t, err)
	assert.Equal(t, "- a\n", string(doc.Content))

	_, err = Open(context.Background(), Stdin, Options{})
	require.Error(t, err)
}

func TestOpenEnforcesSizeLimit(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), Stdin, Options{Stdin: strings.NewReader("0123456789"), MaxBytes: 4})

	assert.True(t, errors.Is(err, ErrTooLarge))
}

func TestOpenFetchesURL(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("Accept"), "text/markdown")
		if r.URL.Path == "/missing.md" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("remote"))
	}))
	t.Cleanup(srv.Close)

	doc, err := Open(context.Background(), srv.URL+"/doc.md", Options{Client: srv.Client()})
	require.NoError(t, err)
	assert.Equal(t, "remote", string(doc.Content))

	_, err = Open(context.Background(), srv.URL+"/missing.md", Options{Client: srv.Client()})
	var fetchErr *apperrors.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
}

func TestOpenRejectsRevisionForURL(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), "https://example.com/doc.md", Options{Revision: "HEAD"})

	var srcErr *apperrors.SourceError
	require.True(t, errors.As(err, &srcErr))
	assert.Equal(t, "HEAD", srcErr.Revision)
}

func TestOpenReadsGitRevision(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs"), 0o755))
	path := filepath.Join(dir, "docs", "README.md")
	commit := func(content, msg string) {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		_, err := wt.Add("docs/README.md")
		require.NoError(t, err)
		_, err = wt.Commit(msg, &git.CommitOptions{
			Author: &object.Signature{Name: "mdblocks", Email: "mdblocks@example.com", When: time.Now()},
		})
		require.NoError(t, err)
	}
	commit("first\n", "first")
	commit("second\n", "second")
	require.NoError(t, os.WriteFile(path, []byte("uncommitted\n"), 0o644))

	head, err := Open(context.Background(), path, Options{Revision: "HEAD"})
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(head.Content))

	previous, err := Open(context.Background(), path, Options{Revision: "HEAD~1"})
	require.NoError(t, err)
	assert.Equal(t, "first\n", string(previous.Content))

	_, err = Open(context.Background(), path, Options{Revision: "does-not-exist"})
	var srcErr *apperrors.SourceError
	require.True(t, errors.As(err, &srcErr))
	assert.Equal(t, "does-not-exist", srcErr.Revision)
}
