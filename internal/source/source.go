// Package source reads Markdown documents from files, URLs, standard input or
// a git revision.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/alexisbeaulieu97/mdblocks/internal/logger"
	apperrors "github.com/alexisbeaulieu97/mdblocks/pkg/errors"
)

const (
	// Stdin is the reference that reads the document from Options.Stdin.
	Stdin = "-"
	// DefaultTimeout bounds URL fetches when Options.Timeout is zero.
	DefaultTimeout = 30 * time.Second
	// DefaultMaxBytes caps document size when Options.MaxBytes is zero.
	DefaultMaxBytes int64 = 8 << 20
)

// ErrTooLarge reports a document larger than the configured limit.
var ErrTooLarge = errors.New("document exceeds size limit")

// Options configures Open.
type Options struct {
	// Revision reads a file ref from this git revision of its repository
	// instead of the working tree.
	Revision string
	Client   *http.Client
	Timeout  time.Duration
	MaxBytes int64
	Stdin    io.Reader
	Logger   *logger.Logger
}

// Document is the raw content of an opened source.
type Document struct {
	// Name identifies the source in logs and errors.
	Name    string
	Content []byte
}

// Open reads the document named by ref.
func Open(ctx context.Context, ref string, opts Options) (Document, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = DefaultMaxBytes
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	log := opts.Logger.WithFields(map[string]any{"ref": ref, "revision": opts.Revision})

	var (
		content []byte
		err     error
	)
	switch {
	case ref == "":
		err = apperrors.NewSourceError(ref, opts.Revision, errors.New("no document given"))
	case ref == Stdin:
		content, err = readStdin(opts)
	case isURL(ref):
		if opts.Revision != "" {
			return Document{}, apperrors.NewSourceError(ref, opts.Revision, errors.New("revisions apply to local files only"))
		}
		content, err = fetch(ctx, ref, opts)
	case opts.Revision != "":
		content, err = readRevision(ref, opts)
	default:
		content, err = readFile(ref, opts)
	}
	if err != nil {
		log.DebugErr(err, "open source failed")
		return Document{}, err
	}

	log.With("bytes", len(content)).Debug("source opened")
	return Document{Name: ref, Content: content}, nil
}

func isURL(ref string) bool {
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return (scheme == "http" || scheme == "https") && u.Host != ""
}

func readStdin(opts Options) ([]byte, error) {
	if opts.Stdin == nil {
		return nil, apperrors.NewSourceError(Stdin, "", errors.New("standard input is not available"))
	}
	data, err := readLimited(opts.Stdin, opts.MaxBytes)
	if err != nil {
		return nil, apperrors.NewSourceError(Stdin, "", err)
	}
	return data, nil
}

func readFile(path string, opts Options) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewSourceError(path, "", err)
	}
	defer f.Close()

	data, err := readLimited(f, opts.MaxBytes)
	if err != nil {
		return nil, apperrors.NewSourceError(path, "", err)
	}
	return data, nil
}

func fetch(ctx context.Context, ref string, opts Options) ([]byte, error) {
	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}
	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, apperrors.NewFetchError(ref, 0, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "text/markdown, text/plain;q=0.9, */*;q=0.1")

	resp, err := client.Do(req)
	if err != nil {
		return nil, apperrors.NewFetchError(ref, 0, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.NewFetchError(ref, resp.StatusCode, nil)
	}
	if resp.ContentLength > opts.MaxBytes {
		return nil, apperrors.NewFetchError(ref, 0, ErrTooLarge)
	}
	data, err := readLimited(resp.Body, opts.MaxBytes)
	if err != nil {
		return nil, apperrors.NewFetchError(ref, 0, err)
	}
	return data, nil
}

// readRevision reads path as committed at opts.Revision in the repository that
// contains it.
func readRevision(path string, opts Options) ([]byte, error) {
	wrap := func(err error) error {
		return apperrors.NewSourceError(path, opts.Revision, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, wrap(err)
	}
	dir := filepath.Dir(abs)
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		dir = resolved
	}

	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, wrap(fmt.Errorf("open repository: %w", err))
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, wrap(fmt.Errorf("open worktree: %w", err))
	}
	root := wt.Filesystem.Root()
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}
	rel, err := filepath.Rel(root, filepath.Join(dir, filepath.Base(abs)))
	if err != nil || strings.HasPrefix(rel, "..") {
		return nil, wrap(fmt.Errorf("%s is outside the repository", path))
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(opts.Revision))
	if err != nil {
		return nil, wrap(fmt.Errorf("resolve revision: %w", err))
	}
	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, wrap(fmt.Errorf("load commit: %w", err))
	}
	file, err := commit.File(filepath.ToSlash(rel))
	if err != nil {
		return nil, wrap(err)
	}
	if file.Size > opts.MaxBytes {
		return nil, wrap(ErrTooLarge)
	}
	contents, err := file.Contents()
	if err != nil {
		return nil, wrap(err)
	}
	return []byte(contents), nil
}

func readLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, ErrTooLarge
	}
	return data, nil
}
