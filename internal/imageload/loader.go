// Package imageload fetches and decodes images for the markdown renderers.
//
// Loader performs one blocking fetch-and-decode. AsyncFetcher runs loads in the
// background and reports per-URL phases so a render pass never blocks.
package imageload

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	// Decoders registered with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/alexisbeaulieu97/mdblocks/internal/logger"
	apperrors "github.com/alexisbeaulieu97/mdblocks/pkg/errors"
)

const (
	// DefaultTimeout bounds a single fetch when Options.Timeout is zero.
	DefaultTimeout = 10 * time.Second
	// DefaultMaxBytes caps the size of a fetched image when Options.MaxBytes is zero.
	DefaultMaxBytes int64 = 10 << 20
)

// ErrTooLarge reports an image body larger than the configured limit.
var ErrTooLarge = errors.New("image exceeds size limit")

// ErrUnsupportedScheme reports a URL scheme the loader cannot fetch.
var ErrUnsupportedScheme = errors.New("unsupported scheme")

// Options configures a Loader.
type Options struct {
	Client   *http.Client
	Timeout  time.Duration
	MaxBytes int64
	// AllowFiles enables file:// URLs.
	AllowFiles bool
	Logger     *logger.Logger
}

// Loader fetches and decodes images. It is safe for concurrent use.
type Loader struct {
	client     *http.Client
	timeout    time.Duration
	maxBytes   int64
	allowFiles bool
	log        *logger.Logger
}

// NewLoader creates a Loader from opts, filling zero values with defaults.
func NewLoader(opts Options) *Loader {
	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	maxBytes := opts.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Loader{
		client:     client,
		timeout:    timeout,
		maxBytes:   maxBytes,
		allowFiles: opts.AllowFiles,
		log:        opts.Logger,
	}
}

// Load fetches u and decodes it. Supported schemes are http, https, data and,
// when enabled, file.
func (l *Loader) Load(ctx context.Context, u *url.URL) (image.Image, error) {
	if u == nil {
		return nil, apperrors.NewFetchError("", 0, fmt.Errorf("url is nil"))
	}
	if ctx == nil {
		ctx = context.Background()
	}
	raw := u.String()

	data, err := l.fetch(ctx, u)
	if err != nil {
		l.log.With("url", raw).DebugErr(err, "image fetch failed")
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		l.log.With("url", raw).DebugErr(err, "image decode failed")
		return nil, apperrors.NewDecodeError(raw, err)
	}
	l.log.WithFields(map[string]any{
		"url":    raw,
		"format": format,
		"width":  img.Bounds().Dx(),
		"height": img.Bounds().Dy(),
	}).Debug("image loaded")
	return img, nil
}

func (l *Loader) fetch(ctx context.Context, u *url.URL) ([]byte, error) {
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return l.fetchHTTP(ctx, u)
	case "data":
		return l.fetchData(u)
	case "file":
		if !l.allowFiles {
			return nil, apperrors.NewFetchError(u.String(), 0, fmt.Errorf("%w %q", ErrUnsupportedScheme, u.Scheme))
		}
		return l.fetchFile(u)
	default:
		return nil, apperrors.NewFetchError(u.String(), 0, fmt.Errorf("%w %q", ErrUnsupportedScheme, u.Scheme))
	}
}

func (l *Loader) fetchHTTP(ctx context.Context, u *url.URL) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, apperrors.NewFetchError(u.String(), 0, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "image/*")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, apperrors.NewFetchError(u.String(), 0, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.NewFetchError(u.String(), resp.StatusCode, nil)
	}
	if resp.ContentLength > l.maxBytes {
		return nil, apperrors.NewFetchError(u.String(), 0, ErrTooLarge)
	}
	return l.readLimited(u, resp.Body)
}

func (l *Loader) fetchFile(u *url.URL) ([]byte, error) {
	f, err := os.Open(u.Path)
	if err != nil {
		return nil, apperrors.NewFetchError(u.String(), 0, err)
	}
	defer f.Close()
	return l.readLimited(u, f)
}

// fetchData decodes RFC 2397 data URLs. Only base64 payloads can carry binary
// image data, so plain payloads are read as-is.
func (l *Loader) fetchData(u *url.URL) ([]byte, error) {
	payload := u.Opaque
	if payload == "" {
		payload = strings.TrimPrefix(u.String(), "data:")
	}
	meta, body, ok := strings.Cut(payload, ",")
	if !ok {
		return nil, apperrors.NewFetchError("data:", 0, fmt.Errorf("malformed data url"))
	}
	var data []byte
	if strings.HasSuffix(meta, ";base64") {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return nil, apperrors.NewFetchError("data:", 0, err)
		}
		data = decoded
	} else {
		unescaped, err := url.PathUnescape(body)
		if err != nil {
			return nil, apperrors.NewFetchError("data:", 0, err)
		}
		data = []byte(unescaped)
	}
	if int64(len(data)) > l.maxBytes {
		return nil, apperrors.NewFetchError("data:", 0, ErrTooLarge)
	}
	return data, nil
}

func (l *Loader) readLimited(u *url.URL, r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, l.maxBytes+1))
	if err != nil {
		return nil, apperrors.NewFetchError(u.String(), 0, err)
	}
	if int64(len(data)) > l.maxBytes {
		return nil, apperrors.NewFetchError(u.String(), 0, ErrTooLarge)
	}
	return data, nil
}
