package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	pkgsource "github.com/flyiniris/go-pagegen/pkg/source"
)

// Loader implements source.Loader by delegating to file, fs.FS, or HTTP
// strategies.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ pkgsource.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgsource.LoaderOptions) pkgsource.Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches a document from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src pkgsource.Source) (pkgsource.Document, error) {
	if src == nil {
		return pkgsource.Document{}, errors.New("source loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgsource.KindFile:
		data, err = loadFile(ctx, src.Location())
	case pkgsource.KindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case pkgsource.KindURL:
		if !l.allowHTTP {
			return pkgsource.Document{}, errors.New("source loader: http support disabled")
		}
		data, err = l.fetchURL(ctx, src.Location())
	default:
		err = errors.New("source loader: unsupported source kind")
	}
	if err != nil {
		return pkgsource.Document{}, err
	}

	return pkgsource.NewDocument(src, data)
}
