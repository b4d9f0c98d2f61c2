package busboard

import (
	"context"
	"fmt"
	"log"
	"time"

	"arabus.dev/busboard/downloader"
	"arabus.dev/busboard/parse"
)

const (
	DefaultLoadTimeout = 10 * time.Second
	DefaultLoadMaxSize = 16 << 20 // 16 MB
	DefaultLoadTTL     = 5 * time.Minute
)

// Loads the static dataset a Board is built on.
type Loader struct {
	Timeout  time.Duration
	MaxSize  int
	CacheTTL time.Duration

	// Used for http(s) sources.
	HTTP downloader.Downloader

	// Used for everything else.
	Files downloader.Downloader
}

func NewLoader() *Loader {
	return &Loader{
		Timeout:  DefaultLoadTimeout,
		MaxSize:  DefaultLoadMaxSize,
		CacheTTL: DefaultLoadTTL,
		HTTP:     downloader.NewMemoryDownloader(),
		Files:    downloader.NewFileDownloader(),
	}
}

// Fetches, parses and validates the dataset at source.
func (l *Loader) Load(ctx context.Context, source string) (*Schedule, error) {
	if source == "" {
		return nil, fmt.Errorf("no dataset source")
	}

	d := l.Files
	if downloader.IsURL(source) {
		d = l.HTTP
	}

	buf, err := d.Get(ctx, source, downloader.GetOptions{
		MaxSize:  l.MaxSize,
		Timeout:  l.Timeout,
		Cache:    l.CacheTTL > 0,
		CacheTTL: l.CacheTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", source, err)
	}

	ds, err := parse.ParseDataset(buf)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", source, err)
	}

	s, err := NewSchedule(ds)
	if err != nil {
		return nil, fmt.Errorf("creating schedule: %w", err)
	}

	return s, nil
}

// Like Load, but a failure is logged and yields an empty schedule.
func (l *Loader) LoadOrEmpty(ctx context.Context, source string) *Schedule {
	s, err := l.Load(ctx, source)
	if err != nil {
		log.Printf("could not load dataset: %v", err)
		return EmptySchedule()
	}
	return s
}
