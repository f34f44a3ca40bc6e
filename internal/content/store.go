package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Store loads content documents through a Source and memoizes them by name
// for its own lifetime. A document is fetched at most once per name; every
// caller of the same name observes the same cached value. Failures are
// never cached; a later call for the same name re-attempts the load.
//
// A Store is safe for concurrent use. Create one per build or server
// session and pass it to whatever renders from it; there is no package
// global.
type Store struct {
	src Source

	mu     sync.Mutex
	docs   map[string]Document
	flight singleflight.Group
}

// NewStore creates an empty store backed by the given source.
func NewStore(src Source) *Store {
	return &Store{
		src:  src,
		docs: make(map[string]Document),
	}
}

// parseError marks a structural failure, as opposed to a transport one, so
// Get can log a diagnostic that points the content author at the file.
type parseError struct {
	name string
	err  error
}

func (e *parseError) Error() string {
	return fmt.Sprintf("parsing content %q: %v", e.name, e.err)
}

// Get returns the document for name, loading it through the source on
// first use. The second return value is false when the document could not
// be loaded or parsed; the failure is logged, not returned, and the caller
// is expected to skip rendering rather than abort.
func (s *Store) Get(ctx context.Context, name string) (Document, bool) {
	s.mu.Lock()
	if doc, ok := s.docs[name]; ok {
		s.mu.Unlock()
		return doc, true
	}
	s.mu.Unlock()

	// Collapse concurrent first loads of the same name into one fetch.
	v, err, _ := s.flight.Do(name, func() (any, error) {
		// A caller that lost the race to a completed load finds the
		// document cached here instead of fetching again.
		s.mu.Lock()
		if doc, ok := s.docs[name]; ok {
			s.mu.Unlock()
			return doc, nil
		}
		s.mu.Unlock()

		raw, err := s.src.Fetch(ctx, name)
		if err != nil {
			return nil, err
		}

		var doc Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, &parseError{name: name, err: err}
		}
		if doc == nil {
			// "null" unmarshals into a nil map without error.
			return nil, &parseError{name: name, err: errors.New("document is null")}
		}

		s.mu.Lock()
		s.docs[name] = doc
		s.mu.Unlock()
		return doc, nil
	})
	if err != nil {
		var pe *parseError
		if errors.As(err, &pe) {
			log.Printf("content: %s.json did not parse, check for malformed JSON such as missing commas or unquoted keys: %v", name, pe.err)
		} else {
			log.Printf("content: could not load %q: %v", name, err)
		}
		return nil, false
	}
	return v.(Document), true
}
