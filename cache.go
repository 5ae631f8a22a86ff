package template

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// documents memoizes parsed templates by their exact source text.
type documents struct {
	store  map[string]*Document
	locker *sync.RWMutex
	group  singleflight.Group
	limit  int // 0 means unbounded
}

func newDocuments(limit int) *documents {
	return &documents{
		store:  make(map[string]*Document),
		locker: &sync.RWMutex{},
		limit:  limit,
	}
}

func (docs *documents) doc(code string) *Document {
	docs.locker.RLock()
	defer docs.locker.RUnlock()

	return docs.store[code]
}

// addDoc stores doc unless code is already present or the cache is full.
// It returns the document that is cached for code, or doc when none is.
func (docs *documents) addDoc(code string, doc *Document) *Document {
	docs.locker.Lock()
	defer docs.locker.Unlock()

	if cached, ok := docs.store[code]; ok {
		return cached
	}
	if docs.limit > 0 && len(docs.store) >= docs.limit {
		return doc
	}
	docs.store[code] = doc

	return doc
}

// load returns the cached document for source, building it with fn on a
// miss. Concurrent misses for the same source share one fn call.
func (docs *documents) load(source *sourceCode, fn func(*sourceCode) (*Document, error)) (doc *Document, hit bool, err error) {
	if doc = docs.doc(source.code); doc != nil {
		return doc, true, nil
	}

	v, err, _ := docs.group.Do(source.code, func() (any, error) {
		doc, err := fn(source)
		if err != nil {
			return nil, err
		}

		return docs.addDoc(source.code, doc), nil
	})
	if err != nil {
		return nil, false, err
	}

	return v.(*Document), false, nil
}

func (docs *documents) len() int {
	docs.locker.RLock()
	defer docs.locker.RUnlock()

	return len(docs.store)
}

func (docs *documents) clear() {
	docs.locker.Lock()
	defer docs.locker.Unlock()

	docs.store = make(map[string]*Document)
}
