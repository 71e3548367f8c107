package document

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/natefinch/atomic"
	"go.uber.org/zap"
)

var ErrNoSuchDocument = errors.New("no such document")

// Store holds every markdown post below a root directory. Methods are safe
// for concurrent use. Stored documents are never modified in place: edits
// and reloads swap in a new *Document, so returned documents may be read
// without locking but must not be mutated.
type Store struct {
	RootDirectory string

	mu                  sync.RWMutex
	documents           []*Document
	tagByNormalizedName map[string]Tag
	tags                []Tag
	logger              *zap.Logger
}

func NewStore(rootDirectory string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	store := &Store{
		RootDirectory: rootDirectory,
		logger:        logger,
	}

	docs, err := store.LoadDocuments(rootDirectory)
	if err != nil {
		return nil, fmt.Errorf("load documents failed: %w", err)
	}

	store.documents = docs
	store.indexTags()

	logger.Debug("document store loaded",
		zap.String("root", rootDirectory),
		zap.Int("documents", len(docs)),
		zap.Int("tags", len(store.tags)))

	return store, nil
}

func (s *Store) indexTags() {
	s.tagByNormalizedName = make(map[string]Tag)
	s.tags = nil

	for _, doc := range s.documents {
		for _, tag := range doc.Tags {
			name := tag.Normalize()
			if _, ok := s.tagByNormalizedName[name]; !ok {
				s.tagByNormalizedName[name] = tag
				s.tags = append(s.tags, tag)
			}
		}
	}
}

// Documents returns a snapshot of all documents, newest first.
func (s *Store) Documents() []*Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]*Document, len(s.documents))
	copy(docs, s.documents)

	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].Date.After(docs[j].Date)
	})

	return docs
}

// Published returns the published documents, newest first.
func (s *Store) Published() []*Document {
	var published []*Document

	for _, doc := range s.Documents() {
		if doc.Published {
			published = append(published, doc)
		}
	}

	return published
}

func (s *Store) DocumentByGUID(guid uuid.UUID) *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.documentByGUID(guid)
}

func (s *Store) documentByGUID(guid uuid.UUID) *Document {
	if i := s.indexByGUID(guid); i >= 0 {
		return s.documents[i]
	}

	return nil
}

func (s *Store) indexByGUID(guid uuid.UUID) int {
	for i, doc := range s.documents {
		if doc.GUID == guid {
			return i
		}
	}

	return -1
}

func (s *Store) DocumentBySlug(slug string) *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.documents {
		if doc.Slug == slug {
			return doc
		}
	}

	return nil
}

// DocumentByPath finds a loaded document by its file path.
func (s *Store) DocumentByPath(path string) *Document {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.documents {
		if docAbs, err := filepath.Abs(doc.Path); err == nil && docAbs == abs {
			return doc
		}
	}

	return nil
}

func (s *Store) DocumentsByTagName(name string) []*Document {
	name = NormalizeTagName(name)

	var result []*Document

	for _, doc := range s.Documents() {
		for _, t := range doc.Tags {
			if t.Normalize() == name {
				result = append(result, doc)

				break
			}
		}
	}

	return result
}

func (s *Store) TagByName(name string) (Tag, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if tag, ok := s.tagByNormalizedName[NormalizeTagName(name)]; ok {
		return tag, true
	}

	return Tag{}, false
}

// Tags returns all distinct tags ordered by normalized name.
func (s *Store) Tags() []Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tags := make([]Tag, len(s.tags))
	copy(tags, s.tags)

	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Normalize() < tags[j].Normalize()
	})

	return tags
}

// Edit runs fn on a copy of the document with the given GUID while holding
// the store lock. When fn succeeds the copy is saved and replaces the stored
// document; pointers handed out earlier keep seeing the old version.
func (s *Store) Edit(guid uuid.UUID, fn func(doc *Document) error) (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexByGUID(guid)
	if i < 0 {
		return nil, ErrNoSuchDocument
	}

	edited := *s.documents[i]
	edited.Tags = append([]Tag(nil), edited.Tags...)

	if err := fn(&edited); err != nil {
		return nil, err
	}

	if err := Save(&edited); err != nil {
		return nil, err
	}

	s.documents[i] = &edited
	s.indexTags()

	s.logger.Info("document saved",
		zap.String("path", edited.Path),
		zap.String("guid", edited.GUID.String()))

	return &edited, nil
}

// ReloadByGUID re-reads the document from disk and replaces the stored
// version.
func (s *Store) ReloadByGUID(guid uuid.UUID) (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexByGUID(guid)
	if i < 0 {
		return nil, ErrNoSuchDocument
	}

	newDoc, err := LoadDocument(s.documents[i].Path)
	if err != nil {
		return nil, fmt.Errorf("new document failed: %w", err)
	}

	newDoc.GUID = guid
	s.documents[i] = newDoc
	s.indexTags()

	return newDoc, nil
}

func (s *Store) LoadDocuments(rootDirectory string) ([]*Document, error) {
	var docs []*Document

	err := filepath.WalkDir(rootDirectory, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.Type().IsRegular() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".md" {
			return nil
		}

		doc, err := LoadDocument(path)
		if err != nil {
			return err
		}

		docs = append(docs, doc)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("could not load documents: %w", err)
	}

	return docs, nil
}

// LoadDocument reads a single markdown file.
func LoadDocument(path string) (*Document, error) {
	sourceText, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read source file: %w", err)
	}

	doc, err := New(path, sourceText)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Save writes the document back to its path. The file is replaced
// atomically so a crash never leaves a half written post.
func Save(doc *Document) error {
	if err := atomic.WriteFile(doc.Path, bytes.NewReader(doc.Source())); err != nil {
		return fmt.Errorf("save %s: %w", doc.Path, err)
	}

	return nil
}
