package section

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/osteotek/crosspoint-reader/serialization"
)

// Cache files from other format versions are never read, only purged.
const metadataVersion = 6

const metadataFile = "section.bin"

// Params are the layout inputs a page cache depends on. Two caches are
// interchangeable only when every field matches exactly.
type Params struct {
	FontID                int32
	LineCompression       float32
	MarginTop             int32
	MarginRight           int32
	MarginBottom          int32
	MarginLeft            int32
	Hyphenation           bool
	ExtraParagraphSpacing bool
}

// Store reads and writes one book's page cache directory.
type Store struct {
	dir string
}

// NewStore opens (creating if needed) the cache directory.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir reports the cache directory.
func (s *Store) Dir() string { return s.dir }

func (s *Store) metadataPath() string { return filepath.Join(s.dir, metadataFile) }

func (s *Store) pagePath(n int) string {
	return filepath.Join(s.dir, fmt.Sprintf("page_%d.bin", n))
}

func writeBool(w io.Writer, v bool) error {
	var b uint8
	if v {
		b = 1
	}
	return serialization.WritePod(w, b)
}

// WriteMetadata records the parameters and page count of a freshly
// built cache. Call it after the last WritePage.
func (s *Store) WriteMetadata(p Params, pageCount int) (err error) {
	f, err := os.Create(s.metadataPath())
	if err != nil {
		return fmt.Errorf("create metadata: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err := serialization.WritePod(f, uint8(metadataVersion)); err != nil {
		return err
	}
	if err := serialization.WritePod(f, p.FontID); err != nil {
		return err
	}
	if err := serialization.WritePod(f, p.LineCompression); err != nil {
		return err
	}
	for _, m := range []int32{p.MarginTop, p.MarginRight, p.MarginBottom, p.MarginLeft} {
		if err := serialization.WritePod(f, m); err != nil {
			return err
		}
	}
	if err := writeBool(f, p.Hyphenation); err != nil {
		return err
	}
	if err := writeBool(f, p.ExtraParagraphSpacing); err != nil {
		return err
	}
	return serialization.WritePod(f, uint32(pageCount))
}

// ReadMetadata returns the stored parameters and page count without
// validating them. Inspection tooling uses this; readers should use
// LoadMetadata instead.
func (s *Store) ReadMetadata() (Params, int, error) {
	f, err := os.Open(s.metadataPath())
	if err != nil {
		return Params{}, 0, err
	}
	defer f.Close()

	version, err := serialization.ReadPod[uint8](f)
	if err != nil {
		return Params{}, 0, fmt.Errorf("read version: %w", err)
	}
	if version != metadataVersion {
		return Params{}, 0, fmt.Errorf("cache version %d, want %d", version, metadataVersion)
	}
	var p Params
	if p.FontID, err = serialization.ReadPod[int32](f); err != nil {
		return Params{}, 0, err
	}
	if p.LineCompression, err = serialization.ReadPod[float32](f); err != nil {
		return Params{}, 0, err
	}
	for _, dst := range []*int32{&p.MarginTop, &p.MarginRight, &p.MarginBottom, &p.MarginLeft} {
		if *dst, err = serialization.ReadPod[int32](f); err != nil {
			return Params{}, 0, err
		}
	}
	var b uint8
	if b, err = serialization.ReadPod[uint8](f); err != nil {
		return Params{}, 0, err
	}
	p.Hyphenation = b != 0
	if b, err = serialization.ReadPod[uint8](f); err != nil {
		return Params{}, 0, err
	}
	p.ExtraParagraphSpacing = b != 0
	pageCount, err := serialization.ReadPod[uint32](f)
	if err != nil {
		return Params{}, 0, err
	}
	return p, int(pageCount), nil
}

// LoadMetadata reports the cached page count when the cache was built
// with exactly the given parameters. Any mismatch, missing file, or
// unreadable record purges the cache and reports a miss.
func (s *Store) LoadMetadata(p Params) (int, bool) {
	stored, pageCount, err := s.ReadMetadata()
	if err != nil {
		if !os.IsNotExist(err) {
			tracer().Infof("page cache unreadable, purging: %v", err)
			s.Purge()
		}
		return 0, false
	}
	if stored != p {
		tracer().Infof("layout parameters changed, purging page cache")
		s.Purge()
		return 0, false
	}
	return pageCount, true
}

// WritePage stores one page under its index.
func (s *Store) WritePage(n int, page *Page) (err error) {
	f, err := os.Create(s.pagePath(n))
	if err != nil {
		return fmt.Errorf("create page %d: %w", n, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err := page.Serialize(f); err != nil {
		return fmt.Errorf("write page %d: %w", n, err)
	}
	return nil
}

// LoadPage reads one page by index.
func (s *Store) LoadPage(n int) (*Page, error) {
	f, err := os.Open(s.pagePath(n))
	if err != nil {
		return nil, fmt.Errorf("open page %d: %w", n, err)
	}
	defer f.Close()
	page, err := DeserializePage(f)
	if err != nil {
		return nil, fmt.Errorf("read page %d: %w", n, err)
	}
	return page, nil
}

// Purge deletes the metadata record and every cached page.
func (s *Store) Purge() {
	pages, err := filepath.Glob(filepath.Join(s.dir, "page_*.bin"))
	if err == nil {
		for _, path := range pages {
			if rerr := os.Remove(path); rerr != nil {
				tracer().Infof("purge %s: %v", path, rerr)
			}
		}
	}
	if err := os.Remove(s.metadataPath()); err != nil && !os.IsNotExist(err) {
		tracer().Infof("purge metadata: %v", err)
	}
}
