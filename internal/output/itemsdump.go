package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"geoscraper/internal/models"
)

// ItemsDump writes one JSON object per processed record, one per line. It is
// opened at crawl start and closed when crawling ends.
type ItemsDump struct {
	mu  sync.Mutex
	f   *os.File
	buf *bufio.Writer
	enc *json.Encoder
}

// OpenItemsDump creates (or truncates) the dump file.
func OpenItemsDump(path string) (*ItemsDump, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open items dump: %w", err)
	}

	buf := bufio.NewWriter(f)

	return &ItemsDump{
		f:   f,
		buf: buf,
		enc: json.NewEncoder(buf),
	}, nil
}

// Write appends one record as a JSON line.
func (d *ItemsDump) Write(rec *models.Record) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.enc.Encode(rec); err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	return nil
}

// Close flushes and closes the dump file.
func (d *ItemsDump) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush items dump: %w", err)
	}

	return d.f.Close()
}

// ReadItemsDump loads records back from a dump file, for offline re-rendering.
func ReadItemsDump(path string) ([]*models.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open items dump: %w", err)
	}
	defer f.Close()

	var records []*models.Record

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}

		var rec models.Record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("failed to decode record: %w", err)
		}

		records = append(records, &rec)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items dump: %w", err)
	}

	return records, nil
}
