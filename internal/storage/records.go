package storage

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"swapScope/internal/model"
)

// RecordSink is a destination for fetched log records.
type RecordSink interface {
	PutLogBatch(records []model.LogRecord) error
}

// JsonlStore writes log records to a JSONL file, replacing any previous
// contents. One file holds one transaction's records.
type JsonlStore struct {
	path string
	mu   sync.Mutex
}

func NewJsonlStore(path string) *JsonlStore {
	return &JsonlStore{path: path}
}

// PutLogBatch writes records as JSON lines. An empty batch still truncates
// the file, so a re-fetch of a logless transaction leaves no stale records.
func (s *JsonlStore) PutLogBatch(records []model.LogRecord) error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, record := range records {
		line, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("marshal log record: %w", err)
		}
		if _, err := writer.Write(line); err != nil {
			return fmt.Errorf("write log record: %w", err)
		}
		if err := writer.WriteByte('\n'); err != nil {
			return fmt.Errorf("write newline: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	return nil
}

// ReadLogRecords loads a records file. Both layouts the tooling produces are
// accepted: one JSON object per line, or a single JSON array holding every
// record (the shape of explorer log dumps). Unknown JSON keys are ignored.
func ReadLogRecords(path string) ([]model.LogRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return []model.LogRecord{}, nil
	}

	if trimmed[0] == '[' {
		var records []model.LogRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("parse record array: %w", err)
		}
		return records, nil
	}

	records := make([]model.LogRecord, 0, 64)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var record model.LogRecord
		if err := json.Unmarshal(line, &record); err != nil {
			return nil, fmt.Errorf("parse line %d: %w", lineNo, err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}

	return records, nil
}
