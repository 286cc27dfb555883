package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"swapScope/internal/model"
)

func sampleRecords() []model.LogRecord {
	return []model.LogRecord{
		{
			Index:   0,
			Address: "0x4200000000000000000000000000000000000006",
			Topics: []string{
				"0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef",
				"0x0000000000000000000000001111111111111111111111111111111111111111",
				"0x0000000000000000000000002222222222222222222222222222222222222222",
			},
			Data: "0x0000000000000000000000000000000000000000000000000de0b6b3a7640000",
		},
		{
			Index:   1,
			Address: "0x72ab388e2e2f6facef59e3c3fa2c4e29011c2d38",
			Topics:  []string{"0xc42079f94a6350d7e6235f29174924f928cc2ac818eb64fed8004e115fbcca67"},
			Data:    "0x",
		},
	}
}

func TestJsonlRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.jsonl")
	want := sampleRecords()

	if err := NewJsonlStore(path).PutLogBatch(want); err != nil {
		t.Fatalf("put batch: %v", err)
	}

	got, err := ReadLogRecords(path)
	if err != nil {
		t.Fatalf("read records: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("records mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestPutLogBatchTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.jsonl")
	store := NewJsonlStore(path)

	if err := store.PutLogBatch(sampleRecords()); err != nil {
		t.Fatalf("first batch: %v", err)
	}
	if err := store.PutLogBatch(sampleRecords()[:1]); err != nil {
		t.Fatalf("second batch: %v", err)
	}

	got, err := ReadLogRecords(path)
	if err != nil {
		t.Fatalf("read records: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one record after rewrite, got %d", len(got))
	}
}

func TestReadLogRecordsArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	payload := `[
		{"index": 3, "address": "0x833589fcd6edb6e08f4c7c32d4f71b54bda02913", "topics": ["0xaa"], "data": "0x01", "blockNumber": 123},
		{"index": 4, "address": "0x4200000000000000000000000000000000000006", "topics": [], "data": "0x"}
	]`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := ReadLogRecords(path)
	if err != nil {
		t.Fatalf("read records: %v", err)
	}

	want := []model.LogRecord{
		{Index: 3, Address: "0x833589fcd6edb6e08f4c7c32d4f71b54bda02913", Topics: []string{"0xaa"}, Data: "0x01"},
		{Index: 4, Address: "0x4200000000000000000000000000000000000006", Topics: []string{}, Data: "0x"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("records mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestReadLogRecordsReportsBadLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.jsonl")
	payload := `{"index": 0, "address": "0xaa", "topics": [], "data": "0x"}
not json
`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, err := ReadLogRecords(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("error should name the line: %v", err)
	}
}

func TestReadLogRecordsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.jsonl")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := ReadLogRecords(path)
	if err != nil {
		t.Fatalf("read records: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no records, got %d", len(got))
	}
}

func TestReadLogRecordsMissingFile(t *testing.T) {
	if _, err := ReadLogRecords(filepath.Join(t.TempDir(), "absent.jsonl")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
