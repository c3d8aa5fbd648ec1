package domain

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"
)

func TestOutcome_ErrAndString(t *testing.T) {
	if err := Accepted().Err(); err != nil {
		t.Fatalf("accepted must have nil Err, got %v", err)
	}
	if Accepted().String() != "accepted" {
		t.Fatalf("unexpected string: %s", Accepted())
	}

	rows := Rejected(OutcomeInsufficientRows)
	if !errors.Is(rows.Err(), ErrInsufficientRows) || rows.Reason != "insufficient data" {
		t.Fatalf("unexpected rows outcome: %+v", rows)
	}
	if rows.String() != "rejected (insufficient data)" {
		t.Fatalf("unexpected string: %s", rows)
	}

	cols := Rejected(OutcomeInsufficientColumns)
	if !errors.Is(cols.Err(), ErrInsufficientColumns) || cols.Reason != "insufficient columns" {
		t.Fatalf("unexpected columns outcome: %+v", cols)
	}

	cause := errors.New("boom")
	rf := ReadFailed(cause)
	if !errors.Is(rf.Err(), ErrReadFailure) || !errors.Is(rf.Err(), cause) {
		t.Fatalf("read failure must wrap sentinel and cause: %v", rf.Err())
	}
	if rf.Reason != "read error" || rf.IsAccepted() {
		t.Fatalf("unexpected read failure outcome: %+v", rf)
	}
}

func TestCandidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deals.csv")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fc := FileCandidate{Path: path}
	if fc.Name() != "deals.csv" {
		t.Fatalf("unexpected name %q", fc.Name())
	}
	rc, err := fc.Open()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	b, _ := io.ReadAll(rc)
	_ = rc.Close()
	if string(b) != "x" {
		t.Fatalf("unexpected content %q", b)
	}

	bc := BytesCandidate{Filename: "mem.csv", Content: []byte("y")}
	rc, _ = bc.Open()
	b, _ = io.ReadAll(rc)
	if bc.Name() != "mem.csv" || string(b) != "y" {
		t.Fatalf("unexpected bytes candidate %q %q", bc.Name(), b)
	}

	var mc MultipartCandidate
	if mc.Name() != "" {
		t.Fatalf("nil header must have empty name")
	}
	if _, err := mc.Open(); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("nil header open: want ErrNotExist, got %v", err)
	}
	mc = MultipartCandidate{Header: &multipart.FileHeader{Filename: "form.csv"}}
	if mc.Name() != "form.csv" {
		t.Fatalf("unexpected multipart name %q", mc.Name())
	}
}
