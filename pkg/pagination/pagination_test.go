package pagination

import (
	"testing"
	"time"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		perPage    int
		total      int64
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"first page of many", 1, 15, 45, 3, true, false},
		{"middle page", 2, 15, 45, 3, true, true},
		{"last page", 3, 15, 45, 3, false, true},
		{"single partial page", 1, 15, 7, 1, false, false},
		{"empty result", 1, 15, 0, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.perPage, tt.total)
			if p.TotalPages != tt.totalPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.totalPages)
			}
			if p.HasNext != tt.hasNext {
				t.Errorf("HasNext = %v, want %v", p.HasNext, tt.hasNext)
			}
			if p.HasPrev != tt.hasPrev {
				t.Errorf("HasPrev = %v, want %v", p.HasPrev, tt.hasPrev)
			}
		})
	}
}

func TestPaginationParamsValidate(t *testing.T) {
	p := &PaginationParams{Page: 0, PerPage: 500}
	p.Validate()
	if p.Page != 1 {
		t.Errorf("Page = %d, want 1", p.Page)
	}
	if p.PerPage != 100 {
		t.Errorf("PerPage = %d, want 100", p.PerPage)
	}

	if (&PaginationParams{Page: 3, PerPage: 10}).Offset() != 20 {
		t.Error("Offset for page 3 per_page 10 should be 20")
	}
}

func TestCursorRoundTrip(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	encoded := EncodeCursor("order-123", createdAt)

	params := &CursorParams{Cursor: encoded}
	cursor, err := params.DecodeCursor()
	if err != nil {
		t.Fatalf("DecodeCursor failed: %v", err)
	}
	if cursor.ID != "order-123" {
		t.Errorf("ID = %q, want %q", cursor.ID, "order-123")
	}
	if !cursor.CreatedAt.Equal(createdAt) {
		t.Errorf("CreatedAt = %v, want %v", cursor.CreatedAt, createdAt)
	}
}

func TestDecodeCursorEmpty(t *testing.T) {
	params := &CursorParams{}
	cursor, err := params.DecodeCursor()
	if err != nil {
		t.Fatalf("DecodeCursor failed: %v", err)
	}
	if cursor != nil {
		t.Errorf("expected nil cursor for empty input, got %+v", cursor)
	}
}

func TestDecodeCursorInvalid(t *testing.T) {
	params := &CursorParams{Cursor: "not-base64!!"}
	if _, err := params.DecodeCursor(); err == nil {
		t.Error("expected error for malformed cursor")
	}
}

type fakeRow struct {
	id        string
	createdAt time.Time
}

func TestNewCursorPagination(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]fakeRow, 4)
	for i := range rows {
		rows[i] = fakeRow{id: string(rune('a' + i)), createdAt: base.Add(time.Duration(i) * time.Hour)}
	}

	// Fetched limit+1 rows: trims to limit and reports a next page
	pag, items := NewCursorPagination(rows, 3,
		func(r fakeRow) string { return r.id },
		func(r fakeRow) time.Time { return r.createdAt },
	)
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	if !pag.HasNext {
		t.Error("HasNext should be true when an extra row was fetched")
	}
	if pag.NextCursor == nil {
		t.Fatal("NextCursor should be set")
	}

	decoded, err := (&CursorParams{Cursor: *pag.NextCursor}).DecodeCursor()
	if err != nil {
		t.Fatalf("DecodeCursor failed: %v", err)
	}
	if decoded.ID != "c" {
		t.Errorf("next cursor ID = %q, want %q (last trimmed item)", decoded.ID, "c")
	}

	// Exact page: no next
	pag, items = NewCursorPagination(rows[:2], 3,
		func(r fakeRow) string { return r.id },
		func(r fakeRow) time.Time { return r.createdAt },
	)
	if len(items) != 2 || pag.HasNext {
		t.Errorf("short page should keep all items and report no next page")
	}

	// Empty page: no cursors at all
	pag, items = NewCursorPagination(nil, 3,
		func(r fakeRow) string { return r.id },
		func(r fakeRow) time.Time { return r.createdAt },
	)
	if len(items) != 0 || pag.NextCursor != nil || pag.PrevCursor != nil {
		t.Error("empty page should have no cursors")
	}
}
