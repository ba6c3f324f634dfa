package pagination

import "testing"

func TestPaginationParamsValidate(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		perPage     int
		wantPage    int
		wantPerPage int
	}{
		{"defaults applied", 0, 0, 1, 20},
		{"negative page clamped", -3, 10, 1, 10},
		{"per page capped", 2, 500, 2, 100},
		{"valid left alone", 3, 25, 3, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &PaginationParams{Page: tt.page, PerPage: tt.perPage}
			p.Validate()
			if p.Page != tt.wantPage || p.PerPage != tt.wantPerPage {
				t.Errorf("got page=%d perPage=%d, want page=%d perPage=%d",
					p.Page, p.PerPage, tt.wantPage, tt.wantPerPage)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	p := &PaginationParams{Page: 3, PerPage: 20}
	if got := p.Offset(); got != 40 {
		t.Errorf("offset = %d, want 40", got)
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 20, 45)
	if p.TotalPages != 3 {
		t.Errorf("total pages = %d, want 3", p.TotalPages)
	}
	if !p.HasNext || !p.HasPrev {
		t.Errorf("has_next=%v has_prev=%v, want both true", p.HasNext, p.HasPrev)
	}

	last := NewPagination(3, 20, 45)
	if last.HasNext {
		t.Error("last page reports has_next")
	}
}
