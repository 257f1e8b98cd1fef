package pagination

import "testing"

func TestPaginate(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		page     int
		pageSize int
		want     Page
	}{
		{
			name:  "middle page",
			total: 12, page: 2, pageSize: 5,
			want: Page{Number: 2, Offset: 5, Limit: 5, PageCount: 3, HasPrev: true, HasNext: true},
		},
		{
			name:  "single partial page",
			total: 3, page: 1, pageSize: 5,
			want: Page{Number: 1, Offset: 0, Limit: 3, PageCount: 1, HasPrev: false, HasNext: false},
		},
		{
			name:  "empty listing",
			total: 0, page: 1, pageSize: 5,
			want: Page{Number: 1, Offset: 0, Limit: 0, PageCount: 1, HasPrev: false, HasNext: false},
		},
		{
			name:  "last partial page",
			total: 12, page: 3, pageSize: 5,
			want: Page{Number: 3, Offset: 10, Limit: 2, PageCount: 3, HasPrev: true, HasNext: false},
		},
		{
			name:  "page past the end is empty, not clamped",
			total: 12, page: 5, pageSize: 5,
			want: Page{Number: 5, Offset: 20, Limit: 0, PageCount: 3, HasPrev: true, HasNext: false},
		},
		{
			name:  "exact page boundary",
			total: 10, page: 2, pageSize: 5,
			want: Page{Number: 2, Offset: 5, Limit: 5, PageCount: 2, HasPrev: true, HasNext: false},
		},
		{
			name:  "page and size normalized",
			total: 4, page: 0, pageSize: 0,
			want: Page{Number: 1, Offset: 0, Limit: 1, PageCount: 4, HasPrev: false, HasNext: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(tt.total, tt.page, tt.pageSize)
			if got != tt.want {
				t.Errorf("Paginate(%d, %d, %d) = %+v, want %+v", tt.total, tt.page, tt.pageSize, got, tt.want)
			}
		})
	}
}
