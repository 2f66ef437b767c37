package domain

import (
	"math"
	"testing"
)

func TestPaginationNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   Pagination
		want Pagination
	}{
		{"zero value", Pagination{}, Pagination{CurrentPage: 1, PageSize: DefaultPageSize}},
		{"negative", Pagination{CurrentPage: -3, PageSize: -1, Total: -5}, Pagination{CurrentPage: 1, PageSize: DefaultPageSize}},
		{"too large", Pagination{CurrentPage: 2, PageSize: 500, Total: 7}, Pagination{CurrentPage: 2, PageSize: MaxPageSize, Total: 7}},
		{"page past limit", Pagination{CurrentPage: math.MaxInt, PageSize: 10}, Pagination{CurrentPage: MaxPage, PageSize: 10}},
		{"unchanged", Pagination{CurrentPage: 3, PageSize: 20, Total: 61}, Pagination{CurrentPage: 3, PageSize: 20, Total: 61}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Normalize(); got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestPaginationOffsetAndPages(t *testing.T) {
	p := Pagination{CurrentPage: 3, PageSize: 20, Total: 61}
	if p.Offset() != 40 {
		t.Fatalf("expected offset 40, got %d", p.Offset())
	}
	if p.Pages() != 4 {
		t.Fatalf("expected 4 pages, got %d", p.Pages())
	}
	if (Pagination{}).Pages() != 0 {
		t.Fatalf("expected 0 pages for empty result")
	}
}

func TestPaginationOffsetNeverOverflows(t *testing.T) {
	for _, page := range []int{math.MaxInt64 / 5, math.MaxInt, MaxPage, MaxPage + 1} {
		for _, size := range []int{1, 10, MaxPageSize, math.MaxInt} {
			p := Pagination{CurrentPage: page, PageSize: size}
			if off := p.Offset(); off < 0 {
				t.Fatalf("page=%d size=%d: negative offset %d", page, size, off)
			}
		}
	}
}
