package casedb

import (
	"testing"
)

func TestGetTotalPages(t *testing.T) {
	type args struct {
		totalCount int64
		limit      int64
	}
	tests := []struct {
		name string
		args args
		want int64
	}{
		{
			name: "Test 1",
			args: args{
				totalCount: 10,
				limit:      10,
			},
			want: 1,
		},
		{
			name: "Test 2",
			args: args{
				totalCount: 10,
				limit:      3,
			},
			want: 4,
		},
		{
			name: "Test 3",
			args: args{
				totalCount: 0,
				limit:      10,
			},
			want: 0,
		},
		{
			name: "Test 4",
			args: args{
				totalCount: 10,
				limit:      0,
			},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getTotalPages(tt.args.totalCount, tt.args.limit); got != tt.want {
				t.Errorf("getTotalPages() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPrepPaginationInfos(t *testing.T) {
	t.Run("with default limit", func(t *testing.T) {
		infos := prepPaginationInfos(25, 1, 0)
		if infos.PageSize != 10 {
			t.Errorf("unexpected page size: %d", infos.PageSize)
		}
		if infos.TotalPages != 3 {
			t.Errorf("unexpected total pages: %d", infos.TotalPages)
		}
	})

	t.Run("page is clamped into range", func(t *testing.T) {
		infos := prepPaginationInfos(25, 99, 10)
		if infos.CurrentPage != 3 {
			t.Errorf("unexpected current page: %d", infos.CurrentPage)
		}
		infos = prepPaginationInfos(25, -2, 10)
		if infos.CurrentPage != 1 {
			t.Errorf("unexpected current page: %d", infos.CurrentPage)
		}
	})

	t.Run("with no results", func(t *testing.T) {
		infos := prepPaginationInfos(0, 1, 10)
		if infos.TotalPages != 0 || infos.CurrentPage != 1 {
			t.Errorf("unexpected infos: %+v", infos)
		}
	})
}
