package model

import "testing"

func TestSplitTitleYear(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		wantClean string
		wantYear  string
	}{
		{
			name:      "title with trailing year",
			title:     "The Shawshank Redemption (1994)",
			wantClean: "The Shawshank Redemption",
			wantYear:  "1994",
		},
		{
			name:      "title without year",
			title:     "Stalker",
			wantClean: "Stalker",
			wantYear:  "",
		},
		{
			name:      "trailing whitespace after year",
			title:     "Alien (1979)  ",
			wantClean: "Alien",
			wantYear:  "1979",
		},
		{
			name:      "parenthetical mid-title is not a year",
			title:     "(500) Days of Summer",
			wantClean: "(500) Days of Summer",
			wantYear:  "",
		},
		{
			name:      "non-four-digit parenthetical kept",
			title:     "Movie (99)",
			wantClean: "Movie (99)",
			wantYear:  "",
		},
		{
			name:      "year embedded in title body",
			title:     "Blade Runner 2049 (2017)",
			wantClean: "Blade Runner 2049",
			wantYear:  "2017",
		},
		{
			name:      "empty title",
			title:     "",
			wantClean: "",
			wantYear:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clean, year := SplitTitleYear(tt.title)
			if clean != tt.wantClean {
				t.Errorf("clean = %q, want %q", clean, tt.wantClean)
			}
			if year != tt.wantYear {
				t.Errorf("year = %q, want %q", year, tt.wantYear)
			}
		})
	}
}

func TestMovieItem_DetailURL(t *testing.T) {
	m := MovieItem{ID: "51568", Name: "The Shawshank Redemption (1994)", Slug: "the-shawshank-redemption"}

	want := "https://letterboxd.com/film/the-shawshank-redemption"
	if got := m.DetailURL(); got != want {
		t.Errorf("DetailURL() = %q, want %q", got, want)
	}
}
