package ranker

import (
	"strings"
	"testing"
)

func TestExtractPageTitle(t *testing.T) {
	tests := []struct {
		name    string
		html    string
		pageURL string
		want    string
	}{
		{
			name:    "plain title",
			html:    `<html><head><title>Camping Basics</title></head></html>`,
			pageURL: "www.fs.usda.gov/recreation/camping",
			want:    "Camping Basics",
		},
		{
			name:    "site suffix stripped",
			html:    `<html><head><title>Camping Basics | US Forest Service</title></head></html>`,
			pageURL: "www.fs.usda.gov/recreation/camping",
			want:    "Camping Basics",
		},
		{
			name:    "usda suffix stripped",
			html:    `<html><head><title>Our Mission | USDA Forest Service</title></head></html>`,
			pageURL: "www.fs.usda.gov/about-agency",
			want:    "Our Mission",
		},
		{
			name:    "no title falls back to path",
			html:    `<html><body><p>no title here</p></body></html>`,
			pageURL: "www.fs.usda.gov/about-agency/leadership",
			want:    "About Agency - Leadership",
		},
		{
			name:    "empty title falls back to path",
			html:    `<html><head><title></title></head></html>`,
			pageURL: "www.fs.usda.gov/visit",
			want:    "Visit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractPageTitle(tt.html, tt.pageURL); got != tt.want {
				t.Errorf("ExtractPageTitle = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractPageTitleTruncatesLongTitles(t *testing.T) {
	long := strings.Repeat("Forest ", 20)
	html := "<html><head><title>" + long + "</title></head></html>"

	got := ExtractPageTitle(html, "www.fs.usda.gov/visit")

	if len(got) > 60 {
		t.Errorf("title length = %d, want at most 60", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated title should end with ellipsis, got %q", got)
	}
}
