package ranker

import (
	"testing"

	"github.com/jvalenzano/forestgpt-app/pkg/store"
)

func TestRankImagesSelectsEntityPortrait(t *testing.T) {
	r := newTestRanker()

	images := []store.Image{
		{Alt: "A scenic overlook in autumn", FullURL: "https://www.fs.usda.gov/media/overlook.jpg"},
		{Alt: "Portrait of the Forest Service Chief", FullURL: "https://www.fs.usda.gov/media/chief.jpg"},
	}
	sources := []store.Source{{URL: "https://www.fs.usda.gov/about-agency/leadership"}}

	got := r.RankImages("who is the chief of the forest service", images, sources)

	if len(got) != 1 {
		t.Fatalf("got %d images, want 1", len(got))
	}
	if got[0].FullURL != "https://www.fs.usda.gov/media/chief.jpg" {
		t.Errorf("selected %q, want the chief portrait", got[0].FullURL)
	}
}

func TestRankImagesRestrictsToSourceHosts(t *testing.T) {
	r := newTestRanker()

	images := []store.Image{
		{Alt: "Portrait of the Forest Service Chief", FullURL: "https://cdn.example.com/chief.jpg"},
	}
	sources := []store.Source{{URL: "https://www.fs.usda.gov/about-agency"}}

	if got := r.RankImages("who is the chief", images, sources); got != nil {
		t.Errorf("image from non-source host selected: %v", got)
	}
}

func TestRankImagesBelowThresholdReturnsNone(t *testing.T) {
	r := newTestRanker()

	// One weak topical signal only, below the minimum score
	images := []store.Image{
		{Alt: "A quiet forest scene", FullURL: "https://www.fs.usda.gov/media/scene.jpg"},
	}
	sources := []store.Source{{URL: "https://www.fs.usda.gov/visit"}}

	if got := r.RankImages("how do I apply for a permit", images, sources); got != nil {
		t.Errorf("low-relevance image selected: %v", got)
	}
}

func TestRankImagesPenalizesGeneric(t *testing.T) {
	r := newTestRanker()

	images := []store.Image{
		{Alt: "Forest Service Chief logo banner graphic", FullURL: "https://www.fs.usda.gov/media/logo.jpg"},
		{Alt: "The Forest Service Chief at a ceremony", FullURL: "https://www.fs.usda.gov/media/ceremony.jpg"},
	}
	sources := []store.Source{{URL: "https://www.fs.usda.gov/about-agency"}}

	got := r.RankImages("forest service chief", images, sources)

	if len(got) != 1 || got[0].FullURL != "https://www.fs.usda.gov/media/ceremony.jpg" {
		t.Errorf("got %v, want the non-generic image", got)
	}
}

func TestRankImagesEmptyInputs(t *testing.T) {
	r := newTestRanker()

	if got := r.RankImages("query", nil, []store.Source{{URL: "https://www.fs.usda.gov"}}); got != nil {
		t.Errorf("RankImages with no images = %v, want nil", got)
	}
	if got := r.RankImages("query", []store.Image{{Alt: "x", FullURL: "y"}}, nil); got != nil {
		t.Errorf("RankImages with no sources = %v, want nil", got)
	}
}
