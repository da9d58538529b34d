package palette

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHunt(t *testing.T) {
	var gotSort, gotStep, gotTags, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm: %v", err)
		}
		gotSort = r.FormValue("sort")
		gotStep = r.FormValue("step")
		gotTags = r.FormValue("tags")
		gotAgent = r.Header.Get("User-Agent")
		fmt.Fprint(w, `[
			{"code":"96ceb4ffeeadd9534fffad60","likes":"1021","date":"2 days"},
			{"code":"tooshort","likes":"3","date":"today"},
			{"code":"222831393e46948979dfd0b8","likes":"512","date":"1 week"}
		]`)
	}))
	defer srv.Close()

	old := huntFeedURL
	huntFeedURL = srv.URL
	defer func() { huntFeedURL = old }()

	palettes, err := Hunt(context.Background(), HuntQuery{Sort: "popular", Tags: "pastel", Step: 2})
	if err != nil {
		t.Fatalf("Hunt: %v", err)
	}

	if gotSort != "popular" || gotStep != "2" || gotTags != "pastel" {
		t.Errorf("form = sort %q step %q tags %q", gotSort, gotStep, gotTags)
	}
	if gotAgent != "wallrus-palette-client" {
		t.Errorf("User-Agent = %q", gotAgent)
	}

	// The malformed middle entry is dropped.
	if len(palettes) != 2 {
		t.Fatalf("len(palettes) = %d, want 2", len(palettes))
	}
	if palettes[0].Hex()[0] != "#96ceb4" {
		t.Errorf("first color = %q, want #96ceb4", palettes[0].Hex()[0])
	}
	if palettes[1].Hex()[3] != "#dfd0b8" {
		t.Errorf("last color = %q, want #dfd0b8", palettes[1].Hex()[3])
	}
}

func TestHuntDefaultsToNewSort(t *testing.T) {
	var gotSort string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotSort = r.FormValue("sort")
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	old := huntFeedURL
	huntFeedURL = srv.URL
	defer func() { huntFeedURL = old }()

	if _, err := Hunt(context.Background(), HuntQuery{}); err != nil {
		t.Fatalf("Hunt: %v", err)
	}
	if gotSort != "new" {
		t.Errorf("sort = %q, want new", gotSort)
	}
}

func TestHuntServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	old := huntFeedURL
	huntFeedURL = srv.URL
	defer func() { huntFeedURL = old }()

	if _, err := Hunt(context.Background(), HuntQuery{}); err == nil {
		t.Error("expected error on HTTP 500")
	}
}

func TestHuntBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>not json</html>`)
	}))
	defer srv.Close()

	old := huntFeedURL
	huntFeedURL = srv.URL
	defer func() { huntFeedURL = old }()

	if _, err := Hunt(context.Background(), HuntQuery{}); err == nil {
		t.Error("expected error on malformed JSON")
	}
}
