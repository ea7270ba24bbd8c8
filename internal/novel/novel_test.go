package novel

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestEmpty_SerializesNullsAndEmptyChapters(t *testing.T) {
	data, err := json.Marshal(Empty())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"title":null,"author":null,"description":null,"chapters":[]}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}
}

func TestSummarize(t *testing.T) {
	title := "三体"
	n := Novel{
		Title: &title,
		Chapters: []Chapter{
			{Title: "第一章 开端", Content: "A"},
			{Title: "第二章 发展", Content: "B"},
		},
	}

	item := Summarize(n, "abc123", "/books/santi.txt")
	if item.Title == nil || *item.Title != "三体" {
		t.Errorf("expected title %q, got %v", "三体", item.Title)
	}
	if item.Author != nil {
		t.Errorf("expected nil author, got %q", *item.Author)
	}
	if item.Chapters != 2 {
		t.Errorf("expected 2 chapters, got %d", item.Chapters)
	}
	if item.ContentHash != "abc123" || item.Source != "/books/santi.txt" {
		t.Errorf("unexpected hash/source: %q %q", item.ContentHash, item.Source)
	}
}

func TestContentHash_Consistency(t *testing.T) {
	h1 := ContentHash([]byte("hello world"))
	h2 := ContentHash([]byte("hello world"))
	if h1 != h2 {
		t.Errorf("expected identical hashes, got %q and %q", h1, h2)
	}
	want := "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
	if h1 != want {
		t.Errorf("expected hash %q, got %q", want, h1)
	}
}

func TestContentHash_EmptyInput(t *testing.T) {
	h := ContentHash(nil)
	if !strings.HasPrefix(h, "e3b0c44298fc1c14") {
		t.Errorf("unexpected hash for empty input: %q", h)
	}
}
