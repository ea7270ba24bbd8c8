package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const manuscript = "《山海》\n作者：佚名\n\n第一章 开端\n天地初开。\n第二章 远行\n少年出门。\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRun_Summary(t *testing.T) {
	path := writeFile(t, "book.txt", manuscript)
	var stdout, stderr bytes.Buffer

	if code := run([]string{path}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}
	out := stdout.String()
	for _, want := range []string{"Title:  山海", "Author: 佚名", "Chapters: 2", "   1. 第一章 开端", "   2. 第二章 远行"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRun_JSON(t *testing.T) {
	path := writeFile(t, "book.txt", manuscript)
	var stdout, stderr bytes.Buffer

	if code := run([]string{"-json", path}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}
	var n struct {
		Title    *string `json:"title"`
		Chapters []struct {
			Title   string `json:"title"`
			Content string `json:"content"`
		} `json:"chapters"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &n); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if n.Title == nil || *n.Title != "山海" {
		t.Errorf("expected title 山海, got %v", n.Title)
	}
	if len(n.Chapters) != 2 || n.Chapters[0].Content != "天地初开。" {
		t.Errorf("unexpected chapters: %+v", n.Chapters)
	}
}

func TestRun_Content(t *testing.T) {
	path := writeFile(t, "book.txt", manuscript)
	var stdout, stderr bytes.Buffer

	if code := run([]string{"-content", "2", path}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}
	if got := stdout.String(); got != "第二章 远行\n\n少年出门。\n" {
		t.Errorf("unexpected content output %q", got)
	}

	stdout.Reset()
	if code := run([]string{"-content", "3", path}, &stdout, &stderr); code != 1 {
		t.Errorf("expected exit 1 for missing chapter, got %d", code)
	}
}

func TestRun_MissingFileYieldsEmptyNovel(t *testing.T) {
	var stdout, stderr bytes.Buffer
	path := filepath.Join(t.TempDir(), "missing.txt")

	if code := run([]string{"-json", path}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	want := `{
  "title": null,
  "author": null,
  "description": null,
  "chapters": []
}
`
	if stdout.String() != want {
		t.Errorf("expected empty novel JSON, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "cannot read manuscript") {
		t.Errorf("expected warning on stderr, got %q", stderr.String())
	}
}

func TestRun_UnknownExtensionReadAsText(t *testing.T) {
	path := writeFile(t, "book.novel", manuscript)
	var stdout, stderr bytes.Buffer

	if code := run([]string{path}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(stdout.String(), "Chapters: 2") {
		t.Errorf("expected 2 chapters, got:\n%s", stdout.String())
	}
}

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 2 {
		t.Errorf("expected exit 2, got %d", code)
	}
	if code := run([]string{"-bogus"}, &stdout, &stderr); code != 2 {
		t.Errorf("expected exit 2 for unknown flag, got %d", code)
	}
}
