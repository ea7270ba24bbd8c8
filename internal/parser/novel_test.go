package parser

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dgallion1/txtnovel/internal/novel"
	"golang.org/x/text/encoding/simplifiedchinese"
)

func TestParseTxt_EmptyInput(t *testing.T) {
	n := ParseTxt(nil)
	if n.Title != nil {
		t.Errorf("expected nil title, got %q", *n.Title)
	}
	if n.Author != nil {
		t.Errorf("expected nil author, got %q", *n.Author)
	}
	if n.Description != nil {
		t.Errorf("expected nil description, got %q", *n.Description)
	}
	if n.Chapters == nil || len(n.Chapters) != 0 {
		t.Errorf("expected empty non-nil chapters, got %#v", n.Chapters)
	}
}

func TestParseTxt_FullManuscript(t *testing.T) {
	input := "《三体》\n作者：刘慈欣\n\n内容简介略。\n\n第一章 开端\nA\nB\n第二章 发展\nC\n"
	n := ParseTxt([]byte(input))

	if n.Title == nil || *n.Title != "三体" {
		t.Errorf("expected title %q, got %v", "三体", n.Title)
	}
	if n.Author == nil || *n.Author != "刘慈欣" {
		t.Errorf("expected author %q, got %v", "刘慈欣", n.Author)
	}

	want := []novel.Chapter{
		{Title: "第一章 开端", Content: "A\nB"},
		{Title: "第二章 发展", Content: "C"},
	}
	if !reflect.DeepEqual(n.Chapters, want) {
		t.Errorf("expected chapters %#v, got %#v", want, n.Chapters)
	}
}

func TestParseTxt_CRLFLineEndings(t *testing.T) {
	input := "第一章 开端\r\nA\r\nB\r\n第二章 发展\r\nC\r\n"
	n := ParseTxt([]byte(input))
	if len(n.Chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(n.Chapters))
	}
	if n.Chapters[0].Content != "A\nB" {
		t.Errorf("expected %q, got %q", "A\nB", n.Chapters[0].Content)
	}
}

func TestParseTxt_GBKManuscript(t *testing.T) {
	src := "《星河》\n作者：佚名\n\n" +
		"第一章 天色已晚\n" +
		strings.Repeat("天色已经晚了，他一个人走在回家的路上，心里想着今天发生的事情。\n", 8) +
		"第二章 我们第一次见面\n" +
		strings.Repeat("这是我们第一次见面，她说话的声音很轻，好像怕被别人听到。\n", 8)
	data, err := simplifiedchinese.GBK.NewEncoder().String(src)
	if err != nil {
		t.Fatalf("encode gbk: %v", err)
	}

	n := ParseTxt([]byte(data))
	if n.Title == nil || *n.Title != "星河" {
		t.Errorf("expected title %q, got %v", "星河", n.Title)
	}
	if n.Author == nil || *n.Author != "佚名" {
		t.Errorf("expected author %q, got %v", "佚名", n.Author)
	}
	if len(n.Chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(n.Chapters))
	}
	if n.Chapters[1].Title != "第二章 我们第一次见面" {
		t.Errorf("unexpected second heading %q", n.Chapters[1].Title)
	}
}

func TestParseTxt_Deterministic(t *testing.T) {
	input := []byte("《三体》\n第一章 开端\nA\nChapter 2 Next\nB\n")
	first := ParseTxt(input)
	second := ParseTxt(input)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results, got %#v and %#v", first, second)
	}
}

func TestParseTxt_NoHeadingsYieldsNoChapters(t *testing.T) {
	input := strings.Repeat("这是一段没有章节标记的正文。\n", 500)
	n := ParseTxt([]byte(input))
	if len(n.Chapters) != 0 {
		t.Errorf("expected no chapters, got %d", len(n.Chapters))
	}
}

func TestParseTxt_ArbitraryBytesDoNotPanic(t *testing.T) {
	inputs := [][]byte{
		{0xff, 0xfe, 0xfd},
		{0x00, 0x00, 0x00},
		[]byte("\n\n\n"),
		[]byte("\r"),
		{0xe7, 0xac, 0xac, 0x0a},
	}
	for i, in := range inputs {
		n := ParseTxt(in)
		if n.Chapters == nil {
			t.Errorf("input %d: expected non-nil chapters", i)
		}
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "no terminator", input: "a\nb", want: []string{"a", "b"}},
		{name: "final terminator", input: "a\nb\n", want: []string{"a", "b"}},
		{name: "crlf", input: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "blank lines kept", input: "a\n\n\nb", want: []string{"a", "", "", "b"}},
		{name: "lone newline", input: "\n", want: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLines(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTxt_ShortGBK(t *testing.T) {
	encode := func(s string) []byte {
		out, err := simplifiedchinese.GBK.NewEncoder().String(s)
		if err != nil {
			t.Fatalf("encode gbk: %v", err)
		}
		return []byte(out)
	}

	n := ParseTxt(encode("第一章 开端\n他走了。\n"))
	if len(n.Chapters) != 1 {
		t.Fatalf("expected 1 chapter, got %d", len(n.Chapters))
	}
	if n.Chapters[0].Title != "第一章 开端" || n.Chapters[0].Content != "他走了。" {
		t.Errorf("unexpected chapter %+v", n.Chapters[0])
	}

	n = ParseTxt(encode("《三体》\n作者：刘慈欣\n"))
	if n.Title == nil || *n.Title != "三体" {
		t.Errorf("expected title 三体, got %v", n.Title)
	}
	if n.Author == nil || *n.Author != "刘慈欣" {
		t.Errorf("expected author 刘慈欣, got %v", n.Author)
	}
}

func TestSourceCharset(t *testing.T) {
	gbk, err := simplifiedchinese.GBK.NewEncoder().String("《三体》\n作者：刘慈欣\n")
	if err != nil {
		t.Fatalf("encode gbk: %v", err)
	}
	tests := []struct {
		filename string
		data     []byte
		want     string
	}{
		{"book.txt", []byte(gbk), "gb18030"},
		{"book.md", []byte("# 第一章"), "utf-8"},
		{"book.html", []byte("<p>hi</p>"), "utf-8"},
		{"book.pdf", []byte(gbk), ""},
		{"book.docx", []byte("PK"), ""},
	}
	for _, tt := range tests {
		if got := SourceCharset(tt.filename, tt.data); got != tt.want {
			t.Errorf("SourceCharset(%q): expected %q, got %q", tt.filename, tt.want, got)
		}
	}
}
