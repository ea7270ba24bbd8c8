package parser

import (
	"strings"
	"testing"
)

func TestDetectTitle(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string // empty means no title
	}{
		{name: "bracketed title", lines: []string{"《三体》"}, want: "三体"},
		{name: "title inside a sentence", lines: []string{"书名：《球状闪电》 全本"}, want: "球状闪电"},
		{name: "inner whitespace trimmed", lines: []string{"《  三体  》"}, want: "三体"},
		{name: "first qualifying line wins", lines: []string{"简介", "《甲》", "《乙》"}, want: "甲"},
		{name: "chapter glyph excludes line", lines: []string{"第一章《觉醒》"}, want: ""},
		{name: "round glyph excludes line", lines: []string{"回忆《往事》"}, want: ""},
		{name: "excluded line falls through", lines: []string{"第一章《觉醒》", "《三体》"}, want: "三体"},
		{name: "blank capture rejected", lines: []string{"《 》"}, want: ""},
		{name: "no brackets", lines: []string{"三体", "作者：刘慈欣"}, want: ""},
		{name: "no lines", lines: nil, want: ""},
		{name: "exactly forty runes", lines: []string{"《" + strings.Repeat("长", 40) + "》"}, want: strings.Repeat("长", 40)},
		{name: "over forty runes", lines: []string{"《" + strings.Repeat("长", 41) + "》"}, want: ""},
		{name: "long candidate then short", lines: []string{"《" + strings.Repeat("长", 41) + "》", "《短》"}, want: "短"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectTitle(tt.lines)
			switch {
			case tt.want == "" && got != nil:
				t.Errorf("expected no title, got %q", *got)
			case tt.want != "" && got == nil:
				t.Errorf("expected title %q, got nil", tt.want)
			case tt.want != "" && *got != tt.want:
				t.Errorf("expected title %q, got %q", tt.want, *got)
			}
		})
	}
}

func TestDetectTitle_OnlyScansLeadingLines(t *testing.T) {
	lines := make([]string, MetadataScanLines)
	lines = append(lines, "《三体》")
	if got := DetectTitle(lines); got != nil {
		t.Errorf("expected title beyond line %d to be ignored, got %q", MetadataScanLines, *got)
	}

	lines = make([]string, MetadataScanLines-1)
	lines = append(lines, "《三体》")
	if got := DetectTitle(lines); got == nil || *got != "三体" {
		t.Errorf("expected title on line %d to be found, got %v", MetadataScanLines, got)
	}
}

func TestDetectAuthor(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{name: "marker", lines: []string{"作者：刘慈欣"}, want: "刘慈欣"},
		{name: "surrounding whitespace", lines: []string{"  作者：  刘慈欣  "}, want: "刘慈欣"},
		{name: "marker mid-line", lines: []string{"《三体》 作者：刘慈欣"}, want: "刘慈欣"},
		{name: "ascii colon not recognized", lines: []string{"作者:刘慈欣"}, want: ""},
		{name: "empty name", lines: []string{"作者：   "}, want: ""},
		{name: "empty name then valid", lines: []string{"作者：", "作者：佚名"}, want: "佚名"},
		{name: "over forty runes", lines: []string{"作者：" + strings.Repeat("名", 41)}, want: ""},
		{name: "no marker", lines: []string{"by: Someone"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectAuthor(tt.lines)
			switch {
			case tt.want == "" && got != nil:
				t.Errorf("expected no author, got %q", *got)
			case tt.want != "" && got == nil:
				t.Errorf("expected author %q, got nil", tt.want)
			case tt.want != "" && *got != tt.want:
				t.Errorf("expected author %q, got %q", tt.want, *got)
			}
		})
	}
}

func TestDetectAuthor_OnlyScansLeadingLines(t *testing.T) {
	lines := make([]string, MetadataScanLines)
	lines = append(lines, "作者：刘慈欣")
	if got := DetectAuthor(lines); got != nil {
		t.Errorf("expected author beyond line %d to be ignored, got %q", MetadataScanLines, *got)
	}
}
