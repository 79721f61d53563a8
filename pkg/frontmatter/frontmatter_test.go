package frontmatter

import (
	"errors"
	"strings"
	"testing"
)

const sampleDoc = `---
authors:
    - Geotribu
categories:
    - revue de presse
date: 2015-02-06 10:20
description: Une revue...
license: default
legacy:
    node: 2001
robots: index, follow
tags:
    - revue de presse
title: Revue de presse 2015
---

# Revue de presse 2015

Du contenu.
`

func TestSplit(t *testing.T) {
	header, body, err := Split(sampleDoc)
	if err != nil {
		t.Fatalf("Split returned error: %v", err)
	}

	if !strings.Contains(header, "title: Revue de presse 2015") {
		t.Errorf("header = %q", header)
	}

	if strings.Contains(header, Delimiter) {
		t.Errorf("header contains delimiter: %q", header)
	}

	if !strings.HasPrefix(body, "\n# Revue de presse 2015") {
		t.Errorf("body = %q", body)
	}
}

func TestSplit_NoBlock(t *testing.T) {
	if _, _, err := Split("# Pas de front-matter\n"); !errors.Is(err, ErrNoBlock) {
		t.Errorf("err = %v, want ErrNoBlock", err)
	}
}

func TestSplit_Unterminated(t *testing.T) {
	if _, _, err := Split("---\ntitle: x\n"); !errors.Is(err, ErrUnterminated) {
		t.Errorf("err = %v, want ErrUnterminated", err)
	}
}

func TestParse(t *testing.T) {
	f, err := Parse(sampleDoc)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if f.Title != "Revue de presse 2015" {
		t.Errorf("Title = %q", f.Title)
	}

	if len(f.Categories) != 1 || f.Categories[0] != "revue de presse" {
		t.Errorf("Categories = %v", f.Categories)
	}

	if f.Date != "2015-02-06 10:20" {
		t.Errorf("Date = %q", f.Date)
	}

	if f.Legacy.Node == nil || *f.Legacy.Node != 2001 {
		t.Errorf("Legacy.Node = %v", f.Legacy.Node)
	}

	if len(f.Authors) != 1 || f.Authors[0] != "Geotribu" {
		t.Errorf("Authors = %v", f.Authors)
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	doc := "---\ntitle: [unclosed\n---\n\ncorps\n"

	if _, err := Parse(doc); !errors.Is(err, ErrInvalidYAML) {
		t.Errorf("err = %v, want ErrInvalidYAML", err)
	}
}

func TestCount(t *testing.T) {
	if got := Count(sampleDoc); got != 1 {
		t.Errorf("Count = %d, want 1", got)
	}
}

func TestCount_DuplicatedHeader(t *testing.T) {
	doc := sampleDoc + "\n---\ntitle: doublon\n---\n"

	if got := Count(doc); got != 2 {
		t.Errorf("Count = %d, want 2", got)
	}
}

func TestCount_HorizontalRuleNotCounted(t *testing.T) {
	doc := sampleDoc + "\n----\n\nDu texte après un filet.\n"

	if got := Count(doc); got != 1 {
		t.Errorf("Count = %d, a four dash rule is not a delimiter", got)
	}
}
