package theme

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestNewDefaultScheme(t *testing.T) {
	p, err := New(Options{Colors: 256})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Scheme() != "tokyonight" {
		t.Errorf("expected tokyonight, got %s", p.Scheme())
	}
	if p.Limited() {
		t.Error("256-color terminal should not be limited")
	}
	if len(p.Pairs()) > MaxPairs {
		t.Errorf("expected at most %d pairs, got %d", MaxPairs, len(p.Pairs()))
	}
	if len(p.Tokens()) > MaxPairs {
		t.Errorf("expected at most %d tokens, got %d", MaxPairs, len(p.Tokens()))
	}
}

func TestTokensBindToOnePair(t *testing.T) {
	p, _ := New(Options{Colors: 256})
	for _, tok := range p.Tokens() {
		id := p.Pair(tok)
		if id < 1 || id > MaxPairs {
			t.Errorf("token %s bound to pair %d", tok, id)
		}
	}
	if p.Pair(BorderDefault) != 14 {
		t.Errorf("border should use the purple pair, got %d", p.Pair(BorderDefault))
	}
	if p.Pair(TitleBanner) != 12 {
		t.Errorf("banner should use the yellow pair, got %d", p.Pair(TitleBanner))
	}
	if p.Pair(Token("nope")) != 0 {
		t.Error("unknown token should have no pair")
	}
}

func TestLimitedTerminalFallsBack(t *testing.T) {
	p, err := New(Options{Colors: 8})
	if !errors.Is(err, ErrPaletteInitFailed) {
		t.Fatalf("expected ErrPaletteInitFailed, got %v", err)
	}
	if p == nil {
		t.Fatal("palette must still be usable")
	}
	if !p.Limited() {
		t.Error("expected limited palette")
	}
	fg, _, _ := p.Style(BorderDefault).Decompose()
	if fg != tcell.ColorPurple {
		t.Errorf("expected basic purple, got %v", fg)
	}
}

func TestUnknownSchemeFallsBack(t *testing.T) {
	p, err := New(Options{Scheme: "vaporwave", Colors: 256})
	if !errors.Is(err, ErrPaletteInitFailed) {
		t.Fatalf("expected ErrPaletteInitFailed, got %v", err)
	}
	if p.Scheme() != "tokyonight" {
		t.Errorf("expected default scheme, got %s", p.Scheme())
	}
}

func TestOverrides(t *testing.T) {
	p, err := New(Options{Colors: 256, Overrides: map[string]string{Purple: "#123456"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fg, _, _ := p.Style(BorderDefault).Decompose()
	if fg != tcell.GetColor("#123456") {
		t.Errorf("override not applied: %v", fg)
	}

	_, err = New(Options{Colors: 256, Overrides: map[string]string{"chartreuse": "#00ff00"}})
	if !errors.Is(err, ErrPaletteInitFailed) {
		t.Error("expected error for unknown color name")
	}

	_, err = New(Options{Colors: 256, Overrides: map[string]string{Purple: "not-a-color"}})
	if !errors.Is(err, ErrPaletteInitFailed) {
		t.Error("expected error for bad hex")
	}
}

func TestNilPaletteStyle(t *testing.T) {
	var p *Palette
	if p.Style(BorderDefault) != tcell.StyleDefault {
		t.Error("nil palette should yield the default style")
	}
}

func TestInitOnce(t *testing.T) {
	first, _ := Init(Options{Scheme: "retro", Colors: 256})
	second, _ := Init(Options{Scheme: "ocean", Colors: 256})
	if first != second {
		t.Error("Init should return the same palette")
	}
	if first.Scheme() != "retro" {
		t.Errorf("first call should win, got %s", first.Scheme())
	}
}

func TestSchemeNames(t *testing.T) {
	names := SchemeNames()
	if len(names) != len(Schemes) {
		t.Fatalf("expected %d names, got %d", len(Schemes), len(names))
	}
	if names[0] != "tokyonight" {
		t.Errorf("default scheme should come first, got %s", names[0])
	}
	if _, ok := GetScheme("ocean"); !ok {
		t.Error("expected ocean scheme")
	}
}
