package client

import (
	"reflect"
	"testing"

	"fiberloom/backend/internal/model/content"
	"fiberloom/backend/internal/model/product"
)

// TestAdaptProductToArtwork verifies the artwork view reproduces the
// source product's name, price and category.
func TestAdaptProductToArtwork(t *testing.T) {
	p := &product.Product{
		Name:        "Misty Highlands",
		Description: "Hand woven wall hanging",
		Price:       180,
		Category:    "wall-hanging",
		Status:      "available",
		DimWidth:    60,
		DimHeight:   90,
		DimUnit:     "cm",
		Materials:   []string{"wool", "cotton"},
		Images: []product.ProductImage{
			{URL: "/uploads/misty-1.jpg"},
			{URL: "/uploads/misty-2.jpg"},
		},
	}

	art := AdaptProductToArtwork(p)

	if art.Title != p.Name {
		t.Errorf("Title = %q, want %q", art.Title, p.Name)
	}
	if art.Price != p.Price {
		t.Errorf("Price = %v, want %v", art.Price, p.Price)
	}
	if art.Category != p.Category {
		t.Errorf("Category = %q, want %q", art.Category, p.Category)
	}
	if art.Dimensions != "60 × 90 cm" {
		t.Errorf("Dimensions = %q, want %q", art.Dimensions, "60 × 90 cm")
	}
	if !reflect.DeepEqual(art.Materials, []string{"wool", "cotton"}) {
		t.Errorf("Materials = %v", art.Materials)
	}
	if !reflect.DeepEqual(art.Images, []string{"/uploads/misty-1.jpg", "/uploads/misty-2.jpg"}) {
		t.Errorf("Images = %v", art.Images)
	}
}

func TestFormatDimensions_ZeroAndFraction(t *testing.T) {
	if got := formatDimensions(&product.Product{}); got != "" {
		t.Errorf("zero dimensions should render empty, got %q", got)
	}
	got := formatDimensions(&product.Product{DimWidth: 45.5, DimHeight: 120})
	if got != "45.5 × 120 cm" {
		t.Errorf("Dimensions = %q, want %q", got, "45.5 × 120 cm")
	}
}

// TestAdaptContactLinks verifies unsafe URL schemes are filtered out.
func TestAdaptContactLinks(t *testing.T) {
	links := []content.ContactLink{
		{Platform: "instagram", Label: "Studio feed", URL: "https://instagram.com/studio"},
		{Platform: "email", URL: "mailto:hello@studio.example"},
		{Platform: "other", Label: "Legit site", URL: "http://studio.example"},
		{Platform: "other", Label: "Injected", URL: "javascript:alert(1)"},
		{Platform: "other", Label: "Weird", URL: "data:text/html,hi"},
		{Platform: "other", Label: "Broken", URL: "://not-a-url"},
	}

	out := AdaptContactLinks(links)

	if len(out) != 3 {
		t.Fatalf("expected 3 safe links, got %d: %+v", len(out), out)
	}
	for _, l := range out {
		if l.URL == "javascript:alert(1)" {
			t.Errorf("javascript: URL leaked through filter")
		}
	}
	// Missing label falls back to the platform name
	if out[1].Label != "email" {
		t.Errorf("Label = %q, want platform fallback %q", out[1].Label, "email")
	}
}

// TestFallbackContentBlock covers known sections and the unknown-section zero value.
func TestFallbackContentBlock(t *testing.T) {
	hero := FallbackContentBlock("home", "hero")
	if hero.Title == "" || hero.Content == "" {
		t.Errorf("home/hero fallback should be non-empty, got %+v", hero)
	}

	unknown := FallbackContentBlock("nope", "nothing")
	if unknown.Title != "" || unknown.Content != "" {
		t.Errorf("unknown section should return zero block, got %+v", unknown)
	}
}

func TestAdaptPageContent(t *testing.T) {
	row := &content.PageContent{
		Page:     "home",
		Section:  "hero",
		Title:    "Welcome",
		Content:  "Handwoven pieces",
		Image:    "/uploads/hero.jpg",
		ImageAlt: "Loom close-up",
		Metadata: map[string]string{"cta": "Shop now"},
	}

	block := AdaptPageContent(row)

	if block.Title != "Welcome" || block.Content != "Handwoven pieces" {
		t.Errorf("unexpected block: %+v", block)
	}
	if block.Image != "/uploads/hero.jpg" || block.ImageAlt != "Loom close-up" {
		t.Errorf("image fields not carried over: %+v", block)
	}
	if block.Metadata["cta"] != "Shop now" {
		t.Errorf("metadata not carried over: %+v", block.Metadata)
	}
}
