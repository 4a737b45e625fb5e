package storage

import "testing"

func TestNewUnconfigured(t *testing.T) {
	// Missing endpoint or credentials means "no storage", not an error.
	c, err := New("", "us-east-1", "", "", "images", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c != nil {
		t.Error("expected nil client without configuration")
	}
}

func TestFileURL(t *testing.T) {
	c, err := New("https://s3.example.com/", "us-east-1", "ak", "sk", "images", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	want := "https://s3.example.com/images/products/a.jpg"
	if got := c.FileURL("products/a.jpg"); got != want {
		t.Errorf("FileURL: got %q, want %q", got, want)
	}
}

func TestFileURLWithPublicURL(t *testing.T) {
	c, err := New("https://s3.example.com", "us-east-1", "ak", "sk", "images", "https://cdn.example.com/")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	want := "https://cdn.example.com/products/a.jpg"
	if got := c.FileURL("products/a.jpg"); got != want {
		t.Errorf("FileURL: got %q, want %q", got, want)
	}
}

func TestExtractKey(t *testing.T) {
	c, _ := New("https://s3.example.com", "us-east-1", "ak", "sk", "images", "https://cdn.example.com")

	tests := []struct {
		url    string
		key    string
		wantOK bool
	}{
		{"https://cdn.example.com/products/a.jpg", "products/a.jpg", true},
		{"https://s3.example.com/images/categories/b.png", "categories/b.png", true},
		{"https://elsewhere.example.com/x.jpg", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		key, ok := c.ExtractKey(tt.url)
		if ok != tt.wantOK || key != tt.key {
			t.Errorf("ExtractKey(%q): got (%q, %v), want (%q, %v)", tt.url, key, ok, tt.key, tt.wantOK)
		}
	}
}
