package app

import "testing"

func TestIsValidID(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected bool
	}{
		{name: "three segments", id: "org.mozilla.firefox", expected: true},
		{name: "two segments", id: "obsidian.Obsidian", expected: true},
		{name: "underscores allowed", id: "io.github.some_app", expected: true},
		{name: "single segment", id: "firefox", expected: false},
		{name: "empty", id: "", expected: false},
		{name: "spaces", id: "not an id", expected: false},
		{name: "leading dot", id: ".org.mozilla.firefox", expected: false},
		{name: "trailing dot", id: "org.mozilla.firefox.", expected: false},
		{name: "empty segment", id: "org..firefox", expected: false},
		{name: "dashes rejected", id: "org.some-vendor.app", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidID(tt.id); got != tt.expected {
				t.Errorf("IsValidID(%q) = %v, expected %v", tt.id, got, tt.expected)
			}
		})
	}
}
