package watch

import "testing"

func TestMatchesInclude(t *testing.T) {
	tests := []struct {
		path     string
		patterns []string
		want     bool
	}{
		{"menu.json", []string{"**/*.json"}, true},
		{"drafts/menu.json", []string{"**/*.json"}, true},
		{"menu.json", []string{"*.json"}, true},
		{"notes.txt", []string{"**/*.json"}, false},
		{"menu.json", nil, true},
		{"menu.json", []string{"site.json"}, false},
		{"site.json", []string{"site.json"}, true},
	}
	for _, tt := range tests {
		got := MatchesInclude(tt.path, tt.patterns)
		if got != tt.want {
			t.Errorf("MatchesInclude(%q, %v) = %v, want %v", tt.path, tt.patterns, got, tt.want)
		}
	}
}

func TestMatchesExclude(t *testing.T) {
	tests := []struct {
		path     string
		patterns []string
		want     bool
	}{
		{".menu.json.swp", []string{".*"}, true},
		{"drafts/.site.json.swp", []string{".*"}, true},
		{"menu.json", []string{".*"}, false},
		{"menu.json", nil, false},
		{"backup/menu.json", []string{"backup/**"}, true},
	}
	for _, tt := range tests {
		got := MatchesExclude(tt.path, tt.patterns)
		if got != tt.want {
			t.Errorf("MatchesExclude(%q, %v) = %v, want %v", tt.path, tt.patterns, got, tt.want)
		}
	}
}
