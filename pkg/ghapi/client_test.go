package ghapi

import "testing"

func TestParseRepoRef(t *testing.T) {
	tests := []struct {
		url       string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{"https://github.com/facebook/react", "facebook", "react", false},
		{"https://github.com/golang/go/", "golang", "go", false},
		{"https://www.github.com/torvalds/linux", "torvalds", "linux", false},
		{"https://github.com/vuejs/vue/tree/main/src", "vuejs", "vue", false},
		{"https://gitlab.com/owner/repo", "", "", true},
		{"https://github.com/onlyowner", "", "", true},
		{"not a url at all \x7f://", "", "", true},
	}

	for _, tt := range tests {
		owner, repo, err := ParseRepoRef(tt.url)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseRepoRef(%q) error = nil, want error", tt.url)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRepoRef(%q) error = %v", tt.url, err)
			continue
		}
		if owner != tt.wantOwner || repo != tt.wantRepo {
			t.Errorf("ParseRepoRef(%q) = %q, %q, want %q, %q", tt.url, owner, repo, tt.wantOwner, tt.wantRepo)
		}
	}
}
