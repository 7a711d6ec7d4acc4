package smlogic

import "testing"

func Test_split_path(t *testing.T) {
	tests := []struct {
		path                 string
		scheme, slot, sector string
	}{
		{"adder", "adder", DefaultSlot, WholeSlot},
		{"adder/a", "adder", "a", WholeSlot},
		{"adder/a/low", "adder", "a", "low"},
		{"adder//low", "adder", DefaultSlot, "low"},
		{"adder/a/low/deep", "adder", "a", "low/deep"},
		{"", "", DefaultSlot, WholeSlot},
	}
	for _, tt := range tests {
		scheme, slot, sector := splitPath(tt.path)
		if scheme != tt.scheme || slot != tt.slot || sector != tt.sector {
			t.Errorf("splitPath(%q) = (%q, %q, %q), want (%q, %q, %q)",
				tt.path, scheme, slot, sector, tt.scheme, tt.slot, tt.sector)
		}
	}
}

func Test_valid_name(t *testing.T) {
	for name, want := range map[string]bool{
		"adder":   true,
		"_":       true,
		"0":       true,
		"":        false,
		"a/b":    false,
		"trail/": false,
		"/lead":  false,
	} {
		if got := validName(name); got != want {
			t.Errorf("validName(%q) = %v, want %v", name, got, want)
		}
	}
}
