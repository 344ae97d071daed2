package domain

import "testing"

func TestAspectDimensions(t *testing.T) {
	tests := []struct {
		tag  string
		want Dimensions
	}{
		{"1:1", Dimensions{1024, 1024}},
		{"16:9", Dimensions{1280, 720}},
		{"9:16", Dimensions{720, 1280}},
		{"4:3", Dimensions{1024, 768}},
		{"3:4", Dimensions{768, 1024}},
		{"21:9", Dimensions{1280, 548}},
		{"9:21", Dimensions{548, 1280}},
		{" 16:9 ", Dimensions{1280, 720}},
		{"", Dimensions{1024, 1024}},
		{"2:1", Dimensions{1024, 1024}},
		{"16x9", Dimensions{1024, 1024}},
	}
	for _, tc := range tests {
		if got := AspectDimensions(tc.tag); got != tc.want {
			t.Fatalf("AspectDimensions(%q) = %+v, want %+v", tc.tag, got, tc.want)
		}
	}
}

func TestAspectRatiosMatchTable(t *testing.T) {
	tags := AspectRatios()
	if len(tags) != 7 {
		t.Fatalf("expected 7 ratios, got %d", len(tags))
	}
	for _, tag := range tags {
		if !IsAspectRatio(tag) {
			t.Fatalf("listed ratio %q missing from table", tag)
		}
	}
	tags[0] = "mutated"
	if AspectRatios()[0] != "1:1" {
		t.Fatalf("AspectRatios must return a copy")
	}
	if IsAspectRatio("5:4") {
		t.Fatalf("5:4 must not be supported")
	}
}
