package util

import "testing"

func TestAbsoluteURL(t *testing.T) {
	const origin = "https://www.careerbuilder.com"

	if got := AbsoluteURL(origin, "/job/J3N123"); got != "https://www.careerbuilder.com/job/J3N123" {
		t.Fatalf("relative = %q", got)
	}
	if got := AbsoluteURL(origin+"/", "job/J3N123"); got != "https://www.careerbuilder.com/job/J3N123" {
		t.Fatalf("no leading slash = %q", got)
	}
	if got := AbsoluteURL(origin, "https://other.example/x"); got != "https://other.example/x" {
		t.Fatalf("absolute passthrough = %q", got)
	}
	if got := AbsoluteURL(origin, "  "); got != "" {
		t.Fatalf("blank = %q", got)
	}
}

func TestJobIDFromURL(t *testing.T) {
	if got := JobIDFromURL("https://www.careerbuilder.com/job/abc123"); got != "abc123" {
		t.Fatalf("got %q", got)
	}
	if got := JobIDFromURL("https://example.com/jobs/abc123"); got != "" {
		t.Fatalf("no marker = %q", got)
	}
}
