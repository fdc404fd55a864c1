package main

import (
	"bytes"
	"testing"

	"github.com/robofolio/robofolio/internal/search"
	"github.com/robofolio/robofolio/internal/search/index"
)

func TestPrintResults(t *testing.T) {
	results := []index.Entry{
		{Title: "Robot Arm", Content: "A robotic arm design", URL: "/projects/arm/", Type: "project"},
		{Title: "Arm v2", Content: "Second arm design", Excerpt: "The second arm", URL: "/projects/arm-v2/", Type: "project"},
	}
	var buf bytes.Buffer
	printResults(&buf, search.NewPanel(results, "arm"))
	want := "/projects/arm/ [project]: Robot Arm\n\tA robotic arm design...\n" +
		"/projects/arm-v2/ [project]: Arm v2\n\tThe second arm...\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrintTOC(t *testing.T) {
	page := `<html><body><div class="prose"><h2>Design Goals</h2><h3 id="torque">Torque</h3></div><h2>Outside</h2></body></html>`
	var buf bytes.Buffer
	if err := printTOC(&buf, []byte(page), "prose"); err != nil {
		t.Fatal(err)
	}
	want := "- [Design Goals](#design-goals)\n  - [Torque](#torque)\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResultURL(t *testing.T) {
	tests := map[string]struct {
		href, indexURL string
		want           string
	}{
		"no index URL":   {href: "/projects/arm/", want: "/projects/arm/"},
		"absolute index": {href: "/projects/arm/", indexURL: "https://team.example.com/search.json", want: "https://team.example.com/projects/arm/"},
		"absolute href":  {href: "https://other.example.com/x", indexURL: "https://team.example.com/search.json", want: "https://other.example.com/x"},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if got := resultURL(test.href, test.indexURL).String(); got != test.want {
				t.Errorf("got %q, want %q", got, test.want)
			}
		})
	}
}
