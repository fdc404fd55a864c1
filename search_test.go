package robofolio

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/robofolio/robofolio/internal/search/index"
)

func TestSite_Search(t *testing.T) {
	site := newTestSite(testSiteFiles())
	tests := map[string][]string{
		"arm design":   {"/projects/arm/", "/projects/arm-v2/"},
		"MECANUM":      {"/posts/drivetrain/"},
		"design,":      nil,
		"a":            nil,
		"zzzznotfound": nil,
	}
	for q, want := range tests {
		t.Run(q, func(t *testing.T) {
			results, err := site.Search(context.Background(), q)
			if err != nil {
				t.Fatal(err)
			}
			var got []string
			for _, e := range results {
				got = append(got, e.URL)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

func TestSite_renderSearchPage(t *testing.T) {
	site := newTestSite(nil)
	results := []index.Entry{
		{Title: "Gripper <v2>", Content: "Soft gripper with two fingers", URL: "/projects/gripper/", Type: "project"},
	}

	data, err := site.renderSearchPage("  grip  ", results)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	for _, want := range []string{
		`data-query="grip"`,
		`<h4><mark>Grip</mark>per &lt;v2&gt;</h4>`,
		`<p>Soft <mark>grip</mark>per with two fingers...</p>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("got %q, want contains %q", got, want)
		}
	}
}
