package index

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// DefaultPath is the URL path where a site publishes its search index.
const DefaultPath = "/search.json"

// Entry is a searchable document (a post or page) in the site's search index.
type Entry struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
	Type    string `json:"type"`
	Tags    Tags   `json:"tags,omitempty"`
	Excerpt string `json:"excerpt,omitempty"`
}

// Text is the text that queries are matched against.
func (e Entry) Text() string {
	return e.Title + " " + e.Content + " " + string(e.Tags)
}

// Tags is an entry's tag text. In JSON it is either a string or an array of strings; an
// array is joined with commas.
type Tags string

func (t *Tags) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Tags(s)
		return nil
	}
	var l []string
	if err := json.Unmarshal(data, &l); err != nil {
		return errors.New("tags must be a string or an array of strings")
	}
	*t = Tags(strings.Join(l, ","))
	return nil
}

// Index is an ordered search index. The zero value is an empty index.
type Index struct {
	entries []Entry
}

// New returns an index holding the entries in order.
func New(entries []Entry) *Index {
	return &Index{entries: entries}
}

// Len returns the number of entries in the index.
func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.entries)
}

// Entries returns the index entries in order. The caller must not modify them.
func (i *Index) Entries() []Entry {
	if i == nil {
		return nil
	}
	return i.entries
}

// Decode reads a JSON array of entries.
func Decode(r io.Reader) (*Index, error) {
	var entries []Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, errors.WithMessage(err, "decode search index")
	}
	return New(entries), nil
}

// Open reads the index at path in fs.
func Open(fs http.FileSystem, path string) (*Index, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	idx, err := Decode(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "open %s", path)
	}
	return idx, nil
}

// Fetch downloads the index from url using client (http.DefaultClient if nil).
func Fetch(ctx context.Context, client *http.Client, url string) (*Index, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, &os.PathError{Op: "Get", Path: url, Err: os.ErrNotExist}
	} else if resp.StatusCode != http.StatusOK {
		return nil, &os.PathError{Op: "Get", Path: url, Err: fmt.Errorf("HTTP response status code %d", resp.StatusCode)}
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	idx, err := Decode(bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithMessagef(err, "fetch %s", url)
	}
	return idx, nil
}
