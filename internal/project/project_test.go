package project

import (
	"strings"
	"sync"
	"testing"

	"github.com/glennib/z157/fieldset"
)

const user = `{"name":"Ford Prefect","bio":{"year_of_birth":1779,"height_cm":180},"last_seen":"1979-12-28"}`

func TestProject(t *testing.T) {
	tests := []struct {
		name   string
		filter string
		doc    string
		want   string
	}{
		{
			name:   "include top level",
			filter: "(name)",
			doc:    user,
			want:   `{"name":"Ford Prefect"}`,
		},
		{
			name:   "include nested",
			filter: "(bio(height_cm),last_seen)",
			doc:    user,
			want:   `{"bio":{"height_cm":180},"last_seen":"1979-12-28"}`,
		},
		{
			name:   "include whole object",
			filter: "(bio)",
			doc:    user,
			want:   `{"bio":{"year_of_birth":1779,"height_cm":180}}`,
		},
		{
			name:   "include follows filter order",
			filter: "(last_seen,name)",
			doc:    user,
			want:   `{"last_seen":"1979-12-28","name":"Ford Prefect"}`,
		},
		{
			name:   "include ignores unknown fields",
			filter: "(name,nickname,bio(weight))",
			doc:    user,
			want:   `{"name":"Ford Prefect","bio":{}}`,
		},
		{
			name:   "include merges duplicate siblings",
			filter: "(bio(height_cm),bio(year_of_birth))",
			doc:    user,
			want:   `{"bio":{"height_cm":180,"year_of_birth":1779}}`,
		},
		{
			name:   "exclude leaf",
			filter: "!(bio)",
			doc:    user,
			want:   `{"name":"Ford Prefect","last_seen":"1979-12-28"}`,
		},
		{
			name:   "exclude nested leaf",
			filter: "!(bio(year_of_birth),last_seen)",
			doc:    user,
			want:   `{"name":"Ford Prefect","bio":{"height_cm":180}}`,
		},
		{
			name:   "exclude ignores unknown fields",
			filter: "!(nickname,bio(weight))",
			doc:    user,
			want:   user,
		},
		{
			name:   "exclude repeated key",
			filter: "!(secret)",
			doc:    `{"secret":1,"secret":2,"x":3}`,
			want:   `{"x":3}`,
		},
		{
			name:   "exclude repeated nested key",
			filter: "!(a(s))",
			doc:    `{"a":{"s":1,"t":0,"s":2}}`,
			want:   `{"a":{"t":0}}`,
		},
		{
			name:   "include through arrays",
			filter: "(items(id))",
			doc:    `{"items":[{"id":1,"x":true},{"id":2,"x":false}],"total":2}`,
			want:   `{"items":[{"id":1},{"id":2}]}`,
		},
		{
			name:   "exclude through arrays",
			filter: "!(items(x))",
			doc:    `{"items":[{"id":1,"x":true},{"id":2,"x":false}],"total":2}`,
			want:   `{"items":[{"id":1},{"id":2}],"total":2}`,
		},
		{
			name:   "top-level array",
			filter: "(id)",
			doc:    `[{"id":1,"x":1},{"id":2}]`,
			want:   `[{"id":1},{"id":2}]`,
		},
		{
			name:   "scalar under nested filter is kept",
			filter: "(name(first))",
			doc:    user,
			want:   `{"name":"Ford Prefect"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := fieldset.Parse(tt.filter)
			if err != nil {
				t.Fatalf("unexpected parse error: %v", err)
			}
			got, err := New(tree).Project([]byte(tt.doc))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestProjectInvalidJSON(t *testing.T) {
	_, err := New(fieldset.MustParse("(a)")).Project([]byte(`{"a":`))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "failed to parse JSON document") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestProjectorReuse(t *testing.T) {
	p := New(fieldset.MustParse("!(x)"))
	docs := []string{`{"x":1,"y":2}`, `[{"x":1},{"y":3}]`, `{"y":{"x":4}}`}
	want := []string{`{"y":2}`, `[{},{"y":3}]`, `{"y":{"x":4}}`}

	for i, doc := range docs {
		got, err := p.Project([]byte(doc))
		if err != nil {
			t.Fatalf("document %d: unexpected error: %v", i, err)
		}
		if string(got) != want[i] {
			t.Errorf("document %d: got %s, want %s", i, got, want[i])
		}
	}
}

func TestProjectorConcurrent(t *testing.T) {
	p := New(fieldset.MustParse("(bio(height_cm))"))
	want := `{"bio":{"height_cm":180}}`

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := p.Project([]byte(user))
			if err != nil {
				errs <- err.Error()
				return
			}
			if string(got) != want {
				errs <- string(got)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Errorf("unexpected result: %s", msg)
	}
}
