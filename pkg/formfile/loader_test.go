package formfile

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formkit/pkg/form"
)

const albumDefinition = `
variants:
  album:
    fields:
      - name: title
        checks:
          - rule: required
            message: Album title is not present
      - name: release_year
        type: integer
    nested:
      - attr: artist
        variant: artist
  artist:
    fields:
      - name: name
        checks:
          - rule: required
            message: Artist name is not present
`

func loadSet(t *testing.T, fsys fstest.MapFS, options ...Option) *Set {
	t.Helper()
	set, err := LoadFS(fsys, options...)
	if err != nil {
		t.Fatalf("load definitions: %v", err)
	}
	return set
}

func TestLoadFS_ResolvesVariantsAndNesting(t *testing.T) {
	fsys := fstest.MapFS{
		"forms/music.yaml": &fstest.MapFile{Data: []byte(albumDefinition)},
	}

	set := loadSet(t, fsys)

	if diff := cmp.Diff([]string{"album", "artist"}, set.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	album := set.MustVariant("album")
	f, err := album.New(form.Values{
		"title":        "",
		"release_year": "1977",
		"artist":       form.Values{"name": ""},
	})
	if err != nil {
		t.Fatalf("build form: %v", err)
	}

	if got := f.Int("release_year"); got != 1977 {
		t.Fatalf("integer coercion from file declaration: got %v", got)
	}

	if f.Valid() {
		t.Fatal("expected invalid tree")
	}
	want := []string{
		"Album title is not present",
		"Artist name is not present",
	}
	if diff := cmp.Diff(want, f.Errors().Sorted()); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFS_JSONDocumentsParse(t *testing.T) {
	fsys := fstest.MapFS{
		"artist.json": &fstest.MapFile{Data: []byte(`{
			"variants": {
				"artist": {
					"fields": [{"name": "name", "type": "string"}]
				}
			}
		}`)},
	}

	set := loadSet(t, fsys)
	if _, ok := set.Variant("artist"); !ok {
		t.Fatal("JSON definition not loaded")
	}
}

func TestLoadFS_HandlersAttachAtLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"music.yaml": &fstest.MapFile{Data: []byte(albumDefinition)},
	}

	ran := false
	set := loadSet(t, fsys, WithHandler("artist", form.Hooks{
		OnExecute: func(*form.Form) error {
			ran = true
			return nil
		},
	}))

	f, err := set.MustVariant("artist").New(form.Values{"name": "Eno"})
	if err != nil {
		t.Fatalf("build form: %v", err)
	}
	if _, err := f.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !ran {
		t.Fatal("load-time handler did not execute")
	}
}

func TestLoadFS_UnknownNestedReference(t *testing.T) {
	fsys := fstest.MapFS{
		"music.yaml": &fstest.MapFile{Data: []byte(`
variants:
  album:
    fields:
      - name: title
    nested:
      - attr: artist
        variant: missing
`)},
	}

	_, err := LoadFS(fsys)
	if err == nil || !strings.Contains(err.Error(), `"missing"`) {
		t.Fatalf("expected unknown reference error, got %v", err)
	}
}

func TestLoadFS_ReferenceCycle(t *testing.T) {
	fsys := fstest.MapFS{
		"music.yaml": &fstest.MapFile{Data: []byte(`
variants:
  album:
    fields:
      - name: title
    nested:
      - attr: artist
        variant: artist
  artist:
    fields:
      - name: name
    nested:
      - attr: album
        variant: album
`)},
	}

	_, err := LoadFS(fsys)
	if err == nil || !strings.Contains(err.Error(), "cycle") {
		t.Fatalf("expected cycle error, got %v", err)
	}
}

func TestLoadFS_UnknownTypeSurfacesNoCoercion(t *testing.T) {
	fsys := fstest.MapFS{
		"music.yaml": &fstest.MapFile{Data: []byte(`
variants:
  album:
    fields:
      - name: released_on
        type: datetime
`)},
	}

	_, err := LoadFS(fsys)
	if err == nil || !strings.Contains(err.Error(), "datetime") {
		t.Fatalf("expected no-coercion error naming the tag, got %v", err)
	}
}

func TestLoadFS_DuplicateVariantAcrossFiles(t *testing.T) {
	definition := `
variants:
  album:
    fields:
      - name: title
`
	fsys := fstest.MapFS{
		"a.yaml": &fstest.MapFile{Data: []byte(definition)},
		"b.yaml": &fstest.MapFile{Data: []byte(definition)},
	}

	if _, err := LoadFS(fsys); err == nil {
		t.Fatal("expected duplicate declaration error")
	}
}

func TestLoadFS_DefaultMessagesAreDerivedAndSanitized(t *testing.T) {
	fsys := fstest.MapFS{
		"music.yaml": &fstest.MapFile{Data: []byte(`
variants:
  album:
    fields:
      - name: release_year
        checks:
          - rule: required
      - name: title
        label: "<b>Album title</b>"
        checks:
          - rule: required
`)},
	}

	set := loadSet(t, fsys)
	f, err := set.MustVariant("album").New(form.Values{})
	if err != nil {
		t.Fatalf("build form: %v", err)
	}
	f.Valid()

	if !f.Errors().Has("Release year is not present") {
		t.Fatalf("derived message missing, got %v", f.Errors().Messages())
	}
	if !f.Errors().Has("Album title is not present") {
		t.Fatalf("sanitized label message missing, got %v", f.Errors().Messages())
	}
}

func TestLoadFS_NilFSYieldsEmptySet(t *testing.T) {
	set, err := LoadFS(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !set.Empty() {
		t.Fatal("expected empty set")
	}
}

func TestLoadFS_HandlerForUndeclaredVariant(t *testing.T) {
	fsys := fstest.MapFS{
		"music.yaml": &fstest.MapFile{Data: []byte(albumDefinition)},
	}

	_, err := LoadFS(fsys, WithHandler("producer", form.NopHandler{}))
	if err == nil || !strings.Contains(err.Error(), `"producer"`) {
		t.Fatalf("expected undeclared handler error, got %v", err)
	}
}
