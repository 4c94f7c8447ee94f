package bootstrap_test

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-bootstrapforms/pkg/bootstrap"
	"github.com/goliatone/go-bootstrapforms/pkg/controls"
	"github.com/goliatone/go-bootstrapforms/pkg/markup"
	"github.com/goliatone/go-bootstrapforms/pkg/record"
	"github.com/goliatone/go-bootstrapforms/pkg/testsupport"
)

func TestTextField_DefaultChrome(t *testing.T) {
	builder := newBuilder(t, "post", testsupport.PostRecord())

	got, err := builder.TextField("title", bootstrap.FieldOptions{})
	if err != nil {
		t.Fatalf("text field: %v", err)
	}

	want := `<div class="control-group"><label class="control-label required" for="post_title">Title</label>` +
		`<div class="controls"><input type="text" value="Hello" name="post[title]" id="post_title" /></div></div>`
	if diff := cmp.Diff(want, got.String()); diff != "" {
		t.Fatalf("markup mismatch (-want +got):\n%s", diff)
	}
}

func TestField_NoErrorsMeansNoErrorState(t *testing.T) {
	builder := newBuilder(t, "post", testsupport.PostRecord())

	opts := bootstrap.ParseOptions(map[string]any{
		"error":      "explicitly broken",
		"help_block": "Shown below",
		"prepend":    "@",
	})
	got, err := builder.TextField("title", opts)
	if err != nil {
		t.Fatalf("text field: %v", err)
	}
	if n := testsupport.CountClass(got.String(), "error"); n != 0 {
		t.Fatalf("expected no error class, found %d in %s", n, got)
	}
	if strings.Contains(got.String(), "explicitly broken") {
		t.Fatalf("expected error option to be ignored, got %s", got)
	}
	if !strings.Contains(got.String(), `<p class="help-block">Shown below</p>`) {
		t.Fatalf("expected block help, got %s", got)
	}
}

func TestField_ErrorMessagesFollowUppercaseRule(t *testing.T) {
	rec := testsupport.PostRecord()
	rec.Add("title", "is too short")
	rec.Add("title", "Headline must be unique")
	builder := newBuilder(t, "post", rec)

	got, err := builder.TextField("title", bootstrap.FieldOptions{})
	if err != nil {
		t.Fatalf("text field: %v", err)
	}

	if !strings.HasPrefix(got.String(), `<div class="control-group error">`) {
		t.Fatalf("expected error group, got %s", got)
	}
	want := `<span class="help-inline">Title is too short, Headline must be unique</span>`
	if !strings.Contains(got.String(), want) {
		t.Fatalf("expected %s in %s", want, got)
	}
}

func TestField_StatePrecedence(t *testing.T) {
	rec := testsupport.PostRecord()
	builder := newBuilder(t, "post", rec)

	got, err := builder.TextField("body", bootstrap.FieldOptions{Success: "Looks good", Warning: "Too long"})
	if err != nil {
		t.Fatalf("text field: %v", err)
	}
	if !strings.HasPrefix(got.String(), `<div class="control-group success">`) {
		t.Fatalf("expected success group, got %s", got)
	}
	if strings.Contains(got.String(), "Too long") {
		t.Fatalf("expected only the active state's text, got %s", got)
	}

	rec.Add("body", "is missing a summary")
	got, err = builder.TextField("body", bootstrap.FieldOptions{Success: "Looks good"})
	if err != nil {
		t.Fatalf("text field: %v", err)
	}
	for _, class := range []string{"success", "warning"} {
		if n := testsupport.CountClass(got.String(), class); n != 0 {
			t.Fatalf("expected no %s class once the record has errors, got %s", class, got)
		}
	}
	if testsupport.CountClass(got.String(), "error") != 1 {
		t.Fatalf("expected exactly one error class, got %s", got)
	}
}

func TestField_PrependWinsOverAppend(t *testing.T) {
	builder := newBuilder(t, "post", testsupport.PostRecord())

	got, err := builder.TextField("title", bootstrap.FieldOptions{Prepend: "@", Append: ".00"})
	if err != nil {
		t.Fatalf("text field: %v", err)
	}

	if n := testsupport.CountClass(got.String(), "input-prepend"); n != 1 {
		t.Fatalf("expected one prepend wrapper, got %d", n)
	}
	if n := testsupport.CountClass(got.String(), "input-append"); n != 0 {
		t.Fatalf("expected no append wrapper, got %d", n)
	}
	want := `<div class="controls"><div class="input-prepend"><span class="add-on">@</span>` +
		`<input type="text" value="Hello" name="post[title]" id="post_title" />` +
		`<span class="add-on">.00</span></div></div>`
	if !strings.Contains(got.String(), want) {
		t.Fatalf("unexpected wrapper layout:\n%s", got)
	}
}

func TestField_DecorationOrder(t *testing.T) {
	rec := testsupport.PostRecord()
	rec.Add("title", "is reserved")
	builder := newBuilder(t, "post", rec)

	got, err := builder.TextField("title", bootstrap.FieldOptions{
		Append:         "!",
		HelpInline:     "inline",
		HelpBlock:      "block",
		HelpBlockClass: "muted",
		Label:          "Headline",
		Attrs:          markup.Attrs("class", "span4"),
	})
	if err != nil {
		t.Fatalf("text field: %v", err)
	}

	want := `<div class="control-group error">` +
		`<label class="control-label required" for="post_title">Headline</label>` +
		`<div class="controls"><div class="input-append">` +
		`<input type="text" value="Hello" name="post[title]" id="post_title" class="span4" />` +
		`<span class="add-on">!</span>` +
		`<span class="help-inline">inline</span>` +
		`<span class="help-inline">Title is reserved</span>` +
		`<p class="help-block muted">block</p>` +
		`</div></div></div>`
	if diff := cmp.Diff(want, got.String()); diff != "" {
		t.Fatalf("markup mismatch (-want +got):\n%s", diff)
	}
}

func TestField_NoLabel(t *testing.T) {
	builder := newBuilder(t, "post", testsupport.PostRecord())

	got, err := builder.TextArea("body", bootstrap.ParseOptions(map[string]any{"label": false, "rows": 3}))
	if err != nil {
		t.Fatalf("text area: %v", err)
	}
	want := `<div class="control-group"><div class="controls">` +
		`<textarea name="post[body]" id="post_body" rows="3">First post</textarea></div></div>`
	if diff := cmp.Diff(want, got.String()); diff != "" {
		t.Fatalf("markup mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckBox_LabelWrapsControl(t *testing.T) {
	builder := newBuilder(t, "post", testsupport.PostRecord())

	got, err := builder.CheckBox("published", bootstrap.FieldOptions{})
	if err != nil {
		t.Fatalf("check box: %v", err)
	}
	want := `<div class="control-group"><div class="controls"><label class="checkbox" for="post_published">` +
		`<input name="post[published]" type="hidden" value="0" />` +
		`<input type="checkbox" value="1" name="post[published]" id="post_published" checked="checked" />` +
		`Published</label></div></div>`
	if diff := cmp.Diff(want, got.String()); diff != "" {
		t.Fatalf("markup mismatch (-want +got):\n%s", diff)
	}
}

func TestRadioButtons_JoinsItemsWithSpace(t *testing.T) {
	builder := newBuilder(t, "post", testsupport.PostRecord())

	got, err := builder.RadioButtons("category", []controls.Choice{
		{Text: "News", Value: "news"},
		{Text: "Blog", Value: "blog"},
	}, bootstrap.FieldOptions{})
	if err != nil {
		t.Fatalf("radio buttons: %v", err)
	}

	want := `<div class="control-group"><label class="control-label" for="post_category">Category</label>` +
		`<div class="controls">` +
		`<label class="radio" for="post_category_news"><input type="radio" value="news" name="post[category]" id="post_category_news" checked="checked" />News</label>` +
		` ` +
		`<label class="radio" for="post_category_blog"><input type="radio" value="blog" name="post[category]" id="post_category_blog" />Blog</label>` +
		`</div></div>`
	if diff := cmp.Diff(want, got.String()); diff != "" {
		t.Fatalf("markup mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectionCheckBoxes_ChecksCurrentIDs(t *testing.T) {
	builder := newBuilder(t, "post", testsupport.PostRecord())

	items := []any{
		map[string]any{"id": 1, "name": "A"},
		map[string]any{"id": 2, "name": "B"},
	}
	got, err := builder.CollectionCheckBoxes("tags", items, "id", "name", bootstrap.FieldOptions{})
	if err != nil {
		t.Fatalf("collection check boxes: %v", err)
	}

	want := `<div class="control-group"><label class="control-label" for="post_tags">Tags</label>` +
		`<div class="controls">` +
		`<label class="checkbox"><input type="checkbox" value="1" name="post[tags][]" id="post_tags_1" checked="checked" /><span>A</span></label>` +
		` ` +
		`<label class="checkbox"><input type="checkbox" value="2" name="post[tags][]" id="post_tags_2" /><span>B</span></label>` +
		`</div></div>`
	if diff := cmp.Diff(want, got.String()); diff != "" {
		t.Fatalf("markup mismatch (-want +got):\n%s", diff)
	}
}

type tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestCollectionRadioButtons_InlineStructItems(t *testing.T) {
	rec := testsupport.PostRecord()
	rec.Set("tags", 2)
	builder := newBuilder(t, "post", rec)

	items := []any{tag{ID: 1, Name: "Go"}, &tag{ID: 2, Name: "Rust"}}
	got, err := builder.CollectionRadioButtons("tags", items, "id", "name", bootstrap.FieldOptions{
		Inline:    true,
		HelpBlock: "Pick one",
	})
	if err != nil {
		t.Fatalf("collection radio buttons: %v", err)
	}

	if n := testsupport.CountClass(got.String(), "inline"); n != 2 {
		t.Fatalf("expected two inline labels, got %d", n)
	}
	if !strings.Contains(got.String(), `<input type="radio" value="2" name="post[tags]" id="post_tags_2" checked="checked" />`) {
		t.Fatalf("expected the current id checked, got %s", got)
	}
	if strings.Contains(got.String(), `id="post_tags_1" checked`) {
		t.Fatalf("expected other ids unchecked, got %s", got)
	}
	if !strings.HasSuffix(got.String(), `</div><p class="help-block">Pick one</p></div>`) {
		t.Fatalf("expected block help after the controls div, got %s", got)
	}
}

func TestCollectionCheckBoxes_UnknownAccessor(t *testing.T) {
	builder := newBuilder(t, "post", testsupport.PostRecord())

	_, err := builder.CollectionCheckBoxes("tags", []any{map[string]any{"id": 1}}, "id", "title", bootstrap.FieldOptions{})
	if err == nil {
		t.Fatalf("expected missing accessor to fail")
	}
}

func TestUneditableInput(t *testing.T) {
	builder := newBuilder(t, "post", testsupport.PostRecord())

	got, err := builder.UneditableInput("title", bootstrap.FieldOptions{})
	if err != nil {
		t.Fatalf("uneditable input: %v", err)
	}
	if !strings.Contains(got.String(), `<div class="controls"><span class="uneditable-input">Hello</span></div>`) {
		t.Fatalf("unexpected markup %s", got)
	}

	got, err = builder.UneditableInput("title", bootstrap.FieldOptions{Value: "<override>"})
	if err != nil {
		t.Fatalf("uneditable input: %v", err)
	}
	if !strings.Contains(got.String(), `<span class="uneditable-input">&lt;override&gt;</span>`) {
		t.Fatalf("expected escaped override, got %s", got)
	}
}

func TestSubmit_ForcesClassAndAppendsOneCancel(t *testing.T) {
	builder := newBuilder(t, "post", testsupport.PostRecord())

	got, err := builder.Submit("", bootstrap.FieldOptions{Attrs: markup.Attrs("class", "btn-large", "data-disable", "true")})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	want := `<div class="form-actions">` +
		`<input type="submit" name="commit" value="Create Post" data-disable="true" class="btn btn-primary" />` +
		` <button type="reset" class="btn cancel">Cancel</button></div>`
	if diff := cmp.Diff(want, got.String()); diff != "" {
		t.Fatalf("markup mismatch (-want +got):\n%s", diff)
	}
	if n := testsupport.CountClass(got.String(), "cancel"); n != 1 {
		t.Fatalf("expected exactly one cancel control, got %d", n)
	}
	if strings.Contains(got.String(), "btn-large") {
		t.Fatalf("expected caller class to be replaced")
	}
}

func TestSubmit_PersistedRecordUsesUpdateCaption(t *testing.T) {
	rec := record.NewModel("post", record.WithPersisted(true))
	builder := newBuilder(t, "post", rec, bootstrap.WithLocale("es"))

	got, err := builder.Submit("", bootstrap.FieldOptions{})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !strings.Contains(got.String(), `value="Actualizar Post"`) {
		t.Fatalf("expected localized update caption, got %s", got)
	}
	if !strings.Contains(got.String(), `>Cancelar</button>`) {
		t.Fatalf("expected localized cancel label, got %s", got)
	}
}

func TestErrorMessages_FlattensAndDeduplicates(t *testing.T) {
	rec := record.NewModel("person")
	rec.Add("name", "can't be blank")
	rec.Add("address", map[string]any{"city": "is required"})
	rec.Add("name", "can't be blank")
	builder := newBuilder(t, "person", rec)

	got, err := builder.ErrorMessages()
	if err != nil {
		t.Fatalf("error messages: %v", err)
	}

	want := `<div class="alert alert-block alert-error validation-errors">` +
		`<h4 class="alert-heading">Your Person is invalid.</h4>` +
		`<ul><li>Name can&#39;t be blank</li><li>City is required</li></ul></div>`
	if diff := cmp.Diff(want, got.String()); diff != "" {
		t.Fatalf("markup mismatch (-want +got):\n%s", diff)
	}
}

func TestErrorMessages_EmptyWithoutErrors(t *testing.T) {
	builder := newBuilder(t, "post", testsupport.PostRecord())

	got, err := builder.ErrorMessages()
	if err != nil {
		t.Fatalf("error messages: %v", err)
	}
	if !got.Empty() {
		t.Fatalf("expected empty fragment, got %q", got)
	}
}

func TestInvalidErrorShapePropagates(t *testing.T) {
	cases := map[string]any{
		"number": 42,
		"nested": map[string]any{"street": map[string]any{"line1": "is blank"}},
	}
	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			rec := testsupport.PostRecord()
			rec.Add("title", value)
			builder := newBuilder(t, "post", rec)

			if _, err := builder.TextField("title", bootstrap.FieldOptions{}); !errors.Is(err, record.ErrInvalidErrorShape) {
				t.Fatalf("expected ErrInvalidErrorShape from field, got %v", err)
			}
			if _, err := builder.ErrorMessages(); !errors.Is(err, record.ErrInvalidErrorShape) {
				t.Fatalf("expected ErrInvalidErrorShape from summary, got %v", err)
			}
		})
	}
}

func TestParseOptions_StripsDecorationKeys(t *testing.T) {
	opts := bootstrap.ParseOptions(map[string]any{
		"label":            "Headline",
		"help_inline":      "hint",
		"help_block":       "more",
		"help_block_class": "muted",
		"error":            "ignored",
		"success":          "ok",
		"warning":          "careful",
		"prepend":          "@",
		"append":           "!",
		"inline":           "1",
		"placeholder":      "Title",
		"class":            "span4",
		"disabled":         true,
		"readonly":         false,
	})

	want := markup.Attrs("class", "span4", "disabled", "disabled", "placeholder", "Title")
	if diff := cmp.Diff(want, opts.Attrs); diff != "" {
		t.Fatalf("attrs mismatch (-want +got):\n%s", diff)
	}
	for _, key := range bootstrap.DecorationKeys {
		if _, ok := opts.Attrs.Get(key); ok {
			t.Fatalf("decoration key %q leaked into attributes", key)
		}
	}
	if opts.Label != "Headline" || opts.HelpBlockClass != "muted" || !opts.Inline || opts.Prepend != "@" {
		t.Fatalf("unexpected typed options %+v", opts)
	}
}

func TestDecorationPolicy(t *testing.T) {
	icon := `<i class="icon-envelope"></i><script>alert(1)</script>`

	escaped := newBuilder(t, "post", testsupport.PostRecord())
	got, err := escaped.TextField("title", bootstrap.FieldOptions{Prepend: icon})
	if err != nil {
		t.Fatalf("text field: %v", err)
	}
	if !strings.Contains(got.String(), `<span class="add-on">&lt;i class=&#34;icon-envelope&#34;&gt;`) {
		t.Fatalf("expected escaped add-on without a policy, got %s", got)
	}

	sanitized := newBuilder(t, "post", testsupport.PostRecord(), bootstrap.WithDecorationPolicy(markup.DecorationPolicy()))
	got, err = sanitized.TextField("title", bootstrap.FieldOptions{Prepend: icon})
	if err != nil {
		t.Fatalf("text field: %v", err)
	}
	if !strings.Contains(got.String(), `<span class="add-on"><i class="icon-envelope"></i></span>`) {
		t.Fatalf("expected sanitized icon markup, got %s", got)
	}
	if strings.Contains(got.String(), "script") {
		t.Fatalf("expected script to be stripped, got %s", got)
	}
}

func TestFieldsFor_NestedNames(t *testing.T) {
	builder := newBuilder(t, "post", testsupport.PostRecord())
	author := record.NewModel("author", record.WithValues(map[string]any{"name": "Ada"}))

	got, err := builder.FieldsFor("author", author).TextField("name", bootstrap.FieldOptions{})
	if err != nil {
		t.Fatalf("text field: %v", err)
	}
	if !strings.Contains(got.String(), `name="post[author][name]" id="post_author_name"`) {
		t.Fatalf("unexpected nested naming %s", got)
	}
	if !strings.Contains(got.String(), `for="post_author_name"`) {
		t.Fatalf("expected label to target nested id, got %s", got)
	}
}

func TestWithControls_UsesInjectedPrimitives(t *testing.T) {
	stub := &recordingControls{}
	builder := newBuilder(t, "post", testsupport.PostRecord(), bootstrap.WithControls(stub))

	if _, err := builder.EmailField("title", bootstrap.ParseOptions(map[string]any{"help_inline": "x", "placeholder": "p"})); err != nil {
		t.Fatalf("email field: %v", err)
	}
	if len(stub.inputs) != 1 {
		t.Fatalf("expected one control render, got %d", len(stub.inputs))
	}
	input := stub.inputs[0]
	if input.Variant != controls.VariantEmailField || input.Name != "post[title]" || input.ID != "post_title" {
		t.Fatalf("unexpected input %+v", input)
	}
	if diff := cmp.Diff(markup.Attrs("placeholder", "p"), input.Attrs); diff != "" {
		t.Fatalf("attrs mismatch (-want +got):\n%s", diff)
	}
}

func newBuilder(t *testing.T, object string, rec record.Record, options ...bootstrap.Option) *bootstrap.FormBuilder {
	t.Helper()
	builder, err := bootstrap.New(object, rec, options...)
	if err != nil {
		t.Fatalf("new builder: %v", err)
	}
	return builder
}

type recordingControls struct {
	inputs []controls.Input
}

func (r *recordingControls) Render(input controls.Input) (markup.Fragment, error) {
	r.inputs = append(r.inputs, input)
	return markup.Raw("<control>"), nil
}

func TestNew_ConcurrentBuilders(t *testing.T) {
	const workers = 16
	inline := controls.WithPartials(map[string]string{
		controls.PartialInput: `<input data-inline{{ attrs|html_attrs }} />`,
	})

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var options []bootstrap.Option
			if i%2 == 1 {
				options = append(options, bootstrap.WithControlOptions(inline))
			}
			builder, err := bootstrap.New("post", testsupport.PostRecord(), options...)
			if err != nil {
				errs <- err
				return
			}
			got, err := builder.TextField("title", bootstrap.FieldOptions{})
			if err != nil {
				errs <- err
				return
			}
			if !strings.Contains(got.String(), `name="post[title]" id="post_title" />`) {
				errs <- fmt.Errorf("worker %d: unexpected markup %s", i, got)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent render: %v", err)
	}
}

func TestWithControlOptions_InlinePartial(t *testing.T) {
	builder := newBuilder(t, "post", testsupport.PostRecord(), bootstrap.WithControlOptions(
		controls.WithPartials(map[string]string{
			controls.PartialInput: `<input data-inline{{ attrs|html_attrs }} />`,
		}),
	))

	got, err := builder.TextField("title", bootstrap.FieldOptions{})
	if err != nil {
		t.Fatalf("text field: %v", err)
	}
	want := `<input data-inline type="text" value="Hello" name="post[title]" id="post_title" />`
	if !strings.Contains(got.String(), want) {
		t.Fatalf("expected inline partial output %s in %s", want, got)
	}
}

type shortID [2]byte

func (s shortID) String() string {
	return fmt.Sprintf("%x", s[:])
}

func TestCollectionCheckBoxes_TypedSliceValues(t *testing.T) {
	cases := []struct {
		name  string
		value any
		items []any
		hit   string
		miss  string
	}{
		{name: "int64", value: []int64{1}, hit: "post_tags_1", miss: "post_tags_2"},
		{name: "uint", value: []uint{2}, hit: "post_tags_2", miss: "post_tags_1"},
		{name: "array", value: [1]int{1}, hit: "post_tags_1", miss: "post_tags_2"},
		{name: "nested", value: []any{[]int64{2}}, hit: "post_tags_2", miss: "post_tags_1"},
		{
			name:  "byte ids stay whole",
			value: []shortID{{0xab, 0x01}},
			items: []any{
				map[string]any{"id": "ab01", "name": "A"},
				map[string]any{"id": "cd02", "name": "B"},
			},
			hit:  "post_tags_ab01",
			miss: "post_tags_cd02",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := testsupport.PostRecord()
			rec.Set("tags", tc.value)
			builder := newBuilder(t, "post", rec)

			items := tc.items
			if items == nil {
				items = []any{
					map[string]any{"id": 1, "name": "A"},
					map[string]any{"id": 2, "name": "B"},
				}
			}
			got, err := builder.CollectionCheckBoxes("tags", items, "id", "name", bootstrap.FieldOptions{})
			if err != nil {
				t.Fatalf("collection check boxes: %v", err)
			}
			if !strings.Contains(got.String(), `id="`+tc.hit+`" checked="checked"`) {
				t.Fatalf("expected %s checked in %s", tc.hit, got)
			}
			if strings.Contains(got.String(), `id="`+tc.miss+`" checked`) {
				t.Fatalf("expected %s unchecked in %s", tc.miss, got)
			}
		})
	}
}

func TestFieldVariants(t *testing.T) {
	categories := []controls.Choice{
		{Text: "News", Value: "news"},
		{Text: "Blog", Value: "blog"},
	}
	cases := []struct {
		name   string
		render func(*bootstrap.FormBuilder) (markup.Fragment, error)
		want   string
	}{
		{
			name: "hidden field has no chrome",
			render: func(b *bootstrap.FormBuilder) (markup.Fragment, error) {
				return b.HiddenField("title", bootstrap.FieldOptions{})
			},
			want: `<input type="hidden" value="Hello" name="post[title]" id="post_title" />`,
		},
		{
			name: "select with prompt",
			render: func(b *bootstrap.FormBuilder) (markup.Fragment, error) {
				return b.Select("category", categories, bootstrap.FieldOptions{Prompt: "Choose one"})
			},
			want: `<div class="control-group"><label class="control-label" for="post_category">Category</label>` +
				`<div class="controls"><select name="post[category]" id="post_category">` +
				`<option value="">Choose one</option>` +
				`<option value="news" selected="selected">News</option>` +
				`<option value="blog">Blog</option>` +
				`</select></div></div>`,
		},
		{
			name: "collection select",
			render: func(b *bootstrap.FormBuilder) (markup.Fragment, error) {
				return b.CollectionSelect("category", []any{
					map[string]any{"slug": "news", "title": "News"},
					map[string]any{"slug": "blog", "title": "Blog"},
				}, "slug", "title", bootstrap.FieldOptions{})
			},
			want: `<div class="control-group"><label class="control-label" for="post_category">Category</label>` +
				`<div class="controls"><select name="post[category]" id="post_category">` +
				`<option value="news" selected="selected">News</option>` +
				`<option value="blog">Blog</option>` +
				`</select></div></div>`,
		},
		{
			name: "warning state",
			render: func(b *bootstrap.FormBuilder) (markup.Fragment, error) {
				return b.TextField("body", bootstrap.FieldOptions{Warning: "Check spelling"})
			},
			want: `<div class="control-group warning"><label class="control-label" for="post_body">Body</label>` +
				`<div class="controls"><input type="text" value="First post" name="post[body]" id="post_body" />` +
				`<span class="help-inline">Check spelling</span></div></div>`,
		},
	}

	builder := newBuilder(t, "post", testsupport.PostRecord())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.render(builder)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if diff := cmp.Diff(tc.want, got.String()); diff != "" {
				t.Fatalf("markup mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
