package tradebook

import "testing"

func TestJSONObjectWriter(t *testing.T) {
	var w jsonObjectWriter
	w.Append("id", 1)
	w.EmbedFrom(struct {
		Name string `json:"name"`
	}{Name: "XYZ"})
	w.Optional("memo", "")     // zero value, skipped
	w.Optional("count", 3)     // non-zero, kept
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"id":1,"name":"XYZ","count":3}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJSONObjectWriter_empty(t *testing.T) {
	var w jsonObjectWriter
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "{}" {
		t.Errorf("got %s, want {}", got)
	}
}
