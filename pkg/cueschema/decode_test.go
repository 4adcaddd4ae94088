// SPDX-License-Identifier: MPL-2.0

package cueschema_test

import (
	"strings"
	"testing"

	"github.com/superapp-labs/superapp/pkg/cueschema"
)

const testSchema = `
#Widget: {
	name:  string & !=""
	count: int & >=0
	tags?: [...string]
}
`

type widget struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Tags  []string `json:"tags,omitempty"`
}

func TestDecode_Valid(t *testing.T) {
	t.Parallel()

	data := []byte(`
name:  "gear"
count: 3
tags: ["small", "metal"]
`)

	got, err := cueschema.Decode[widget]([]byte(testSchema), data, "#Widget")
	if err != nil {
		t.Fatalf("Decode() returned error: %v", err)
	}
	if got.Name != "gear" || got.Count != 3 || len(got.Tags) != 2 {
		t.Errorf("Decode() = %+v, want gear/3/[small metal]", got)
	}
}

func TestDecode_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		wantPart string
	}{
		{name: "wrong type", data: `name: "gear"` + "\n" + `count: "three"`, wantPart: "count"},
		{name: "missing required field", data: `name: "gear"`, wantPart: "count"},
		{name: "empty name", data: `name: ""` + "\n" + `count: 1`, wantPart: "name"},
		{name: "syntax error", data: `name: "gear`, wantPart: "widget.cue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := cueschema.Decode[widget]([]byte(testSchema), []byte(tt.data), "#Widget", cueschema.WithFilename("widget.cue"))
			if err == nil {
				t.Fatal("Decode() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantPart) {
				t.Errorf("Decode() error = %q, want mention of %q", err, tt.wantPart)
			}
		})
	}
}

func TestDecode_FileSizeLimit(t *testing.T) {
	t.Parallel()

	data := []byte(`name: "gear"` + "\n" + `count: 1`)
	_, err := cueschema.Decode[widget]([]byte(testSchema), data, "#Widget", cueschema.WithMaxFileSize(4))
	if err == nil {
		t.Fatal("Decode() succeeded, want size limit error")
	}
	if !strings.Contains(err.Error(), "exceeds maximum") {
		t.Errorf("Decode() error = %q, want size limit message", err)
	}
}

func TestDecode_UnknownSchemaPath(t *testing.T) {
	t.Parallel()

	_, err := cueschema.Decode[widget]([]byte(testSchema), []byte(`name: "x"`), "#Missing")
	if err == nil {
		t.Fatal("Decode() succeeded, want internal schema error")
	}
	if !strings.Contains(err.Error(), "internal error") {
		t.Errorf("Decode() error = %q, want internal error message", err)
	}
}
