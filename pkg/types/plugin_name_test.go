// SPDX-License-Identifier: MPL-2.0

package types_test

import (
	"errors"
	"testing"

	"github.com/superapp-labs/superapp/pkg/types"
)

func TestPluginName_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value types.PluginName
		want  bool
	}{
		{name: "simple name", value: "blog", want: true},
		{name: "name with spaces", value: "Audit Log", want: true},
		{name: "empty", value: "", want: false},
		{name: "whitespace only", value: "   ", want: false},
		{name: "tab only", value: "\t", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, errs := tt.value.IsValid()
			if got != tt.want {
				t.Errorf("PluginName(%q).IsValid() = %v, want %v", tt.value, got, tt.want)
			}
			if !tt.want {
				if len(errs) != 1 {
					t.Fatalf("PluginName(%q).IsValid() returned %d errors, want 1", tt.value, len(errs))
				}
				if !errors.Is(errs[0], types.ErrInvalidPluginName) {
					t.Errorf("PluginName(%q).IsValid() error does not wrap ErrInvalidPluginName", tt.value)
				}
			}
		})
	}
}

func TestPluginName_String(t *testing.T) {
	t.Parallel()

	if got := types.PluginName("blog").String(); got != "blog" {
		t.Errorf("PluginName.String() = %q, want %q", got, "blog")
	}
}
