package urls

import (
	"errors"
	"testing"
)

func TestReverse(t *testing.T) {
	tests := []struct {
		name    string
		route   string
		args    []string
		want    string
		wantErr bool
	}{
		{"index", Index, nil, "/polls/", false},
		{"detail", Detail, []string{"0b9f5ac4-4d8e-4bde-9a1e-3f7cfa5e2d10"}, "/polls/0b9f5ac4-4d8e-4bde-9a1e-3f7cfa5e2d10/", false},
		{"detail escapes", Detail, []string{"a b"}, "/polls/a%20b/", false},
		{"detail missing arg", Detail, nil, "", true},
		{"index extra arg", Index, []string{"1"}, "", true},
		{"unknown route", "polls:results", nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Reverse(tt.route, tt.args...)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error, got path '%s'", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected '%s', got '%s'", tt.want, got)
			}
		})
	}
}

func TestReverse_ArgumentCountError(t *testing.T) {
	tests := []struct {
		route string
		args  []string
		want  string
	}{
		{Detail, nil, "route polls:detail: expected 1 argument(s), got 0"},
		{Detail, []string{"a", "b"}, "route polls:detail: expected 1 argument(s), got 2"},
		{Index, []string{"1"}, "route polls:index: expected 0 argument(s), got 1"},
	}

	for _, tt := range tests {
		_, err := Reverse(tt.route, tt.args...)
		if err == nil {
			t.Errorf("Expected error for %s with %d args", tt.route, len(tt.args))
			continue
		}
		if err.Error() != tt.want {
			t.Errorf("Expected error '%s', got '%s'", tt.want, err.Error())
		}
	}
}

func TestPattern_Unknown(t *testing.T) {
	_, err := Pattern("nope")
	if !errors.Is(err, ErrUnknownRoute) {
		t.Errorf("Expected ErrUnknownRoute, got %v", err)
	}
}

func TestMustPattern_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected MustPattern to panic for unknown route")
		}
	}()
	MustPattern("nope")
}
