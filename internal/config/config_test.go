package config

import (
	"errors"
	"testing"

	"minigrep/internal/model"
)

func envWith(vars map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		env         map[string]string
		want        model.Config
		wantMissing string
	}{
		{
			name: "query and path",
			args: []string{"to", "poem.txt"},
			want: model.Config{Query: "to", FilePath: "poem.txt"},
		},
		{
			name: "extra arguments ignored",
			args: []string{"to", "poem.txt", "extra"},
			want: model.Config{Query: "to", FilePath: "poem.txt"},
		},
		{
			name: "empty query is accepted",
			args: []string{"", "poem.txt"},
			want: model.Config{Query: "", FilePath: "poem.txt"},
		},
		{
			name: "ignore case with value",
			args: []string{"to", "poem.txt"},
			env:  map[string]string{"IGNORE_CASE": "1"},
			want: model.Config{Query: "to", FilePath: "poem.txt", IgnoreCase: true},
		},
		{
			name: "ignore case with empty value",
			args: []string{"to", "poem.txt"},
			env:  map[string]string{"IGNORE_CASE": ""},
			want: model.Config{Query: "to", FilePath: "poem.txt", IgnoreCase: true},
		},
		{
			name: "ignore case with false-looking value",
			args: []string{"to", "poem.txt"},
			env:  map[string]string{"IGNORE_CASE": "false"},
			want: model.Config{Query: "to", FilePath: "poem.txt", IgnoreCase: true},
		},
		{
			name:        "no arguments",
			args:        nil,
			wantMissing: "query string",
		},
		{
			name:        "query only",
			args:        []string{"to"},
			wantMissing: "file path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.args, envWith(tt.env))

			if tt.wantMissing != "" {
				var missing *model.MissingArgumentError
				if !errors.As(err, &missing) {
					t.Fatalf("Build() error = %v, want MissingArgumentError", err)
				}
				if missing.Name != tt.wantMissing {
					t.Errorf("missing argument = %q, want %q", missing.Name, tt.wantMissing)
				}
				if !errors.Is(err, model.ErrMissingArgument) {
					t.Errorf("errors.Is(err, ErrMissingArgument) = false")
				}
				return
			}

			if err != nil {
				t.Fatalf("Build() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Build() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBuildReadsProcessEnvironment(t *testing.T) {
	t.Setenv(IgnoreCaseEnv, "")

	cfg, err := Build([]string{"to", "poem.txt"}, nil)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	if !cfg.IgnoreCase {
		t.Error("IgnoreCase = false with IGNORE_CASE set to empty string, want true")
	}
}
