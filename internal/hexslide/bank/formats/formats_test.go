package formats

import (
	"reflect"
	"testing"
)

func TestParseText(t *testing.T) {
	data := []byte("112h, 13jb ,,2912og\n10m7,145i\n")

	b, err := ParseText(data)
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}

	if expected := []string{"112h", "13jb", "2912og"}; !reflect.DeepEqual(b.Levels, expected) {
		t.Errorf("expected levels %v, got %v", expected, b.Levels)
	}
	if expected := []string{"10m7", "145i"}; !reflect.DeepEqual(b.Pool, expected) {
		t.Errorf("expected pool %v, got %v", expected, b.Pool)
	}
}

func TestParseTextLevelsOnly(t *testing.T) {
	b, err := ParseText([]byte("# levels\n112h\n"))
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}
	if len(b.Levels) != 1 || len(b.Pool) != 0 {
		t.Errorf("expected 1 level and empty pool, got %v / %v", b.Levels, b.Pool)
	}
}

func TestParseTextErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"only comments", "# nothing\n\n"},
		{"too many lines", "112h\n13jb\n2912og\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseText([]byte(tc.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
name: sample
levels:
  - 112h
  - " 13jb "
pool:
  - 145i
  - ""
`)

	b, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if b.Name != "sample" {
		t.Errorf("expected name 'sample', got %q", b.Name)
	}
	if expected := []string{"112h", "13jb"}; !reflect.DeepEqual(b.Levels, expected) {
		t.Errorf("expected levels %v, got %v", expected, b.Levels)
	}
	if expected := []string{"145i"}; !reflect.DeepEqual(b.Pool, expected) {
		t.Errorf("expected pool %v, got %v", expected, b.Pool)
	}
}

func TestParseRouting(t *testing.T) {
	if _, err := Parse([]byte("112h"), ".TXT"); err != nil {
		t.Errorf("text routing failed: %v", err)
	}
	if _, err := Parse([]byte("levels: [112h]"), ".yml"); err != nil {
		t.Errorf("yaml routing failed: %v", err)
	}
	if _, err := Parse([]byte("{}"), ".json"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}
