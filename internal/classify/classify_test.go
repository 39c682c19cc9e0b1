package classify

import "testing"

func TestClassifyBinaryExtensions(t *testing.T) {
	c := New()
	for _, path := range []string{"logo.png", "assets/FONT.TTF", "dist/app.exe", "a/b/c.tar"} {
		isBinary, _ := c.Classify(path)
		if !isBinary {
			t.Errorf("expected %q to be classified binary", path)
		}
	}
}

func TestClassifyLanguages(t *testing.T) {
	tests := []struct {
		path     string
		expected Language
	}{
		{"main.py", LangPython},
		{"src/App.TSX", LangTypeScript},
		{"cmd/root.go", LangGo},
		{"native/jni.h", LangC},
		{"scripts/deploy.sh", LangShell},
		{"README.md", LangUnknown},
		{"Makefile", LangUnknown},
	}

	c := New()
	for _, tt := range tests {
		isBinary, lang := c.Classify(tt.path)
		if isBinary {
			t.Errorf("expected %q to be text", tt.path)
		}
		if lang != tt.expected {
			t.Errorf("Classify(%q): expected language %q, got %q", tt.path, tt.expected, lang)
		}
	}
}

func TestClassifyExtraBinaryExtensions(t *testing.T) {
	c := New(WithBinaryExtensions([]string{".BIN", ".dat"}))
	for _, path := range []string{"firmware.bin", "table.DAT"} {
		if isBinary, _ := c.Classify(path); !isBinary {
			t.Errorf("expected configured extension on %q to classify binary", path)
		}
	}
}

func TestClassifyLanguageOverrides(t *testing.T) {
	c := New(WithLanguageOverrides(map[string]string{".pyi": "python", ".mjs": "javascript"}))
	if _, lang := c.Classify("types.pyi"); lang != LangPython {
		t.Errorf("expected override to map .pyi to python, got %q", lang)
	}
	if _, lang := c.Classify("mod.mjs"); lang != LangJavaScript {
		t.Errorf("expected override to map .mjs to javascript, got %q", lang)
	}
}

func TestClassifyNeverEmptyLanguage(t *testing.T) {
	c := New()
	if _, lang := c.Classify("noextension"); lang == "" {
		t.Fatal("language must never be empty")
	}
}
