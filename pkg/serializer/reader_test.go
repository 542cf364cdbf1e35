// Copyright (c) 2025, Forge Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serializer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected Format
	}{
		{
			name:     "json lowercase",
			path:     "result.json",
			expected: FormatJSON,
		},
		{
			name:     "json uppercase",
			path:     "RESULT.JSON",
			expected: FormatJSON,
		},
		{
			name:     "yaml extension",
			path:     "catalog.yaml",
			expected: FormatYAML,
		},
		{
			name:     "yml extension",
			path:     "catalog.yml",
			expected: FormatYAML,
		},
		{
			name:     "table extension",
			path:     "output.table",
			expected: FormatTable,
		},
		{
			name:     "txt extension",
			path:     "output.txt",
			expected: FormatTable,
		},
		{
			name:     "unknown extension defaults to json",
			path:     "file.unknown",
			expected: FormatJSON,
		},
		{
			name:     "no extension defaults to json",
			path:     "filename",
			expected: FormatJSON,
		},
		{
			name:     "path with directories",
			path:     "/path/to/catalog.yaml",
			expected: FormatYAML,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatFromPath(tt.path)
			if result != tt.expected {
				t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, result, tt.expected)
			}
		})
	}
}

func TestNewReader(t *testing.T) {
	t.Run("valid json format", func(t *testing.T) {
		input := strings.NewReader(`{"name":"test"}`)
		reader, err := NewReader(FormatJSON, input)
		if err != nil {
			t.Fatalf("NewReader failed: %v", err)
		}
		if reader == nil {
			t.Fatal("Expected non-nil reader")
		}
	})

	t.Run("table format rejected", func(t *testing.T) {
		input := strings.NewReader("FIELD VALUE")
		if _, err := NewReader(FormatTable, input); err == nil {
			t.Error("Expected error for table format")
		}
	})

	t.Run("unknown format rejected", func(t *testing.T) {
		input := strings.NewReader("{}")
		if _, err := NewReader(Format("xml"), input); err == nil {
			t.Error("Expected error for unknown format")
		}
	})
}

func TestReader_DeserializeJSON(t *testing.T) {
	input := strings.NewReader(`{"name":"test1","value":123}`)
	reader, err := NewReader(FormatJSON, input)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}

	var result testResource
	if err := reader.Deserialize(&result); err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}

	if result.Name != test1Name || result.Value != 123 {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestReader_DeserializeYAML(t *testing.T) {
	input := strings.NewReader("name: test1\nvalue: 123\n")
	reader, err := NewReader(FormatYAML, input)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}

	var result testResource
	if err := reader.Deserialize(&result); err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}

	if result.Name != test1Name || result.Value != 123 {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestReader_DeserializeMalformed(t *testing.T) {
	input := strings.NewReader(`{"name": "unterminated`)
	reader, err := NewReader(FormatJSON, input)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}

	var result testResource
	if err := reader.Deserialize(&result); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestNewFileReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resource.json")
	if err := os.WriteFile(path, []byte(`{"name":"test1","value":123}`), 0600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	reader, err := NewFileReader(FormatJSON, path)
	if err != nil {
		t.Fatalf("NewFileReader failed: %v", err)
	}
	defer reader.Close()

	var result testResource
	if err := reader.Deserialize(&result); err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}

	if result.Name != test1Name || result.Value != 123 {
		t.Errorf("Unexpected data: %+v", result)
	}

	// Close is idempotent
	if err := reader.Close(); err != nil {
		t.Errorf("Second Close should not error: %v", err)
	}
}

func TestNewFileReader_MissingFile(t *testing.T) {
	if _, err := NewFileReader(FormatJSON, "/nonexistent/resource.json"); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestNewFileReaderAuto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resource.yaml")
	if err := os.WriteFile(path, []byte("name: test1\nvalue: 123\n"), 0600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	reader, err := NewFileReaderAuto(path)
	if err != nil {
		t.Fatalf("NewFileReaderAuto failed: %v", err)
	}
	defer reader.Close()

	var result testResource
	if err := reader.Deserialize(&result); err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}

	if result.Name != test1Name || result.Value != 123 {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resource.yaml")
	if err := os.WriteFile(path, []byte("name: test1\nvalue: 123\n"), 0600); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	result, err := FromFile[testResource](path)
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}

	if result.Name != test1Name || result.Value != 123 {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestFromFile_MissingFile(t *testing.T) {
	if _, err := FromFile[testResource]("/nonexistent/resource.yaml"); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestReader_NilSafety(t *testing.T) {
	var reader *Reader
	if err := reader.Close(); err != nil {
		t.Errorf("Close on nil reader should not error: %v", err)
	}
	if err := reader.Deserialize(&testResource{}); err == nil {
		t.Error("Deserialize on nil reader should error")
	}
}
