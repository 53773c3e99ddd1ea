package hash

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSHA256Hasher_HashFile(t *testing.T) {
	tmpDir := t.TempDir()
	hasher := NewSHA256Hasher()

	t.Run("known content produces known digest", func(t *testing.T) {
		testFile := filepath.Join(tmpDir, "hello.txt")
		if err := os.WriteFile(testFile, []byte("hello world"), 0644); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}

		got, err := hasher.HashFile(testFile)
		if err != nil {
			t.Fatalf("HashFile failed: %v", err)
		}

		// sha256("hello world"), stable across runs and platforms.
		want := "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
		if got != want {
			t.Errorf("HashFile = %s, want %s", got, want)
		}
	})

	t.Run("repeated hashing is deterministic", func(t *testing.T) {
		testFile := filepath.Join(tmpDir, "repeat.txt")
		if err := os.WriteFile(testFile, []byte("some content"), 0644); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}

		hash1, err := hasher.HashFile(testFile)
		if err != nil {
			t.Fatalf("HashFile failed: %v", err)
		}
		hash2, err := hasher.HashFile(testFile)
		if err != nil {
			t.Fatalf("HashFile failed on second call: %v", err)
		}

		if hash1 != hash2 {
			t.Errorf("HashFile inconsistent: got %s and %s", hash1, hash2)
		}
	})

	t.Run("identical content in two files produces same hash", func(t *testing.T) {
		file1 := filepath.Join(tmpDir, "same1.txt")
		file2 := filepath.Join(tmpDir, "same2.txt")
		content := []byte("identical content")

		if err := os.WriteFile(file1, content, 0644); err != nil {
			t.Fatalf("failed to write file1: %v", err)
		}
		if err := os.WriteFile(file2, content, 0644); err != nil {
			t.Fatalf("failed to write file2: %v", err)
		}

		hash1, err := hasher.HashFile(file1)
		if err != nil {
			t.Fatalf("HashFile failed for file1: %v", err)
		}
		hash2, err := hasher.HashFile(file2)
		if err != nil {
			t.Fatalf("HashFile failed for file2: %v", err)
		}

		if hash1 != hash2 {
			t.Errorf("identical content produced different hashes: %s vs %s", hash1, hash2)
		}
	})

	t.Run("different content produces different hashes", func(t *testing.T) {
		file1 := filepath.Join(tmpDir, "diff1.txt")
		file2 := filepath.Join(tmpDir, "diff2.txt")

		if err := os.WriteFile(file1, []byte("content A"), 0644); err != nil {
			t.Fatalf("failed to write file1: %v", err)
		}
		if err := os.WriteFile(file2, []byte("content B"), 0644); err != nil {
			t.Fatalf("failed to write file2: %v", err)
		}

		hash1, err := hasher.HashFile(file1)
		if err != nil {
			t.Fatalf("HashFile failed for file1: %v", err)
		}
		hash2, err := hasher.HashFile(file2)
		if err != nil {
			t.Fatalf("HashFile failed for file2: %v", err)
		}

		if hash1 == hash2 {
			t.Error("different files produced same hash")
		}
	})

	t.Run("content larger than one chunk hashes correctly", func(t *testing.T) {
		big := make([]byte, chunkSize*3+17)
		for i := range big {
			big[i] = byte(i % 251)
		}
		file1 := filepath.Join(tmpDir, "big1.bin")
		file2 := filepath.Join(tmpDir, "big2.bin")
		if err := os.WriteFile(file1, big, 0644); err != nil {
			t.Fatalf("failed to write file1: %v", err)
		}
		if err := os.WriteFile(file2, big, 0644); err != nil {
			t.Fatalf("failed to write file2: %v", err)
		}

		hash1, err := hasher.HashFile(file1)
		if err != nil {
			t.Fatalf("HashFile failed for file1: %v", err)
		}
		hash2, err := hasher.HashFile(file2)
		if err != nil {
			t.Fatalf("HashFile failed for file2: %v", err)
		}
		if hash1 != hash2 {
			t.Errorf("chunked hashing not deterministic: %s vs %s", hash1, hash2)
		}
	})

	t.Run("missing file returns error", func(t *testing.T) {
		_, err := hasher.HashFile(filepath.Join(tmpDir, "does-not-exist"))
		if err == nil {
			t.Error("expected error for missing file, got nil")
		}
	})
}

func TestFakeHasher(t *testing.T) {
	fake := NewFakeHasher()
	fake.SetHash("/some/path", "abc123")

	hash, err := fake.HashFile("/some/path")
	if err != nil {
		t.Fatalf("HashFile failed: %v", err)
	}
	if hash != "abc123" {
		t.Errorf("HashFile = %s, want abc123", hash)
	}

	hash, err = fake.HashFile("/other/path")
	if err != nil {
		t.Fatalf("HashFile failed: %v", err)
	}
	if hash != "fakehash" {
		t.Errorf("HashFile = %s, want fakehash", hash)
	}
}
